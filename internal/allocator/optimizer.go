package allocator

import (
	"go.uber.org/zap"

	"github.com/fin-tools/depositmax/pkg/constants"
	"github.com/fin-tools/depositmax/pkg/mathutil"
)

// Optimizer allocates a fixed investment across tiered savings accounts.
type Optimizer struct {
	logger *zap.Logger
}

// New constructs an Optimizer. A nil logger is replaced with a no-op logger.
func New(logger *zap.Logger) *Optimizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Optimizer{logger: logger}
}

// Optimize distributes totalInvestment across the accounts. It solves the
// linear relaxation first and falls back to the greedy fill when the solve
// fails for any reason. Deposits at or below the reporting threshold are
// dropped; surviving deposits are re-evaluated against their full tier
// schedules so the reported interest is the true marginal interest, not the
// relaxed objective.
func (o *Optimizer) Optimize(accounts []Account, totalInvestment float64) Result {
	if totalInvestment <= 0 || len(accounts) == 0 {
		return emptyResult()
	}

	objective := relaxationObjective(accounts)
	bounds := depositBounds(accounts, totalInvestment)

	deposits, err := solveAllocationLP(objective, bounds, totalInvestment)
	if err != nil {
		o.logger.Debug("linear solve failed, falling back to greedy allocation",
			zap.String("op", "allocator.Optimize"),
			zap.Error(err),
		)
		return greedyAllocate(accounts, totalInvestment)
	}

	result := emptyResult()
	for i, account := range accounts {
		deposit := deposits[i]
		if deposit <= constants.DepositThreshold {
			continue
		}
		evaluated := EvaluateDeposit(deposit, account.Tiers)
		result.Allocations[account.Name] = AccountAllocation{
			Deposit:         deposit,
			AnnualInterest:  evaluated.TotalInterest,
			MonthlyInterest: evaluated.TotalInterest / constants.MonthsPerYear,
			Breakdown:       evaluated.Breakdown,
		}
		result.TotalAnnualInterest += evaluated.TotalInterest
	}

	result.TotalMonthlyInterest = result.TotalAnnualInterest / constants.MonthsPerYear
	result.EffectiveRatePercent = mathutil.CalculatePercentage(result.TotalAnnualInterest, totalInvestment)

	o.logger.Debug("allocation solved",
		zap.String("op", "allocator.Optimize"),
		zap.Int("accountsUsed", len(result.Allocations)),
		zap.Float64("totalAnnualInterest", result.TotalAnnualInterest),
	)

	return result
}
