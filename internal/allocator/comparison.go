package allocator

import (
	"github.com/fin-tools/depositmax/pkg/constants"
	"github.com/fin-tools/depositmax/pkg/mathutil"
)

// Compare contrasts an optimized allocation with an equal split across all
// accounts and with placing the whole investment in each account alone. The
// equal split assumes the first listed salary account receives the salary
// credit; any other salary account holds its share but earns nothing. Single
// account scenarios take every schedule at face value.
func (o *Optimizer) Compare(accounts []Account, totalInvestment float64, optimal Result) Comparison {
	var comparison Comparison
	if len(accounts) == 0 || totalInvestment <= 0 {
		return comparison
	}

	share := totalInvestment / float64(len(accounts))
	var equalInterest float64
	var assumed *string
	for _, account := range accounts {
		if account.RequiresSalaryCredit {
			if assumed != nil {
				continue
			}
			name := account.Name
			assumed = &name
		}
		equalInterest += EvaluateDeposit(share, account.Tiers).TotalInterest
	}

	comparison.EqualSplit = ScenarioSummary{
		Name:                 "Equal distribution",
		AnnualInterest:       equalInterest,
		MonthlyInterest:      equalInterest / constants.MonthsPerYear,
		EffectiveRatePercent: mathutil.CalculatePercentage(equalInterest, totalInvestment),
	}
	comparison.AssumedSalaryAccount = assumed

	comparison.SingleAccount = make([]ScenarioSummary, 0, len(accounts))
	for _, account := range accounts {
		interest := EvaluateDeposit(totalInvestment, account.Tiers).TotalInterest
		comparison.SingleAccount = append(comparison.SingleAccount, ScenarioSummary{
			Name:                 account.Name,
			AnnualInterest:       interest,
			MonthlyInterest:      interest / constants.MonthsPerYear,
			EffectiveRatePercent: mathutil.CalculatePercentage(interest, totalInvestment),
		})
	}

	comparison.AnnualAdvantage = optimal.TotalAnnualInterest - equalInterest
	comparison.MonthlyAdvantage = comparison.AnnualAdvantage / constants.MonthsPerYear
	return comparison
}
