package allocator

import (
	"sync"

	"go.uber.org/zap"
)

// OptimizeWithSalaryConstraint allocates the investment under the rule that
// at most one account can receive the salary credit its bonus rates require.
// It first solves unconstrained; if more than one salary account ends up
// funded, it retries with each funded account as the sole salary credit
// (every other salary account's rates zeroed, capacities kept) and keeps the
// best outcome. ChosenSalaryAccount is set whenever a salary account is in
// play.
func (o *Optimizer) OptimizeWithSalaryConstraint(accounts []Account, totalInvestment float64) Result {
	var salaryNames []string
	for _, account := range accounts {
		if account.RequiresSalaryCredit {
			salaryNames = append(salaryNames, account.Name)
		}
	}

	unconstrained := o.Optimize(accounts, totalInvestment)
	if len(salaryNames) == 0 {
		return unconstrained
	}

	// Salary accounts the unconstrained run actually funded, in input order.
	var used []string
	for _, name := range salaryNames {
		if allocation, ok := unconstrained.Allocations[name]; ok && allocation.Deposit > 0 {
			used = append(used, name)
		}
	}

	switch len(used) {
	case 0:
		return unconstrained
	case 1:
		chosen := used[0]
		unconstrained.ChosenSalaryAccount = &chosen
		return unconstrained
	}

	// Each trial works on its own deep copy, so the candidates can run
	// concurrently.
	trials := make([]Result, len(used))
	var wg sync.WaitGroup
	for i, candidate := range used {
		wg.Add(1)
		go func(i int, candidate string) {
			defer wg.Done()
			trial := cloneAccounts(accounts)
			for j := range trial {
				if trial[j].RequiresSalaryCredit && trial[j].Name != candidate {
					for k := range trial[j].Tiers {
						trial[j].Tiers[k].Rate = 0
					}
				}
			}
			trials[i] = o.Optimize(trial, totalInvestment)
		}(i, candidate)
	}
	wg.Wait()

	// Scan in enumeration order and replace only on strict improvement, so
	// ties go to the earliest listed account and the outcome is identical
	// run to run.
	best := trials[0]
	chosen := used[0]
	for i := 1; i < len(used); i++ {
		if trials[i].TotalAnnualInterest > best.TotalAnnualInterest {
			best = trials[i]
			chosen = used[i]
		}
	}
	best.ChosenSalaryAccount = &chosen

	o.logger.Info("selected salary credit account",
		zap.String("op", "allocator.OptimizeWithSalaryConstraint"),
		zap.String("account", chosen),
		zap.Int("candidates", len(used)),
		zap.Float64("totalAnnualInterest", best.TotalAnnualInterest),
	)

	return best
}
