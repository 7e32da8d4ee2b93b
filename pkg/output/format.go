// Package output provides utilities for formatting and displaying allocation results.
package output

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/fin-tools/depositmax/internal/allocator"
	"github.com/fin-tools/depositmax/pkg/format"
	"github.com/fin-tools/depositmax/pkg/mathutil"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
// Accounts are listed in their schedule order; comparison may be nil.
func PrettyFormat(accounts []allocator.Account, totalInvestment float64, result allocator.Result, comparison *allocator.Comparison) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Optimal deposit allocation ---\n")
	_, _ = p.Printf("Monthly interest: $%.2f\n", result.TotalMonthlyInterest)
	_, _ = p.Printf("Annual interest:  $%.2f\n", result.TotalAnnualInterest)
	fmt.Printf("Effective rate:   %s\n", format.Percent(result.EffectiveRatePercent))
	if result.ChosenSalaryAccount != nil {
		fmt.Printf("Salary credit:    %s\n", *result.ChosenSalaryAccount)
	}
	fmt.Printf("\n")

	fmt.Printf("Account                  | Deposit       | Monthly    | Annual\n")
	fmt.Printf("_______                  | _______       | _______    | ______\n")
	var deposited float64
	for _, account := range accounts {
		allocation, funded := result.Allocations[account.Name]
		if !funded {
			continue
		}
		deposited += allocation.Deposit
		_, _ = p.Printf("%-24s | $%.2f | $%.2f | $%.2f\n",
			account.Name, allocation.Deposit, allocation.MonthlyInterest, allocation.AnnualInterest)
	}
	if totalInvestment > deposited && !mathutil.WithinTolerance(deposited, totalInvestment, 0.01) {
		_, _ = p.Printf("Uninvested: $%.2f (all tier capacity is exhausted)\n", totalInvestment-deposited)
	}

	requirements := RequirementLines(accounts, result)
	if len(requirements) > 0 {
		fmt.Printf("\nRequirements to note:\n")
		for _, line := range requirements {
			fmt.Printf("  %s\n", line)
		}
	}

	fmt.Printf("\nTier breakdown:\n")
	for _, account := range accounts {
		allocation, funded := result.Allocations[account.Name]
		if !funded {
			continue
		}
		fmt.Printf("  %s\n", account.Name)
		for _, entry := range allocation.Breakdown {
			_, _ = p.Printf("    $%.2f at %s earns $%.2f/yr\n",
				entry.AmountInTier, format.Rate(entry.TierRate), entry.TierInterest)
		}
	}

	if comparison != nil {
		fmt.Printf("\n--- Comparison with other strategies ---\n")
		_, _ = p.Printf("Equal split across %d accounts: $%.2f/yr (%s)\n",
			len(accounts), comparison.EqualSplit.AnnualInterest,
			format.Percent(comparison.EqualSplit.EffectiveRatePercent))
		if comparison.AssumedSalaryAccount != nil {
			fmt.Printf("  (assumes the salary credit goes to %s)\n", *comparison.AssumedSalaryAccount)
		}
		for _, scenario := range comparison.SingleAccount {
			_, _ = p.Printf("100%% in %s: $%.2f/yr (%s)\n",
				scenario.Name, scenario.AnnualInterest, format.Percent(scenario.EffectiveRatePercent))
		}
		fmt.Printf("Optimization advantage over the equal split: %s/yr (%s/mo)\n",
			format.Currency(comparison.AnnualAdvantage), format.Currency(comparison.MonthlyAdvantage))
	}
}

// RequirementLines collects the conditions attached to funded accounts, in
// schedule order. Unfunded accounts contribute nothing.
func RequirementLines(accounts []allocator.Account, result allocator.Result) []string {
	var lines []string
	for _, account := range accounts {
		if _, funded := result.Allocations[account.Name]; !funded {
			continue
		}
		if account.RequiresSalaryCredit {
			lines = append(lines, fmt.Sprintf("%s: requires a salary credit", account.Name))
		}
		for _, requirement := range account.OtherRequirements {
			lines = append(lines, fmt.Sprintf("%s: %s", account.Name, requirement))
		}
	}
	return lines
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(result allocator.Result) {
	fmt.Print(CsvString(result))
}

// CsvString renders the allocation as CSV, sorted by account name, with a
// trailing TOTAL row.
func CsvString(result allocator.Result) string {
	names := make([]string, 0, len(result.Allocations))
	for name := range result.Allocations {
		names = append(names, name)
	}
	sort.Strings(names)

	var builder strings.Builder
	builder.WriteString(`"account","deposit","annual_interest","monthly_interest"` + "\n")
	var deposited float64
	for _, name := range names {
		allocation := result.Allocations[name]
		deposited += allocation.Deposit
		builder.WriteString(fmt.Sprintf(`"%s","%.2f","%.2f","%.2f"`+"\n",
			name, allocation.Deposit, allocation.AnnualInterest, allocation.MonthlyInterest))
	}
	builder.WriteString(fmt.Sprintf(`"TOTAL","%.2f","%.2f","%.2f"`+"\n",
		deposited, result.TotalAnnualInterest, result.TotalMonthlyInterest))
	return builder.String()
}
