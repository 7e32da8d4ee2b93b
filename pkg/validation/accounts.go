// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/fin-tools/depositmax/internal/allocator"
)

// AccountWarnings reports schedule problems worth surfacing before an
// optimization run. The allocator trusts its input as given, so none of these
// stop a run; they flag data that is probably not what the user meant.
func AccountWarnings(accounts []allocator.Account) []string {
	var warnings []string
	seen := make(map[string]bool)
	salaryCount := 0

	for _, account := range accounts {
		if account.Name == "" {
			warnings = append(warnings, "An account has no name")
			continue
		}
		if seen[account.Name] {
			warnings = append(warnings, fmt.Sprintf("Account '%s' appears more than once", account.Name))
		}
		seen[account.Name] = true

		if account.RequiresSalaryCredit {
			salaryCount++
		}

		if len(account.Tiers) == 0 {
			warnings = append(warnings, fmt.Sprintf("Account '%s' has no tiers and cannot earn interest", account.Name))
			continue
		}

		for i, tier := range account.Tiers {
			if tier.Rate < 0 {
				warnings = append(warnings, fmt.Sprintf("Account '%s' tier %d has a negative rate (%v)", account.Name, i+1, tier.Rate))
			}
			if tier.Capacity < 0 {
				warnings = append(warnings, fmt.Sprintf("Account '%s' tier %d has a negative capacity (%v)", account.Name, i+1, tier.Capacity))
			}
			if tier.Capacity == 0 && i < len(account.Tiers)-1 {
				warnings = append(warnings, fmt.Sprintf("Account '%s' tier %d has zero capacity, making %d later tier(s) unreachable", account.Name, i+1, len(account.Tiers)-1-i))
				break
			}
		}
	}

	if salaryCount > 1 {
		warnings = append(warnings, fmt.Sprintf("%d accounts require a salary credit but only one can receive it", salaryCount))
	}

	return warnings
}
