package validation

import (
	"strings"
	"testing"

	"github.com/fin-tools/depositmax/internal/allocator"
)

func TestAccountWarnings(t *testing.T) {
	tests := []struct {
		name             string
		accounts         []allocator.Account
		expectedCount    int
		expectedFragment string
	}{
		{
			name: "Clean schedule",
			accounts: []allocator.Account{
				{Name: "Bonus Plus", Tiers: []allocator.Tier{{Rate: 0.0388, Capacity: 100000}}},
				{Name: "Everyday Saver", Tiers: []allocator.Tier{{Rate: 0.015, Capacity: 75000}}},
			},
			expectedCount: 0,
		},
		{
			name: "Duplicate account name",
			accounts: []allocator.Account{
				{Name: "Bonus Plus", Tiers: []allocator.Tier{{Rate: 0.02, Capacity: 10000}}},
				{Name: "Bonus Plus", Tiers: []allocator.Tier{{Rate: 0.04, Capacity: 20000}}},
			},
			expectedCount:    1,
			expectedFragment: "more than once",
		},
		{
			name: "Account with no tiers",
			accounts: []allocator.Account{
				{Name: "Paper Account"},
			},
			expectedCount:    1,
			expectedFragment: "no tiers",
		},
		{
			name: "Negative rate",
			accounts: []allocator.Account{
				{Name: "Oddball", Tiers: []allocator.Tier{{Rate: -0.01, Capacity: 10000}}},
			},
			expectedCount:    1,
			expectedFragment: "negative rate",
		},
		{
			name: "Negative capacity",
			accounts: []allocator.Account{
				{Name: "Oddball", Tiers: []allocator.Tier{{Rate: 0.01, Capacity: -10000}}},
			},
			expectedCount:    1,
			expectedFragment: "negative capacity",
		},
		{
			name: "Zero capacity tier blocks later tiers",
			accounts: []allocator.Account{
				{Name: "Blocked", Tiers: []allocator.Tier{
					{Rate: 0.02, Capacity: 10000},
					{Rate: 0.05, Capacity: 0},
					{Rate: 0.03, Capacity: 20000},
				}},
			},
			expectedCount:    1,
			expectedFragment: "unreachable",
		},
		{
			name: "Trailing zero capacity tier is harmless",
			accounts: []allocator.Account{
				{Name: "Trailing", Tiers: []allocator.Tier{
					{Rate: 0.02, Capacity: 10000},
					{Rate: 0.05, Capacity: 0},
				}},
			},
			expectedCount: 0,
		},
		{
			name: "Multiple salary accounts",
			accounts: []allocator.Account{
				{Name: "Salary A", RequiresSalaryCredit: true, Tiers: []allocator.Tier{{Rate: 0.05, Capacity: 10000}}},
				{Name: "Salary B", RequiresSalaryCredit: true, Tiers: []allocator.Tier{{Rate: 0.04, Capacity: 10000}}},
			},
			expectedCount:    1,
			expectedFragment: "salary credit",
		},
		{
			name: "Unnamed account",
			accounts: []allocator.Account{
				{Tiers: []allocator.Tier{{Rate: 0.02, Capacity: 10000}}},
			},
			expectedCount:    1,
			expectedFragment: "no name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := AccountWarnings(tt.accounts)
			if len(warnings) != tt.expectedCount {
				t.Fatalf("AccountWarnings() returned %d warnings, expected %d: %v",
					len(warnings), tt.expectedCount, warnings)
			}
			if tt.expectedFragment == "" {
				return
			}
			found := false
			for _, warning := range warnings {
				if strings.Contains(warning, tt.expectedFragment) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected a warning containing %q, got %v", tt.expectedFragment, warnings)
			}
		})
	}
}
