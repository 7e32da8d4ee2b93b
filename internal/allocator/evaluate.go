package allocator

import (
	"github.com/fin-tools/depositmax/pkg/constants"
	"github.com/fin-tools/depositmax/pkg/mathutil"
)

// EvaluateDeposit computes the annual interest a deposit earns against an
// ordered tier schedule. Each tier absorbs up to its capacity at its own rate;
// the walk stops as soon as a tier can absorb nothing, so a zero-capacity tier
// shields every tier after it.
func EvaluateDeposit(amount float64, tiers []Tier) DepositInterest {
	var result DepositInterest
	if amount <= 0 || len(tiers) == 0 {
		return result
	}

	remaining := amount
	for _, tier := range tiers {
		consumable := mathutil.Min(remaining, tier.Capacity)
		if consumable <= 0 {
			break
		}
		interest := consumable * tier.Rate
		result.Breakdown = append(result.Breakdown, TierBreakdown{
			AmountInTier:    consumable,
			TierRate:        tier.Rate,
			TierInterest:    interest,
			MonthlyInterest: interest / constants.MonthsPerYear,
		})
		result.TotalInterest += interest
		remaining -= consumable
	}

	return result
}
