package allocator

import (
	"sort"

	"github.com/fin-tools/depositmax/pkg/constants"
	"github.com/fin-tools/depositmax/pkg/mathutil"
)

type tierSlot struct {
	account  string
	rate     float64
	capacity float64
}

// greedyAllocate fills the highest-rate tiers first, treating every tier of
// every account as independently fillable. It serves as the fallback when the
// linear solve fails and is exact whenever schedules pay their best rates
// first.
func greedyAllocate(accounts []Account, total float64) Result {
	result := emptyResult()

	var slots []tierSlot
	for _, account := range accounts {
		for _, tier := range account.Tiers {
			slots = append(slots, tierSlot{account: account.Name, rate: tier.Rate, capacity: tier.Capacity})
		}
	}
	// Stable sort keeps schedule order for equal rates so repeated runs
	// allocate identically.
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].rate > slots[j].rate
	})

	remaining := total
	for _, slot := range slots {
		if remaining <= 0 {
			break
		}
		take := mathutil.Min(remaining, slot.capacity)
		if take <= 0 {
			continue
		}

		interest := take * slot.rate
		allocation := result.Allocations[slot.account]
		allocation.Deposit += take
		allocation.AnnualInterest += interest
		allocation.MonthlyInterest += interest / constants.MonthsPerYear
		allocation.Breakdown = append(allocation.Breakdown, TierBreakdown{
			AmountInTier:    take,
			TierRate:        slot.rate,
			TierInterest:    interest,
			MonthlyInterest: interest / constants.MonthsPerYear,
		})
		result.Allocations[slot.account] = allocation

		result.TotalAnnualInterest += interest
		remaining -= take
	}

	result.TotalMonthlyInterest = result.TotalAnnualInterest / constants.MonthsPerYear
	result.EffectiveRatePercent = mathutil.CalculatePercentage(result.TotalAnnualInterest, total)
	return result
}
