package allocator

import (
	"math"
	"testing"
)

func TestGreedyAllocatePrefersHighestRate(t *testing.T) {
	accounts := []Account{
		{Name: "Everyday Saver", Tiers: []Tier{{Rate: 0.02, Capacity: 10000}}},
		{Name: "Bonus Plus", Tiers: []Tier{{Rate: 0.05, Capacity: 10000}}},
	}

	result := greedyAllocate(accounts, 10000)

	if len(result.Allocations) != 1 {
		t.Fatalf("expected 1 funded account, got %d", len(result.Allocations))
	}
	allocation, ok := result.Allocations["Bonus Plus"]
	if !ok {
		t.Fatal("expected the high rate account to be funded")
	}
	if math.Abs(allocation.Deposit-10000) > 0.001 {
		t.Errorf("deposit = %.2f, expected 10000.00", allocation.Deposit)
	}
	if math.Abs(result.TotalAnnualInterest-500) > 0.001 {
		t.Errorf("total interest = %.2f, expected 500.00", result.TotalAnnualInterest)
	}
}

func TestGreedyAllocateSplitsAcrossAccounts(t *testing.T) {
	accounts := []Account{
		{Name: "Everyday Saver", Tiers: []Tier{{Rate: 0.02, Capacity: 10000}}},
		{Name: "Bonus Plus", Tiers: []Tier{{Rate: 0.05, Capacity: 10000}}},
	}

	result := greedyAllocate(accounts, 15000)

	if len(result.Allocations) != 2 {
		t.Fatalf("expected 2 funded accounts, got %d", len(result.Allocations))
	}
	if math.Abs(result.Allocations["Bonus Plus"].Deposit-10000) > 0.001 {
		t.Errorf("high rate deposit = %.2f, expected 10000.00", result.Allocations["Bonus Plus"].Deposit)
	}
	if math.Abs(result.Allocations["Everyday Saver"].Deposit-5000) > 0.001 {
		t.Errorf("low rate deposit = %.2f, expected 5000.00", result.Allocations["Everyday Saver"].Deposit)
	}
	if math.Abs(result.TotalAnnualInterest-600) > 0.001 {
		t.Errorf("total interest = %.2f, expected 600.00", result.TotalAnnualInterest)
	}
}

func TestGreedyAllocateEqualRatesKeepListedOrder(t *testing.T) {
	accounts := []Account{
		{Name: "First Listed", Tiers: []Tier{{Rate: 0.03, Capacity: 10000}}},
		{Name: "Second Listed", Tiers: []Tier{{Rate: 0.03, Capacity: 10000}}},
	}

	result := greedyAllocate(accounts, 10000)

	if _, ok := result.Allocations["Second Listed"]; ok {
		t.Error("tie on rate should fund the account listed first")
	}
	if math.Abs(result.Allocations["First Listed"].Deposit-10000) > 0.001 {
		t.Errorf("deposit = %.2f, expected 10000.00", result.Allocations["First Listed"].Deposit)
	}
}

func TestGreedyAllocateCapacityExhausted(t *testing.T) {
	accounts := []Account{
		{Name: "Everyday Saver", Tiers: []Tier{{Rate: 0.04, Capacity: 10000}}},
		{Name: "Bonus Plus", Tiers: []Tier{{Rate: 0.02, Capacity: 20000}}},
	}

	result := greedyAllocate(accounts, 50000)

	// 20000 has nowhere to go and earns nothing.
	if math.Abs(result.TotalAnnualInterest-800) > 0.001 {
		t.Errorf("total interest = %.2f, expected 800.00", result.TotalAnnualInterest)
	}
	if math.Abs(result.EffectiveRatePercent-1.6) > 0.001 {
		t.Errorf("effective rate = %.2f, expected 1.60", result.EffectiveRatePercent)
	}
	var deposited float64
	for _, allocation := range result.Allocations {
		deposited += allocation.Deposit
	}
	if math.Abs(deposited-30000) > 0.001 {
		t.Errorf("total deposited = %.2f, expected 30000.00", deposited)
	}
}

func TestGreedyAllocateSkipsZeroCapacityTiers(t *testing.T) {
	accounts := []Account{
		{Name: "Promo Account", Tiers: []Tier{{Rate: 0.10, Capacity: 0}, {Rate: 0.02, Capacity: 10000}}},
	}

	result := greedyAllocate(accounts, 5000)

	allocation := result.Allocations["Promo Account"]
	if len(allocation.Breakdown) != 1 {
		t.Fatalf("expected 1 breakdown entry, got %d", len(allocation.Breakdown))
	}
	if math.Abs(allocation.Breakdown[0].TierRate-0.02) > 1e-9 {
		t.Errorf("funded tier rate = %v, expected 0.02", allocation.Breakdown[0].TierRate)
	}
	if math.Abs(result.TotalAnnualInterest-100) > 0.001 {
		t.Errorf("total interest = %.2f, expected 100.00", result.TotalAnnualInterest)
	}
}

func TestGreedyAllocateZeroTotal(t *testing.T) {
	accounts := []Account{
		{Name: "Everyday Saver", Tiers: []Tier{{Rate: 0.02, Capacity: 10000}}},
	}

	result := greedyAllocate(accounts, 0)

	if len(result.Allocations) != 0 {
		t.Errorf("expected no allocations, got %d", len(result.Allocations))
	}
	if result.EffectiveRatePercent != 0 {
		t.Errorf("effective rate = %.2f, expected 0.00", result.EffectiveRatePercent)
	}
}
