// Package allocator implements tiered savings interest evaluation and the
// allocation of a fixed investment across accounts to maximize annual interest.
package allocator

// Tier is one marginal interest bracket. Rate is an annual decimal fraction
// (0.0325 means 3.25%) applied only to the money that lands in this bracket;
// Capacity is the bracket size in dollars.
type Tier struct {
	Rate     float64 `json:"rate" yaml:"rate"`
	Capacity float64 `json:"capacity" yaml:"capacity"`
}

// Account describes one savings product and its ordered tier schedule.
type Account struct {
	Name                 string   `json:"name" yaml:"name"`
	Tiers                []Tier   `json:"tiers" yaml:"tiers"`
	RequiresSalaryCredit bool     `json:"requiresSalaryCredit" yaml:"requiresSalaryCredit"`
	OtherRequirements    []string `json:"otherRequirements,omitempty" yaml:"otherRequirements,omitempty"`
}

// Clone returns a deep copy; trial allocations mutate tier rates and must
// never touch the caller's schedule.
func (a Account) Clone() Account {
	clone := a
	clone.Tiers = make([]Tier, len(a.Tiers))
	copy(clone.Tiers, a.Tiers)
	if a.OtherRequirements != nil {
		clone.OtherRequirements = make([]string, len(a.OtherRequirements))
		copy(clone.OtherRequirements, a.OtherRequirements)
	}
	return clone
}

// CapacitySum returns the total dollars the account's tiers can absorb.
func (a Account) CapacitySum() float64 {
	var sum float64
	for _, tier := range a.Tiers {
		sum += tier.Capacity
	}
	return sum
}

// TierBreakdown records how much of a deposit landed in one tier and what it
// earns there.
type TierBreakdown struct {
	AmountInTier    float64 `json:"amountInTier"`
	TierRate        float64 `json:"tierRate"`
	TierInterest    float64 `json:"tierInterest"`
	MonthlyInterest float64 `json:"monthlyInterest"`
}

// DepositInterest is the evaluation of a single deposit against one account's
// tier schedule.
type DepositInterest struct {
	TotalInterest float64
	Breakdown     []TierBreakdown
}

// AccountAllocation is the portion of the investment assigned to one account.
type AccountAllocation struct {
	Deposit         float64         `json:"deposit"`
	AnnualInterest  float64         `json:"annualInterest"`
	MonthlyInterest float64         `json:"monthlyInterest"`
	Breakdown       []TierBreakdown `json:"breakdown"`
}

// Result is a complete allocation of the investment across accounts.
// ChosenSalaryAccount is nil unless a salary-constrained optimization selected
// an account for the salary credit.
type Result struct {
	Allocations          map[string]AccountAllocation `json:"allocations"`
	TotalAnnualInterest  float64                      `json:"totalAnnualInterest"`
	TotalMonthlyInterest float64                      `json:"totalMonthlyInterest"`
	EffectiveRatePercent float64                      `json:"effectiveRatePercent"`
	ChosenSalaryAccount  *string                      `json:"chosenSalaryAccount,omitempty"`
}

// ScenarioSummary is the outcome of one alternative deposit strategy.
type ScenarioSummary struct {
	Name                 string  `json:"name"`
	AnnualInterest       float64 `json:"annualInterest"`
	MonthlyInterest      float64 `json:"monthlyInterest"`
	EffectiveRatePercent float64 `json:"effectiveRatePercent"`
}

// Comparison contrasts the optimized allocation with naive strategies.
type Comparison struct {
	EqualSplit           ScenarioSummary   `json:"equalSplit"`
	AssumedSalaryAccount *string           `json:"assumedSalaryAccount,omitempty"`
	SingleAccount        []ScenarioSummary `json:"singleAccount"`
	AnnualAdvantage      float64           `json:"annualAdvantage"`
	MonthlyAdvantage     float64           `json:"monthlyAdvantage"`
}

func cloneAccounts(accounts []Account) []Account {
	clones := make([]Account, len(accounts))
	for i, account := range accounts {
		clones[i] = account.Clone()
	}
	return clones
}

func emptyResult() Result {
	return Result{Allocations: make(map[string]AccountAllocation)}
}
