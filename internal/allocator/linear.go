package allocator

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/fin-tools/depositmax/pkg/mathutil"
)

// relaxationObjective returns the negated headline (first tier) rate per
// account. The relaxation pays every dollar at the account's best rate; the
// true tiered interest is recomputed once deposits are known. Accounts with
// no tiers get a zero coefficient.
func relaxationObjective(accounts []Account) []float64 {
	objective := make([]float64, len(accounts))
	for i, account := range accounts {
		if len(account.Tiers) > 0 {
			objective[i] = -account.Tiers[0].Rate
		}
	}
	return objective
}

// depositBounds returns the upper bound on each account's deposit: the lesser
// of the account's total tier capacity and the whole investment.
func depositBounds(accounts []Account, total float64) []float64 {
	bounds := make([]float64, len(accounts))
	for i, account := range accounts {
		bounds[i] = mathutil.Min(account.CapacitySum(), total)
	}
	return bounds
}

// solveAllocationLP minimizes the relaxed objective subject to deposits
// summing to total and each deposit staying within its bound. The bounded
// problem is converted to standard form with one slack variable per bound.
func solveAllocationLP(objective, bounds []float64, total float64) ([]float64, error) {
	n := len(objective)
	if n == 0 {
		return nil, fmt.Errorf("no accounts to allocate")
	}

	rows := n + 1
	cols := 2 * n
	data := make([]float64, rows*cols)
	for j := 0; j < n; j++ {
		data[j] = 1 // deposits sum to the investment
	}
	for i := 0; i < n; i++ {
		offset := (i + 1) * cols
		data[offset+i] = 1
		data[offset+n+i] = 1 // slack absorbs the bound headroom
	}

	a := mat.NewDense(rows, cols, data)
	b := make([]float64, rows)
	b[0] = total
	copy(b[1:], bounds)

	c := make([]float64, cols)
	copy(c, objective)

	_, x, err := lp.Simplex(c, a, b, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("simplex solve: %w", err)
	}
	return x[:n], nil
}
