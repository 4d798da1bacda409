// Package summary derives display figures from an account's movement
// history. All functions are stateless and never mutate the account.
package summary

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/bankist-dev/bankist/internal/model"
)

// minQualifyingInterest is the business rule threshold: a deposit's computed
// interest counts only when it reaches one full currency unit.
var minQualifyingInterest = decimal.NewFromInt(1)

var oneHundred = decimal.NewFromInt(100)

// Balance is the running sum of all movements.
func Balance(acc *model.Account) decimal.Decimal {
	total := decimal.Zero
	for _, m := range acc.Movements() {
		total = total.Add(m)
	}
	return total
}

// Income is the sum of all positive movements.
func Income(acc *model.Account) decimal.Decimal {
	total := decimal.Zero
	for _, m := range acc.Movements() {
		if m.IsPositive() {
			total = total.Add(m)
		}
	}
	return total
}

// Expense is the sum of all negative movements, reported as a non-negative
// magnitude.
func Expense(acc *model.Account) decimal.Decimal {
	total := decimal.Zero
	for _, m := range acc.Movements() {
		if m.IsNegative() {
			total = total.Add(m)
		}
	}
	return total.Abs()
}

// Interest sums the per-deposit interest (deposit * rate / 100) over all
// positive movements, skipping deposits whose computed interest falls below
// one currency unit.
func Interest(acc *model.Account) decimal.Decimal {
	total := decimal.Zero
	for _, m := range acc.Movements() {
		if !m.IsPositive() {
			continue
		}
		interest := m.Mul(acc.InterestRate()).Div(oneHundred)
		if interest.GreaterThanOrEqual(minQualifyingInterest) {
			total = total.Add(interest)
		}
	}
	return total
}

// SortedView returns a new slice of movements: ascending numeric order when
// ascending is true, otherwise the original chronological order. The stored
// history is never reordered; the caller owns the sort toggle.
func SortedView(movements []decimal.Decimal, ascending bool) []decimal.Decimal {
	view := make([]decimal.Decimal, len(movements))
	copy(view, movements)
	if ascending {
		sort.Slice(view, func(i, j int) bool {
			return view[i].LessThan(view[j])
		})
	}
	return view
}
