package models

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// PercentageChange compares two values already returned by the backend,
// e.g. adjacent entries of a trend series. A zero previous value maps to
// 0% or 100% instead of dividing by zero.
func PercentageChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.IsZero() {
			return decimal.Zero
		}
		return hundred
	}
	return current.Sub(previous).Div(previous).Mul(hundred)
}

// BudgetUsage returns spent as a percentage of budget, with the same
// zero-denominator convention as PercentageChange.
func BudgetUsage(spent, budget decimal.Decimal) decimal.Decimal {
	if budget.IsZero() {
		if spent.IsZero() {
			return decimal.Zero
		}
		return hundred
	}
	return spent.Div(budget).Mul(hundred)
}
