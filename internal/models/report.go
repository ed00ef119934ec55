package models

import "github.com/shopspring/decimal"

// Report projections are read-only aggregates computed by the backend.
// The client displays them as returned and never rebuilds them from raw
// transactions.

// DashboardData is the all-time snapshot shown on the dashboard.
type DashboardData struct {
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpense     decimal.Decimal `json:"total_expense"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transaction_count"`
	IncomeCount      int             `json:"income_count"`
	ExpenseCount     int             `json:"expense_count"`
}

// CategoryBreakdownEntry is one category's share of a summary.
type CategoryBreakdownEntry struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Total        decimal.Decimal `json:"total"`
	Count        int             `json:"count"`
}

// FinancialSummary aggregates a date range.
type FinancialSummary struct {
	PeriodStart       Date                       `json:"period_start"`
	PeriodEnd         Date                       `json:"period_end"`
	TotalIncome       decimal.Decimal            `json:"total_income"`
	TotalExpense      decimal.Decimal            `json:"total_expense"`
	NetBalance        decimal.Decimal            `json:"net_balance"`
	TransactionCount  int                        `json:"transaction_count"`
	IncomeByCategory  []CategoryBreakdownEntry   `json:"income_by_category"`
	ExpenseByCategory []CategoryBreakdownEntry   `json:"expense_by_category"`
	DailyTotals       map[string]decimal.Decimal `json:"daily_totals"`
}

// TrendPoint is one month's value in a trend series.
type TrendPoint struct {
	Month string          `json:"month"`
	Value decimal.Decimal `json:"value"`
}

// MonthlyTrends carries parallel income, expense and balance series.
type MonthlyTrends struct {
	Income  []TrendPoint `json:"income"`
	Expense []TrendPoint `json:"expense"`
	Balance []TrendPoint `json:"balance"`
}

// SpendingPatternCategory is one entry of the top-spend ranking.
type SpendingPatternCategory struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// SpendingPatterns summarizes recent spending behaviour.
type SpendingPatterns struct {
	TopExpenseCategories []SpendingPatternCategory `json:"top_expense_categories"`
	AverageDailySpending decimal.Decimal           `json:"average_daily_spending"`
	PeriodDays           int                       `json:"period_days"`
}
