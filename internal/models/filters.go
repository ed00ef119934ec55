package models

// TransactionFilters contains pagination and filtering options for the
// transaction list endpoint (page/page_size convention).
type TransactionFilters struct {
	Page       int
	PageSize   int
	Type       TransactionType
	CategoryID string
}

// CategoryFilters narrows the category list to one transaction type.
type CategoryFilters struct {
	Type TransactionType
}

// BudgetFilters contains pagination options for the budget list endpoint
// (skip/limit convention).
type BudgetFilters struct {
	Skip  int
	Limit int
}

// GoalFilters contains pagination and completion filtering for the goal
// list endpoint.
type GoalFilters struct {
	Skip        int
	Limit       int
	IsCompleted *bool
}

// RecurringTransactionFilters contains pagination and activity filtering
// for the recurring transaction list endpoint.
type RecurringTransactionFilters struct {
	Skip     int
	Limit    int
	IsActive *bool
}

// SummaryRange bounds a financial summary or category breakdown request.
// Nil dates leave the bound open.
type SummaryRange struct {
	StartDate *Date
	EndDate   *Date
}
