package client

import (
	"context"

	"github.com/shopspring/decimal"

	"plutusgrip-client/internal/dto"
	"plutusgrip-client/internal/models"
)

type AuthAPI interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req dto.LoginRequest) (*models.User, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	StoredUser() (*models.User, error)
	IsAuthenticated() bool
}

type TransactionAPI interface {
	ListTransactions(ctx context.Context, filters models.TransactionFilters) (*dto.TransactionListResponse, error)
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	CreateTransaction(ctx context.Context, req dto.TransactionCreateRequest) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, req dto.TransactionUpdateRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

type CategoryAPI interface {
	ListCategories(ctx context.Context, filters models.CategoryFilters) (*dto.CategoryListResponse, error)
	CreateCategory(ctx context.Context, req dto.CategoryCreateRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, req dto.CategoryUpdateRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type BudgetAPI interface {
	ListBudgets(ctx context.Context, filters models.BudgetFilters) ([]models.Budget, error)
	GetBudget(ctx context.Context, id string) (*models.Budget, error)
	CreateBudget(ctx context.Context, req dto.BudgetCreateRequest) (*models.Budget, error)
	UpdateBudget(ctx context.Context, id string, req dto.BudgetUpdateRequest) (*models.Budget, error)
	DeleteBudget(ctx context.Context, id string) error
	BudgetStatus(ctx context.Context, id string) (*models.BudgetStatus, error)
}

type GoalAPI interface {
	ListGoals(ctx context.Context, filters models.GoalFilters) ([]models.Goal, error)
	GetGoal(ctx context.Context, id string) (*models.Goal, error)
	CreateGoal(ctx context.Context, req dto.GoalCreateRequest) (*models.Goal, error)
	UpdateGoal(ctx context.Context, id string, req dto.GoalUpdateRequest) (*models.Goal, error)
	DeleteGoal(ctx context.Context, id string) error
	AddGoalProgress(ctx context.Context, id string, amount decimal.Decimal) (*models.Goal, error)
	CompleteGoal(ctx context.Context, id string) (*models.Goal, error)
}

type RecurringTransactionAPI interface {
	ListRecurringTransactions(ctx context.Context, filters models.RecurringTransactionFilters) ([]models.RecurringTransaction, error)
	GetRecurringTransaction(ctx context.Context, id string) (*models.RecurringTransaction, error)
	CreateRecurringTransaction(ctx context.Context, req dto.RecurringTransactionCreateRequest) (*models.RecurringTransaction, error)
	UpdateRecurringTransaction(ctx context.Context, id string, req dto.RecurringTransactionUpdateRequest) (*models.RecurringTransaction, error)
	DeleteRecurringTransaction(ctx context.Context, id string) error
}

type ReportAPI interface {
	Dashboard(ctx context.Context) (*models.DashboardData, error)
	FinancialSummary(ctx context.Context, rng models.SummaryRange) (*models.FinancialSummary, error)
	CategoryBreakdown(ctx context.Context, transactionType models.TransactionType, rng models.SummaryRange) ([]models.CategoryBreakdownEntry, error)
	MonthlyTrends(ctx context.Context, months int) (*models.MonthlyTrends, error)
	SpendingPatterns(ctx context.Context) (*models.SpendingPatterns, error)
}

// API is the full typed surface of the PlutusGrip backend.
type API interface {
	AuthAPI
	TransactionAPI
	CategoryAPI
	BudgetAPI
	GoalAPI
	RecurringTransactionAPI
	ReportAPI
}

var _ API = (*Client)(nil)
