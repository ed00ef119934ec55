package client

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"plutusgrip-client/internal/config"
	"plutusgrip-client/internal/dto"
	"plutusgrip-client/internal/models"
)

// ResourceAPITestSuite covers the typed wrappers for categories,
// budgets, goals, recurring transactions and reports
type ResourceAPITestSuite struct {
	suite.Suite
	server    *httptest.Server
	client    *Client
	ctx       context.Context
	lastQuery map[string]string
}

// SetupTest runs before each test
func (s *ResourceAPITestSuite) SetupTest() {
	s.ctx = context.Background()
	s.lastQuery = nil

	e := echo.New()
	capture := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s.lastQuery = map[string]string{}
			for key, values := range c.QueryParams() {
				s.lastQuery[key] = values[0]
			}
			return next(c)
		}
	}
	e.Use(capture)

	e.GET("/categories", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"categories": []echo.Map{
				{"id": "cat_1", "name": "Groceries", "type": "expense", "is_default": true},
				{"id": "cat_2", "name": "Salary", "type": "income", "is_default": true},
			},
			"total": 2,
		})
	})
	e.POST("/categories", func(c echo.Context) error {
		var body map[string]interface{}
		if err := c.Bind(&body); err != nil {
			return err
		}
		body["id"] = "cat_new"
		return c.JSON(http.StatusCreated, body)
	})
	e.PUT("/categories/:id", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"id": c.Param("id"), "name": "Renamed", "type": "expense"})
	})
	e.DELETE("/categories/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	e.GET("/budgets", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []echo.Map{
			{"id": "bud_1", "category_id": 3, "amount": 500, "period": "monthly", "start_date": "2025-03-01"},
		})
	})
	e.POST("/budgets", func(c echo.Context) error {
		var body map[string]interface{}
		if err := c.Bind(&body); err != nil {
			return err
		}
		body["id"] = "bud_new"
		return c.JSON(http.StatusCreated, body)
	})
	e.GET("/budgets/:id/status", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"budget_amount":    500,
			"spent_amount":     410.5,
			"remaining_amount": 89.5,
			"percentage_used":  82.1,
			"is_exceeded":      false,
		})
	})

	e.GET("/goals", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []echo.Map{
			{"id": "goal_1", "name": "Vacation", "target_amount": 3000, "current_amount": 1200, "priority": "high", "is_completed": false},
		})
	})
	e.POST("/goals/:id/progress", func(c echo.Context) error {
		var body dto.GoalProgressRequest
		if err := c.Bind(&body); err != nil {
			return err
		}
		return c.JSON(http.StatusOK, echo.Map{
			"id": c.Param("id"), "name": "Vacation",
			"target_amount": 3000, "current_amount": body.Amount.Add(decimal.NewFromInt(1200)),
			"priority": "high", "is_completed": false,
		})
	})
	e.POST("/goals/:id/complete", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"id": c.Param("id"), "name": "Vacation",
			"target_amount": 3000, "current_amount": 3000,
			"priority": "high", "is_completed": true,
		})
	})

	e.GET("/recurring-transactions", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []echo.Map{
			{"id": "rec_1", "description": "Rent", "amount": 1500, "type": "expense", "frequency": "monthly", "start_date": "2025-01-01", "is_active": true},
		})
	})

	e.GET("/reports/dashboard", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"total_income": 9000, "total_expense": 6500, "balance": 2500,
			"transaction_count": 48, "income_count": 6, "expense_count": 42,
		})
	})
	e.GET("/reports/summary", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"period_start": "2025-03-01", "period_end": "2025-03-31",
			"total_income": 3000, "total_expense": 2100, "net_balance": 900,
			"transaction_count": 17,
		})
	})
	e.GET("/reports/trends", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"income":  []echo.Map{{"month": "2025-02", "value": 3000}, {"month": "2025-03", "value": 3000}},
			"expense": []echo.Map{{"month": "2025-02", "value": 1900}, {"month": "2025-03", "value": 2100}},
			"balance": []echo.Map{{"month": "2025-02", "value": 1100}, {"month": "2025-03", "value": 900}},
		})
	})
	e.GET("/reports/patterns", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"top_expense_categories": []echo.Map{{"category": "Groceries", "total": 820.40}},
			"average_daily_spending": 70,
			"period_days":            30,
		})
	})

	s.server = httptest.NewServer(e)

	cfg := config.APIConfig{
		BaseURL:            s.server.URL,
		Timeout:            5 * time.Second,
		RateLimitPerSecond: 100,
		RateLimitBurst:     100,
		UserAgent:          "plutusgrip-client/test",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := &memStore{access: "token_abc123", refresh: "refresh_abc123"}
	s.client = New(cfg, store, logger, WithRegisterer(prometheus.NewRegistry()))
}

// TearDownTest runs after each test
func (s *ResourceAPITestSuite) TearDownTest() {
	s.server.Close()
}

// TestRunResourceAPISuite runs the test suite
func TestRunResourceAPISuite(t *testing.T) {
	suite.Run(t, new(ResourceAPITestSuite))
}

func (s *ResourceAPITestSuite) TestListCategories_TypeFilter() {
	resp, err := s.client.ListCategories(s.ctx, models.CategoryFilters{Type: models.TransactionTypeExpense})
	s.NoError(err)
	s.Equal(2, resp.Total)
	s.Equal("expense", s.lastQuery["type"])
}

func (s *ResourceAPITestSuite) TestCreateCategory() {
	cat, err := s.client.CreateCategory(s.ctx, dto.CategoryCreateRequest{
		Name: "Utilities",
		Type: models.TransactionTypeExpense,
	})
	s.NoError(err)
	s.Equal("cat_new", cat.ID)
	s.Equal("Utilities", cat.Name)
}

func (s *ResourceAPITestSuite) TestUpdateCategory() {
	name := "Renamed"
	cat, err := s.client.UpdateCategory(s.ctx, "cat_1", dto.CategoryUpdateRequest{Name: &name})
	s.NoError(err)
	s.Equal("Renamed", cat.Name)
}

func (s *ResourceAPITestSuite) TestDeleteCategory() {
	s.NoError(s.client.DeleteCategory(s.ctx, "cat_1"))
}

func (s *ResourceAPITestSuite) TestListBudgets_SkipLimit() {
	budgets, err := s.client.ListBudgets(s.ctx, models.BudgetFilters{Skip: 10, Limit: 5})
	s.NoError(err)
	s.Len(budgets, 1)
	s.Equal("10", s.lastQuery["skip"])
	s.Equal("5", s.lastQuery["limit"])
}

func (s *ResourceAPITestSuite) TestListBudgets_DefaultLimit() {
	_, err := s.client.ListBudgets(s.ctx, models.BudgetFilters{})
	s.NoError(err)
	s.Equal("0", s.lastQuery["skip"])
	s.Equal("100", s.lastQuery["limit"])
}

func (s *ResourceAPITestSuite) TestCreateBudget() {
	budget, err := s.client.CreateBudget(s.ctx, dto.BudgetCreateRequest{
		CategoryID: 3,
		Amount:     decimal.NewFromInt(500),
		Period:     models.BudgetPeriodMonthly,
		StartDate:  models.NewDate(2025, time.March, 1),
	})
	s.NoError(err)
	s.Equal("bud_new", budget.ID)
}

func (s *ResourceAPITestSuite) TestBudgetStatus() {
	status, err := s.client.BudgetStatus(s.ctx, "bud_1")
	s.NoError(err)
	s.True(status.SpentAmount.Equal(decimal.NewFromFloat(410.5)))
	s.False(status.IsExceeded)
}

func (s *ResourceAPITestSuite) TestListGoals_CompletionFilter() {
	completed := false
	goals, err := s.client.ListGoals(s.ctx, models.GoalFilters{IsCompleted: &completed})
	s.NoError(err)
	s.Len(goals, 1)
	s.Equal("false", s.lastQuery["is_completed"])
}

func (s *ResourceAPITestSuite) TestAddGoalProgress() {
	goal, err := s.client.AddGoalProgress(s.ctx, "goal_1", decimal.NewFromInt(300))
	s.NoError(err)
	s.True(goal.CurrentAmount.Equal(decimal.NewFromInt(1500)))
}

func (s *ResourceAPITestSuite) TestAddGoalProgress_RejectsNonPositiveAmount() {
	_, err := s.client.AddGoalProgress(s.ctx, "goal_1", decimal.NewFromInt(-10))
	s.Error(err)
}

func (s *ResourceAPITestSuite) TestCompleteGoal() {
	goal, err := s.client.CompleteGoal(s.ctx, "goal_1")
	s.NoError(err)
	s.True(goal.IsCompleted)
}

func (s *ResourceAPITestSuite) TestListRecurring_ActiveFilter() {
	active := true
	recurring, err := s.client.ListRecurringTransactions(s.ctx, models.RecurringTransactionFilters{IsActive: &active})
	s.NoError(err)
	s.Len(recurring, 1)
	s.Equal("true", s.lastQuery["is_active"])
	s.Equal(models.FrequencyMonthly, recurring[0].Frequency)
}

func (s *ResourceAPITestSuite) TestDashboard() {
	data, err := s.client.Dashboard(s.ctx)
	s.NoError(err)
	s.True(data.Balance.Equal(decimal.NewFromInt(2500)))
	s.Equal(48, data.TransactionCount)
}

func (s *ResourceAPITestSuite) TestFinancialSummary_RangeQuery() {
	start := models.NewDate(2025, time.March, 1)
	end := models.NewDate(2025, time.March, 31)
	summary, err := s.client.FinancialSummary(s.ctx, models.SummaryRange{StartDate: &start, EndDate: &end})
	s.NoError(err)
	s.Equal("2025-03-01", s.lastQuery["start_date"])
	s.Equal("2025-03-31", s.lastQuery["end_date"])
	s.True(summary.NetBalance.Equal(decimal.NewFromInt(900)))
}

func (s *ResourceAPITestSuite) TestMonthlyTrends_DefaultMonths() {
	trends, err := s.client.MonthlyTrends(s.ctx, 0)
	s.NoError(err)
	s.Equal("6", s.lastQuery["months"])
	s.Len(trends.Balance, 2)
}

func (s *ResourceAPITestSuite) TestSpendingPatterns() {
	patterns, err := s.client.SpendingPatterns(s.ctx)
	s.NoError(err)
	s.Equal(30, patterns.PeriodDays)
	s.Require().Len(patterns.TopExpenseCategories, 1)
	s.Equal("Groceries", patterns.TopExpenseCategories[0].Category)
}
