package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"plutusgrip-client/internal/dto"
	apierrors "plutusgrip-client/internal/errors"
	"plutusgrip-client/internal/models"
)

const defaultListLimit = 100

// ListBudgets fetches budgets with skip/limit pagination.
func (c *Client) ListBudgets(ctx context.Context, filters models.BudgetFilters) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/budgets",
		resource: "budgets",
		query:    skipLimitQuery(filters.Skip, filters.Limit),
		out:      &budgets,
	}); err != nil {
		return nil, err
	}
	return budgets, nil
}

func (c *Client) GetBudget(ctx context.Context, id string) (*models.Budget, error) {
	var budget models.Budget
	if err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     fmt.Sprintf("/budgets/%s", id),
		resource: "budgets",
		out:      &budget,
	}); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (c *Client) CreateBudget(ctx context.Context, req dto.BudgetCreateRequest) (*models.Budget, error) {
	if err := c.validator.Struct(req); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	var budget models.Budget
	if err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/budgets",
		resource: "budgets",
		body:     req,
		out:      &budget,
	}); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (c *Client) UpdateBudget(ctx context.Context, id string, req dto.BudgetUpdateRequest) (*models.Budget, error) {
	if err := c.validator.Struct(req); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	var budget models.Budget
	if err := c.do(ctx, request{
		method:   http.MethodPut,
		path:     fmt.Sprintf("/budgets/%s", id),
		resource: "budgets",
		body:     req,
		out:      &budget,
	}); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (c *Client) DeleteBudget(ctx context.Context, id string) error {
	return c.do(ctx, request{
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/budgets/%s", id),
		resource: "budgets",
	})
}

// BudgetStatus fetches current-period consumption for one budget.
func (c *Client) BudgetStatus(ctx context.Context, id string) (*models.BudgetStatus, error) {
	var status models.BudgetStatus
	if err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     fmt.Sprintf("/budgets/%s/status", id),
		resource: "budgets",
		out:      &status,
	}); err != nil {
		return nil, err
	}
	return &status, nil
}

func skipLimitQuery(skip, limit int) url.Values {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 {
		limit = defaultListLimit
	}

	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("limit", strconv.Itoa(limit))
	return query
}
