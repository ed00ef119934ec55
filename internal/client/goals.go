package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"plutusgrip-client/internal/dto"
	apierrors "plutusgrip-client/internal/errors"
	"plutusgrip-client/internal/models"
)

// ListGoals fetches goals with skip/limit pagination and an optional
// completion filter.
func (c *Client) ListGoals(ctx context.Context, filters models.GoalFilters) ([]models.Goal, error) {
	query := skipLimitQuery(filters.Skip, filters.Limit)
	if filters.IsCompleted != nil {
		query.Set("is_completed", strconv.FormatBool(*filters.IsCompleted))
	}

	var goals []models.Goal
	if err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/goals",
		resource: "goals",
		query:    query,
		out:      &goals,
	}); err != nil {
		return nil, err
	}
	return goals, nil
}

func (c *Client) GetGoal(ctx context.Context, id string) (*models.Goal, error) {
	var goal models.Goal
	if err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     fmt.Sprintf("/goals/%s", id),
		resource: "goals",
		out:      &goal,
	}); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (c *Client) CreateGoal(ctx context.Context, req dto.GoalCreateRequest) (*models.Goal, error) {
	if err := c.validator.Struct(req); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	var goal models.Goal
	if err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/goals",
		resource: "goals",
		body:     req,
		out:      &goal,
	}); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (c *Client) UpdateGoal(ctx context.Context, id string, req dto.GoalUpdateRequest) (*models.Goal, error) {
	if err := c.validator.Struct(req); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	var goal models.Goal
	if err := c.do(ctx, request{
		method:   http.MethodPut,
		path:     fmt.Sprintf("/goals/%s", id),
		resource: "goals",
		body:     req,
		out:      &goal,
	}); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (c *Client) DeleteGoal(ctx context.Context, id string) error {
	return c.do(ctx, request{
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/goals/%s", id),
		resource: "goals",
	})
}

// AddGoalProgress appends an amount to a goal's current progress.
// Progress is additive; the full record is never rewritten.
func (c *Client) AddGoalProgress(ctx context.Context, id string, amount decimal.Decimal) (*models.Goal, error) {
	req := dto.GoalProgressRequest{Amount: amount}
	if err := c.validator.Struct(req); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	var goal models.Goal
	if err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     fmt.Sprintf("/goals/%s/progress", id),
		resource: "goals",
		body:     req,
		out:      &goal,
	}); err != nil {
		return nil, err
	}
	return &goal, nil
}

// CompleteGoal marks a goal completed. Completion is one way; the API
// offers no endpoint to reopen a goal.
func (c *Client) CompleteGoal(ctx context.Context, id string) (*models.Goal, error) {
	var goal models.Goal
	if err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     fmt.Sprintf("/goals/%s/complete", id),
		resource: "goals",
		out:      &goal,
	}); err != nil {
		return nil, err
	}
	return &goal, nil
}
