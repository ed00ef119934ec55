package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"plutusgrip-client/internal/dto"
	apierrors "plutusgrip-client/internal/errors"
	"plutusgrip-client/internal/models"
)

// ListRecurringTransactions fetches recurring transaction templates.
// Occurrence expansion happens server side, in the report endpoints.
func (c *Client) ListRecurringTransactions(ctx context.Context, filters models.RecurringTransactionFilters) ([]models.RecurringTransaction, error) {
	query := skipLimitQuery(filters.Skip, filters.Limit)
	if filters.IsActive != nil {
		query.Set("is_active", strconv.FormatBool(*filters.IsActive))
	}

	var recurring []models.RecurringTransaction
	if err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/recurring-transactions",
		resource: "recurring_transactions",
		query:    query,
		out:      &recurring,
	}); err != nil {
		return nil, err
	}
	return recurring, nil
}

func (c *Client) GetRecurringTransaction(ctx context.Context, id string) (*models.RecurringTransaction, error) {
	var recurring models.RecurringTransaction
	if err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     fmt.Sprintf("/recurring-transactions/%s", id),
		resource: "recurring_transactions",
		out:      &recurring,
	}); err != nil {
		return nil, err
	}
	return &recurring, nil
}

func (c *Client) CreateRecurringTransaction(ctx context.Context, req dto.RecurringTransactionCreateRequest) (*models.RecurringTransaction, error) {
	if err := c.validator.Struct(req); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	var recurring models.RecurringTransaction
	if err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/recurring-transactions",
		resource: "recurring_transactions",
		body:     req,
		out:      &recurring,
	}); err != nil {
		return nil, err
	}
	return &recurring, nil
}

func (c *Client) UpdateRecurringTransaction(ctx context.Context, id string, req dto.RecurringTransactionUpdateRequest) (*models.RecurringTransaction, error) {
	if err := c.validator.Struct(req); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	var recurring models.RecurringTransaction
	if err := c.do(ctx, request{
		method:   http.MethodPut,
		path:     fmt.Sprintf("/recurring-transactions/%s", id),
		resource: "recurring_transactions",
		body:     req,
		out:      &recurring,
	}); err != nil {
		return nil, err
	}
	return &recurring, nil
}

func (c *Client) DeleteRecurringTransaction(ctx context.Context, id string) error {
	return c.do(ctx, request{
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/recurring-transactions/%s", id),
		resource: "recurring_transactions",
	})
}
