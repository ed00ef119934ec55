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

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// ListTransactions fetches one page of transactions with optional type
// and category filters.
func (c *Client) ListTransactions(ctx context.Context, filters models.TransactionFilters) (*dto.TransactionListResponse, error) {
	page := filters.Page
	if page < 1 {
		page = defaultPage
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))
	if filters.Type != "" {
		query.Set("type", string(filters.Type))
	}
	if filters.CategoryID != "" {
		query.Set("category", filters.CategoryID)
	}

	var resp dto.TransactionListResponse
	if err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/transactions",
		resource: "transactions",
		query:    query,
		out:      &resp,
	}); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) GetTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     fmt.Sprintf("/transactions/%s", id),
		resource: "transactions",
		out:      &transaction,
	}); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (c *Client) CreateTransaction(ctx context.Context, req dto.TransactionCreateRequest) (*models.Transaction, error) {
	if err := c.validator.Struct(req); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	var transaction models.Transaction
	if err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/transactions",
		resource: "transactions",
		body:     req,
		out:      &transaction,
	}); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (c *Client) UpdateTransaction(ctx context.Context, id string, req dto.TransactionUpdateRequest) (*models.Transaction, error) {
	if err := c.validator.Struct(req); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	var transaction models.Transaction
	if err := c.do(ctx, request{
		method:   http.MethodPut,
		path:     fmt.Sprintf("/transactions/%s", id),
		resource: "transactions",
		body:     req,
		out:      &transaction,
	}); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.do(ctx, request{
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/transactions/%s", id),
		resource: "transactions",
	})
}
