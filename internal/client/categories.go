package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"plutusgrip-client/internal/dto"
	apierrors "plutusgrip-client/internal/errors"
	"plutusgrip-client/internal/models"
)

// ListCategories fetches categories, optionally narrowed to one
// transaction type.
func (c *Client) ListCategories(ctx context.Context, filters models.CategoryFilters) (*dto.CategoryListResponse, error) {
	query := url.Values{}
	if filters.Type != "" {
		query.Set("type", string(filters.Type))
	}

	var resp dto.CategoryListResponse
	if err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/categories",
		resource: "categories",
		query:    query,
		out:      &resp,
	}); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) CreateCategory(ctx context.Context, req dto.CategoryCreateRequest) (*models.Category, error) {
	if err := c.validator.Struct(req); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	var category models.Category
	if err := c.do(ctx, request{
		method:   http.MethodPost,
		path:     "/categories",
		resource: "categories",
		body:     req,
		out:      &category,
	}); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id string, req dto.CategoryUpdateRequest) (*models.Category, error) {
	if err := c.validator.Struct(req); err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	var category models.Category
	if err := c.do(ctx, request{
		method:   http.MethodPut,
		path:     fmt.Sprintf("/categories/%s", id),
		resource: "categories",
		body:     req,
		out:      &category,
	}); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, request{
		method:   http.MethodDelete,
		path:     fmt.Sprintf("/categories/%s", id),
		resource: "categories",
	})
}
