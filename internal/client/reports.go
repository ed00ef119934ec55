package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"plutusgrip-client/internal/models"
)

const defaultTrendMonths = 6

// Dashboard fetches the all-time dashboard snapshot.
func (c *Client) Dashboard(ctx context.Context) (*models.DashboardData, error) {
	var data models.DashboardData
	if err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/reports/dashboard",
		resource: "reports",
		out:      &data,
	}); err != nil {
		return nil, err
	}
	return &data, nil
}

// FinancialSummary fetches aggregates for a date range. Nil bounds are
// omitted and the backend applies its defaults.
func (c *Client) FinancialSummary(ctx context.Context, rng models.SummaryRange) (*models.FinancialSummary, error) {
	var summary models.FinancialSummary
	if err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/reports/summary",
		resource: "reports",
		query:    rangeQuery(rng),
		out:      &summary,
	}); err != nil {
		return nil, err
	}
	return &summary, nil
}

// CategoryBreakdown fetches per-category totals for one transaction
// type over a date range.
func (c *Client) CategoryBreakdown(ctx context.Context, transactionType models.TransactionType, rng models.SummaryRange) ([]models.CategoryBreakdownEntry, error) {
	query := rangeQuery(rng)
	if transactionType != "" {
		query.Set("type", string(transactionType))
	}

	var breakdown []models.CategoryBreakdownEntry
	if err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/reports/categories",
		resource: "reports",
		query:    query,
		out:      &breakdown,
	}); err != nil {
		return nil, err
	}
	return breakdown, nil
}

// MonthlyTrends fetches income, expense and balance series over the
// trailing N months.
func (c *Client) MonthlyTrends(ctx context.Context, months int) (*models.MonthlyTrends, error) {
	if months < 1 {
		months = defaultTrendMonths
	}

	query := url.Values{}
	query.Set("months", strconv.Itoa(months))

	var trends models.MonthlyTrends
	if err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/reports/trends",
		resource: "reports",
		query:    query,
		out:      &trends,
	}); err != nil {
		return nil, err
	}
	return &trends, nil
}

// SpendingPatterns fetches the recent spending behaviour summary.
func (c *Client) SpendingPatterns(ctx context.Context) (*models.SpendingPatterns, error) {
	var patterns models.SpendingPatterns
	if err := c.do(ctx, request{
		method:   http.MethodGet,
		path:     "/reports/patterns",
		resource: "reports",
		out:      &patterns,
	}); err != nil {
		return nil, err
	}
	return &patterns, nil
}

func rangeQuery(rng models.SummaryRange) url.Values {
	query := url.Values{}
	if rng.StartDate != nil {
		query.Set("start_date", rng.StartDate.String())
	}
	if rng.EndDate != nil {
		query.Set("end_date", rng.EndDate.String())
	}
	return query
}
