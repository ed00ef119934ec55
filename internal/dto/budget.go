package dto

import (
	"github.com/shopspring/decimal"

	"plutusgrip-client/internal/models"
)

// BudgetCreateRequest creates a spending cap for a category
type BudgetCreateRequest struct {
	CategoryID int                 `json:"category_id" validate:"required,min=1"`
	Amount     decimal.Decimal     `json:"amount" validate:"positive_amount"`
	Period     models.BudgetPeriod `json:"period" validate:"required,budget_period"`
	StartDate  models.Date         `json:"start_date" validate:"required"`
	EndDate    *models.Date        `json:"end_date,omitempty"`
}

// BudgetUpdateRequest carries a partial budget update
type BudgetUpdateRequest struct {
	CategoryID *int                 `json:"category_id,omitempty" validate:"omitempty,min=1"`
	Amount     *decimal.Decimal     `json:"amount,omitempty" validate:"omitempty,positive_amount"`
	Period     *models.BudgetPeriod `json:"period,omitempty" validate:"omitempty,budget_period"`
	StartDate  *models.Date         `json:"start_date,omitempty"`
	EndDate    *models.Date         `json:"end_date,omitempty"`
}
