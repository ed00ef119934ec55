package dto

import (
	"github.com/shopspring/decimal"

	"plutusgrip-client/internal/models"
)

// RecurringTransactionCreateRequest creates a recurrence template
type RecurringTransactionCreateRequest struct {
	Description string                 `json:"description" validate:"required,min=1,max=255"`
	Amount      decimal.Decimal        `json:"amount" validate:"positive_amount"`
	Currency    string                 `json:"currency,omitempty" validate:"omitempty,len=3"`
	Type        models.TransactionType `json:"type" validate:"required,transaction_type"`
	CategoryID  string                 `json:"category_id,omitempty"`
	Frequency   models.Frequency       `json:"frequency" validate:"required,recurrence_frequency"`
	StartDate   models.Date            `json:"start_date" validate:"required"`
	EndDate     *models.Date           `json:"end_date,omitempty"`
	Notes       string                 `json:"notes,omitempty" validate:"max=1000"`
}

// RecurringTransactionUpdateRequest carries a partial template update
type RecurringTransactionUpdateRequest struct {
	Description *string                 `json:"description,omitempty" validate:"omitempty,min=1,max=255"`
	Amount      *decimal.Decimal        `json:"amount,omitempty" validate:"omitempty,positive_amount"`
	Currency    *string                 `json:"currency,omitempty" validate:"omitempty,len=3"`
	Type        *models.TransactionType `json:"type,omitempty" validate:"omitempty,transaction_type"`
	CategoryID  *string                 `json:"category_id,omitempty"`
	Frequency   *models.Frequency       `json:"frequency,omitempty" validate:"omitempty,recurrence_frequency"`
	StartDate   *models.Date            `json:"start_date,omitempty"`
	EndDate     *models.Date            `json:"end_date,omitempty"`
	IsActive    *bool                   `json:"is_active,omitempty"`
	Notes       *string                 `json:"notes,omitempty" validate:"omitempty,max=1000"`
}
