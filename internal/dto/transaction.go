package dto

import (
	"github.com/shopspring/decimal"

	"plutusgrip-client/internal/models"
)

// TransactionCreateRequest creates a new ledger entry
type TransactionCreateRequest struct {
	Description string                 `json:"description" validate:"required,min=1,max=255"`
	Amount      decimal.Decimal        `json:"amount" validate:"positive_amount"`
	Type        models.TransactionType `json:"type" validate:"required,transaction_type"`
	CategoryID  int                    `json:"category_id" validate:"required,min=1"`
	Date        models.Date            `json:"date" validate:"required"`
	Notes       string                 `json:"notes,omitempty" validate:"max=1000"`
}

// TransactionUpdateRequest carries a partial update; nil fields are
// omitted from the request body.
type TransactionUpdateRequest struct {
	Description *string                 `json:"description,omitempty" validate:"omitempty,min=1,max=255"`
	Amount      *decimal.Decimal        `json:"amount,omitempty" validate:"omitempty,positive_amount"`
	Type        *models.TransactionType `json:"type,omitempty" validate:"omitempty,transaction_type"`
	CategoryID  *int                    `json:"category_id,omitempty" validate:"omitempty,min=1"`
	Date        *models.Date            `json:"date,omitempty"`
	Notes       *string                 `json:"notes,omitempty" validate:"omitempty,max=1000"`
}

// TransactionListResponse is the canonical paginated envelope for the
// transaction list endpoint.
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int                  `json:"total"`
	Page         int                  `json:"page"`
	PageSize     int                  `json:"page_size"`
}
