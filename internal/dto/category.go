package dto

import "plutusgrip-client/internal/models"

// CategoryCreateRequest creates a user-defined category
type CategoryCreateRequest struct {
	Name  string                 `json:"name" validate:"required,min=1,max=100"`
	Type  models.TransactionType `json:"type" validate:"required,transaction_type"`
	Color string                 `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Icon  string                 `json:"icon,omitempty" validate:"omitempty,max=50"`
}

// CategoryUpdateRequest carries a partial category update
type CategoryUpdateRequest struct {
	Name  *string                 `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Type  *models.TransactionType `json:"type,omitempty" validate:"omitempty,transaction_type"`
	Color *string                 `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Icon  *string                 `json:"icon,omitempty" validate:"omitempty,max=50"`
}

// CategoryListResponse is the envelope of the unfiltered category list
type CategoryListResponse struct {
	Categories []models.Category `json:"categories"`
	Total      int               `json:"total"`
}
