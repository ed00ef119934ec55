package dto

import (
	"github.com/shopspring/decimal"

	"plutusgrip-client/internal/models"
)

// GoalCreateRequest creates a savings target
type GoalCreateRequest struct {
	Name         string              `json:"name" validate:"required,min=1,max=100"`
	Description  string              `json:"description,omitempty" validate:"max=1000"`
	TargetAmount decimal.Decimal     `json:"target_amount" validate:"positive_amount"`
	Deadline     *models.Date        `json:"deadline,omitempty"`
	Category     string              `json:"category,omitempty" validate:"max=100"`
	Priority     models.GoalPriority `json:"priority" validate:"required,goal_priority"`
}

// GoalUpdateRequest carries a partial goal update
type GoalUpdateRequest struct {
	Name         *string              `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description  *string              `json:"description,omitempty" validate:"omitempty,max=1000"`
	TargetAmount *decimal.Decimal     `json:"target_amount,omitempty" validate:"omitempty,positive_amount"`
	Deadline     *models.Date         `json:"deadline,omitempty"`
	Category     *string              `json:"category,omitempty" validate:"omitempty,max=100"`
	Priority     *models.GoalPriority `json:"priority,omitempty" validate:"omitempty,goal_priority"`
}

// GoalProgressRequest appends an amount to a goal's progress
type GoalProgressRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"positive_amount"`
}
