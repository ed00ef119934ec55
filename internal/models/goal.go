package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalPriority orders goals for display and reminders.
type GoalPriority string

const (
	GoalPriorityLow    GoalPriority = "low"
	GoalPriorityMedium GoalPriority = "medium"
	GoalPriorityHigh   GoalPriority = "high"
)

// IsValid reports whether the priority is one of the allowed values.
func (p GoalPriority) IsValid() bool {
	switch p {
	case GoalPriorityLow, GoalPriorityMedium, GoalPriorityHigh:
		return true
	}
	return false
}

// Goal is a savings target. Progress accrues through the dedicated
// progress endpoint and completion is a one-way transition.
type Goal struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      *Date           `json:"deadline,omitempty"`
	Category      string          `json:"category,omitempty"`
	Priority      GoalPriority    `json:"priority"`
	IsCompleted   bool            `json:"is_completed"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
