package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Frequency is the recurrence schedule of a recurring transaction.
type Frequency string

const (
	FrequencyDaily     Frequency = "daily"
	FrequencyWeekly    Frequency = "weekly"
	FrequencyBiweekly  Frequency = "biweekly"
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyYearly    Frequency = "yearly"
)

// IsValid reports whether the frequency is one of the allowed values.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly,
		FrequencyMonthly, FrequencyQuarterly, FrequencyYearly:
		return true
	}
	return false
}

// RecurringTransaction is a template the backend expands into ledger
// entries on schedule. The client never expands occurrences itself.
type RecurringTransaction struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency,omitempty"`
	Type        TransactionType `json:"type"`
	CategoryID  string          `json:"category_id,omitempty"`
	Frequency   Frequency       `json:"frequency"`
	StartDate   Date            `json:"start_date"`
	EndDate     *Date           `json:"end_date,omitempty"`
	IsActive    bool            `json:"is_active"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
