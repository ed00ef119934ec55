package models

// Category labels transactions and budgets. Default categories are
// provisioned by the backend and cannot be deleted there; the client only
// surfaces the resulting success or error.
type Category struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      TransactionType `json:"type"`
	Icon      string          `json:"icon,omitempty"`
	Color     string          `json:"color,omitempty"`
	IsDefault bool            `json:"is_default"`
}
