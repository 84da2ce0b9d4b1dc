package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is one persisted expense record. TotalAmount is derived from the
// category's formula at creation or update time and is never recomputed by
// the persistence layer.
type Expense struct {
	ID     string
	Date   time.Time
	SiteID string
	Type   ExpenseCategory
	// Fields holds the category-specific values exactly as entered.
	Fields      Values
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
