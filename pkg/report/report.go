package report

import (
	"github.com/shopspring/decimal"

	"github.com/siteledger/siteledger/pkg/expense"
)

// CategoryTotal is the spend recorded against one expense category.
type CategoryTotal struct {
	Category expense.ExpenseCategory
	Label    string
	Count    int
	Total    decimal.Decimal
}

// SiteSummary aggregates a site's expenses over a period: the grand total
// plus a per-category breakdown in the categories' canonical order.
type SiteSummary struct {
	SiteID       string
	ExpenseCount int
	TotalAmount  decimal.Decimal
	Categories   []CategoryTotal
}
