package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/siteledger/siteledger/pkg/expense"
)

type ReportService interface {
	// SiteSummary aggregates the site's expenses between from and to
	// (inclusive); zero times mean no bound on that side.
	SiteSummary(ctx context.Context, siteID string, from, to time.Time) (SiteSummary, error)
}

type ReportServiceImpl struct {
	expenses expense.ExpenseRepo
}

func NewReportService(expenses expense.ExpenseRepo) *ReportServiceImpl {
	return &ReportServiceImpl{expenses: expenses}
}

func (s *ReportServiceImpl) SiteSummary(ctx context.Context, siteID string, from, to time.Time) (SiteSummary, error) {
	expenses, err := s.expenses.ListForSite(ctx, siteID, "")
	if err != nil {
		return SiteSummary{}, err
	}

	summary := SiteSummary{SiteID: siteID, TotalAmount: decimal.Zero}
	totals := make(map[expense.ExpenseCategory]*CategoryTotal)
	for _, e := range expenses {
		if !from.IsZero() && e.Date.Before(from) {
			continue
		}
		if !to.IsZero() && e.Date.After(to) {
			continue
		}
		summary.ExpenseCount++
		summary.TotalAmount = summary.TotalAmount.Add(e.TotalAmount)

		ct, ok := totals[e.Type]
		if !ok {
			ct = &CategoryTotal{Category: e.Type, Label: e.Type.Label(), Total: decimal.Zero}
			totals[e.Type] = ct
		}
		ct.Count++
		ct.Total = ct.Total.Add(e.TotalAmount)
	}

	// Categories keep the canonical form order; untouched ones are omitted.
	for _, category := range expense.AllCategories() {
		if ct, ok := totals[category]; ok {
			summary.Categories = append(summary.Categories, *ct)
		}
	}
	return summary, nil
}
