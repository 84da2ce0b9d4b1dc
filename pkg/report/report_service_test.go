package report

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/siteledger/siteledger/pkg/expense"
)

func storeExpense(t *testing.T, repo *expense.StubExpenseRepo, id, siteID string, category expense.ExpenseCategory, date time.Time, total string) {
	t.Helper()
	err := repo.Store(context.Background(), expense.Expense{
		ID:          id,
		Date:        date,
		SiteID:      siteID,
		Type:        category,
		TotalAmount: decimal.RequireFromString(total),
	})
	assert.NoError(t, err)
}

func TestSiteSummary(t *testing.T) {
	ctx := context.Background()
	march := func(day int) time.Time {
		return time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC)
	}

	t.Run("aggregates per category in canonical order", func(t *testing.T) {
		repo := expense.NewStubExpenseRepo()
		storeExpense(t, repo, "e1", "site-1", expense.CategoryPetrolDiesel, march(10), "3040")
		storeExpense(t, repo, "e2", "site-1", expense.CategoryAccommodationFood, march(11), "1500")
		storeExpense(t, repo, "e3", "site-1", expense.CategoryAccommodationFood, march(12), "800")
		storeExpense(t, repo, "e4", "site-2", expense.CategoryRepairs, march(12), "980")
		service := NewReportService(repo)

		summary, err := service.SiteSummary(ctx, "site-1", time.Time{}, time.Time{})

		assert.NoError(t, err)
		assert.Equal(t, "site-1", summary.SiteID)
		assert.Equal(t, 3, summary.ExpenseCount)
		assert.True(t, summary.TotalAmount.Equal(decimal.RequireFromString("5340")))
		assert.Len(t, summary.Categories, 2)
		// accommodation-food precedes petrol-diesel in the canonical order
		assert.Equal(t, expense.CategoryAccommodationFood, summary.Categories[0].Category)
		assert.Equal(t, 2, summary.Categories[0].Count)
		assert.True(t, summary.Categories[0].Total.Equal(decimal.RequireFromString("2300")))
		assert.Equal(t, expense.CategoryPetrolDiesel, summary.Categories[1].Category)
		assert.Equal(t, 1, summary.Categories[1].Count)
	})

	t.Run("applies the date range inclusively", func(t *testing.T) {
		repo := expense.NewStubExpenseRepo()
		storeExpense(t, repo, "e1", "site-1", expense.CategoryAccommodationFood, march(9), "100")
		storeExpense(t, repo, "e2", "site-1", expense.CategoryAccommodationFood, march(10), "200")
		storeExpense(t, repo, "e3", "site-1", expense.CategoryAccommodationFood, march(12), "400")
		storeExpense(t, repo, "e4", "site-1", expense.CategoryAccommodationFood, march(13), "800")
		service := NewReportService(repo)

		summary, err := service.SiteSummary(ctx, "site-1", march(10), march(12))

		assert.NoError(t, err)
		assert.Equal(t, 2, summary.ExpenseCount)
		assert.True(t, summary.TotalAmount.Equal(decimal.RequireFromString("600")))
	})

	t.Run("open-ended bounds", func(t *testing.T) {
		repo := expense.NewStubExpenseRepo()
		storeExpense(t, repo, "e1", "site-1", expense.CategoryAccommodationFood, march(9), "100")
		storeExpense(t, repo, "e2", "site-1", expense.CategoryAccommodationFood, march(12), "400")
		service := NewReportService(repo)

		fromOnly, err := service.SiteSummary(ctx, "site-1", march(10), time.Time{})
		assert.NoError(t, err)
		assert.Equal(t, 1, fromOnly.ExpenseCount)

		toOnly, err := service.SiteSummary(ctx, "site-1", time.Time{}, march(10))
		assert.NoError(t, err)
		assert.Equal(t, 1, toOnly.ExpenseCount)
	})

	t.Run("site without expenses yields an empty summary", func(t *testing.T) {
		repo := expense.NewStubExpenseRepo()
		service := NewReportService(repo)

		summary, err := service.SiteSummary(ctx, "site-1", time.Time{}, time.Time{})

		assert.NoError(t, err)
		assert.Equal(t, 0, summary.ExpenseCount)
		assert.True(t, summary.TotalAmount.IsZero())
		assert.Empty(t, summary.Categories)
	})
}
