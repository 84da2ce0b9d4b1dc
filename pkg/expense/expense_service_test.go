package expense

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/siteledger/siteledger/internal/utils"
	"github.com/siteledger/siteledger/pkg/labourstaff"
	"github.com/siteledger/siteledger/pkg/machinetool"
	"github.com/siteledger/siteledger/pkg/material"
	"github.com/siteledger/siteledger/pkg/site"
)

func newTestService(repo *StubExpenseRepo, clock utils.Clock) (*ExpenseServiceImpl, *site.StubSiteRepo, *machinetool.StubMachineToolRepo, *labourstaff.StubPersonRepo) {
	sites := site.NewStubSiteRepo()
	machinesTools := machinetool.NewStubMachineToolRepo()
	materials := material.NewStubMaterialRepo()
	people := labourstaff.NewStubPersonRepo()
	service := NewExpenseService(repo, sites, machinesTools, materials, people, clock)
	return service, sites, machinesTools, people
}

func TestExpenseServiceCreate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
	expenseDate := time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC)

	t.Run("stores a valid submission with derived total", func(t *testing.T) {
		repo := NewStubExpenseRepo()
		service, _, _, _ := newTestService(repo, &utils.MockClock{FixedNow: now})

		created, err := service.Create(ctx, Expense{
			Date:   expenseDate,
			SiteID: "site-1",
			Type:   CategoryMachinesRental,
			Fields: Values{
				"totalRent":              "2000",
				"transportChargesRental": "300",
				"maintenanceCharges":     "150",
			},
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.True(t, created.TotalAmount.Equal(decimal.RequireFromString("2450")))
		assert.Equal(t, now, created.CreatedAt)
		assert.Equal(t, now, created.UpdatedAt)

		stored, err := repo.Get(ctx, created.ID)
		assert.NoError(t, err)
		assert.Equal(t, created, stored)
	})

	t.Run("overrides any caller-provided total", func(t *testing.T) {
		repo := NewStubExpenseRepo()
		service, _, _, _ := newTestService(repo, &utils.MockClock{FixedNow: now})

		created, err := service.Create(ctx, Expense{
			Date:        expenseDate,
			SiteID:      "site-1",
			Type:        CategoryAccommodationFood,
			Fields:      Values{"amount": "1500"},
			TotalAmount: decimal.RequireFromString("999999"),
		})

		assert.NoError(t, err)
		assert.True(t, created.TotalAmount.Equal(decimal.RequireFromString("1500")))
	})

	t.Run("rejects zero total without writing", func(t *testing.T) {
		repo := NewStubExpenseRepo()
		service, _, _, _ := newTestService(repo, &utils.MockClock{FixedNow: now})

		_, err := service.Create(ctx, Expense{
			Date:   expenseDate,
			SiteID: "site-1",
			Type:   CategoryAccommodationFood,
			Fields: Values{"amount": "0"},
		})

		assert.ErrorIs(t, err, ErrNonPositiveTotal)
		expenses, _ := repo.ListForSite(ctx, "site-1", "")
		assert.Empty(t, expenses)
	})

	t.Run("rejects missing site without writing", func(t *testing.T) {
		repo := NewStubExpenseRepo()
		service, _, _, _ := newTestService(repo, &utils.MockClock{FixedNow: now})

		_, err := service.Create(ctx, Expense{
			Date:   expenseDate,
			Type:   CategoryAccommodationFood,
			Fields: Values{"amount": "1500"},
		})

		var missingErr MissingRequiredFieldError
		assert.ErrorAs(t, err, &missingErr)
		assert.Equal(t, "siteId", missingErr.Field)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		repo := NewStubExpenseRepo()
		service, _, _, _ := newTestService(repo, &utils.MockClock{FixedNow: now})

		_, err := service.Create(ctx, Expense{
			Date:   expenseDate,
			SiteID: "site-1",
			Type:   "vehicle-lease",
			Fields: Values{"amount": "1500"},
		})

		var unknownErr UnknownCategoryError
		assert.ErrorAs(t, err, &unknownErr)
	})
}

func TestExpenseServiceUpdate(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)
	updatedAt := createdAt.Add(48 * time.Hour)
	expenseDate := time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC)

	t.Run("re-derives the total from the submitted values", func(t *testing.T) {
		repo := NewStubExpenseRepo()
		clock := &utils.MockClock{FixedNow: createdAt}
		service, _, _, _ := newTestService(repo, clock)

		created, err := service.Create(ctx, Expense{
			Date:   expenseDate,
			SiteID: "site-1",
			Type:   CategoryMaterialPurchase,
			Fields: Values{"totalAmountTool": "5000"},
		})
		assert.NoError(t, err)

		clock.SetNow(updatedAt)
		created.Fields["transportChargesMaterial"] = "200"
		found, err := service.Update(ctx, created)

		assert.NoError(t, err)
		assert.True(t, found)
		stored, err := repo.Get(ctx, created.ID)
		assert.NoError(t, err)
		assert.True(t, stored.TotalAmount.Equal(decimal.RequireFromString("5200")))
		assert.Equal(t, createdAt, stored.CreatedAt)
		assert.Equal(t, updatedAt, stored.UpdatedAt)
	})

	t.Run("validation failure leaves the stored record untouched", func(t *testing.T) {
		repo := NewStubExpenseRepo()
		clock := &utils.MockClock{FixedNow: createdAt}
		service, _, _, _ := newTestService(repo, clock)

		created, err := service.Create(ctx, Expense{
			Date:   expenseDate,
			SiteID: "site-1",
			Type:   CategoryAccommodationFood,
			Fields: Values{"amount": "1500"},
		})
		assert.NoError(t, err)

		broken := created
		broken.Fields = Values{"amount": "not a number"}
		_, err = service.Update(ctx, broken)

		assert.ErrorIs(t, err, ErrNonPositiveTotal)
		stored, _ := repo.Get(ctx, created.ID)
		assert.True(t, stored.TotalAmount.Equal(decimal.RequireFromString("1500")))
	})

	t.Run("updating a missing record reports not found", func(t *testing.T) {
		repo := NewStubExpenseRepo()
		service, _, _, _ := newTestService(repo, &utils.MockClock{FixedNow: createdAt})

		found, err := service.Update(ctx, Expense{
			ID:     "nope",
			Date:   expenseDate,
			SiteID: "site-1",
			Type:   CategoryAccommodationFood,
			Fields: Values{"amount": "1500"},
		})

		assert.NoError(t, err)
		assert.False(t, found)
	})
}

func TestExpenseServiceListForSite(t *testing.T) {
	ctx := context.Background()
	clock := &utils.MockClock{FixedNow: time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)}
	expenseDate := time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC)

	repo := NewStubExpenseRepo()
	service, _, _, _ := newTestService(repo, clock)

	first, err := service.Create(ctx, Expense{
		Date: expenseDate, SiteID: "site-1", Type: CategoryAccommodationFood,
		Fields: Values{"amount": "1500"},
	})
	assert.NoError(t, err)
	clock.SetNow(clock.FixedNow.Add(time.Minute))
	second, err := service.Create(ctx, Expense{
		Date: expenseDate, SiteID: "site-1", Type: CategoryPetrolDiesel,
		Fields: Values{"totalCostFuel": "3040"},
	})
	assert.NoError(t, err)
	clock.SetNow(clock.FixedNow.Add(time.Minute))
	_, err = service.Create(ctx, Expense{
		Date: expenseDate, SiteID: "site-2", Type: CategoryAccommodationFood,
		Fields: Values{"amount": "800"},
	})
	assert.NoError(t, err)

	t.Run("returns site expenses newest first", func(t *testing.T) {
		expenses, err := service.ListForSite(ctx, "site-1", "")
		assert.NoError(t, err)
		assert.Len(t, expenses, 2)
		assert.Equal(t, second.ID, expenses[0].ID)
		assert.Equal(t, first.ID, expenses[1].ID)
	})

	t.Run("filters by category", func(t *testing.T) {
		expenses, err := service.ListForSite(ctx, "site-1", CategoryPetrolDiesel)
		assert.NoError(t, err)
		assert.Len(t, expenses, 1)
		assert.Equal(t, second.ID, expenses[0].ID)
	})

	t.Run("rejects an unknown category filter", func(t *testing.T) {
		_, err := service.ListForSite(ctx, "site-1", "vehicle-lease")

		var unknownErr UnknownCategoryError
		assert.ErrorAs(t, err, &unknownErr)
	})
}

func TestExpenseServiceForm(t *testing.T) {
	ctx := context.Background()
	clock := &utils.MockClock{FixedNow: time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)}

	t.Run("materializes against the stored collections", func(t *testing.T) {
		repo := NewStubExpenseRepo()
		service, sites, machinesTools, _ := newTestService(repo, clock)
		err := sites.Store(ctx, site.Site{ID: "site-1", Name: "Riverside Apartments"})
		assert.NoError(t, err)
		err = machinesTools.Store(ctx, machinetool.MachineTool{ID: "mt-1", Name: "Drill", Type: machinetool.TypeTool, Brand: "Bosch"})
		assert.NoError(t, err)

		fields, err := service.Form(ctx, CategoryToolPurchase, Values{})

		assert.NoError(t, err)
		siteField := fieldByKey(t, fields, "siteId")
		assert.Equal(t, []Option{{Value: "site-1", Label: "Riverside Apartments"}}, siteField.Options)
		toolField := fieldByKey(t, fields, "toolName")
		assert.Equal(t, []Option{{Value: "mt-1", Label: "Drill - Bosch"}}, toolField.Options)
	})

	t.Run("unknown category fails before any fetch", func(t *testing.T) {
		repo := NewStubExpenseRepo()
		service, _, _, _ := newTestService(repo, clock)

		_, err := service.Form(ctx, "vehicle-lease", Values{})

		var unknownErr UnknownCategoryError
		assert.ErrorAs(t, err, &unknownErr)
	})
}
