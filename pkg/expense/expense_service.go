package expense

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/siteledger/siteledger/internal/utils"
	"github.com/siteledger/siteledger/pkg/labourstaff"
	"github.com/siteledger/siteledger/pkg/machinetool"
	"github.com/siteledger/siteledger/pkg/material"
	"github.com/siteledger/siteledger/pkg/site"
)

type ExpenseService interface {
	Create(ctx context.Context, expense Expense) (Expense, error)
	Get(ctx context.Context, id string) (Expense, error)
	ListForSite(ctx context.Context, siteID string, category ExpenseCategory) ([]Expense, error)
	Update(ctx context.Context, expense Expense) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	// Form materializes the entry form for a category against the current
	// reference collections and value map.
	Form(ctx context.Context, category ExpenseCategory, values Values) ([]FieldDescriptor, error)
}

type ExpenseServiceImpl struct {
	repo          ExpenseRepo
	sites         site.SiteRepo
	machinesTools machinetool.MachineToolRepo
	materials     material.MaterialRepo
	labourStaff   labourstaff.PersonRepo
	clock         utils.Clock
}

func NewExpenseService(
	repo ExpenseRepo,
	sites site.SiteRepo,
	machinesTools machinetool.MachineToolRepo,
	materials material.MaterialRepo,
	labourStaff labourstaff.PersonRepo,
	clock utils.Clock,
) *ExpenseServiceImpl {
	return &ExpenseServiceImpl{
		repo:          repo,
		sites:         sites,
		machinesTools: machinesTools,
		materials:     materials,
		labourStaff:   labourStaff,
		clock:         clock,
	}
}

// Create validates the submission, derives the total, and stores the record.
// The order is strict: nothing is written when validation fails, and the
// repo receives the total as computed here.
func (s *ExpenseServiceImpl) Create(ctx context.Context, expense Expense) (Expense, error) {
	if err := ValidateForSubmission(expense.Type, expense.SiteID, expense.Date, expense.Fields); err != nil {
		return Expense{}, err
	}
	total, err := ComputeTotal(expense.Type, expense.Fields)
	if err != nil {
		return Expense{}, err
	}
	expense.TotalAmount = total
	expense.ID = uuid.NewString()
	now := s.clock.Now()
	expense.CreatedAt = now
	expense.UpdatedAt = now

	if err := s.repo.Store(ctx, expense); err != nil {
		return Expense{}, err
	}
	return expense, nil
}

func (s *ExpenseServiceImpl) Get(ctx context.Context, id string) (Expense, error) {
	return s.repo.Get(ctx, id)
}

func (s *ExpenseServiceImpl) ListForSite(ctx context.Context, siteID string, category ExpenseCategory) ([]Expense, error) {
	if category != "" && !category.IsValid() {
		return nil, UnknownCategoryError{Category: category}
	}
	return s.repo.ListForSite(ctx, siteID, category)
}

// Update follows the same validate → compute → persist path as Create; the
// total is always re-derived from the submitted values.
func (s *ExpenseServiceImpl) Update(ctx context.Context, expense Expense) (bool, error) {
	if err := ValidateForSubmission(expense.Type, expense.SiteID, expense.Date, expense.Fields); err != nil {
		return false, err
	}
	total, err := ComputeTotal(expense.Type, expense.Fields)
	if err != nil {
		return false, err
	}
	expense.TotalAmount = total
	expense.UpdatedAt = s.clock.Now()

	return s.repo.Update(ctx, expense)
}

func (s *ExpenseServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// Form fetches the four reference collections concurrently (they are
// independent inputs) and materializes the field list for the category.
func (s *ExpenseServiceImpl) Form(ctx context.Context, category ExpenseCategory, values Values) ([]FieldDescriptor, error) {
	if _, err := SchemaFor(category); err != nil {
		return nil, err
	}

	var refs ReferenceData
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sites, err := s.sites.GetAll(gCtx)
		refs.Sites = sites
		return err
	})
	g.Go(func() error {
		machinesTools, err := s.machinesTools.GetAll(gCtx)
		refs.MachinesTools = machinesTools
		return err
	})
	g.Go(func() error {
		materials, err := s.materials.GetAll(gCtx)
		refs.Materials = materials
		return err
	})
	g.Go(func() error {
		labourStaff, err := s.labourStaff.GetAll(gCtx)
		refs.LabourStaff = labourStaff
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Materialize(category, values, refs)
}
