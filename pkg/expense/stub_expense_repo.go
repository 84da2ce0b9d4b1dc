package expense

import (
	"context"
	"sort"
)

// StubExpenseRepo is an in-memory ExpenseRepo for tests.
type StubExpenseRepo struct {
	expenses map[string]Expense
}

func NewStubExpenseRepo() *StubExpenseRepo {
	return &StubExpenseRepo{expenses: map[string]Expense{}}
}

func (s *StubExpenseRepo) Store(ctx context.Context, expense Expense) error {
	s.expenses[expense.ID] = expense
	return nil
}

func (s *StubExpenseRepo) Get(ctx context.Context, id string) (Expense, error) {
	expense, ok := s.expenses[id]
	if !ok {
		return Expense{}, ErrExpenseNotFound
	}
	return expense, nil
}

func (s *StubExpenseRepo) ListForSite(ctx context.Context, siteID string, category ExpenseCategory) ([]Expense, error) {
	var expenses []Expense
	for _, expense := range s.expenses {
		if expense.SiteID != siteID {
			continue
		}
		if category != "" && expense.Type != category {
			continue
		}
		expenses = append(expenses, expense)
	}
	sort.Slice(expenses, func(i, j int) bool {
		return expenses[i].CreatedAt.After(expenses[j].CreatedAt)
	})
	return expenses, nil
}

func (s *StubExpenseRepo) Update(ctx context.Context, expense Expense) (bool, error) {
	stored, ok := s.expenses[expense.ID]
	if !ok {
		return false, nil
	}
	expense.CreatedAt = stored.CreatedAt
	s.expenses[expense.ID] = expense
	return true, nil
}

func (s *StubExpenseRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := s.expenses[id]; !ok {
		return false, nil
	}
	delete(s.expenses, id)
	return true, nil
}

func (s *StubExpenseRepo) Cleanup() {
	s.expenses = map[string]Expense{}
}
