package machinetool

import (
	"context"
)

// StubMachineToolRepo is an in-memory MachineToolRepo for tests.
type StubMachineToolRepo struct {
	items map[string]MachineTool
	order []string
}

func NewStubMachineToolRepo() *StubMachineToolRepo {
	return &StubMachineToolRepo{items: map[string]MachineTool{}}
}

func (s *StubMachineToolRepo) Store(ctx context.Context, item MachineTool) error {
	s.items[item.ID] = item
	s.order = append(s.order, item.ID)
	return nil
}

func (s *StubMachineToolRepo) Get(ctx context.Context, id string) (MachineTool, error) {
	item, ok := s.items[id]
	if !ok {
		return MachineTool{}, ErrMachineToolNotFound
	}
	return item, nil
}

func (s *StubMachineToolRepo) GetAll(ctx context.Context) ([]MachineTool, error) {
	items := make([]MachineTool, 0, len(s.items))
	for _, id := range s.order {
		if item, ok := s.items[id]; ok {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *StubMachineToolRepo) Update(ctx context.Context, item MachineTool) (bool, error) {
	if _, ok := s.items[item.ID]; !ok {
		return false, nil
	}
	s.items[item.ID] = item
	return true, nil
}

func (s *StubMachineToolRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

func (s *StubMachineToolRepo) Cleanup() {
	s.items = map[string]MachineTool{}
	s.order = nil
}
