package labourstaff

import (
	"context"
)

// StubPersonRepo is an in-memory PersonRepo for tests.
type StubPersonRepo struct {
	people map[string]Person
	order  []string
}

func NewStubPersonRepo() *StubPersonRepo {
	return &StubPersonRepo{people: map[string]Person{}}
}

func (s *StubPersonRepo) Store(ctx context.Context, person Person) error {
	s.people[person.ID] = person
	s.order = append(s.order, person.ID)
	return nil
}

func (s *StubPersonRepo) GetAll(ctx context.Context) ([]Person, error) {
	people := make([]Person, 0, len(s.people))
	for _, id := range s.order {
		if person, ok := s.people[id]; ok {
			people = append(people, person)
		}
	}
	return people, nil
}

func (s *StubPersonRepo) Update(ctx context.Context, person Person) (bool, error) {
	if _, ok := s.people[person.ID]; !ok {
		return false, nil
	}
	s.people[person.ID] = person
	return true, nil
}

func (s *StubPersonRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := s.people[id]; !ok {
		return false, nil
	}
	delete(s.people, id)
	return true, nil
}

func (s *StubPersonRepo) Cleanup() {
	s.people = map[string]Person{}
	s.order = nil
}
