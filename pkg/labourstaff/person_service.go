package labourstaff

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type PersonService interface {
	GetAll(ctx context.Context) ([]Person, error)
	Create(ctx context.Context, person Person) (Person, error)
	Update(ctx context.Context, person Person) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type PersonServiceImpl struct {
	repo PersonRepo
}

func NewPersonService(repo PersonRepo) *PersonServiceImpl {
	return &PersonServiceImpl{repo: repo}
}

func (s *PersonServiceImpl) GetAll(ctx context.Context) ([]Person, error) {
	return s.repo.GetAll(ctx)
}

func (s *PersonServiceImpl) Create(ctx context.Context, person Person) (Person, error) {
	if person.Name == "" {
		return Person{}, fmt.Errorf("name is required")
	}
	if person.Type != TypeLabour && person.Type != TypeStaff {
		return Person{}, fmt.Errorf("type must be %q or %q", TypeLabour, TypeStaff)
	}
	person.ID = uuid.NewString()
	if err := s.repo.Store(ctx, person); err != nil {
		return Person{}, err
	}
	return person, nil
}

func (s *PersonServiceImpl) Update(ctx context.Context, person Person) (bool, error) {
	updated, err := s.repo.Update(ctx, person)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("labour/staff member not updated, probably because it does not exist (%s)", person.ID)
	}
	return updated, nil
}

func (s *PersonServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
