package material

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type MaterialService interface {
	GetAll(ctx context.Context) ([]Material, error)
	Create(ctx context.Context, material Material) (Material, error)
	Update(ctx context.Context, material Material) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type MaterialServiceImpl struct {
	repo MaterialRepo
}

func NewMaterialService(repo MaterialRepo) *MaterialServiceImpl {
	return &MaterialServiceImpl{repo: repo}
}

func (s *MaterialServiceImpl) GetAll(ctx context.Context) ([]Material, error) {
	return s.repo.GetAll(ctx)
}

func (s *MaterialServiceImpl) Create(ctx context.Context, material Material) (Material, error) {
	if material.Name == "" {
		return Material{}, fmt.Errorf("material name is required")
	}
	material.ID = uuid.NewString()
	if err := s.repo.Store(ctx, material); err != nil {
		return Material{}, err
	}
	return material, nil
}

func (s *MaterialServiceImpl) Update(ctx context.Context, material Material) (bool, error) {
	updated, err := s.repo.Update(ctx, material)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("material not updated, probably because it does not exist (%s)", material.ID)
	}
	return updated, nil
}

func (s *MaterialServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
