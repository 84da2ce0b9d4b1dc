package machinetool

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type MachineToolService interface {
	GetAll(ctx context.Context) ([]MachineTool, error)
	Create(ctx context.Context, item MachineTool) (MachineTool, error)
	Update(ctx context.Context, item MachineTool) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type MachineToolServiceImpl struct {
	repo MachineToolRepo
}

func NewMachineToolService(repo MachineToolRepo) *MachineToolServiceImpl {
	return &MachineToolServiceImpl{repo: repo}
}

func (s *MachineToolServiceImpl) GetAll(ctx context.Context) ([]MachineTool, error) {
	return s.repo.GetAll(ctx)
}

func (s *MachineToolServiceImpl) Create(ctx context.Context, item MachineTool) (MachineTool, error) {
	if item.Name == "" {
		return MachineTool{}, fmt.Errorf("machine/tool name is required")
	}
	if item.Type != TypeMachine && item.Type != TypeTool {
		return MachineTool{}, fmt.Errorf("machine/tool type must be %q or %q", TypeMachine, TypeTool)
	}
	if item.Status == "" {
		item.Status = StatusAvailable
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	item.ID = uuid.NewString()
	if err := s.repo.Store(ctx, item); err != nil {
		return MachineTool{}, err
	}
	return item, nil
}

func (s *MachineToolServiceImpl) Update(ctx context.Context, item MachineTool) (bool, error) {
	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("machine/tool not updated, probably because it does not exist (%s)", item.ID)
	}
	return updated, nil
}

func (s *MachineToolServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
