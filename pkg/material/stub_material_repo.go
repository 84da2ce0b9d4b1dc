package material

import (
	"context"
)

// StubMaterialRepo is an in-memory MaterialRepo for tests.
type StubMaterialRepo struct {
	materials map[string]Material
	order     []string
}

func NewStubMaterialRepo() *StubMaterialRepo {
	return &StubMaterialRepo{materials: map[string]Material{}}
}

func (s *StubMaterialRepo) Store(ctx context.Context, material Material) error {
	s.materials[material.ID] = material
	s.order = append(s.order, material.ID)
	return nil
}

func (s *StubMaterialRepo) GetAll(ctx context.Context) ([]Material, error) {
	materials := make([]Material, 0, len(s.materials))
	for _, id := range s.order {
		if material, ok := s.materials[id]; ok {
			materials = append(materials, material)
		}
	}
	return materials, nil
}

func (s *StubMaterialRepo) Update(ctx context.Context, material Material) (bool, error) {
	if _, ok := s.materials[material.ID]; !ok {
		return false, nil
	}
	s.materials[material.ID] = material
	return true, nil
}

func (s *StubMaterialRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := s.materials[id]; !ok {
		return false, nil
	}
	delete(s.materials, id)
	return true, nil
}

func (s *StubMaterialRepo) Cleanup() {
	s.materials = map[string]Material{}
	s.order = nil
}
