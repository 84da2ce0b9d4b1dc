package site

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type SiteService interface {
	GetAll(ctx context.Context) ([]Site, error)
	Get(ctx context.Context, id string) (Site, error)
	Create(ctx context.Context, site Site) (Site, error)
	Update(ctx context.Context, site Site) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type SiteServiceImpl struct {
	repo SiteRepo
}

func NewSiteService(repo SiteRepo) *SiteServiceImpl {
	return &SiteServiceImpl{repo: repo}
}

func (s *SiteServiceImpl) GetAll(ctx context.Context) ([]Site, error) {
	return s.repo.GetAll(ctx)
}

func (s *SiteServiceImpl) Get(ctx context.Context, id string) (Site, error) {
	return s.repo.Get(ctx, id)
}

func (s *SiteServiceImpl) Create(ctx context.Context, site Site) (Site, error) {
	if site.Name == "" {
		return Site{}, fmt.Errorf("site name is required")
	}
	if site.Status == "" {
		site.Status = SiteStatusActive
	}
	site.ID = uuid.NewString()
	if err := s.repo.Store(ctx, site); err != nil {
		return Site{}, err
	}
	return site, nil
}

func (s *SiteServiceImpl) Update(ctx context.Context, site Site) (bool, error) {
	if site.Name == "" {
		return false, fmt.Errorf("site name is required")
	}
	updated, err := s.repo.Update(ctx, site)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("site not updated, probably because it does not exist (%s)", site.ID)
		return false, nil
	}
	return true, nil
}

func (s *SiteServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
