package site

import (
	"context"
)

// StubSiteRepo is an in-memory SiteRepo for tests.
type StubSiteRepo struct {
	sites map[string]Site
	order []string
}

func NewStubSiteRepo() *StubSiteRepo {
	return &StubSiteRepo{sites: map[string]Site{}}
}

func (s *StubSiteRepo) Store(ctx context.Context, site Site) error {
	s.sites[site.ID] = site
	s.order = append(s.order, site.ID)
	return nil
}

func (s *StubSiteRepo) Get(ctx context.Context, id string) (Site, error) {
	site, ok := s.sites[id]
	if !ok {
		return Site{}, ErrSiteNotFound
	}
	return site, nil
}

func (s *StubSiteRepo) GetAll(ctx context.Context) ([]Site, error) {
	sites := make([]Site, 0, len(s.sites))
	for _, id := range s.order {
		if site, ok := s.sites[id]; ok {
			sites = append(sites, site)
		}
	}
	return sites, nil
}

func (s *StubSiteRepo) Update(ctx context.Context, site Site) (bool, error) {
	if _, ok := s.sites[site.ID]; !ok {
		return false, nil
	}
	s.sites[site.ID] = site
	return true, nil
}

func (s *StubSiteRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := s.sites[id]; !ok {
		return false, nil
	}
	delete(s.sites, id)
	return true, nil
}

func (s *StubSiteRepo) Cleanup() {
	s.sites = map[string]Site{}
	s.order = nil
}
