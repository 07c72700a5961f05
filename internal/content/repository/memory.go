package repository

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/nwpolishing/backend/internal/content"
)

var (
	ErrNotFound = errors.New("content not found")
)

// MemoryRepo is an in-memory content repository used for tests. Insertion
// order stands in for createdAt when breaking order ties, matching the Mongo
// sort behavior.
type MemoryRepo struct {
	mu       sync.RWMutex
	services []*content.Service
	projects []*content.Project
	slides   []*content.HeroSlide
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// AddService seeds a service; test helper, not part of the read API.
func (m *MemoryRepo) AddService(s *content.Service) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.services = append(m.services, &cp)
}

func (m *MemoryRepo) AddProject(p *content.Project) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	m.projects = append(m.projects, &cp)
}

func (m *MemoryRepo) AddHeroSlide(h *content.HeroSlide) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *h
	m.slides = append(m.slides, &cp)
}

func (m *MemoryRepo) ListServices(ctx context.Context) ([]*content.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*content.Service, len(m.services))
	for i, s := range m.services {
		cp := *s
		out[i] = &cp
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (m *MemoryRepo) GetServiceBySlug(ctx context.Context, slug string) (*content.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.services {
		if s.Slug == slug {
			cp := *s
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) ListProjects(ctx context.Context, featured *bool) ([]*content.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*content.Project, 0, len(m.projects))
	for _, p := range m.projects {
		if featured != nil && p.Featured != *featured {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (m *MemoryRepo) ListActiveHeroSlides(ctx context.Context) ([]*content.HeroSlide, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*content.HeroSlide, 0, len(m.slides))
	for _, h := range m.slides {
		if !h.Active {
			continue
		}
		cp := *h
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}
