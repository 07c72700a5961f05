package service

import (
	"context"

	"github.com/nwpolishing/backend/internal/content"
	"github.com/nwpolishing/backend/internal/content/repository"
	"github.com/nwpolishing/backend/internal/media"
	"github.com/nwpolishing/backend/pkg/logger"
)

// ErrNotFound mirrors repository.ErrNotFound for handler layers.
var ErrNotFound = repository.ErrNotFound

// Repository defines the read operations the service depends on.
type Repository interface {
	ListServices(ctx context.Context) ([]*content.Service, error)
	GetServiceBySlug(ctx context.Context, slug string) (*content.Service, error)
	ListProjects(ctx context.Context, featured *bool) ([]*content.Project, error)
	ListActiveHeroSlides(ctx context.Context) ([]*content.HeroSlide, error)
}

// Service serves the read-only content queries behind the public pages.
// Image keys are resolved to URLs on the way out; a failed resolution keeps
// the raw key rather than failing the whole listing.
type Service struct {
	repo     Repository
	resolver media.Resolver
}

func New(repo Repository, resolver media.Resolver) *Service {
	if resolver == nil {
		resolver = media.Passthrough{}
	}
	return &Service{repo: repo, resolver: resolver}
}

func (s *Service) resolve(ctx context.Context, key string) string {
	if key == "" {
		return ""
	}
	u, err := s.resolver.ResolveURL(ctx, key)
	if err != nil {
		logger.Warnf("media resolve failed for %q: %v", key, err)
		return key
	}
	return u
}

func (s *Service) Services(ctx context.Context) ([]*content.Service, error) {
	items, err := s.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	for _, sv := range items {
		s.resolveService(ctx, sv)
	}
	return items, nil
}

func (s *Service) ServiceBySlug(ctx context.Context, slug string) (*content.Service, error) {
	sv, err := s.repo.GetServiceBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	s.resolveService(ctx, sv)
	return sv, nil
}

func (s *Service) resolveService(ctx context.Context, sv *content.Service) {
	sv.ImageKey = s.resolve(ctx, sv.ImageKey)
	for i := range sv.Gallery {
		sv.Gallery[i].ImageKey = s.resolve(ctx, sv.Gallery[i].ImageKey)
	}
}

func (s *Service) Projects(ctx context.Context, featured *bool) ([]*content.Project, error) {
	items, err := s.repo.ListProjects(ctx, featured)
	if err != nil {
		return nil, err
	}
	for _, p := range items {
		for i := range p.ImageKeys {
			p.ImageKeys[i] = s.resolve(ctx, p.ImageKeys[i])
		}
	}
	return items, nil
}

func (s *Service) HeroSlides(ctx context.Context) ([]*content.HeroSlide, error) {
	items, err := s.repo.ListActiveHeroSlides(ctx)
	if err != nil {
		return nil, err
	}
	for _, h := range items {
		h.BackgroundImageKey = s.resolve(ctx, h.BackgroundImageKey)
	}
	return items, nil
}
