package repository

import (
	"context"
	"testing"

	"github.com/nwpolishing/backend/internal/content"
	"github.com/stretchr/testify/require"
)

func TestListServices_OrderWithInsertionTieBreak(t *testing.T) {
	r := NewMemoryRepo()
	r.AddService(&content.Service{Title: "Polishing", Slug: "polishing", Order: 2})
	r.AddService(&content.Service{Title: "Laser Cutting", Slug: "laser-cutting", Order: 1})
	r.AddService(&content.Service{Title: "On-Site Work", Slug: "on-site-work", Order: 1})

	got, err := r.ListServices(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "laser-cutting", got[0].Slug)
	// same order value: first inserted wins
	require.Equal(t, "on-site-work", got[1].Slug)
	require.Equal(t, "polishing", got[2].Slug)
}

func TestGetServiceBySlug(t *testing.T) {
	r := NewMemoryRepo()
	r.AddService(&content.Service{Title: "Polishing", Slug: "polishing"})

	got, err := r.GetServiceBySlug(context.Background(), "polishing")
	require.NoError(t, err)
	require.Equal(t, "Polishing", got.Title)

	_, err = r.GetServiceBySlug(context.Background(), "unknown")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListProjects_FeaturedFilter(t *testing.T) {
	r := NewMemoryRepo()
	r.AddProject(&content.Project{Title: "Job A", Featured: true, Order: 1})
	r.AddProject(&content.Project{Title: "Job B", Featured: false, Order: 0})

	all, err := r.ListProjects(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "Job B", all[0].Title)

	v := true
	featured, err := r.ListProjects(context.Background(), &v)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	require.Equal(t, "Job A", featured[0].Title)
}

func TestListActiveHeroSlides(t *testing.T) {
	r := NewMemoryRepo()
	r.AddHeroSlide(&content.HeroSlide{Title: "Precision", Active: true, Order: 1})
	r.AddHeroSlide(&content.HeroSlide{Title: "Hidden", Active: false, Order: 0})
	r.AddHeroSlide(&content.HeroSlide{Title: "Stainless", Active: true, Order: 0})

	got, err := r.ListActiveHeroSlides(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Stainless", got[0].Title)
	require.Equal(t, "Precision", got[1].Title)
}
