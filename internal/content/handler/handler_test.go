package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nwpolishing/backend/internal/content"
	"github.com/nwpolishing/backend/internal/content/repository"
	"github.com/nwpolishing/backend/internal/content/service"
	"github.com/nwpolishing/backend/internal/settings"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) (*gin.Engine, *repository.MemoryRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	svc := service.New(repo, nil)
	settingsSvc := settings.NewService(settings.NewMemoryRepository())
	r := gin.New()
	Register(r, svc, settingsSvc)
	return r, repo
}

func doGET(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestListServices(t *testing.T) {
	r, repo := setupRouter(t)
	repo.AddService(&content.Service{Title: "Polishing", Slug: "polishing", Order: 1})
	repo.AddService(&content.Service{Title: "Laser Cutting", Slug: "laser-cutting", Order: 0})

	w := doGET(r, "/api/services")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Services []content.Service `json:"services"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Services, 2)
	require.Equal(t, "laser-cutting", body.Services[0].Slug)
}

func TestServiceBySlug(t *testing.T) {
	r, repo := setupRouter(t)
	repo.AddService(&content.Service{Title: "Polishing", Slug: "polishing"})

	w := doGET(r, "/api/services/polishing")
	require.Equal(t, http.StatusOK, w.Code)

	var sv content.Service
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sv))
	require.Equal(t, "Polishing", sv.Title)

	w = doGET(r, "/api/services/nope")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListProjectsFeatured(t *testing.T) {
	r, repo := setupRouter(t)
	repo.AddProject(&content.Project{Title: "Handrails", Featured: true})
	repo.AddProject(&content.Project{Title: "Tanks", Featured: false})

	w := doGET(r, "/api/projects?featured=true")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Projects []content.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Projects, 1)
	require.Equal(t, "Handrails", body.Projects[0].Title)

	// malformed filter values are ignored
	w = doGET(r, "/api/projects?featured=banana")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Projects, 2)
}

func TestHeroSlidesActiveOnly(t *testing.T) {
	r, repo := setupRouter(t)
	repo.AddHeroSlide(&content.HeroSlide{Title: "Visible", Active: true})
	repo.AddHeroSlide(&content.HeroSlide{Title: "Draft", Active: false})

	w := doGET(r, "/api/hero-slides")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		HeroSlides []content.HeroSlide `json:"heroSlides"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.HeroSlides, 1)
	require.Equal(t, "Visible", body.HeroSlides[0].Title)
}

func TestSiteSettingsDefaults(t *testing.T) {
	r, _ := setupRouter(t)

	w := doGET(r, "/api/site-settings")
	require.Equal(t, http.StatusOK, w.Code)

	var s settings.SiteSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	require.Equal(t, "North West Polishing", s.Branding.SiteName)
	require.NotEmpty(t, s.ContactInfo.Email)
}
