package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nwpolishing/backend/internal/content/service"
	"github.com/nwpolishing/backend/internal/settings"
	"github.com/nwpolishing/backend/pkg/logger"
)

// Register wires the public read-only content endpoints. Everything here is
// unauthenticated; there are no write operations.
func Register(r gin.IRouter, svc *service.Service, settingsSvc *settings.Service) {
	r.GET("/api/services", func(c *gin.Context) {
		items, err := svc.Services(c.Request.Context())
		if err != nil {
			logger.Errorf("list services failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list_failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"services": items})
	})

	r.GET("/api/services/:slug", func(c *gin.Context) {
		sv, err := svc.ServiceBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			logger.Errorf("get service failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "get_failed"})
			return
		}
		c.JSON(http.StatusOK, sv)
	})

	r.GET("/api/projects", func(c *gin.Context) {
		var featured *bool
		switch c.Query("featured") {
		case "true":
			v := true
			featured = &v
		case "false":
			v := false
			featured = &v
		}
		items, err := svc.Projects(c.Request.Context(), featured)
		if err != nil {
			logger.Errorf("list projects failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list_failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"projects": items})
	})

	r.GET("/api/hero-slides", func(c *gin.Context) {
		items, err := svc.HeroSlides(c.Request.Context())
		if err != nil {
			logger.Errorf("list hero slides failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "list_failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"heroSlides": items})
	})

	r.GET("/api/site-settings", func(c *gin.Context) {
		s, err := settingsSvc.Get(c.Request.Context())
		if err != nil {
			logger.Errorf("get site settings failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "get_failed"})
			return
		}
		c.JSON(http.StatusOK, s)
	})
}
