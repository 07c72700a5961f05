package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nwpolishing/backend/internal/quotes"
	"github.com/nwpolishing/backend/internal/quotes/service"
	"github.com/nwpolishing/backend/pkg/logger"
)

// RegisterPublic registers the unauthenticated submission endpoint. mw is
// prepended so the caller can rate-limit the form without touching the rest
// of the API.
func RegisterPublic(r gin.IRouter, svc service.Service, mw ...gin.HandlerFunc) {
	hs := append(mw, func(c *gin.Context) { submit(c, svc) })
	r.POST("/api/quote-requests", hs...)
}

// RegisterOperator registers the authenticated management endpoints on rg.
// The caller is responsible for attaching auth middleware to rg.
func RegisterOperator(rg *gin.RouterGroup, svc service.Service) {
	rg.GET("/quote-requests", func(c *gin.Context) { list(c, svc) })
	rg.GET("/quote-requests/:id", func(c *gin.Context) { get(c, svc) })
	rg.PATCH("/quote-requests/:id", func(c *gin.Context) { update(c, svc) })
	rg.DELETE("/quote-requests/:id", func(c *gin.Context) { remove(c, svc) })
}

func submit(c *gin.Context, svc service.Service) {
	var in quotes.SubmitInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_json"})
		return
	}
	qr, err := svc.Submit(c.Request.Context(), in)
	if err != nil {
		var verr *quotes.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation_failed", "fields": verr.Fields})
			return
		}
		logger.Errorf("quote submission failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "submit_failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": qr.ID})
}

func list(c *gin.Context, svc service.Service) {
	opts := quotes.ListOptions{Limit: 20}
	if raw := c.Query("status"); raw != "" {
		st, err := quotes.ParseStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
			return
		}
		opts.Status = st
	}
	opts.SortAsc = c.Query("sort") == "asc"
	if l := c.Query("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 100 {
			opts.Limit = n
		}
	}
	if o := c.Query("offset"); o != "" {
		if n, err := strconv.Atoi(o); err == nil && n >= 0 {
			opts.Offset = n
		}
	}

	items, err := svc.List(c.Request.Context(), opts)
	if err != nil {
		logger.Errorf("quote request list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list_failed"})
		return
	}
	if items == nil {
		items = []*quotes.QuoteRequest{}
	}
	c.JSON(http.StatusOK, gin.H{"quoteRequests": items})
}

func get(c *gin.Context, svc service.Service) {
	qr, err := svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		logger.Errorf("quote request get failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get_failed"})
		return
	}
	c.JSON(http.StatusOK, qr)
}

type updateRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

func update(c *gin.Context, svc service.Service) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_json"})
		return
	}
	in := quotes.UpdateInput{Notes: req.Notes}
	if req.Status != nil {
		st, err := quotes.ParseStatus(*req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation_failed", "fields": gin.H{"status": err.Error()}})
			return
		}
		in.Status = &st
	}

	if err := svc.Update(c.Request.Context(), c.Param("id"), in); err != nil {
		var verr *quotes.ValidationError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation_failed", "fields": verr.Fields})
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		default:
			logger.Errorf("quote request update failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update_failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
}

func remove(c *gin.Context, svc service.Service) {
	if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		logger.Errorf("quote request delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete_failed"})
		return
	}
	c.Status(http.StatusNoContent)
}
