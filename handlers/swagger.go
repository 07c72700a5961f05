package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>nwpolishing-backend Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document covering the public and operator endpoints.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "nwpolishing-backend", "version": "v0.1.0" },
  "paths": {
    "/api/quote-requests": {
      "post": {
        "summary": "Submit a quote request",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["company","contactName","email","message"],"properties":{"company":{"type":"string"},"contactName":{"type":"string"},"email":{"type":"string"},"phone":{"type":"string"},"message":{"type":"string"}}}}}},
        "responses": { "201": { "description": "request accepted" }, "400": { "description": "validation failed" }, "429": { "description": "rate limited" } }
      }
    },
    "/api/services": { "get": { "summary": "List services", "responses": { "200": { "description": "services" } } } },
    "/api/services/{slug}": { "get": { "summary": "Get a service by slug", "responses": { "200": { "description": "service" }, "404": { "description": "not found" } } } },
    "/api/projects": { "get": { "summary": "List projects", "parameters": [{"name":"featured","in":"query","schema":{"type":"boolean"}}], "responses": { "200": { "description": "projects" } } } },
    "/api/hero-slides": { "get": { "summary": "List active hero slides", "responses": { "200": { "description": "hero slides" } } } },
    "/api/site-settings": { "get": { "summary": "Get site settings", "responses": { "200": { "description": "settings" } } } },
    "/auth/login": {
      "post": { "summary": "Operator login", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"email":{"type":"string"},"password":{"type":"string"}}}}}}, "responses": { "200": { "description": "tokens returned" }, "401": { "description": "authentication failed" } } }
    },
    "/auth/refresh": {
      "post": { "summary": "Refresh access token", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"refresh_token":{"type":"string"}}}}}}, "responses": { "200": { "description": "new access token" }, "401": { "description": "invalid refresh" } } }
    },
    "/auth/logout": {
      "post": { "summary": "Logout and invalidate refresh token", "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"refresh_token":{"type":"string"}}}}}}, "responses": { "200": { "description": "logged out" } } }
    },
    "/api/admin/quote-requests": { "get": { "summary": "List quote requests (operator)", "responses": { "200": { "description": "quote requests" }, "401": { "description": "unauthorized" } } } },
    "/api/admin/quote-requests/{id}": {
      "get": { "summary": "Get a quote request (operator)", "responses": { "200": { "description": "quote request" }, "404": { "description": "not found" } } },
      "patch": { "summary": "Update status/notes (operator)", "responses": { "200": { "description": "updated" }, "400": { "description": "invalid update" } } },
      "delete": { "summary": "Delete a quote request (operator)", "responses": { "204": { "description": "deleted" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
