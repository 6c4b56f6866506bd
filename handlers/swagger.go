package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the landing service.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>landing-services | Swagger</title>
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

// Every section endpoint accepts ?preview=true together with a Bearer
// preview token.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "landing-services", "version": "v0.1.0" },
  "components": {
    "securitySchemes": { "previewToken": { "type": "http", "scheme": "bearer", "bearerFormat": "JWT" } },
    "parameters": { "preview": { "name": "preview", "in": "query", "schema": { "type": "boolean" }, "description": "Serve draft content; requires a preview token" } },
    "schemas": {
      "Result": { "type": "object", "properties": { "success": { "type": "boolean" }, "data": { "type": "object", "nullable": true }, "error": { "type": "string" } } }
    }
  },
  "paths": {
    "/api/navigation": {
      "get": { "summary": "Newest navigation entry, menu items sorted by order", "parameters": [{ "$ref": "#/components/parameters/preview" }], "responses": { "200": { "description": "navigation" }, "401": { "description": "invalid preview token" }, "500": { "description": "fetch result with error" } } }
    },
    "/api/hero-section": {
      "get": { "summary": "Newest hero section entry", "parameters": [{ "$ref": "#/components/parameters/preview" }], "responses": { "200": { "description": "hero section" }, "500": { "description": "Failed to fetch hero section data" } } }
    },
    "/api/carousel-section": {
      "get": { "summary": "Newest carousel section entry, slides sorted", "parameters": [{ "$ref": "#/components/parameters/preview" }], "responses": { "200": { "description": "carousel section" }, "500": { "description": "Failed to fetch carousel section data" } } }
    },
    "/api/carousel-section/stream": {
      "get": { "summary": "Server-sent slide events driven by the auto-advance timer", "responses": { "200": { "description": "text/event-stream of slide events" } } }
    },
    "/api/services-section": {
      "get": { "summary": "Newest services section entry, services sorted", "parameters": [{ "$ref": "#/components/parameters/preview" }], "responses": { "200": { "description": "services section" }, "500": { "description": "Failed to fetch services section data" } } }
    },
    "/api/footer-section": {
      "get": { "summary": "Newest footer section entry, groups and links sorted", "parameters": [{ "$ref": "#/components/parameters/preview" }], "responses": { "200": { "description": "footer section" }, "500": { "description": "Failed to fetch footer section data" } } }
    },
    "/": { "get": { "summary": "Landing page HTML", "responses": { "200": { "description": "rendered page" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "metrics" } } } }
  }
}`
