package docs

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OpenAPI specification served at /openapi.json
const openapiJSON = `{
  "openapi": "3.0.3",
  "info": {
    "title": "arksignup Frontend API",
    "version": "0.1.0"
  },
  "servers": [ { "url": "/" } ],
  "tags": [
    {"name": "signup", "description": "Signup form and relay"},
    {"name": "basics", "description": "Basic routes"}
  ],
  "paths": {
    "/": {
      "get": {"summary": "Signup form with current weekday and time","tags": ["signup"],"responses": {"200": {"description": "HTML page"}}}
    },
    "/submit": {
      "post": {
        "summary": "Relay a form submission to the signup service",
        "tags": ["signup"],
        "requestBody": {
          "required": true,
          "content": {"application/x-www-form-urlencoded": {"schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
        },
        "responses": {
          "200": {
            "description": "Acknowledgment echoing the submitted fields",
            "content": {"application/json": {"schema": {
              "type": "object",
              "properties": {
                "status": {"type": "string", "example": "success"},
                "data": {"type": "object", "additionalProperties": {"type": "string"}}
              }
            }}}
          }
        }
      }
    },
    "/about": {
      "get": {"summary": "About page","tags": ["basics"],"responses": {"200": {"description": "OK"}}}
    },
    "/api/{name}": {
      "get": {"summary": "Echo a path parameter","tags": ["basics"],"parameters": [{"name":"name","in":"path","required":true,"schema":{"type":"string"}}],"responses": {"200": {"description": "OK"}}}
    },
    "/url": {
      "get": {
        "summary": "Adult check",
        "tags": ["basics"],
        "parameters": [
          {"name":"name","in":"query","schema":{"type":"string"}},
          {"name":"age","in":"query","required":true,"schema":{"type":"integer"}}
        ],
        "responses": {"200": {"description": "OK"}, "400": {"description": "age is not an integer"}}
      }
    }
  }
}`

// RegisterRoutes wires the API documentation endpoints into the Gin engine.
// - GET /openapi.json: OpenAPI 3.0 spec
// - GET /docs: Swagger UI (via CDN) loading /openapi.json
func RegisterRoutes(r *gin.Engine) {
	r.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(openapiJSON))
	})
	r.GET("/docs", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerHTML))
	})
}

// Simple Swagger-UI page using CDN assets, pointing to /openapi.json
const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8"/>
  <title>arksignup API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js" crossorigin></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.json',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
 </body>
</html>`
