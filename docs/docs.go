// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}, "503": {"description": "Database unavailable"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}},
        "/api/v1/auth/register": {"post": {"tags": ["Auth"], "summary": "Register", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}, "429": {"description": "Too Many Requests"}}}},
        "/api/v1/auth/login": {"post": {"tags": ["Auth"], "summary": "Login", "responses": {"200": {"description": "OK"}, "401": {"description": "Invalid credentials"}, "429": {"description": "Too Many Requests"}}}},
        "/api/v1/auth/me": {"get": {"security": [{"BearerAuth": []}], "tags": ["Auth"], "summary": "Current user", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/api/v1/user": {"put": {"security": [{"BearerAuth": []}], "tags": ["User"], "summary": "Update profile", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/api/v1/plans": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["Plans"], "summary": "List plans", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["Plans"], "summary": "Create plan", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/api/v1/plans/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["Plans"], "summary": "Update plan", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["Plans"], "summary": "Delete plan", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/api/v1/plans/bulk": {"post": {"security": [{"BearerAuth": []}], "tags": ["Plans"], "summary": "Create plans in bulk", "responses": {"200": {"description": "OK"}, "400": {"description": "Empty or too many plans"}}}},
        "/api/v1/plans/parse": {"post": {"security": [{"BearerAuth": []}], "tags": ["Parsing"], "summary": "Parse text with AI", "responses": {"200": {"description": "OK"}, "502": {"description": "AI unavailable or failed"}}}},
        "/api/v1/plans/parse/local": {"post": {"security": [{"BearerAuth": []}], "tags": ["Parsing"], "summary": "Parse text locally", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/plans/complete": {"post": {"security": [{"BearerAuth": []}], "tags": ["Parsing"], "summary": "Complete plan from text", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/plans/stats": {"get": {"security": [{"BearerAuth": []}], "tags": ["Plans"], "summary": "Plan statistics", "responses": {"200": {"description": "OK"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "bbip API",
	Description:      "Personal daily planner: plans, Korean free-text parsing and statistics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
