// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with: swag init -g cmd/backoffice/main.go -o cmd/docs
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
        "/tenants": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json"], "tags": ["tenants"], "summary": "List tenants", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "consumes": ["application/json"], "produces": ["application/json"], "tags": ["tenants"], "summary": "Create a tenant", "responses": {"201": {"description": "Created"}}}
        },
        "/tenants/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["tenants"], "summary": "Get a tenant", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["tenants"], "summary": "Update a tenant", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["tenants"], "summary": "Delete a tenant", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/leases": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["leases"], "summary": "List leases", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["leases"], "summary": "Create a lease", "responses": {"201": {"description": "Created"}}}
        },
        "/payments": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["payments"], "summary": "List manual payments", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["payments"], "summary": "Record a manual payment", "responses": {"201": {"description": "Created"}}}
        },
        "/deposits": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["deposits"], "summary": "List security deposit movements", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["deposits"], "summary": "Record a security deposit movement", "responses": {"201": {"description": "Created"}}}
        },
        "/utility-charges": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["utilities"], "summary": "List utility charges", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["utilities"], "summary": "Create a utility charge", "responses": {"201": {"description": "Created"}}}
        },
        "/bank-transactions": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["bank"], "summary": "List imported bank transactions", "responses": {"200": {"description": "OK"}}}
        },
        "/bank-transactions/import": {
            "post": {"security": [{"BearerAuth": []}, {"ApiKeyAuth": []}], "tags": ["bank"], "summary": "Import bank transactions", "responses": {"200": {"description": "OK"}}}
        },
        "/reports/tenants/{id}/ledger": {
            "get": {"security": [{"BearerAuth": []}], "produces": ["application/json", "text/csv", "application/pdf"], "tags": ["reports"], "summary": "Tenant ledger", "responses": {"200": {"description": "OK"}}}
        },
        "/reports/tenants/{id}/utility-charges": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Tenant utility charges", "responses": {"200": {"description": "OK"}}}
        },
        "/reports/deposits": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Security deposits", "responses": {"200": {"description": "OK"}}}
        },
        "/reports/unit-financials": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Unit financials", "responses": {"200": {"description": "OK"}}}
        },
        "/reports/overdue": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Overdue rent", "responses": {"200": {"description": "OK"}}}
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"},
        "BearerAuth": {"description": "Type \"Bearer\" followed by a space and JWT token.", "type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Property Back Office API",
	Description:      "Tenant statements, bank reconciliation and rent reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
