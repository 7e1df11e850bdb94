// Package docs registers the OpenAPI document of the HTTP API with swag.
// The reference page at /docs reads it back through swag.ReadDoc.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/api/track-view": {
            "get": {
                "tags": ["views"],
                "summary": "View tracking health check",
                "responses": {
                    "200": {"description": "healthy", "schema": {"$ref": "#/definitions/TrackViewHealth"}},
                    "500": {"description": "database unreachable", "schema": {"$ref": "#/definitions/TrackViewHealth"}}
                }
            },
            "post": {
                "tags": ["views"],
                "summary": "Count one view of a published news item or announcement",
                "parameters": [
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/TrackViewRequest"}}
                ],
                "responses": {
                    "200": {"description": "counted", "schema": {"$ref": "#/definitions/TrackViewResponse"}},
                    "400": {"description": "invalid type or id"},
                    "404": {"description": "content not found or not published"},
                    "429": {"description": "rate limited"}
                }
            }
        },
        "/api/v1/home": {
            "get": {"tags": ["public"], "summary": "Home page bundle: slider, latest news, announcements", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/news": {
            "get": {
                "tags": ["public"],
                "summary": "List published news",
                "parameters": [
                    {"in": "query", "name": "search", "type": "string"},
                    {"in": "query", "name": "category", "type": "string"},
                    {"in": "query", "name": "page", "type": "integer"},
                    {"in": "query", "name": "per_page", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/news/categories": {
            "get": {"tags": ["public"], "summary": "Distinct news categories", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/news/{slug}": {
            "get": {
                "tags": ["public"],
                "summary": "Published news item by slug",
                "parameters": [{"in": "path", "name": "slug", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "not found"}}
            }
        },
        "/api/v1/announcements": {
            "get": {
                "tags": ["public"],
                "summary": "List published announcements by priority",
                "parameters": [
                    {"in": "query", "name": "search", "type": "string"},
                    {"in": "query", "name": "priority", "type": "string", "enum": ["urgent", "important", "normal"]},
                    {"in": "query", "name": "page", "type": "integer"},
                    {"in": "query", "name": "per_page", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/v1/announcements/notifications": {
            "get": {"tags": ["public"], "summary": "Announcements shown as site notifications", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/announcements/priorities": {
            "get": {"tags": ["public"], "summary": "Priorities in display order", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/announcements/{slug}": {
            "get": {
                "tags": ["public"],
                "summary": "Published announcement by slug",
                "parameters": [{"in": "path", "name": "slug", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "not found"}}
            }
        },
        "/api/v1/categories": {
            "get": {"tags": ["public"], "summary": "Content categories", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/slider": {
            "get": {"tags": ["public"], "summary": "Active slider images in order", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/contact": {
            "post": {"tags": ["public"], "summary": "Submit the contact form", "responses": {"201": {"description": "Created"}, "400": {"description": "invalid form"}}}
        },
        "/api/v1/auth/login": {
            "post": {"tags": ["auth"], "summary": "Exchange credentials for a JWT", "responses": {"200": {"description": "OK"}, "401": {"description": "invalid credentials"}}}
        },
        "/api/v1/auth/me": {
            "get": {"tags": ["auth"], "security": [{"BearerAuth": []}], "summary": "Current user", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/admin/news": {
            "get": {"tags": ["admin"], "security": [{"BearerAuth": []}], "summary": "List news in every status", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["admin"], "security": [{"BearerAuth": []}], "summary": "Create news", "responses": {"201": {"description": "Created"}, "400": {"description": "validation failed"}}}
        },
        "/api/v1/admin/news/{id}": {
            "get": {"tags": ["admin"], "security": [{"BearerAuth": []}], "summary": "Get news by id", "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["admin"], "security": [{"BearerAuth": []}], "summary": "Partially update news", "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["admin"], "security": [{"BearerAuth": []}], "summary": "Delete news", "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/admin/announcements": {
            "get": {"tags": ["admin"], "security": [{"BearerAuth": []}], "summary": "List announcements in every status", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["admin"], "security": [{"BearerAuth": []}], "summary": "Create announcement", "responses": {"201": {"description": "Created"}}}
        },
        "/api/v1/admin/announcements/{id}": {
            "get": {"tags": ["admin"], "security": [{"BearerAuth": []}], "summary": "Get announcement by id", "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}},
            "patch": {"tags": ["admin"], "security": [{"BearerAuth": []}], "summary": "Partially update announcement", "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["admin"], "security": [{"BearerAuth": []}], "summary": "Delete announcement", "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/admin/stats/views": {
            "get": {"tags": ["admin"], "security": [{"BearerAuth": []}], "summary": "Most viewed content", "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "TrackViewRequest": {
            "type": "object",
            "required": ["type", "id"],
            "properties": {
                "type": {"type": "string", "enum": ["news", "announcement"]},
                "id": {"type": "string", "format": "uuid"}
            }
        },
        "TrackViewResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "newViewCount": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "TrackViewHealth": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "timestamp": {"type": "string", "format": "date-time"},
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "School CMS API",
	Description:      "Public site API, view counter and back office of the school website.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
