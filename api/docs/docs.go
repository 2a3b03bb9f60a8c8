// Package docs holds the OpenAPI document served under /swagger when enabled.
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
    "paths": {
        "/": {
            "get": {
                "description": "Static page linking the other endpoints",
                "produces": ["text/html"],
                "tags": ["index"],
                "summary": "Index",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        },
        "/api/hello": {
            "get": {
                "description": "Returns a new request id and the hostname, pod IP and node name of the serving pod",
                "produces": ["application/json"],
                "tags": ["api"],
                "summary": "Greeting",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ApiResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Returns status, build version, current time and environment",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HealthResponse"}}
                }
            }
        },
        "/metrics": {
            "get": {
                "description": "Placeholder metrics in text exposition format",
                "produces": ["text/plain"],
                "tags": ["metrics"],
                "summary": "Metrics",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "models.ApiResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object",
                    "additionalProperties": {"type": "string"}
                },
                "id": {"type": "string", "example": "550e8400-e29b-41d4-a716-446655440000"},
                "message": {"type": "string", "example": "Hello from Go on EKS!"}
            }
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {
                "environment": {"type": "string", "example": "development"},
                "status": {"type": "string", "example": "healthy"},
                "timestamp": {"type": "string", "example": "2025-06-04T00:15:30Z"},
                "version": {"type": "string", "example": "0.1.0"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "EKS Go App",
	Description:      "Smoke-test service for containerised deployments",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
