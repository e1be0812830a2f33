// Package docs holds the OpenAPI document for the customer API, registered
// with swag so it can be served at /docs/openapi.json.
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
        "/customers/": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns all customers. Requires the USER authority.",
                "produces": ["application/json"],
                "tags": ["Customers"],
                "summary": "List customers",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Customer"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/customers/mySession": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns the authentication context of the caller, or null when the request is anonymous",
                "produces": ["application/json"],
                "tags": ["Session"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Session"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/customers/{id}": {
            "get": {
                "description": "Returns the customer with the given ID, or null when it does not exist",
                "produces": ["application/json"],
                "tags": ["Customers"],
                "summary": "Get customer",
                "parameters": [{"type": "integer", "description": "Customer ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Customer"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "model.Authority": {
            "type": "object",
            "properties": {"authority": {"type": "string"}}
        },
        "model.Credentials": {
            "type": "object",
            "properties": {
                "token_id": {"type": "string"},
                "issuer": {"type": "string"},
                "audience": {"type": "array", "items": {"type": "string"}},
                "issued_at": {"type": "string"},
                "expires_at": {"type": "string"}
            }
        },
        "model.Customer": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "model.Principal": {
            "type": "object",
            "properties": {
                "subject": {"type": "string"},
                "preferred_username": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "model.Session": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "principal": {"$ref": "#/definitions/model.Principal"},
                "authorities": {"type": "array", "items": {"$ref": "#/definitions/model.Authority"}},
                "authenticated": {"type": "boolean"},
                "credentials": {"$ref": "#/definitions/model.Credentials"},
                "token_attributes": {"type": "object", "additionalProperties": true}
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Customer Service API",
	Description:      "Customer records and the caller's session.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
