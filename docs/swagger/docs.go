// Package swagger holds the OpenAPI document served at /swagger.
package swagger

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
        "/pages/{path}": {
            "get": {
                "description": "Fetches the page, loads every fragment declared with data-component and returns the resulting HTML.",
                "produces": ["text/html"],
                "tags": ["pages"],
                "summary": "Assemble Page",
                "parameters": [
                    {"type": "string", "description": "Page path", "name": "path", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Assembled HTML", "schema": {"type": "string"}},
                    "404": {"description": "Page not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Source unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/fragments/{path}": {
            "get": {
                "description": "Returns the raw markup of a fragment, from the cache when possible.",
                "produces": ["text/html"],
                "tags": ["fragments"],
                "summary": "Get Fragment",
                "parameters": [
                    {"type": "string", "description": "Fragment path", "name": "path", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Fragment markup", "schema": {"type": "string"}},
                    "404": {"description": "Fragment not found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Source unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/cache": {
            "get": {
                "description": "Lists the fragment references currently held in the shared cache.",
                "produces": ["application/json"],
                "tags": ["cache"],
                "summary": "List Cache",
                "responses": {
                    "200": {"description": "Cache entries", "schema": {"type": "object", "additionalProperties": true}}
                }
            },
            "delete": {
                "description": "Drops every cached fragment. Already served pages are unaffected.",
                "produces": ["application/json"],
                "tags": ["cache"],
                "summary": "Clear Cache",
                "responses": {
                    "200": {"description": "Cleared", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Fragment Loader API",
	Description:      "Assembles pages from declared HTML fragments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
