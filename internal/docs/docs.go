// Package docs holds the swagger document served by the local HTTP server.
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
        "/prompt": {
            "post": {
                "description": "Forward a prompt to the configured model and return its answer",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["prompt"],
                "summary": "Complete a prompt",
                "parameters": [
                    {
                        "description": "Prompt",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.PromptRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.AnswerBody"}},
                    "204": {"description": "CORS preflight"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorBody"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handlers.ErrorBody"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "handlers.PromptRequest": {
            "type": "object",
            "properties": {
                "prompt": {"type": "string"},
                "message": {"type": "string"},
                "input": {"type": "string"},
                "text": {"type": "string"},
                "data": {}
            }
        },
        "handlers.AnswerBody": {
            "type": "object",
            "properties": {"answer": {"type": "string"}}
        },
        "handlers.ErrorBody": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8081",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Prompt Relay API",
	Description:      "Forwards prompts to a Bedrock hosted model and returns the generated text",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
