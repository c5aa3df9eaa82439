// Package docs holds the OpenAPI description served under /swagger.
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
    "security": [{"BearerAuth": []}],
    "paths": {
        "/series": {
            "get": {"tags": ["series"], "summary": "List series, newest first", "responses": {"200": {"description": "OK"}}},
            "post": {
                "tags": ["series"], "summary": "Create a test series (teacher)",
                "parameters": [{"in": "body", "name": "series", "required": true, "schema": {"$ref": "#/definitions/CreateSeriesDTO"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ErrorResponse"}}, "403": {"description": "Teacher role required"}}
            }
        },
        "/series/{id}": {
            "parameters": [{"in": "path", "name": "id", "required": true, "type": "string", "format": "uuid"}],
            "get": {"tags": ["series"], "summary": "Get a series with its question bank", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["series"], "summary": "Partially update a series (creator)", "responses": {"200": {"description": "OK"}, "403": {"description": "Not the creator"}}},
            "delete": {"tags": ["series"], "summary": "Delete a series and its questions (creator)", "responses": {"200": {"description": "OK"}, "403": {"description": "Not the creator"}}}
        },
        "/series/{id}/questions": {
            "parameters": [{"in": "path", "name": "id", "required": true, "type": "string", "format": "uuid"}],
            "post": {
                "tags": ["series"], "summary": "Add a question (creator)",
                "parameters": [{"in": "body", "name": "question", "required": true, "schema": {"$ref": "#/definitions/QuestionDTO"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Validation failed"}}
            }
        },
        "/series/{id}/questions/{questionID}": {
            "parameters": [
                {"in": "path", "name": "id", "required": true, "type": "string", "format": "uuid"},
                {"in": "path", "name": "questionID", "required": true, "type": "string", "format": "uuid"}
            ],
            "put": {"tags": ["series"], "summary": "Partially update a question (creator)", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["series"], "summary": "Remove a question (creator)", "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}}
        },
        "/results": {
            "post": {
                "tags": ["results"], "summary": "Submit answers for grading",
                "parameters": [{"in": "body", "name": "submission", "required": true, "schema": {"$ref": "#/definitions/CreateResultDTO"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Validation failed"}, "404": {"description": "Series not found"}}
            }
        },
        "/results/my": {"get": {"tags": ["results"], "summary": "Caller's results, newest first", "responses": {"200": {"description": "OK"}}}},
        "/results/all": {"get": {"tags": ["results"], "summary": "Results of the caller's series (teacher)", "responses": {"200": {"description": "OK"}, "403": {"description": "Teacher role required"}}}},
        "/results/{id}": {
            "parameters": [{"in": "path", "name": "id", "required": true, "type": "string", "format": "uuid"}],
            "get": {"tags": ["results"], "summary": "Get one result (owner or series creator)", "responses": {"200": {"description": "OK"}, "403": {"description": "Access denied"}, "404": {"description": "Not found"}}},
            "delete": {"tags": ["results"], "summary": "Delete one result (owner or series creator)", "responses": {"200": {"description": "OK"}, "403": {"description": "Access denied"}, "404": {"description": "Not found"}}}
        },
        "/ai-quiz": {"post": {"tags": ["ai-quiz"], "summary": "Draft questions with Gemini (teacher)", "responses": {"201": {"description": "Created"}}}},
        "/users/me": {"get": {"tags": ["users"], "summary": "Current user", "responses": {"200": {"description": "OK"}}}},
        "/auth/logout": {"post": {"tags": ["auth"], "summary": "Clear the session cookie", "security": [], "responses": {"200": {"description": "OK"}}}}
    },
    "definitions": {
        "ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "fields": {"type": "object", "additionalProperties": {"type": "string"}}}
        },
        "QuestionDTO": {
            "type": "object",
            "required": ["text", "options", "answer"],
            "properties": {
                "text": {"type": "string"},
                "options": {"type": "array", "minItems": 4, "maxItems": 4, "items": {"type": "string"}},
                "answer": {"type": "string"},
                "image": {"type": "string"}
            }
        },
        "CreateSeriesDTO": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "image_url": {"type": "string"},
                "timer": {"type": "integer", "minimum": 0},
                "solution_video": {"type": "object", "properties": {"url": {"type": "string"}, "is_youtube": {"type": "boolean"}}},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/QuestionDTO"}}
            }
        },
        "CreateResultDTO": {
            "type": "object",
            "required": ["series_id", "answers", "time_taken"],
            "properties": {
                "series_id": {"type": "string", "format": "uuid"},
                "answers": {"type": "object", "additionalProperties": {"type": "string"}},
                "time_taken": {"type": "integer", "minimum": 0},
                "feedback": {"type": "string"}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Test Series API",
	Description:      "Timed multiple-choice test series with server-side grading.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
