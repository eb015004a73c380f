// Package docs registers the Swagger specification served at /swagger.
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
        "/api/v1/sync": {
            "post": {
                "description": "Reconciles the master issue checklist with the state of the referenced issues.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Sync"],
                "summary": "Run a sync pass",
                "parameters": [
                    {"description": "Pass options", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/http.syncReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.syncResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "409": {"description": "Another pass holds the lock", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/estimates": {
            "post": {
                "description": "Averages estimate comments per issue, updates the time tracking footers and optionally the milestone due date.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Estimates"],
                "summary": "Aggregate milestone estimates",
                "parameters": [
                    {"description": "Run options", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/http.runReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.runResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/webhook/gitlab": {
            "post": {
                "description": "Issue events queue a checklist sync, estimate comments queue an estimate run.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["webhook"],
                "summary": "Receive a GitLab webhook",
                "parameters": [
                    {"type": "string", "description": "Shared webhook secret", "name": "X-Gitlab-Token", "in": "header", "required": true},
                    {"type": "string", "description": "GitLab event name", "name": "X-Gitlab-Event", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "Ignored", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "202": {"description": "Queued or coalesced", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {"200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}}
            }
        }
    },
    "definitions": {
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        },
        "http.syncReq": {
            "type": "object",
            "properties": {"dry_run": {"type": "boolean"}}
        },
        "http.mismatchResp": {
            "type": "object",
            "properties": {
                "issue_ref": {"type": "integer"},
                "line": {"type": "integer"},
                "was_open": {"type": "boolean"},
                "should_be_open": {"type": "boolean"},
                "unknown": {"type": "boolean"},
                "applied": {"type": "boolean"}
            }
        },
        "checklist.Stats": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "completed": {"type": "integer"},
                "pending": {"type": "integer"},
                "progress": {"type": "number"}
            }
        },
        "http.syncResp": {
            "type": "object",
            "properties": {
                "run_id": {"type": "string"},
                "status": {"type": "string", "enum": ["no_master", "no_entries", "up_to_date", "updated", "dry_run"]},
                "entries": {"type": "integer"},
                "mismatches": {"type": "array", "items": {"$ref": "#/definitions/http.mismatchResp"}},
                "text": {"type": "string"},
                "stats": {"$ref": "#/definitions/checklist.Stats"}
            }
        },
        "http.runReq": {
            "type": "object",
            "properties": {
                "milestone_id": {"type": "integer"},
                "recalculate_due_date": {"type": "boolean"},
                "dry_run": {"type": "boolean"}
            }
        },
        "http.issueResp": {
            "type": "object",
            "properties": {
                "iid": {"type": "integer"},
                "title": {"type": "string"},
                "estimates": {"type": "integer"},
                "hours": {"type": "number"},
                "changed": {"type": "boolean"}
            }
        },
        "http.runResp": {
            "type": "object",
            "properties": {
                "milestone_id": {"type": "integer"},
                "issues": {"type": "array", "items": {"$ref": "#/definitions/http.issueResp"}},
                "total_hours": {"type": "number"},
                "due_date": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "GitLab Master Sync API",
	Description:      "Keeps a GitLab master issue checklist in line with the issues it references.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
