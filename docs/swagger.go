// Package docs registers the OpenAPI description served at /swagger.
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
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/register": {
            "post": {
                "tags": ["Users"],
                "summary": "Register a new user",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.AuthResponse"}},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["Users"],
                "summary": "Exchange credentials for a JWT",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.AuthResponse"}},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/statuses": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Statuses"],
                "summary": "List the status catalog",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.StatusResponse"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Statuses"],
                "summary": "Add a non-crucial status to the catalog",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.StatusRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.StatusResponse"}},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/statuses/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["Statuses"],
                "summary": "Remove a status that no board uses",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/squads": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Squads"],
                "summary": "Create a squad with its board and default columns",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.CreateSquadRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.SquadResponse"}},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/squads/{id}/columns": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Squads"],
                "summary": "Bind a catalog status to the squad's board",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.AddColumnRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.ColumnResponse"}},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/squads/{id}/tasks": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Create a task in one of the squad's columns",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.TaskRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.TaskResponse"}},
                    "404": {"description": "squad or status not found"}
                }
            }
        },
        "/tasks/{id}/move": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Move a task to another column of its own board",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.TaskMoveRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.TaskResponse"}},
                    "404": {"description": "status not found"}
                }
            }
        },
        "/applications/{id}/transition": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Applications"],
                "summary": "Advance an application through the recruitment pipeline",
                "description": "Moves to the next pipeline step or to REFUSED and records the reason as feedback.",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.TransitionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ApplicationResponse"}},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/requests/{id}/resolve": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Requests"],
                "summary": "Approve or reject a pending request",
                "description": "Approval applies the request's counter change to its user in the same transaction.",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handler.ResolveRequestRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.RequestResponse"}},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"}
                }
            }
        }
    },
    "definitions": {
        "handler.RegisterRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {"email": {"type": "string"}, "name": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.UserResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "email": {"type": "string"}, "name": {"type": "string"},
                "gs_status": {"type": "string", "enum": ["ACTIVE", "FREEZE"]},
                "freeze_cards_count": {"type": "integer"},
                "protection_cards_count": {"type": "integer"},
                "hearts_count": {"type": "integer"}
            }
        },
        "handler.AuthResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "user": {"$ref": "#/definitions/handler.UserResponse"}}
        },
        "handler.StatusRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}}
        },
        "handler.StatusResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "crucial": {"type": "boolean"}}
        },
        "handler.CreateSquadRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}}
        },
        "handler.AddColumnRequest": {
            "type": "object",
            "required": ["status_id"],
            "properties": {"status_id": {"type": "string"}}
        },
        "handler.ColumnResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "status_id": {"type": "string"}, "status": {"type": "string"}, "crucial": {"type": "boolean"}}
        },
        "handler.SquadResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "name": {"type": "string"}, "board_id": {"type": "string"},
                "columns": {"type": "array", "items": {"$ref": "#/definitions/handler.ColumnResponse"}},
                "created_at": {"type": "string"}
            }
        },
        "handler.TaskRequest": {
            "type": "object",
            "required": ["title", "status_id"],
            "properties": {
                "title": {"type": "string"}, "description": {"type": "string"}, "status_id": {"type": "string"},
                "priority": {"type": "integer"}, "difficulty": {"type": "integer"}, "deadline": {"type": "string"}
            }
        },
        "handler.TaskMoveRequest": {
            "type": "object",
            "required": ["status_id"],
            "properties": {"status_id": {"type": "string"}}
        },
        "handler.TaskResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "title": {"type": "string"}, "description": {"type": "string"},
                "priority": {"type": "integer"}, "difficulty": {"type": "integer"}, "deadline": {"type": "string"},
                "column_id": {"type": "string"}, "status_id": {"type": "string"}, "status": {"type": "string"},
                "assigned_by": {"type": "string"}
            }
        },
        "handler.TransitionRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string", "enum": ["APPLIED", "HR_APPROVED", "ORCH_APPROVED", "HR_INTERVIEW_APPROVED", "TECH_INTERVIEW_APPROVED", "DONE", "REFUSED"]},
                "reason": {"type": "string"}
            }
        },
        "handler.FeedbackResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "type": {"type": "string"}, "text": {"type": "string"}, "created_at": {"type": "string"}}
        },
        "handler.ApplicationResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "vacancy_id": {"type": "string"}, "candidate_id": {"type": "string"},
                "status": {"type": "string"},
                "feedback": {"type": "array", "items": {"$ref": "#/definitions/handler.FeedbackResponse"}}
            }
        },
        "handler.ResolveRequestRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {"status": {"type": "string", "enum": ["Approved", "Rejected"]}, "reason": {"type": "string"}}
        },
        "handler.RequestResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "user_id": {"type": "string"},
                "request_type": {"type": "string", "enum": ["Freeze", "Protection", "HeartAddition", "HeartDeletion"]},
                "status": {"type": "string"}, "reason": {"type": "string"}, "date": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "SquadHR API",
	Description:      "Recruitment pipeline, squad boards and member requests.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
