package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Bellwall API",
        "description": "Live class-bell engine and schedule editor for the dojo wall display",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Admin token exchange"},
        {"name": "Display", "description": "Read-only live state for the wall display"},
        {"name": "Groups", "description": "Schedule group management"},
        {"name": "Schedules", "description": "Bell schedule editing"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/metrics": {
            "get": {
                "summary": "Prometheus metrics",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate admin",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid password", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/display/state": {
            "get": {
                "tags": ["Display"],
                "summary": "Current display state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/display/next": {
            "get": {
                "tags": ["Display"],
                "summary": "Next class occurrence",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/display/mute": {
            "put": {
                "tags": ["Display"],
                "summary": "Toggle display audio",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/MuteRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/sounds": {
            "get": {
                "tags": ["Display"],
                "summary": "List bell sounds",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/groups": {
            "get": {
                "tags": ["Groups"],
                "summary": "List schedule groups",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Groups"],
                "summary": "Create schedule group",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateGroupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/groups/{id}": {
            "delete": {
                "tags": ["Groups"],
                "summary": "Delete schedule group",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/api/v1/groups/{id}/activate": {
            "post": {
                "tags": ["Groups"],
                "summary": "Activate schedule group",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Activated"}
                }
            }
        },
        "/api/v1/groups/{id}/schedules": {
            "get": {
                "tags": ["Schedules"],
                "summary": "List schedules in a group",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/schedules": {
            "post": {
                "tags": ["Schedules"],
                "summary": "Create schedule",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateScheduleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/schedules/{id}": {
            "get": {
                "tags": ["Schedules"],
                "summary": "Get schedule detail",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "put": {
                "tags": ["Schedules"],
                "summary": "Update schedule",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateScheduleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Schedules"],
                "summary": "Delete schedule",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/api/v1/schedules/{id}/duplicate": {
            "post": {
                "tags": ["Schedules"],
                "summary": "Duplicate schedule",
                "security": [{"Bearer": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/schedules/{id}/export": {
            "get": {
                "tags": ["Schedules"],
                "summary": "Export schedule as CSV or PDF",
                "produces": ["application/octet-stream"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "Rendered document"}
                }
            }
        }
    },
    "securityDefinitions": {
        "Bearer": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"}
            },
            "required": ["password"]
        },
        "MuteRequest": {
            "type": "object",
            "properties": {
                "muted": {"type": "boolean"}
            }
        },
        "CreateGroupRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"}
            },
            "required": ["name"]
        },
        "SectionRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "duration_minutes": {"type": "integer"},
                "color": {"type": "string"},
                "play_end_bell": {"type": "boolean"},
                "play_two_minute_warning": {"type": "boolean"},
                "bell_sound": {"type": "string", "enum": ["classic", "gong", "chime", "soft"]}
            },
            "required": ["name", "duration_minutes", "bell_sound"]
        },
        "CreateScheduleRequest": {
            "type": "object",
            "properties": {
                "group_id": {"type": "string"},
                "name": {"type": "string"},
                "day_of_week": {"type": "string"},
                "class_start": {"type": "string", "example": "18:00"},
                "warning_sound": {"type": "string"},
                "end_bell_sound": {"type": "string"},
                "sections": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/SectionRequest"}
                }
            },
            "required": ["group_id", "name", "class_start", "warning_sound", "end_bell_sound"]
        },
        "UpdateScheduleRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "day_of_week": {"type": "string"},
                "class_start": {"type": "string", "example": "18:00"},
                "warning_sound": {"type": "string"},
                "end_bell_sound": {"type": "string"},
                "sections": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/SectionRequest"}
                }
            },
            "required": ["name", "class_start", "warning_sound", "end_bell_sound"]
        },
        "TimerState": {
            "type": "object",
            "properties": {
                "current_time": {"type": "string"},
                "current_section": {"type": "object"},
                "next_section": {"type": "object"},
                "seconds_remaining": {"type": "integer"},
                "is_warning_phase": {"type": "boolean"},
                "is_two_minute_warning": {"type": "boolean"},
                "is_class_active": {"type": "boolean"},
                "class_progress": {"type": "number"},
                "section_progress": {"type": "number"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"type": "object"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
