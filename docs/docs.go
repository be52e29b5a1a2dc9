// Package docs holds the OpenAPI description served at /swagger/.
// Regenerate with: swag init -g cmd/devevents/main.go -o docs
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
        "/api/bookings": {
            "post": {
                "description": "Records the email's interest in the event and sends a confirmation email. Repeated bookings are allowed.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Book a spot at an event",
                "parameters": [
                    {
                        "description": "Event id and attendee email",
                        "name": "booking",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/controllers.CreateBookingRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.BookingResponse"}},
                    "400": {"description": "malformed body or invalid email", "schema": {"$ref": "#/definitions/controllers.BookingResponse"}},
                    "404": {"description": "event does not exist", "schema": {"$ref": "#/definitions/controllers.BookingResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.BookingResponse"}}
                }
            }
        },
        "/api/events": {
            "get": {
                "description": "Returns all events newest first, optionally searched, filtered and re-sorted.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List events",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive search over title, description, location and tags", "name": "q", "in": "query"},
                    {"type": "string", "description": "online, offline, hybrid or all", "name": "mode", "in": "query"},
                    {"type": "string", "description": "Exact location or all", "name": "location", "in": "query"},
                    {"type": "string", "description": "newest, oldest, title-asc or title-desc", "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ListEventsResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ServerErrorResponse"}}
                }
            },
            "post": {
                "description": "Multipart form with the event's text fields, a binary image part, and tags/agenda as JSON string arrays. The slug is derived from the title; id and timestamps are server-generated.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Create a new event",
                "parameters": [
                    {"type": "string", "description": "Title", "name": "title", "in": "formData", "required": true},
                    {"type": "string", "description": "Description (max 500 characters)", "name": "description", "in": "formData", "required": true},
                    {"type": "string", "description": "Overview (max 500 characters)", "name": "overview", "in": "formData", "required": true},
                    {"type": "file", "description": "Event image", "name": "image", "in": "formData", "required": true},
                    {"type": "string", "description": "Venue", "name": "venue", "in": "formData", "required": true},
                    {"type": "string", "description": "Location", "name": "location", "in": "formData", "required": true},
                    {"type": "string", "description": "Date (e.g. 2024-03-05)", "name": "date", "in": "formData", "required": true},
                    {"type": "string", "description": "Time (e.g. 09:00 or 9:00 AM)", "name": "time", "in": "formData", "required": true},
                    {"type": "string", "description": "online, offline or hybrid", "name": "mode", "in": "formData", "required": true},
                    {"type": "string", "description": "Audience", "name": "audience", "in": "formData", "required": true},
                    {"type": "string", "description": "JSON array of agenda items", "name": "agenda", "in": "formData", "required": true},
                    {"type": "string", "description": "Organizer", "name": "organizer", "in": "formData", "required": true},
                    {"type": "string", "description": "JSON array of tags", "name": "tags", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.CreateEventResponse"}},
                    "400": {"description": "message, plus errors[] for field validation", "schema": {"$ref": "#/definitions/helpers.ValidationErrorResponse"}},
                    "409": {"description": "an event with this title already exists", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ServerErrorResponse"}}
                }
            }
        },
        "/api/events/locations": {
            "get": {
                "description": "Sorted unique locations across all events, for building location filters.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List event locations",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ListLocationsResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ServerErrorResponse"}}
                }
            }
        },
        "/api/events/{slug}": {
            "get": {
                "description": "Returns the event, its booking count and up to three similar events.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Get an event by slug",
                "parameters": [
                    {"type": "string", "description": "Event slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.GetEventResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ServerErrorResponse"}}
                }
            }
        },
        "/api/events/{slug}/similar": {
            "get": {
                "description": "Events sharing at least one tag with the given event, newest first.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List events similar to an event",
                "parameters": [
                    {"type": "string", "description": "Event slug", "name": "slug", "in": "path", "required": true},
                    {"type": "integer", "description": "Maximum number of events (default 3)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.ListEventsResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ServerErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness and database readiness",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/controllers.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.BookingResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "controllers.CreateBookingRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "eventId": {"type": "string"}
            }
        },
        "controllers.CreateEventResponse": {
            "type": "object",
            "properties": {
                "event": {"$ref": "#/definitions/domain.Event"},
                "message": {"type": "string"}
            }
        },
        "controllers.GetEventResponse": {
            "type": "object",
            "properties": {
                "bookings": {"type": "integer"},
                "event": {"$ref": "#/definitions/domain.Event"},
                "message": {"type": "string"},
                "similarEvents": {"type": "array", "items": {"$ref": "#/definitions/domain.Event"}}
            }
        },
        "controllers.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"}
            }
        },
        "controllers.ListEventsResponse": {
            "type": "object",
            "properties": {
                "events": {"type": "array", "items": {"$ref": "#/definitions/domain.Event"}},
                "message": {"type": "string"}
            }
        },
        "controllers.ListLocationsResponse": {
            "type": "object",
            "properties": {
                "locations": {"type": "array", "items": {"type": "string"}},
                "message": {"type": "string"}
            }
        },
        "domain.Event": {
            "type": "object",
            "properties": {
                "agenda": {"type": "array", "items": {"type": "string"}},
                "audience": {"type": "string"},
                "createdAt": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "image": {"type": "string"},
                "location": {"type": "string"},
                "mode": {"type": "string"},
                "organizer": {"type": "string"},
                "overview": {"type": "string"},
                "slug": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "time": {"type": "string"},
                "title": {"type": "string"},
                "updatedAt": {"type": "string"},
                "venue": {"type": "string"}
            }
        },
        "helpers.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "helpers.ServerErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "helpers.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "errors": {"type": "array", "items": {"type": "string"}},
                "message": {"type": "string"}
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
	Title:            "DevEvents API",
	Description:      "Browse, search and create developer events, and book a spot.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
