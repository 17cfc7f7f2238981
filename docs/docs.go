//go:build swagger

package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "eventhost maintainers"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/status": {
            "get": {
                "description": "Player counts, loaded components and handler counts per dispatcher.",
                "produces": ["application/json"],
                "tags": ["core"],
                "summary": "Core status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.StatusResponse"}}
                }
            }
        },
        "/players": {
            "get": {
                "produces": ["application/json"],
                "tags": ["players"],
                "summary": "List connected players",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.PlayersResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["players"],
                "summary": "Connect a player",
                "parameters": [
                    {"description": "player", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.ConnectRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/types.PlayerInfo"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/players/{id}": {
            "delete": {
                "tags": ["players"],
                "summary": "Kick a player",
                "parameters": [
                    {"type": "integer", "description": "player id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/players/{id}/text": {
            "post": {
                "description": "Delivered is false when any player handler vetoed the text.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["players"],
                "summary": "Send chat text as a player",
                "parameters": [
                    {"type": "integer", "description": "player id", "name": "id", "in": "path", "required": true},
                    {"description": "text", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.TextRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.TextResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/players/{id}/packets": {
            "post": {
                "description": "Accepted is false when any handler registered for the packet id rejected it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["players"],
                "summary": "Inject a packet from a player",
                "parameters": [
                    {"type": "integer", "description": "player id", "name": "id", "in": "path", "required": true},
                    {"description": "packet", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.PacketRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.PacketResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/players/{id}/rpcs": {
            "post": {
                "description": "Accepted is false when an RPC-in handler or a handler registered for the RPC id rejected it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["players"],
                "summary": "Inject an RPC from a player",
                "parameters": [
                    {"type": "integer", "description": "player id", "name": "id", "in": "path", "required": true},
                    {"description": "rpc", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.RPCRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.PacketResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/npcs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["npcs"],
                "summary": "List NPCs",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.NPCsResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["npcs"],
                "summary": "Spawn an NPC",
                "parameters": [
                    {"description": "npc", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.ConnectRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/types.NPCInfo"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/npcs/{id}": {
            "delete": {
                "tags": ["npcs"],
                "summary": "Release an NPC",
                "parameters": [
                    {"type": "integer", "description": "npc id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "types.ConnectRequest": {"type": "object", "properties": {"name": {"type": "string", "example": "alice"}}},
        "types.TextRequest": {"type": "object", "properties": {"text": {"type": "string", "example": "hello world"}}},
        "types.TextResponse": {"type": "object", "properties": {"delivered": {"type": "boolean", "example": true}}},
        "types.PacketRequest": {"type": "object", "properties": {"packet_id": {"type": "integer", "example": 1}, "data": {"type": "string", "example": "hi"}}},
        "types.RPCRequest": {"type": "object", "properties": {"rpc_id": {"type": "integer", "example": 25}, "data": {"type": "string", "example": "hi"}}},
        "types.PacketResponse": {"type": "object", "properties": {"accepted": {"type": "boolean", "example": true}}},
        "types.PlayerInfo": {"type": "object", "properties": {
            "id": {"type": "integer", "example": 0},
            "session": {"type": "string"},
            "name": {"type": "string", "example": "alice"},
            "bot": {"type": "boolean", "example": false},
            "connected_unix": {"type": "integer", "example": 1700000000}
        }},
        "types.PlayersResponse": {"type": "object", "properties": {"players": {"type": "array", "items": {"$ref": "#/definitions/types.PlayerInfo"}}}},
        "types.NPCInfo": {"type": "object", "properties": {
            "id": {"type": "integer", "example": 3},
            "name": {"type": "string", "example": "guard"},
            "uptime_ms": {"type": "integer", "example": 1500}
        }},
        "types.NPCsResponse": {"type": "object", "properties": {"npcs": {"type": "array", "items": {"$ref": "#/definitions/types.NPCInfo"}}}},
        "types.DispatcherStatus": {"type": "object", "properties": {
            "name": {"type": "string", "example": "player"},
            "handlers": {"type": "integer", "example": 2},
            "slots": {"type": "integer", "example": 256}
        }},
        "types.StatusResponse": {"type": "object", "properties": {
            "ready": {"type": "boolean", "example": true},
            "players": {"type": "integer", "example": 2},
            "max_players": {"type": "integer", "example": 100},
            "npcs": {"type": "integer", "example": 1},
            "components": {"type": "array", "items": {"type": "string"}},
            "dispatchers": {"type": "array", "items": {"$ref": "#/definitions/types.DispatcherStatus"}}
        }},
        "types.ErrorResponse": {"type": "object", "properties": {
            "error": {"type": "string", "example": "invalid JSON body"},
            "code": {"type": "integer", "example": 400}
        }}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "eventhost API",
	Description:      "HTTP API for the eventhost game server core.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
