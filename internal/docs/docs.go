// Package docs registers the OpenAPI description served under /swagger.
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
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login user",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}],
                "responses": {
                    "200": {"description": "User authenticated and token generated", "schema": {"$ref": "#/definitions/handlers.AuthResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "429": {"description": "Too many attempts", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["user"],
                "summary": "Get user profile",
                "responses": {
                    "200": {"description": "User profile", "schema": {"$ref": "#/definitions/handlers.UserResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/bid-lists": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["bid-lists"], "summary": "List bids", "parameters": [{"type": "integer", "name": "page", "in": "query"}, {"type": "integer", "name": "page_size", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["bid-lists"], "summary": "Create a bid", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.BidListRequest"}}], "responses": {"201": {"description": "Created"}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}
        },
        "/bid-lists/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["bid-lists"], "summary": "Get a bid", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["bid-lists"], "summary": "Update a bid", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.BidListRequest"}}], "responses": {"200": {"description": "OK"}, "409": {"description": "Concurrent modification", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["bid-lists"], "summary": "Delete a bid (owner or admin)", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}, "403": {"description": "Access denied", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}
        },
        "/curve-points": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["curve-points"], "summary": "List curve points", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["curve-points"], "summary": "Create a curve point", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CurvePointRequest"}}], "responses": {"201": {"description": "Created"}}}
        },
        "/curve-points/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["curve-points"], "summary": "Get a curve point", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["curve-points"], "summary": "Update a curve point", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.CurvePointRequest"}}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["curve-points"], "summary": "Delete a curve point (owner or admin)", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/ratings": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["ratings"], "summary": "List ratings", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["ratings"], "summary": "Create a rating", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RatingRequest"}}], "responses": {"201": {"description": "Created"}}}
        },
        "/ratings/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["ratings"], "summary": "Get a rating", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["ratings"], "summary": "Update a rating", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RatingRequest"}}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["ratings"], "summary": "Delete a rating", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/rule-names": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["rule-names"], "summary": "List rules", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["rule-names"], "summary": "Create a rule", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RuleNameRequest"}}], "responses": {"201": {"description": "Created"}}}
        },
        "/rule-names/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["rule-names"], "summary": "Get a rule", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["rule-names"], "summary": "Update a rule", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RuleNameRequest"}}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["rule-names"], "summary": "Delete a rule", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/trades": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["trades"], "summary": "List trades", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["trades"], "summary": "Create a trade", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.TradeRequest"}}], "responses": {"201": {"description": "Created"}}}
        },
        "/trades/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["trades"], "summary": "Get a trade", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["trades"], "summary": "Update a trade", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.TradeRequest"}}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["trades"], "summary": "Delete a trade", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/users": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "List users", "responses": {"200": {"description": "OK"}, "403": {"description": "Not an administrator"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Create a user", "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UserRequest"}}], "responses": {"201": {"description": "Created"}, "409": {"description": "Username taken"}}}
        },
        "/users/{id}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Get a user", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Update a user", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.UserRequest"}}], "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Delete a user", "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/audit-logs": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["audit"], "summary": "Recent audit entries", "parameters": [{"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "handlers.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "array", "items": {"type": "object", "properties": {"field": {"type": "string"}, "message": {"type": "string"}}}}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/handlers.ErrorDetail"},
                "record": {"type": "object"}
            }
        },
        "handlers.MessageResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "handlers.UserResponse": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "version": {"type": "integer"}, "username": {"type": "string"}, "fullname": {"type": "string"}, "role": {"type": "string"}}
        },
        "handlers.AuthResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "expires_at": {"type": "string"}, "user": {"$ref": "#/definitions/handlers.UserResponse"}}
        },
        "handlers.UserRequest": {
            "type": "object",
            "required": ["username", "password", "fullname", "role"],
            "properties": {"version": {"type": "integer"}, "username": {"type": "string"}, "password": {"type": "string"}, "fullname": {"type": "string"}, "role": {"type": "string"}}
        },
        "handlers.BidListRequest": {
            "type": "object",
            "required": ["account", "type", "bid_quantity"],
            "properties": {"version": {"type": "integer"}, "account": {"type": "string", "maxLength": 30}, "type": {"type": "string", "maxLength": 30}, "bid_quantity": {"type": "number", "minimum": 0}, "ask_quantity": {"type": "number"}, "bid": {"type": "number"}, "ask": {"type": "number"}, "benchmark": {"type": "string"}, "commentary": {"type": "string"}, "status": {"type": "string", "maxLength": 10}}
        },
        "handlers.CurvePointRequest": {
            "type": "object",
            "required": ["curve_id", "term", "value"],
            "properties": {"version": {"type": "integer"}, "curve_id": {"type": "integer", "minimum": 1}, "as_of_date": {"type": "string"}, "term": {"type": "string"}, "value": {"type": "string"}}
        },
        "handlers.RatingRequest": {
            "type": "object",
            "properties": {"version": {"type": "integer"}, "moodys_rating": {"type": "string"}, "sand_p_rating": {"type": "string"}, "fitch_rating": {"type": "string"}, "order_number": {"type": "integer"}}
        },
        "handlers.RuleNameRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"version": {"type": "integer"}, "name": {"type": "string"}, "description": {"type": "string"}, "json": {"type": "string"}, "template": {"type": "string", "maxLength": 512}, "sql_str": {"type": "string"}, "sql_part": {"type": "string"}}
        },
        "handlers.TradeRequest": {
            "type": "object",
            "required": ["account", "type"],
            "properties": {"version": {"type": "integer"}, "account": {"type": "string", "maxLength": 30}, "type": {"type": "string", "maxLength": 30}, "buy_quantity": {"type": "number"}, "sell_quantity": {"type": "number"}, "buy_price": {"type": "number"}, "sell_price": {"type": "number"}, "trade_date": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Poseidon API",
	Description:      "Poseidon manages trading reference data: bids, curve points, ratings, rules, trades and users.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
