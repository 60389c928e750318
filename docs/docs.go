// Package docs registra la descripción OpenAPI que sirve /swagger.
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
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/token/": {
            "post": {
                "tags": ["auth"],
                "summary": "Obtiene el par de JWT y fija la cookie access_token",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.TokenPair"}}, "401": {"description": "Credenciales inválidas"}}
            }
        },
        "/register/": {
            "post": {
                "tags": ["auth"],
                "summary": "Registro público; la cuenta entra al grupo Cajero",
                "responses": {"201": {"description": "Usuario registrado"}, "400": {"description": "Errores por campo"}}
            }
        },
        "/salas/": {
            "get": {
                "tags": ["salas"],
                "summary": "Lista las salas",
                "parameters": [
                    {"type": "boolean", "name": "disponible", "in": "query"},
                    {"type": "boolean", "name": "destacada", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/salas/{id}/disponibilidad/": {
            "get": {
                "tags": ["salas"],
                "summary": "Indica si la sala está libre en [inicio, fin)",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "inicio", "in": "query", "required": true},
                    {"type": "string", "name": "fin", "in": "query", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/reservas/": {
            "post": {
                "tags": ["reservas"],
                "summary": "Crea una reserva (público)",
                "responses": {"201": {"description": "Creada"}, "400": {"description": "Errores por campo"}}
            }
        },
        "/reservas/{id}/confirmar/": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["reservas"],
                "summary": "Confirma la reserva",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "{\"status\": \"confirmada\"}"}, "500": {"description": "Falta el estado confirmada"}}
            }
        },
        "/reservas/{id}/cancelar/": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["reservas"],
                "summary": "Cancela la reserva",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "{\"status\": \"cancelada\", \"msg\": \"Cancelada por <usuario>\"}"}}
            }
        },
        "/chatbot/": {
            "post": {
                "tags": ["chatbot"],
                "summary": "Asistente de reservas",
                "responses": {"200": {"description": "{respuesta, intencion, id_sala}"}, "400": {"description": "{\"error\": \"Vacio\"}"}, "429": {"description": "Demasiadas solicitudes"}}
            }
        }
    },
    "definitions": {
        "dto.LoginRequest": {
            "type": "object",
            "properties": {"username": {"type": "string"}, "password": {"type": "string"}}
        },
        "dto.TokenPair": {
            "type": "object",
            "properties": {"access": {"type": "string"}, "refresh": {"type": "string"}}
        }
    }
}`

// SwaggerInfo guarda los metadatos exportados de la API
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "API de reservas de salas",
	Description:      "Salas, reservas, notificaciones y asistente conversacional.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
