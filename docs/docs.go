// Package docs 由 swag init 生成，接口变更后重新生成
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["系统"],
                "summary": "健康检查",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["球员"],
                "summary": "注册",
                "parameters": [
                    {"description": "角色与昵称", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/players/sync": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["球员"],
                "summary": "同步档案",
                "parameters": [
                    {"description": "档案", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.syncRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/players/{code}": {
            "get": {
                "tags": ["球员"],
                "summary": "查询档案",
                "parameters": [{"type": "string", "description": "身份码", "name": "code", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/players/{code}/following": {
            "get": {
                "tags": ["关系链"],
                "summary": "查询关注列表",
                "parameters": [{"type": "string", "description": "身份码", "name": "code", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/search": {
            "get": {
                "tags": ["球员"],
                "summary": "搜索身份码",
                "parameters": [{"type": "string", "description": "身份码", "name": "code", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/follow": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["关系链"],
                "summary": "关注球员",
                "parameters": [
                    {"description": "关注信息", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.followRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/matches": {
            "get": {
                "tags": ["比赛"],
                "summary": "比赛列表",
                "parameters": [
                    {"type": "string", "name": "code", "in": "query"},
                    {"type": "string", "name": "category", "in": "query"},
                    {"type": "integer", "default": 20, "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "tags": ["比赛"],
                "summary": "记录比赛",
                "parameters": [
                    {"description": "比赛数据", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.recordMatchRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/posts": {
            "get": {
                "tags": ["动态"],
                "summary": "动态列表",
                "parameters": [
                    {"type": "integer", "default": 20, "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "tags": ["动态"],
                "summary": "发布动态",
                "parameters": [
                    {"description": "动态内容", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createPostRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/posts/{id}/comments": {
            "get": {
                "tags": ["动态"],
                "summary": "评论列表",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "tags": ["动态"],
                "summary": "发表评论",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"description": "评论", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.commentRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/posts/{id}/vote": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["动态"],
                "summary": "投票",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"description": "投票", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.voteRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/posts/{id}/votes": {
            "get": {
                "tags": ["动态"],
                "summary": "投票统计",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/posts/{id}/report": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["动态"],
                "summary": "举报",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"description": "举报人", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.reportRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/ranking": {
            "get": {
                "tags": ["排行"],
                "summary": "排行榜",
                "parameters": [
                    {"type": "string", "name": "category", "in": "query", "required": true},
                    {"type": "string", "default": "global", "name": "scope", "in": "query"},
                    {"type": "string", "name": "viewer", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        }
    },
    "definitions": {
        "handler.registerRequest": {
            "type": "object",
            "required": ["role"],
            "properties": {"role": {"type": "string"}, "username": {"type": "string"}}
        },
        "handler.syncRequest": {
            "type": "object",
            "required": ["code"],
            "properties": {"code": {"type": "string"}, "username": {"type": "string"}, "categories": {"type": "array", "items": {"type": "string"}}}
        },
        "handler.followRequest": {
            "type": "object",
            "required": ["follower", "target"],
            "properties": {"follower": {"type": "string"}, "target": {"type": "string"}}
        },
        "handler.recordMatchRequest": {
            "type": "object",
            "required": ["code", "category"],
            "properties": {
                "code": {"type": "string"},
                "category": {"type": "string"},
                "points": {"type": "number"},
                "goals": {"type": "number"},
                "assists": {"type": "number"},
                "goalkeeper": {"type": "boolean"}
            }
        },
        "handler.createPostRequest": {
            "type": "object",
            "required": ["code"],
            "properties": {"code": {"type": "string"}, "body": {"type": "string"}, "match_id": {"type": "integer"}}
        },
        "handler.commentRequest": {
            "type": "object",
            "required": ["code"],
            "properties": {"code": {"type": "string"}, "text": {"type": "string"}}
        },
        "handler.voteRequest": {
            "type": "object",
            "required": ["code", "value"],
            "properties": {"code": {"type": "string"}, "value": {"type": "boolean"}}
        },
        "handler.reportRequest": {
            "type": "object",
            "required": ["code"],
            "properties": {"code": {"type": "string"}}
        },
        "response.Response": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}, "data": {}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Futsalero API",
	Description:      "Futsal social league backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
