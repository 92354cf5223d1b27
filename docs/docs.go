// Package docs registers the swagger spec served at /swagger/index.html.
// Regenerate with `swag init` after changing handler annotations.
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
        "/api/categories": {
            "get": {"tags": ["分类"], "summary": "获取分类列表", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Category"}}}}},
            "post": {"tags": ["分类"], "summary": "创建分类", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/api.CategoryCreateRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Category"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}}
        },
        "/api/categories/with-items": {
            "get": {"tags": ["分类"], "summary": "获取分类及菜品", "produces": ["application/json"],
                "parameters": [{"type": "boolean", "name": "availableOnly", "in": "query"}, {"type": "string", "name": "mealType", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.CategoryWithItems"}}}}}
        },
        "/api/categories/{id}": {
            "get": {"tags": ["分类"], "summary": "获取分类",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Category"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}},
            "put": {"tags": ["分类"], "summary": "更新分类",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/api.CategoryUpdateRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Category"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}},
            "delete": {"tags": ["分类"], "summary": "删除分类",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}}
        },
        "/api/categories/{id}/items": {
            "get": {"tags": ["分类"], "summary": "获取分类下的菜品",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.MenuItem"}}}}}
        },
        "/api/menu-items": {
            "get": {"tags": ["菜品"], "summary": "获取菜品列表",
                "parameters": [{"type": "string", "name": "mealType", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.MenuItem"}}}}},
            "post": {"tags": ["菜品"], "summary": "创建菜品",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/api.MenuItemCreateRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.MenuItem"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}}
        },
        "/api/menu-items/with-category": {
            "get": {"tags": ["菜品"], "summary": "获取菜品及分类",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.MenuItemWithCategory"}}}}}
        },
        "/api/menu-items/export": {
            "get": {"tags": ["导出"], "summary": "导出菜单",
                "parameters": [{"type": "string", "name": "format", "in": "query"}],
                "responses": {"200": {"description": "导出文件", "schema": {"type": "file"}}}}
        },
        "/api/menu-items/{id}": {
            "get": {"tags": ["菜品"], "summary": "获取菜品",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MenuItem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}},
            "put": {"tags": ["菜品"], "summary": "更新菜品",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/api.MenuItemUpdateRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MenuItem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}},
            "delete": {"tags": ["菜品"], "summary": "删除菜品",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}}
        },
        "/api/menu-items/{id}/toggle": {
            "put": {"tags": ["菜品"], "summary": "切换菜品在售状态",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MenuItem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}}
        },
        "/api/analytics": {
            "get": {"tags": ["统计"], "summary": "获取菜单统计",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AnalyticsSummary"}}}}
        },
        "/api/admin/login": {
            "post": {"tags": ["后台"], "summary": "后台登录",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/api.AdminLoginRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/api.AdminLoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}}}
        }
    },
    "definitions": {
        "models.Category": {"type": "object", "properties": {
            "id": {"type": "integer"}, "name": {"type": "string"}, "displayName": {"type": "string"},
            "icon": {"type": "string"}, "color": {"type": "string"}, "order": {"type": "integer"},
            "mealType": {"type": "string", "enum": ["lunch", "dinner"]}}},
        "models.MenuItem": {"type": "object", "properties": {
            "id": {"type": "integer"}, "name": {"type": "string"}, "description": {"type": "string"},
            "price": {"type": "integer"}, "categoryId": {"type": "integer"}, "isAvailable": {"type": "boolean"},
            "imageUrl": {"type": "string"}, "order": {"type": "integer"}, "isSpecial": {"type": "boolean"},
            "mealType": {"type": "string", "enum": ["lunch", "dinner"]}, "createdAt": {"type": "string"}}},
        "models.CategoryWithItems": {"allOf": [{"$ref": "#/definitions/models.Category"},
            {"type": "object", "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/models.MenuItem"}}}}]},
        "models.MenuItemWithCategory": {"allOf": [{"$ref": "#/definitions/models.MenuItem"},
            {"type": "object", "properties": {"category": {"$ref": "#/definitions/models.Category"}}}]},
        "models.AnalyticsSummary": {"type": "object", "properties": {
            "totalCategories": {"type": "integer"}, "totalItems": {"type": "integer"},
            "availableItems": {"type": "integer"}, "viewsToday": {"type": "integer"}}},
        "api.CategoryCreateRequest": {"type": "object", "required": ["name", "displayName", "icon", "color"], "properties": {
            "name": {"type": "string"}, "displayName": {"type": "string"}, "icon": {"type": "string"},
            "color": {"type": "string"}, "order": {"type": "integer"}, "mealType": {"type": "string"}}},
        "api.CategoryUpdateRequest": {"type": "object", "properties": {
            "name": {"type": "string"}, "displayName": {"type": "string"}, "icon": {"type": "string"},
            "color": {"type": "string"}, "order": {"type": "integer"}, "mealType": {"type": "string"}}},
        "api.MenuItemCreateRequest": {"type": "object", "required": ["name", "categoryId"], "properties": {
            "name": {"type": "string"}, "description": {"type": "string"}, "price": {"type": "integer"},
            "categoryId": {"type": "integer"}, "isAvailable": {"type": "boolean"}, "imageUrl": {"type": "string"},
            "order": {"type": "integer"}, "isSpecial": {"type": "boolean"}, "mealType": {"type": "string"}}},
        "api.MenuItemUpdateRequest": {"type": "object", "properties": {
            "name": {"type": "string"}, "description": {"type": "string"}, "price": {"type": "integer"},
            "categoryId": {"type": "integer"}, "isAvailable": {"type": "boolean"}, "imageUrl": {"type": "string"},
            "order": {"type": "integer"}, "isSpecial": {"type": "boolean"}, "mealType": {"type": "string"}}},
        "api.AdminLoginRequest": {"type": "object", "required": ["password"], "properties": {"password": {"type": "string"}}},
        "api.AdminLoginResponse": {"type": "object", "properties": {"token": {"type": "string"}, "expiresAt": {"type": "string"}}},
        "api.FieldError": {"type": "object", "properties": {"field": {"type": "string"}, "message": {"type": "string"}}},
        "api.ErrorResponse": {"type": "object", "properties": {
            "message": {"type": "string"}, "errors": {"type": "array", "items": {"$ref": "#/definitions/api.FieldError"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Menuboard API",
	Description:      "餐厅菜单展示与管理 API：分类、菜品、在售状态切换与统计",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
