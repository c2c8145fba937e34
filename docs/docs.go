// Package docs registers the Swagger document served under /swagger. Keep it in
// step with the godoc annotations on the controllers.
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
                "description": "Featured post, latest posts and the most used categories and tags",
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "Home page",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/controllers.Page"},
                                {"type": "object", "properties": {"props": {"$ref": "#/definitions/models.HomePage"}}}
                            ]
                        }
                    },
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}}
                }
            }
        },
        "/about": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pages"],
                "summary": "About page",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/controllers.Page"},
                                {"type": "object", "properties": {"props": {"$ref": "#/definitions/controllers.AboutProps"}}}
                            ]
                        }
                    }
                }
            }
        },
        "/blog": {
            "get": {
                "description": "Paginated listing, 12 posts per page, newest first",
                "produces": ["application/json"],
                "tags": ["blog"],
                "summary": "List published posts",
                "parameters": [
                    {"type": "string", "description": "Category slug", "name": "category", "in": "query"},
                    {"type": "string", "description": "Tag slug", "name": "tag", "in": "query"},
                    {"type": "string", "description": "Text searched in title, excerpt and content", "name": "search", "in": "query"},
                    {"minimum": 1, "type": "integer", "description": "Page number", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/controllers.Page"},
                                {"type": "object", "properties": {"props": {"$ref": "#/definitions/models.BlogIndex"}}}
                            ]
                        }
                    },
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}}
                }
            }
        },
        "/blog/{slug}": {
            "get": {
                "description": "Counts a view and returns the post with up to 3 related posts",
                "produces": ["application/json"],
                "tags": ["blog"],
                "summary": "Show a published post",
                "parameters": [
                    {"type": "string", "description": "Post slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/controllers.Page"},
                                {"type": "object", "properties": {"props": {"$ref": "#/definitions/models.BlogShow"}}}
                            ]
                        }
                    },
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}}
                }
            }
        },
        "/categories": {
            "get": {
                "description": "Every category with its number of published posts",
                "produces": ["application/json"],
                "tags": ["blog"],
                "summary": "List categories",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/controllers.Page"},
                                {"type": "object", "properties": {"props": {"$ref": "#/definitions/models.CategoriesPage"}}}
                            ]
                        }
                    },
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/controllers.ErrorResponse"}}
                }
            }
        },
        "/health-check": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.AboutProps": {
            "type": "object",
            "properties": {
                "app_name": {"type": "string"},
                "description": {"type": "string"}
            }
        },
        "controllers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Post not found"}
            }
        },
        "controllers.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"},
                "timestamp": {"type": "string", "example": "2024-01-01T12:00:00Z"}
            }
        },
        "controllers.Page": {
            "type": "object",
            "properties": {
                "component": {"type": "string", "example": "blog/index"},
                "props": {}
            }
        },
        "models.AuthorResource": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "models.BlogIndex": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"$ref": "#/definitions/models.CategoryWithCount"}},
                "filters": {"$ref": "#/definitions/models.PostFilters"},
                "posts": {"$ref": "#/definitions/models.Paginated-models_PostSummary"},
                "tags": {"type": "array", "items": {"$ref": "#/definitions/models.TagWithCount"}}
            }
        },
        "models.BlogShow": {
            "type": "object",
            "properties": {
                "post": {"$ref": "#/definitions/models.PostResource"},
                "related_posts": {"type": "array", "items": {"$ref": "#/definitions/models.PostSummary"}}
            }
        },
        "models.CategoriesPage": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"$ref": "#/definitions/models.CategoryWithCount"}}
            }
        },
        "models.CategoryResource": {
            "type": "object",
            "properties": {
                "color": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "slug": {"type": "string"}
            }
        },
        "models.CategoryWithCount": {
            "type": "object",
            "properties": {
                "color": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "published_posts_count": {"type": "integer"},
                "slug": {"type": "string"}
            }
        },
        "models.HomePage": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"$ref": "#/definitions/models.CategoryWithCount"}},
                "featured_post": {"$ref": "#/definitions/models.PostSummary"},
                "latest_posts": {"type": "array", "items": {"$ref": "#/definitions/models.PostSummary"}},
                "tags": {"type": "array", "items": {"$ref": "#/definitions/models.TagWithCount"}}
            }
        },
        "models.PageLink": {
            "type": "object",
            "properties": {
                "active": {"type": "boolean"},
                "page": {"type": "integer"},
                "url": {"type": "string"}
            }
        },
        "models.Paginated-models_PostSummary": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/models.PostSummary"}},
                "links": {"$ref": "#/definitions/models.PaginationLinks"},
                "meta": {"$ref": "#/definitions/models.PaginationMeta"}
            }
        },
        "models.PaginationLinks": {
            "type": "object",
            "properties": {
                "first": {"type": "string"},
                "last": {"type": "string"},
                "next": {"type": "string"},
                "prev": {"type": "string"}
            }
        },
        "models.PaginationMeta": {
            "type": "object",
            "properties": {
                "current_page": {"type": "integer"},
                "from": {"type": "integer"},
                "last_page": {"type": "integer"},
                "pages": {"type": "array", "items": {"$ref": "#/definitions/models.PageLink"}},
                "path": {"type": "string"},
                "per_page": {"type": "integer"},
                "to": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "models.PostFilters": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "search": {"type": "string"},
                "tag": {"type": "string"}
            }
        },
        "models.PostResource": {
            "type": "object",
            "properties": {
                "author": {"$ref": "#/definitions/models.AuthorResource"},
                "category": {"$ref": "#/definitions/models.CategoryResource"},
                "content": {"type": "string"},
                "excerpt": {"type": "string"},
                "featured_image": {"type": "string"},
                "id": {"type": "integer"},
                "published_at": {"type": "string"},
                "reading_time": {"type": "integer"},
                "slug": {"type": "string"},
                "tags": {"type": "array", "items": {"$ref": "#/definitions/models.TagResource"}},
                "title": {"type": "string"},
                "views_count": {"type": "integer"}
            }
        },
        "models.PostSummary": {
            "type": "object",
            "properties": {
                "author": {"$ref": "#/definitions/models.AuthorResource"},
                "category": {"$ref": "#/definitions/models.CategoryResource"},
                "excerpt": {"type": "string"},
                "featured_image": {"type": "string"},
                "id": {"type": "integer"},
                "published_at": {"type": "string"},
                "reading_time": {"type": "integer"},
                "slug": {"type": "string"},
                "tags": {"type": "array", "items": {"$ref": "#/definitions/models.TagResource"}},
                "title": {"type": "string"},
                "views_count": {"type": "integer"}
            }
        },
        "models.TagResource": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "slug": {"type": "string"}
            }
        },
        "models.TagWithCount": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "published_posts_count": {"type": "integer"},
                "slug": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo describes the API; the host can be changed at startup.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Futura Blog API",
	Description:      "Public read side of the Futura blog: home page, post listing and post pages.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
