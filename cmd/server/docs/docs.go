// Package docs registers the OpenAPI document served under /swagger/.
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
		"/api/areas": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"areas"
				],
				"summary": "List areas",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.Area"
							}
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"post": {
				"description": "Create an area. The slug defaults to the canonical form of the name.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"areas"
				],
				"summary": "Create area",
				"parameters": [
					{
						"description": "Area",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateAreaRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.Area"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				}
			}
		},
		"/api/areas/seed": {
			"post": {
				"description": "Ensure the given areas exist, or the default campus areas when none are given. Safe to repeat.",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"areas"
				],
				"summary": "Seed areas",
				"parameters": [
					{
						"description": "Area names",
						"name": "request",
						"in": "body",
						"schema": {
							"$ref": "#/definitions/dto.SeedAreasRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SeedAreasResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/comments/{placeId}": {
			"get": {
				"description": "List the comments on a place, newest first",
				"produces": [
					"application/json"
				],
				"tags": [
					"comments"
				],
				"summary": "List comments",
				"parameters": [
					{
						"type": "string",
						"description": "Place id",
						"name": "placeId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.Comment"
							}
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"Bearer": []
					}
				],
				"description": "Post a comment with an optional image. A bearer token supplies the username, otherwise the comment is anonymous.",
				"consumes": [
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"comments"
				],
				"summary": "Comment on a place",
				"parameters": [
					{
						"type": "string",
						"description": "Place id",
						"name": "placeId",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Comment text",
						"name": "text",
						"in": "formData",
						"required": true
					},
					{
						"type": "file",
						"description": "Image",
						"name": "image",
						"in": "formData"
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.Comment"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/health": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Health check",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/places": {
			"get": {
				"description": "List places newest first, optionally filtered by area id, slug or name",
				"produces": [
					"application/json"
				],
				"tags": [
					"places"
				],
				"summary": "List places",
				"parameters": [
					{
						"type": "string",
						"description": "Area id, slug or name",
						"name": "area",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/dto.Place"
							}
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"post": {
				"description": "Create a place from a multipart form. An unknown area name is created on the fly.",
				"consumes": [
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"places"
				],
				"summary": "Create place",
				"parameters": [
					{
						"type": "string",
						"description": "Name",
						"name": "name",
						"in": "formData",
						"required": true
					},
					{
						"type": "string",
						"description": "Description",
						"name": "description",
						"in": "formData",
						"required": false
					},
					{
						"type": "string",
						"description": "Area id, slug or name",
						"name": "area",
						"in": "formData",
						"required": false
					},
					{
						"type": "string",
						"description": "Address",
						"name": "address",
						"in": "formData",
						"required": false
					},
					{
						"type": "string",
						"description": "Opening hours",
						"name": "openHours",
						"in": "formData",
						"required": false
					},
					{
						"type": "number",
						"description": "Latitude",
						"name": "lat",
						"in": "formData",
						"required": false
					},
					{
						"type": "number",
						"description": "Longitude",
						"name": "lng",
						"in": "formData",
						"required": false
					},
					{
						"type": "number",
						"description": "Rating",
						"name": "rating",
						"in": "formData",
						"required": false
					},
					{
						"type": "string",
						"description": "Menu as JSON array or plain item",
						"name": "menu",
						"in": "formData",
						"required": false
					},
					{
						"type": "file",
						"description": "Image",
						"name": "image",
						"in": "formData"
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.Place"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		},
		"/api/places/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"places"
				],
				"summary": "Get place",
				"parameters": [
					{
						"type": "string",
						"description": "Place id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Place"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			},
			"put": {
				"description": "Update the submitted fields of a place. An empty area clears it.",
				"consumes": [
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"places"
				],
				"summary": "Update place",
				"parameters": [
					{
						"type": "string",
						"description": "Place id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "Name",
						"name": "name",
						"in": "formData",
						"required": false
					},
					{
						"type": "string",
						"description": "Description",
						"name": "description",
						"in": "formData",
						"required": false
					},
					{
						"type": "string",
						"description": "Area id, slug or name",
						"name": "area",
						"in": "formData",
						"required": false
					},
					{
						"type": "string",
						"description": "Address",
						"name": "address",
						"in": "formData",
						"required": false
					},
					{
						"type": "string",
						"description": "Opening hours",
						"name": "openHours",
						"in": "formData",
						"required": false
					},
					{
						"type": "number",
						"description": "Latitude",
						"name": "lat",
						"in": "formData",
						"required": false
					},
					{
						"type": "number",
						"description": "Longitude",
						"name": "lng",
						"in": "formData",
						"required": false
					},
					{
						"type": "number",
						"description": "Rating",
						"name": "rating",
						"in": "formData",
						"required": false
					},
					{
						"type": "string",
						"description": "Menu as JSON array or plain item",
						"name": "menu",
						"in": "formData",
						"required": false
					},
					{
						"type": "file",
						"description": "Image",
						"name": "image",
						"in": "formData"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Place"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					}
				}
			}
		}
	},
	"definitions": {
		"dto.Area": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"createdAt": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"slug": {
					"type": "string"
				}
			}
		},
		"dto.Comment": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"createdAt": {
					"type": "string"
				},
				"image": {
					"type": "string"
				},
				"place": {
					"type": "string"
				},
				"text": {
					"type": "string"
				},
				"username": {
					"type": "string"
				}
			}
		},
		"dto.CreateAreaRequest": {
			"type": "object",
			"required": [
				"name"
			],
			"properties": {
				"description": {
					"type": "string",
					"maxLength": 1000
				},
				"name": {
					"type": "string",
					"maxLength": 100
				},
				"slug": {
					"type": "string",
					"maxLength": 100
				}
			}
		},
		"dto.Place": {
			"type": "object",
			"properties": {
				"_id": {
					"type": "string"
				},
				"address": {
					"type": "string"
				},
				"area": {
					"$ref": "#/definitions/dto.Area"
				},
				"createdAt": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"image": {
					"type": "string"
				},
				"lat": {
					"type": "number"
				},
				"lng": {
					"type": "number"
				},
				"menu": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"name": {
					"type": "string"
				},
				"openHours": {
					"type": "string"
				},
				"rating": {
					"type": "number"
				}
			}
		},
		"dto.SeedAreasRequest": {
			"type": "object",
			"properties": {
				"areas": {
					"type": "array",
					"maxItems": 100,
					"items": {
						"type": "string"
					}
				}
			}
		},
		"dto.SeedAreasResponse": {
			"type": "object",
			"properties": {
				"all": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.Area"
					}
				},
				"created": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.Area"
					}
				}
			}
		}
	},
	"securityDefinitions": {
		"Bearer": {
			"description": "JWT token. Example: Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:4000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Placehub API",
	Description:      "Campus food and places directory",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
