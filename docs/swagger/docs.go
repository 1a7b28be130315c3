// Package swagger registers the OpenAPI document served under /swagger.
package swagger

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
        "/products/check": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Check the bucket, the feed object and the products table schema. Nothing is created.",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Check Products Setup",
                "responses": {
                    "200": {"description": "Healthy", "schema": {"$ref": "#/definitions/product.CheckReport"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Problems found", "schema": {"$ref": "#/definitions/product.CheckReport"}}
                }
            }
        },
        "/products/reports": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "List the keys of reconcile reports saved in the bucket.",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "List Product Reports",
                "responses": {
                    "200": {"description": "Report keys", "schema": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/products/reconcile": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Match supplier feed products to stored products and report conflicts. Nothing is written.",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Reconcile Products (report)",
                "parameters": [
                    {"type": "string", "default": "compare", "description": "compare, merge-missing or merge", "name": "mode", "in": "query"},
                    {"type": "boolean", "description": "Plan deletion of stored products missing from the feed", "name": "purge", "in": "query"},
                    {"type": "boolean", "description": "Plan insertion of feed products missing from the database", "name": "insert", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Reconcile report", "schema": {"$ref": "#/definitions/product.Report"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Reconcile, then write merges, inserts and purges to the database. The request itself is the confirmation.",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Reconcile Products (apply)",
                "parameters": [
                    {"type": "string", "default": "compare", "description": "compare, merge-missing or merge", "name": "mode", "in": "query"},
                    {"type": "boolean", "description": "Delete stored products missing from the feed", "name": "purge", "in": "query"},
                    {"type": "boolean", "description": "Insert feed products missing from the database", "name": "insert", "in": "query"},
                    {"type": "boolean", "description": "Plan only", "name": "dry_run", "in": "query"},
                    {"type": "boolean", "description": "Store the report in the bucket", "name": "save", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Applied report", "schema": {"$ref": "#/definitions/product.ApplyResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "field.Conflict": {
            "type": "object",
            "properties": {
                "property": {"type": "string"},
                "source": {"type": "string"},
                "destination": {"type": "string"}
            }
        },
        "product.CheckReport": {
            "type": "object",
            "properties": {
                "bucket": {"type": "string"},
                "bucket_created": {"type": "boolean"},
                "feed_products": {"type": "integer"},
                "problems": {"type": "array", "items": {"type": "string"}}
            }
        },
        "product.Action": {
            "type": "object",
            "properties": {
                "type": {"type": "string", "enum": ["update_db", "insert_db", "delete_db"]},
                "key": {"type": "string"},
                "reason": {"type": "string"}
            }
        },
        "product.Entry": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["matched", "feed_only", "stored_only"]},
                "key": {"type": "string"},
                "name": {"type": "string"},
                "score": {"type": "integer"},
                "conflicts": {"type": "array", "items": {"$ref": "#/definitions/field.Conflict"}}
            }
        },
        "product.PlanSummary": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "matched": {"type": "integer"},
                "source_only": {"type": "integer"},
                "destination_only": {"type": "integer"},
                "conflicting": {"type": "integer"},
                "conflicts": {"type": "integer"},
                "update_actions": {"type": "integer"},
                "insert_actions": {"type": "integer"},
                "delete_actions": {"type": "integer"}
            }
        },
        "product.Plan": {
            "type": "object",
            "properties": {
                "entries": {"type": "array", "items": {"$ref": "#/definitions/product.Entry"}},
                "actions": {"type": "array", "items": {"$ref": "#/definitions/product.Action"}},
                "summary": {"$ref": "#/definitions/product.PlanSummary"}
            }
        },
        "product.Report": {
            "type": "object",
            "properties": {
                "mode": {"type": "string", "enum": ["compare", "merge-missing", "merge"]},
                "feed_object": {"type": "string"},
                "generated_at": {"type": "string", "format": "date-time"},
                "fields": {"type": "array", "items": {"type": "string"}},
                "plan": {"$ref": "#/definitions/product.Plan"}
            }
        },
        "product.ApplyResponse": {
            "type": "object",
            "properties": {
                "report": {"$ref": "#/definitions/product.Report"},
                "executed": {"type": "integer"},
                "report_key": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Record Merger API",
	Description:      "API for reconciling a supplier product feed against the catalog database.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
