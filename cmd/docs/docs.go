// Package docs holds the OpenAPI description served by gin-swagger at /swagger.
// It follows the handlers' godoc annotations; regenerate it with
// `go generate ./cmd/qrt_backend`. TestAPIDocMatchesRoutes fails when a route
// and its entry here disagree.
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
		"/documents": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Lists the caller's documents, newest first, with cursor pagination",
				"produces": [
					"application/json"
				],
				"tags": [
					"documents"
				],
				"summary": "List documents",
				"parameters": [
					{
						"type": "integer",
						"description": "Page size (1-100, default 20)",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Cursor returned by the previous page",
						"name": "nextToken",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListDocumentsResponse"
						}
					},
					"400": {
						"description": "Invalid query parameters",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
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
					"500": {
						"description": "Failed to list documents",
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
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Creates an empty document that extracted transaction lines are attached to",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"documents"
				],
				"summary": "Register a document",
				"parameters": [
					{
						"description": "Document details",
						"name": "document",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreateDocumentRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.DocumentResponse"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
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
					"500": {
						"description": "Failed to create document",
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
		"/documents/{document_id}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"documents"
				],
				"summary": "Get a document",
				"parameters": [
					{
						"name": "document_id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Document ID"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.DocumentResponse"
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
					"403": {
						"description": "Not the owner",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Document not found",
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
		"/documents/{document_id}/lines": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Appends transaction lines, as produced by the extraction pipeline, to a document",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"documents"
				],
				"summary": "Append extracted lines",
				"parameters": [
					{
						"name": "document_id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Document ID"
					},
					{
						"description": "Lines to append",
						"name": "lines",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.AddLinesRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.ImportLinesResponse"
						}
					},
					"400": {
						"description": "Invalid input",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Not the owner",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Document not found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"409": {
						"description": "Line ID already stored",
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
		"/documents/{document_id}/lines/import": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Reads transaction lines from an XLSX upload and appends them to a document",
				"consumes": [
					"multipart/form-data"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"documents"
				],
				"summary": "Import a sales register workbook",
				"parameters": [
					{
						"name": "document_id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Document ID"
					},
					{
						"type": "file",
						"description": "XLSX workbook",
						"name": "file",
						"in": "formData",
						"required": true
					},
					{
						"type": "string",
						"description": "Sheet name (defaults to the first sheet)",
						"name": "sheet",
						"in": "formData"
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.ImportLinesResponse"
						}
					},
					"400": {
						"description": "Unreadable workbook or invalid rows",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Not the owner",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Document not found",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"413": {
						"description": "Upload too large",
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
		"/documents/{document_id}/register": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Groups the document's lines into invoices with one column per item description.\nmode=capped clips the columns to the largest invoice's item count; mode=complete keeps all.",
				"produces": [
					"application/json"
				],
				"tags": [
					"register"
				],
				"summary": "Itemized invoice register of a document",
				"parameters": [
					{
						"name": "document_id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Document ID"
					},
					{
						"name": "mode",
						"in": "query",
						"type": "string",
						"enum": [
							"capped",
							"complete"
						],
						"description": "Column mode"
					},
					{
						"type": "array",
						"items": {
							"type": "string"
						},
						"collectionFormat": "multi",
						"description": "Invoice numbers shown with per-line detail",
						"name": "expanded",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ItemizedRegisterResponse"
						}
					},
					"400": {
						"description": "Invalid parameters or non-numeric amount",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Not the owner",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Document not found",
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
		"/documents/{document_id}/register/export": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Renders the register as an XLSX workbook with a register sheet and a per-line details sheet",
				"produces": [
					"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
				],
				"tags": [
					"register"
				],
				"summary": "Export the itemized register",
				"parameters": [
					{
						"name": "document_id",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Document ID"
					},
					{
						"name": "mode",
						"in": "query",
						"type": "string",
						"enum": [
							"capped",
							"complete"
						],
						"description": "Column mode"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					},
					"400": {
						"description": "Invalid parameters or non-numeric amount",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"403": {
						"description": "Not the owner",
						"schema": {
							"type": "object",
							"additionalProperties": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "Document not found",
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
		"/register/preview": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Builds the itemized register from lines in the request body without storing them",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"register"
				],
				"summary": "Preview a register for inline lines",
				"parameters": [
					{
						"description": "Lines and view options",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.PreviewRegisterRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ItemizedRegisterResponse"
						}
					},
					"400": {
						"description": "Invalid input or non-numeric amount",
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
		"/register/toggle": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Returns the expanded set with invoiceNumber added if absent or removed if present",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"register"
				],
				"summary": "Toggle an invoice's expanded state",
				"parameters": [
					{
						"description": "Current set and invoice to flip",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.ToggleRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ToggleResponse"
						}
					},
					"400": {
						"description": "Invalid input",
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
		"dto.CreateDocumentRequest": {
			"type": "object",
			"required": [
				"kind",
				"name"
			],
			"properties": {
				"kind": {
					"type": "string",
					"enum": [
						"SALES_REGISTER",
						"PURCHASE_REGISTER",
						"GST_RETURN",
						"TDS_RETURN",
						"BANK_STATEMENT"
					]
				},
				"name": {
					"type": "string",
					"maxLength": 200
				},
				"period": {
					"type": "string",
					"maxLength": 20
				}
			}
		},
		"dto.DocumentResponse": {
			"type": "object",
			"properties": {
				"documentID": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"kind": {
					"type": "string"
				},
				"period": {
					"type": "string"
				},
				"lineCount": {
					"type": "integer"
				},
				"createdAt": {
					"type": "string"
				},
				"createdBy": {
					"type": "string"
				},
				"lastUpdatedAt": {
					"type": "string"
				},
				"lastUpdatedBy": {
					"type": "string"
				}
			}
		},
		"dto.ListDocumentsResponse": {
			"type": "object",
			"properties": {
				"documents": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.DocumentResponse"
					}
				},
				"nextToken": {
					"type": "string"
				}
			}
		},
		"dto.TransactionLineRequest": {
			"type": "object",
			"required": [
				"id",
				"netAmount",
				"voucherNumber"
			],
			"properties": {
				"id": {
					"type": "integer"
				},
				"company": {
					"type": "string"
				},
				"particulars": {
					"type": "string"
				},
				"transactionDate": {
					"type": "string",
					"example": "2025-04-03"
				},
				"voucherNumber": {
					"type": "string"
				},
				"voucherType": {
					"type": "string"
				},
				"netAmount": {
					"type": "string",
					"example": "1250.00"
				}
			}
		},
		"dto.AddLinesRequest": {
			"type": "object",
			"required": [
				"lines"
			],
			"properties": {
				"lines": {
					"type": "array",
					"minItems": 1,
					"items": {
						"$ref": "#/definitions/dto.TransactionLineRequest"
					}
				}
			}
		},
		"dto.ImportLinesResponse": {
			"type": "object",
			"properties": {
				"documentID": {
					"type": "string"
				},
				"imported": {
					"type": "integer"
				}
			}
		},
		"dto.PreviewRegisterRequest": {
			"type": "object",
			"required": [
				"documentName"
			],
			"properties": {
				"documentName": {
					"type": "string"
				},
				"lines": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.TransactionLineRequest"
					}
				},
				"mode": {
					"type": "string",
					"enum": [
						"capped",
						"complete"
					]
				},
				"expanded": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"dto.ToggleRequest": {
			"type": "object",
			"required": [
				"invoiceNumber"
			],
			"properties": {
				"expanded": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"invoiceNumber": {
					"type": "string"
				}
			}
		},
		"dto.ToggleResponse": {
			"type": "object",
			"properties": {
				"expanded": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"dto.RegisterCellResponse": {
			"type": "object",
			"properties": {
				"column": {
					"type": "string"
				},
				"empty": {
					"type": "boolean"
				},
				"lineID": {
					"type": "integer"
				},
				"quantityUnit": {
					"type": "string"
				},
				"rate": {
					"type": "string"
				},
				"hsnCode": {
					"type": "string"
				},
				"amount": {
					"type": "number"
				},
				"amountDisplay": {
					"type": "string"
				}
			}
		},
		"dto.LineDetailResponse": {
			"type": "object",
			"properties": {
				"lineID": {
					"type": "integer"
				},
				"description": {
					"type": "string"
				},
				"quantityUnit": {
					"type": "string"
				},
				"rate": {
					"type": "string"
				},
				"hsnCode": {
					"type": "string"
				},
				"amount": {
					"type": "number"
				},
				"amountDisplay": {
					"type": "string"
				}
			}
		},
		"dto.RegisterRowResponse": {
			"type": "object",
			"properties": {
				"date": {
					"type": "string"
				},
				"company": {
					"type": "string"
				},
				"voucherType": {
					"type": "string"
				},
				"invoiceNumber": {
					"type": "string"
				},
				"itemCount": {
					"type": "integer"
				},
				"totalValue": {
					"type": "number"
				},
				"grossTotal": {
					"type": "number"
				},
				"totalValueDisplay": {
					"type": "string"
				},
				"grossTotalDisplay": {
					"type": "string"
				},
				"cells": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.RegisterCellResponse"
					}
				},
				"expanded": {
					"type": "boolean"
				},
				"details": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.LineDetailResponse"
					}
				}
			}
		},
		"dto.RegisterSummaryResponse": {
			"type": "object",
			"properties": {
				"invoiceCount": {
					"type": "integer"
				},
				"lineCount": {
					"type": "integer"
				},
				"grandTotal": {
					"type": "number"
				},
				"grossGrandTotal": {
					"type": "number"
				},
				"grandTotalDisplay": {
					"type": "string"
				},
				"grossGrandTotalDisplay": {
					"type": "string"
				}
			}
		},
		"dto.ItemizedRegisterResponse": {
			"type": "object",
			"properties": {
				"documentName": {
					"type": "string"
				},
				"mode": {
					"type": "string"
				},
				"columns": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"omittedColumns": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.RegisterRowResponse"
					}
				},
				"summary": {
					"$ref": "#/definitions/dto.RegisterSummaryResponse"
				},
				"expanded": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
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
	Title:            "QRT Closure API",
	Description:      "Itemized invoice register over uploaded accounting documents.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
