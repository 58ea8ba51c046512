// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/server/main.go
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
		"/auth/me": {
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
					"Session"
				],
				"summary": "Current profile",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.User"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				}
			}
		},
		"/auth/logout": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Session"
				],
				"summary": "Sign out",
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				}
			}
		},
		"/navigation": {
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
					"Session"
				],
				"summary": "Sidebar menu",
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Current location fragment, e.g. #pontos",
						"name": "current",
						"in": "query"
					}
				]
			}
		},
		"/dashboard": {
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
					"Dashboard"
				],
				"summary": "Dashboard overview",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.DashboardView"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				}
			}
		},
		"/employees": {
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
					"Employees"
				],
				"summary": "List employees",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.User"
							}
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Case-insensitive filter on name or login",
						"name": "search",
						"in": "query"
					}
				]
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Employees"
				],
				"summary": "Create employee",
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.User"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "New employee",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.CreateEmployeeRequest"
						}
					}
				]
			}
		},
		"/employees/import": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Employees"
				],
				"summary": "Import roster",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.RosterImportResult"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"consumes": [
					"multipart/form-data"
				],
				"parameters": [
					{
						"type": "file",
						"description": "Roster spreadsheet",
						"name": "file",
						"in": "formData",
						"required": true
					}
				]
			}
		},
		"/employees/{id}/status": {
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Employees"
				],
				"summary": "Toggle employee access",
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "Employee ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "New status",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.StatusUpdateRequest"
						}
					}
				]
			}
		},
		"/employees/{id}/badge": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"image/png"
				],
				"tags": [
					"Employees"
				],
				"summary": "Employee QR badge",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Employee ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/time-records": {
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
					"Timesheet"
				],
				"summary": "Clock records",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.TimeRecordResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"description": "Maximum rows (default 100)",
						"name": "limit",
						"in": "query"
					}
				]
			}
		},
		"/time-bank": {
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
					"Timesheet"
				],
				"summary": "Time bank",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/handlers.TimeBankResponse"
						}
					}
				}
			}
		},
		"/requests": {
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
					"Requests"
				],
				"summary": "List requests",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.LeaveRequest"
							}
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				}
			}
		},
		"/requests/{id}/approve": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Requests"
				],
				"summary": "Approve request",
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Request ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/requests/{id}/reject": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Requests"
				],
				"summary": "Reject request",
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Request ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/config": {
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
					"Config"
				],
				"summary": "Company configuration",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.CompanyConfigView"
						}
					}
				}
			},
			"put": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Config"
				],
				"summary": "Update company configuration",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.CompanyConfigView"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Configuration",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.CompanyConfigUpdate"
						}
					}
				]
			}
		},
		"/audit-logs": {
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
					"Audit"
				],
				"summary": "Audit log",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.AuditLog"
							}
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "Case-insensitive filter on action, details or administrator",
						"name": "search",
						"in": "query"
					}
				]
			}
		},
		"/reports": {
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
					"Reports"
				],
				"summary": "Report catalog",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/reports.Entry"
							}
						}
					}
				}
			}
		},
		"/reports/{report}.{format}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/pdf",
					"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
				],
				"tags": [
					"Reports"
				],
				"summary": "Export report",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/services.ErrorResponse"
						}
					}
				},
				"parameters": [
					{
						"enum": [
							"espelho-ponto",
							"banco-horas",
							"justificativas",
							"colaboradores",
							"auditoria"
						],
						"type": "string",
						"description": "Report slug",
						"name": "report",
						"in": "path",
						"required": true
					},
					{
						"enum": [
							"pdf",
							"xlsx"
						],
						"type": "string",
						"description": "File format",
						"name": "format",
						"in": "path",
						"required": true
					}
				]
			}
		}
	},
	"definitions": {
		"services.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				},
				"details": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				}
			}
		},
		"models.User": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string",
					"example": "3f1c2a4e-1d2b-4c3d-9e8f-001122334455"
				},
				"nome": {
					"type": "string",
					"example": "Julia Silva"
				},
				"login": {
					"type": "string",
					"example": "julia@empresa.com"
				},
				"perfil": {
					"type": "string",
					"example": "funcionario"
				},
				"ativo": {
					"type": "boolean"
				},
				"criado_em": {
					"type": "string"
				}
			}
		},
		"models.CreateEmployeeRequest": {
			"type": "object",
			"properties": {
				"nome": {
					"type": "string",
					"maxLength": 120,
					"minLength": 2,
					"example": "Julia Silva"
				},
				"login": {
					"type": "string",
					"example": "julia@empresa.com"
				},
				"senha": {
					"type": "string",
					"minLength": 8,
					"example": "troque-me-123"
				},
				"perfil": {
					"type": "string",
					"enum": [
						"admin",
						"funcionario"
					],
					"example": "funcionario"
				},
				"empresa_id": {
					"type": "string"
				}
			},
			"required": [
				"login",
				"nome",
				"perfil",
				"senha"
			]
		},
		"models.StatusUpdateRequest": {
			"type": "object",
			"properties": {
				"ativo": {
					"type": "boolean"
				}
			},
			"required": [
				"ativo"
			]
		},
		"models.RosterImportLine": {
			"type": "object",
			"properties": {
				"linha": {
					"type": "integer",
					"example": 2
				},
				"login": {
					"type": "string"
				},
				"status": {
					"type": "string",
					"example": "criado"
				},
				"erro": {
					"type": "string"
				},
				"senha_temporaria": {
					"type": "string"
				}
			}
		},
		"models.RosterImportResult": {
			"type": "object",
			"properties": {
				"created": {
					"type": "integer"
				},
				"failed": {
					"type": "integer"
				},
				"lines": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.RosterImportLine"
					}
				}
			}
		},
		"models.DashboardData": {
			"type": "object",
			"properties": {
				"totalFuncionarios": {
					"type": "integer"
				},
				"pontosHoje": {
					"type": "integer"
				},
				"ausentesHoje": {
					"type": "integer"
				},
				"horasExtrasMes": {
					"type": "integer"
				},
				"horasNegativasMes": {
					"type": "integer"
				},
				"solicitacoesPendentes": {
					"type": "integer"
				}
			}
		},
		"models.WeeklyHours": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"horas": {
					"type": "integer"
				}
			}
		},
		"models.StatusCount": {
			"type": "object",
			"properties": {
				"label": {
					"type": "string"
				},
				"count": {
					"type": "integer"
				},
				"subtext": {
					"type": "string"
				}
			}
		},
		"models.DashboardView": {
			"type": "object",
			"properties": {
				"metrics": {
					"$ref": "#/definitions/models.DashboardData"
				},
				"weekly": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.WeeklyHours"
					}
				},
				"status": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.StatusCount"
					}
				},
				"demo": {
					"type": "boolean"
				}
			}
		},
		"models.TimeBankView": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"usuario_id": {
					"type": "string"
				},
				"usuario_nome": {
					"type": "string"
				},
				"data": {
					"type": "string"
				},
				"trabalhadas": {
					"type": "string",
					"example": "+8h 45m"
				},
				"esperadas": {
					"type": "string",
					"example": "+8h 00m"
				},
				"saldo": {
					"type": "string",
					"example": "+0h 45m"
				},
				"balance_positive": {
					"type": "boolean"
				}
			}
		},
		"models.TimeRecordView": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"usuario_nome": {
					"type": "string"
				},
				"tipo": {
					"type": "string"
				},
				"tipo_label": {
					"type": "string"
				},
				"data": {
					"type": "string"
				},
				"hora": {
					"type": "string"
				},
				"ip": {
					"type": "string"
				},
				"has_location": {
					"type": "boolean"
				}
			}
		},
		"handlers.TimeBankResponse": {
			"type": "object",
			"properties": {
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.TimeBankView"
					}
				},
				"demo": {
					"type": "boolean"
				}
			}
		},
		"handlers.TimeRecordResponse": {
			"type": "object",
			"properties": {
				"rows": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.TimeRecordView"
					}
				},
				"demo": {
					"type": "boolean"
				}
			}
		},
		"models.LeaveRequest": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"usuario_id": {
					"type": "string"
				},
				"empresa_id": {
					"type": "string"
				},
				"usuario_nome": {
					"type": "string"
				},
				"motivo": {
					"type": "string"
				},
				"data_inicio": {
					"type": "string"
				},
				"data_fim": {
					"type": "string"
				},
				"justificativa": {
					"type": "string"
				},
				"status": {
					"type": "string"
				},
				"aprovado_por": {
					"type": "string"
				},
				"aprovado_em": {
					"type": "string"
				},
				"criado_em": {
					"type": "string"
				}
			}
		},
		"models.CompanyConfigView": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"empresa_id": {
					"type": "string"
				},
				"carga_horaria_diaria": {
					"type": "string",
					"example": "08:00:00"
				},
				"tolerancia_minutos": {
					"type": "integer",
					"example": 10
				},
				"permite_banco_horas": {
					"type": "boolean"
				},
				"criado_em": {
					"type": "string"
				},
				"carga_horaria_formatada": {
					"type": "string",
					"example": "+8h 00m"
				},
				"persisted": {
					"type": "boolean"
				}
			}
		},
		"models.CompanyConfigUpdate": {
			"type": "object",
			"properties": {
				"carga_horaria_diaria": {
					"type": "string",
					"example": "08:00:00"
				},
				"tolerancia_minutos": {
					"type": "integer",
					"maximum": 120,
					"minimum": 0,
					"example": 10
				},
				"permite_banco_horas": {
					"type": "boolean"
				}
			},
			"required": [
				"carga_horaria_diaria",
				"permite_banco_horas",
				"tolerancia_minutos"
			]
		},
		"models.AuditLog": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"usuario_id": {
					"type": "string"
				},
				"admin_nome": {
					"type": "string"
				},
				"acao": {
					"type": "string"
				},
				"detalhes": {
					"type": "string"
				},
				"ip": {
					"type": "string"
				},
				"criado_em": {
					"type": "string"
				}
			}
		},
		"reports.Entry": {
			"type": "object",
			"properties": {
				"report": {
					"type": "string",
					"example": "banco-horas"
				},
				"title": {
					"type": "string",
					"example": "Banco de Horas"
				},
				"description": {
					"type": "string"
				},
				"formats": {
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
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:		  "1.0",
	Host:			 "localhost:8080",
	BasePath:		 "/api/v1",
	Schemes:		  []string{},
	Title:			"Ponto Pro Admin API",
	Description:	  "Administrative API for the Ponto Pro time-tracking dashboard",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
