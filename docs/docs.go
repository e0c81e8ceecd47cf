// Package docs registra la definición OpenAPI servida en /swagger.
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
    "paths": {
        "/health": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["system"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "ok"}}
            }
        },
        "/doctors": {
            "get": {
                "produces": ["application/json"],
                "tags": ["doctors"],
                "summary": "List doctors",
                "parameters": [
                    {"type": "string", "name": "q", "in": "query", "description": "Case-insensitive search on name, email, phone, practice and specialty"},
                    {"type": "string", "name": "practice", "in": "query", "description": "Exact practice name"},
                    {"type": "string", "name": "specialty", "in": "query", "description": "Exact specialty"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Doctor"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["doctors"],
                "summary": "Register a doctor",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateDoctor"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Doctor"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/doctors/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["doctors"],
                "summary": "Doctor dashboard counters",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/DoctorStats"}}}
            }
        },
        "/doctors/stream": {
            "get": {
                "produces": ["text/event-stream"],
                "tags": ["doctors"],
                "summary": "Full doctor collection on every change",
                "responses": {"200": {"description": "Server-sent events"}}
            }
        },
        "/doctors/{doctorID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["doctors"],
                "summary": "Get a doctor",
                "parameters": [{"type": "integer", "name": "doctorID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Doctor"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/practices": {
            "get": {
                "produces": ["application/json"],
                "tags": ["practices"],
                "summary": "List practices",
                "parameters": [
                    {"type": "string", "name": "q", "in": "query", "description": "Case-insensitive search on name, company, email, phone and address"},
                    {"type": "string", "name": "status", "in": "query", "description": "Exact status"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Practice"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["practices"],
                "summary": "Register a practice",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreatePractice"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Practice"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/practices/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["practices"],
                "summary": "Practice dashboard counters",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/PracticeStats"}}}
            }
        },
        "/practices/stream": {
            "get": {
                "produces": ["text/event-stream"],
                "tags": ["practices"],
                "summary": "Full practice collection on every change",
                "responses": {"200": {"description": "Server-sent events"}}
            }
        },
        "/practices/{practiceID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["practices"],
                "summary": "Get a practice",
                "parameters": [{"type": "integer", "name": "practiceID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Practice"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/patients": {
            "get": {
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "List patients",
                "parameters": [
                    {"type": "string", "name": "q", "in": "query", "description": "Case-insensitive search on name, phone, email and cases"},
                    {"type": "string", "name": "status", "in": "query", "description": "Patients with at least one case in this status", "enum": ["completed", "in-progress", "urgent", "new"]}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Patient"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Register a patient",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreatePatient"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Patient"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/patients/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Patient and case counters",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/PatientStats"}}}
            }
        },
        "/patients/stream": {
            "get": {
                "produces": ["text/event-stream"],
                "tags": ["patients"],
                "summary": "Full patient collection on every change",
                "responses": {"200": {"description": "Server-sent events"}}
            }
        },
        "/patients/{patientID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["patients"],
                "summary": "Get a patient",
                "parameters": [{"type": "integer", "name": "patientID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Patient"}},
                    "404": {"description": "Not found"}
                }
            }
        }
    },
    "definitions": {
        "Error": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "field": {"type": "string"}}
        },
        "PatientSummary": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "cases": {"type": "integer"},
                "lastWork": {"type": "string", "format": "date"},
                "type": {"type": "string"}
            }
        },
        "Doctor": {
            "type": "object",
            "properties": {
                "doctorID": {"type": "integer"},
                "name": {"type": "string"},
                "nickName": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "practice": {"type": "string"},
                "specialty": {"type": "string"},
                "joinDate": {"type": "string", "format": "date"},
                "patients": {"type": "array", "items": {"$ref": "#/definitions/PatientSummary"}}
            }
        },
        "CreateDoctor": {
            "type": "object",
            "required": ["fullName", "username", "email", "phone"],
            "properties": {
                "fullName": {"type": "string"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "DoctorStats": {
            "type": "object",
            "properties": {
                "totalDoctors": {"type": "integer"},
                "activeDoctors": {"type": "integer"},
                "totalPatients": {"type": "integer"},
                "recentWork": {"type": "integer"}
            }
        },
        "Practice": {
            "type": "object",
            "properties": {
                "practiceID": {"type": "integer"},
                "name": {"type": "string"},
                "companyName": {"type": "string"},
                "address": {"type": "string"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "taxID": {"type": "string"},
                "openingHours": {"type": "string"},
                "deliveryMethod": {"type": "string"},
                "partnerSince": {"type": "string", "format": "date"},
                "status": {"type": "string"},
                "doctors": {"type": "integer"},
                "recentCases": {"type": "integer"}
            }
        },
        "CreatePractice": {
            "type": "object",
            "required": ["name", "companyName", "address", "phone"],
            "properties": {
                "name": {"type": "string", "maxLength": 1024},
                "companyName": {"type": "string", "maxLength": 1024},
                "address": {"type": "string", "maxLength": 200},
                "phone": {"type": "string", "maxLength": 100},
                "email": {"type": "string", "maxLength": 1024},
                "taxID": {"type": "string", "maxLength": 1024},
                "openingHours": {"type": "string", "maxLength": 100},
                "deliveryMethod": {"type": "string", "maxLength": 200}
            }
        },
        "PracticeStats": {
            "type": "object",
            "properties": {
                "totalPractices": {"type": "integer"},
                "activePractices": {"type": "integer"},
                "totalDoctors": {"type": "integer"},
                "recentWork": {"type": "integer"}
            }
        },
        "Case": {
            "type": "object",
            "properties": {
                "type": {"type": "string"},
                "tooth": {"type": "string"},
                "status": {"type": "string", "enum": ["completed", "in-progress", "urgent", "new"]},
                "date": {"type": "string", "format": "date"}
            }
        },
        "Patient": {
            "type": "object",
            "properties": {
                "patientID": {"type": "integer"},
                "name": {"type": "string"},
                "birthDate": {"type": "string", "format": "date"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "shadeID": {"type": "string", "description": "shade code; numeric values from upstream sources are stored as text"},
                "healthInsuranceNumber": {"type": "string"},
                "cases": {"type": "array", "items": {"$ref": "#/definitions/Case"}}
            }
        },
        "CreatePatient": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"},
                "birthDate": {"type": "string", "format": "date"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "shadeID": {"type": "string", "maxLength": 10},
                "healthInsuranceNumber": {"type": "string", "maxLength": 20}
            }
        },
        "PatientStats": {
            "type": "object",
            "properties": {
                "totalPatients": {"type": "integer"},
                "totalCases": {"type": "integer"},
                "casesByStatus": {"type": "object", "additionalProperties": {"type": "integer"}}
            }
        }
    }
}`

// SwaggerInfo se puede ajustar en runtime (host, basePath).
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Dental Lab API",
	Description:      "Doctors, practices and patients of a dental laboratory, with live collection streams.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
