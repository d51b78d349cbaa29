// Package docs registers the swagger spec served under /swagger. It follows
// the layout swag init writes, so `swag init -g cmd/api/main.go` can replace it
// once the controller annotations change.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/category/{cat}/{pages}": {
            "get": {
                "description": "Returns one page of the courses in a category (exact, case-sensitive)",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Courses by category",
                "parameters": [
                    {"type": "string", "description": "Category", "name": "cat", "in": "path", "required": true},
                    {"type": "integer", "description": "Page number (1-based)", "name": "pages", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CatalogCoursesDto"}},
                    "404": {"description": "invalid Pages", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/courses": {
            "get": {
                "description": "Retrieves every course, unpaginated",
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "List courses",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CoursesDto"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Creates a course from the base fields",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Create course",
                "parameters": [
                    {"description": "Course data", "name": "course", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Course"}},
                    "400": {"description": "something went wrong", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/courses/{id}": {
            "get": {
                "description": "Retrieves a course with its enrolled students",
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Get course by ID",
                "parameters": [
                    {"type": "integer", "description": "Course ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CourseDto"}},
                    "404": {"description": "invalid ID or not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Overwrites the base fields of a course",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Update course",
                "parameters": [
                    {"type": "integer", "description": "Course ID", "name": "id", "in": "path", "required": true},
                    {"description": "Course data", "name": "course", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Course"}},
                    "400": {"description": "something went wrong", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "invalid ID or not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Deletes a course and its enrollments",
                "tags": ["courses"],
                "summary": "Delete course",
                "parameters": [
                    {"type": "integer", "description": "Course ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "invalid ID or not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/home/course": {
            "post": {
                "description": "Creates a course with the full catalog field set",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Create catalog course",
                "parameters": [
                    {"description": "Course data", "name": "course", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CatalogCourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Course"}},
                    "400": {"description": "something went wrong", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/home/course/{id}": {
            "get": {
                "description": "Returns the public projection of a course",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Get catalog course",
                "parameters": [
                    {"type": "integer", "description": "Course ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PartCourseHomeDto"}},
                    "404": {"description": "invalid ID or not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Validates and overwrites the full catalog field set",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Update catalog course",
                "parameters": [
                    {"type": "integer", "description": "Course ID", "name": "id", "in": "path", "required": true},
                    {"description": "Course data", "name": "course", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CatalogCourseRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Course"}},
                    "400": {"description": "something went wrong", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "invalid ID or not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["catalog"],
                "summary": "Delete catalog course",
                "parameters": [
                    {"type": "integer", "description": "Course ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "invalid ID or not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/home/{pages}": {
            "get": {
                "description": "Returns one page of courses and the categories they belong to",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Catalog home page",
                "parameters": [
                    {"type": "integer", "description": "Page number (1-based)", "name": "pages", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CourseHomeDto"}},
                    "404": {"description": "invalid Pages", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/search/{pages}": {
            "get": {
                "description": "Full-text search on course names. Terms separated by '+' must all match.",
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Search courses",
                "parameters": [
                    {"type": "integer", "description": "Page number (1-based)", "name": "pages", "in": "path", "required": true},
                    {"type": "string", "description": "Search terms, e.g. intro+python", "name": "search", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CatalogCoursesDto"}},
                    "404": {"description": "invalid Pages or not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.CatalogCourseRequest": {
            "type": "object",
            "required": ["category", "course_desc", "instructor_id", "name"],
            "properties": {
                "category": {"type": "string", "maxLength": 100, "example": "Programming"},
                "course_cover_url": {"type": "string", "example": "https://cdn.example.com/covers/python.png"},
                "course_desc": {"type": "string", "example": "Variables, loops and functions"},
                "course_detail": {"type": "string", "maxLength": 10000, "example": "Twelve weekly sessions"},
                "course_material": {"type": "string", "maxLength": 10000, "example": "Slides, notebooks"},
                "curr_student": {"type": "integer", "minimum": 0, "example": 0},
                "guide_url": {"type": "string", "example": "https://cdn.example.com/guides/python.pdf"},
                "instructor_id": {"type": "integer", "example": 3},
                "max_student": {"type": "integer", "minimum": 0, "example": 40},
                "name": {"type": "string", "maxLength": 200, "example": "Intro to Python"}
            }
        },
        "dto.CatalogCoursesDto": {
            "type": "object",
            "properties": {
                "courses": {"type": "array", "items": {"$ref": "#/definitions/dto.PartCourseHomeDto"}},
                "total": {"type": "integer", "example": 1}
            }
        },
        "dto.CourseDto": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "example": "Programming"},
                "course_desc": {"type": "string", "example": "Variables, loops and functions"},
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Intro to Python"},
                "students": {"type": "array", "items": {"$ref": "#/definitions/dto.StudentDto"}}
            }
        },
        "dto.CourseHomeDto": {
            "type": "object",
            "properties": {
                "all_category": {"type": "array", "items": {"type": "string"}, "example": ["Design", "Programming"]},
                "courses": {"type": "array", "items": {"$ref": "#/definitions/dto.PartCourseHomeDto"}}
            }
        },
        "dto.CourseRequest": {
            "type": "object",
            "required": ["category", "course_desc", "instructor_id", "name"],
            "properties": {
                "category": {"type": "string", "maxLength": 100, "example": "Programming"},
                "course_desc": {"type": "string", "example": "Variables, loops and functions"},
                "instructor_id": {"type": "integer", "example": 3},
                "name": {"type": "string", "maxLength": 200, "example": "Intro to Python"}
            }
        },
        "dto.CourseSummaryDto": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "example": "Programming"},
                "course_desc": {"type": "string", "example": "Variables, loops and functions"},
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Intro to Python"}
            }
        },
        "dto.CoursesDto": {
            "type": "object",
            "properties": {
                "courses": {"type": "array", "items": {"$ref": "#/definitions/dto.CourseSummaryDto"}},
                "total": {"type": "integer", "example": 1}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "not found"}
            }
        },
        "dto.PartCourseHomeDto": {
            "type": "object",
            "properties": {
                "course_cover_url": {"type": "string", "example": "https://cdn.example.com/covers/python.png"},
                "course_desc": {"type": "string", "example": "Variables, loops and functions"},
                "id": {"type": "integer", "example": 1},
                "name": {"type": "string", "example": "Intro to Python"}
            }
        },
        "dto.StudentDto": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "jdoe@example.com"},
                "first_name": {"type": "string", "example": "John"},
                "id": {"type": "integer", "example": 7},
                "last_name": {"type": "string", "example": "Doe"},
                "phone_number": {"type": "string", "example": "+15550100"},
                "username": {"type": "string", "example": "jdoe"}
            }
        },
        "models.Course": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "course_cover_url": {"type": "string"},
                "course_desc": {"type": "string"},
                "course_detail": {"type": "string"},
                "course_material": {"type": "string"},
                "created_at": {"type": "string"},
                "curr_student": {"type": "integer"},
                "guide_url": {"type": "string"},
                "id": {"type": "integer"},
                "instructor_id": {"type": "integer"},
                "max_student": {"type": "integer"},
                "name": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "CourseHub API",
	Description:      "Course administration and public course catalog",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
