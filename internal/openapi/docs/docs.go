// Package docs registers the OpenAPI document with swag so that
// echo-swagger can serve it next to the Swagger UI.
package docs

import (
	"encoding/json"

	"hiring/internal/openapi/servers"

	"github.com/swaggo/swag"
)

// SwaggerInfo holds the document served at /swagger/doc.json.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	BasePath:         "/",
	Title:            "Hiring API",
	Description:      "Job listings with filtered search and an admin-only write side.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  documentJSON(),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

// documentJSON renders the OpenAPI document for the UI. A broken document
// yields an empty object so that the UI reports it instead of the server
// failing to start.
func documentJSON() string {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return "{}"
	}
	raw, err := json.Marshal(swagger)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
