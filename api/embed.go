// Package api holds the OpenAPI document of the HTTP interface.
package api

import (
	_ "embed"
)

// OpenAPI is the raw openapi.yaml document.
//
//go:embed openapi.yaml
var OpenAPI []byte
