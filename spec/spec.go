// Package spec embeds the OpenAPI document for the trip planner API.
// The HTTP server serves it at /openapi.yaml, and internal/handler/gen is
// generated from it.
package spec

import _ "embed"

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
// Serving it from the binary means the document and the running code are always in sync.
//
//go:embed openapi.yaml
var OpenAPI []byte
