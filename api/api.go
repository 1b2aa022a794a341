// Package api embeds the OpenAPI contract of the JSON API.
package api

import _ "embed"

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -generate types,server -package servers -o ../internal/generated/servers/servers.gen.go openapi.yml

// Spec is the raw YAML document.
//
//go:embed openapi.yml
var Spec []byte
