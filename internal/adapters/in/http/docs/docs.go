// Package docs holds the OpenAPI document of the HTTP API and publishes it to the
// swagger UI.
package docs

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openapiYAML []byte

// SwaggerInfo is read by echo-swagger under the default instance name.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Title:            "Logistics API",
	Description:      "Fleet, orders, deliveries, vehicle assignment and load checklists.",
	InfoInstanceName: "swagger",
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

var registerOnce sync.Once

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiYAML)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// Register publishes doc to swag once per process.
func Register(doc *openapi3.T) error {
	raw, err := doc.MarshalJSON()
	if err != nil {
		return err
	}
	registerOnce.Do(func() {
		SwaggerInfo.SwaggerTemplate = string(raw)
		swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
	})
	return nil
}
