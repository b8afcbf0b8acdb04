// Package spec loads OpenAPI documents for the stub server.
package spec

import (
	"fmt"
	"os"

	"github.com/getkin/kin-openapi/openapi3"
)

// LoadFromFile reads and parses an OpenAPI document (YAML or JSON) from
// disk. A document that cannot be parsed is fatal to startup: the
// server must never come up with a partial endpoint table.
func LoadFromFile(path string) (*openapi3.T, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("OpenAPI spec file not found: %s", path)
	}

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI doc: %w", err)
	}

	return doc, nil
}

// LoadFromData parses an OpenAPI document from raw bytes.
func LoadFromData(data []byte) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI doc: %w", err)
	}

	return doc, nil
}
