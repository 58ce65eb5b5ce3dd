package lib

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema of a manifest: an array of Records
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{DoNotReference: true}
	schema := r.Reflect([]Record{})
	schema.Title = "Font manifest"
	schema.Description = "Font files with their keys, display names and download URLs"
	return schema
}

// MarshalSchema encodes the manifest schema as indented JSON
func MarshalSchema() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
