package lib

import (
	"encoding/json"
	"testing"
)

func TestMarshalSchema(t *testing.T) {
	data, err := MarshalSchema()
	if err != nil {
		t.Fatalf("MarshalSchema() error = %v", err)
	}

	var schema struct {
		Type  string `json:"type"`
		Items struct {
			Type       string                     `json:"type"`
			Properties map[string]json.RawMessage `json:"properties"`
			Required   []string                   `json:"required"`
		} `json:"items"`
	}
	if err := json.Unmarshal(data, &schema); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}

	if schema.Type != "array" {
		t.Errorf("type = %q, want array", schema.Type)
	}
	if schema.Items.Type != "object" {
		t.Errorf("items.type = %q, want object", schema.Items.Type)
	}
	for _, field := range []string{"key", "name", "url"} {
		if _, ok := schema.Items.Properties[field]; !ok {
			t.Errorf("items.properties missing %q", field)
		}
	}
	if len(schema.Items.Required) != 3 {
		t.Errorf("items.required = %v, want key, name and url", schema.Items.Required)
	}
}
