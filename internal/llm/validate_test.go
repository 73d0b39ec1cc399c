package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-person",
		Description: "A person record",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{"type": "string"},
				"age":  map[string]any{"type": "integer"},
			},
			"required":             []string{"name"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"name":"Ada","age":36}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_NilSchemaSkips(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema must skip validation, got %v", err)
	}
}

func TestValidateResponse_FailsClosed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing required field", `{"age":36}`},
		{"wrong type", `{"name":123}`},
		{"extra field", `{"name":"Ada","email":"ada@example.com"}`},
		{"truncated json", `{"name":"Ada"`},
		{"not an object", `"just a string"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ErrInvalidResponse, got %v", err)
			}
			if string(invalid.Content) != tt.raw {
				t.Errorf("expected offending content preserved, got %s", invalid.Content)
			}
		})
	}
}
