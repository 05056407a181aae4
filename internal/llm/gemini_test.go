package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"course_code": map[string]any{"type": "string"},
			"credits":     map[string]any{"type": "integer"},
			"semester":    map[string]any{"type": "string", "enum": []any{"Fall", "Spring", "Summer"}},
			"prerequisites": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"course_code", "credits"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["course_code"].Type != "STRING" {
		t.Fatalf("expected STRING for course_code, got %s", schema.Properties["course_code"].Type)
	}
	if schema.Properties["credits"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for credits, got %s", schema.Properties["credits"].Type)
	}
	if len(schema.Properties["semester"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["semester"].Enum))
	}
	if schema.Properties["prerequisites"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for prerequisites, got %s", schema.Properties["prerequisites"].Type)
	}
	if schema.Properties["prerequisites"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for prerequisites items, got %s", schema.Properties["prerequisites"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
