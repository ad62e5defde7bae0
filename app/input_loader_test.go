package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInputLoader_ParseDesign(t *testing.T) {
	loader := NewInputLoader()

	data := []byte(`[
		{"id": "d1", "name": "Login Button", "type": "COMPONENT"},
		{"id": "d2", "name": "Title", "type": "TEXT", "properties": {"typography": {"text": "Welcome"}}}
	]`)

	components, err := loader.ParseDesign(data, "design.json")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(components) != 2 {
		t.Fatalf("Expected 2 components, got %d", len(components))
	}
	if components[0].Name != "Login Button" {
		t.Errorf("Expected Login Button, got %s", components[0].Name)
	}
	if components[1].Properties.Typography == nil || components[1].Properties.Typography.Text != "Welcome" {
		t.Error("Expected typography text to be decoded")
	}
}

func TestInputLoader_ParseImplementation(t *testing.T) {
	loader := NewInputLoader()

	data := []byte(`[
		{"id": "e1", "selector": ".btn", "tag_name": "button", "type": "button", "styles": {"backgroundColor": "#ff0000"}}
	]`)

	elements, err := loader.ParseImplementation(data, "impl.json")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(elements) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(elements))
	}
	if elements[0].Styles["backgroundColor"] != "#ff0000" {
		t.Errorf("Expected styles to be decoded, got %v", elements[0].Styles)
	}
}

func TestInputLoader_RejectsNonArray(t *testing.T) {
	loader := NewInputLoader()

	tests := []struct {
		name string
		data string
	}{
		{"object", `{"components": []}`},
		{"string", `"hello"`},
		{"number", `42`},
		{"empty", ``},
		{"garbage", `{{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loader.ParseDesign([]byte(tt.data), "design.json"); err == nil {
				t.Error("Expected error for non-array design input")
			}
			if _, err := loader.ParseImplementation([]byte(tt.data), "impl.json"); err == nil {
				t.Error("Expected error for non-array implementation input")
			}
		})
	}
}

func TestInputLoader_EmptyArray(t *testing.T) {
	loader := NewInputLoader()

	components, err := loader.ParseDesign([]byte(`[]`), "design.json")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(components) != 0 {
		t.Errorf("Expected 0 components, got %d", len(components))
	}
}

func TestInputLoader_LoadDesignFile(t *testing.T) {
	loader := NewInputLoader()

	path := filepath.Join(t.TempDir(), "design.json")
	content := `[{"id": "d1", "name": "Card", "type": "COMPONENT"}]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}

	components, err := loader.LoadDesignFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(components) != 1 || components[0].ID != "d1" {
		t.Errorf("Expected one component d1, got %+v", components)
	}
}

func TestInputLoader_LoadMissingFile(t *testing.T) {
	loader := NewInputLoader()

	_, err := loader.LoadDesignFile("/nonexistent/design.json")
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !strings.Contains(err.Error(), "design") {
		t.Errorf("Expected file context in error, got %q", err.Error())
	}
}
