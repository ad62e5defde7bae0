package service

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/uilens/uilens/domain"
)

func sampleResult() *domain.ComparisonResult {
	element := domain.ImplementationElement{ID: "e1", Selector: ".cta", Type: "button"}
	return &domain.ComparisonResult{
		Metadata: domain.ComparisonMetadata{
			GeneratedAt: "2025-01-01T00:00:00Z",
			Version:     "1.0.0",
		},
		Comparisons: []domain.ComparisonRecord{
			{
				Component:  domain.DesignComponent{ID: "d1", Name: "CTA", Type: "COMPONENT"},
				Element:    &element,
				MatchType:  domain.MatchTypeType,
				Confidence: 0.8,
				Checks: []domain.PropertyCheck{
					{
						Outcome:     domain.OutcomeDeviation,
						Category:    "colors",
						Property:    "background",
						DesignValue: "#ff0000",
						ImplValue:   "#0000ff",
						Severity:    domain.SeverityHigh,
						Message:     "background color differs",
					},
				},
			},
		},
		Summary: domain.ComparisonSummary{
			TotalComponents:   1,
			MatchedComponents: 1,
			TotalDeviations:   1,
			HighSeverity:      1,
			Coverage:          map[string]float64{"colors": 0},
		},
	}
}

func TestOutputFormatter_WriteJSON(t *testing.T) {
	formatter := NewOutputFormatter()
	var buf bytes.Buffer

	err := formatter.Write(sampleResult(), domain.OutputFormatJSON, &buf)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var decoded domain.ComparisonResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded.Summary.TotalComponents != 1 {
		t.Errorf("Expected round-tripped summary, got %d components", decoded.Summary.TotalComponents)
	}
}

func TestOutputFormatter_WriteYAML(t *testing.T) {
	formatter := NewOutputFormatter()
	var buf bytes.Buffer

	err := formatter.Write(sampleResult(), domain.OutputFormatYAML, &buf)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var decoded domain.ComparisonResult
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid YAML: %v", err)
	}
	if decoded.Metadata.Version != "1.0.0" {
		t.Errorf("Expected version 1.0.0, got %s", decoded.Metadata.Version)
	}
}

func TestOutputFormatter_WriteText(t *testing.T) {
	formatter := NewOutputFormatter()
	var buf bytes.Buffer

	err := formatter.Write(sampleResult(), domain.OutputFormatText, &buf)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Design Comparison") {
		t.Error("Expected report header in text output")
	}
	if !strings.Contains(output, "HIGH") {
		t.Error("Expected severity indicator in text output")
	}
	if !strings.Contains(output, "CTA") {
		t.Error("Expected component name in text output")
	}
}

func TestOutputFormatter_UnsupportedFormat(t *testing.T) {
	formatter := NewOutputFormatter()
	var buf bytes.Buffer

	err := formatter.Write(sampleResult(), domain.OutputFormat("csv"), &buf)
	if err == nil {
		t.Fatal("Expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "csv") {
		t.Errorf("Expected format name in error, got %q", err.Error())
	}
}

func TestOutputFormatter_WriteTokensText(t *testing.T) {
	formatter := NewOutputFormatter()
	var buf bytes.Buffer

	response := &domain.TokenResponse{
		Tokens: map[domain.TokenCategory][]domain.DesignToken{
			domain.TokenCategoryColors: {
				{
					Category: domain.TokenCategoryColors,
					Value:    "#ff0000",
					Sources: []domain.TokenSource{
						{Source: domain.TokenSourceDesign, ComponentID: "d1"},
						{Source: domain.TokenSourceImplementation, Selector: ".a"},
					},
				},
			},
		},
		GeneratedAt: "2025-01-01T00:00:00Z",
		Version:     "1.0.0",
	}

	err := formatter.WriteTokens(response, domain.OutputFormatText, &buf)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	output := buf.String()
	if !strings.Contains(output, "#ff0000") || !strings.Contains(output, "used 2 times") {
		t.Errorf("Expected token value and usage in output, got:\n%s", output)
	}
}

func TestOutputFormatter_WriteCategoriesText(t *testing.T) {
	formatter := NewOutputFormatter()
	var buf bytes.Buffer

	schema := domain.NewCategorySchema()
	schema.Bucket(domain.LevelAtoms, "buttons").DesignColumn = []domain.CategoryItem{{ID: "d1", Name: "Button"}}
	schema.Excluded = 2

	response := &domain.CategorizeResponse{
		Schema:      schema,
		GeneratedAt: "2025-01-01T00:00:00Z",
		Version:     "1.0.0",
	}

	err := formatter.WriteCategories(response, domain.OutputFormatText, &buf)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	output := buf.String()
	if !strings.Contains(output, "buttons: 1 design, 0 implementation") {
		t.Errorf("Expected bucket line in output, got:\n%s", output)
	}
	if !strings.Contains(output, "Excluded: 2") {
		t.Errorf("Expected excluded tally in output, got:\n%s", output)
	}
}

func TestOutputFormatter_WriteAuditJSON(t *testing.T) {
	formatter := NewOutputFormatter()
	var buf bytes.Buffer

	err := formatter.WriteAudit(sampleResult(), nil, nil, domain.OutputFormatJSON, &buf, 1500*time.Millisecond)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	var report AuditReportJSON
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if report.Comparison == nil {
		t.Error("Expected comparison section in audit report")
	}
	if report.Tokens != nil {
		t.Error("Expected omitted tokens section")
	}
	if report.DurationMs != 1500 {
		t.Errorf("Expected duration 1500ms, got %d", report.DurationMs)
	}
}
