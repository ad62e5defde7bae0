package service

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/uilens/uilens/domain"
	"github.com/uilens/uilens/internal/version"
)

// OutputFormatterImpl implements the OutputFormatter interface
type OutputFormatterImpl struct{}

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter() *OutputFormatterImpl {
	return &OutputFormatterImpl{}
}

// WriteJSON writes data as indented JSON to the writer
func WriteJSON(writer io.Writer, data interface{}) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteYAML writes data as YAML to the writer
func WriteYAML(writer io.Writer, data interface{}) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(data)
}

// AuditReportJSON represents the unified audit report for structured output
type AuditReportJSON struct {
	Version     string                     `json:"version" yaml:"version"`
	GeneratedAt string                     `json:"generated_at" yaml:"generated_at"`
	DurationMs  int64                      `json:"duration_ms" yaml:"duration_ms"`
	Comparison  *domain.ComparisonResult   `json:"comparison,omitempty" yaml:"comparison,omitempty"`
	Tokens      *domain.TokenResponse      `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	Categories  *domain.CategorizeResponse `json:"categories,omitempty" yaml:"categories,omitempty"`
}

// Write writes the comparison result in the specified format
func (f *OutputFormatterImpl) Write(result *domain.ComparisonResult, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return WriteJSON(writer, result)
	case domain.OutputFormatYAML:
		return WriteYAML(writer, result)
	case domain.OutputFormatText:
		return f.writeComparisonText(result, writer)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

// WriteTokens writes the token extraction response in the specified format
func (f *OutputFormatterImpl) WriteTokens(response *domain.TokenResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return WriteJSON(writer, response)
	case domain.OutputFormatYAML:
		return WriteYAML(writer, response)
	case domain.OutputFormatText:
		return f.writeTokensText(response, writer)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

// WriteCategories writes the categorization response in the specified format
func (f *OutputFormatterImpl) WriteCategories(response *domain.CategorizeResponse, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatJSON:
		return WriteJSON(writer, response)
	case domain.OutputFormatYAML:
		return WriteYAML(writer, response)
	case domain.OutputFormatText:
		return f.writeCategoriesText(response, writer)
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

// WriteAudit writes the unified audit report in the specified format
func (f *OutputFormatterImpl) WriteAudit(
	comparison *domain.ComparisonResult,
	tokens *domain.TokenResponse,
	categories *domain.CategorizeResponse,
	format domain.OutputFormat,
	writer io.Writer,
	duration time.Duration,
) error {
	switch format {
	case domain.OutputFormatJSON, domain.OutputFormatYAML:
		report := AuditReportJSON{
			Version:     version.Version,
			GeneratedAt: time.Now().Format(time.RFC3339),
			DurationMs:  duration.Milliseconds(),
			Comparison:  comparison,
			Tokens:      tokens,
			Categories:  categories,
		}
		if format == domain.OutputFormatYAML {
			return WriteYAML(writer, report)
		}
		return WriteJSON(writer, report)
	case domain.OutputFormatText:
		if comparison != nil {
			if err := f.writeComparisonText(comparison, writer); err != nil {
				return err
			}
		}
		if tokens != nil {
			if err := f.writeTokensText(tokens, writer); err != nil {
				return err
			}
		}
		if categories != nil {
			if err := f.writeCategoriesText(categories, writer); err != nil {
				return err
			}
		}
		return nil
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

// writeComparisonText writes the comparison result as plain text
func (f *OutputFormatterImpl) writeComparisonText(result *domain.ComparisonResult, writer io.Writer) error {
	fmt.Fprintf(writer, "\n=== Design Comparison ===\n\n")
	fmt.Fprintf(writer, "Generated: %s\n", result.Metadata.GeneratedAt)
	fmt.Fprintf(writer, "Version: %s\n\n", result.Metadata.Version)

	// Summary
	summary := result.Summary
	fmt.Fprintf(writer, "Summary:\n")
	fmt.Fprintf(writer, "  Components: %d (matched %d, unmatched %d)\n",
		summary.TotalComponents, summary.MatchedComponents, summary.UnmatchedComponents)
	fmt.Fprintf(writer, "  Property checks: %d matches, %d deviations, %d unfetched\n",
		summary.TotalMatches, summary.TotalDeviations, summary.TotalUnfetched)
	fmt.Fprintf(writer, "\n")

	// Severity distribution
	fmt.Fprintf(writer, "Deviation Severity:\n")
	fmt.Fprintf(writer, "  High: %d\n", summary.HighSeverity)
	fmt.Fprintf(writer, "  Medium: %d\n", summary.MediumSeverity)
	fmt.Fprintf(writer, "  Low: %d\n", summary.LowSeverity)
	fmt.Fprintf(writer, "\n")

	// Coverage
	if len(summary.Coverage) > 0 {
		fmt.Fprintf(writer, "Coverage:\n")
		families := make([]string, 0, len(summary.Coverage))
		for family := range summary.Coverage {
			families = append(families, family)
		}
		sort.Strings(families)
		for _, family := range families {
			fmt.Fprintf(writer, "  %s: %.1f%%\n", family, summary.Coverage[family])
		}
		fmt.Fprintf(writer, "\n")
	}

	// Per-component records
	for _, record := range result.Comparisons {
		f.writeRecordText(&record, writer)
	}

	// Palette analyses
	if len(result.ColorAnalysis.MissingInImplementation) > 0 {
		fmt.Fprintf(writer, "Colors missing in implementation:\n")
		for _, color := range result.ColorAnalysis.MissingInImplementation {
			fmt.Fprintf(writer, "  - %s\n", color)
		}
		fmt.Fprintf(writer, "\n")
	}

	// Warnings
	if len(result.Warnings) > 0 {
		fmt.Fprintf(writer, "Warnings:\n")
		for _, w := range result.Warnings {
			fmt.Fprintf(writer, "  - %s\n", w)
		}
	}

	return nil
}

// writeRecordText writes one comparison record as plain text
func (f *OutputFormatterImpl) writeRecordText(record *domain.ComparisonRecord, writer io.Writer) {
	if record.Matched() {
		fmt.Fprintf(writer, "%s (%s) -> %s [%s, %.2f]\n",
			record.Component.Name, record.Component.Type,
			record.Element.Selector, record.MatchType, record.Confidence)
	} else {
		fmt.Fprintf(writer, "%s (%s) -> no match\n",
			record.Component.Name, record.Component.Type)
	}

	for _, check := range record.Checks {
		switch check.Outcome {
		case domain.OutcomeDeviation:
			fmt.Fprintf(writer, "  [%s] %s/%s: %s\n",
				severityIndicator(check.Severity), check.Category, check.Property, check.Message)
		case domain.OutcomeUnfetched:
			fmt.Fprintf(writer, "  [?] %s/%s: %s\n",
				check.Category, check.Property, check.Message)
		}
	}
	fmt.Fprintf(writer, "\n")
}

// writeTokensText writes the token extraction response as plain text
func (f *OutputFormatterImpl) writeTokensText(response *domain.TokenResponse, writer io.Writer) error {
	fmt.Fprintf(writer, "\n=== Design Tokens ===\n\n")
	fmt.Fprintf(writer, "Generated: %s\n", response.GeneratedAt)
	fmt.Fprintf(writer, "Version: %s\n\n", response.Version)

	for _, category := range domain.TokenCategories {
		tokens := response.Tokens[category]
		if len(tokens) == 0 {
			continue
		}
		fmt.Fprintf(writer, "%s (%d):\n", category, len(tokens))
		for _, token := range tokens {
			fmt.Fprintf(writer, "  %s (used %d times)\n", token.Value, token.UsageCount())
		}
		fmt.Fprintf(writer, "\n")
	}

	if len(response.Warnings) > 0 {
		fmt.Fprintf(writer, "Warnings:\n")
		for _, w := range response.Warnings {
			fmt.Fprintf(writer, "  - %s\n", w)
		}
	}

	return nil
}

// writeCategoriesText writes the categorization response as plain text
func (f *OutputFormatterImpl) writeCategoriesText(response *domain.CategorizeResponse, writer io.Writer) error {
	fmt.Fprintf(writer, "\n=== Atomic Design Categories ===\n\n")
	fmt.Fprintf(writer, "Generated: %s\n", response.GeneratedAt)
	fmt.Fprintf(writer, "Version: %s\n\n", response.Version)

	for _, level := range domain.AtomicLevels {
		buckets := response.Schema.Levels[level]
		if len(buckets) == 0 {
			continue
		}
		fmt.Fprintf(writer, "%s:\n", level)

		subcategories := make([]string, 0, len(buckets))
		for subcategory := range buckets {
			subcategories = append(subcategories, subcategory)
		}
		sort.Strings(subcategories)

		for _, subcategory := range subcategories {
			bucket := buckets[subcategory]
			fmt.Fprintf(writer, "  %s: %d design, %d implementation\n",
				subcategory, len(bucket.DesignColumn), len(bucket.ImplementationColumn))
		}
		fmt.Fprintf(writer, "\n")
	}

	fmt.Fprintf(writer, "Bucketed: %d, Excluded: %d\n",
		response.Schema.TotalBucketed(), response.Schema.Excluded)

	if len(response.Warnings) > 0 {
		fmt.Fprintf(writer, "\nWarnings:\n")
		for _, w := range response.Warnings {
			fmt.Fprintf(writer, "  - %s\n", w)
		}
	}

	return nil
}

func severityIndicator(severity domain.Severity) string {
	switch severity {
	case domain.SeverityHigh:
		return "HIGH"
	case domain.SeverityMedium:
		return "MEDIUM"
	case domain.SeverityLow:
		return "LOW"
	default:
		return "-"
	}
}
