package domain

import (
	"context"
	"io"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// SortCriteria represents the criteria for sorting comparison records
type SortCriteria string

const (
	SortByConfidence SortCriteria = "confidence"
	SortByName       SortCriteria = "name"
	SortBySeverity   SortCriteria = "severity"
)

// Severity ranks how significant a detected deviation is
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// MatchType identifies the dominant signal that paired a design component
// with an implementation element
type MatchType string

const (
	MatchTypeType     MatchType = "type"
	MatchTypeText     MatchType = "text"
	MatchTypePosition MatchType = "position"
	MatchTypeNone     MatchType = "none"
)

// Outcome is the three-way result of a single property check.
// Modeled as a tag on PropertyCheck so a check can never land in two
// result groups at once.
type Outcome string

const (
	OutcomeMatch     Outcome = "match"
	OutcomeDeviation Outcome = "deviation"
	OutcomeUnfetched Outcome = "unfetched"
)

// ColorProperties holds the color values of a design component
type ColorProperties struct {
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
	Text       string `json:"text,omitempty" yaml:"text,omitempty"`
	Border     string `json:"border,omitempty" yaml:"border,omitempty"`
}

// TypographyProperties holds the text styling of a design component
type TypographyProperties struct {
	FontFamily string  `json:"font_family,omitempty" yaml:"font_family,omitempty"`
	FontSize   float64 `json:"font_size,omitempty" yaml:"font_size,omitempty"`
	FontWeight string  `json:"font_weight,omitempty" yaml:"font_weight,omitempty"`
	LineHeight float64 `json:"line_height,omitempty" yaml:"line_height,omitempty"`
	Text       string  `json:"text,omitempty" yaml:"text,omitempty"`
}

// SpacingProperties holds the four-sided padding and margin of a design component
type SpacingProperties struct {
	PaddingTop    float64 `json:"padding_top" yaml:"padding_top"`
	PaddingRight  float64 `json:"padding_right" yaml:"padding_right"`
	PaddingBottom float64 `json:"padding_bottom" yaml:"padding_bottom"`
	PaddingLeft   float64 `json:"padding_left" yaml:"padding_left"`
	MarginTop     float64 `json:"margin_top" yaml:"margin_top"`
	MarginRight   float64 `json:"margin_right" yaml:"margin_right"`
	MarginBottom  float64 `json:"margin_bottom" yaml:"margin_bottom"`
	MarginLeft    float64 `json:"margin_left" yaml:"margin_left"`
}

// LayoutProperties holds geometry and layout mode of a design component
type LayoutProperties struct {
	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
	Width    float64 `json:"width" yaml:"width"`
	Height   float64 `json:"height" yaml:"height"`
	Display  string  `json:"display,omitempty" yaml:"display,omitempty"`
	Position string  `json:"position,omitempty" yaml:"position,omitempty"`
}

// ShadowEffect describes a single shadow on a design component
type ShadowEffect struct {
	Type    string  `json:"type" yaml:"type"`
	OffsetX float64 `json:"offset_x" yaml:"offset_x"`
	OffsetY float64 `json:"offset_y" yaml:"offset_y"`
	Radius  float64 `json:"radius" yaml:"radius"`
	Color   string  `json:"color,omitempty" yaml:"color,omitempty"`
}

// EffectProperties holds visual effects of a design component
type EffectProperties struct {
	BorderRadius string        `json:"border_radius,omitempty" yaml:"border_radius,omitempty"`
	Shadow       *ShadowEffect `json:"shadow,omitempty" yaml:"shadow,omitempty"`
}

// DesignProperties groups the style families of a design component.
// A nil family means the extractor produced no data for it.
type DesignProperties struct {
	Colors     *ColorProperties      `json:"colors,omitempty" yaml:"colors,omitempty"`
	Typography *TypographyProperties `json:"typography,omitempty" yaml:"typography,omitempty"`
	Spacing    *SpacingProperties    `json:"spacing,omitempty" yaml:"spacing,omitempty"`
	Layout     *LayoutProperties     `json:"layout,omitempty" yaml:"layout,omitempty"`
	Effects    *EffectProperties     `json:"effects,omitempty" yaml:"effects,omitempty"`
}

// DesignComponent is a node from the extracted design document.
// Immutable once produced by extraction; the core treats it as read-only.
type DesignComponent struct {
	ID         string           `json:"id" yaml:"id"`
	Name       string           `json:"name" yaml:"name"`
	Type       string           `json:"type" yaml:"type"`
	Depth      int              `json:"depth" yaml:"depth"`
	ParentPath string           `json:"parent_path,omitempty" yaml:"parent_path,omitempty"`
	ChildCount int              `json:"child_count" yaml:"child_count"`
	Properties DesignProperties `json:"properties" yaml:"properties"`
}

// BoundingRect is the rendered geometry of an implementation element
type BoundingRect struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// ImplementationElement is a DOM node from the rendered page with
// computed style properties. Read-only during a comparison run.
type ImplementationElement struct {
	ID             string                       `json:"id" yaml:"id"`
	Selector       string                       `json:"selector" yaml:"selector"`
	TagName        string                       `json:"tag_name" yaml:"tag_name"`
	Type           string                       `json:"type" yaml:"type"`
	Text           string                       `json:"text,omitempty" yaml:"text,omitempty"`
	BoundingRect   BoundingRect                 `json:"bounding_rect" yaml:"bounding_rect"`
	Styles         map[string]string            `json:"styles,omitempty" yaml:"styles,omitempty"`
	DetailedStyles map[string]map[string]string `json:"detailed_styles,omitempty" yaml:"detailed_styles,omitempty"`
}

// MatchCandidate is an ephemeral scoring result for one design/implementation
// pairing; discarded once the best match is chosen
type MatchCandidate struct {
	Element    *ImplementationElement
	MatchType  MatchType
	Confidence float64
	Reasons    []string
}

// PropertyCheck is one property comparison outcome. The Outcome tag decides
// which result group (match/deviation/unfetched) the check belongs to.
type PropertyCheck struct {
	Outcome     Outcome  `json:"outcome" yaml:"outcome"`
	Category    string   `json:"category" yaml:"category"`
	Property    string   `json:"property" yaml:"property"`
	DesignValue string   `json:"design_value" yaml:"design_value"`
	ImplValue   string   `json:"impl_value,omitempty" yaml:"impl_value,omitempty"`
	Severity    Severity `json:"severity,omitempty" yaml:"severity,omitempty"`
	Message     string   `json:"message" yaml:"message"`
}

// ComparisonRecord is the per-design-component comparison result.
// Exactly one record exists per design component; immutable once emitted.
type ComparisonRecord struct {
	Component  DesignComponent        `json:"component" yaml:"component"`
	Element    *ImplementationElement `json:"element,omitempty" yaml:"element,omitempty"`
	MatchType  MatchType              `json:"match_type" yaml:"match_type"`
	Confidence float64                `json:"confidence" yaml:"confidence"`
	Reasons    []string               `json:"reasons,omitempty" yaml:"reasons,omitempty"`
	Checks     []PropertyCheck        `json:"checks" yaml:"checks"`
}

// Matched reports whether the record has an accepted implementation element
func (r *ComparisonRecord) Matched() bool {
	return r.MatchType != MatchTypeNone && r.Element != nil
}

// Deviations returns the checks tagged as deviations
func (r *ComparisonRecord) Deviations() []PropertyCheck {
	return r.checksByOutcome(OutcomeDeviation)
}

// Matches returns the checks tagged as matches
func (r *ComparisonRecord) Matches() []PropertyCheck {
	return r.checksByOutcome(OutcomeMatch)
}

// Unfetched returns the checks where the implementation side had no data
func (r *ComparisonRecord) Unfetched() []PropertyCheck {
	return r.checksByOutcome(OutcomeUnfetched)
}

func (r *ComparisonRecord) checksByOutcome(outcome Outcome) []PropertyCheck {
	var out []PropertyCheck
	for _, c := range r.Checks {
		if c.Outcome == outcome {
			out = append(out, c)
		}
	}
	return out
}

// ComparisonSummary aggregates comparison records into statistics
type ComparisonSummary struct {
	TotalComponents     int `json:"total_components" yaml:"total_components"`
	MatchedComponents   int `json:"matched_components" yaml:"matched_components"`
	UnmatchedComponents int `json:"unmatched_components" yaml:"unmatched_components"`

	TotalMatches    int `json:"total_matches" yaml:"total_matches"`
	TotalDeviations int `json:"total_deviations" yaml:"total_deviations"`
	TotalUnfetched  int `json:"total_unfetched" yaml:"total_unfetched"`

	// Severity distribution of deviations
	HighSeverity   int `json:"high_severity" yaml:"high_severity"`
	MediumSeverity int `json:"medium_severity" yaml:"medium_severity"`
	LowSeverity    int `json:"low_severity" yaml:"low_severity"`

	// Coverage is |common values| / |design values| x 100 per property family.
	// 0 when the design set for a family is empty.
	Coverage map[string]float64 `json:"coverage" yaml:"coverage"`
}

// ColorAnalysis summarizes the color palettes on both sides
type ColorAnalysis struct {
	DesignColors            []string `json:"design_colors" yaml:"design_colors"`
	ImplementationColors    []string `json:"implementation_colors" yaml:"implementation_colors"`
	CommonColors            []string `json:"common_colors" yaml:"common_colors"`
	MissingInImplementation []string `json:"missing_in_implementation" yaml:"missing_in_implementation"`
}

// TypographyAnalysis summarizes the font families on both sides
type TypographyAnalysis struct {
	DesignFonts         []string `json:"design_fonts" yaml:"design_fonts"`
	ImplementationFonts []string `json:"implementation_fonts" yaml:"implementation_fonts"`
	CommonFonts         []string `json:"common_fonts" yaml:"common_fonts"`
}

// ComparisonMetadata describes a comparison run
type ComparisonMetadata struct {
	GeneratedAt         string `json:"generated_at" yaml:"generated_at"`
	Version             string `json:"version" yaml:"version"`
	DurationMs          int64  `json:"duration_ms" yaml:"duration_ms"`
	DesignCount         int    `json:"design_count" yaml:"design_count"`
	ImplementationCount int    `json:"implementation_count" yaml:"implementation_count"`
}

// ComparisonResult is the complete output of one comparison run
type ComparisonResult struct {
	Metadata           ComparisonMetadata `json:"metadata" yaml:"metadata"`
	Comparisons        []ComparisonRecord `json:"comparisons" yaml:"comparisons"`
	ColorAnalysis      ColorAnalysis      `json:"color_analysis" yaml:"color_analysis"`
	TypographyAnalysis TypographyAnalysis `json:"typography_analysis" yaml:"typography_analysis"`
	Summary            ComparisonSummary  `json:"summary" yaml:"summary"`

	// Warnings records malformed input items that were skipped
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// CompareRequest represents a request for a design-vs-implementation comparison
type CompareRequest struct {
	// Inputs
	Design         []DesignComponent
	Implementation []ImplementationElement

	// Output configuration
	OutputFormat OutputFormat
	OutputWriter io.Writer
	OutputPath   string
	ShowDetails  bool
	SortBy       SortCriteria
	MinSeverity  Severity

	// Thresholds; zero values fall back to defaults. Passed per call so a
	// single process can run comparisons under different profiles.
	ColorDistanceThreshold float64
	TextSimilarityFloor    float64
	AcceptanceFloor        float64
	SizeTolerance          float64
	SpacingTolerance       float64
	FontSizeTolerance      float64

	// Configuration
	ConfigPath string
}

// CompareService defines the core business logic for comparison
type CompareService interface {
	// Compare matches design components against implementation elements and
	// compares the properties of every matched pair
	Compare(ctx context.Context, req CompareRequest) (*ComparisonResult, error)
}

// OutputFormatter defines the interface for formatting comparison results
type OutputFormatter interface {
	Write(result *ComparisonResult, format OutputFormat, writer io.Writer) error
}

// ConfigurationLoader defines the interface for loading configuration
type ConfigurationLoader interface {
	// LoadConfig loads configuration from the specified path
	LoadConfig(path string) (*CompareRequest, error)

	// LoadDefaultConfig loads the default configuration
	LoadDefaultConfig() *CompareRequest

	// MergeConfig merges CLI flags with configuration file
	MergeConfig(base *CompareRequest, override *CompareRequest) *CompareRequest
}
