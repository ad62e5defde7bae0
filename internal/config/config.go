package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Default comparison thresholds
const (
	// DefaultColorDistanceThreshold is the maximum RGB distance still
	// counted as a color match
	DefaultColorDistanceThreshold = 10.0

	// DefaultTextSimilarityFloor is the minimum text similarity usable as
	// a match signal
	DefaultTextSimilarityFloor = 0.8

	// DefaultAcceptanceFloor is the minimum confidence for a match
	// candidate to be accepted
	DefaultAcceptanceFloor = 0.3

	// DefaultSizeTolerance is the px tolerance for width/height/radius
	DefaultSizeTolerance = 5.0

	// DefaultSpacingTolerance is the px tolerance for padding/margin
	DefaultSpacingTolerance = 3.0

	// DefaultFontSizeTolerance is the px tolerance for font sizes
	DefaultFontSizeTolerance = 2.0
)

// Default categorizer settings
const (
	// DefaultMoleculeMaxChildren is the child count above which a reusable
	// component classifies as a molecule
	DefaultMoleculeMaxChildren = 2

	// DefaultLayoutMaxDepth is the depth at or below which keyword-less
	// frames route to the layout level
	DefaultLayoutMaxDepth = 2
)

// Config represents the main configuration structure
type Config struct {
	// Comparison holds matching and property comparison thresholds
	Comparison ComparisonConfig `json:"comparison" mapstructure:"comparison" yaml:"comparison"`

	// Tokens holds design token extraction configuration
	Tokens TokensConfig `json:"tokens" mapstructure:"tokens" yaml:"tokens"`

	// Categories holds atomic-design categorization configuration
	Categories CategoriesConfig `json:"categories" mapstructure:"categories" yaml:"categories"`

	// Output holds output formatting configuration
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`

	// Performance holds execution configuration
	Performance PerformanceConfig `json:"performance" mapstructure:"performance" yaml:"performance"`
}

// ComparisonConfig holds thresholds for matching and property comparison
type ComparisonConfig struct {
	// ColorDistanceThreshold is the maximum RGB distance counted as a match
	ColorDistanceThreshold float64 `json:"colorDistanceThreshold" mapstructure:"color_distance_threshold" yaml:"color_distance_threshold"`

	// TextSimilarityFloor is the minimum similarity usable as a match signal
	TextSimilarityFloor float64 `json:"textSimilarityFloor" mapstructure:"text_similarity_floor" yaml:"text_similarity_floor"`

	// AcceptanceFloor is the minimum candidate confidence
	AcceptanceFloor float64 `json:"acceptanceFloor" mapstructure:"acceptance_floor" yaml:"acceptance_floor"`

	// SizeTolerance is the px tolerance for sizes
	SizeTolerance float64 `json:"sizeTolerance" mapstructure:"size_tolerance" yaml:"size_tolerance"`

	// SpacingTolerance is the px tolerance for padding/margin
	SpacingTolerance float64 `json:"spacingTolerance" mapstructure:"spacing_tolerance" yaml:"spacing_tolerance"`

	// FontSizeTolerance is the px tolerance for font sizes
	FontSizeTolerance float64 `json:"fontSizeTolerance" mapstructure:"font_size_tolerance" yaml:"font_size_tolerance"`
}

// TokensConfig holds design token extraction configuration
type TokensConfig struct {
	// Enabled toggles token extraction in audit runs
	Enabled bool `json:"enabled" mapstructure:"enabled" yaml:"enabled"`
}

// CategoriesConfig holds atomic-design categorization configuration
type CategoriesConfig struct {
	// Enabled toggles categorization in audit runs
	Enabled bool `json:"enabled" mapstructure:"enabled" yaml:"enabled"`

	// MoleculeMaxChildren is the atom/molecule child-count boundary
	MoleculeMaxChildren int `json:"moleculeMaxChildren" mapstructure:"molecule_max_children" yaml:"molecule_max_children"`

	// LayoutMaxDepth is the structural-noise depth boundary
	LayoutMaxDepth int `json:"layoutMaxDepth" mapstructure:"layout_max_depth" yaml:"layout_max_depth"`
}

// OutputConfig holds output formatting configuration
type OutputConfig struct {
	// Format is the default output format (text, json, yaml)
	Format string `json:"format" mapstructure:"format" yaml:"format"`

	// SortBy is the default sort criteria for comparison records
	SortBy string `json:"sortBy" mapstructure:"sort_by" yaml:"sort_by"`

	// ShowDetails includes per-check details in text output
	ShowDetails bool `json:"showDetails" mapstructure:"show_details" yaml:"show_details"`

	// MinSeverity filters reported deviations (low, medium, high)
	MinSeverity string `json:"minSeverity" mapstructure:"min_severity" yaml:"min_severity"`
}

// PerformanceConfig holds execution configuration
type PerformanceConfig struct {
	// MaxGoroutines limits concurrent audit tasks
	MaxGoroutines int `json:"maxGoroutines" mapstructure:"max_goroutines" yaml:"max_goroutines"`

	// TimeoutSeconds bounds a whole audit run
	TimeoutSeconds int `json:"timeoutSeconds" mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Comparison: ComparisonConfig{
			ColorDistanceThreshold: DefaultColorDistanceThreshold,
			TextSimilarityFloor:    DefaultTextSimilarityFloor,
			AcceptanceFloor:        DefaultAcceptanceFloor,
			SizeTolerance:          DefaultSizeTolerance,
			SpacingTolerance:       DefaultSpacingTolerance,
			FontSizeTolerance:      DefaultFontSizeTolerance,
		},
		Tokens: TokensConfig{
			Enabled: true,
		},
		Categories: CategoriesConfig{
			Enabled:             true,
			MoleculeMaxChildren: DefaultMoleculeMaxChildren,
			LayoutMaxDepth:      DefaultLayoutMaxDepth,
		},
		Output: OutputConfig{
			Format:      "text",
			SortBy:      "confidence",
			ShowDetails: false,
			MinSeverity: "low",
		},
		Performance: PerformanceConfig{
			MaxGoroutines:  4,
			TimeoutSeconds: 300,
		},
	}
}

// LoadConfig loads configuration from the specified path, falling back to
// defaults for unset keys
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		found := FindConfigFile(".")
		if found != "" {
			v.SetConfigFile(found)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config file %s: %w", found, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FindConfigFile searches dir and its parents for a config file
func FindConfigFile(dir string) string {
	names := []string{
		"uilens.config.json",
		".uilensrc.json",
		"uilens.yaml",
		"uilens.yml",
		".uilens.yaml",
		".uilens.yml",
	}

	current, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		for _, name := range names {
			candidate := filepath.Join(current, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate
			}
		}
		parent := filepath.Dir(current)
		if parent == current {
			return ""
		}
		current = parent
	}
}

// Validate checks the configuration for inconsistent values
func (c *Config) Validate() error {
	if c.Comparison.ColorDistanceThreshold < 0 {
		return fmt.Errorf("color_distance_threshold cannot be negative, got %g", c.Comparison.ColorDistanceThreshold)
	}
	if c.Comparison.TextSimilarityFloor < 0 || c.Comparison.TextSimilarityFloor > 1 {
		return fmt.Errorf("text_similarity_floor must be in [0,1], got %g", c.Comparison.TextSimilarityFloor)
	}
	if c.Comparison.AcceptanceFloor < 0 || c.Comparison.AcceptanceFloor > 1 {
		return fmt.Errorf("acceptance_floor must be in [0,1], got %g", c.Comparison.AcceptanceFloor)
	}
	if c.Comparison.SizeTolerance < 0 || c.Comparison.SpacingTolerance < 0 || c.Comparison.FontSizeTolerance < 0 {
		return fmt.Errorf("tolerances cannot be negative")
	}

	switch strings.ToLower(c.Output.Format) {
	case "", "text", "json", "yaml":
	default:
		return fmt.Errorf("invalid output format: %s (must be one of: text, json, yaml)", c.Output.Format)
	}

	switch strings.ToLower(c.Output.MinSeverity) {
	case "", "low", "medium", "high":
	default:
		return fmt.Errorf("invalid min_severity: %s (must be one of: low, medium, high)", c.Output.MinSeverity)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("comparison.color_distance_threshold", d.Comparison.ColorDistanceThreshold)
	v.SetDefault("comparison.text_similarity_floor", d.Comparison.TextSimilarityFloor)
	v.SetDefault("comparison.acceptance_floor", d.Comparison.AcceptanceFloor)
	v.SetDefault("comparison.size_tolerance", d.Comparison.SizeTolerance)
	v.SetDefault("comparison.spacing_tolerance", d.Comparison.SpacingTolerance)
	v.SetDefault("comparison.font_size_tolerance", d.Comparison.FontSizeTolerance)

	v.SetDefault("tokens.enabled", d.Tokens.Enabled)

	v.SetDefault("categories.enabled", d.Categories.Enabled)
	v.SetDefault("categories.molecule_max_children", d.Categories.MoleculeMaxChildren)
	v.SetDefault("categories.layout_max_depth", d.Categories.LayoutMaxDepth)

	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.sort_by", d.Output.SortBy)
	v.SetDefault("output.show_details", d.Output.ShowDetails)
	v.SetDefault("output.min_severity", d.Output.MinSeverity)

	v.SetDefault("performance.max_goroutines", d.Performance.MaxGoroutines)
	v.SetDefault("performance.timeout_seconds", d.Performance.TimeoutSeconds)
}
