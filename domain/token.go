package domain

import (
	"context"
	"io"
)

// TokenCategory identifies a family of design tokens
type TokenCategory string

const (
	TokenCategoryColors       TokenCategory = "colors"
	TokenCategoryTypography   TokenCategory = "typography"
	TokenCategorySpacing      TokenCategory = "spacing"
	TokenCategoryShadows      TokenCategory = "shadows"
	TokenCategoryBorderRadius TokenCategory = "borderRadius"
)

// TokenCategories lists all categories in report order
var TokenCategories = []TokenCategory{
	TokenCategoryColors,
	TokenCategoryTypography,
	TokenCategorySpacing,
	TokenCategoryShadows,
	TokenCategoryBorderRadius,
}

// TokenSourceKind identifies which side a token occurrence came from
type TokenSourceKind string

const (
	TokenSourceDesign         TokenSourceKind = "design"
	TokenSourceImplementation TokenSourceKind = "implementation"
)

// TokenSource records one occurrence of a token value
type TokenSource struct {
	Source TokenSourceKind `json:"source" yaml:"source"`

	// ComponentID for design occurrences, Selector for implementation ones
	ComponentID string `json:"component_id,omitempty" yaml:"component_id,omitempty"`
	Selector    string `json:"selector,omitempty" yaml:"selector,omitempty"`

	// Context is the sub-property the value was read from (e.g. "background")
	Context string `json:"context,omitempty" yaml:"context,omitempty"`
}

// DesignToken is a deduplicated canonical design value with provenance
// across both sides. Value is unique within its category.
type DesignToken struct {
	Category TokenCategory `json:"category" yaml:"category"`
	Value    string        `json:"value" yaml:"value"`
	Sources  []TokenSource `json:"sources" yaml:"sources"`
}

// UsageCount returns how many occurrences were folded into this token
func (t *DesignToken) UsageCount() int {
	return len(t.Sources)
}

// TokenRequest represents a request for design token extraction
type TokenRequest struct {
	Design         []DesignComponent
	Implementation []ImplementationElement

	OutputFormat OutputFormat
	OutputWriter io.Writer

	ConfigPath string
}

// TokenResponse is the complete token extraction result
type TokenResponse struct {
	// Tokens per category, sorted by descending usage count
	Tokens map[TokenCategory][]DesignToken `json:"tokens" yaml:"tokens"`

	GeneratedAt string   `json:"generated_at" yaml:"generated_at"`
	Version     string   `json:"version" yaml:"version"`
	Warnings    []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// TokenService defines the business logic for token extraction
type TokenService interface {
	// Extract clusters repeated raw style values across both sides into
	// deduplicated tokens with usage provenance
	Extract(ctx context.Context, req TokenRequest) (*TokenResponse, error)
}
