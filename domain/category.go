package domain

import (
	"context"
	"io"
)

// AtomicLevel is one level of the atomic-design taxonomy
type AtomicLevel string

const (
	LevelAtoms     AtomicLevel = "atoms"
	LevelMolecules AtomicLevel = "molecules"
	LevelOrganisms AtomicLevel = "organisms"
	LevelLayout    AtomicLevel = "layout"
)

// AtomicLevels lists all levels in report order
var AtomicLevels = []AtomicLevel{
	LevelAtoms,
	LevelMolecules,
	LevelOrganisms,
	LevelLayout,
}

// CategoryItem is one classified component or element
type CategoryItem struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// CategoryBucket holds the classified items of one subcategory, split by side
type CategoryBucket struct {
	DesignColumn         []CategoryItem `json:"design" yaml:"design"`
	ImplementationColumn []CategoryItem `json:"implementation" yaml:"implementation"`
}

// Count returns the total number of items in the bucket
func (b *CategoryBucket) Count() int {
	return len(b.DesignColumn) + len(b.ImplementationColumn)
}

// CategorySchema is the design-vs-implementation classification result.
// Every input item lands in exactly one bucket or the Excluded tally;
// nothing silently vanishes.
type CategorySchema struct {
	Levels   map[AtomicLevel]map[string]*CategoryBucket `json:"levels" yaml:"levels"`
	Excluded int                                        `json:"excluded" yaml:"excluded"`
}

// NewCategorySchema creates an empty schema with all levels present
func NewCategorySchema() *CategorySchema {
	levels := make(map[AtomicLevel]map[string]*CategoryBucket, len(AtomicLevels))
	for _, level := range AtomicLevels {
		levels[level] = make(map[string]*CategoryBucket)
	}
	return &CategorySchema{Levels: levels}
}

// Bucket returns the bucket for a level/subcategory pair, creating it if needed
func (s *CategorySchema) Bucket(level AtomicLevel, subcategory string) *CategoryBucket {
	buckets, ok := s.Levels[level]
	if !ok {
		buckets = make(map[string]*CategoryBucket)
		s.Levels[level] = buckets
	}
	bucket, ok := buckets[subcategory]
	if !ok {
		bucket = &CategoryBucket{}
		buckets[subcategory] = bucket
	}
	return bucket
}

// TotalBucketed returns the number of items placed in any bucket
func (s *CategorySchema) TotalBucketed() int {
	total := 0
	for _, buckets := range s.Levels {
		for _, bucket := range buckets {
			total += bucket.Count()
		}
	}
	return total
}

// CategorizeRequest represents a request for atomic-design categorization
type CategorizeRequest struct {
	Design         []DesignComponent
	Implementation []ImplementationElement

	OutputFormat OutputFormat
	OutputWriter io.Writer

	ConfigPath string
}

// CategorizeResponse is the complete categorization result
type CategorizeResponse struct {
	Schema *CategorySchema `json:"schema" yaml:"schema"`

	GeneratedAt string   `json:"generated_at" yaml:"generated_at"`
	Version     string   `json:"version" yaml:"version"`
	Warnings    []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// CategorizeService defines the business logic for categorization
type CategorizeService interface {
	// Categorize classifies every component and element into the
	// atoms/molecules/organisms/layout taxonomy
	Categorize(ctx context.Context, req CategorizeRequest) (*CategorizeResponse, error)
}
