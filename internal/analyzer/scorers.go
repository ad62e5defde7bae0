package analyzer

import (
	"math"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/uilens/uilens/domain"
)

// ScorerConfig configures the similarity scorers
type ScorerConfig struct {
	// ColorDistanceThreshold is the maximum RGB distance counted as a match (default: 10)
	ColorDistanceThreshold float64

	// ColorMediumDistance is the distance above which a color deviation is medium (default: 20)
	ColorMediumDistance float64

	// ColorHighDistance is the distance above which a color deviation is high (default: 50)
	ColorHighDistance float64

	// TextSimilarityFloor is the minimum similarity usable as a match signal (default: 0.8)
	TextSimilarityFloor float64

	// SizeTolerance is the absolute tolerance for width/height/radius in px (default: 5)
	SizeTolerance float64

	// SpacingTolerance is the absolute tolerance for padding/margin in px (default: 3)
	SpacingTolerance float64

	// FontSizeTolerance is the absolute tolerance for font sizes in px (default: 2)
	FontSizeTolerance float64
}

// DefaultScorerConfig returns a config with sensible defaults
func DefaultScorerConfig() *ScorerConfig {
	return &ScorerConfig{
		ColorDistanceThreshold: 10,
		ColorMediumDistance:    20,
		ColorHighDistance:      50,
		TextSimilarityFloor:    0.8,
		SizeTolerance:          5,
		SpacingTolerance:       3,
		FontSizeTolerance:      2,
	}
}

// ColorDistance computes the Euclidean distance between two colors in
// 0-255 RGB space. The range is 0 to ~441 (black vs white).
func ColorDistance(a, b colorful.Color) float64 {
	dr := (a.R - b.R) * 255
	dg := (a.G - b.G) * 255
	db := (a.B - b.B) * 255
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// ColorDistanceValues parses two raw color values and computes their RGB
// distance. Returns false when either side is not a parseable color.
func ColorDistanceValues(rawA, rawB string) (float64, bool) {
	a, okA := ParseColor(rawA)
	b, okB := ParseColor(rawB)
	if !okA || !okB {
		return 0, false
	}
	return ColorDistance(a, b), true
}

// ColorSeverity maps an RGB distance onto a deviation severity
func (c *ScorerConfig) ColorSeverity(distance float64) domain.Severity {
	switch {
	case distance > c.ColorHighDistance:
		return domain.SeverityHigh
	case distance > c.ColorMediumDistance:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

// TextSimilarity computes a normalized similarity in [0,1] between two
// text values: exact match after normalization scores 1.0, otherwise
// (maxLen - editDistance) / maxLen. Symmetric in its arguments.
func TextSimilarity(a, b string) float64 {
	na := NormalizeText(a)
	nb := NormalizeText(b)
	if na == nb {
		return 1.0
	}
	maxLen := len([]rune(na))
	if l := len([]rune(nb)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(na, nb)
	sim := float64(maxLen-dist) / float64(maxLen)
	if sim < 0 {
		return 0
	}
	return sim
}

// typeAffinity scores (design type, implementation type) pairs.
// Unknown pairs score 0.
var typeAffinity = map[string]map[string]float64{
	"TEXT": {
		"text":      1.0,
		"heading":   0.9,
		"paragraph": 0.9,
		"link":      0.6,
		"label":     0.8,
		"button":    0.3,
	},
	"FRAME": {
		"container":  0.9,
		"section":    0.8,
		"div":        0.7,
		"navigation": 0.6,
		"header":     0.6,
		"footer":     0.6,
		"form":       0.5,
		"list":       0.5,
	},
	"GROUP": {
		"container": 0.7,
		"div":       0.6,
		"section":   0.5,
		"list":      0.4,
	},
	"COMPONENT": {
		"button":     0.8,
		"input":      0.7,
		"container":  0.6,
		"navigation": 0.5,
		"link":       0.5,
	},
	"INSTANCE": {
		"button":     0.8,
		"input":      0.7,
		"container":  0.6,
		"navigation": 0.5,
		"link":       0.5,
	},
	"RECTANGLE": {
		"image":     0.6,
		"button":    0.5,
		"container": 0.5,
		"div":       0.5,
	},
	"ELLIPSE": {
		"image": 0.5,
		"icon":  0.5,
	},
	"VECTOR": {
		"icon":  0.9,
		"image": 0.5,
	},
	"LINE": {
		"divider": 0.8,
	},
}

// nameAffinity boosts pairs where the design name announces the element role
var nameAffinity = map[string]string{
	"button":  "button",
	"btn":     "button",
	"input":   "input",
	"field":   "input",
	"icon":    "icon",
	"image":   "image",
	"img":     "image",
	"nav":     "navigation",
	"link":    "link",
	"heading": "heading",
	"title":   "heading",
}

// TypeAffinity computes a base score in [0,1] for a design node type and
// name against an implementation element type
func TypeAffinity(designType, designName, implType string) float64 {
	dt := strings.ToUpper(strings.TrimSpace(designType))
	it := strings.ToLower(strings.TrimSpace(implType))

	score := 0.0
	if row, ok := typeAffinity[dt]; ok {
		score = row[it]
	}

	name := strings.ToLower(designName)
	for keyword, role := range nameAffinity {
		if strings.Contains(name, keyword) && it == role {
			if score < 0.9 {
				score = 0.9
			}
			break
		}
	}

	return score
}

// WithinTolerance reports whether two numeric values differ by at most tol
func WithinTolerance(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// NumericSeverity maps an absolute numeric difference onto a deviation
// severity relative to the family tolerance
func NumericSeverity(diff, tol float64) domain.Severity {
	diff = math.Abs(diff)
	switch {
	case diff > tol*4:
		return domain.SeverityHigh
	case diff > tol*2:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}
