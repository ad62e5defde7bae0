package analyzer

import (
	"fmt"
	"sort"

	"github.com/uilens/uilens/domain"
)

// MatcherConfig configures the ComponentMatcher
type MatcherConfig struct {
	// AcceptanceFloor is the minimum confidence for a candidate to be
	// considered at all (default: 0.3)
	AcceptanceFloor float64

	// TypeWeight is the contribution of the type-affinity signal (default: 0.4)
	TypeWeight float64

	// TextWeight is the contribution of the text-similarity signal (default: 0.5)
	TextWeight float64

	// PositionWeight is the contribution of the geometry signal (default: 0.3)
	PositionWeight float64

	// PositionTolerance is the px tolerance for width/height proximity (default: 5)
	PositionTolerance float64
}

// DefaultMatcherConfig returns a config with sensible defaults
func DefaultMatcherConfig() *MatcherConfig {
	return &MatcherConfig{
		AcceptanceFloor:   0.3,
		TypeWeight:        0.4,
		TextWeight:        0.5,
		PositionWeight:    0.3,
		PositionTolerance: 5,
	}
}

// ComponentMatcher pairs design components with implementation elements.
//
// The matcher is greedy: every design component independently takes its
// highest-confidence candidate, with no global assignment across components.
// Candidates with equal confidence keep input iteration order (first
// encountered wins). Both are intentional simplifications; report
// reproducibility depends on this ordering.
type ComponentMatcher struct {
	config  *MatcherConfig
	scorers *ScorerConfig
}

// NewComponentMatcher creates a new ComponentMatcher
func NewComponentMatcher(config *MatcherConfig, scorers *ScorerConfig) *ComponentMatcher {
	if config == nil {
		config = DefaultMatcherConfig()
	}
	if scorers == nil {
		scorers = DefaultScorerConfig()
	}
	return &ComponentMatcher{config: config, scorers: scorers}
}

// Match produces exactly one ComparisonRecord per design component.
// Components with no candidate above the acceptance floor yield a record
// with MatchTypeNone and a single high-severity missing-component check.
// Cost is O(D*I); fine for hundreds of items per side, not built for
// tens of thousands.
func (m *ComponentMatcher) Match(design []domain.DesignComponent, impl []domain.ImplementationElement) []domain.ComparisonRecord {
	records := make([]domain.ComparisonRecord, 0, len(design))

	for i := range design {
		component := design[i]
		candidates := m.scoreCandidates(&component, impl)

		if len(candidates) == 0 {
			records = append(records, missingComponentRecord(component))
			continue
		}

		sort.SliceStable(candidates, func(a, b int) bool {
			return candidates[a].Confidence > candidates[b].Confidence
		})
		best := candidates[0]

		records = append(records, domain.ComparisonRecord{
			Component:  component,
			Element:    best.Element,
			MatchType:  best.MatchType,
			Confidence: best.Confidence,
			Reasons:    best.Reasons,
		})
	}

	return records
}

// scoreCandidates scores a component against every element and keeps the
// candidates above the acceptance floor
func (m *ComponentMatcher) scoreCandidates(c *domain.DesignComponent, impl []domain.ImplementationElement) []domain.MatchCandidate {
	var candidates []domain.MatchCandidate
	for i := range impl {
		candidate := m.scoreCandidate(c, &impl[i])
		if candidate.Confidence >= m.config.AcceptanceFloor {
			candidates = append(candidates, candidate)
		}
	}
	return candidates
}

// scoreCandidate sums the applicable scorer contributions, capped at 1.0
func (m *ComponentMatcher) scoreCandidate(c *domain.DesignComponent, e *domain.ImplementationElement) domain.MatchCandidate {
	var reasons []string

	typeScore := TypeAffinity(c.Type, c.Name, e.Type)
	typeContribution := typeScore * m.config.TypeWeight
	if typeScore > 0 {
		reasons = append(reasons, fmt.Sprintf("type affinity %s/%s (%.2f)", c.Type, e.Type, typeScore))
	}

	textContribution := 0.0
	designText := designComponentText(c)
	if designText != "" && e.Text != "" {
		sim := TextSimilarity(designText, e.Text)
		if sim >= m.scorers.TextSimilarityFloor {
			textContribution = sim * m.config.TextWeight
			reasons = append(reasons, fmt.Sprintf("text similarity %.2f", sim))
		}
	}

	positionContribution := 0.0
	if layout := c.Properties.Layout; layout != nil && layout.Width > 0 && e.BoundingRect.Width > 0 {
		dims := 0
		if WithinTolerance(layout.Width, e.BoundingRect.Width, m.config.PositionTolerance) {
			dims++
		}
		if WithinTolerance(layout.Height, e.BoundingRect.Height, m.config.PositionTolerance) {
			dims++
		}
		if dims > 0 {
			positionContribution = float64(dims) / 2 * m.config.PositionWeight
			reasons = append(reasons, fmt.Sprintf("geometry within %.0fpx (%d/2 dimensions)", m.config.PositionTolerance, dims))
		}
	}

	confidence := typeContribution + textContribution + positionContribution
	if confidence > 1.0 {
		confidence = 1.0
	}

	return domain.MatchCandidate{
		Element:    e,
		MatchType:  dominantSignal(typeContribution, textContribution, positionContribution),
		Confidence: confidence,
		Reasons:    reasons,
	}
}

// dominantSignal picks the match type from the largest contribution.
// Ties resolve text, then type, then position.
func dominantSignal(typeC, textC, positionC float64) domain.MatchType {
	if textC == 0 && typeC == 0 && positionC == 0 {
		return domain.MatchTypeNone
	}
	if textC >= typeC && textC >= positionC {
		return domain.MatchTypeText
	}
	if typeC >= positionC {
		return domain.MatchTypeType
	}
	return domain.MatchTypePosition
}

// designComponentText returns the text content used as a match signal
func designComponentText(c *domain.DesignComponent) string {
	if t := c.Properties.Typography; t != nil && t.Text != "" {
		return t.Text
	}
	return ""
}

// missingComponentRecord builds the record for a design component with no
// acceptable candidate
func missingComponentRecord(c domain.DesignComponent) domain.ComparisonRecord {
	return domain.ComparisonRecord{
		Component: c,
		MatchType: domain.MatchTypeNone,
		Checks: []domain.PropertyCheck{
			{
				Outcome:     domain.OutcomeDeviation,
				Category:    "structure",
				Property:    "component",
				DesignValue: c.Name,
				Severity:    domain.SeverityHigh,
				Message:     fmt.Sprintf("component %q (%s) is missing in the implementation", c.Name, c.Type),
			},
		},
	}
}
