package analyzer

import (
	"sort"
	"strings"

	"github.com/uilens/uilens/domain"
)

// SummaryBuilder aggregates comparison records into statistics
type SummaryBuilder struct{}

// NewSummaryBuilder creates a new SummaryBuilder
func NewSummaryBuilder() *SummaryBuilder {
	return &SummaryBuilder{}
}

// scoredFamilies are the families that participate in coverage ratios.
// Layout is informational only and excluded.
var scoredFamilies = []string{FamilyColors, FamilyTypography, FamilySpacing, FamilyEffects}

// Build computes totals, the severity histogram, and per-family coverage
// ratios from the comparison records
func (b *SummaryBuilder) Build(records []domain.ComparisonRecord) domain.ComparisonSummary {
	summary := domain.ComparisonSummary{
		TotalComponents: len(records),
		Coverage:        make(map[string]float64, len(scoredFamilies)),
	}

	designValues := make(map[string]map[string]bool, len(scoredFamilies))
	commonValues := make(map[string]map[string]bool, len(scoredFamilies))
	for _, family := range scoredFamilies {
		designValues[family] = make(map[string]bool)
		commonValues[family] = make(map[string]bool)
	}

	for i := range records {
		record := &records[i]
		if record.Matched() {
			summary.MatchedComponents++
		} else {
			summary.UnmatchedComponents++
		}

		for _, check := range record.Checks {
			switch check.Outcome {
			case domain.OutcomeMatch:
				summary.TotalMatches++
			case domain.OutcomeDeviation:
				summary.TotalDeviations++
				switch check.Severity {
				case domain.SeverityHigh:
					summary.HighSeverity++
				case domain.SeverityMedium:
					summary.MediumSeverity++
				case domain.SeverityLow:
					summary.LowSeverity++
				}
			case domain.OutcomeUnfetched:
				summary.TotalUnfetched++
			}

			if designSet, ok := designValues[check.Category]; ok && check.DesignValue != "" {
				designSet[check.DesignValue] = true
				if check.Outcome == domain.OutcomeMatch {
					commonValues[check.Category][check.DesignValue] = true
				}
			}
		}
	}

	for _, family := range scoredFamilies {
		total := len(designValues[family])
		if total == 0 {
			// explicit edge case, not a division error
			summary.Coverage[family] = 0
			continue
		}
		summary.Coverage[family] = float64(len(commonValues[family])) / float64(total) * 100
	}

	return summary
}

// BuildColorAnalysis collects the unique normalized colors of both sides
func (b *SummaryBuilder) BuildColorAnalysis(design []domain.DesignComponent, impl []domain.ImplementationElement) domain.ColorAnalysis {
	designSet := make(map[string]bool)
	for i := range design {
		colors := design[i].Properties.Colors
		if colors == nil {
			continue
		}
		for _, raw := range []string{colors.Background, colors.Text, colors.Border} {
			if hex, ok := NormalizeColor(raw); ok {
				designSet[hex] = true
			}
		}
	}

	implSet := make(map[string]bool)
	for i := range impl {
		for _, key := range []string{"backgroundColor", "color", "borderColor"} {
			if raw, ok := styleValue(&impl[i], key); ok {
				if hex, ok := NormalizeColor(raw); ok {
					implSet[hex] = true
				}
			}
		}
	}

	analysis := domain.ColorAnalysis{
		DesignColors:         sortedKeys(designSet),
		ImplementationColors: sortedKeys(implSet),
	}
	for _, hex := range analysis.DesignColors {
		if implSet[hex] {
			analysis.CommonColors = append(analysis.CommonColors, hex)
		} else {
			analysis.MissingInImplementation = append(analysis.MissingInImplementation, hex)
		}
	}
	return analysis
}

// BuildTypographyAnalysis collects the unique font families of both sides
func (b *SummaryBuilder) BuildTypographyAnalysis(design []domain.DesignComponent, impl []domain.ImplementationElement) domain.TypographyAnalysis {
	designSet := make(map[string]bool)
	for i := range design {
		typo := design[i].Properties.Typography
		if typo == nil || typo.FontFamily == "" {
			continue
		}
		designSet[strings.ToLower(FirstFontFamily(typo.FontFamily))] = true
	}

	implSet := make(map[string]bool)
	for i := range impl {
		if raw, ok := styleValue(&impl[i], "fontFamily"); ok {
			implSet[strings.ToLower(FirstFontFamily(raw))] = true
		}
	}

	analysis := domain.TypographyAnalysis{
		DesignFonts:         sortedKeys(designSet),
		ImplementationFonts: sortedKeys(implSet),
	}
	for _, font := range analysis.DesignFonts {
		if implSet[font] {
			analysis.CommonFonts = append(analysis.CommonFonts, font)
		}
	}
	return analysis
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
