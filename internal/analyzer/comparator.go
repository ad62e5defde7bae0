package analyzer

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/uilens/uilens/domain"
)

// Property family names, in the fixed evaluation order
const (
	FamilyColors     = "colors"
	FamilyTypography = "typography"
	FamilySpacing    = "spacing"
	FamilyLayout     = "layout"
	FamilyEffects    = "effects"
)

// PropertyComparator compares the style properties of a matched pair.
// Families are evaluated in a fixed order (colors, typography, spacing,
// layout, effects) so output is deterministic.
type PropertyComparator struct {
	config *ScorerConfig
}

// NewPropertyComparator creates a new PropertyComparator
func NewPropertyComparator(config *ScorerConfig) *PropertyComparator {
	if config == nil {
		config = DefaultScorerConfig()
	}
	return &PropertyComparator{config: config}
}

// Compare evaluates every property family present on the design side
// against the implementation element. Each check carries a three-way
// outcome: match, deviation, or unfetched (data absent on the
// implementation side, distinct from a wrong value).
func (pc *PropertyComparator) Compare(c *domain.DesignComponent, e *domain.ImplementationElement) []domain.PropertyCheck {
	var checks []domain.PropertyCheck
	checks = append(checks, pc.compareColors(c, e)...)
	checks = append(checks, pc.compareTypography(c, e)...)
	checks = append(checks, pc.compareSpacing(c, e)...)
	checks = append(checks, pc.compareLayout(c, e)...)
	checks = append(checks, pc.compareEffects(c, e)...)
	return checks
}

func (pc *PropertyComparator) compareColors(c *domain.DesignComponent, e *domain.ImplementationElement) []domain.PropertyCheck {
	colors := c.Properties.Colors
	if colors == nil {
		return nil
	}

	pairs := []struct {
		property    string
		designValue string
		styleKey    string
	}{
		{"background", colors.Background, "backgroundColor"},
		{"text", colors.Text, "color"},
		{"border", colors.Border, "borderColor"},
	}

	var checks []domain.PropertyCheck
	for _, p := range pairs {
		if p.designValue == "" {
			continue
		}
		designHex, ok := NormalizeColor(p.designValue)
		if !ok {
			designHex = p.designValue
		}

		implRaw, ok := styleValue(e, p.styleKey)
		if !ok {
			checks = append(checks, unfetchedCheck(FamilyColors, p.property, designHex,
				fmt.Sprintf("%s color not captured from the implementation", p.property)))
			continue
		}
		implHex, ok := NormalizeColor(implRaw)
		if !ok {
			checks = append(checks, unfetchedCheck(FamilyColors, p.property, designHex,
				fmt.Sprintf("%s color %q is not a comparable color value", p.property, implRaw)))
			continue
		}

		distance, _ := ColorDistanceValues(designHex, implHex)
		if distance <= pc.config.ColorDistanceThreshold {
			checks = append(checks, domain.PropertyCheck{
				Outcome:     domain.OutcomeMatch,
				Category:    FamilyColors,
				Property:    p.property,
				DesignValue: designHex,
				ImplValue:   implHex,
				Message:     fmt.Sprintf("%s color matches (distance %.1f)", p.property, distance),
			})
		} else {
			checks = append(checks, domain.PropertyCheck{
				Outcome:     domain.OutcomeDeviation,
				Category:    FamilyColors,
				Property:    p.property,
				DesignValue: designHex,
				ImplValue:   implHex,
				Severity:    pc.config.ColorSeverity(distance),
				Message:     fmt.Sprintf("%s color differs: %s vs %s (distance %.1f)", p.property, designHex, implHex, distance),
			})
		}
	}
	return checks
}

func (pc *PropertyComparator) compareTypography(c *domain.DesignComponent, e *domain.ImplementationElement) []domain.PropertyCheck {
	typo := c.Properties.Typography
	if typo == nil {
		return nil
	}

	var checks []domain.PropertyCheck

	if typo.FontFamily != "" {
		designFamily := FirstFontFamily(typo.FontFamily)
		implRaw, ok := styleValue(e, "fontFamily")
		if !ok {
			checks = append(checks, unfetchedCheck(FamilyTypography, "fontFamily", designFamily,
				"font family not captured from the implementation"))
		} else {
			implFamily := FirstFontFamily(implRaw)
			if strings.EqualFold(designFamily, implFamily) {
				checks = append(checks, domain.PropertyCheck{
					Outcome:     domain.OutcomeMatch,
					Category:    FamilyTypography,
					Property:    "fontFamily",
					DesignValue: designFamily,
					ImplValue:   implFamily,
					Message:     fmt.Sprintf("font family matches (%s)", implFamily),
				})
			} else {
				checks = append(checks, domain.PropertyCheck{
					Outcome:     domain.OutcomeDeviation,
					Category:    FamilyTypography,
					Property:    "fontFamily",
					DesignValue: designFamily,
					ImplValue:   implFamily,
					Severity:    domain.SeverityMedium,
					Message:     fmt.Sprintf("font family differs: %s vs %s", designFamily, implFamily),
				})
			}
		}
	}

	if typo.FontSize > 0 {
		checks = append(checks, pc.numericCheck(e, FamilyTypography, "fontSize", "fontSize",
			typo.FontSize, pc.config.FontSizeTolerance))
	}

	if typo.FontWeight != "" {
		designWeight := NormalizeFontWeight(typo.FontWeight)
		implRaw, ok := styleValue(e, "fontWeight")
		if !ok {
			checks = append(checks, unfetchedCheck(FamilyTypography, "fontWeight", designWeight,
				"font weight not captured from the implementation"))
		} else {
			implWeight := NormalizeFontWeight(implRaw)
			if designWeight == implWeight {
				checks = append(checks, domain.PropertyCheck{
					Outcome:     domain.OutcomeMatch,
					Category:    FamilyTypography,
					Property:    "fontWeight",
					DesignValue: designWeight,
					ImplValue:   implWeight,
					Message:     fmt.Sprintf("font weight matches (%s)", implWeight),
				})
			} else {
				checks = append(checks, domain.PropertyCheck{
					Outcome:     domain.OutcomeDeviation,
					Category:    FamilyTypography,
					Property:    "fontWeight",
					DesignValue: designWeight,
					ImplValue:   implWeight,
					Severity:    domain.SeverityMedium,
					Message:     fmt.Sprintf("font weight differs: %s vs %s", designWeight, implWeight),
				})
			}
		}
	}

	if typo.LineHeight > 0 {
		checks = append(checks, pc.numericCheck(e, FamilyTypography, "lineHeight", "lineHeight",
			typo.LineHeight, pc.config.FontSizeTolerance))
	}

	return checks
}

func (pc *PropertyComparator) compareSpacing(c *domain.DesignComponent, e *domain.ImplementationElement) []domain.PropertyCheck {
	spacing := c.Properties.Spacing
	if spacing == nil {
		return nil
	}

	sides := []struct {
		property    string
		designValue float64
	}{
		{"paddingTop", spacing.PaddingTop},
		{"paddingRight", spacing.PaddingRight},
		{"paddingBottom", spacing.PaddingBottom},
		{"paddingLeft", spacing.PaddingLeft},
		{"marginTop", spacing.MarginTop},
		{"marginRight", spacing.MarginRight},
		{"marginBottom", spacing.MarginBottom},
		{"marginLeft", spacing.MarginLeft},
	}

	checks := make([]domain.PropertyCheck, 0, len(sides))
	for _, s := range sides {
		checks = append(checks, pc.numericCheck(e, FamilySpacing, s.property, s.property,
			s.designValue, pc.config.SpacingTolerance))
	}
	return checks
}

// compareLayout reports display/position as informational entries only;
// layout differences are never scored as deviations.
func (pc *PropertyComparator) compareLayout(c *domain.DesignComponent, e *domain.ImplementationElement) []domain.PropertyCheck {
	layout := c.Properties.Layout
	if layout == nil {
		return nil
	}

	var checks []domain.PropertyCheck
	props := []struct {
		property    string
		designValue string
		styleKey    string
	}{
		{"display", layout.Display, "display"},
		{"position", layout.Position, "position"},
	}
	for _, p := range props {
		if p.designValue == "" {
			continue
		}
		implValue, ok := styleValue(e, p.styleKey)
		if !ok {
			checks = append(checks, unfetchedCheck(FamilyLayout, p.property, p.designValue,
				fmt.Sprintf("%s not captured from the implementation", p.property)))
			continue
		}
		checks = append(checks, domain.PropertyCheck{
			Outcome:     domain.OutcomeMatch,
			Category:    FamilyLayout,
			Property:    p.property,
			DesignValue: p.designValue,
			ImplValue:   implValue,
			Message:     fmt.Sprintf("%s: design %q, implementation %q (informational, not scored)", p.property, p.designValue, implValue),
		})
	}
	return checks
}

func (pc *PropertyComparator) compareEffects(c *domain.DesignComponent, e *domain.ImplementationElement) []domain.PropertyCheck {
	effects := c.Properties.Effects
	if effects == nil {
		return nil
	}

	var checks []domain.PropertyCheck

	if effects.BorderRadius != "" {
		implRaw, ok := styleValue(e, "borderRadius")
		if !ok {
			checks = append(checks, unfetchedCheck(FamilyEffects, "borderRadius", effects.BorderRadius,
				"border radius not captured from the implementation"))
		} else {
			designPx, okD := ParsePx(effects.BorderRadius)
			implPx, okI := ParsePx(implRaw)
			switch {
			case okD && okI:
				diff := math.Abs(designPx - implPx)
				if diff <= pc.config.SizeTolerance {
					checks = append(checks, domain.PropertyCheck{
						Outcome:     domain.OutcomeMatch,
						Category:    FamilyEffects,
						Property:    "borderRadius",
						DesignValue: FormatPx(designPx),
						ImplValue:   FormatPx(implPx),
						Message:     fmt.Sprintf("border radius matches (%s)", FormatPx(implPx)),
					})
				} else {
					checks = append(checks, domain.PropertyCheck{
						Outcome:     domain.OutcomeDeviation,
						Category:    FamilyEffects,
						Property:    "borderRadius",
						DesignValue: FormatPx(designPx),
						ImplValue:   FormatPx(implPx),
						Severity:    NumericSeverity(diff, pc.config.SizeTolerance),
						Message:     fmt.Sprintf("border radius differs: %s vs %s", FormatPx(designPx), FormatPx(implPx)),
					})
				}
			case strings.EqualFold(strings.TrimSpace(effects.BorderRadius), strings.TrimSpace(implRaw)):
				// non-px radii (percentages, per-corner tuples) compare literally
				checks = append(checks, domain.PropertyCheck{
					Outcome:     domain.OutcomeMatch,
					Category:    FamilyEffects,
					Property:    "borderRadius",
					DesignValue: effects.BorderRadius,
					ImplValue:   implRaw,
					Message:     fmt.Sprintf("border radius matches (%s)", implRaw),
				})
			default:
				checks = append(checks, domain.PropertyCheck{
					Outcome:     domain.OutcomeDeviation,
					Category:    FamilyEffects,
					Property:    "borderRadius",
					DesignValue: effects.BorderRadius,
					ImplValue:   implRaw,
					Severity:    domain.SeverityLow,
					Message:     fmt.Sprintf("border radius differs: %s vs %s", effects.BorderRadius, implRaw),
				})
			}
		}
	}

	// Shadow presence/absence
	implShadow, hasShadowStyle := styleValue(e, "boxShadow")
	implHasShadow := hasShadowStyle && implShadow != "" && !strings.EqualFold(implShadow, "none")
	if effects.Shadow != nil {
		switch {
		case !hasShadowStyle:
			checks = append(checks, unfetchedCheck(FamilyEffects, "shadow", shadowLabel(effects.Shadow),
				"shadow not captured from the implementation"))
		case implHasShadow:
			checks = append(checks, domain.PropertyCheck{
				Outcome:     domain.OutcomeMatch,
				Category:    FamilyEffects,
				Property:    "shadow",
				DesignValue: shadowLabel(effects.Shadow),
				ImplValue:   implShadow,
				Message:     "shadow present on both sides",
			})
		default:
			checks = append(checks, domain.PropertyCheck{
				Outcome:     domain.OutcomeDeviation,
				Category:    FamilyEffects,
				Property:    "shadow",
				DesignValue: shadowLabel(effects.Shadow),
				ImplValue:   implShadow,
				Severity:    domain.SeverityMedium,
				Message:     "shadow missing in the implementation",
			})
		}
	} else if implHasShadow {
		checks = append(checks, domain.PropertyCheck{
			Outcome:   domain.OutcomeDeviation,
			Category:  FamilyEffects,
			Property:  "shadow",
			ImplValue: implShadow,
			Severity:  domain.SeverityLow,
			Message:   "shadow present in the implementation but not in the design",
		})
	}

	return checks
}

// numericCheck compares one px-valued property against the implementation
// styles under an absolute tolerance
func (pc *PropertyComparator) numericCheck(e *domain.ImplementationElement, category, property, styleKey string, designValue, tolerance float64) domain.PropertyCheck {
	implRaw, ok := styleValue(e, styleKey)
	if !ok {
		return unfetchedCheck(category, property, FormatPx(designValue),
			fmt.Sprintf("%s not captured from the implementation", property))
	}
	implValue, ok := ParsePx(implRaw)
	if !ok {
		return unfetchedCheck(category, property, FormatPx(designValue),
			fmt.Sprintf("%s %q is not a comparable px value", property, implRaw))
	}

	diff := math.Abs(designValue - implValue)
	if diff <= tolerance {
		return domain.PropertyCheck{
			Outcome:     domain.OutcomeMatch,
			Category:    category,
			Property:    property,
			DesignValue: FormatPx(designValue),
			ImplValue:   FormatPx(implValue),
			Message:     fmt.Sprintf("%s matches within %spx", property, trimFloat(tolerance)),
		}
	}
	return domain.PropertyCheck{
		Outcome:     domain.OutcomeDeviation,
		Category:    category,
		Property:    property,
		DesignValue: FormatPx(designValue),
		ImplValue:   FormatPx(implValue),
		Severity:    NumericSeverity(diff, tolerance),
		Message:     fmt.Sprintf("%s differs: %s vs %s", property, FormatPx(designValue), FormatPx(implValue)),
	}
}

// styleValue looks up a computed style, falling back to the grouped map.
// Groups are scanned in sorted name order so a key present in several
// groups always resolves the same way.
func styleValue(e *domain.ImplementationElement, key string) (string, bool) {
	if v, ok := e.Styles[key]; ok && v != "" {
		return v, true
	}
	names := make([]string, 0, len(e.DetailedStyles))
	for name := range e.DetailedStyles {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if v, ok := e.DetailedStyles[name][key]; ok && v != "" {
			return v, true
		}
	}
	return "", false
}

func unfetchedCheck(category, property, designValue, message string) domain.PropertyCheck {
	return domain.PropertyCheck{
		Outcome:     domain.OutcomeUnfetched,
		Category:    category,
		Property:    property,
		DesignValue: designValue,
		Message:     message,
	}
}

func shadowLabel(s *domain.ShadowEffect) string {
	if s == nil {
		return ""
	}
	return fmt.Sprintf("%s %s %s %s", s.Type, FormatPx(s.OffsetX), FormatPx(s.OffsetY), FormatPx(s.Radius))
}

func trimFloat(v float64) string {
	return strings.TrimSuffix(FormatPx(v), "px")
}
