package analyzer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/uilens/uilens/domain"
)

// TokenExtractor clusters repeated raw style values across both sides
// into deduplicated tokens with usage provenance
type TokenExtractor struct{}

// NewTokenExtractor creates a new TokenExtractor
func NewTokenExtractor() *TokenExtractor {
	return &TokenExtractor{}
}

// tokenIndex deduplicates tokens by canonical value within a category
type tokenIndex map[domain.TokenCategory]map[string]*domain.DesignToken

func (idx tokenIndex) add(category domain.TokenCategory, value string, source domain.TokenSource) {
	if value == "" {
		return
	}
	byValue, ok := idx[category]
	if !ok {
		byValue = make(map[string]*domain.DesignToken)
		idx[category] = byValue
	}
	token, ok := byValue[value]
	if !ok {
		token = &domain.DesignToken{Category: category, Value: value}
		byValue[value] = token
	}
	token.Sources = append(token.Sources, source)
}

// Extract walks every item on both sides, derives a canonical value per
// category, and deduplicates by that value. Returned lists are sorted by
// descending usage count (ties by value) to prioritize review attention.
func (x *TokenExtractor) Extract(design []domain.DesignComponent, impl []domain.ImplementationElement) map[domain.TokenCategory][]domain.DesignToken {
	idx := make(tokenIndex)

	for i := range design {
		x.collectDesign(idx, &design[i])
	}
	for i := range impl {
		x.collectImplementation(idx, &impl[i])
	}

	result := make(map[domain.TokenCategory][]domain.DesignToken, len(idx))
	for category, byValue := range idx {
		tokens := make([]domain.DesignToken, 0, len(byValue))
		for _, token := range byValue {
			tokens = append(tokens, *token)
		}
		sort.Slice(tokens, func(a, b int) bool {
			if len(tokens[a].Sources) != len(tokens[b].Sources) {
				return len(tokens[a].Sources) > len(tokens[b].Sources)
			}
			return tokens[a].Value < tokens[b].Value
		})
		result[category] = tokens
	}
	return result
}

func (x *TokenExtractor) collectDesign(idx tokenIndex, c *domain.DesignComponent) {
	source := func(context string) domain.TokenSource {
		return domain.TokenSource{
			Source:      domain.TokenSourceDesign,
			ComponentID: c.ID,
			Context:     context,
		}
	}

	if colors := c.Properties.Colors; colors != nil {
		// fixed order keeps Sources reproducible across runs
		pairs := []struct {
			context string
			raw     string
		}{
			{"background", colors.Background},
			{"text", colors.Text},
			{"border", colors.Border},
		}
		for _, p := range pairs {
			if hex, ok := NormalizeColor(p.raw); ok {
				idx.add(domain.TokenCategoryColors, hex, source(p.context))
			}
		}
	}

	if typo := c.Properties.Typography; typo != nil && typo.FontFamily != "" {
		value := typographyKey(FirstFontFamily(typo.FontFamily), FormatPx(typo.FontSize), NormalizeFontWeight(typo.FontWeight))
		idx.add(domain.TokenCategoryTypography, value, source("typography"))
	}

	if spacing := c.Properties.Spacing; spacing != nil {
		values := []struct {
			property string
			v        float64
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
		for _, s := range values {
			if s.v != 0 {
				idx.add(domain.TokenCategorySpacing, spacingKey(s.property, FormatPx(s.v)), source(s.property))
			}
		}
	}

	if effects := c.Properties.Effects; effects != nil {
		if shadow := effects.Shadow; shadow != nil {
			idx.add(domain.TokenCategoryShadows, shadowKey(shadow.Type, shadow.OffsetX, shadow.OffsetY, shadow.Radius), source("shadow"))
		}
		if effects.BorderRadius != "" {
			idx.add(domain.TokenCategoryBorderRadius, radiusValue(effects.BorderRadius), source("borderRadius"))
		}
	}
}

func (x *TokenExtractor) collectImplementation(idx tokenIndex, e *domain.ImplementationElement) {
	source := func(context string) domain.TokenSource {
		return domain.TokenSource{
			Source:   domain.TokenSourceImplementation,
			Selector: e.Selector,
			Context:  context,
		}
	}

	colorKeys := []struct {
		context string
		key     string
	}{
		{"background", "backgroundColor"},
		{"text", "color"},
		{"border", "borderColor"},
	}
	for _, p := range colorKeys {
		if raw, ok := styleValue(e, p.key); ok {
			if hex, ok := NormalizeColor(raw); ok {
				idx.add(domain.TokenCategoryColors, hex, source(p.context))
			}
		}
	}

	if family, ok := styleValue(e, "fontFamily"); ok {
		size, _ := styleValue(e, "fontSize")
		weight, _ := styleValue(e, "fontWeight")
		if px, ok := ParsePx(size); ok {
			size = FormatPx(px)
		}
		value := typographyKey(FirstFontFamily(family), size, NormalizeFontWeight(weight))
		idx.add(domain.TokenCategoryTypography, value, source("typography"))
	}

	spacingKeys := []string{
		"paddingTop", "paddingRight", "paddingBottom", "paddingLeft",
		"marginTop", "marginRight", "marginBottom", "marginLeft",
	}
	for _, key := range spacingKeys {
		raw, ok := styleValue(e, key)
		if !ok {
			continue
		}
		if px, ok := ParsePx(raw); ok && px != 0 {
			idx.add(domain.TokenCategorySpacing, spacingKey(key, FormatPx(px)), source(key))
		}
	}

	if raw, ok := styleValue(e, "boxShadow"); ok && !strings.EqualFold(raw, "none") {
		if offsetX, offsetY, radius, ok := parseBoxShadow(raw); ok {
			idx.add(domain.TokenCategoryShadows, shadowKey("drop", offsetX, offsetY, radius), source("boxShadow"))
		}
	}

	if raw, ok := styleValue(e, "borderRadius"); ok && raw != "0px" {
		idx.add(domain.TokenCategoryBorderRadius, radiusValue(raw), source("borderRadius"))
	}
}

func typographyKey(family, size, weight string) string {
	return fmt.Sprintf("%s-%s-%s", family, size, weight)
}

func spacingKey(property, value string) string {
	return fmt.Sprintf("%s-%s", property, value)
}

func shadowKey(shadowType string, offsetX, offsetY, radius float64) string {
	if shadowType == "" {
		shadowType = "drop"
	}
	return fmt.Sprintf("%s-%s-%s-%s", strings.ToLower(shadowType), FormatPx(offsetX), FormatPx(offsetY), FormatPx(radius))
}

// radiusValue canonicalizes a border radius: single px values are
// reformatted, per-corner tuples kept verbatim
func radiusValue(raw string) string {
	if px, ok := ParsePx(raw); ok {
		return FormatPx(px)
	}
	return strings.TrimSpace(raw)
}

// parseBoxShadow picks the offset-x, offset-y, and blur radius out of a
// computed box-shadow value. Color components are skipped.
func parseBoxShadow(raw string) (offsetX, offsetY, radius float64, ok bool) {
	// strip function-style colors like rgba(0, 0, 0, 0.1)
	s := raw
	for {
		open := strings.IndexByte(s, '(')
		if open < 0 {
			break
		}
		end := strings.IndexByte(s[open:], ')')
		if end < 0 {
			break
		}
		start := strings.LastIndexByte(s[:open], ' ')
		if start < 0 {
			start = 0
		}
		s = s[:start] + s[open+end+1:]
	}

	var numbers []float64
	for _, field := range strings.Fields(s) {
		if v, okPx := ParsePx(field); okPx {
			numbers = append(numbers, v)
		}
	}
	if len(numbers) < 2 {
		return 0, 0, 0, false
	}
	offsetX, offsetY = numbers[0], numbers[1]
	if len(numbers) > 2 {
		radius = numbers[2]
	}
	return offsetX, offsetY, radius, true
}
