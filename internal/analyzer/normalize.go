package analyzer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor converts a raw color value (hex, shorthand hex, rgb()/rgba())
// into a color. Returns false for values it cannot interpret.
func ParseColor(raw string) (colorful.Color, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" || s == "transparent" || s == "none" {
		return colorful.Color{}, false
	}

	if strings.HasPrefix(s, "#") {
		if len(s) == 4 {
			// #abc -> #aabbcc
			s = fmt.Sprintf("#%c%c%c%c%c%c", s[1], s[1], s[2], s[2], s[3], s[3])
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, false
		}
		return c, true
	}

	if strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba(") {
		open := strings.Index(s, "(")
		end := strings.LastIndex(s, ")")
		if end <= open {
			return colorful.Color{}, false
		}
		parts := strings.Split(s[open+1:end], ",")
		if len(parts) < 3 {
			return colorful.Color{}, false
		}
		var rgb [3]float64
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
			if err != nil || v < 0 || v > 255 {
				return colorful.Color{}, false
			}
			rgb[i] = v / 255.0
		}
		return colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}, true
	}

	return colorful.Color{}, false
}

// NormalizeColor converts a raw color value into canonical lowercase
// #rrggbb form. Returns false when the value is not a parseable color.
func NormalizeColor(raw string) (string, bool) {
	c, ok := ParseColor(raw)
	if !ok {
		return "", false
	}
	return strings.ToLower(c.Hex()), true
}

// FirstFontFamily returns the first entry of a comma-separated font-family
// list, unquoted and trimmed
func FirstFontFamily(raw string) string {
	first := raw
	if idx := strings.Index(raw, ","); idx >= 0 {
		first = raw[:idx]
	}
	first = strings.TrimSpace(first)
	first = strings.Trim(first, `"'`)
	return strings.TrimSpace(first)
}

// NormalizeFontWeight maps CSS weight keywords onto their numeric values
// so "bold" and "700" compare equal
func NormalizeFontWeight(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "normal", "regular":
		return "400"
	case "bold":
		return "700"
	case "lighter":
		return "300"
	case "bolder":
		return "800"
	case "":
		return ""
	}
	return s
}

// ParsePx parses a CSS pixel value ("12px", "12.5") into a number
func ParsePx(raw string) (float64, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimSuffix(s, "px")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatPx renders a pixel value without a trailing ".0"
func FormatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// NormalizeText prepares text content for similarity comparison
func NormalizeText(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
