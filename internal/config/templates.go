package config

import (
	"fmt"
	"strings"
)

// ProjectType adjusts generated config defaults for a class of project
type ProjectType string

const (
	ProjectTypeGeneric      ProjectType = "generic"
	ProjectTypeDesignSystem ProjectType = "design-system"
	ProjectTypeMarketing    ProjectType = "marketing"
	ProjectTypeWebApp       ProjectType = "web-app"
)

// Strictness adjusts generated thresholds
type Strictness string

const (
	StrictnessRelaxed  Strictness = "relaxed"
	StrictnessStandard Strictness = "standard"
	StrictnessStrict   Strictness = "strict"
)

// thresholds returns comparison thresholds for a strictness level
func thresholds(strictness Strictness) ComparisonConfig {
	base := DefaultConfig().Comparison
	switch strictness {
	case StrictnessRelaxed:
		base.ColorDistanceThreshold = 25
		base.SizeTolerance = 10
		base.SpacingTolerance = 6
		base.FontSizeTolerance = 4
	case StrictnessStrict:
		base.ColorDistanceThreshold = 5
		base.SizeTolerance = 2
		base.SpacingTolerance = 1
		base.FontSizeTolerance = 1
	}
	return base
}

// GetMinimalConfigTemplate returns a small config with essential options only
func GetMinimalConfigTemplate() string {
	return `{
  "comparison": {
    "color_distance_threshold": 10,
    "acceptance_floor": 0.3
  },
  "output": {
    "format": "text"
  }
}
`
}

// GetFullConfigTemplate returns a documented config file for the given
// project type and strictness
func GetFullConfigTemplate(projectType ProjectType, strictness Strictness) string {
	t := thresholds(strictness)

	categoriesEnabled := true
	tokensEnabled := true
	if projectType == ProjectTypeMarketing {
		// marketing pages rarely maintain a token inventory
		tokensEnabled = false
	}

	var sb strings.Builder
	sb.WriteString("{\n")
	sb.WriteString(fmt.Sprintf("  \"_comment\": \"uilens configuration (%s, %s thresholds)\",\n", projectType, strictness))
	sb.WriteString("  \"comparison\": {\n")
	sb.WriteString("    \"_comment\": \"Thresholds for matching and property comparison\",\n")
	sb.WriteString(fmt.Sprintf("    \"color_distance_threshold\": %g,\n", t.ColorDistanceThreshold))
	sb.WriteString(fmt.Sprintf("    \"text_similarity_floor\": %g,\n", t.TextSimilarityFloor))
	sb.WriteString(fmt.Sprintf("    \"acceptance_floor\": %g,\n", t.AcceptanceFloor))
	sb.WriteString(fmt.Sprintf("    \"size_tolerance\": %g,\n", t.SizeTolerance))
	sb.WriteString(fmt.Sprintf("    \"spacing_tolerance\": %g,\n", t.SpacingTolerance))
	sb.WriteString(fmt.Sprintf("    \"font_size_tolerance\": %g\n", t.FontSizeTolerance))
	sb.WriteString("  },\n")
	sb.WriteString("  \"tokens\": {\n")
	sb.WriteString(fmt.Sprintf("    \"enabled\": %t\n", tokensEnabled))
	sb.WriteString("  },\n")
	sb.WriteString("  \"categories\": {\n")
	sb.WriteString(fmt.Sprintf("    \"enabled\": %t,\n", categoriesEnabled))
	sb.WriteString(fmt.Sprintf("    \"molecule_max_children\": %d,\n", DefaultMoleculeMaxChildren))
	sb.WriteString(fmt.Sprintf("    \"layout_max_depth\": %d\n", DefaultLayoutMaxDepth))
	sb.WriteString("  },\n")
	sb.WriteString("  \"output\": {\n")
	sb.WriteString("    \"format\": \"text\",\n")
	sb.WriteString("    \"sort_by\": \"confidence\",\n")
	sb.WriteString("    \"show_details\": false,\n")
	sb.WriteString("    \"min_severity\": \"low\"\n")
	sb.WriteString("  },\n")
	sb.WriteString("  \"performance\": {\n")
	sb.WriteString("    \"max_goroutines\": 4,\n")
	sb.WriteString("    \"timeout_seconds\": 300\n")
	sb.WriteString("  }\n")
	sb.WriteString("}\n")
	return sb.String()
}
