package constants

// Tool name and related constants
const (
	// ToolName is the name of this tool
	ToolName = "uilens"

	// ConfigFileName is the default config file name
	ConfigFileName = "uilens.config.json"

	// EnvVarPrefix is the prefix for environment variables
	EnvVarPrefix = "UILENS"
)

// Analysis type constants
const (
	AnalysisComparison = "comparison"
	AnalysisTokens     = "tokens"
	AnalysisCategories = "categories"
)

// Output format constants
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)
