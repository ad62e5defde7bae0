package service

import (
	"github.com/uilens/uilens/domain"
	"github.com/uilens/uilens/internal/config"
)

// ConfigurationLoaderImpl implements the ConfigurationLoader interface
type ConfigurationLoaderImpl struct{}

// NewConfigurationLoader creates a new configuration loader service
func NewConfigurationLoader() *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{}
}

// LoadConfig loads configuration from the specified path
func (c *ConfigurationLoaderImpl) LoadConfig(path string) (*domain.CompareRequest, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}
	return c.convertToCompareRequest(cfg), nil
}

// LoadDefaultConfig loads the default configuration, honoring a config
// file discovered in the working tree
func (c *ConfigurationLoaderImpl) LoadDefaultConfig() *domain.CompareRequest {
	cfg, err := config.LoadConfig("")
	if err != nil {
		cfg = config.DefaultConfig()
	}
	return c.convertToCompareRequest(cfg)
}

// MergeConfig merges CLI flags with configuration file values.
// Override values win when set.
func (c *ConfigurationLoaderImpl) MergeConfig(base *domain.CompareRequest, override *domain.CompareRequest) *domain.CompareRequest {
	merged := *base

	if len(override.Design) > 0 {
		merged.Design = override.Design
	}
	if len(override.Implementation) > 0 {
		merged.Implementation = override.Implementation
	}

	if override.OutputFormat != "" {
		merged.OutputFormat = override.OutputFormat
	}
	if override.OutputWriter != nil {
		merged.OutputWriter = override.OutputWriter
	}
	if override.OutputPath != "" {
		merged.OutputPath = override.OutputPath
	}
	if override.ShowDetails {
		merged.ShowDetails = override.ShowDetails
	}
	if override.SortBy != "" {
		merged.SortBy = override.SortBy
	}
	if override.MinSeverity != "" {
		merged.MinSeverity = override.MinSeverity
	}

	if override.ColorDistanceThreshold > 0 {
		merged.ColorDistanceThreshold = override.ColorDistanceThreshold
	}
	if override.TextSimilarityFloor > 0 {
		merged.TextSimilarityFloor = override.TextSimilarityFloor
	}
	if override.AcceptanceFloor > 0 {
		merged.AcceptanceFloor = override.AcceptanceFloor
	}
	if override.SizeTolerance > 0 {
		merged.SizeTolerance = override.SizeTolerance
	}
	if override.SpacingTolerance > 0 {
		merged.SpacingTolerance = override.SpacingTolerance
	}
	if override.FontSizeTolerance > 0 {
		merged.FontSizeTolerance = override.FontSizeTolerance
	}

	if override.ConfigPath != "" {
		merged.ConfigPath = override.ConfigPath
	}

	return &merged
}

// ValidateConfig validates the request
func (c *ConfigurationLoaderImpl) ValidateConfig(req *domain.CompareRequest) error {
	if req.AcceptanceFloor < 0 || req.AcceptanceFloor > 1 {
		return domain.NewValidationError("acceptance floor must be in [0,1]")
	}
	if req.TextSimilarityFloor < 0 || req.TextSimilarityFloor > 1 {
		return domain.NewValidationError("text similarity floor must be in [0,1]")
	}
	if req.ColorDistanceThreshold < 0 {
		return domain.NewValidationError("color distance threshold cannot be negative")
	}

	switch req.OutputFormat {
	case "", domain.OutputFormatText, domain.OutputFormatJSON, domain.OutputFormatYAML:
	default:
		return domain.NewUnsupportedFormatError(string(req.OutputFormat))
	}

	switch req.MinSeverity {
	case "", domain.SeverityLow, domain.SeverityMedium, domain.SeverityHigh:
	default:
		return domain.NewValidationError("min severity must be one of: low, medium, high")
	}

	return nil
}

// convertToCompareRequest converts a Config to CompareRequest
func (c *ConfigurationLoaderImpl) convertToCompareRequest(cfg *config.Config) *domain.CompareRequest {
	return &domain.CompareRequest{
		OutputFormat: domain.OutputFormat(cfg.Output.Format),
		ShowDetails:  cfg.Output.ShowDetails,
		SortBy:       domain.SortCriteria(cfg.Output.SortBy),
		MinSeverity:  domain.Severity(cfg.Output.MinSeverity),

		ColorDistanceThreshold: cfg.Comparison.ColorDistanceThreshold,
		TextSimilarityFloor:    cfg.Comparison.TextSimilarityFloor,
		AcceptanceFloor:        cfg.Comparison.AcceptanceFloor,
		SizeTolerance:          cfg.Comparison.SizeTolerance,
		SpacingTolerance:       cfg.Comparison.SpacingTolerance,
		FontSizeTolerance:      cfg.Comparison.FontSizeTolerance,
	}
}
