package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uilens/uilens/app"
	"github.com/uilens/uilens/domain"
	"github.com/uilens/uilens/internal/config"
	"github.com/uilens/uilens/internal/constants"
	"github.com/uilens/uilens/service"
)

var (
	selectAnalyses []string
	outputFormat   string
	jsonOutput     bool
	outputPath     string
	configPath     string
	sortBy         string
	minSeverity    string
	showDetails    bool
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <design.json> <page.json>",
		Short: "Compare a design extraction against a page extraction",
		Long: `Compare design-tool components against rendered DOM elements.

The design file holds an array of design components, the page file an array
of implementation elements. Both come from their respective extractors.

Examples:
  uilens compare design.json page.json
  uilens compare --select comparison design.json page.json
  uilens compare --select comparison,tokens --json design.json page.json
  uilens compare --format yaml --output report.yaml design.json page.json`,
		Args: cobra.ExactArgs(2),
		RunE: runCompare,
	}

	cmd.Flags().StringSliceVarP(&selectAnalyses, "select", "s",
		[]string{constants.AnalysisComparison, constants.AnalysisTokens, constants.AnalysisCategories},
		"Analyses to run (comma-separated): comparison,tokens,categories")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text",
		"Output format: text, json, yaml")
	cmd.Flags().BoolVar(&jsonOutput, "json", false,
		"Output results as JSON (shorthand for --format json)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Output file path (default: stdout)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "",
		"Path to config file")
	cmd.Flags().StringVar(&sortBy, "sort", "",
		"Sort comparison records by: confidence, name, severity")
	cmd.Flags().StringVar(&minSeverity, "min-severity", "",
		"Hide deviations below this severity: low, medium, high")
	cmd.Flags().BoolVar(&showDetails, "details", false,
		"Show per-property check details")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	format := domain.OutputFormat(outputFormat)
	if jsonOutput {
		format = domain.OutputFormatJSON
	}
	switch format {
	case domain.OutputFormatText, domain.OutputFormatJSON, domain.OutputFormatYAML:
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}

	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return domain.NewConfigError("failed to load configuration", err)
	}

	// Load inputs
	loader := app.NewInputLoader()
	design, err := loader.LoadDesignFile(args[0])
	if err != nil {
		return err
	}
	implementation, err := loader.LoadImplementationFile(args[1])
	if err != nil {
		return err
	}

	// Progress is auto-disabled for structured output and non-TTY
	pm := service.NewProgressManager(format == domain.OutputFormatText)
	defer pm.Close()

	auditConfig := buildAuditConfig(cfg, format)

	usecase := app.NewAuditUseCase(
		service.NewCompareServiceWithProgress(pm),
		service.NewTokenService(),
		service.NewCategorizeServiceFromConfig(&cfg.Categories),
		service.NewParallelExecutorWithProgress(&cfg.Performance, pm),
	)

	result, err := usecase.Execute(context.Background(), auditConfig, design, implementation)
	if err != nil {
		return err
	}

	writer := os.Stdout
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return domain.NewOutputError("failed to create output file", err)
		}
		defer file.Close()
		writer = file
	}

	formatter := service.NewOutputFormatter()
	if err := formatter.WriteAudit(
		result.Comparison, result.Tokens, result.Categories,
		format, writer, result.Duration,
	); err != nil {
		return err
	}

	if outputPath != "" {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", outputPath)
	}
	return nil
}

// buildAuditConfig merges config file values with CLI flags
func buildAuditConfig(cfg *config.Config, format domain.OutputFormat) app.AuditConfig {
	auditConfig := app.AuditConfig{
		EnableComparison: contains(selectAnalyses, constants.AnalysisComparison),
		EnableTokens:     contains(selectAnalyses, constants.AnalysisTokens) && cfg.Tokens.Enabled,
		EnableCategories: contains(selectAnalyses, constants.AnalysisCategories) && cfg.Categories.Enabled,

		OutputFormat: format,
		ShowDetails:  showDetails || cfg.Output.ShowDetails,
		SortBy:       domain.SortCriteria(cfg.Output.SortBy),
		MinSeverity:  domain.Severity(cfg.Output.MinSeverity),

		ColorDistanceThreshold: cfg.Comparison.ColorDistanceThreshold,
		TextSimilarityFloor:    cfg.Comparison.TextSimilarityFloor,
		AcceptanceFloor:        cfg.Comparison.AcceptanceFloor,
		SizeTolerance:          cfg.Comparison.SizeTolerance,
		SpacingTolerance:       cfg.Comparison.SpacingTolerance,
		FontSizeTolerance:      cfg.Comparison.FontSizeTolerance,
	}

	if sortBy != "" {
		auditConfig.SortBy = domain.SortCriteria(sortBy)
	}
	if minSeverity != "" {
		auditConfig.MinSeverity = domain.Severity(minSeverity)
	}

	return auditConfig
}
