package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/uilens/uilens/app"
	"github.com/uilens/uilens/domain"
	"github.com/uilens/uilens/internal/config"
	"github.com/uilens/uilens/internal/version"
	"github.com/uilens/uilens/service"
)

// CheckExitError is a custom error type for check command exit codes
type CheckExitError struct {
	Code    int
	Message string
}

func (e *CheckExitError) Error() string {
	return e.Message
}

// CheckViolation is one threshold breach
type CheckViolation struct {
	Rule      string `json:"rule"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
	Actual    string `json:"actual"`
	Threshold string `json:"threshold"`
}

// CheckResult is the machine-readable check outcome
type CheckResult struct {
	Passed      bool                      `json:"passed"`
	ExitCode    int                       `json:"exit_code"`
	Violations  []CheckViolation          `json:"violations"`
	MatchRate   float64                   `json:"match_rate"`
	Summary     *domain.ComparisonSummary `json:"summary,omitempty"`
	Duration    int64                     `json:"duration_ms"`
	GeneratedAt string                    `json:"generated_at"`
	Version     string                    `json:"version"`
}

var (
	checkMaxHigh      int
	checkMaxMedium    int
	checkMinMatchRate float64
	checkVerbose      bool
	checkJSON         bool
	checkConfigPath   string
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <design.json> <page.json>",
		Short: "Fast design-fidelity check for CI/CD pipelines",
		Long: `Run the comparison against configurable thresholds for CI/CD integration.

Exit codes:
  0 - All checks pass
  1 - Fidelity threshold(s) violated
  2 - Analysis error (file not found, malformed input, etc.)

Examples:
  # Basic check with defaults
  uilens check design.json page.json

  # Fail on any high-severity deviation
  uilens check --max-high 0 design.json page.json

  # Require 90% of components to be matched
  uilens check --min-match-rate 0.9 design.json page.json

  # JSON output for machine parsing
  uilens check --json design.json page.json`,
		Args:          cobra.ExactArgs(2),
		RunE:          runCheck,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().IntVar(&checkMaxHigh, "max-high", 0,
		"Maximum allowed high-severity deviations")
	cmd.Flags().IntVar(&checkMaxMedium, "max-medium", -1,
		"Maximum allowed medium-severity deviations (-1 = unlimited)")
	cmd.Flags().Float64Var(&checkMinMatchRate, "min-match-rate", 0,
		"Minimum fraction of design components that must be matched (0-1)")
	cmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false,
		"Show detailed output")
	cmd.Flags().BoolVar(&checkJSON, "json", false,
		"Output results as JSON")
	cmd.Flags().StringVarP(&checkConfigPath, "config", "c", "",
		"Path to config file")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	cfg, err := config.LoadConfig(checkConfigPath)
	if err != nil {
		return &CheckExitError{Code: 2, Message: fmt.Sprintf("failed to load configuration: %v", err)}
	}

	loader := app.NewInputLoader()
	design, err := loader.LoadDesignFile(args[0])
	if err != nil {
		return &CheckExitError{Code: 2, Message: err.Error()}
	}
	implementation, err := loader.LoadImplementationFile(args[1])
	if err != nil {
		return &CheckExitError{Code: 2, Message: err.Error()}
	}

	// Progress is auto-disabled for JSON output or non-TTY/CI
	pm := service.NewProgressManager(!checkJSON)
	defer pm.Close()

	compareService := service.NewCompareServiceWithProgress(pm)
	comparison, err := compareService.Compare(context.Background(), domain.CompareRequest{
		Design:         design,
		Implementation: implementation,

		ColorDistanceThreshold: cfg.Comparison.ColorDistanceThreshold,
		TextSimilarityFloor:    cfg.Comparison.TextSimilarityFloor,
		AcceptanceFloor:        cfg.Comparison.AcceptanceFloor,
		SizeTolerance:          cfg.Comparison.SizeTolerance,
		SpacingTolerance:       cfg.Comparison.SpacingTolerance,
		FontSizeTolerance:      cfg.Comparison.FontSizeTolerance,
	})
	if err != nil {
		return &CheckExitError{Code: 2, Message: fmt.Sprintf("comparison failed: %v", err)}
	}

	result := evaluateThresholds(&comparison.Summary)
	result.Summary = &comparison.Summary
	result.Duration = time.Since(startTime).Milliseconds()
	result.GeneratedAt = time.Now().Format(time.RFC3339)
	result.Version = version.Version

	return outputCheckResult(result)
}

// evaluateThresholds applies the CLI thresholds to the comparison summary
func evaluateThresholds(summary *domain.ComparisonSummary) *CheckResult {
	result := &CheckResult{
		Passed:     true,
		Violations: []CheckViolation{},
	}

	if summary.TotalComponents > 0 {
		result.MatchRate = float64(summary.MatchedComponents) / float64(summary.TotalComponents)
	}

	if summary.HighSeverity > checkMaxHigh {
		result.Passed = false
		result.Violations = append(result.Violations, CheckViolation{
			Rule:      "max-high",
			Severity:  "error",
			Message:   fmt.Sprintf("Found %d high-severity deviations", summary.HighSeverity),
			Actual:    strconv.Itoa(summary.HighSeverity),
			Threshold: strconv.Itoa(checkMaxHigh),
		})
	}

	if checkMaxMedium >= 0 && summary.MediumSeverity > checkMaxMedium {
		result.Passed = false
		result.Violations = append(result.Violations, CheckViolation{
			Rule:      "max-medium",
			Severity:  "warning",
			Message:   fmt.Sprintf("Found %d medium-severity deviations", summary.MediumSeverity),
			Actual:    strconv.Itoa(summary.MediumSeverity),
			Threshold: strconv.Itoa(checkMaxMedium),
		})
	}

	if checkMinMatchRate > 0 && result.MatchRate < checkMinMatchRate {
		result.Passed = false
		result.Violations = append(result.Violations, CheckViolation{
			Rule:      "min-match-rate",
			Severity:  "error",
			Message:   fmt.Sprintf("Only %.0f%% of design components were matched", result.MatchRate*100),
			Actual:    fmt.Sprintf("%.2f", result.MatchRate),
			Threshold: fmt.Sprintf("%.2f", checkMinMatchRate),
		})
	}

	if !result.Passed {
		result.ExitCode = 1
	}
	return result
}

func outputCheckResult(result *CheckResult) error {
	if checkJSON {
		if err := service.WriteJSON(os.Stdout, result); err != nil {
			return &CheckExitError{Code: 2, Message: fmt.Sprintf("failed to write JSON output: %v", err)}
		}
	} else {
		outputCheckText(result)
	}

	if !result.Passed {
		// Output already printed; exit silently with the failure code
		return &CheckExitError{Code: result.ExitCode}
	}
	return nil
}

func outputCheckText(result *CheckResult) {
	if result.Passed {
		fmt.Println("PASS: All fidelity checks passed")
		if checkVerbose && result.Summary != nil {
			fmt.Printf("  Components matched: %d/%d\n",
				result.Summary.MatchedComponents, result.Summary.TotalComponents)
			fmt.Printf("  Deviations: %d high, %d medium, %d low\n",
				result.Summary.HighSeverity, result.Summary.MediumSeverity, result.Summary.LowSeverity)
			fmt.Printf("  Duration: %dms\n", result.Duration)
		}
		return
	}

	fmt.Println("FAIL: Fidelity check failed")
	fmt.Printf("  Violations: %d\n", len(result.Violations))
	for _, v := range result.Violations {
		fmt.Printf("  [%s] %s (actual: %s, threshold: %s)\n",
			v.Rule, v.Message, v.Actual, v.Threshold)
	}
}
