package app

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/uilens/uilens/domain"
	"github.com/uilens/uilens/service"
)

// AuditConfig holds configuration for the audit use case
type AuditConfig struct {
	EnableComparison bool
	EnableTokens     bool
	EnableCategories bool

	// Output options
	OutputFormat domain.OutputFormat
	OutputWriter io.Writer
	OutputPath   string
	ShowDetails  bool
	SortBy       domain.SortCriteria
	MinSeverity  domain.Severity

	// Comparison thresholds; zero values fall back to defaults
	ColorDistanceThreshold float64
	TextSimilarityFloor    float64
	AcceptanceFloor        float64
	SizeTolerance          float64
	SpacingTolerance       float64
	FontSizeTolerance      float64
}

// DefaultAuditConfig returns default configuration
func DefaultAuditConfig() AuditConfig {
	return AuditConfig{
		EnableComparison: true,
		EnableTokens:     true,
		EnableCategories: true,
		OutputFormat:     domain.OutputFormatText,
		SortBy:           domain.SortByConfidence,
	}
}

// AuditUseCase orchestrates the comparison, token and categorization analyses
type AuditUseCase struct {
	compareService    domain.CompareService
	tokenService      domain.TokenService
	categorizeService domain.CategorizeService
	executor          *service.ParallelExecutorImpl
}

// NewAuditUseCase creates a new audit use case
func NewAuditUseCase(
	compareService domain.CompareService,
	tokenService domain.TokenService,
	categorizeService domain.CategorizeService,
	executor *service.ParallelExecutorImpl,
) *AuditUseCase {
	if executor == nil {
		executor = service.NewParallelExecutor()
	}
	return &AuditUseCase{
		compareService:    compareService,
		tokenService:      tokenService,
		categorizeService: categorizeService,
		executor:          executor,
	}
}

// AuditResult holds the results of a full audit run
type AuditResult struct {
	Comparison *domain.ComparisonResult
	Tokens     *domain.TokenResponse
	Categories *domain.CategorizeResponse
	Duration   time.Duration
}

// auditTask adapts a closure to the ExecutableTask interface
type auditTask struct {
	name    string
	enabled bool
	run     func(ctx context.Context) (any, error)
}

func (t *auditTask) Name() string { return t.name }

func (t *auditTask) Execute(ctx context.Context) (any, error) { return t.run(ctx) }

func (t *auditTask) IsEnabled() bool { return t.enabled }

// Execute runs the enabled analyses concurrently and merges their results
func (uc *AuditUseCase) Execute(
	ctx context.Context,
	config AuditConfig,
	design []domain.DesignComponent,
	implementation []domain.ImplementationElement,
) (*AuditResult, error) {
	if !config.EnableComparison && !config.EnableTokens && !config.EnableCategories {
		return nil, domain.NewValidationError("no analyses selected")
	}

	startTime := time.Now()
	result := &AuditResult{}

	// Each task writes a distinct field, guarded for the race detector
	var mu sync.Mutex

	tasks := []domain.ExecutableTask{
		&auditTask{
			name:    "comparison",
			enabled: config.EnableComparison && uc.compareService != nil,
			run: func(ctx context.Context) (any, error) {
				res, err := uc.compareService.Compare(ctx, uc.buildCompareRequest(config, design, implementation))
				if err != nil {
					return nil, err
				}
				mu.Lock()
				result.Comparison = res
				mu.Unlock()
				return res, nil
			},
		},
		&auditTask{
			name:    "tokens",
			enabled: config.EnableTokens && uc.tokenService != nil,
			run: func(ctx context.Context) (any, error) {
				res, err := uc.tokenService.Extract(ctx, domain.TokenRequest{
					Design:         design,
					Implementation: implementation,
				})
				if err != nil {
					return nil, err
				}
				mu.Lock()
				result.Tokens = res
				mu.Unlock()
				return res, nil
			},
		},
		&auditTask{
			name:    "categories",
			enabled: config.EnableCategories && uc.categorizeService != nil,
			run: func(ctx context.Context) (any, error) {
				res, err := uc.categorizeService.Categorize(ctx, domain.CategorizeRequest{
					Design:         design,
					Implementation: implementation,
				})
				if err != nil {
					return nil, err
				}
				mu.Lock()
				result.Categories = res
				mu.Unlock()
				return res, nil
			},
		},
	}

	if err := uc.executor.Execute(ctx, tasks); err != nil {
		return nil, domain.NewAnalysisError("audit failed", err)
	}

	result.Duration = time.Since(startTime)
	return result, nil
}

// buildCompareRequest assembles the comparison request from audit config
func (uc *AuditUseCase) buildCompareRequest(
	config AuditConfig,
	design []domain.DesignComponent,
	implementation []domain.ImplementationElement,
) domain.CompareRequest {
	return domain.CompareRequest{
		Design:         design,
		Implementation: implementation,

		OutputFormat: config.OutputFormat,
		OutputWriter: config.OutputWriter,
		OutputPath:   config.OutputPath,
		ShowDetails:  config.ShowDetails,
		SortBy:       config.SortBy,
		MinSeverity:  config.MinSeverity,

		ColorDistanceThreshold: config.ColorDistanceThreshold,
		TextSimilarityFloor:    config.TextSimilarityFloor,
		AcceptanceFloor:        config.AcceptanceFloor,
		SizeTolerance:          config.SizeTolerance,
		SpacingTolerance:       config.SpacingTolerance,
		FontSizeTolerance:      config.FontSizeTolerance,
	}
}

// AuditUseCaseBuilder builds an AuditUseCase
type AuditUseCaseBuilder struct {
	compareService    domain.CompareService
	tokenService      domain.TokenService
	categorizeService domain.CategorizeService
	executor          *service.ParallelExecutorImpl
}

// NewAuditUseCaseBuilder creates a new builder
func NewAuditUseCaseBuilder() *AuditUseCaseBuilder {
	return &AuditUseCaseBuilder{}
}

// WithCompareService sets the comparison service
func (b *AuditUseCaseBuilder) WithCompareService(s domain.CompareService) *AuditUseCaseBuilder {
	b.compareService = s
	return b
}

// WithTokenService sets the token service
func (b *AuditUseCaseBuilder) WithTokenService(s domain.TokenService) *AuditUseCaseBuilder {
	b.tokenService = s
	return b
}

// WithCategorizeService sets the categorization service
func (b *AuditUseCaseBuilder) WithCategorizeService(s domain.CategorizeService) *AuditUseCaseBuilder {
	b.categorizeService = s
	return b
}

// WithExecutor sets the parallel executor
func (b *AuditUseCaseBuilder) WithExecutor(e *service.ParallelExecutorImpl) *AuditUseCaseBuilder {
	b.executor = e
	return b
}

// Build creates the AuditUseCase with the configured dependencies
func (b *AuditUseCaseBuilder) Build() (*AuditUseCase, error) {
	if b.compareService == nil && b.tokenService == nil && b.categorizeService == nil {
		return nil, fmt.Errorf("at least one service is required")
	}
	return NewAuditUseCase(b.compareService, b.tokenService, b.categorizeService, b.executor), nil
}
