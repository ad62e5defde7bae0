package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/uilens/uilens/domain"
	"github.com/uilens/uilens/internal/analyzer"
	"github.com/uilens/uilens/internal/version"
)

// CompareServiceImpl implements the domain.CompareService interface
type CompareServiceImpl struct {
	progress domain.ProgressManager
}

// NewCompareService creates a new comparison service
func NewCompareService() *CompareServiceImpl {
	return &CompareServiceImpl{}
}

// NewCompareServiceWithProgress creates a comparison service with progress tracking
func NewCompareServiceWithProgress(pm domain.ProgressManager) *CompareServiceImpl {
	return &CompareServiceImpl{progress: pm}
}

// Compare matches design components against implementation elements and
// compares the properties of every matched pair. Thresholds come from the
// request, so concurrent runs under different profiles never interfere.
func (s *CompareServiceImpl) Compare(ctx context.Context, req domain.CompareRequest) (*domain.ComparisonResult, error) {
	startTime := time.Now()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("comparison cancelled: %w", ctx.Err())
	default:
	}

	design, impl, warnings := FilterMalformed(req.Design, req.Implementation)

	scorers := scorerConfigFromRequest(&req)
	matcherCfg := matcherConfigFromRequest(&req, scorers)

	matcher := analyzer.NewComponentMatcher(matcherCfg, scorers)
	comparator := analyzer.NewPropertyComparator(scorers)

	var task domain.TaskProgress
	if s.progress != nil {
		task = s.progress.StartTask("Comparing components", len(design))
		defer task.Complete()
	}

	records := matcher.Match(design, impl)
	for i := range records {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("comparison cancelled: %w", ctx.Err())
		default:
		}

		record := &records[i]
		if record.Matched() {
			record.Checks = comparator.Compare(&record.Component, record.Element)
		}
		if task != nil {
			task.Increment(1)
		}
	}

	sortRecords(records, req.SortBy)

	builder := analyzer.NewSummaryBuilder()
	result := &domain.ComparisonResult{
		Metadata: domain.ComparisonMetadata{
			GeneratedAt:         time.Now().Format(time.RFC3339),
			Version:             version.GetVersion(),
			DurationMs:          time.Since(startTime).Milliseconds(),
			DesignCount:         len(design),
			ImplementationCount: len(impl),
		},
		Comparisons:        records,
		ColorAnalysis:      builder.BuildColorAnalysis(design, impl),
		TypographyAnalysis: builder.BuildTypographyAnalysis(design, impl),
		Summary:            builder.Build(records),
		Warnings:           warnings,
	}

	// The summary always reflects the full comparison; the severity floor
	// only trims what the record list reports
	if req.MinSeverity != "" {
		filterBySeverity(result.Comparisons, req.MinSeverity)
	}

	return result, nil
}

// filterBySeverity drops deviation checks below the given severity floor
func filterBySeverity(records []domain.ComparisonRecord, min domain.Severity) {
	floor := severityOrder(min)
	for i := range records {
		kept := records[i].Checks[:0]
		for _, check := range records[i].Checks {
			if check.Outcome == domain.OutcomeDeviation && severityOrder(check.Severity) < floor {
				continue
			}
			kept = append(kept, check)
		}
		records[i].Checks = kept
	}
}

func severityOrder(s domain.Severity) int {
	switch s {
	case domain.SeverityHigh:
		return 2
	case domain.SeverityMedium:
		return 1
	default:
		return 0
	}
}

// FilterMalformed drops input items missing their identifying fields.
// Skipped items are reported as warnings so an upstream extraction bug
// stays visible.
func FilterMalformed(design []domain.DesignComponent, impl []domain.ImplementationElement) ([]domain.DesignComponent, []domain.ImplementationElement, []string) {
	var warnings []string

	keptDesign := make([]domain.DesignComponent, 0, len(design))
	for i, c := range design {
		if c.ID == "" || c.Type == "" {
			warnings = append(warnings, fmt.Sprintf("skipping design component at index %d: missing id or type", i))
			continue
		}
		keptDesign = append(keptDesign, c)
	}

	keptImpl := make([]domain.ImplementationElement, 0, len(impl))
	for i, e := range impl {
		if e.ID == "" && e.Selector == "" {
			warnings = append(warnings, fmt.Sprintf("skipping implementation element at index %d: missing id and selector", i))
			continue
		}
		keptImpl = append(keptImpl, e)
	}

	return keptDesign, keptImpl, warnings
}

// sortRecords orders comparison records for output. The default
// (confidence) keeps matcher order for equal confidences.
func sortRecords(records []domain.ComparisonRecord, sortBy domain.SortCriteria) {
	switch sortBy {
	case domain.SortByName:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Component.Name < records[j].Component.Name
		})
	case domain.SortBySeverity:
		sort.SliceStable(records, func(i, j int) bool {
			return severityRank(records[i]) > severityRank(records[j])
		})
	case domain.SortByConfidence:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Confidence > records[j].Confidence
		})
	}
}

// severityRank scores a record by its worst deviation
func severityRank(r domain.ComparisonRecord) int {
	rank := 0
	for _, check := range r.Checks {
		if check.Outcome != domain.OutcomeDeviation {
			continue
		}
		switch check.Severity {
		case domain.SeverityHigh:
			if rank < 3 {
				rank = 3
			}
		case domain.SeverityMedium:
			if rank < 2 {
				rank = 2
			}
		case domain.SeverityLow:
			if rank < 1 {
				rank = 1
			}
		}
	}
	return rank
}

// scorerConfigFromRequest applies request thresholds over the defaults
func scorerConfigFromRequest(req *domain.CompareRequest) *analyzer.ScorerConfig {
	cfg := analyzer.DefaultScorerConfig()
	if req.ColorDistanceThreshold > 0 {
		cfg.ColorDistanceThreshold = req.ColorDistanceThreshold
	}
	if req.TextSimilarityFloor > 0 {
		cfg.TextSimilarityFloor = req.TextSimilarityFloor
	}
	if req.SizeTolerance > 0 {
		cfg.SizeTolerance = req.SizeTolerance
	}
	if req.SpacingTolerance > 0 {
		cfg.SpacingTolerance = req.SpacingTolerance
	}
	if req.FontSizeTolerance > 0 {
		cfg.FontSizeTolerance = req.FontSizeTolerance
	}
	return cfg
}

// matcherConfigFromRequest applies request thresholds over the defaults
func matcherConfigFromRequest(req *domain.CompareRequest, scorers *analyzer.ScorerConfig) *analyzer.MatcherConfig {
	cfg := analyzer.DefaultMatcherConfig()
	if req.AcceptanceFloor > 0 {
		cfg.AcceptanceFloor = req.AcceptanceFloor
	}
	cfg.PositionTolerance = scorers.SizeTolerance
	return cfg
}
