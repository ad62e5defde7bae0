package service

import (
	"context"
	"strings"
	"testing"

	"github.com/uilens/uilens/domain"
	"github.com/uilens/uilens/internal/testutil"
)

func TestCompareService_Basic(t *testing.T) {
	svc := NewCompareService()

	req := domain.CompareRequest{
		Design: []domain.DesignComponent{
			testutil.TextComponent("d1", "Sign up"),
			testutil.FrameComponent("d2", "Sidebar", 3),
		},
		Implementation: []domain.ImplementationElement{
			testutil.TextElement("e1", ".signup", "Sign up"),
		},
	}

	result, err := svc.Compare(context.Background(), req)
	testutil.AssertNoError(t, err)

	if len(result.Comparisons) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(result.Comparisons))
	}
	if result.Summary.TotalComponents != 2 {
		t.Errorf("Expected 2 total components, got %d", result.Summary.TotalComponents)
	}
	if result.Summary.MatchedComponents != 1 {
		t.Errorf("Expected 1 matched component, got %d", result.Summary.MatchedComponents)
	}
	if result.Metadata.DesignCount != 2 || result.Metadata.ImplementationCount != 1 {
		t.Errorf("Expected metadata counts 2/1, got %d/%d",
			result.Metadata.DesignCount, result.Metadata.ImplementationCount)
	}
	if result.Metadata.GeneratedAt == "" || result.Metadata.Version == "" {
		t.Error("Expected metadata timestamp and version to be set")
	}
}

func TestCompareService_MalformedInputsSkippedWithWarnings(t *testing.T) {
	svc := NewCompareService()

	req := domain.CompareRequest{
		Design: []domain.DesignComponent{
			testutil.TextComponent("d1", "Valid"),
			{ID: "", Type: ""},
			{ID: "d3", Type: ""},
		},
		Implementation: []domain.ImplementationElement{
			testutil.TextElement("e1", ".a", "Valid"),
			{ID: "", Selector: ""},
		},
	}

	result, err := svc.Compare(context.Background(), req)
	testutil.AssertNoError(t, err)

	if len(result.Comparisons) != 1 {
		t.Errorf("Expected malformed components to be skipped, got %d records", len(result.Comparisons))
	}
	if len(result.Warnings) != 3 {
		t.Fatalf("Expected 3 warnings, got %d", len(result.Warnings))
	}
	for _, warning := range result.Warnings {
		if !strings.Contains(warning, "skipping") {
			t.Errorf("Expected skip warning, got %q", warning)
		}
	}
}

func TestCompareService_CancelledContext(t *testing.T) {
	svc := NewCompareService()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Compare(ctx, domain.CompareRequest{
		Design: []domain.DesignComponent{testutil.TextComponent("d1", "x")},
	})
	testutil.AssertError(t, err)
}

func TestCompareService_SortByName(t *testing.T) {
	svc := NewCompareService()

	req := domain.CompareRequest{
		Design: []domain.DesignComponent{
			testutil.TextComponent("d1", "Zebra"),
			testutil.TextComponent("d2", "Apple"),
		},
		SortBy: domain.SortByName,
	}

	result, err := svc.Compare(context.Background(), req)
	testutil.AssertNoError(t, err)

	if result.Comparisons[0].Component.Name != "Apple" {
		t.Errorf("Expected Apple first, got %s", result.Comparisons[0].Component.Name)
	}
}

func TestCompareService_RequestThresholdsOverrideDefaults(t *testing.T) {
	svc := NewCompareService()

	// a color 30 apart in one channel: deviation by default, match with
	// a widened threshold
	design := []domain.DesignComponent{
		{
			ID:   "d1",
			Name: "Panel",
			Type: "FRAME",
			Properties: domain.DesignProperties{
				Colors: &domain.ColorProperties{Background: "#ff0000"},
			},
		},
	}
	impl := []domain.ImplementationElement{
		testutil.StyledElement("e1", ".panel", "div", "container", map[string]string{
			"backgroundColor": "#e10000",
		}),
	}

	strict, err := svc.Compare(context.Background(), domain.CompareRequest{
		Design: design, Implementation: impl,
	})
	testutil.AssertNoError(t, err)

	relaxed, err := svc.Compare(context.Background(), domain.CompareRequest{
		Design: design, Implementation: impl,
		ColorDistanceThreshold: 50,
	})
	testutil.AssertNoError(t, err)

	if strict.Summary.TotalDeviations == 0 {
		t.Error("Expected a deviation under the default threshold")
	}
	if relaxed.Summary.TotalDeviations != 0 {
		t.Errorf("Expected no deviations under the widened threshold, got %d",
			relaxed.Summary.TotalDeviations)
	}
}

func TestCompareService_MinSeverityTrimsRecords(t *testing.T) {
	svc := NewCompareService()

	design := []domain.DesignComponent{
		{
			ID:   "d1",
			Name: "Panel",
			Type: "FRAME",
			Properties: domain.DesignProperties{
				Colors:  &domain.ColorProperties{Background: "#ff0000"},
				Spacing: &domain.SpacingProperties{PaddingTop: 10},
			},
		},
	}
	impl := []domain.ImplementationElement{
		testutil.StyledElement("e1", ".panel", "div", "container", map[string]string{
			"backgroundColor": "#ff0a0a",
			"paddingTop":      "10px",
		}),
	}

	result, err := svc.Compare(context.Background(), domain.CompareRequest{
		Design: design, Implementation: impl,
		MinSeverity: domain.SeverityHigh,
	})
	testutil.AssertNoError(t, err)

	// The low-severity color deviation is trimmed from the record while
	// the summary still counts it
	if result.Summary.TotalDeviations != 1 {
		t.Errorf("Expected summary to keep the deviation, got %d", result.Summary.TotalDeviations)
	}
	for _, record := range result.Comparisons {
		for _, check := range record.Checks {
			if check.Outcome == domain.OutcomeDeviation {
				t.Errorf("Expected low-severity deviation trimmed, found %s/%s", check.Category, check.Property)
			}
		}
	}
}

func TestFilterMalformed(t *testing.T) {
	design := []domain.DesignComponent{
		{ID: "d1", Type: "TEXT"},
		{ID: "", Type: "TEXT"},
		{ID: "d3", Type: ""},
	}
	impl := []domain.ImplementationElement{
		{ID: "e1", Selector: ".a"},
		{ID: "", Selector: ".b"},
		{ID: "", Selector: ""},
	}

	keptDesign, keptImpl, warnings := FilterMalformed(design, impl)

	if len(keptDesign) != 1 {
		t.Errorf("Expected 1 kept component, got %d", len(keptDesign))
	}
	// an element with a selector but no id is still addressable
	if len(keptImpl) != 2 {
		t.Errorf("Expected 2 kept elements, got %d", len(keptImpl))
	}
	if len(warnings) != 3 {
		t.Errorf("Expected 3 warnings, got %d", len(warnings))
	}
}
