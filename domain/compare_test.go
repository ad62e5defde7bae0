package domain

import "testing"

func sampleRecord() ComparisonRecord {
	element := ImplementationElement{ID: "e1", Selector: ".a"}
	return ComparisonRecord{
		Component:  DesignComponent{ID: "d1", Name: "Panel", Type: "FRAME"},
		Element:    &element,
		MatchType:  MatchTypeType,
		Confidence: 0.7,
		Checks: []PropertyCheck{
			{Outcome: OutcomeMatch, Category: "colors", Property: "background"},
			{Outcome: OutcomeDeviation, Category: "colors", Property: "text", Severity: SeverityHigh},
			{Outcome: OutcomeDeviation, Category: "spacing", Property: "paddingTop", Severity: SeverityLow},
			{Outcome: OutcomeUnfetched, Category: "typography", Property: "fontFamily"},
		},
	}
}

func TestComparisonRecord_Matched(t *testing.T) {
	record := sampleRecord()
	if !record.Matched() {
		t.Error("Expected record with element and match type to be matched")
	}

	record.MatchType = MatchTypeNone
	if record.Matched() {
		t.Error("Expected match type none to be unmatched")
	}

	record = sampleRecord()
	record.Element = nil
	if record.Matched() {
		t.Error("Expected record without element to be unmatched")
	}
}

func TestComparisonRecord_ChecksByOutcome(t *testing.T) {
	record := sampleRecord()

	if got := len(record.Matches()); got != 1 {
		t.Errorf("Expected 1 match, got %d", got)
	}
	if got := len(record.Deviations()); got != 2 {
		t.Errorf("Expected 2 deviations, got %d", got)
	}
	if got := len(record.Unfetched()); got != 1 {
		t.Errorf("Expected 1 unfetched, got %d", got)
	}
}

func TestCategorySchema_Bucket(t *testing.T) {
	schema := NewCategorySchema()

	bucket := schema.Bucket(LevelAtoms, "buttons")
	bucket.DesignColumn = append(bucket.DesignColumn, CategoryItem{ID: "d1"})

	// same bucket on repeat lookup
	again := schema.Bucket(LevelAtoms, "buttons")
	if len(again.DesignColumn) != 1 {
		t.Error("Expected Bucket to return the existing bucket")
	}
}

func TestCategorySchema_TotalBucketed(t *testing.T) {
	schema := NewCategorySchema()
	schema.Bucket(LevelAtoms, "buttons").DesignColumn = []CategoryItem{{ID: "d1"}, {ID: "d2"}}
	schema.Bucket(LevelOrganisms, "headers").ImplementationColumn = []CategoryItem{{ID: "e1"}}

	if got := schema.TotalBucketed(); got != 3 {
		t.Errorf("Expected 3 bucketed items, got %d", got)
	}
}

func TestNewCategorySchema_AllLevelsPresent(t *testing.T) {
	schema := NewCategorySchema()
	for _, level := range AtomicLevels {
		if _, ok := schema.Levels[level]; !ok {
			t.Errorf("Expected level %s to be initialized", level)
		}
	}
}

func TestDesignToken_UsageCount(t *testing.T) {
	token := DesignToken{
		Category: TokenCategoryColors,
		Value:    "#ff0000",
		Sources: []TokenSource{
			{Source: TokenSourceDesign, ComponentID: "d1"},
			{Source: TokenSourceImplementation, Selector: ".a"},
		},
	}
	if token.UsageCount() != 2 {
		t.Errorf("Expected usage count 2, got %d", token.UsageCount())
	}
}

func TestCategoryBucket_Count(t *testing.T) {
	bucket := CategoryBucket{
		DesignColumn:         []CategoryItem{{ID: "d1"}},
		ImplementationColumn: []CategoryItem{{ID: "e1"}, {ID: "e2"}},
	}
	if bucket.Count() != 3 {
		t.Errorf("Expected count 3, got %d", bucket.Count())
	}
}
