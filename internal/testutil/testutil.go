// Package testutil provides helper functions for testing uilens components
package testutil

import (
	"testing"

	"github.com/uilens/uilens/domain"
)

// TextComponent builds a design text node with the given content
func TextComponent(id, text string) domain.DesignComponent {
	return domain.DesignComponent{
		ID:   id,
		Name: text,
		Type: "TEXT",
		Properties: domain.DesignProperties{
			Typography: &domain.TypographyProperties{Text: text},
		},
	}
}

// FrameComponent builds a design frame with the given name and depth
func FrameComponent(id, name string, depth int) domain.DesignComponent {
	return domain.DesignComponent{
		ID:    id,
		Name:  name,
		Type:  "FRAME",
		Depth: depth,
	}
}

// TextElement builds an implementation text element
func TextElement(id, selector, text string) domain.ImplementationElement {
	return domain.ImplementationElement{
		ID:       id,
		Selector: selector,
		TagName:  "span",
		Type:     "text",
		Text:     text,
	}
}

// StyledElement builds an implementation element with the given styles
func StyledElement(id, selector, tagName, elementType string, styles map[string]string) domain.ImplementationElement {
	return domain.ImplementationElement{
		ID:       id,
		Selector: selector,
		TagName:  tagName,
		Type:     elementType,
		Styles:   styles,
	}
}

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertEqual fails the test if expected != actual
func AssertEqual(t *testing.T, expected, actual any) {
	t.Helper()
	if expected != actual {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}

// AssertTrue fails the test if condition is false
func AssertTrue(t *testing.T, condition bool, msg string) {
	t.Helper()
	if !condition {
		t.Error(msg)
	}
}
