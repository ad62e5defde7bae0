package service

import (
	"context"
	"testing"

	"github.com/uilens/uilens/domain"
	"github.com/uilens/uilens/internal/testutil"
)

func TestTokenService_Extract(t *testing.T) {
	svc := NewTokenService()

	design := []domain.DesignComponent{
		{
			ID:   "d1",
			Name: "Button",
			Type: "COMPONENT",
			Properties: domain.DesignProperties{
				Colors: &domain.ColorProperties{Background: "#FF0000"},
			},
		},
	}
	implementation := []domain.ImplementationElement{
		testutil.StyledElement("e1", ".btn", "button", "button", map[string]string{
			"backgroundColor": "rgb(255, 0, 0)",
		}),
	}

	response, err := svc.Extract(context.Background(), domain.TokenRequest{
		Design:         design,
		Implementation: implementation,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	colors := response.Tokens[domain.TokenCategoryColors]
	if len(colors) != 1 {
		t.Fatalf("Expected 1 deduplicated color token, got %d", len(colors))
	}
	if colors[0].UsageCount() != 2 {
		t.Errorf("Expected 2 usages across both sides, got %d", colors[0].UsageCount())
	}

	if response.GeneratedAt == "" || response.Version == "" {
		t.Error("Expected response metadata to be populated")
	}
}

func TestTokenService_CancelledContext(t *testing.T) {
	svc := NewTokenService()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Extract(ctx, domain.TokenRequest{})
	if err == nil {
		t.Error("Expected error for cancelled context")
	}
}

func TestTokenService_MalformedInputsSkipped(t *testing.T) {
	svc := NewTokenService()

	design := []domain.DesignComponent{
		{ID: "", Name: "NoID", Type: "COMPONENT"},
		testutil.TextComponent("d1", "Valid"),
	}

	response, err := svc.Extract(context.Background(), domain.TokenRequest{Design: design})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(response.Warnings) != 1 {
		t.Errorf("Expected 1 warning for malformed component, got %d", len(response.Warnings))
	}
}
