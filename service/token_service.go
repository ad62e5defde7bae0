package service

import (
	"context"
	"fmt"
	"time"

	"github.com/uilens/uilens/domain"
	"github.com/uilens/uilens/internal/analyzer"
	"github.com/uilens/uilens/internal/version"
)

// TokenServiceImpl implements the domain.TokenService interface
type TokenServiceImpl struct{}

// NewTokenService creates a new token extraction service
func NewTokenService() *TokenServiceImpl {
	return &TokenServiceImpl{}
}

// Extract clusters repeated style values across both sides into
// deduplicated tokens with usage provenance
func (s *TokenServiceImpl) Extract(ctx context.Context, req domain.TokenRequest) (*domain.TokenResponse, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("token extraction cancelled: %w", ctx.Err())
	default:
	}

	design, impl, warnings := FilterMalformed(req.Design, req.Implementation)

	extractor := analyzer.NewTokenExtractor()
	tokens := extractor.Extract(design, impl)

	return &domain.TokenResponse{
		Tokens:      tokens,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Version:     version.GetVersion(),
		Warnings:    warnings,
	}, nil
}
