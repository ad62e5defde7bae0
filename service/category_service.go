package service

import (
	"context"
	"fmt"
	"time"

	"github.com/uilens/uilens/domain"
	"github.com/uilens/uilens/internal/analyzer"
	"github.com/uilens/uilens/internal/config"
	"github.com/uilens/uilens/internal/version"
)

// CategorizeServiceImpl implements the domain.CategorizeService interface
type CategorizeServiceImpl struct {
	config *analyzer.CategorizerConfig
}

// NewCategorizeService creates a new categorization service
func NewCategorizeService(cfg *analyzer.CategorizerConfig) *CategorizeServiceImpl {
	return &CategorizeServiceImpl{config: cfg}
}

// NewCategorizeServiceFromConfig builds the service from the main config
func NewCategorizeServiceFromConfig(cfg *config.CategoriesConfig) *CategorizeServiceImpl {
	categorizerCfg := analyzer.DefaultCategorizerConfig()
	if cfg != nil {
		if cfg.MoleculeMaxChildren > 0 {
			categorizerCfg.MoleculeMaxChildren = cfg.MoleculeMaxChildren
		}
		if cfg.LayoutMaxDepth > 0 {
			categorizerCfg.LayoutMaxDepth = cfg.LayoutMaxDepth
		}
	}
	return &CategorizeServiceImpl{config: categorizerCfg}
}

// Categorize classifies every component and element into the
// atomic-design taxonomy
func (s *CategorizeServiceImpl) Categorize(ctx context.Context, req domain.CategorizeRequest) (*domain.CategorizeResponse, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("categorization cancelled: %w", ctx.Err())
	default:
	}

	design, impl, warnings := FilterMalformed(req.Design, req.Implementation)

	categorizer := analyzer.NewAtomicCategorizer(s.config)
	schema := categorizer.Categorize(design, impl)

	return &domain.CategorizeResponse{
		Schema:      schema,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Version:     version.GetVersion(),
		Warnings:    warnings,
	}, nil
}
