package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"question-bank-service/internal/domain"
)

// FacetService exposes the facet directories to the transport layer.
type FacetService struct {
	stores map[domain.FacetKind]domain.FacetStore
	logger *zap.Logger
}

// NewFacetService creates a new FacetService.
func NewFacetService(stores []domain.FacetStore, logger *zap.Logger) *FacetService {
	byKind := make(map[domain.FacetKind]domain.FacetStore, len(stores))
	for _, s := range stores {
		byKind[s.Kind()] = s
	}

	return &FacetService{stores: byKind, logger: logger}
}

// List returns all entries of one facet directory ordered by name.
func (s *FacetService) List(ctx context.Context, kind domain.FacetKind) ([]domain.Facet, error) {
	store, ok := s.stores[kind]
	if !ok {
		return nil, fmt.Errorf("unknown facet kind %q", kind)
	}

	facets, err := store.List(ctx)
	if err != nil {
		s.logger.Error("facet list failed", zap.String("kind", string(kind)), zap.Error(err))
		return nil, fmt.Errorf("listing %s facets: %w", kind, err)
	}

	return facets, nil
}
