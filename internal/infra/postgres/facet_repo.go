package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"question-bank-service/internal/domain"
)

// facetTables maps each facet kind to its directory table.
var facetTables = map[domain.FacetKind]string{
	domain.FacetTopic:    "topics",
	domain.FacetLanguage: "languages",
	domain.FacetPosition: "positions",
}

// FacetRepository implements domain.FacetStore for one facet kind. The
// three kinds share a row shape and differ only in table name.
type FacetRepository struct {
	db    *gorm.DB
	kind  domain.FacetKind
	table string
}

// NewFacetRepository creates a facet repository for the given kind.
func NewFacetRepository(db *gorm.DB, kind domain.FacetKind) (*FacetRepository, error) {
	table, ok := facetTables[kind]
	if !ok {
		return nil, fmt.Errorf("unknown facet kind: %q", kind)
	}

	return &FacetRepository{db: db, kind: kind, table: table}, nil
}

// NewFacetRepositories creates one repository per facet kind.
func NewFacetRepositories(db *gorm.DB) (map[domain.FacetKind]domain.FacetStore, error) {
	stores := make(map[domain.FacetKind]domain.FacetStore, len(facetTables))
	for _, kind := range domain.FacetKinds() {
		repo, err := NewFacetRepository(db, kind)
		if err != nil {
			return nil, err
		}
		stores[kind] = repo
	}

	return stores, nil
}

// Kind returns the facet kind this repository serves.
func (r *FacetRepository) Kind() domain.FacetKind {
	return r.kind
}

// ByID retrieves a facet by its identifier.
func (r *FacetRepository) ByID(ctx context.Context, id string) (*domain.Facet, error) {
	var model FacetModel
	err := r.db.WithContext(ctx).Table(r.table).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Not found
		}

		return nil, fmt.Errorf("getting %s by id: %w", r.kind, err)
	}

	facet := model.ToDomain()

	return &facet, nil
}

// ByName retrieves a facet by name, matched case-insensitively.
func (r *FacetRepository) ByName(ctx context.Context, name string) (*domain.Facet, error) {
	var model FacetModel
	err := r.db.WithContext(ctx).Table(r.table).
		Where("LOWER(name) = LOWER(?)", name).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Not found
		}

		return nil, fmt.Errorf("getting %s by name: %w", r.kind, err)
	}

	facet := model.ToDomain()

	return &facet, nil
}

// List returns all facets of this kind ordered by name.
func (r *FacetRepository) List(ctx context.Context) ([]domain.Facet, error) {
	var models []FacetModel
	err := r.db.WithContext(ctx).Table(r.table).Order("name ASC").Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.kind, err)
	}

	facets := make([]domain.Facet, len(models))
	for i := range models {
		facets[i] = models[i].ToDomain()
	}

	return facets, nil
}

// Upsert creates or updates the given facets, keyed by identifier.
func (r *FacetRepository) Upsert(ctx context.Context, facets []domain.Facet) error {
	if len(facets) == 0 {
		return nil
	}

	now := time.Now().UTC()
	models := make([]FacetModel, len(facets))
	for i, f := range facets {
		models[i] = FacetModel{ID: f.ID, Name: f.Name, UpdatedAt: now}
	}

	err := r.db.WithContext(ctx).Table(r.table).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
	}).CreateInBatches(models, 100).Error

	if err != nil {
		return fmt.Errorf("upserting %s: %w", r.kind, err)
	}

	return nil
}
