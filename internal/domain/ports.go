package domain

import (
	"context"
	"time"
)

// QuestionStore defines the document-store operations the search core
// consumes. The store is read-mostly from the core's perspective;
// BulkUpsert exists for the feed importer only.
// Implementations: internal/infra/postgres/repository.go
type QuestionStore interface {
	// Count returns the number of questions matching the predicate.
	Count(ctx context.Context, pred Predicate) (int64, error)

	// Find returns all questions matching the predicate in store
	// order. Used by the sampler's in-memory shuffle path, whose input
	// size is bounded by the shuffle threshold.
	Find(ctx context.Context, pred Predicate) ([]*Question, error)

	// FindSorted returns a page of matching questions in a
	// deterministic order with a stable creation-time tie-break.
	FindSorted(ctx context.Context, pred Predicate, sortBy SortField, order SortOrder, skip, limit int) ([]*Question, error)

	// Sample returns up to size matching questions drawn by the
	// store's native randomized primitive.
	Sample(ctx context.Context, pred Predicate, size int) ([]*Question, error)

	// GetByID retrieves a single question. Not found is (nil, nil).
	GetByID(ctx context.Context, id string) (*Question, error)

	// BulkUpsert creates or updates questions in a batch, keyed by ID.
	BulkUpsert(ctx context.Context, questions []*Question) error
}

// FacetLookup resolves one facet directory in both directions.
// Not found is (nil, nil); an error means the directory was
// unavailable.
// Implementations: internal/infra/postgres/facet_repo.go
type FacetLookup interface {
	// Kind returns the facet dimension this lookup serves.
	Kind() FacetKind

	// ByID retrieves the facet entry for a canonical identifier.
	ByID(ctx context.Context, id string) (*Facet, error)

	// ByName retrieves the facet entry whose name matches
	// case-insensitively.
	ByName(ctx context.Context, name string) (*Facet, error)
}

// FacetStore is a writable facet directory. List backs the facet
// listing endpoint; Upsert is used by the feed importer.
type FacetStore interface {
	FacetLookup

	// List returns all entries of the directory ordered by name.
	List(ctx context.Context) ([]Facet, error)

	// Upsert creates or updates directory entries, keyed by ID.
	Upsert(ctx context.Context, facets []Facet) error
}

// Cache defines the interface for caching operations. The search core
// never caches result sets; the only cached data is facet resolutions,
// which are best-effort anyway.
// Implementations: internal/infra/redis/cache.go
type Cache interface {
	// Get retrieves a value by key. Returns nil if not found.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value by key.
	Delete(ctx context.Context, key string) error
}

// QuestionFeed defines the interface for external question sources.
// Implementations: internal/infra/feed/client.go
type QuestionFeed interface {
	// Name returns the unique identifier for this feed.
	Name() string

	// Fetch retrieves the feed's current question set.
	Fetch(ctx context.Context) ([]*Question, error)

	// HealthCheck verifies the feed is accessible.
	HealthCheck(ctx context.Context) error
}
