package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"question-bank-service/internal/domain"
)

// CachedFacetLookup decorates a FacetLookup with a cache. Facet
// directories are tiny and change only on feed imports, so resolutions
// are cheap to cache; and since resolution is best-effort anyway, every
// cache failure silently falls through to the inner lookup.
type CachedFacetLookup struct {
	inner  domain.FacetLookup
	cache  domain.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedFacetLookup wraps lookup with cache. A nil cache returns the
// lookup unchanged.
func NewCachedFacetLookup(lookup domain.FacetLookup, cache domain.Cache, ttl time.Duration, logger *zap.Logger) domain.FacetLookup {
	if cache == nil {
		return lookup
	}

	return &CachedFacetLookup{
		inner:  lookup,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

// Kind returns the facet dimension of the wrapped lookup.
func (l *CachedFacetLookup) Kind() domain.FacetKind {
	return l.inner.Kind()
}

// ByID resolves an identifier, consulting the cache first.
func (l *CachedFacetLookup) ByID(ctx context.Context, id string) (*domain.Facet, error) {
	return l.cached(ctx, fmt.Sprintf("facet:%s:id:%s", l.Kind(), id), func() (*domain.Facet, error) {
		return l.inner.ByID(ctx, id)
	})
}

// ByName resolves a name, consulting the cache first. The key folds
// case because the directory match is case-insensitive.
func (l *CachedFacetLookup) ByName(ctx context.Context, name string) (*domain.Facet, error) {
	return l.cached(ctx, fmt.Sprintf("facet:%s:name:%s", l.Kind(), strings.ToLower(name)), func() (*domain.Facet, error) {
		return l.inner.ByName(ctx, name)
	})
}

// cached reads the key, falling back to load on miss or cache error,
// and stores a fresh hit. Negative results are not cached: the next
// import may introduce the entry.
func (l *CachedFacetLookup) cached(ctx context.Context, key string, load func() (*domain.Facet, error)) (*domain.Facet, error) {
	if data, err := l.cache.Get(ctx, key); err == nil && data != nil {
		var f domain.Facet
		if err := json.Unmarshal(data, &f); err == nil {
			return &f, nil
		}
		l.logger.Warn("corrupt facet cache entry, dropping", zap.String("key", key))
		_ = l.cache.Delete(ctx, key)
	}

	f, err := load()
	if err != nil || f == nil {
		return f, err
	}

	if data, err := json.Marshal(f); err == nil {
		if err := l.cache.Set(ctx, key, data, l.ttl); err != nil {
			l.logger.Debug("facet cache set failed", zap.String("key", key), zap.Error(err))
		}
	}

	return f, nil
}
