// Package service provides application use cases.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"question-bank-service/internal/domain"
)

// FacetResolver translates between a facet's human-readable name and
// its canonical identifier, for single values and comma-separated
// lists. Resolution is best-effort: a token the directory does not
// recognize, or a directory outage, passes the token through unchanged
// so the filter builder can still work with literal values.
type FacetResolver struct {
	lookup domain.FacetLookup
	logger *zap.Logger
}

// NewFacetResolver creates a resolver for one facet directory.
func NewFacetResolver(lookup domain.FacetLookup, logger *zap.Logger) *FacetResolver {
	return &FacetResolver{
		lookup: lookup,
		logger: logger,
	}
}

// Kind returns the facet dimension this resolver serves.
func (r *FacetResolver) Kind() domain.FacetKind {
	return r.lookup.Kind()
}

// Resolve fills in the missing side of an id/name pair. The id wins
// when both are given. A failed lookup never nulls out a caller-supplied
// value: when neither side matches, the original pair comes back with a
// pass-through outcome.
func (r *FacetResolver) Resolve(ctx context.Context, id, name string) domain.Resolution {
	failed := false

	if id != "" {
		f, err := r.lookup.ByID(ctx, id)
		switch {
		case err != nil:
			failed = true
			r.logger.Warn("facet lookup by id failed",
				zap.String("kind", string(r.Kind())),
				zap.String("id", id),
				zap.Error(err),
			)
		case f != nil:
			return domain.Resolution{ID: id, Name: f.Name, Outcome: domain.ResolvedByID}
		}
	}

	if name != "" {
		f, err := r.lookup.ByName(ctx, name)
		switch {
		case err != nil:
			failed = true
			r.logger.Warn("facet lookup by name failed",
				zap.String("kind", string(r.Kind())),
				zap.String("name", name),
				zap.Error(err),
			)
		case f != nil:
			return domain.Resolution{ID: f.ID, Name: name, Outcome: domain.ResolvedByName}
		}
	}

	outcome := domain.PassedThrough
	if failed {
		outcome = domain.LookupFailed
	}

	return domain.Resolution{ID: id, Name: name, Outcome: outcome}
}

// ResolveList resolves comma-separated id and name lists and returns
// the merged, deduplicated id and name lists, re-joined with commas.
// Ids are resolved first, then names; duplicates arising from overlap
// between the two channels are removed while keeping first-seen order.
func (r *FacetResolver) ResolveList(ctx context.Context, idsCSV, namesCSV string) (string, string) {
	outIDs := newOrderedSet()
	outNames := newOrderedSet()

	for _, tok := range SplitCSV(idsCSV) {
		res := r.Resolve(ctx, tok, "")
		if res.ID != "" {
			outIDs.add(res.ID)
		}
		if res.Name != "" {
			outNames.add(res.Name)
		}
	}

	for _, tok := range SplitCSV(namesCSV) {
		res := r.Resolve(ctx, "", tok)
		if res.ID != "" {
			outIDs.add(res.ID)
		}
		if res.Name != "" {
			outNames.add(res.Name)
		}
	}

	return strings.Join(outIDs.values, ","), strings.Join(outNames.values, ",")
}

// ResolverSet groups one resolver per facet kind.
type ResolverSet struct {
	resolvers map[domain.FacetKind]*FacetResolver
}

// NewResolverSet builds a ResolverSet from the given facet directories.
func NewResolverSet(lookups []domain.FacetLookup, logger *zap.Logger) *ResolverSet {
	resolvers := make(map[domain.FacetKind]*FacetResolver, len(lookups))
	for _, l := range lookups {
		resolvers[l.Kind()] = NewFacetResolver(l, logger)
	}

	return &ResolverSet{resolvers: resolvers}
}

// For returns the resolver for a facet kind, or nil when the kind has
// no directory.
func (s *ResolverSet) For(kind domain.FacetKind) *FacetResolver {
	return s.resolvers[kind]
}

// SplitCSV splits a comma-separated value into trimmed, non-empty
// tokens. Empty input yields nil.
func SplitCSV(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			tokens = append(tokens, part)
		}
	}

	return tokens
}

// orderedSet is an insertion-ordered string set. Output order is part
// of the resolver's contract, so a plain map will not do.
type orderedSet struct {
	seen   map[string]struct{}
	values []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(v string) {
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.values = append(s.values, v)
}
