package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"question-bank-service/internal/domain"
)

// ImportService pulls questions from external feeds into the bank and
// keeps the facet directories in step with what the imported questions
// reference.
type ImportService struct {
	store  domain.QuestionStore
	facets map[domain.FacetKind]domain.FacetStore
	feeds  []domain.QuestionFeed
	logger *zap.Logger
}

// NewImportService creates a new ImportService.
func NewImportService(
	store domain.QuestionStore,
	facetStores []domain.FacetStore,
	feeds []domain.QuestionFeed,
	logger *zap.Logger,
) *ImportService {
	byKind := make(map[domain.FacetKind]domain.FacetStore, len(facetStores))
	for _, s := range facetStores {
		byKind[s.Kind()] = s
	}

	return &ImportService{
		store:  store,
		facets: byKind,
		feeds:  feeds,
		logger: logger,
	}
}

// ImportResult holds the result of importing one feed.
type ImportResult struct {
	Feed     string
	Count    int
	Duration time.Duration
	Error    error
}

// Feeds returns the configured feeds.
func (s *ImportService) Feeds() []domain.QuestionFeed {
	return s.feeds
}

// ImportAll imports from all feeds concurrently. Partial failures are
// allowed; each feed gets its own result.
func (s *ImportService) ImportAll(ctx context.Context) []ImportResult {
	results := make([]ImportResult, len(s.feeds))
	var wg sync.WaitGroup

	s.logger.Info("starting import from all feeds", zap.Int("feed_count", len(s.feeds)))

	for i, feed := range s.feeds {
		wg.Add(1)
		go func(idx int, f domain.QuestionFeed) {
			defer wg.Done()
			results[idx] = s.importFeed(ctx, f)
		}(i, feed)
	}

	wg.Wait()

	imported, failed := 0, 0
	for _, r := range results {
		if r.Error != nil {
			failed++
		} else {
			imported += r.Count
		}
	}

	s.logger.Info("import completed",
		zap.Int("total_imported", imported),
		zap.Int("feeds_failed", failed),
	)

	return results
}

// importFeed fetches and stores the question set of a single feed.
func (s *ImportService) importFeed(ctx context.Context, feed domain.QuestionFeed) ImportResult {
	start := time.Now()
	result := ImportResult{Feed: feed.Name()}

	questions, err := feed.Fetch(ctx)
	if err != nil {
		result.Error = err
		result.Duration = time.Since(start)
		s.logger.Warn("feed fetch failed",
			zap.String("feed", feed.Name()),
			zap.Error(err),
		)
		return result
	}

	if len(questions) > 0 {
		if err := s.store.BulkUpsert(ctx, questions); err != nil {
			result.Error = err
			result.Duration = time.Since(start)
			s.logger.Error("question upsert failed",
				zap.String("feed", feed.Name()),
				zap.Error(err),
			)
			return result
		}

		s.syncFacets(ctx, questions)
	}

	result.Count = len(questions)
	result.Duration = time.Since(start)

	s.logger.Info("feed import completed",
		zap.String("feed", feed.Name()),
		zap.Int("count", result.Count),
		zap.Duration("duration", result.Duration),
	)

	return result
}

// syncFacets upserts every facet entry the imported questions mention.
// Directory failures are logged but do not fail the import: questions
// already landed, and the resolver passes unknown tokens through.
func (s *ImportService) syncFacets(ctx context.Context, questions []*domain.Question) {
	for kind, facets := range collectFacets(questions) {
		store, ok := s.facets[kind]
		if !ok || len(facets) == 0 {
			continue
		}
		if err := store.Upsert(ctx, facets); err != nil {
			s.logger.Warn("facet directory sync failed",
				zap.String("kind", string(kind)),
				zap.Error(err),
			)
		}
	}
}

// collectFacets extracts the distinct facet entries referenced by the
// questions, keyed by kind. Entries missing either side are skipped.
func collectFacets(questions []*domain.Question) map[domain.FacetKind][]domain.Facet {
	out := make(map[domain.FacetKind][]domain.Facet)
	seen := make(map[domain.FacetKind]map[string]struct{})

	add := func(kind domain.FacetKind, id, name string) {
		if id == "" || name == "" {
			return
		}
		if seen[kind] == nil {
			seen[kind] = make(map[string]struct{})
		}
		if _, ok := seen[kind][id]; ok {
			return
		}
		seen[kind][id] = struct{}{}
		out[kind] = append(out[kind], domain.Facet{ID: id, Name: name})
	}

	for _, q := range questions {
		add(domain.FacetTopic, q.TopicID, q.TopicName)
		add(domain.FacetLanguage, q.LanguageID, q.LanguageName)
		add(domain.FacetPosition, q.PositionID, q.PositionName)
	}

	return out
}
