package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"question-bank-service/internal/domain"
)

// SearchService orchestrates question searches: it builds the filter
// predicate, counts the matches, dispatches to the random or the
// deterministic strategy and assembles pagination metadata.
type SearchService struct {
	store   domain.QuestionStore
	sampler *Sampler
	logger  *zap.Logger
}

// NewSearchService creates a new SearchService.
func NewSearchService(store domain.QuestionStore, sampler *Sampler, logger *zap.Logger) *SearchService {
	return &SearchService{
		store:   store,
		sampler: sampler,
		logger:  logger,
	}
}

// Search returns one page of questions matching the criteria.
//
// The count and the fetch are separate store calls and are not atomic:
// the store may change between them, so the returned total can be
// stale relative to the documents. Accepted trade-off. A count failure
// propagates, since pagination metadata built on a bogus total would
// be worse than an error; a sampling failure degrades to an empty page
// inside the sampler.
func (s *SearchService) Search(ctx context.Context, criteria domain.SearchCriteria) (*domain.SearchResult, error) {
	criteria.Normalize()
	pred := BuildPredicate(criteria)

	s.logger.Debug("searching questions",
		zap.String("sort_by", string(criteria.SortBy)),
		zap.Int("page", criteria.Page),
		zap.Int("page_size", criteria.PageSize),
		zap.Int("clauses", len(pred.Clauses)),
	)

	total, err := s.store.Count(ctx, pred)
	if err != nil {
		s.logger.Error("question count failed", zap.Error(err))
		return nil, fmt.Errorf("counting questions: %w", err)
	}

	skip := domain.Skip(criteria.Page, criteria.PageSize)

	var questions []*domain.Question
	if criteria.Randomized() {
		questions = s.sampler.Sample(ctx, pred, total, skip, criteria.PageSize)
	} else {
		questions, err = s.store.FindSorted(ctx, pred, criteria.SortBy, criteria.SortOrder, skip, criteria.PageSize)
		if err != nil {
			s.logger.Error("question fetch failed", zap.Error(err))
			return nil, fmt.Errorf("searching questions: %w", err)
		}
	}

	s.logger.Debug("search completed",
		zap.Int64("total", total),
		zap.Int("count", len(questions)),
	)

	return &domain.SearchResult{
		Questions:  questions,
		Pagination: domain.NewPagination(total, criteria.Page, criteria.PageSize),
	}, nil
}

// GetByID retrieves a single question by its identifier.
func (s *SearchService) GetByID(ctx context.Context, id string) (*domain.Question, error) {
	question, err := s.store.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("get by id failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return question, nil
}
