package service

import (
	"context"
	"math/rand/v2"

	"go.uber.org/zap"

	"question-bank-service/internal/domain"
)

// DefaultShuffleThreshold is the match-count boundary between the
// in-memory shuffle and the store's native random draw.
const DefaultShuffleThreshold = 1000

// Sampler draws a page-sized, uniformly-random slice of the questions
// matching a predicate.
//
// Two strategies, switched on the total match count:
//
//   - total <= threshold: fetch the whole match set, Fisher-Yates
//     shuffle it in memory and slice out [skip, skip+limit). Every page
//     is a contiguous slice of one random permutation, so pagination
//     semantics hold exactly.
//   - total > threshold: ask the store for a native random draw of
//     limit documents, ignoring skip. Consecutive pages are independent
//     draws; large collections trade exact pagination for not
//     materializing the match set.
//
// The threshold is the subsystem's one resource-control knob and is
// injected from configuration rather than hardwired.
type Sampler struct {
	store     domain.QuestionStore
	threshold int64
	intn      func(n int) int
	logger    *zap.Logger
}

// NewSampler creates a Sampler. A non-positive threshold falls back to
// DefaultShuffleThreshold.
func NewSampler(store domain.QuestionStore, threshold int, logger *zap.Logger) *Sampler {
	if threshold <= 0 {
		threshold = DefaultShuffleThreshold
	}

	return &Sampler{
		store:     store,
		threshold: int64(threshold),
		intn:      rand.IntN,
		logger:    logger,
	}
}

// Sample returns up to limit questions matching pred, drawn without
// repetition within one call. total is the caller's match count; when
// it is zero no store call is made at all.
//
// Sampling is best-effort: a store failure degrades to an empty slice
// instead of failing the whole request.
func (s *Sampler) Sample(ctx context.Context, pred domain.Predicate, total int64, skip, limit int) []*domain.Question {
	if total == 0 || limit <= 0 {
		return []*domain.Question{}
	}

	if total <= s.threshold {
		all, err := s.store.Find(ctx, pred)
		if err != nil {
			s.logger.Warn("sampling fetch failed, returning empty page", zap.Error(err))
			return []*domain.Question{}
		}

		s.shuffle(all)

		if skip >= len(all) {
			return []*domain.Question{}
		}
		end := skip + limit
		if end > len(all) {
			end = len(all)
		}

		return all[skip:end]
	}

	questions, err := s.store.Sample(ctx, pred, limit)
	if err != nil {
		s.logger.Warn("native sample failed, returning empty page", zap.Error(err))
		return []*domain.Question{}
	}

	return questions
}

// shuffle performs an unbiased Fisher-Yates shuffle in place.
func (s *Sampler) shuffle(questions []*domain.Question) {
	for i := len(questions) - 1; i >= 1; i-- {
		j := s.intn(i + 1)
		questions[i], questions[j] = questions[j], questions[i]
	}
}
