package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"question-bank-service/internal/domain"
)

// fakeStore is an in-memory QuestionStore that ignores predicates and
// counts store calls.
type fakeStore struct {
	questions []*domain.Question

	countErr  error
	findErr   error
	sampleErr error
	sortedErr error

	countCalls  int
	findCalls   int
	sampleCalls int
	sortedCalls int

	lastSampleSize int
	upserted       []*domain.Question
}

func (s *fakeStore) Count(context.Context, domain.Predicate) (int64, error) {
	s.countCalls++
	if s.countErr != nil {
		return 0, s.countErr
	}
	return int64(len(s.questions)), nil
}

func (s *fakeStore) Find(context.Context, domain.Predicate) ([]*domain.Question, error) {
	s.findCalls++
	if s.findErr != nil {
		return nil, s.findErr
	}
	out := make([]*domain.Question, len(s.questions))
	copy(out, s.questions)
	return out, nil
}

func (s *fakeStore) FindSorted(_ context.Context, _ domain.Predicate, _ domain.SortField, _ domain.SortOrder, skip, limit int) ([]*domain.Question, error) {
	s.sortedCalls++
	if s.sortedErr != nil {
		return nil, s.sortedErr
	}
	if skip >= len(s.questions) {
		return []*domain.Question{}, nil
	}
	end := skip + limit
	if end > len(s.questions) {
		end = len(s.questions)
	}
	return s.questions[skip:end], nil
}

func (s *fakeStore) Sample(_ context.Context, _ domain.Predicate, size int) ([]*domain.Question, error) {
	s.sampleCalls++
	s.lastSampleSize = size
	if s.sampleErr != nil {
		return nil, s.sampleErr
	}
	if size > len(s.questions) {
		size = len(s.questions)
	}
	return s.questions[:size], nil
}

func (s *fakeStore) GetByID(_ context.Context, id string) (*domain.Question, error) {
	for _, q := range s.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) BulkUpsert(_ context.Context, questions []*domain.Question) error {
	s.upserted = append(s.upserted, questions...)
	return nil
}

func makeQuestions(n int) []*domain.Question {
	qs := make([]*domain.Question, n)
	for i := range qs {
		qs[i] = &domain.Question{
			ID:   fmt.Sprintf("%024d", i),
			Text: fmt.Sprintf("question %d", i),
		}
	}
	return qs
}

func TestSampler_SmallCollection_PageSlice(t *testing.T) {
	store := &fakeStore{questions: makeQuestions(5)}
	s := NewSampler(store, 1000, zap.NewNop())

	got := s.Sample(context.Background(), domain.Predicate{}, 5, 1, 2)

	require.Len(t, got, 2)

	// Drawn from the match set, no repetition within the call.
	seen := map[string]bool{}
	valid := map[string]bool{}
	for _, q := range store.questions {
		valid[q.ID] = true
	}
	for _, q := range got {
		assert.True(t, valid[q.ID], "document %s not in the match set", q.ID)
		assert.False(t, seen[q.ID], "document %s repeated within one call", q.ID)
		seen[q.ID] = true
	}

	assert.Equal(t, 1, store.findCalls)
	assert.Equal(t, 0, store.sampleCalls)
}

// A zero-match predicate returns empty without any fetch beyond the
// caller's count.
func TestSampler_ZeroMatches_NoFetch(t *testing.T) {
	store := &fakeStore{}
	s := NewSampler(store, 1000, zap.NewNop())

	got := s.Sample(context.Background(), domain.Predicate{}, 0, 0, 10)

	assert.Empty(t, got)
	assert.Equal(t, 0, store.findCalls)
	assert.Equal(t, 0, store.sampleCalls)
}

func TestSampler_SkipBeyondEnd(t *testing.T) {
	store := &fakeStore{questions: makeQuestions(3)}
	s := NewSampler(store, 1000, zap.NewNop())

	got := s.Sample(context.Background(), domain.Predicate{}, 3, 10, 2)

	assert.Empty(t, got)
}

func TestSampler_PartialLastPage(t *testing.T) {
	store := &fakeStore{questions: makeQuestions(5)}
	s := NewSampler(store, 1000, zap.NewNop())

	got := s.Sample(context.Background(), domain.Predicate{}, 5, 4, 3)

	assert.Len(t, got, 1)
}

// Above the threshold the sampler delegates to the store's native
// random draw and does not materialize the match set.
func TestSampler_LargeCollection_NativeDraw(t *testing.T) {
	store := &fakeStore{questions: makeQuestions(30)}
	s := NewSampler(store, 10, zap.NewNop())

	got := s.Sample(context.Background(), domain.Predicate{}, 30, 20, 10)

	assert.Len(t, got, 10)
	assert.Equal(t, 1, store.sampleCalls)
	assert.Equal(t, 10, store.lastSampleSize)
	assert.Equal(t, 0, store.findCalls)
}

func TestSampler_FetchFailureDegradesToEmpty(t *testing.T) {
	store := &fakeStore{questions: makeQuestions(5), findErr: errors.New("store down")}
	s := NewSampler(store, 1000, zap.NewNop())

	got := s.Sample(context.Background(), domain.Predicate{}, 5, 0, 2)

	assert.Empty(t, got)
}

func TestSampler_NativeDrawFailureDegradesToEmpty(t *testing.T) {
	store := &fakeStore{questions: makeQuestions(30), sampleErr: errors.New("store down")}
	s := NewSampler(store, 10, zap.NewNop())

	got := s.Sample(context.Background(), domain.Predicate{}, 30, 0, 5)

	assert.Empty(t, got)
}

// With a deterministic swap function the shuffle must produce the
// exact Fisher-Yates permutation, proving the loop visits every index
// from the top down.
func TestSampler_ShuffleIsFisherYates(t *testing.T) {
	store := &fakeStore{}
	s := NewSampler(store, 1000, zap.NewNop())
	s.intn = func(n int) int { return 0 } // always swap with the head

	qs := makeQuestions(4)

	// Pinning j to 0 makes each pass swap the current top with the head,
	// so the permutation is a left rotation of the input.
	want := []string{qs[1].ID, qs[2].ID, qs[3].ID, qs[0].ID}

	s.shuffle(qs)

	got := make([]string, len(qs))
	for i, q := range qs {
		got[i] = q.ID
	}
	assert.Equal(t, want, got)
}

// Every document of a small collection should appear on exactly one
// page of the shuffled permutation within a single call sequence...
// but pages come from independent shuffles across calls, so the
// verifiable invariant is per-call: a full page walk covers counts
// correctly sized.
func TestSampler_PageSizesCoverCollection(t *testing.T) {
	store := &fakeStore{questions: makeQuestions(7)}
	s := NewSampler(store, 1000, zap.NewNop())

	total := 0
	for page := 1; ; page++ {
		got := s.Sample(context.Background(), domain.Predicate{}, 7, domain.Skip(page, 3), 3)
		if len(got) == 0 {
			break
		}
		total += len(got)
	}

	assert.Equal(t, 7, total)
}
