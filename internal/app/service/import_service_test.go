package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"question-bank-service/internal/domain"
)

type fakeFeed struct {
	name      string
	questions []*domain.Question
	err       error
}

func (f *fakeFeed) Name() string { return f.name }

func (f *fakeFeed) Fetch(context.Context) ([]*domain.Question, error) {
	return f.questions, f.err
}

func (f *fakeFeed) HealthCheck(context.Context) error { return f.err }

type fakeFacetStore struct {
	fakeLookup
	upserted []domain.Facet
	listErr  error
}

func (s *fakeFacetStore) List(context.Context) ([]domain.Facet, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]domain.Facet, 0, len(s.fakeLookup.byID))
	for _, f := range s.fakeLookup.byID {
		out = append(out, f)
	}
	return out, nil
}

func (s *fakeFacetStore) Upsert(_ context.Context, facets []domain.Facet) error {
	s.upserted = append(s.upserted, facets...)
	return nil
}

func feedQuestions() []*domain.Question {
	return []*domain.Question{
		{
			ID:        "0123456789abcdef01234500",
			Text:      "what does a nil map read return",
			TopicID:   "aaaaaaaaaaaaaaaaaaaaaaaa",
			TopicName: "Maps",
		},
		{
			ID:        "0123456789abcdef01234501",
			Text:      "explain channel direction types",
			TopicID:   "aaaaaaaaaaaaaaaaaaaaaaaa", // duplicate topic
			TopicName: "Maps",
			LanguageID:   "bbbbbbbbbbbbbbbbbbbbbbbb",
			LanguageName: "Go",
		},
	}
}

func TestImportService_ImportAll(t *testing.T) {
	store := &fakeStore{}
	topics := &fakeFacetStore{fakeLookup: *newFakeLookup(domain.FacetTopic)}
	languages := &fakeFacetStore{fakeLookup: *newFakeLookup(domain.FacetLanguage)}
	positions := &fakeFacetStore{fakeLookup: *newFakeLookup(domain.FacetPosition)}

	svc := NewImportService(
		store,
		[]domain.FacetStore{topics, languages, positions},
		[]domain.QuestionFeed{&fakeFeed{name: "central-bank", questions: feedQuestions()}},
		zap.NewNop(),
	)

	results := svc.ImportAll(context.Background())

	require.Len(t, results, 1)
	require.NoError(t, results[0].Error)
	assert.Equal(t, 2, results[0].Count)
	assert.Len(t, store.upserted, 2)

	// Facet directories pick up the distinct entries the questions
	// reference.
	assert.Equal(t, []domain.Facet{{ID: "aaaaaaaaaaaaaaaaaaaaaaaa", Name: "Maps"}}, topics.upserted)
	assert.Equal(t, []domain.Facet{{ID: "bbbbbbbbbbbbbbbbbbbbbbbb", Name: "Go"}}, languages.upserted)
	assert.Empty(t, positions.upserted)
}

func TestImportService_PartialFailure(t *testing.T) {
	store := &fakeStore{}
	svc := NewImportService(
		store,
		nil,
		[]domain.QuestionFeed{
			&fakeFeed{name: "broken", err: errors.New("gateway timeout")},
			&fakeFeed{name: "healthy", questions: feedQuestions()[:1]},
		},
		zap.NewNop(),
	)

	results := svc.ImportAll(context.Background())

	require.Len(t, results, 2)

	byFeed := map[string]ImportResult{}
	for _, r := range results {
		byFeed[r.Feed] = r
	}

	assert.Error(t, byFeed["broken"].Error)
	assert.NoError(t, byFeed["healthy"].Error)
	assert.Equal(t, 1, byFeed["healthy"].Count)
	assert.Len(t, store.upserted, 1)
}

func TestCollectFacets_SkipsIncompletePairs(t *testing.T) {
	qs := []*domain.Question{
		{TopicID: "aaaaaaaaaaaaaaaaaaaaaaaa"},                // no name
		{TopicName: "Orphan"},                                // no id
		{PositionID: "cccccccccccccccccccccccc", PositionName: "Senior"},
	}

	got := collectFacets(qs)

	assert.Empty(t, got[domain.FacetTopic])
	assert.Equal(t, []domain.Facet{{ID: "cccccccccccccccccccccccc", Name: "Senior"}}, got[domain.FacetPosition])
}
