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

func newTestSearchService(store *fakeStore) *SearchService {
	logger := zap.NewNop()
	return NewSearchService(store, NewSampler(store, 1000, logger), logger)
}

// Three matching documents, random draw, page size two: exactly two
// documents and pagination {total:3, page:1, page_size:2, total_pages:2}.
func TestSearchService_Search_RandomPage(t *testing.T) {
	store := &fakeStore{questions: makeQuestions(3)}
	svc := newTestSearchService(store)

	criteria := domain.SearchCriteria{
		TopicIDs: []string{"t1"},
		SortBy:   domain.SortFieldRandom,
		Page:     1,
		PageSize: 2,
	}

	result, err := svc.Search(context.Background(), criteria)

	require.NoError(t, err)
	assert.Len(t, result.Questions, 2)
	assert.Equal(t, domain.Pagination{Total: 3, Page: 1, PageSize: 2, TotalPages: 2}, result.Pagination)
}

func TestSearchService_Search_DeterministicSort(t *testing.T) {
	store := &fakeStore{questions: makeQuestions(5)}
	svc := newTestSearchService(store)

	criteria := domain.SearchCriteria{
		SortBy:    domain.SortFieldCreatedAt,
		SortOrder: domain.SortOrderAsc,
		Page:      2,
		PageSize:  2,
	}

	result, err := svc.Search(context.Background(), criteria)

	require.NoError(t, err)
	assert.Len(t, result.Questions, 2)
	assert.Equal(t, 1, store.sortedCalls)
	assert.Equal(t, 0, store.sampleCalls)
	assert.Equal(t, 0, store.findCalls)
	assert.Equal(t, domain.Pagination{Total: 5, Page: 2, PageSize: 2, TotalPages: 3}, result.Pagination)
}

func TestSearchService_Search_NoMatches(t *testing.T) {
	store := &fakeStore{}
	svc := newTestSearchService(store)

	result, err := svc.Search(context.Background(), domain.SearchCriteria{Page: 1, PageSize: 20})

	require.NoError(t, err)
	assert.Empty(t, result.Questions)
	assert.Equal(t, 0, result.Pagination.TotalPages)
	// No fetch beyond the count for an empty match set.
	assert.Equal(t, 1, store.countCalls)
	assert.Equal(t, 0, store.findCalls)
	assert.Equal(t, 0, store.sampleCalls)
}

// A count failure would corrupt pagination metadata, so it propagates
// instead of degrading.
func TestSearchService_Search_CountFailurePropagates(t *testing.T) {
	store := &fakeStore{countErr: errors.New("store down")}
	svc := newTestSearchService(store)

	result, err := svc.Search(context.Background(), domain.SearchCriteria{Page: 1, PageSize: 20})

	require.Error(t, err)
	assert.Nil(t, result)
}

// A sampling failure degrades to an empty page; the request itself
// succeeds with intact pagination metadata.
func TestSearchService_Search_SampleFailureDegrades(t *testing.T) {
	store := &fakeStore{questions: makeQuestions(4), findErr: errors.New("store down")}
	svc := newTestSearchService(store)

	result, err := svc.Search(context.Background(), domain.SearchCriteria{Page: 1, PageSize: 2})

	require.NoError(t, err)
	assert.Empty(t, result.Questions)
	assert.Equal(t, int64(4), result.Pagination.Total)
}

func TestSearchService_Search_SortFailurePropagates(t *testing.T) {
	store := &fakeStore{questions: makeQuestions(4), sortedErr: errors.New("store down")}
	svc := newTestSearchService(store)

	_, err := svc.Search(context.Background(), domain.SearchCriteria{SortBy: domain.SortFieldText, Page: 1, PageSize: 2})

	require.Error(t, err)
}

func TestSearchService_GetByID(t *testing.T) {
	qs := makeQuestions(2)
	store := &fakeStore{questions: qs}
	svc := newTestSearchService(store)

	got, err := svc.GetByID(context.Background(), qs[1].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, qs[1].Text, got.Text)

	missing, err := svc.GetByID(context.Background(), "ffffffffffffffffffffffff")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
