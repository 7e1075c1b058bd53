package feed

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testEndpoint = "https://feed.example.com/api/questions"

func newTestClient() *Client {
	cfg := ClientConfig{
		BaseURL: "https://feed.example.com",
		Timeout: 5 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 3,
			WaitTime:    100 * time.Millisecond,
			MaxWaitTime: 500 * time.Millisecond,
		},
		CB: CBConfig{
			MaxRequests:  5,
			Interval:     60 * time.Second,
			Timeout:      15 * time.Second,
			FailureRatio: 0.6,
		},
	}
	client := New("primary", cfg, zap.NewNop())

	// Activate httpmock for this client's HTTP transport
	httpmock.ActivateNonDefault(client.client.GetClient())

	return client
}

func feedQuestion(n int) QuestionItem {
	return QuestionItem{
		ID:         fmt.Sprintf("%024x", n),
		Text:       fmt.Sprintf("Question %d?", n),
		Answer:     "Because.",
		Options:    []string{"a", "b"},
		Topic:      FacetRef{ID: fmt.Sprintf("%024x", 1000), Name: "Concurrency"},
		Language:   FacetRef{ID: fmt.Sprintf("%024x", 2000), Name: "Go"},
		Position:   FacetRef{ID: fmt.Sprintf("%024x", 3000), Name: "Backend"},
		Difficulty: 3,
		Tags:       []string{"goroutines"},
	}
}

func TestFeed_Fetch_SinglePage(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	resp := Response{
		Questions:  []QuestionItem{feedQuestion(1), feedQuestion(2)},
		Pagination: Pagination{Total: 2, Page: 1, PerPage: 500},
	}
	httpmock.RegisterResponder("GET", testEndpoint,
		httpmock.NewJsonResponderOrPanic(200, resp))

	client := newTestClient()
	questions, err := client.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, questions, 2)

	q := questions[0]
	assert.Equal(t, fmt.Sprintf("%024x", 1), q.ID)
	assert.Equal(t, "Question 1?", q.Text)
	assert.Equal(t, "Concurrency", q.TopicName)
	assert.Equal(t, "Go", q.LanguageName)
	assert.Equal(t, "Backend", q.PositionName)
	assert.Equal(t, 3, q.Difficulty)
	assert.Equal(t, "primary", q.Source, "source must be stamped with the feed name")
}

func TestFeed_Fetch_PagesUntilTotal(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	pages := map[string]Response{
		"1": {Questions: []QuestionItem{feedQuestion(1), feedQuestion(2)}, Pagination: Pagination{Total: 3, Page: 1, PerPage: 2}},
		"2": {Questions: []QuestionItem{feedQuestion(3)}, Pagination: Pagination{Total: 3, Page: 2, PerPage: 2}},
	}
	httpmock.RegisterResponder("GET", testEndpoint,
		func(req *http.Request) (*http.Response, error) {
			page := req.URL.Query().Get("page")
			resp, ok := pages[page]
			if !ok {
				return httpmock.NewStringResponse(400, "no such page"), nil
			}

			return httpmock.NewJsonResponse(200, resp)
		})

	client := newTestClient()
	questions, err := client.Fetch(context.Background())

	require.NoError(t, err)
	assert.Len(t, questions, 3)
	assert.Equal(t, 2, httpmock.GetTotalCallCount(), "must stop once the total is reached")
}

func TestFeed_Fetch_EmptyFeed(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	resp := Response{Pagination: Pagination{Total: 0, Page: 1, PerPage: 500}}
	httpmock.RegisterResponder("GET", testEndpoint,
		httpmock.NewJsonResponderOrPanic(200, resp))

	client := newTestClient()
	questions, err := client.Fetch(context.Background())

	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestFeed_Fetch_HTTPError(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	tests := []struct {
		name       string
		statusCode int
	}{
		{"404 Not Found", 404},
		{"500 Internal Server Error", 500},
		{"503 Service Unavailable", 503},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpmock.Reset()
			httpmock.RegisterResponder("GET", testEndpoint,
				httpmock.NewStringResponder(tt.statusCode, "Error"))

			client := newTestClient()
			questions, err := client.Fetch(context.Background())

			require.Error(t, err)
			assert.Nil(t, questions)
			assert.Contains(t, err.Error(), fmt.Sprintf("status %d", tt.statusCode))
		})
	}
}

func TestFeed_Fetch_NetworkError(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testEndpoint,
		httpmock.NewErrorResponder(fmt.Errorf("network error: connection refused")))

	client := newTestClient()
	questions, err := client.Fetch(context.Background())

	require.Error(t, err)
	assert.Nil(t, questions)
	assert.Contains(t, err.Error(), "fetching from feed primary")
}

func TestFeed_Fetch_ContextCancellation(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testEndpoint,
		func(_ *http.Request) (*http.Response, error) {
			time.Sleep(200 * time.Millisecond)

			return httpmock.NewJsonResponse(200, Response{})
		})

	client := newTestClient()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	questions, err := client.Fetch(ctx)

	require.Error(t, err)
	assert.Nil(t, questions)
}

// After enough consecutive failures the breaker opens and fetches fail
// fast without touching the network.
func TestFeed_CircuitBreaker_Opens(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", testEndpoint,
		httpmock.NewStringResponder(500, "Internal Server Error"))

	client := newTestClient()

	for i := 0; i < 5; i++ {
		_, err := client.Fetch(context.Background())
		require.Error(t, err)
	}

	start := time.Now()
	_, err := client.Fetch(context.Background())
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker is open")
	assert.Less(t, elapsed.Milliseconds(), int64(100))
}

func TestFeed_Retry_SucceedsAfterTransientFailure(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	callCount := 0
	httpmock.RegisterResponder("GET", testEndpoint,
		func(_ *http.Request) (*http.Response, error) {
			callCount++
			if callCount < 3 {
				return httpmock.NewStringResponse(500, "Server Error"), nil
			}

			return httpmock.NewJsonResponse(200, Response{
				Questions:  []QuestionItem{feedQuestion(1)},
				Pagination: Pagination{Total: 1, Page: 1, PerPage: 500},
			})
		})

	client := newTestClient()
	questions, err := client.Fetch(context.Background())

	require.NoError(t, err)
	assert.Len(t, questions, 1)
	assert.Equal(t, 3, callCount, "should retry twice and succeed on 3rd attempt")
}

func TestFeed_HealthCheck(t *testing.T) {
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder("GET", "https://feed.example.com/health",
		httpmock.NewStringResponder(200, "ok"))

	client := newTestClient()
	assert.NoError(t, client.HealthCheck(context.Background()))

	httpmock.Reset()
	httpmock.RegisterResponder("GET", "https://feed.example.com/health",
		httpmock.NewStringResponder(503, "down"))

	require.Error(t, client.HealthCheck(context.Background()))
}
