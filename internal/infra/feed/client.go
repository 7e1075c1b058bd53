// Package feed implements clients for external question sources.
package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"question-bank-service/internal/domain"
)

// Endpoint is the API path for a feed's question endpoint.
const Endpoint = "/api/questions"

// pageSize is the per-request batch size when paging through a feed.
const pageSize = 500

// ClientConfig holds configuration for a feed client.
type ClientConfig struct {
	BaseURL string
	Timeout time.Duration
	Retry   RetryConfig
	CB      CBConfig
}

// RetryConfig holds retry configuration.
type RetryConfig struct {
	MaxAttempts int
	WaitTime    time.Duration
	MaxWaitTime time.Duration
}

// CBConfig holds circuit breaker configuration.
type CBConfig struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	FailureRatio float64
}

// Client implements domain.QuestionFeed over a paginated JSON API.
type Client struct {
	name   string
	client *resty.Client
	cb     *gobreaker.CircuitBreaker[*resty.Response]
	logger *zap.Logger
}

// New creates a feed client.
func New(name string, cfg ClientConfig, logger *zap.Logger) *Client {
	return &Client{
		name:   name,
		client: newRestyClient(cfg),
		cb:     newCircuitBreaker[*resty.Response](name, cfg.CB),
		logger: logger,
	}
}

// Name returns the feed identifier.
func (c *Client) Name() string {
	return c.name
}

// Fetch retrieves the feed's full question set, paging until the
// reported total is reached. A failure on any page fails the whole
// fetch; the importer retries on the next cycle rather than ingesting
// a partial snapshot.
func (c *Client) Fetch(ctx context.Context) ([]*domain.Question, error) {
	var questions []*domain.Question

	for page := 1; ; page++ {
		result, err := c.fetchPage(ctx, page)
		if err != nil {
			c.logger.Warn("feed fetch failed",
				zap.String("feed", c.name),
				zap.Int("page", page),
				zap.String("state", c.cb.State().String()),
				zap.Error(err),
			)

			return nil, fmt.Errorf("fetching from feed %s: %w", c.name, err)
		}

		for i := range result.Questions {
			questions = append(questions, result.Questions[i].ToDomain(c.name))
		}

		if len(result.Questions) == 0 || len(questions) >= result.Pagination.Total {
			break
		}
	}

	c.logger.Info("feed fetch completed",
		zap.String("feed", c.name),
		zap.Int("count", len(questions)),
	)

	return questions, nil
}

func (c *Client) fetchPage(ctx context.Context, page int) (*Response, error) {
	resp, err := c.cb.Execute(func() (*resty.Response, error) {
		var result Response
		r, err := c.client.R().
			SetContext(ctx).
			SetQueryParam("page", fmt.Sprintf("%d", page)).
			SetQueryParam("per_page", fmt.Sprintf("%d", pageSize)).
			SetResult(&result).
			Get(Endpoint)
		if err != nil {
			return nil, err
		}
		if r.IsError() {
			return nil, fmt.Errorf("feed %s returned status %d", c.name, r.StatusCode())
		}

		return r, nil
	})
	if err != nil {
		return nil, err
	}

	return resp.Result().(*Response), nil
}

// HealthCheck verifies the feed is accessible.
func (c *Client) HealthCheck(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/health")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("health check returned status %d", resp.StatusCode())
	}

	return nil
}

// newRestyClient creates a Resty HTTP client with retry configuration.
func newRestyClient(cfg ClientConfig) *resty.Client {
	return resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retry.MaxAttempts).
		SetRetryWaitTime(cfg.Retry.WaitTime).
		SetRetryMaxWaitTime(cfg.Retry.MaxWaitTime).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			// Retry on network errors or 5xx status codes
			if err != nil {
				return true
			}

			return r.StatusCode() >= 500
		})
}

// newCircuitBreaker creates a circuit breaker for one feed.
func newCircuitBreaker[T any](name string, cfg CBConfig) *gobreaker.CircuitBreaker[T] {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

			return counts.Requests >= 3 && failureRatio >= cfg.FailureRatio
		},
	}

	return gobreaker.NewCircuitBreaker[T](settings)
}
