package feed

import (
	"go.uber.org/zap"

	"question-bank-service/internal/config"
	"question-bank-service/internal/domain"
)

// NewFeeds creates a client per configured feed source.
func NewFeeds(cfg config.FeedConfig, logger *zap.Logger) []domain.QuestionFeed {
	feeds := make([]domain.QuestionFeed, 0, len(cfg.Sources))

	for _, src := range cfg.Sources {
		feeds = append(feeds, New(
			src.Name,
			ClientConfig{
				BaseURL: src.BaseURL,
				Timeout: src.Timeout,
				Retry: RetryConfig{
					MaxAttempts: src.Retry.MaxAttempts,
					WaitTime:    src.Retry.WaitTime,
					MaxWaitTime: src.Retry.MaxWaitTime,
				},
				CB: CBConfig{
					MaxRequests:  src.CB.MaxRequests,
					Interval:     src.CB.Interval,
					Timeout:      src.CB.Timeout,
					FailureRatio: src.CB.FailureRatio,
				},
			},
			logger,
		))
	}

	return feeds
}
