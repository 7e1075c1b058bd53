package feed

import (
	"question-bank-service/internal/domain"
)

// Response represents one page of the feed's question listing.
type Response struct {
	Questions  []QuestionItem `json:"questions"`
	Pagination Pagination     `json:"pagination"`
}

// QuestionItem represents a single question from the feed.
type QuestionItem struct {
	ID         string   `json:"_id"`
	Text       string   `json:"question"`
	Answer     string   `json:"answer"`
	Options    []string `json:"options"`
	Topic      FacetRef `json:"topic"`
	Language   FacetRef `json:"language"`
	Position   FacetRef `json:"position"`
	Difficulty int      `json:"difficulty"`
	Tags       []string `json:"tags"`
}

// FacetRef is an id plus display name pair as the feed delivers it.
type FacetRef struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Pagination holds the feed's paging info.
type Pagination struct {
	Total   int `json:"total"`
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

// ToDomain converts QuestionItem to domain.Question.
func (q *QuestionItem) ToDomain(source string) *domain.Question {
	return &domain.Question{
		ID:           q.ID,
		Text:         q.Text,
		Answer:       q.Answer,
		Options:      q.Options,
		TopicID:      q.Topic.ID,
		TopicName:    q.Topic.Name,
		LanguageID:   q.Language.ID,
		LanguageName: q.Language.Name,
		PositionID:   q.Position.ID,
		PositionName: q.Position.Name,
		Difficulty:   q.Difficulty,
		Tags:         q.Tags,
		Source:       source,
	}
}
