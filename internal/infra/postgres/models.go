package postgres

import (
	"time"

	"github.com/lib/pq"

	"question-bank-service/internal/domain"
)

// QuestionModel is the GORM model for the questions table. Identifiers
// are the feed's canonical 24-character hex strings, stored verbatim so
// the table never mints ids of its own.
type QuestionModel struct {
	ID      string         `gorm:"type:char(24);primaryKey"`
	Text    string         `gorm:"type:text;not null"`
	Answer  string         `gorm:"type:text"`
	Options pq.StringArray `gorm:"type:text[]"`

	TopicID      string `gorm:"type:char(24)"`
	TopicName    string `gorm:"type:varchar(200)"`
	LanguageID   string `gorm:"type:char(24)"`
	LanguageName string `gorm:"type:varchar(200)"`
	PositionID   string `gorm:"type:char(24)"`
	PositionName string `gorm:"type:varchar(200)"`

	Difficulty int            `gorm:"default:1"`
	Tags       pq.StringArray `gorm:"type:text[]"`
	Source     string         `gorm:"type:varchar(100)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for QuestionModel.
func (QuestionModel) TableName() string {
	return "questions"
}

// ToDomain converts QuestionModel to domain.Question.
func (m *QuestionModel) ToDomain() *domain.Question {
	return &domain.Question{
		ID:           m.ID,
		Text:         m.Text,
		Answer:       m.Answer,
		Options:      m.Options,
		TopicID:      m.TopicID,
		TopicName:    m.TopicName,
		LanguageID:   m.LanguageID,
		LanguageName: m.LanguageName,
		PositionID:   m.PositionID,
		PositionName: m.PositionName,
		Difficulty:   m.Difficulty,
		Tags:         m.Tags,
		Source:       m.Source,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain creates a QuestionModel from domain.Question.
func FromDomain(q *domain.Question) *QuestionModel {
	return &QuestionModel{
		ID:           q.ID,
		Text:         q.Text,
		Answer:       q.Answer,
		Options:      q.Options,
		TopicID:      q.TopicID,
		TopicName:    q.TopicName,
		LanguageID:   q.LanguageID,
		LanguageName: q.LanguageName,
		PositionID:   q.PositionID,
		PositionName: q.PositionName,
		Difficulty:   q.Difficulty,
		Tags:         q.Tags,
		Source:       q.Source,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

// FromDomainSlice converts a slice of domain.Question to QuestionModels.
func FromDomainSlice(questions []*domain.Question) []*QuestionModel {
	models := make([]*QuestionModel, len(questions))
	for i, q := range questions {
		models[i] = FromDomain(q)
	}

	return models
}

// FacetModel is the row shape shared by the three facet directory
// tables. The table name is chosen per repository, so the model itself
// carries none.
type FacetModel struct {
	ID        string `gorm:"type:char(24);primaryKey"`
	Name      string `gorm:"type:varchar(200);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ToDomain converts FacetModel to domain.Facet.
func (m *FacetModel) ToDomain() domain.Facet {
	return domain.Facet{ID: m.ID, Name: m.Name}
}
