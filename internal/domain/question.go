// Package domain contains the core business logic and entities.
// This package has no external dependencies (only stdlib).
package domain

import (
	"time"
)

// Difficulty bounds for questions. Values outside this range are never
// stored and never filtered on.
const (
	MinDifficulty = 1
	MaxDifficulty = 6
)

// Question represents a single question in the bank.
// This is the core domain entity used throughout the application.
type Question struct {
	// ID is the store's canonical 24-character hex identifier.
	ID string `json:"id"`

	Text    string   `json:"text"`
	Answer  string   `json:"answer"`
	Options []string `json:"options,omitempty"`

	// Facets. The name fields are denormalized copies of the facet
	// directories so a result page needs no extra lookups.
	TopicID      string `json:"topic_id"`
	TopicName    string `json:"topic_name"`
	LanguageID   string `json:"language_id"`
	LanguageName string `json:"language_name"`
	PositionID   string `json:"position_id"`
	PositionName string `json:"position_name"`

	Difficulty int      `json:"difficulty"` // 1..6
	Tags       []string `json:"tags,omitempty"`

	// Source names the feed the question was imported from.
	Source string `json:"source,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasValidDifficulty reports whether the question's difficulty is inside
// the supported range.
func (q *Question) HasValidDifficulty() bool {
	return q.Difficulty >= MinDifficulty && q.Difficulty <= MaxDifficulty
}

// IsObjectID reports whether s is a canonical 24-character lowercase or
// uppercase hex identifier. Anything else is treated as unresolvable by
// the search core, never as an error.
func IsObjectID(s string) bool {
	if len(s) != 24 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
