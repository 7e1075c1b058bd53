// Package dto provides Data Transfer Objects for HTTP requests and responses.
package dto

import (
	"question-bank-service/internal/app/service"
	"question-bank-service/internal/domain"
)

// QuestionSearchRequest represents the query parameters for searching
// questions. List-valued parameters arrive as comma-separated strings;
// the facet id/name pairs are rewritten by the resolution middleware
// before this struct is bound.
type QuestionSearchRequest struct {
	TopicIDs      string `query:"topic_id" validate:"max=500"`
	TopicNames    string `query:"topic" validate:"max=500"`
	LanguageIDs   string `query:"language_id" validate:"max=500"`
	LanguageNames string `query:"language" validate:"max=500"`
	PositionIDs   string `query:"position_id" validate:"max=500"`
	PositionNames string `query:"position" validate:"max=500"`

	Text       string `query:"text" validate:"max=200"`
	Tags       string `query:"tags" validate:"max=500"`
	Difficulty string `query:"difficulty" validate:"max=20"`
	ExcludeIDs string `query:"exclude_ids" validate:"max=2000"`

	SortBy    string `query:"sort_by" validate:"omitempty,oneof=random created_at difficulty text"`
	SortOrder string `query:"sort_order" validate:"omitempty,oneof=asc desc"`
	Page      int    `query:"page" validate:"omitempty,min=1"`
	PageSize  int    `query:"page_size" validate:"omitempty,min=1,max=100"`
	Mode      string `query:"mode" validate:"omitempty,oneof=full compact minimalist"`
}

// ToCriteria converts QuestionSearchRequest to domain.SearchCriteria.
func (r *QuestionSearchRequest) ToCriteria() domain.SearchCriteria {
	criteria := domain.DefaultSearchCriteria()

	criteria.TopicIDs = service.SplitCSV(r.TopicIDs)
	criteria.TopicNames = service.SplitCSV(r.TopicNames)
	criteria.LanguageIDs = service.SplitCSV(r.LanguageIDs)
	criteria.LanguageNames = service.SplitCSV(r.LanguageNames)
	criteria.PositionIDs = service.SplitCSV(r.PositionIDs)
	criteria.PositionNames = service.SplitCSV(r.PositionNames)

	criteria.Text = r.Text
	criteria.Tags = service.SplitCSV(r.Tags)
	criteria.Difficulty = r.Difficulty
	criteria.ExcludeIDs = service.SplitCSV(r.ExcludeIDs)

	if r.SortBy != "" {
		criteria.SortBy = domain.SortField(r.SortBy)
	}
	if r.SortOrder != "" {
		criteria.SortOrder = domain.SortOrder(r.SortOrder)
	}
	if r.Page > 0 {
		criteria.Page = r.Page
	}
	if r.PageSize > 0 {
		criteria.PageSize = r.PageSize
	}
	if r.Mode != "" {
		criteria.Mode = domain.Mode(r.Mode)
	}

	return criteria
}
