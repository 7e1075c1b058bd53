package dto

import (
	"time"

	"question-bank-service/internal/app/service"
	"question-bank-service/internal/domain"
)

// FacetResponse is an id plus display name pair.
type FacetResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// QuestionResponse represents a single question in the response. The
// mode chosen by the client decides which fields are populated;
// omitted fields are dropped from the JSON entirely.
type QuestionResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`

	Answer  string   `json:"answer,omitempty"`
	Options []string `json:"options,omitempty"`

	Topic    *FacetResponse `json:"topic,omitempty"`
	Language *FacetResponse `json:"language,omitempty"`
	Position *FacetResponse `json:"position,omitempty"`

	Difficulty int      `json:"difficulty,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Source     string   `json:"source,omitempty"`

	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// FromDomainQuestion converts domain.Question to QuestionResponse,
// shaped by the requested mode.
func FromDomainQuestion(q *domain.Question, mode domain.Mode) QuestionResponse {
	resp := QuestionResponse{
		ID:   q.ID,
		Text: q.Text,
	}

	if mode == domain.ModeMinimalist {
		return resp
	}

	resp.Topic = facetRef(q.TopicID, q.TopicName)
	resp.Language = facetRef(q.LanguageID, q.LanguageName)
	resp.Position = facetRef(q.PositionID, q.PositionName)
	resp.Difficulty = q.Difficulty
	resp.Tags = q.Tags
	resp.Source = q.Source
	resp.CreatedAt = q.CreatedAt.Format(time.RFC3339)
	resp.UpdatedAt = q.UpdatedAt.Format(time.RFC3339)

	if mode == domain.ModeCompact {
		return resp
	}

	resp.Answer = q.Answer
	resp.Options = q.Options

	return resp
}

func facetRef(id, name string) *FacetResponse {
	if id == "" && name == "" {
		return nil
	}

	return &FacetResponse{ID: id, Name: name}
}

// SearchResponse represents the question search response.
type SearchResponse struct {
	Questions  []QuestionResponse `json:"questions"`
	Pagination PaginationMeta     `json:"pagination"`
}

// PaginationMeta holds pagination metadata.
type PaginationMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// FromSearchResult converts domain.SearchResult to SearchResponse.
func FromSearchResult(result *domain.SearchResult, mode domain.Mode) SearchResponse {
	questions := make([]QuestionResponse, len(result.Questions))
	for i, q := range result.Questions {
		questions[i] = FromDomainQuestion(q, mode)
	}

	return SearchResponse{
		Questions: questions,
		Pagination: PaginationMeta{
			Total:      result.Pagination.Total,
			Page:       result.Pagination.Page,
			PageSize:   result.Pagination.PageSize,
			TotalPages: result.Pagination.TotalPages,
		},
	}
}

// FacetListResponse represents one facet directory listing.
type FacetListResponse struct {
	Kind   string          `json:"kind"`
	Facets []FacetResponse `json:"facets"`
}

// FromFacets converts domain facets to a FacetListResponse.
func FromFacets(kind domain.FacetKind, facets []domain.Facet) FacetListResponse {
	out := make([]FacetResponse, len(facets))
	for i, f := range facets {
		out[i] = FacetResponse{ID: f.ID, Name: f.Name}
	}

	return FacetListResponse{Kind: string(kind), Facets: out}
}

// ImportResultResponse represents the outcome of importing one feed.
type ImportResultResponse struct {
	Feed     string `json:"feed"`
	Count    int    `json:"count"`
	Duration string `json:"duration"`
	Error    string `json:"error,omitempty"`
}

// ImportResponse represents the response for an import-all operation.
type ImportResponse struct {
	Results []ImportResultResponse `json:"results"`
	Summary ImportSummary          `json:"summary"`
}

// ImportSummary holds the totals of one import cycle.
type ImportSummary struct {
	TotalImported int `json:"total_imported"`
	FeedsOK       int `json:"feeds_ok"`
	FeedsFail     int `json:"feeds_fail"`
}

// FromImportResults converts service.ImportResult slice to ImportResponse.
func FromImportResults(results []service.ImportResult) ImportResponse {
	resp := ImportResponse{
		Results: make([]ImportResultResponse, len(results)),
	}

	for i, r := range results {
		errMsg := ""
		if r.Error != nil {
			errMsg = r.Error.Error()
			resp.Summary.FeedsFail++
		} else {
			resp.Summary.TotalImported += r.Count
			resp.Summary.FeedsOK++
		}

		resp.Results[i] = ImportResultResponse{
			Feed:     r.Feed,
			Count:    r.Count,
			Duration: r.Duration.String(),
			Error:    errMsg,
		}
	}

	return resp
}

// FeedStatusResponse represents one feed's health.
type FeedStatusResponse struct {
	Name    string `json:"name"`
	Healthy bool   `json:"healthy"`
	Error   string `json:"error,omitempty"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}
