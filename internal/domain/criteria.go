package domain

// SortOrder represents the sort direction.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// SortField represents the field to sort by. SortFieldRandom is not a
// stored column: it selects the sampling strategy instead of a
// deterministic sort.
type SortField string

const (
	SortFieldRandom     SortField = "random"
	SortFieldCreatedAt  SortField = "created_at"
	SortFieldDifficulty SortField = "difficulty"
	SortFieldText       SortField = "text"
)

// Mode controls how much of each question is returned to the client.
type Mode string

const (
	ModeFull       Mode = "full"       // everything, including the answer
	ModeCompact    Mode = "compact"    // no options, no answer
	ModeMinimalist Mode = "minimalist" // id and text only
)

// SearchCriteria holds the validated, typed search parameters for one
// question query. It is built once per request and never mutated after
// Normalize.
type SearchCriteria struct {
	// Facet filters. The id and name slices of one facet are alternate
	// channels, not a pair: when ids are present the names are ignored
	// by the filter builder.
	TopicIDs      []string
	TopicNames    []string
	LanguageIDs   []string
	LanguageNames []string
	PositionIDs   []string
	PositionNames []string

	// Text is matched case-insensitively as a substring of the
	// question text.
	Text string

	// Tags filters on tag membership.
	Tags []string

	// Difficulty is the raw difficulty filter: "n" or "n-m". Invalid or
	// out-of-range input is ignored by the filter builder rather than
	// rejected.
	Difficulty string

	// ExcludeIDs are dropped from the result set. Tokens that are not
	// canonical 24-hex identifiers are discarded before filtering.
	ExcludeIDs []string

	SortBy    SortField
	SortOrder SortOrder

	Page     int // 1-indexed
	PageSize int

	Mode Mode
}

// DefaultSearchCriteria returns criteria with the service defaults:
// a random draw of the first page.
func DefaultSearchCriteria() SearchCriteria {
	return SearchCriteria{
		SortBy:    SortFieldRandom,
		SortOrder: SortOrderDesc,
		Page:      1,
		PageSize:  20,
		Mode:      ModeFull,
	}
}

// Normalize ensures criteria are within acceptable bounds. This is
// bound correction, not validation: malformed input is rejected at the
// transport layer before criteria are built.
func (c *SearchCriteria) Normalize() {
	if c.Page < 1 {
		c.Page = 1
	}
	if c.PageSize < 1 {
		c.PageSize = 20
	}
	if c.PageSize > 100 {
		c.PageSize = 100
	}
	if c.SortBy == "" {
		c.SortBy = SortFieldRandom
	}
	if c.SortOrder == "" {
		c.SortOrder = SortOrderDesc
	}
	if c.Mode == "" {
		c.Mode = ModeFull
	}
}

// Randomized reports whether the criteria select the sampling strategy
// instead of a deterministic sort.
func (c *SearchCriteria) Randomized() bool {
	return c.SortBy == SortFieldRandom
}

// SearchResult holds one page of questions plus pagination metadata.
// It is produced fresh per request and never cached: the store may
// change between calls.
type SearchResult struct {
	Questions  []*Question `json:"questions"`
	Pagination Pagination  `json:"pagination"`
}
