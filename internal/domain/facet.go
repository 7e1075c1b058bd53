package domain

// FacetKind identifies a filterable dimension of a question.
type FacetKind string

const (
	FacetTopic    FacetKind = "topic"
	FacetLanguage FacetKind = "language"
	FacetPosition FacetKind = "position"
)

// FacetKinds lists all supported facet kinds in a stable order.
func FacetKinds() []FacetKind {
	return []FacetKind{FacetTopic, FacetLanguage, FacetPosition}
}

// ParseFacetKind returns the FacetKind for s, or false when s names no
// known facet.
func ParseFacetKind(s string) (FacetKind, bool) {
	switch FacetKind(s) {
	case FacetTopic, FacetLanguage, FacetPosition:
		return FacetKind(s), true
	}
	return "", false
}

// Facet is a single entry of a facet directory: a canonical identifier
// paired with its human-readable name.
type Facet struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ResolutionOutcome records how (or whether) a facet token was resolved.
// Tests and callers can distinguish a token the directory simply does
// not know from one the directory could not be asked about.
type ResolutionOutcome int

const (
	// ResolvedByID means the id was found in the directory and the name
	// was filled in from it.
	ResolvedByID ResolutionOutcome = iota

	// ResolvedByName means the name was found in the directory and the
	// id was filled in from it.
	ResolvedByName

	// PassedThrough means neither side matched a directory entry; the
	// caller's original values are returned unchanged.
	PassedThrough

	// LookupFailed means the directory was unavailable; the caller's
	// original values are returned unchanged.
	LookupFailed
)

// String returns the outcome's name for logging.
func (o ResolutionOutcome) String() string {
	switch o {
	case ResolvedByID:
		return "resolved_by_id"
	case ResolvedByName:
		return "resolved_by_name"
	case PassedThrough:
		return "passed_through"
	case LookupFailed:
		return "lookup_failed"
	default:
		return "unknown"
	}
}

// Resolution is the result of resolving a facet id/name pair. At most
// one of the inputs is authoritative; resolution fills in the missing
// side when the directory knows the value, and otherwise echoes the
// inputs untouched.
type Resolution struct {
	ID      string
	Name    string
	Outcome ResolutionOutcome
}

// Resolved reports whether the directory recognized the token.
func (r Resolution) Resolved() bool {
	return r.Outcome == ResolvedByID || r.Outcome == ResolvedByName
}
