package domain

// Backend-neutral field names a Predicate may address. The filter
// builder only ever emits fields from this closed set, so store
// implementations can whitelist columns instead of trusting caller
// strings.
const (
	FieldID           = "id"
	FieldText         = "text"
	FieldTopicID      = "topic_id"
	FieldTopicName    = "topic_name"
	FieldLanguageID   = "language_id"
	FieldLanguageName = "language_name"
	FieldPositionID   = "position_id"
	FieldPositionName = "position_name"
	FieldDifficulty   = "difficulty"
	FieldTags         = "tags"
)

// ClauseOp enumerates the clause kinds a Predicate may carry. The set
// is deliberately small: it is the intersection of what the filter
// builder needs and what any document store can translate.
type ClauseOp string

const (
	// OpEq matches documents whose field equals the value exactly.
	OpEq ClauseOp = "eq"

	// OpIn matches documents whose field is one of the values.
	OpIn ClauseOp = "in"

	// OpInFold is OpIn with case-insensitive comparison. Used for facet
	// names, which clients type by hand.
	OpInFold ClauseOp = "in_fold"

	// OpNotIn excludes documents whose field is one of the values.
	OpNotIn ClauseOp = "not_in"

	// OpContainsFold matches documents whose field contains the value
	// as a case-insensitive substring.
	OpContainsFold ClauseOp = "contains_fold"

	// OpRange matches documents whose integer field lies in [Lo, Hi].
	OpRange ClauseOp = "range"

	// OpOverlaps matches documents whose array field shares at least
	// one element with the values.
	OpOverlaps ClauseOp = "overlaps"
)

// Clause is one condition of a Predicate. Which of Value, Values and
// Lo/Hi is meaningful depends on Op.
type Clause struct {
	Field  string
	Op     ClauseOp
	Value  string
	Values []string
	Lo     int
	Hi     int
}

// Predicate is a backend-neutral filter description: a conjunction of
// clauses. It is pure data with no behavior beyond convenience
// constructors, so building it twice from the same criteria yields
// structurally equal values.
type Predicate struct {
	Clauses []Clause
}

// IsEmpty reports whether the predicate is unrestricted.
func (p Predicate) IsEmpty() bool {
	return len(p.Clauses) == 0
}

// Eq appends an equality clause and returns the predicate.
func (p Predicate) Eq(field, value string) Predicate {
	p.Clauses = append(p.Clauses, Clause{Field: field, Op: OpEq, Value: value})
	return p
}

// In appends a set-membership clause.
func (p Predicate) In(field string, values []string) Predicate {
	p.Clauses = append(p.Clauses, Clause{Field: field, Op: OpIn, Values: values})
	return p
}

// InFold appends a case-insensitive set-membership clause.
func (p Predicate) InFold(field string, values []string) Predicate {
	p.Clauses = append(p.Clauses, Clause{Field: field, Op: OpInFold, Values: values})
	return p
}

// NotIn appends a negated set-membership clause.
func (p Predicate) NotIn(field string, values []string) Predicate {
	p.Clauses = append(p.Clauses, Clause{Field: field, Op: OpNotIn, Values: values})
	return p
}

// ContainsFold appends a case-insensitive substring clause.
func (p Predicate) ContainsFold(field, value string) Predicate {
	p.Clauses = append(p.Clauses, Clause{Field: field, Op: OpContainsFold, Value: value})
	return p
}

// Range appends an inclusive integer range clause.
func (p Predicate) Range(field string, lo, hi int) Predicate {
	p.Clauses = append(p.Clauses, Clause{Field: field, Op: OpRange, Lo: lo, Hi: hi})
	return p
}

// Overlaps appends an array-overlap clause.
func (p Predicate) Overlaps(field string, values []string) Predicate {
	p.Clauses = append(p.Clauses, Clause{Field: field, Op: OpOverlaps, Values: values})
	return p
}
