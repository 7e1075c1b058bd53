package service

import (
	"strconv"
	"strings"

	"question-bank-service/internal/domain"
)

// BuildPredicate turns validated search criteria into a backend-neutral
// predicate. It is a pure function: identical criteria yield
// structurally equal predicates.
//
// Per facet, an id list wins over a name list; names are matched
// case-insensitively because clients type them by hand. A difficulty
// filter that is non-numeric or outside [1,6] is ignored rather than
// rejected; validation is an upstream concern. Exclusion tokens that
// are not canonical 24-hex identifiers are dropped before the clause
// is built.
func BuildPredicate(c domain.SearchCriteria) domain.Predicate {
	var p domain.Predicate

	p = facetClause(p, domain.FieldTopicID, domain.FieldTopicName, c.TopicIDs, c.TopicNames)
	p = facetClause(p, domain.FieldLanguageID, domain.FieldLanguageName, c.LanguageIDs, c.LanguageNames)
	p = facetClause(p, domain.FieldPositionID, domain.FieldPositionName, c.PositionIDs, c.PositionNames)

	if text := strings.TrimSpace(c.Text); text != "" {
		p = p.ContainsFold(domain.FieldText, text)
	}

	if len(c.Tags) > 0 {
		p = p.Overlaps(domain.FieldTags, c.Tags)
	}

	if lo, hi, ok := parseDifficulty(c.Difficulty); ok {
		p = p.Range(domain.FieldDifficulty, lo, hi)
	}

	if excluded := validObjectIDs(c.ExcludeIDs); len(excluded) > 0 {
		p = p.NotIn(domain.FieldID, excluded)
	}

	return p
}

// facetClause emits the membership clause for one facet: ids when
// present, otherwise case-insensitive names, otherwise nothing.
func facetClause(p domain.Predicate, idField, nameField string, ids, names []string) domain.Predicate {
	if len(ids) > 0 {
		return p.In(idField, ids)
	}
	if len(names) > 0 {
		return p.InFold(nameField, names)
	}
	return p
}

// parseDifficulty parses "n" or "n-m" into an inclusive range. Returns
// ok=false for anything non-numeric, out of [1,6], or inverted.
func parseDifficulty(s string) (lo, hi int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, false
	}

	loStr, hiStr, found := strings.Cut(s, "-")
	if !found {
		hiStr = loStr
	}

	lo, err := strconv.Atoi(strings.TrimSpace(loStr))
	if err != nil {
		return 0, 0, false
	}
	hi, err = strconv.Atoi(strings.TrimSpace(hiStr))
	if err != nil {
		return 0, 0, false
	}

	if lo < domain.MinDifficulty || hi > domain.MaxDifficulty || lo > hi {
		return 0, 0, false
	}

	return lo, hi, true
}

// validObjectIDs keeps only canonical 24-hex identifiers, preserving
// order.
func validObjectIDs(ids []string) []string {
	var valid []string
	for _, id := range ids {
		if domain.IsObjectID(id) {
			valid = append(valid, id)
		}
	}
	return valid
}
