package facet

import (
	"strings"

	"jobmatch-engine/internal/domain"
	"jobmatch-engine/internal/match"
)

// searchMatches applies the interpreted search facet to one job. Exact-match
// descriptors require every populated field to hold; term queries try the
// canonical term first and the raw original independently as a fallback.
func (e *Engine) searchMatches(j domain.Job, q match.Interpretation, raw string) bool {
	if q.Exact != nil {
		return exactQueryMatches(j, q.Exact)
	}
	term := strings.ToLower(strings.TrimSpace(q.Term))
	if termMatches(j, term) {
		return true
	}
	if raw != term && termMatches(j, raw) {
		return true
	}
	return false
}

func exactQueryMatches(j domain.Job, q *match.ExactMatchQuery) bool {
	checks := []struct {
		want, have string
	}{
		{q.JobTitle, j.Title},
		{q.Company, j.Company.Name},
		{q.Location, j.Location},
	}
	for _, c := range checks {
		w := strings.ToLower(strings.TrimSpace(c.want))
		if w == "" {
			continue
		}
		if !biContains(w, strings.ToLower(c.have)) {
			return false
		}
	}
	return true
}

func termMatches(j domain.Job, term string) bool {
	if term == "" {
		return false
	}

	fields := searchFields(j)

	// 1. Direct containment in any searchable field.
	for _, f := range fields {
		if f != "" && strings.Contains(f, term) {
			return true
		}
	}

	// 2. Any significant word of the term contained in any field.
	for _, w := range strings.Fields(term) {
		if len(w) <= 2 {
			continue
		}
		for _, f := range fields {
			if f != "" && strings.Contains(f, w) {
				return true
			}
		}
	}

	// 3. Fuzzy skill match.
	for _, sk := range j.Skills {
		if match.Similarity(strings.ToLower(sk), term) > 0.7 {
			return true
		}
	}
	return false
}

func searchFields(j domain.Job) []string {
	fields := []string{
		strings.ToLower(j.Title),
		strings.ToLower(j.Company.Name),
		strings.ToLower(j.Description),
		strings.ToLower(j.IndustryType),
		strings.ToLower(j.Department),
		strings.ToLower(j.RoleCategory),
		strings.ToLower(j.Category),
		strings.ToLower(j.Location),
	}
	for _, sk := range j.Skills {
		fields = append(fields, strings.ToLower(sk))
	}
	return fields
}
