package facet

import (
	"regexp"
	"strings"

	"jobmatch-engine/internal/domain"
)

// categoryFacetMatches evaluates the three category facets for one job.
// Sub-facets with at least one selected value are combined with OR, not
// AND: a single strong category signal surfaces the job even when the
// other two category fields are blank or unrelated.
func (e *Engine) categoryFacetMatches(j domain.Job, f domain.FilterState) bool {
	fallbacks := categoryFallbacks(j)

	if domain.ActiveSet(f.IndustryCategories) && e.categoryMatches(j.IndustryType, fallbacks, f.IndustryCategories) {
		return true
	}
	if domain.ActiveSet(f.DepartmentCategories) && e.categoryMatches(j.Department, fallbacks, f.DepartmentCategories) {
		return true
	}
	if domain.ActiveSet(f.RoleCategories) && e.categoryMatches(j.RoleCategory, fallbacks, f.RoleCategories) {
		return true
	}
	return false
}

// categoryFallbacks lists secondary category sources in lookup order:
// company industries, a job's generic category field, then the company name.
func categoryFallbacks(j domain.Job) []string {
	var out []string
	out = append(out, j.Company.Industries...)
	if j.Company.Industry != "" {
		out = append(out, j.Company.Industry)
	}
	if j.Category != "" {
		out = append(out, j.Category)
	}
	if j.Company.Name != "" {
		out = append(out, j.Company.Name)
	}
	return out
}

func (e *Engine) categoryMatches(jobVal string, fallbacks []string, selected []string) bool {
	have := normalizeCategory(jobVal)

	for _, want := range selected {
		w := strings.ToLower(strings.TrimSpace(want))
		if w == "" {
			continue
		}

		if have != "" {
			if categoryValueMatches(w, have) {
				return true
			}
			if e.idx.SameGroup(w, have) {
				return true
			}
			continue
		}

		// Category field absent: fall back to the secondary sources.
		for _, fb := range fallbacks {
			fbn := normalizeCategory(fb)
			if fbn == "" {
				continue
			}
			if categoryValueMatches(w, fbn) || e.idx.SameGroup(w, fbn) {
				return true
			}
		}
	}
	return false
}

// categoryValueMatches tests equality, bidirectional containment (guarded
// so one/two-letter values cannot false-positive), then first-significant-
// word equality.
func categoryValueMatches(want, have string) bool {
	if want == have {
		return true
	}

	shorter := len(want)
	if len(have) < shorter {
		shorter = len(have)
	}
	if shorter >= 4 && (strings.Contains(want, have) || strings.Contains(have, want)) {
		return true
	}

	ww := firstSignificantWord(want)
	hw := firstSignificantWord(have)
	return ww != "" && ww == hw
}

var reTrailingCount = regexp.MustCompile(`\s*\(\d+\)\s*$`)

// normalizeCategory trims the value, strips a trailing parenthesized count
// annotation ("IT (2378)" -> "IT"), lower-cases, and maps the recognized
// absent markers to "".
func normalizeCategory(s string) string {
	s = reTrailingCount.ReplaceAllString(strings.TrimSpace(s), "")
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "n/a", "na", "-", "none":
		return ""
	}
	return s
}

var insignificantWords = map[string]bool{
	"the": true, "and": true, "of": true, "for": true, "&": true,
}

func firstSignificantWord(s string) string {
	for _, w := range strings.Fields(s) {
		if len(w) >= 3 && !insignificantWords[w] {
			return w
		}
	}
	return ""
}
