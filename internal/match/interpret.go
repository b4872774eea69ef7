package match

import (
	"regexp"
	"strings"
)

// ExactMatchQuery is the structured form of a search like
// "senior engineer at acme in bangalore". Empty fields are not matched.
type ExactMatchQuery struct {
	JobTitle string `json:"jobTitle"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Original string `json:"original"`
}

// Interpretation is the outcome of interpreting a raw search string:
// either a structured exact-match descriptor (Exact != nil) or a single
// term — a canonical term from the synonym table, or the trimmed original
// when nothing resolved (downstream degrades to literal substring search).
type Interpretation struct {
	Exact *ExactMatchQuery `json:"exact,omitempty"`
	Term  string           `json:"term,omitempty"`
}

type Interpreter struct {
	idx *Index
}

func NewInterpreter(idx *Index) *Interpreter {
	if idx == nil {
		idx = Default()
	}
	return &Interpreter{idx: idx}
}

var (
	// "<title> at/in/@ <company> at/in/@ <location>"
	reTitleCompanyLocation = regexp.MustCompile(`(?i)^(.+?)\s+(?:at|in|@)\s+(.+?)\s+(?:at|in|@)\s+(.+)$`)
	// "<company-ish> at/in/@ <location-ish>"
	reCompanyLocation = regexp.MustCompile(`(?i)^(.+?)\s+(?:at|in|@)\s+(.+)$`)
	// "<title> at/@ <company>"
	reTitleCompany = regexp.MustCompile(`(?i)^(.+?)\s+(?:at|@)\s+(.+)$`)

	// Words that mark the left side of "x at y" as a job title rather
	// than a company name.
	reTitleWord = regexp.MustCompile(`(?i)\b(engineer|developer|manager|analyst|designer|architect|scientist|consultant|executive|specialist|lead|intern|director|officer|administrator|recruiter|writer|tester|accountant|nurse|teacher)\b`)
)

var exactIndicators = []string{"at ", " in ", "@", "position:", "company:", "location:"}

// Interpret converts a raw search string into an exact-match descriptor or
// a single search term, per the tiered resolution rules.
func (in *Interpreter) Interpret(raw string) Interpretation {
	trimmed := strings.TrimSpace(raw)

	if q := parseExact(trimmed); q != nil {
		return Interpretation{Exact: q}
	}

	lowered := strings.ToLower(trimmed)
	if term, ok := in.resolve(lowered); ok {
		return Interpretation{Term: term}
	}
	return Interpretation{Term: trimmed}
}

// parseExact tests the structural patterns in order; first match wins.
// A raw string that merely contains an exact-match indicator without
// fitting any pattern becomes a broad descriptor where every field is
// the trimmed original.
func parseExact(trimmed string) *ExactMatchQuery {
	if trimmed == "" {
		return nil
	}

	if m := reTitleCompanyLocation.FindStringSubmatch(trimmed); m != nil {
		return &ExactMatchQuery{
			JobTitle: strings.TrimSpace(m[1]),
			Company:  strings.TrimSpace(m[2]),
			Location: strings.TrimSpace(m[3]),
			Original: trimmed,
		}
	}

	if m := reCompanyLocation.FindStringSubmatch(trimmed); m != nil && !reTitleWord.MatchString(m[1]) {
		// No title group in this pattern: default it to the company capture.
		company := strings.TrimSpace(m[1])
		return &ExactMatchQuery{
			JobTitle: company,
			Company:  company,
			Location: strings.TrimSpace(m[2]),
			Original: trimmed,
		}
	}

	if m := reTitleCompany.FindStringSubmatch(trimmed); m != nil {
		// No location group in this pattern: default it to the company capture.
		company := strings.TrimSpace(m[2])
		return &ExactMatchQuery{
			JobTitle: strings.TrimSpace(m[1]),
			Company:  company,
			Location: company,
			Original: trimmed,
		}
	}

	low := strings.ToLower(trimmed)
	for _, ind := range exactIndicators {
		if strings.Contains(low, ind) {
			return &ExactMatchQuery{
				JobTitle: trimmed,
				Company:  trimmed,
				Location: trimmed,
				Original: trimmed,
			}
		}
	}
	return nil
}

// tierMatcher is one leniency level of the cascading resolution. Tiers are
// evaluated strictly in order; within a tier, canonical terms are scanned
// in table-insertion order and the first variant hit wins.
type tierMatcher struct {
	name  string
	match func(raw, variant string) bool
}

var resolutionTiers = []tierMatcher{
	{"direct", func(raw, v string) bool {
		return strings.Contains(raw, v) || strings.Contains(v, raw) || Similarity(raw, v) > 0.8
	}},
	{"variation", func(raw, v string) bool {
		return Similarity(raw, v) > 0.7
	}},
	{"word", func(raw, v string) bool {
		return anyWordPair(raw, v, func(rw, vw string) bool {
			return Similarity(rw, vw) > 0.8
		})
	}},
	{"cross", func(raw, v string) bool {
		return anyWordPair(raw, v, func(rw, vw string) bool {
			return strings.Contains(rw, vw) || strings.Contains(vw, rw) || Similarity(rw, vw) > 0.6
		})
	}},
	{"fallback", func(raw, v string) bool {
		return Similarity(raw, v) > 0.5
	}},
}

func (in *Interpreter) resolve(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}
	for _, tier := range resolutionTiers {
		for _, e := range in.idx.Entries {
			// The canonical phrase counts as its own variant.
			if tier.match(raw, e.Term) {
				return e.Term, true
			}
			for _, v := range e.Variants {
				if tier.match(raw, v) {
					return e.Term, true
				}
			}
		}
	}
	return "", false
}

func anyWordPair(raw, variant string, pred func(rw, vw string) bool) bool {
	for _, rw := range strings.Fields(raw) {
		for _, vw := range strings.Fields(variant) {
			if pred(rw, vw) {
				return true
			}
		}
	}
	return false
}
