package facet

import (
	"strings"

	"jobmatch-engine/internal/domain"
	"jobmatch-engine/internal/match"
)

// Engine applies an interpreted search query plus every other active facet
// to a job snapshot in a single pass. It holds no mutable state: given the
// same inputs it always returns the same jobs in the same order.
type Engine struct {
	interp *match.Interpreter
	idx    *match.Index

	// SalaryScale multiplies parsed salary-range bounds; the caller's
	// currency convention decides it (e.g. 100000 for "lakhs per annum").
	SalaryScale float64
}

func NewEngine(idx *match.Index) *Engine {
	if idx == nil {
		idx = match.Default()
	}
	return &Engine{
		interp:      match.NewInterpreter(idx),
		idx:         idx,
		SalaryScale: 1,
	}
}

// Diagnostic names the facets a surviving job matched, for UI badges.
type Diagnostic struct {
	JobID  string   `json:"jobId"`
	Facets []string `json:"facets"`
}

// FilterJobs returns the jobs passing every active facet group, preserving
// input order.
func (e *Engine) FilterJobs(jobs []domain.Job, f domain.FilterState) []domain.Job {
	out, _ := e.FilterJobsDiagnostics(jobs, f)
	return out
}

// FilterJobsDiagnostics is FilterJobs plus per-job match diagnostics.
//
// Combination rule: every active non-category facet must pass (AND). The
// three category facets are combined with OR among themselves, and that
// OR result is ANDed with the rest when any category facet is active.
func (e *Engine) FilterJobsDiagnostics(jobs []domain.Job, f domain.FilterState) ([]domain.Job, []Diagnostic) {
	var q match.Interpretation
	var rawSearch string
	searchActive := domain.ActiveString(f.Search)
	if searchActive {
		rawSearch = strings.ToLower(strings.TrimSpace(f.Search))
		q = e.interp.Interpret(f.Search)
	}

	// An unparsable salary range deactivates the facet rather than
	// rejecting everything.
	salMin, salMax, salaryActive := parseSalaryRange(f.SalaryRange, e.SalaryScale)

	out := make([]domain.Job, 0, len(jobs))
	diags := make([]Diagnostic, 0, len(jobs))

	for _, j := range jobs {
		var hits []string
		keep := true

		check := func(name string, active bool, matched bool) {
			if !keep || !active {
				return
			}
			if matched {
				hits = append(hits, name)
			} else {
				keep = false
			}
		}

		check("search", searchActive, e.searchMatches(j, q, rawSearch))
		check("location", domain.ActiveString(f.Location), locationMatches(f.Location, j))
		check("experience", domain.ActiveSet(f.ExperienceLevels), experienceMatches(f.ExperienceLevels, j))
		check("jobType", domain.ActiveSet(f.JobTypes), jobTypeMatches(f.JobTypes, j))
		check("salary", salaryActive, salaryMatches(salMin, salMax, j))
		check("skills", domain.ActiveString(f.Skills), skillsMatch(f.Skills, j))
		check("companyType", domain.ActiveString(f.CompanyType), companyTypeMatches(f.CompanyType, j))
		check("workMode", domain.ActiveString(f.WorkMode), workModeMatches(f.WorkMode, j))
		check("education", domain.ActiveString(f.Education), educationMatches(f.Education, j))
		check("companyName", domain.ActiveString(f.CompanyName), companyNameMatches(f.CompanyName, j))
		check("jobTitle", domain.ActiveString(f.JobTitle), jobTitleMatches(f.JobTitle, j))
		check("recruiterType", domain.ActiveString(f.RecruiterType), recruiterTypeMatches(f.RecruiterType, j))
		check("category", f.HasCategoryFacet(), e.categoryFacetMatches(j, f))

		if keep {
			out = append(out, j)
			diags = append(diags, Diagnostic{JobID: j.ID, Facets: hits})
		}
	}
	return out, diags
}

func locationMatches(want string, j domain.Job) bool {
	w := strings.ToLower(strings.TrimSpace(want))
	loc := strings.ToLower(j.Location)
	if biContains(w, loc) {
		return true
	}
	// Remote synonym rule: a filter mentioning remote/home also accepts
	// jobs flagged remote or whose work mode mentions remote.
	if strings.Contains(w, "remote") || strings.Contains(w, "home") {
		if strings.Contains(strings.ToLower(j.WorkMode), "remote") || strings.Contains(loc, "remote") {
			return true
		}
	}
	return false
}

func experienceMatches(levels []string, j domain.Job) bool {
	exp := strings.ToLower(j.ExperienceLevel)
	for _, l := range levels {
		l = strings.ToLower(strings.TrimSpace(l))
		if l != "" && strings.Contains(exp, l) {
			return true
		}
	}
	return false
}

func jobTypeMatches(types []string, j domain.Job) bool {
	for _, t := range types {
		if strings.EqualFold(strings.TrimSpace(t), strings.TrimSpace(j.JobType)) && strings.TrimSpace(t) != "" {
			return true
		}
	}
	return false
}

func skillsMatch(csv string, j domain.Job) bool {
	desc := strings.ToLower(j.Description)
	for _, term := range strings.Split(csv, ",") {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if strings.Contains(desc, term) {
			return true
		}
		for _, sk := range j.Skills {
			if strings.Contains(strings.ToLower(sk), term) {
				return true
			}
		}
	}
	return false
}

var companyTypeSynonyms = map[string][]string{
	"mnc":        {"mnc", "multinational", "global"},
	"startup":    {"startup", "start-up", "early stage"},
	"corporate":  {"corporate", "private"},
	"government": {"government", "public sector", "psu"},
}

func companyTypeMatches(want string, j domain.Job) bool {
	w := strings.ToLower(strings.TrimSpace(want))
	have := strings.ToLower(j.Company.CompanyType)
	if have == "" {
		return false
	}
	candidates := companyTypeSynonyms[w]
	if candidates == nil {
		candidates = []string{w}
	}
	for _, c := range candidates {
		if strings.Contains(have, c) || strings.Contains(c, have) {
			return true
		}
	}
	return false
}

var remoteSynonyms = []string{"remote", "work from home", "wfh"}

func workModeMatches(want string, j domain.Job) bool {
	w := strings.ToLower(strings.TrimSpace(want))
	have := strings.ToLower(j.WorkMode)

	switch {
	case containsAny(w, remoteSynonyms):
		return containsAny(have, remoteSynonyms)
	case strings.Contains(w, "on-site") || strings.Contains(w, "onsite") || strings.Contains(w, "on site") || strings.Contains(w, "office"):
		// On-site is defined as the absence of every remote synonym.
		return !containsAny(have, remoteSynonyms)
	case strings.Contains(w, "hybrid"):
		return strings.Contains(have, "hybrid") || strings.Contains(have, "flexible")
	default:
		return have != "" && strings.Contains(have, w)
	}
}

var educationSynonyms = map[string][]string{
	"graduate":      {"graduate", "bachelor", "b.tech", "b.e", "bsc", "bca", "degree"},
	"post graduate": {"post graduate", "postgraduate", "master", "m.tech", "msc", "mca", "mba"},
	"postgraduate":  {"post graduate", "postgraduate", "master", "m.tech", "msc", "mca", "mba"},
	"doctorate":     {"doctorate", "phd", "ph.d"},
	"diploma":       {"diploma", "certificate", "certification"},
	"12th pass":     {"12th", "higher secondary", "intermediate"},
}

func educationMatches(want string, j domain.Job) bool {
	w := strings.ToLower(strings.TrimSpace(want))
	blob := strings.ToLower(j.Description + " " + j.Title)
	candidates := educationSynonyms[w]
	if candidates == nil {
		candidates = []string{w}
	}
	return containsAny(blob, candidates)
}

func companyNameMatches(want string, j domain.Job) bool {
	return biContains(strings.ToLower(strings.TrimSpace(want)), strings.ToLower(j.Company.Name))
}

func jobTitleMatches(want string, j domain.Job) bool {
	return biContains(strings.ToLower(strings.TrimSpace(want)), strings.ToLower(j.Title))
}

func recruiterTypeMatches(want string, j domain.Job) bool {
	w := strings.ToLower(strings.TrimSpace(want))
	have := strings.ToLower(strings.TrimSpace(j.RecruiterType))
	if have == "" {
		return false
	}
	return have == w || strings.Contains(have, w) || strings.Contains(w, have)
}

// biContains is substring containment either direction, with empty strings
// never matching.
func biContains(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(s, n) {
			return true
		}
	}
	return false
}
