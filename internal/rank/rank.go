package rank

import (
	"fmt"
	"sort"

	"jobmatch-engine/internal/domain"
)

// SortMode selects the comparator used to order a filtered job collection.
type SortMode string

const (
	SortRecent     SortMode = "recent"
	SortSalary     SortMode = "salary"
	SortApplicants SortMode = "applicants"
	SortRating     SortMode = "rating"
)

// ConfigurationError marks a programming error at the interface boundary,
// as opposed to a data condition the engine degrades around.
type ConfigurationError struct {
	Field string
	Value string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

// ParseSortMode validates a wire value. Unknown values are rejected rather
// than silently defaulted.
func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(s) {
	case SortRecent, SortSalary, SortApplicants, SortRating:
		return SortMode(s), nil
	case "":
		return SortRecent, nil
	}
	return "", &ConfigurationError{Field: "sortMode", Value: s}
}

// RankJobs orders jobs by the chosen sort mode, descending, using a stable
// sort so equal keys keep their input order. When no facets are active the
// collection is first partitioned by IsPreferred (preferred first), each
// partition ordered by the sort mode.
func RankJobs(jobs []domain.Job, mode SortMode, hasActiveFilters bool) ([]domain.Job, error) {
	switch mode {
	case SortRecent, SortSalary, SortApplicants, SortRating:
	default:
		return nil, &ConfigurationError{Field: "sortMode", Value: string(mode)}
	}

	out := make([]domain.Job, len(jobs))
	copy(out, jobs)

	less := lessFor(mode)
	sort.SliceStable(out, func(i, k int) bool {
		a, b := out[i], out[k]
		if !hasActiveFilters && a.IsPreferred != b.IsPreferred {
			return a.IsPreferred
		}
		return less(a, b)
	})
	return out, nil
}

func lessFor(mode SortMode) func(a, b domain.Job) bool {
	switch mode {
	case SortSalary:
		return func(a, b domain.Job) bool { return a.SalaryValue() > b.SalaryValue() }
	case SortApplicants:
		return func(a, b domain.Job) bool { return a.ApplicantsCount > b.ApplicantsCount }
	case SortRating:
		return func(a, b domain.Job) bool { return a.Rating > b.Rating }
	default: // SortRecent
		return func(a, b domain.Job) bool { return a.PostedAt.After(b.PostedAt) }
	}
}
