package facet

import (
	"math"
	"strconv"
	"strings"

	"jobmatch-engine/internal/domain"
)

// parseSalaryRange parses the filter's "min-max" or "min+" encoding into
// numeric bounds scaled by the caller's currency convention. ok=false means
// the facet is inactive or unparsable and must be skipped entirely.
func parseSalaryRange(s string, scale float64) (min, max float64, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, false
	}
	if scale == 0 {
		scale = 1
	}

	if rest, found := strings.CutSuffix(s, "+"); found {
		v, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil {
			return 0, 0, false
		}
		return v * scale, math.MaxFloat64, true
	}

	lo, hi, found := strings.Cut(s, "-")
	if !found {
		return 0, 0, false
	}
	vlo, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return 0, 0, false
	}
	vhi, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return 0, 0, false
	}
	return vlo * scale, vhi * scale, true
}

// salaryMatches passes when the job's salary range intersects the filter
// range. Jobs without explicit bounds fall back to the leading numeric
// value of the display string.
func salaryMatches(min, max float64, j domain.Job) bool {
	jmin, jmax := j.SalaryMin, j.SalaryMax
	if jmin == 0 && jmax == 0 {
		v := j.SalaryValue()
		jmin, jmax = v, v
	}
	if jmax == 0 {
		jmax = jmin
	}
	return jmax >= min && jmin <= max
}
