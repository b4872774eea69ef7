package facet

import (
	"time"

	"jobmatch-engine/internal/domain"
)

// ApplyExpiryFilter drops jobs whose validity window has elapsed: a job is
// removed when ValidTill is set and strictly earlier than now. Jobs without
// a ValidTill always pass. The pass is idempotent and independent of facet
// state.
func ApplyExpiryFilter(jobs []domain.Job, now time.Time) []domain.Job {
	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.ValidTill != nil && j.ValidTill.Before(now) {
			continue
		}
		out = append(out, j)
	}
	return out
}
