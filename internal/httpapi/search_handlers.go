package httpapi

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"jobmatch-engine/internal/domain"
	"jobmatch-engine/internal/events"
	"jobmatch-engine/internal/facet"
	"jobmatch-engine/internal/match"
	"jobmatch-engine/internal/rank"
)

type SearchHandler struct {
	Engine      *facet.Engine
	Interp      *match.Interpreter
	SnapshotVal *atomic.Value // []domain.Job
	History     SearchRecorder
	Hub         *events.Hub

	// Now is injectable for expiry tests; nil means time.Now.
	Now func() time.Time
}

// Search runs the full pipeline over the current snapshot:
// interpret -> facet filter -> expiry filter -> rank.
func (h SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	mode, err := rank.ParseSortMode(req.SortMode)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_sort_mode", err.Error())
		return
	}

	var snapshot []domain.Job
	if v := h.SnapshotVal.Load(); v != nil {
		snapshot = v.([]domain.Job)
	}

	now := time.Now
	if h.Now != nil {
		now = h.Now
	}

	filtered, diags := h.Engine.FilterJobsDiagnostics(snapshot, req.Filters)
	live := facet.ApplyExpiryFilter(filtered, now().UTC())

	ranked, err := rank.RankJobs(live, mode, req.Filters.HasActiveFilters())
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_sort_mode", err.Error())
		return
	}

	if h.History != nil {
		h.History.Record(req.Filters.Search, req.Filters, len(ranked))
	}
	if h.Hub != nil {
		h.Hub.Publish(events.SearchCompleted(RequestIDFrom(r.Context()), req.Filters.Search, len(ranked)))
	}

	writeJSON(w, SearchResponse{
		Jobs:        ranked,
		Diagnostics: diagsFor(ranked, diags),
		Count:       len(ranked),
	})
}

// diagsFor keeps only the diagnostics of jobs that survived expiry,
// re-ordered to follow the ranked output.
func diagsFor(ranked []domain.Job, diags []facet.Diagnostic) []facet.Diagnostic {
	byID := make(map[string]facet.Diagnostic, len(diags))
	for _, d := range diags {
		byID[d.JobID] = d
	}
	out := make([]facet.Diagnostic, 0, len(ranked))
	for _, j := range ranked {
		if d, ok := byID[j.ID]; ok {
			out = append(out, d)
		}
	}
	return out
}

// Interpret exposes the query interpreter read-only, mostly for the UI's
// "did you mean" hinting.
func (h SearchHandler) Interpret(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_query", "q parameter is required")
		return
	}
	writeJSON(w, h.Interp.Interpret(q))
}
