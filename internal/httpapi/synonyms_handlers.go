package httpapi

import (
	"net/http"

	"jobmatch-engine/internal/match"
)

type SynonymsHandler struct {
	Index *match.Index
}

// Get dumps the immutable synonym table so the UI can show what a query
// may resolve to. The table never changes after startup.
func (h SynonymsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"terms":  h.Index.Entries,
		"groups": h.Index.Groups,
	})
}
