package httpapi

import (
	"database/sql"
	"net/http"
	"strconv"

	"jobmatch-engine/internal/store"
)

type HistoryHandler struct {
	DB *sql.DB
}

func (h HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))

	searches, err := store.ListSearches(r.Context(), h.DB, store.ListSearchesOpts{
		Window: q.Get("window"),
		Limit:  limit,
	})
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "history_list_failed", err.Error())
		return
	}
	writeJSON(w, searches)
}
