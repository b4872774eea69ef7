package httpapi

import (
	"net/http"

	"jobmatch-engine/internal/match"
)

// NewMux wires every handler; main() attaches middleware around it.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Search pipeline
	sh := SearchHandler{
		Engine:      d.Engine,
		Interp:      match.NewInterpreter(d.Index),
		SnapshotVal: d.SnapshotVal,
		History:     d.History,
		Hub:         d.Hub,
	}
	mux.HandleFunc("/search", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Search,
	}))
	mux.HandleFunc("/interpret", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Interpret,
	}))

	// Synonym table (read-only)
	syh := SynonymsHandler{Index: d.Index}
	mux.HandleFunc("/synonyms", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: syh.Get,
	}))

	// Search history
	hh := HistoryHandler{DB: d.DB}
	mux.HandleFunc("/history", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.List,
	}))

	// Snapshot refresh
	sph := SnapshotHandler{
		SnapshotStatus:  d.SnapshotStatus,
		RefreshSnapshot: d.RefreshSnapshot,
	}
	mux.HandleFunc("/snapshot/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sph.Status,
	}))
	mux.HandleFunc("/snapshot/refresh", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sph.Refresh,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))
	mux.HandleFunc("/config/validate", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Validate,
	}))

	// Secrets (use cfgVal, NOT a snapshot cfg)
	seh := SecretsHandler{CfgVal: d.CfgVal}
	mux.HandleFunc("/api/secrets/upstream", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: seh.SetUpstreamToken,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	// Maintenance
	dbh := DBHandler{DB: d.DB}
	mux.HandleFunc("/db/checkpoint", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: dbh.Checkpoint,
	}))

	hlh := HealthHandler{}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hlh.Health,
	}))

	return mux
}
