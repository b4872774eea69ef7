package httpapi

import (
	"context"
	"database/sql"
	"sync/atomic"

	"jobmatch-engine/internal/config"
	"jobmatch-engine/internal/domain"
	"jobmatch-engine/internal/events"
	"jobmatch-engine/internal/facet"
	"jobmatch-engine/internal/match"
)

// SearchRecorder receives completed searches as fire-and-forget events.
type SearchRecorder interface {
	Record(query string, filters domain.FilterState, resultsCount int)
}

type Deps struct {
	DB *sql.DB

	Hub *events.Hub

	Engine *facet.Engine
	Index  *match.Index

	// Atomic stores
	CfgVal         *atomic.Value // stores config.Config
	SnapshotVal    *atomic.Value // stores []domain.Job
	SnapshotStatus *atomic.Value // stores httpapi.SnapshotStatus

	History SearchRecorder

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Snapshot refresh entrypoint (inject for testability)
	RefreshSnapshot func(ctx context.Context) (count int, err error)
}
