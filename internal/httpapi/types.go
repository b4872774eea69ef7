package httpapi

import (
	"jobmatch-engine/internal/domain"
	"jobmatch-engine/internal/facet"
)

type SnapshotStatus struct {
	LastRunAt string `json:"last_run_at"`
	LastOkAt  string `json:"last_ok_at"`
	LastError string `json:"last_error"`
	JobCount  int    `json:"job_count"`
	Running   bool   `json:"running"`
}

type SearchRequest struct {
	Filters  domain.FilterState `json:"filters"`
	SortMode string             `json:"sortMode"`
}

type SearchResponse struct {
	Jobs        []domain.Job       `json:"jobs"`
	Diagnostics []facet.Diagnostic `json:"diagnostics,omitempty"`
	Count       int                `json:"count"`
}
