package httpapi

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"
)

type SnapshotHandler struct {
	SnapshotStatus  *atomic.Value // httpapi.SnapshotStatus
	RefreshSnapshot func(ctx context.Context) (count int, err error)
}

func (h SnapshotHandler) Status(w http.ResponseWriter, r *http.Request) {
	st := h.SnapshotStatus.Load().(SnapshotStatus)
	writeJSON(w, st)
}

func (h SnapshotHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	st := h.SnapshotStatus.Load().(SnapshotStatus)
	if st.Running {
		writeJSON(w, map[string]any{"ok": false, "msg": "already running"})
		return
	}

	h.SnapshotStatus.Store(SnapshotStatus{
		LastRunAt: time.Now().Format(time.RFC3339),
		Running:   true,
		LastOkAt:  st.LastOkAt,
		JobCount:  st.JobCount,
	})

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		count, err := h.RefreshSnapshot(ctx)

		now := time.Now().Format(time.RFC3339)
		next := h.SnapshotStatus.Load().(SnapshotStatus)
		next.Running = false
		next.LastRunAt = now
		if err != nil {
			next.LastError = err.Error()
		} else {
			next.LastError = ""
			next.LastOkAt = now
			next.JobCount = count
		}
		h.SnapshotStatus.Store(next)
	}()

	writeJSON(w, map[string]any{"ok": true})
}
