package history

import (
	"context"
	"database/sql"
	"log"
	"sync"
	"time"

	"jobmatch-engine/internal/domain"
	"jobmatch-engine/internal/store"
)

// Recorder persists search events off the request path. Record never
// blocks and never returns an error: history is fire-and-forget and a
// write failure must not affect the search result.
type Recorder struct {
	db *sql.DB
	ch chan store.Search

	once sync.Once
	done chan struct{}
}

func NewRecorder(db *sql.DB) *Recorder {
	r := &Recorder{
		db:   db,
		ch:   make(chan store.Search, 64),
		done: make(chan struct{}),
	}
	go r.run()
	return r
}

func (r *Recorder) Record(query string, filters domain.FilterState, resultsCount int) {
	s := store.Search{
		Query:        query,
		Filters:      filters,
		ResultsCount: resultsCount,
		At:           time.Now().UTC().Format(time.RFC3339),
	}
	select {
	case r.ch <- s:
	default:
		// drop if the writer is behind
	}
}

func (r *Recorder) run() {
	defer close(r.done)
	for s := range r.ch {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if _, err := store.InsertSearch(ctx, r.db, s); err != nil {
			log.Printf("level=warn msg=\"history write failed\" err=%v", err)
		}
		cancel()
	}
}

// Close drains pending writes and stops the worker.
func (r *Recorder) Close() {
	r.once.Do(func() {
		close(r.ch)
		<-r.done
	})
}
