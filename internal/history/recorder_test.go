package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobmatch-engine/internal/domain"
	"jobmatch-engine/internal/store"
)

func testDB(t *testing.T) *store.DB {
	t.Helper()
	d, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	require.NoError(t, store.Migrate(d.Pool))
	return d
}

func TestRecorder_PersistsSearches(t *testing.T) {
	d := testDB(t)
	r := NewRecorder(d.Pool)

	r.Record("python developer", domain.FilterState{Location: "Pune"}, 7)
	r.Record("sales manager", domain.FilterState{}, 0)
	r.Close()

	got, err := store.ListSearches(context.Background(), d.Pool, store.ListSearchesOpts{Window: "all"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	queries := []string{got[0].Query, got[1].Query}
	assert.ElementsMatch(t, []string{"python developer", "sales manager"}, queries)
	for _, s := range got {
		if s.Query == "python developer" {
			assert.Equal(t, "Pune", s.Filters.Location)
			assert.Equal(t, 7, s.ResultsCount)
		}
	}
}

func TestRecorder_CloseIsIdempotent(t *testing.T) {
	d := testDB(t)
	r := NewRecorder(d.Pool)
	r.Record("q", domain.FilterState{}, 1)
	r.Close()
	r.Close()
}
