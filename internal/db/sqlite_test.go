package db

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"alignbench/internal/benchmark"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRecords() []benchmark.Record {
	return []benchmark.Record{
		{
			ReadName: "r1", Algo: "astar-seeds", AlgoCode: 3,
			Pushed: 10, Popped: 20, ExploredStates: 300, Len: 100, TMap: 0.5, Cost: 2,
			Crumbs: 40, HasCrumbs: true,
			PushedPopped: 30, ExploredPerBP: 3, TMapPerBP: 0.005, CrumbsPerBP: 0.4, ErrorRate: 0.02,
			Extra: map[string]string{"memory": "12"},
		},
		{
			ReadName: "r1", Algo: "dijkstra", AlgoCode: 1,
			Pushed: 1, Popped: 1, ExploredStates: 5, Len: 0, TMap: 0, Cost: 0,
			Crumbs: 0, HasCrumbs: true,
			PushedPopped: 2, ExploredPerBP: math.Inf(1), TMapPerBP: math.NaN(), CrumbsPerBP: math.NaN(), ErrorRate: math.NaN(),
		},
	}
}

func TestSQLiteStore_SaveLoad(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveRun("baseline", sampleRecords()))

	got, err := store.LoadRun("baseline")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, sampleRecords()[0], got[0])

	second := got[1]
	assert.Equal(t, "r1", second.ReadName)
	assert.Equal(t, "dijkstra", second.Algo)
	assert.True(t, math.IsInf(second.ExploredPerBP, 1))
	assert.True(t, math.IsNaN(second.TMapPerBP))
	assert.True(t, math.IsNaN(second.ErrorRate))
	assert.Nil(t, second.Extra)
}

func TestSQLiteStore_SaveReplaces(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveRun("run", sampleRecords()))
	require.NoError(t, store.SaveRun("run", sampleRecords()[:1]))

	got, err := store.LoadRun("run")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	runs, err := store.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 1, runs[0].Rows)
}

func TestSQLiteStore_NoCrumbs(t *testing.T) {
	store := newTestStore(t)

	recs := []benchmark.Record{{ReadName: "a", Algo: "pasgal", AlgoCode: 4, Len: 10, Cost: 1, ErrorRate: 0.1}}
	require.NoError(t, store.SaveRun("plain", recs))

	got, err := store.LoadRun("plain")
	require.NoError(t, err)
	assert.Equal(t, recs, got)

	runs, err := store.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.False(t, runs[0].HasCrumbs)
	assert.False(t, runs[0].CreatedAt.IsZero())
}

func TestSQLiteStore_ListAndDelete(t *testing.T) {
	store := newTestStore(t)

	runs, err := store.ListRuns()
	require.NoError(t, err)
	assert.Empty(t, runs)

	require.NoError(t, store.SaveRun("a", sampleRecords()))
	require.NoError(t, store.SaveRun("b", sampleRecords()))

	runs, err = store.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.True(t, runs[0].HasCrumbs)
	assert.Equal(t, 2, runs[0].Rows)

	require.NoError(t, store.DeleteRun("a"))
	_, err = store.LoadRun("a")
	assert.True(t, errors.Is(err, ErrRunNotFound))

	err = store.DeleteRun("a")
	assert.True(t, errors.Is(err, ErrRunNotFound))

	got, err := store.LoadRun("b")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSQLiteStore_EmptyRun(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveRun("empty", nil))
	got, err := store.LoadRun("empty")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDollarPlaceholders(t *testing.T) {
	assert.Equal(t, "SELECT a FROM t WHERE x = $1 AND y = $2", dollarPlaceholders("SELECT a FROM t WHERE x = ? AND y = ?"))
	assert.Equal(t, "SELECT 1", dollarPlaceholders("SELECT 1"))
}
