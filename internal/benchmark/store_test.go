package benchmark

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "nested", "history.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	defer store.Close()

	// Test LoadAll on empty
	runs, err := store.LoadAll("call")
	assert.NoError(t, err)
	assert.Empty(t, runs)

	latest, err := store.LoadLatest("call")
	assert.NoError(t, err)
	assert.Nil(t, latest)

	// Save the newer run first to check ordering on load
	run2 := Run{
		ID:        "2",
		Suite:     "call",
		Timestamp: time.Now(),
		Commit:    "def",
		Results:   []Result{{Name: "direct_call", Iterations: 1, Elapsed: 110 * time.Millisecond}},
	}
	run1 := Run{
		ID:        "1",
		Suite:     "call",
		Timestamp: time.Now().Add(-1 * time.Hour),
		Commit:    "abc",
		Results:   []Result{{Name: "direct_call", Iterations: 1, Elapsed: 100 * time.Millisecond}},
	}
	other := Run{
		ID:        "3",
		Suite:     "alloc",
		Timestamp: time.Now().Add(time.Hour),
		Results:   []Result{{Name: "native", Iterations: 1, Elapsed: time.Second}},
	}
	require.NoError(t, store.Save(run2))
	require.NoError(t, store.Save(run1))
	require.NoError(t, store.Save(other))

	runs, err = store.LoadAll("call")
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "abc", runs[0].Commit)
	assert.Equal(t, "def", runs[1].Commit)
	assert.Equal(t, 110*time.Millisecond, runs[1].Results[0].Elapsed)

	latest, err = store.LoadLatest("call")
	require.NoError(t, err)
	assert.Equal(t, "2", latest.ID)

	all, err := store.LoadAll("")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestFileStore_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = store.LoadAll("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal runs")

	err = store.Save(Run{Suite: "call"})
	assert.Error(t, err)
}

func TestNewRun(t *testing.T) {
	report := &Report{
		Suite:   "alloc",
		Results: []Result{{Name: "native", Iterations: 1, Elapsed: time.Millisecond}},
	}

	run := NewRun(report, "abc123")
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "alloc", run.Suite)
	assert.Equal(t, "abc123", run.Commit)
	assert.Equal(t, report.Results, run.Results)
	assert.False(t, run.Timestamp.IsZero())

	// The run owns its results.
	report.Results[0].Name = "changed"
	assert.Equal(t, "native", run.Results[0].Name)
}
