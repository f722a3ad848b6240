package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/algohertz/silhouette/internal/silhouette"
	"github.com/algohertz/silhouette/internal/storage"
	jsonstore "github.com/algohertz/silhouette/internal/storage/file/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) storage.Persistence {
	store, err := jsonstore.LocalShard()("test")
	require.NoError(t, err)
	return store
}

func TestCSV(t *testing.T) {
	ds, err := silhouette.NewDataset(
		[][]float64{{0.5, 1.5}, {2, 3}, {-1, -2.25}},
		[]int{0, 0, 1},
	)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "clusters.csv")
	require.NoError(t, SaveCSV(path, ds))

	loaded, err := LoadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, ds.Len(), loaded.Len())
	assert.Equal(t, ds.Labels(), loaded.Labels())
	assert.Equal(t, ds.Points(), loaded.Points())
}

func TestLoadCSV_BadHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("label,ax0\n0,1.0\n"), 0644))

	_, err := LoadCSV(path)
	assert.Error(t, err)
}

func TestLoadCSV_Missing(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestStoreLoad(t *testing.T) {
	store := newTestStore(t)

	ds, err := silhouette.NewDataset([][]float64{{1}, {2}}, []int{0, 1})
	require.NoError(t, err)

	require.NoError(t, Store(store, "pairs", ds))

	loaded, err := Load(store, "pairs")
	require.NoError(t, err)
	assert.Equal(t, ds.Points(), loaded.Points())
	assert.Equal(t, ds.Labels(), loaded.Labels())

	_, err = Load(store, "unknown")
	assert.Error(t, err)
}

func TestStoreLoad_Blob(t *testing.T) {
	dir := storage.DefaultDir
	storage.DefaultDir = t.TempDir()
	defer func() { storage.DefaultDir = dir }()

	blob, err := jsonstore.BlobShard(storage.DatasetsDir)("generated")
	require.NoError(t, err)

	ds, err := silhouette.NewDataset([][]float64{{1, 2}, {3, 4}}, []int{0, 1})
	require.NoError(t, err)

	require.NoError(t, Store(blob, "clusters", ds))

	loaded, err := Load(blob, "clusters")
	require.NoError(t, err)
	assert.Equal(t, ds.Points(), loaded.Points())
	assert.Equal(t, ds.Labels(), loaded.Labels())
}

func TestDescribe(t *testing.T) {
	ds, err := silhouette.NewDataset([][]float64{{0, 10}, {2, 30}}, []int{0, 1})
	require.NoError(t, err)

	stats := Describe(ds).Stats()
	assert.InDelta(t, 1, stats[0].Avg(), 1e-12)
	assert.InDelta(t, 20, stats[1].Avg(), 1e-12)
	assert.Equal(t, 30.0, stats[1].Max())
}
