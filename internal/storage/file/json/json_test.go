package json

import (
	"testing"

	"github.com/algohertz/silhouette/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Run  string    `json:"run"`
	Mean float64   `json:"mean"`
	Rows []float64 `json:"rows"`
}

func TestBlobStorage(t *testing.T) {
	dir := storage.DefaultDir
	storage.DefaultDir = t.TempDir()
	defer func() { storage.DefaultDir = dir }()

	blob := NewJsonBlob(storage.ResultsDir, "exact", false)

	k := storage.Key{
		Name:  "clusters_100_5",
		Run:   uuid.New().String(),
		Label: "result",
	}
	stored := payload{Run: k.Run, Mean: 0.87, Rows: []float64{0.9, 0.84}}
	require.NoError(t, blob.Store(k, stored))

	var loaded payload
	require.NoError(t, blob.Load(k, &loaded))
	assert.Equal(t, stored, loaded)

	err := blob.Load(storage.Key{Name: "missing", Label: "result"}, &loaded)
	assert.ErrorIs(t, err, storage.NotFoundErr)
}

func TestLocalStorage(t *testing.T) {
	store, err := LocalShard()("test")
	require.NoError(t, err)

	k := storage.Key{Name: "pairs", Label: "dataset"}
	require.NoError(t, store.Store(k, payload{Mean: 1}))

	var loaded payload
	require.NoError(t, store.Load(k, &loaded))
	assert.Equal(t, 1.0, loaded.Mean)

	err = store.Load(storage.Key{Name: "other"}, &loaded)
	assert.ErrorIs(t, err, storage.NotFoundErr)
}
