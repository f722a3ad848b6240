package json

import (
	"path/filepath"

	"github.com/algohertz/silhouette/internal/storage"
	"github.com/rs/zerolog/log"
)

// BlobStorage persists values as one json file per key.
// table has the same schema, shard is a logical split.
type BlobStorage struct {
	path  string
	table string
	shard string
	debug bool
}

func BlobShard(table string) storage.Shard {
	return func(shard string) (storage.Persistence, error) {
		return NewJsonBlob(table, shard, false), nil
	}
}

func NewJsonBlob(table, shard string, debug bool) *BlobStorage {
	return &BlobStorage{
		table: table,
		shard: shard,
		path:  storage.DefaultDir,
		debug: debug,
	}
}

func (s BlobStorage) Store(k storage.Key, value interface{}) error {
	p := filepath.Join(s.path, s.table, s.shard)
	err := Save(p, k.Path(), value)
	if err == nil && s.debug {
		log.Info().Str("path", p).Str("file", k.Path()).Msg("stored json file")
	}
	return err
}

func (s BlobStorage) Load(k storage.Key, value interface{}) error {
	return Load(filepath.Join(s.path, s.table, s.shard), k.Path(), value)
}
