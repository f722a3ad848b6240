package storage

import (
	"errors"
	"fmt"
)

const (
	DatasetsDir = "datasets"
	ResultsDir  = "results"
)

var (
	DefaultDir = "file-storage"
)

// Shard creates a new storage implementation for the given shard.
type Shard func(shard string) (Persistence, error)

var (
	NotFoundErr     = errors.New("not found")
	CouldNotLoadErr = errors.New("could not load")
)

// Key is the storage key for a general implementation.
// Name identifies the dataset, Run the evaluation run (empty for raw datasets).
type Key struct {
	Name  string `json:"name"`
	Run   string `json:"run"`
	Label string `json:"label"`
}

func (k Key) Path() string {
	if k.Run == "" {
		return fmt.Sprintf("%s_%s", k.Name, k.Label)
	}
	return fmt.Sprintf("%s_%s_%s", k.Name, k.Run, k.Label)
}

type Persistence interface {
	Store(k Key, value interface{}) error
	Load(k Key, value interface{}) error
}

// VoidStorage ignores all writes and finds nothing.
type VoidStorage struct {
}

func (d VoidStorage) Store(k Key, value interface{}) error {
	return nil
}

func (d VoidStorage) Load(k Key, value interface{}) error {
	return fmt.Errorf("not found '%v': %w", k, NotFoundErr)
}

func NewVoidStorage() *VoidStorage {
	return &VoidStorage{}
}
