package progress

import (
	"context"

	"github.com/abhisek/uxlab/internal/store"
)

// storageKey is the single durable entry holding the progress snapshot.
// Nothing outside this package reads or writes it.
const storageKey = "heuristics-game"

// Storage persists the serialized snapshot.
type Storage interface {
	// Load returns the persisted blob, or nil if nothing has been saved.
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the persisted blob.
	Save(ctx context.Context, data []byte) error
}

// kvStorage binds a store.KVRepo to the progress key.
type kvStorage struct {
	repo store.KVRepo
}

// NewKVStorage returns a Storage that keeps the snapshot in repo.
func NewKVStorage(repo store.KVRepo) Storage {
	return &kvStorage{repo: repo}
}

func (s *kvStorage) Load(ctx context.Context) ([]byte, error) {
	return s.repo.Get(ctx, storageKey)
}

func (s *kvStorage) Save(ctx context.Context, data []byte) error {
	return s.repo.Put(ctx, storageKey, data)
}
