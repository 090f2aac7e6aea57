// Package statestore implements the whole-record key-value table backing
// all persisted ChargeHub state. The default backend keeps records in
// memory and flushes the full table to a single JSON file on every write;
// a Redis backend is available as an alternative.
package statestore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/chargehub/chargehub/internal/ports"
)

type FileStore struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
	log  *zap.Logger
}

// NewFileStore opens (or creates) the store file at path. An unreadable or
// corrupt file is logged and replaced with an empty table rather than
// surfaced as an error.
func NewFileStore(path string, log *zap.Logger) (*FileStore, error) {
	s := &FileStore{
		path: path,
		data: make(map[string]json.RawMessage),
		log:  log,
	}

	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// First run.
	case err != nil:
		log.Warn("State file unreadable, starting empty",
			zap.String("path", path), zap.Error(err))
	default:
		if err := json.Unmarshal(raw, &s.data); err != nil {
			log.Warn("State file corrupt, starting empty",
				zap.String("path", path), zap.Error(err))
			s.data = make(map[string]json.RawMessage)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	log.Info("File state store opened",
		zap.String("path", path), zap.Int("keys", len(s.data)))
	return s, nil
}

func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok := s.data[key]
	if !ok {
		return nil, ports.ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = append(json.RawMessage(nil), value...)
	return s.flushLocked()
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return s.flushLocked()
}

func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushLocked()
}

// flushLocked rewrites the whole table. A temp-file rename keeps a crash
// from leaving a half-written state file behind.
func (s *FileStore) flushLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
