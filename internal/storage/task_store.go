package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/sandeepkv93/dayboard/internal/model"
)

const DefaultKey = "kanban"

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// TaskStore reads and writes the whole task collection as one blob under
// a single key.
type TaskStore struct {
	kv     KV
	key    string
	logger *log.Logger
}

func NewTaskStore(kv KV, key string, logger *log.Logger) *TaskStore {
	if strings.TrimSpace(key) == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &TaskStore{kv: kv, key: key, logger: logger}
}

// Open builds a TaskStore over the named backend. For sqlite, path is the
// database file; for file, path is the directory holding <key>.json.
func Open(backend, path, key string, logger *log.Logger) (*TaskStore, error) {
	var (
		kv  KV
		err error
	)
	switch backend {
	case BackendSQLite, "":
		kv, err = OpenSQLite(path)
	case BackendFile:
		kv, err = OpenFileKV(path)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", backend)
	}
	if err != nil {
		return nil, err
	}
	return NewTaskStore(kv, key, logger), nil
}

func (s *TaskStore) Key() string {
	return s.key
}

// Path is the file or directory the backend writes to.
func (s *TaskStore) Path() string {
	return s.kv.Path()
}

// WatchPath is the file that changes when the collection is saved.
func (s *TaskStore) WatchPath() string {
	if fkv, ok := s.kv.(*FileKV); ok {
		if path, err := fkv.fileFor(s.key); err == nil {
			return path
		}
	}
	return s.kv.Path()
}

func (s *TaskStore) Close() error {
	return s.kv.Close()
}

// Load returns the persisted collection. A missing or malformed blob is
// an empty collection; only backend I/O failures are returned as errors.
func (s *TaskStore) Load(ctx context.Context) ([]model.Task, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []model.Task{}, nil
		}
		return nil, fmt.Errorf("load %s: %w", s.key, err)
	}
	tasks, err := DecodeTasks(raw)
	if err != nil {
		s.logger.Warn("discarding malformed task blob", "key", s.key, "err", err)
		return []model.Task{}, nil
	}
	return tasks, nil
}

// Save replaces the persisted collection in a single write.
func (s *TaskStore) Save(ctx context.Context, tasks []model.Task) error {
	raw, err := EncodeTasks(tasks)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := s.kv.Put(ctx, s.key, raw); err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	s.logger.Debug("saved tasks", "key", s.key, "count", len(tasks))
	return nil
}
