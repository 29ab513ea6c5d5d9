package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sucan/ordertrack/internal/domain/model"
)

// Store persists the order collection as a single pretty-printed JSON array
// document. Writes go through a temp file plus rename so a concurrent reader
// never observes a partial document.
type Store struct {
	path   string
	logger *slog.Logger
}

// New creates a file-backed order store. The file is created lazily on the
// first save.
func New(path string, logger *slog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// LoadAll reads the stored collection. A missing file yields an empty
// collection; an unparseable one is logged and also yields an empty
// collection, which loses the previous content on the next save.
func (s *Store) LoadAll(ctx context.Context) ([]model.Order, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []model.Order{}, nil
		}
		return nil, fmt.Errorf("read orders file: %w", err)
	}

	var orders []model.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		s.logger.Warn("orders file is corrupt, starting from an empty collection",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
		return []model.Order{}, nil
	}

	for i := range orders {
		orders[i].Normalize()
	}
	return orders, nil
}

// SaveAll overwrites the stored collection in insertion order.
func (s *Store) SaveAll(ctx context.Context, orders []model.Order) error {
	if orders == nil {
		orders = []model.Order{}
	}

	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return fmt.Errorf("encode orders: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp orders file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp orders file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp orders file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace orders file: %w", err)
	}
	return nil
}
