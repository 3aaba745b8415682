package sheets

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps collections in process memory. It backs tests and
// local development; rows are lost on restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][][]string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][][]string)}
}

func (s *MemoryStore) AppendRow(_ context.Context, collection string, cells []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := make([]string, len(cells))
	copy(row, cells)
	s.data[collection] = append(s.data[collection], row)
	return nil
}

func (s *MemoryStore) FindRow(_ context.Context, collection, key string) (int, []string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, row := range s.data[collection] {
		if len(row) > 0 && row[0] == key {
			out := make([]string, len(row))
			copy(out, row)
			return i + 1, out, nil
		}
	}
	return 0, nil, ErrRowNotFound
}

func (s *MemoryStore) UpdateCell(_ context.Context, collection string, row, col int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := s.data[collection]
	if row < 1 || row > len(rows) {
		return fmt.Errorf("sheets: row %d out of range for %s", row, collection)
	}
	cells := rows[row-1]
	if col < 1 {
		return fmt.Errorf("sheets: column %d out of range", col)
	}
	for len(cells) < col {
		cells = append(cells, "")
	}
	cells[col-1] = value
	rows[row-1] = cells
	return nil
}

func (s *MemoryStore) Rows(_ context.Context, collection string) ([][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := s.data[collection]
	out := make([][]string, len(rows))
	for i, row := range rows {
		cp := make([]string, len(row))
		copy(cp, row)
		out[i] = cp
	}
	return out, nil
}
