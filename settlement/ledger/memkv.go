package ledger

import (
	"errors"
	"sync"
)

// MemKV is an in-memory KeyValueReaderWriter used in tests and in
// deployments without a blockstore path configured.
type MemKV struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewMemKV() *MemKV {
	return &MemKV{m: make(map[string][]byte)}
}

func (s *MemKV) GetByKey(key []byte) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.m[string(key)]
	if !ok {
		return nil, errors.New("no value found")
	}
	return v, nil
}

func (s *MemKV) SetByKey(key []byte, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m[string(key)] = append([]byte(nil), value...)
	return nil
}
