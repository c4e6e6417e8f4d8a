// Package memory keeps widget values in process memory.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go-chi-calculator/internal/calculator"
)

// Store is a map-backed calculator.Store. Values are lost on exit.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// New returns an empty store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// Load returns the value stored under key.
func (s *Store) Load(_ context.Context, key string) (string, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, fmt.Errorf("key is required")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

// Save stores value under key.
func (s *Store) Save(_ context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

var _ calculator.Store = (*Store)(nil)
