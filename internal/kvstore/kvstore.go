package kvstore

import (
	"errors"
	"sync"
)

// ErrEmptyKey is returned by Set for an empty key
var ErrEmptyKey = errors.New("empty key")

// Store is a persistent string key-value store
type Store interface {
	// Get returns the value of key; ok is false when the key was never set
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Memory is a non-persistent Store
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return nil
}
