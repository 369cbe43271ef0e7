package repository

import (
	"bytes"
	"context"
	"sync"

	errorvalues "github.com/limbo/toki/internal/error_values"
)

// MemoryKV keeps namespaces in process memory. Nothing survives a restart.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		data: make(map[string]map[string][]byte),
	}
}

func (m *MemoryKV) Get(ctx context.Context, namespace, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[namespace][key]
	if !ok {
		return nil, errorvalues.ErrKeyNotFound
	}
	return bytes.Clone(value), nil
}

func (m *MemoryKV) Put(ctx context.Context, namespace, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ns, ok := m.data[namespace]
	if !ok {
		ns = make(map[string][]byte)
		m.data[namespace] = ns
	}
	ns[key] = bytes.Clone(value)
	return nil
}

func (m *MemoryKV) Delete(ctx context.Context, namespace, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data[namespace], key)
	return nil
}

func (m *MemoryKV) All(ctx context.Context, namespace string) (map[string][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make(map[string][]byte, len(m.data[namespace]))
	for k, v := range m.data[namespace] {
		result[k] = bytes.Clone(v)
	}
	return result, nil
}

func (m *MemoryKV) Clear(ctx context.Context, namespace string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, namespace)
	return nil
}
