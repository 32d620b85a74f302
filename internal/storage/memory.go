package storage

import "sync"

// Memory keeps values in process memory. Used by the headless trace tool.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

// Load returns a copy of the stored value for key
func (m *Memory) Load(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

// Save stores a copy of data under key
func (m *Memory) Save(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), data...)
	return nil
}
