package storage

import "sync"

// MemoryKV is an in-process KV, used when no score file is configured and in tests
type MemoryKV struct {
	mu    sync.Mutex
	ints  map[string]int
	lists map[string][]int
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		ints:  make(map[string]int),
		lists: make(map[string][]int),
	}
}

func (m *MemoryKV) GetInt(key string) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.ints[key]
	return v, ok, nil
}

func (m *MemoryKV) SetInt(key string, v int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ints[key] = v
	return nil
}

func (m *MemoryKV) GetList(key string) ([]int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.lists[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]int, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *MemoryKV) SetList(key string, v []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]int, len(v))
	copy(stored, v)
	m.lists[key] = stored
	return nil
}
