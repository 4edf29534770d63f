package ratings

import "sync"

// Memory is an in-memory Store used by tests and as a fallback when no
// database is available.
type Memory struct {
	mu     sync.RWMutex
	values map[string]int
}

// NewMemory creates an in-memory store seeded with the provided ratings.
func NewMemory(seed map[string]int) *Memory {
	values := make(map[string]int, len(seed))
	for key, rating := range seed {
		values[key] = clamp(rating)
	}
	return &Memory{values: values}
}

func (m *Memory) Get(key string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key]
}

func (m *Memory) Set(key string, rating int) error {
	if err := validate(rating); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if rating == Unrated {
		delete(m.values, key)
		return nil
	}
	m.values[key] = rating
	return nil
}
