package kv

// Memory is an in-process Store. It is the fallback when durable storage
// cannot be opened and the fake used in tests.
type Memory struct {
	values map[string][]byte

	// SetErr, when non-nil, is returned by every Set without storing.
	SetErr error
}

func NewMemory() *Memory {
	return &Memory{values: map[string][]byte{}}
}

func (m *Memory) Get(key string) ([]byte, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Set(key string, value []byte) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.values[key] = append([]byte(nil), value...)
	return nil
}

// Put stores raw bytes regardless of SetErr, for seeding corrupt values.
func (m *Memory) Put(key string, value []byte) {
	m.values[key] = append([]byte(nil), value...)
}

func (m *Memory) Close() error { return nil }
