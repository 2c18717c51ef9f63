package session

import "sync"

// Storage is the durable slot the session record lives in.
// Exactly one serialized record is held; Read reports absence with ok=false.
type Storage interface {
	Read() (raw string, ok bool)
	Write(raw string) error
	Remove() error
}

// MemoryStorage keeps the record in process memory.
type MemoryStorage struct {
	mu  sync.Mutex
	raw string
	set bool
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// NewMemoryStorageWith starts with raw already persisted.
func NewMemoryStorageWith(raw string) *MemoryStorage {
	return &MemoryStorage{raw: raw, set: true}
}

func (m *MemoryStorage) Read() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.raw, m.set
}

func (m *MemoryStorage) Write(raw string) error {
	m.mu.Lock()
	m.raw, m.set = raw, true
	m.mu.Unlock()
	return nil
}

func (m *MemoryStorage) Remove() error {
	m.mu.Lock()
	m.raw, m.set = "", false
	m.mu.Unlock()
	return nil
}
