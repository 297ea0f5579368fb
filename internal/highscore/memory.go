package highscore

import "sync"

// MemoryStore is a Store kept in process memory.
type MemoryStore struct {
	mu       sync.Mutex
	high     int
	sessions []Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) HighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.high, nil
}

func (m *MemoryStore) SaveHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score > m.high {
		m.high = score
	}
	return nil
}

func (m *MemoryStore) RecordSession(s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions = append(m.sessions, s)
	return nil
}

// Sessions returns a copy of the recorded sessions in insertion order.
func (m *MemoryStore) Sessions() []Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Session, len(m.sessions))
	copy(out, m.sessions)
	return out
}

var _ Store = (*MemoryStore)(nil)
