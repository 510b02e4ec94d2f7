package documents

import (
	"sync"

	"studium/models"
)

// StatusStore tracks document processing states. Injected so the service
// never assumes in-process memory; a keyed persistent store is a drop-in
// substitute.
type StatusStore interface {
	Put(state models.DocumentState)
	Get(documentID string) (models.DocumentState, bool)
	Delete(documentID string)
	List() []models.DocumentState
}

// MemoryStatusStore is the default in-memory StatusStore. Reads and writes on
// distinct document IDs do not interfere; a document's state is only ever
// written by its own processing goroutine.
type MemoryStatusStore struct {
	mu     sync.RWMutex
	states map[string]models.DocumentState
}

func NewMemoryStatusStore() *MemoryStatusStore {
	return &MemoryStatusStore{states: make(map[string]models.DocumentState)}
}

func (s *MemoryStatusStore) Put(state models.DocumentState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[state.DocumentID] = state
}

func (s *MemoryStatusStore) Get(documentID string) (models.DocumentState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.states[documentID]
	return state, ok
}

func (s *MemoryStatusStore) Delete(documentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, documentID)
}

func (s *MemoryStatusStore) List() []models.DocumentState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	states := make([]models.DocumentState, 0, len(s.states))
	for _, state := range s.states {
		states = append(states, state)
	}
	return states
}
