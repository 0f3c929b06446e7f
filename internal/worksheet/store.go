package worksheet

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// DefaultCapacity bounds the number of worksheets held in memory.
const DefaultCapacity = 1000

// Store keeps worksheets in process memory. Callers only ever see clones, and every mutation
// goes through Update so it happens under the write lock.
type Store struct {
	mu         sync.RWMutex
	worksheets map[uuid.UUID]*Worksheet
	capacity   int
}

func NewStore(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		worksheets: make(map[uuid.UUID]*Worksheet),
		capacity:   capacity,
	}
}

// Create stores w and returns a copy of it.
func (s *Store) Create(w *Worksheet) (*Worksheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.worksheets) >= s.capacity {
		return nil, fmt.Errorf("%w: %d worksheets", ErrCapacityExceeded, s.capacity)
	}
	if _, exists := s.worksheets[w.ID]; exists {
		return nil, fmt.Errorf("worksheet %s already exists", w.ID)
	}
	s.worksheets[w.ID] = w.Clone()
	return w.Clone(), nil
}

func (s *Store) Get(id uuid.UUID) (*Worksheet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.worksheets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWorksheetNotFound, id)
	}
	return w.Clone(), nil
}

// List returns every worksheet ordered by creation time.
func (s *Store) List() []*Worksheet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]*Worksheet, 0, len(s.worksheets))
	for _, w := range s.worksheets {
		res = append(res, w.Clone())
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].ID.String() < res[j].ID.String()
		}
		return res[i].CreatedAt.Before(res[j].CreatedAt)
	})
	return res
}

func (s *Store) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.worksheets[id]; !ok {
		return fmt.Errorf("%w: %s", ErrWorksheetNotFound, id)
	}
	delete(s.worksheets, id)
	return nil
}

// Update applies fn to a working copy of the worksheet and commits it only when fn succeeds.
func (s *Store) Update(id uuid.UUID, fn func(w *Worksheet) error) (*Worksheet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.worksheets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWorksheetNotFound, id)
	}

	working := w.Clone()
	if err := fn(working); err != nil {
		return nil, err
	}
	working.touch()
	s.worksheets[id] = working
	return working.Clone(), nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.worksheets)
}
