package worksheet

import (
	"fmt"
	"math"

	"github.com/kubev2v/paint-planner/internal/estimation"
)

// SurfaceList is an ordered set of surfaces keyed by an id issued from a monotonic counter.
// Ids are never reused, so removing a row never shifts the identity of the others.
// A list always keeps at least one row.
type SurfaceList struct {
	nextID int
	items  []estimation.Surface
}

// NewSurfaceList returns a list holding a single zero-sized row.
func NewSurfaceList() *SurfaceList {
	l := &SurfaceList{nextID: 1}
	l.Add()
	return l
}

// NewSurfaceListFrom builds a list from existing surfaces. Positive ids are kept and must be
// unique; zero ids are assigned. An empty input yields a list with one zero row.
func NewSurfaceListFrom(surfaces []estimation.Surface) (*SurfaceList, error) {
	if len(surfaces) == 0 {
		return NewSurfaceList(), nil
	}

	l := &SurfaceList{nextID: 1}
	seen := make(map[int]struct{}, len(surfaces))
	for _, s := range surfaces {
		if s.ID < 0 {
			return nil, fmt.Errorf("surface id %d: ids must be positive", s.ID)
		}
		if s.ID == 0 {
			continue
		}
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, s.ID)
		}
		seen[s.ID] = struct{}{}
		if s.ID >= l.nextID {
			l.nextID = s.ID + 1
		}
	}

	for _, s := range surfaces {
		if err := checkDimensions(s.Height, s.Width); err != nil {
			return nil, err
		}
		if s.ID == 0 {
			s.ID = l.nextID
			l.nextID++
		}
		l.items = append(l.items, s)
	}
	return l, nil
}

// Add appends a zero-sized row and returns it.
func (l *SurfaceList) Add() estimation.Surface {
	s := estimation.Surface{ID: l.nextID}
	l.nextID++
	l.items = append(l.items, s)
	return s
}

// Remove deletes the row with the given id.
func (l *SurfaceList) Remove(id int) error {
	idx := l.index(id)
	if idx < 0 {
		return fmt.Errorf("%w: %d", ErrSurfaceNotFound, id)
	}
	if len(l.items) == 1 {
		return ErrLastSurface
	}
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	return nil
}

// Update replaces the dimensions of the row with the given id.
func (l *SurfaceList) Update(id int, height, width float64) (estimation.Surface, error) {
	if err := checkDimensions(height, width); err != nil {
		return estimation.Surface{}, err
	}
	idx := l.index(id)
	if idx < 0 {
		return estimation.Surface{}, fmt.Errorf("%w: %d", ErrSurfaceNotFound, id)
	}
	l.items[idx].Height = height
	l.items[idx].Width = width
	return l.items[idx], nil
}

// Get returns the row with the given id.
func (l *SurfaceList) Get(id int) (estimation.Surface, error) {
	idx := l.index(id)
	if idx < 0 {
		return estimation.Surface{}, fmt.Errorf("%w: %d", ErrSurfaceNotFound, id)
	}
	return l.items[idx], nil
}

// Items returns a copy of the rows in insertion order.
func (l *SurfaceList) Items() []estimation.Surface {
	res := make([]estimation.Surface, len(l.items))
	copy(res, l.items)
	return res
}

func (l *SurfaceList) Len() int {
	return len(l.items)
}

func (l *SurfaceList) clone() *SurfaceList {
	return &SurfaceList{nextID: l.nextID, items: l.Items()}
}

func (l *SurfaceList) index(id int) int {
	for i, s := range l.items {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func checkDimensions(height, width float64) error {
	for _, v := range []float64{height, width} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidDimension
		}
	}
	return nil
}
