package worksheet

import (
	"errors"
	"math"
	"testing"

	"github.com/kubev2v/paint-planner/internal/estimation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSurfaceList_StartsWithOneEmptyRow(t *testing.T) {
	l := NewSurfaceList()
	require.Equal(t, 1, l.Len())
	assert.Equal(t, estimation.Surface{ID: 1}, l.Items()[0])
}

func TestSurfaceList_IdsAreNeverReused(t *testing.T) {
	l := NewSurfaceList()
	second := l.Add()
	third := l.Add()
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 3, third.ID)

	require.NoError(t, l.Remove(third.ID))
	fourth := l.Add()
	assert.Equal(t, 4, fourth.ID)

	ids := []int{}
	for _, s := range l.Items() {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []int{1, 2, 4}, ids)
}

func TestSurfaceList_RemoveByIdKeepsOthersIntact(t *testing.T) {
	l := NewSurfaceList()
	l.Add()
	l.Add()
	_, err := l.Update(3, 2.5, 4)
	require.NoError(t, err)

	require.NoError(t, l.Remove(2))

	s, err := l.Get(3)
	require.NoError(t, err)
	assert.Equal(t, 2.5, s.Height)
	assert.Equal(t, 4.0, s.Width)
}

func TestSurfaceList_CannotRemoveLastRow(t *testing.T) {
	l := NewSurfaceList()
	err := l.Remove(1)
	assert.True(t, errors.Is(err, ErrLastSurface))
	assert.Equal(t, 1, l.Len())
}

func TestSurfaceList_RemoveUnknown(t *testing.T) {
	l := NewSurfaceList()
	l.Add()
	assert.ErrorIs(t, l.Remove(42), ErrSurfaceNotFound)
}

func TestSurfaceList_UpdateRejectsInvalidDimensions(t *testing.T) {
	l := NewSurfaceList()
	for _, v := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := l.Update(1, v, 1)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	}
	_, err := l.Update(7, 1, 1)
	assert.ErrorIs(t, err, ErrSurfaceNotFound)
}

func TestSurfaceList_ItemsIsACopy(t *testing.T) {
	l := NewSurfaceList()
	items := l.Items()
	items[0].Height = 99
	s, _ := l.Get(1)
	assert.Equal(t, 0.0, s.Height)
}

func TestNewSurfaceListFrom(t *testing.T) {
	l, err := NewSurfaceListFrom([]estimation.Surface{
		{ID: 5, Height: 2, Width: 3},
		{Height: 1, Width: 1},
		{ID: 2, Height: 4, Width: 4},
	})
	require.NoError(t, err)

	items := l.Items()
	require.Len(t, items, 3)
	assert.Equal(t, 5, items[0].ID)
	assert.Equal(t, 6, items[1].ID)
	assert.Equal(t, 2, items[2].ID)
	assert.Equal(t, 7, l.Add().ID)

	_, err = NewSurfaceListFrom([]estimation.Surface{{ID: 1}, {ID: 1}})
	assert.ErrorIs(t, err, ErrDuplicateID)

	_, err = NewSurfaceListFrom([]estimation.Surface{{ID: 1, Height: -2}})
	assert.ErrorIs(t, err, ErrInvalidDimension)

	empty, err := NewSurfaceListFrom(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, empty.Len())
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]Kind{"wall": KindWall, "Walls": KindWall, "door": KindDoor, "windows": KindWindow} {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseKind("ceiling")
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Equal(t, "Window", KindWindow.Label())
}
