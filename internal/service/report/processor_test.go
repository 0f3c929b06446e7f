package report

import (
	"testing"
	"time"

	"github.com/kubev2v/paint-planner/internal/estimation"
	"github.com/kubev2v/paint-planner/internal/worksheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessGroupsSurfacesAndOrdersBreakdown(t *testing.T) {
	doc := worksheet.Document{
		Name:    "studio",
		Walls:   []estimation.Surface{{Height: 3, Width: 4}, {Height: 3, Width: 2}},
		Windows: []estimation.Surface{{Height: 1, Width: 1.5}},
	}
	w, err := doc.Worksheet()
	require.NoError(t, err)

	p := &WorksheetProcessor{now: func() time.Time {
		return time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)
	}}

	breakdown := map[string]estimation.Estimation{
		"Labor":  {Hours: 1},
		"Primer": {Units: 2},
	}
	data := p.Process(w, estimation.Parameters{CoatCount: 1}, estimation.Result{PaintableArea: 16.5}, breakdown, []string{"Primer", "Paint", "Labor"})

	assert.Equal(t, "studio", data.Name)
	assert.Equal(t, w.ID.String(), data.WorksheetID)
	assert.Equal(t, "2024-03-09", data.Timestamps.Generated)
	assert.Equal(t, "14:05:00", data.Timestamps.GeneratedTime)

	require.Len(t, data.Surfaces, 3)
	assert.Equal(t, "Walls", data.Surfaces[0].Label)
	assert.InDelta(t, 18.0, data.Surfaces[0].Total, 1e-9)
	assert.Len(t, data.Surfaces[0].Rows, 2)
	assert.Equal(t, "Doors", data.Surfaces[1].Label)
	assert.Len(t, data.Surfaces[1].Rows, 1)
	assert.InDelta(t, 1.5, data.Surfaces[2].Total, 1e-9)

	require.Len(t, data.Breakdown, 2)
	assert.Equal(t, "Primer", data.Breakdown[0].Name)
	assert.Equal(t, "Labor", data.Breakdown[1].Name)
}
