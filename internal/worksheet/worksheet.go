package worksheet

import (
	"time"

	"github.com/google/uuid"
	"github.com/kubev2v/paint-planner/internal/estimation"
)

// Worksheet is one estimate being edited.
// Result holds the last successful estimate; it is replaced wholesale by Estimate and kept
// when rows or inputs change afterwards.
type Worksheet struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Walls     *SurfaceList
	Doors     *SurfaceList
	Windows   *SurfaceList
	Inputs    Inputs
	Result    *estimation.Result
}

// New returns a worksheet with one empty row per list and no inputs.
func New(name string) *Worksheet {
	now := time.Now()
	return &Worksheet{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
		Walls:     NewSurfaceList(),
		Doors:     NewSurfaceList(),
		Windows:   NewSurfaceList(),
	}
}

// List returns the surface list of the given kind.
func (w *Worksheet) List(kind Kind) (*SurfaceList, error) {
	switch kind {
	case KindWall:
		return w.Walls, nil
	case KindDoor:
		return w.Doors, nil
	case KindWindow:
		return w.Windows, nil
	default:
		return nil, ErrUnknownKind
	}
}

// Parameters validates the inputs and returns the estimator parameters.
func (w *Worksheet) Parameters() (estimation.Parameters, error) {
	return w.Inputs.Parameters()
}

// Estimate validates the inputs, runs the estimator and stores the result.
func (w *Worksheet) Estimate() (estimation.Result, error) {
	p, err := w.Parameters()
	if err != nil {
		return estimation.Result{}, err
	}
	res := estimation.Estimate(w.Walls.Items(), w.Doors.Items(), w.Windows.Items(), p)
	if err := res.CheckRange(); err != nil {
		return estimation.Result{}, err
	}
	w.Result = &res
	return res, nil
}

// Clone returns a deep copy.
func (w *Worksheet) Clone() *Worksheet {
	c := *w
	c.Walls = w.Walls.clone()
	c.Doors = w.Doors.clone()
	c.Windows = w.Windows.clone()
	c.Inputs = w.Inputs.clone()
	c.Result = copyPtr(w.Result)
	return &c
}

func (w *Worksheet) touch() {
	w.UpdatedAt = time.Now()
}
