package worksheet

import "github.com/kubev2v/paint-planner/internal/estimation"

// Inputs are the form fields of a worksheet. A nil field has not been entered yet.
type Inputs struct {
	PrimerCoverage *float64 `json:"primerCoverage,omitempty"`
	PaintCoverage  *float64 `json:"paintCoverage,omitempty"`
	PrimerUnitCost *float64 `json:"primerUnitCost,omitempty"`
	PaintUnitCost  *float64 `json:"paintUnitCost,omitempty"`
	WorkerCount    *int     `json:"workerCount,omitempty"`
	CoatCount      *int     `json:"coatCount,omitempty"`
}

// Merge overwrites the fields set in other.
func (in Inputs) Merge(other Inputs) Inputs {
	if other.PrimerCoverage != nil {
		in.PrimerCoverage = other.PrimerCoverage
	}
	if other.PaintCoverage != nil {
		in.PaintCoverage = other.PaintCoverage
	}
	if other.PrimerUnitCost != nil {
		in.PrimerUnitCost = other.PrimerUnitCost
	}
	if other.PaintUnitCost != nil {
		in.PaintUnitCost = other.PaintUnitCost
	}
	if other.WorkerCount != nil {
		in.WorkerCount = other.WorkerCount
	}
	if other.CoatCount != nil {
		in.CoatCount = other.CoatCount
	}
	return in
}

// Validate returns an *InputError naming every field that is missing or not strictly positive.
func (in Inputs) Validate() error {
	ierr := &InputError{}

	floats := []struct {
		name  string
		value *float64
	}{
		{"primerCoverage", in.PrimerCoverage},
		{"paintCoverage", in.PaintCoverage},
		{"primerUnitCost", in.PrimerUnitCost},
		{"paintUnitCost", in.PaintUnitCost},
	}
	for _, f := range floats {
		switch {
		case f.value == nil:
			ierr.Missing = append(ierr.Missing, f.name)
		case !(*f.value > 0):
			ierr.NonPositive = append(ierr.NonPositive, f.name)
		}
	}

	ints := []struct {
		name  string
		value *int
	}{
		{"workerCount", in.WorkerCount},
		{"coatCount", in.CoatCount},
	}
	for _, f := range ints {
		switch {
		case f.value == nil:
			ierr.Missing = append(ierr.Missing, f.name)
		case *f.value <= 0:
			ierr.NonPositive = append(ierr.NonPositive, f.name)
		}
	}

	if len(ierr.Missing) > 0 || len(ierr.NonPositive) > 0 {
		return ierr
	}
	return nil
}

// Parameters converts validated inputs to estimator parameters.
func (in Inputs) Parameters() (estimation.Parameters, error) {
	if err := in.Validate(); err != nil {
		return estimation.Parameters{}, err
	}
	return estimation.Parameters{
		PrimerCoverage: *in.PrimerCoverage,
		PaintCoverage:  *in.PaintCoverage,
		PrimerUnitCost: *in.PrimerUnitCost,
		PaintUnitCost:  *in.PaintUnitCost,
		WorkerCount:    *in.WorkerCount,
		CoatCount:      *in.CoatCount,
	}, nil
}

func (in Inputs) clone() Inputs {
	return Inputs{
		PrimerCoverage: copyPtr(in.PrimerCoverage),
		PaintCoverage:  copyPtr(in.PaintCoverage),
		PrimerUnitCost: copyPtr(in.PrimerUnitCost),
		PaintUnitCost:  copyPtr(in.PaintUnitCost),
		WorkerCount:    copyPtr(in.WorkerCount),
		CoatCount:      copyPtr(in.CoatCount),
	}
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
