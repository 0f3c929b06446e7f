package calculators

import (
	"fmt"

	"github.com/kubev2v/paint-planner/internal/estimation"
)

// Param prefix = parameter keys in the params map given to the calculators
const (
	// ParamPaintableArea wall area minus openings.
	ParamPaintableArea = "paintable_area"
	// ParamCoatCount number of layers applied.
	ParamCoatCount = "coat_count"

	ParamPrimerCoverage = "primer_coverage"
	ParamPrimerUnitCost = "primer_unit_cost"
	ParamPaintCoverage  = "paint_coverage"
	ParamPaintUnitCost  = "paint_unit_cost"
)

// Compile-time assertion that Coating implements the Calculator interface.
var _ estimation.Calculator = (*Coating)(nil)

// Coating estimates volume, cans and cost of one product (primer or paint).
type Coating struct {
	name        string
	coverageKey string
	unitCostKey string
}

// NewPrimer creates the primer line calculator.
func NewPrimer() *Coating {
	return &Coating{name: "Primer", coverageKey: ParamPrimerCoverage, unitCostKey: ParamPrimerUnitCost}
}

// NewPaint creates the paint line calculator.
func NewPaint() *Coating {
	return &Coating{name: "Paint", coverageKey: ParamPaintCoverage, unitCostKey: ParamPaintUnitCost}
}

// Name returns the human-readable name of this calculator.
func (c *Coating) Name() string { return c.name }

// Keys returns the list of parameter keys required by this calculator.
func (c *Coating) Keys() []string {
	return []string{ParamPaintableArea, ParamCoatCount, c.coverageKey, c.unitCostKey}
}

// Calculate returns the volume needed, the whole cans to buy and their cost.
func (c *Coating) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
	area, err := requireFloat(params, ParamPaintableArea)
	if err != nil {
		return estimation.Estimation{}, err
	}

	coats, err := requireInt(params, ParamCoatCount)
	if err != nil {
		return estimation.Estimation{}, err
	}
	if coats <= 0 {
		return estimation.Estimation{}, fmt.Errorf("%s must be > 0", ParamCoatCount)
	}

	coverage, err := requireFloat(params, c.coverageKey)
	if err != nil {
		return estimation.Estimation{}, err
	}
	if coverage <= 0 {
		return estimation.Estimation{}, fmt.Errorf("%s must be > 0", c.coverageKey)
	}

	unitCost, err := requireFloat(params, c.unitCostKey)
	if err != nil {
		return estimation.Estimation{}, err
	}
	if unitCost < 0 {
		return estimation.Estimation{}, fmt.Errorf("%s must be non-negative", c.unitCostKey)
	}

	volume := estimation.VolumeNeeded(area, coverage, coats)
	if err := estimation.CheckVolume(volume); err != nil {
		return estimation.Estimation{}, err
	}
	cans := estimation.CansNeeded(volume)

	return estimation.Estimation{
		Quantity: volume,
		Units:    cans,
		Cost:     float64(cans) * unitCost,
		Reason:   fmt.Sprintf("%.2f m² x %d coats / %.2f m² per can = %d cans @ %.2f", area, coats, coverage, cans, unitCost),
	}, nil
}
