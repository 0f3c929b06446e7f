package calculators

import (
	"fmt"

	"github.com/kubev2v/paint-planner/internal/estimation"
)

const (
	// ParamWorkerCount number of painters working in parallel.
	ParamWorkerCount = "worker_count"
	// ParamPainterThroughput area one painter covers per hour (optional).
	ParamPainterThroughput = "painter_throughput"
)

// Compile-time assertion that Labor implements the Calculator interface.
var _ estimation.Calculator = (*Labor)(nil)

// Labor estimates the wall-clock hours needed by the crew.
type Labor struct {
	throughput float64
}

// LaborOption configuration option for the calculator
type LaborOption func(*Labor)

// WithThroughput sets the area one painter covers per hour.
// Non-positive values are ignored and the default is kept.
func WithThroughput(areaPerHour float64) LaborOption {
	return func(l *Labor) {
		if areaPerHour > 0 {
			l.throughput = areaPerHour
		}
	}
}

// NewLabor creates a Labor calculator with default settings that can be overridden by Options
func NewLabor(opts ...LaborOption) *Labor {
	res := Labor{
		throughput: estimation.PainterThroughput,
	}

	for _, opt := range opts {
		opt(&res)
	}

	return &res
}

// Name returns the human-readable name of this calculator.
func (c *Labor) Name() string { return "Labor" }

// Keys returns the list of parameter keys required by this calculator.
func (c *Labor) Keys() []string {
	return []string{ParamPaintableArea, ParamCoatCount, ParamWorkerCount}
}

// Calculate divides the painted area (all coats) by the crew throughput.
// ParamPainterThroughput is optional and falls back to the struct default.
func (c *Labor) Calculate(params map[string]estimation.Param) (estimation.Estimation, error) {
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

	workers, err := requireInt(params, ParamWorkerCount)
	if err != nil {
		return estimation.Estimation{}, err
	}
	if workers <= 0 {
		return estimation.Estimation{}, fmt.Errorf("%s must be > 0", ParamWorkerCount)
	}

	throughput := c.throughput
	if p, exists := params[ParamPainterThroughput]; exists {
		v, err := getFloat(p)
		if err != nil {
			return estimation.Estimation{}, err
		}
		if v <= 0 {
			return estimation.Estimation{}, fmt.Errorf("%s must be > 0", ParamPainterThroughput)
		}
		throughput = v
	}

	hours := estimation.LaborHours(area, coats, workers, throughput)

	return estimation.Estimation{
		Quantity: area * float64(coats),
		Hours:    hours,
		Reason:   fmt.Sprintf("%.2f m² x %d coats @ %.0f m²/h / %d workers", area, coats, throughput, workers),
	}, nil
}
