package calculators

import (
	"fmt"

	"github.com/kubev2v/paint-planner/internal/estimation"
)

func getInt(p estimation.Param) (int, error) {
	switch v := p.Value.(type) {
	case float64:
		return int(v), nil // JSON default
	case int:
		return v, nil // Direct struct usage or YAML (sometimes)
	case int64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("param %s is not a number (type: %T)", p.Key, p.Value)
	}
}

func getFloat(p estimation.Param) (float64, error) {
	switch v := p.Value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0.0, fmt.Errorf("param %s is not a number (type: %T)", p.Key, p.Value)
	}
}

func requireFloat(params map[string]estimation.Param, key string) (float64, error) {
	p, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("missing %s", key)
	}
	return getFloat(p)
}

func requireInt(params map[string]estimation.Param, key string) (int, error) {
	p, ok := params[key]
	if !ok {
		return 0, fmt.Errorf("missing %s", key)
	}
	return getInt(p)
}

// Params flattens a paintable area and the estimate parameters into engine inputs.
func Params(area float64, p estimation.Parameters) []estimation.Param {
	return []estimation.Param{
		{Key: ParamPaintableArea, Value: area},
		{Key: ParamCoatCount, Value: p.CoatCount},
		{Key: ParamWorkerCount, Value: p.WorkerCount},
		{Key: ParamPrimerCoverage, Value: p.PrimerCoverage},
		{Key: ParamPrimerUnitCost, Value: p.PrimerUnitCost},
		{Key: ParamPaintCoverage, Value: p.PaintCoverage},
		{Key: ParamPaintUnitCost, Value: p.PaintUnitCost},
	}
}
