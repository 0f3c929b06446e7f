package calculators

import (
	"testing"

	"github.com/kubev2v/paint-planner/internal/estimation"
)

func coatingParams(area float64, coats int, coverage, unitCost float64) map[string]estimation.Param {
	return map[string]estimation.Param{
		ParamPaintableArea:  {Key: ParamPaintableArea, Value: area},
		ParamCoatCount:      {Key: ParamCoatCount, Value: coats},
		ParamPrimerCoverage: {Key: ParamPrimerCoverage, Value: coverage},
		ParamPrimerUnitCost: {Key: ParamPrimerUnitCost, Value: unitCost},
	}
}

func TestCoating_NameAndKeys(t *testing.T) {
	t.Parallel()
	primer := NewPrimer()
	paint := NewPaint()

	if primer.Name() == paint.Name() {
		t.Fatalf("expected distinct names, both are %q", primer.Name())
	}
	keys := paint.Keys()
	found := false
	for _, k := range keys {
		if k == ParamPaintCoverage {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected Keys() to contain %q, got %v", ParamPaintCoverage, keys)
	}
}

func TestCoating_Calculate(t *testing.T) {
	t.Parallel()
	calc := NewPrimer()

	result, err := calc.Calculate(coatingParams(4, 1, 10, 20))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	// 4 m² * 1 coat / 10 m² per can = 0.4 -> 1 can @ 20
	if result.Quantity < 0.3999999 || result.Quantity > 0.4000001 {
		t.Errorf("expected quantity 0.4, got %v", result.Quantity)
	}
	if result.Units != 1 {
		t.Errorf("expected 1 can, got %d", result.Units)
	}
	if result.Cost != 20 {
		t.Errorf("expected cost 20, got %v", result.Cost)
	}
	if result.Reason == "" {
		t.Error("expected non-empty reason")
	}
}

func TestCoating_Calculate_AcceptsIntegerValues(t *testing.T) {
	t.Parallel()
	calc := NewPrimer()
	params := coatingParams(0, 0, 0, 0)
	params[ParamPaintableArea] = estimation.Param{Key: ParamPaintableArea, Value: 30}
	params[ParamCoatCount] = estimation.Param{Key: ParamCoatCount, Value: float64(2)}
	params[ParamPrimerCoverage] = estimation.Param{Key: ParamPrimerCoverage, Value: int64(10)}
	params[ParamPrimerUnitCost] = estimation.Param{Key: ParamPrimerUnitCost, Value: 5}

	result, err := calc.Calculate(params)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	// 30 * 2 / 10 = 6 cans
	if result.Units != 6 || result.Cost != 30 {
		t.Errorf("expected 6 cans costing 30, got %d cans costing %v", result.Units, result.Cost)
	}
}

func TestCoating_Calculate_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		params map[string]estimation.Param
	}{
		{name: "missing area", params: func() map[string]estimation.Param {
			p := coatingParams(4, 1, 10, 20)
			delete(p, ParamPaintableArea)
			return p
		}()},
		{name: "zero coverage", params: coatingParams(4, 1, 0, 20)},
		{name: "zero coats", params: coatingParams(4, 0, 10, 20)},
		{name: "negative cost", params: coatingParams(4, 1, 10, -1)},
		{name: "volume beyond can range", params: coatingParams(1e20, 1, 1, 20)},
		{name: "non numeric", params: func() map[string]estimation.Param {
			p := coatingParams(4, 1, 10, 20)
			p[ParamPrimerCoverage] = estimation.Param{Key: ParamPrimerCoverage, Value: "ten"}
			return p
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPrimer().Calculate(tt.params); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestEngine_BreakdownMatchesEstimate(t *testing.T) {
	t.Parallel()
	walls := []estimation.Surface{{ID: 1, Height: 2.6, Width: 12}, {ID: 2, Height: 2.6, Width: 9.4}}
	doors := []estimation.Surface{{ID: 1, Height: 2.1, Width: 0.9}}
	windows := []estimation.Surface{{ID: 1, Height: 1.2, Width: 1.6}}
	p := estimation.Parameters{PrimerCoverage: 11, PaintCoverage: 9, PrimerUnitCost: 24.9, PaintUnitCost: 39.5, WorkerCount: 2, CoatCount: 2}

	engine := estimation.NewEngine()
	engine.Register(NewPrimer())
	engine.Register(NewPaint())
	engine.Register(NewLabor())

	area := estimation.PaintableArea(walls, doors, windows)
	breakdown := engine.Run(Params(area, p))
	want := estimation.Estimate(walls, doors, windows, p)

	if breakdown["Primer"].Units != want.PrimerCansNeeded {
		t.Errorf("primer cans: breakdown %d, estimate %d", breakdown["Primer"].Units, want.PrimerCansNeeded)
	}
	if breakdown["Paint"].Units != want.PaintCansNeeded {
		t.Errorf("paint cans: breakdown %d, estimate %d", breakdown["Paint"].Units, want.PaintCansNeeded)
	}
	if got := breakdown["Primer"].Cost + breakdown["Paint"].Cost; got != want.TotalCost {
		t.Errorf("total cost: breakdown %v, estimate %v", got, want.TotalCost)
	}
	if breakdown["Labor"].Hours != want.TotalHoursNeeded {
		t.Errorf("hours: breakdown %v, estimate %v", breakdown["Labor"].Hours, want.TotalHoursNeeded)
	}
}
