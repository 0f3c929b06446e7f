package estimation

import "fmt"

// Engine orchestrates Calculator objects and collects their line items
type Engine struct {
	calculators []Calculator
}

// NewEngine creates a new Engine with no calculators registered.
func NewEngine() *Engine {
	return &Engine{
		calculators: make([]Calculator, 0),
	}
}

// Register adds a Calculator to the breakdown.
// Calculators are executed in the order they are registered.
// Register panics if a calculator with the same Name() is already registered.
func (e *Engine) Register(c Calculator) {
	for _, existing := range e.calculators {
		if existing.Name() == c.Name() {
			panic(fmt.Sprintf("estimation: calculator %q already registered", c.Name()))
		}
	}
	e.calculators = append(e.calculators, c)
}

// Names returns the registered calculator names in registration order.
func (e *Engine) Names() []string {
	names := make([]string, 0, len(e.calculators))
	for _, c := range e.calculators {
		names = append(names, c.Name())
	}
	return names
}

// Run executes all registered calculators against the provided params.
// A failing calculator yields an empty line item whose Reason carries the error.
func (e *Engine) Run(inputs []Param) map[string]Estimation {
	paramMap := make(map[string]Param)
	for _, p := range inputs {
		paramMap[p.Key] = p
	}

	results := make(map[string]Estimation)
	for _, calc := range e.calculators {
		est, err := calc.Calculate(paramMap)
		if err != nil {
			results[calc.Name()] = Estimation{
				Reason: fmt.Sprintf("Error: %v", err),
			}
			continue
		}
		results[calc.Name()] = est
	}
	return results
}
