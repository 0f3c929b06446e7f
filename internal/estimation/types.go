package estimation

// Surface is one measured rectangle (a wall, a door or a window).
type Surface struct {
	ID     int     `json:"id"`
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
}

// Area returns height * width.
func (s Surface) Area() float64 {
	return s.Height * s.Width
}

// Parameters holds the coverage, cost and crew inputs of an estimate.
// Coverage is area per unit volume; unit cost is the price of one can.
type Parameters struct {
	PrimerCoverage float64 `json:"primerCoverage"`
	PaintCoverage  float64 `json:"paintCoverage"`
	PrimerUnitCost float64 `json:"primerUnitCost"`
	PaintUnitCost  float64 `json:"paintUnitCost"`
	WorkerCount    int     `json:"workerCount"`
	CoatCount      int     `json:"coatCount"`
}

// Result is the outcome of Estimate. It is replaced wholesale on every recomputation.
type Result struct {
	PaintableArea      float64 `json:"paintableArea"`
	PrimerVolumeNeeded float64 `json:"primerVolumeNeeded"`
	PaintVolumeNeeded  float64 `json:"paintVolumeNeeded"`
	PrimerCansNeeded   int     `json:"primerCansNeeded"`
	PaintCansNeeded    int     `json:"paintCansNeeded"`
	TotalCost          float64 `json:"totalCost"`
	TotalHoursNeeded   float64 `json:"totalHoursNeeded"`
}

// Calculator encapsulates one line of the breakdown (e.g. "Primer", "Labor").
type Calculator interface {
	// Name returns the human-readable name of this calculator, used as the key in Engine results.
	Name() string
	// Keys returns the list of Param keys this calculator depends on.
	Keys() []string
	// Calculate runs the calculation using the provided params and returns an Estimation or an error.
	Calculate(params map[string]Param) (Estimation, error)
}

// Param represents an input for a Calculator
type Param struct {
	Key   string      // Unique identifier (e.g., "paintable_area")
	Value interface{} // The actual value (e.g., 42.5, 2)
}

// Estimation is one line item produced by a Calculator.
// Quantity is a volume for coatings and hours for labor; Units is the whole number of cans bought.
type Estimation struct {
	Quantity float64 `json:"quantity"`
	Units    int     `json:"units"`
	Cost     float64 `json:"cost"`
	Hours    float64 `json:"hours"`
	Reason   string  `json:"reason"`
}
