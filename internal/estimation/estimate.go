package estimation

import (
	"errors"
	"fmt"
	"math"
)

const (
	// PainterThroughput is the area one painter covers per hour.
	PainterThroughput = 250.0

	// MaxVolume bounds the volume of an estimate; whole numbers up to it are exact in a float64.
	MaxVolume = 1 << 53
	// MaxCans is the can count of MaxVolume.
	MaxCans = MaxVolume
)

// ErrOutOfRange reports an estimate whose figures cannot be represented.
var ErrOutOfRange = errors.New("estimate out of range")

// TotalArea sums the area of every surface.
func TotalArea(surfaces []Surface) float64 {
	total := 0.0
	for _, s := range surfaces {
		total += s.Area()
	}
	return total
}

// PaintableArea is the wall area minus the door and window openings.
// The result is not clamped: openings larger than the walls yield a negative area.
func PaintableArea(walls, doors, windows []Surface) float64 {
	return TotalArea(walls) - TotalArea(doors) - TotalArea(windows)
}

// VolumeNeeded returns the volume of product required to apply coats layers over area.
func VolumeNeeded(area, coverage float64, coats int) float64 {
	return float64(coats) * area / coverage
}

// CheckVolume fails when volume is not finite or its magnitude exceeds MaxVolume.
func CheckVolume(volume float64) error {
	if math.IsNaN(volume) || math.Abs(volume) > MaxVolume {
		return fmt.Errorf("%w: volume %g exceeds %d", ErrOutOfRange, volume, int64(MaxVolume))
	}
	return nil
}

// CansNeeded rounds a volume up to whole cans. Volumes beyond MaxVolume saturate at
// MaxCans (or -MaxCans); use CheckVolume to reject them first.
func CansNeeded(volume float64) int {
	switch {
	case math.IsNaN(volume):
		return 0
	case volume > MaxVolume:
		return MaxCans
	case volume < -MaxVolume:
		return -MaxCans
	}
	return int(math.Ceil(volume))
}

// LaborHours returns the wall-clock hours for workers painters applying coats layers over area.
func LaborHours(area float64, coats, workers int, throughput float64) float64 {
	return (area * float64(coats) / throughput) / float64(workers)
}

// Estimate computes the paint quantities, cost and labor for the given surfaces.
// It is a pure function; coverage, worker and coat values of zero produce Inf/NaN figures
// and must be rejected by the caller.
func Estimate(walls, doors, windows []Surface, p Parameters) Result {
	area := PaintableArea(walls, doors, windows)

	primerVolume := VolumeNeeded(area, p.PrimerCoverage, p.CoatCount)
	paintVolume := VolumeNeeded(area, p.PaintCoverage, p.CoatCount)

	primerCans := CansNeeded(primerVolume)
	paintCans := CansNeeded(paintVolume)

	return Result{
		PaintableArea:      area,
		PrimerVolumeNeeded: primerVolume,
		PaintVolumeNeeded:  paintVolume,
		PrimerCansNeeded:   primerCans,
		PaintCansNeeded:    paintCans,
		TotalCost:          float64(primerCans)*p.PrimerUnitCost + float64(paintCans)*p.PaintUnitCost,
		TotalHoursNeeded:   LaborHours(area, p.CoatCount, p.WorkerCount, PainterThroughput),
	}
}

// CheckRange fails when a figure of r is not finite or a volume exceeds MaxVolume, in which
// case the can counts no longer cover the volumes.
func (r Result) CheckRange() error {
	for _, v := range []float64{r.PrimerVolumeNeeded, r.PaintVolumeNeeded} {
		if err := CheckVolume(v); err != nil {
			return err
		}
	}
	for name, v := range map[string]float64{
		"paintable area": r.PaintableArea,
		"total cost":     r.TotalCost,
		"total hours":    r.TotalHoursNeeded,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is %g", ErrOutOfRange, name, v)
		}
	}
	return nil
}
