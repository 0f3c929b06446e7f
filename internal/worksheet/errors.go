package worksheet

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSurfaceNotFound   = errors.New("surface not found")
	ErrLastSurface       = errors.New("cannot remove the last surface of a list")
	ErrInvalidDimension  = errors.New("height and width must be non-negative numbers")
	ErrDuplicateID       = errors.New("duplicate surface id")
	ErrWorksheetNotFound = errors.New("worksheet not found")
	ErrCapacityExceeded  = errors.New("worksheet capacity exceeded")
	ErrUnknownKind       = errors.New("unknown surface kind")
)

// InputError lists the inputs that block an estimate.
type InputError struct {
	Missing     []string
	NonPositive []string
}

func (e *InputError) Error() string {
	parts := make([]string, 0, 2)
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing inputs: %s", strings.Join(e.Missing, ", ")))
	}
	if len(e.NonPositive) > 0 {
		parts = append(parts, fmt.Sprintf("inputs must be positive: %s", strings.Join(e.NonPositive, ", ")))
	}
	return strings.Join(parts, "; ")
}
