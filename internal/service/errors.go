package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/kubev2v/paint-planner/internal/estimation"
	"github.com/kubev2v/paint-planner/internal/worksheet"
)

type ErrResourceNotFound struct {
	error
}

func NewErrResourceNotFound(id string, resourceType string) *ErrResourceNotFound {
	return &ErrResourceNotFound{fmt.Errorf("%s %s not found", resourceType, id)}
}

func NewErrWorksheetNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id.String(), "worksheet")
}

func NewErrSurfaceNotFound(kind worksheet.Kind, id int) *ErrResourceNotFound {
	return NewErrResourceNotFound(fmt.Sprintf("%d", id), string(kind))
}

type ErrInvalidInput struct {
	error
}

func NewErrInvalidInput(message string) *ErrInvalidInput {
	return &ErrInvalidInput{fmt.Errorf("invalid input: %s", message)}
}

type ErrLastSurface struct {
	error
}

func NewErrLastSurface(kind worksheet.Kind) *ErrLastSurface {
	return &ErrLastSurface{fmt.Errorf("%s list must keep at least one row", kind)}
}

type ErrCapacityExceeded struct {
	error
}

func NewErrCapacityExceeded(capacity int) *ErrCapacityExceeded {
	return &ErrCapacityExceeded{fmt.Errorf("cannot hold more than %d worksheets", capacity)}
}

type ErrUnsupportedFormat struct {
	error
}

func NewErrUnsupportedFormat(format string) *ErrUnsupportedFormat {
	return &ErrUnsupportedFormat{fmt.Errorf("unsupported report format: %s", format)}
}

// translateWorksheetError maps worksheet package errors onto the service error types.
func translateWorksheetError(err error, id uuid.UUID, kind worksheet.Kind, surfaceID int) error {
	var inputErr *worksheet.InputError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, worksheet.ErrWorksheetNotFound):
		return NewErrWorksheetNotFound(id)
	case errors.Is(err, worksheet.ErrSurfaceNotFound):
		return NewErrSurfaceNotFound(kind, surfaceID)
	case errors.Is(err, worksheet.ErrLastSurface):
		return NewErrLastSurface(kind)
	case errors.Is(err, worksheet.ErrInvalidDimension),
		errors.Is(err, worksheet.ErrUnknownKind),
		errors.Is(err, worksheet.ErrDuplicateID),
		errors.Is(err, estimation.ErrOutOfRange),
		errors.As(err, &inputErr):
		return NewErrInvalidInput(err.Error())
	default:
		return err
	}
}
