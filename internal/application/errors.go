package application

import (
	"errors"
	"fmt"

	"vitrine/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidSort   = errors.New("invalid sort order")
	ErrInvalidStatus = errors.New("invalid status filter")
	ErrInvalidPage   = errors.New("invalid page")
	ErrNoHost        = domain.ErrNoHost
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
	Err     error // sentinel the failure belongs to, may be nil
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return e.Err != nil && target == e.Err
}

// NotFoundError reports a missing item
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item %s not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
