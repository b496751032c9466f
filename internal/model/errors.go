package model

import (
	"errors"
	"fmt"
)

// ValidationError reports a field that violates a data-model invariant
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConstraintError reports a reference to a row that does not exist
type ConstraintError struct {
	Entity string
	ID     uint
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s %d does not exist", e.Entity, e.ID)
}

// IsValidation reports whether err is a data-model validation failure
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConstraint reports whether err is a referential-integrity failure
func IsConstraint(err error) bool {
	var ce *ConstraintError
	return errors.As(err, &ce)
}
