package application

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	ErrNotFound         = errors.New("not found")
	ErrUnknownCriterion = errors.New("unknown sort criterion")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CriterionError reports an unrecognized sort criterion name.
type CriterionError struct {
	Criterion string
	Valid     []string
}

func (e *CriterionError) Error() string {
	return fmt.Sprintf("unknown sort criterion %q (valid: %s)", e.Criterion, strings.Join(e.Valid, ", "))
}

func (e *CriterionError) Is(target error) bool {
	return target == ErrUnknownCriterion
}
