package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrOrganizationExists   = errors.New("organization with this slug already exists")
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrProjectNotFound      = errors.New("project not found")
	ErrTaskNotFound         = errors.New("task not found")
)

// ValidationError carries per-field validation problems so handlers can
// return them as structured details
type ValidationError struct {
	Details map[string]string
}

// NewValidationError creates a ValidationError from field details
func NewValidationError(details map[string]string) *ValidationError {
	return &ValidationError{Details: details}
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Details))
	for f := range e.Details {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

// AsValidationError unwraps err into a ValidationError when possible
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
