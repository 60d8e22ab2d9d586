package common

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ValidationError represents validation failures
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validator collects field validation errors for one request.
type Validator struct {
	errs []ValidationError
}

func NewValidator() *Validator {
	return &Validator{}
}

// Field validates a field and collects errors
func (v *Validator) Field(fieldName, value string, rules ...ValidationRule) *Validator {
	for _, rule := range rules {
		if err := rule(fieldName, value); err != nil {
			v.errs = append(v.errs, *err)
		}
	}
	return v
}

// HasErrors returns true if there are validation errors
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

// Error returns a combined error, or nil when everything validated.
func (v *Validator) Error() error {
	if !v.HasErrors() {
		return nil
	}
	msgs := make([]string, len(v.errs))
	for i, e := range v.errs {
		msgs[i] = e.Error()
	}
	return InvalidArgumentError(strings.Join(msgs, "; "))
}

// ValidationRule represents a single validation rule
type ValidationRule func(fieldName, value string) *ValidationError

func Required(fieldName, value string) *ValidationError {
	if value == "" {
		return &ValidationError{Field: fieldName, Message: "is required"}
	}
	return nil
}

func MaxLength(max int) ValidationRule {
	return func(fieldName, value string) *ValidationError {
		if len(value) > max {
			return &ValidationError{Field: fieldName, Message: fmt.Sprintf("must be at most %d characters", max)}
		}
		return nil
	}
}

// Barcode accepts GTIN-style product codes: digits only, EAN-8 to GTIN-14.
func Barcode(fieldName, value string) *ValidationError {
	if value == "" {
		return nil // pair with Required when the field is mandatory
	}
	if len(value) < 8 || len(value) > 14 {
		return &ValidationError{Field: fieldName, Message: "must be 8 to 14 digits"}
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return &ValidationError{Field: fieldName, Message: "must contain only digits"}
		}
	}
	return nil
}

// UUID checks that the value parses as a UUID.
func UUID(fieldName, value string) *ValidationError {
	if _, err := uuid.Parse(value); err != nil {
		return &ValidationError{Field: fieldName, Message: "must be a valid UUID"}
	}
	return nil
}
