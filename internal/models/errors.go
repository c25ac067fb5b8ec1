package models

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the ledger wraps exactly one of them.
var (
	ErrGeneral             = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound    = errors.New("there is no")
	ErrInvalidInput        = errors.New("invalid input")
	ErrConstraintViolation = errors.New("constraint violated")
)

var (
	ErrAmountNotPositive = fmt.Errorf("%w: the amount must be greater than zero", ErrInvalidInput)
	ErrAmountPrecision   = fmt.Errorf("%w: the amount must not have more than two decimal places", ErrInvalidInput)
	ErrKindInvalid       = fmt.Errorf("%w: the transaction kind must be one of Income, Expense", ErrInvalidInput)
	ErrCategoryEmpty     = fmt.Errorf("%w: the category must not be empty", ErrInvalidInput)
	ErrCategoryTooLong   = fmt.Errorf("%w: the category must not be longer than %d characters", ErrInvalidInput, categoryMaxLength)
	ErrLimitNegative     = fmt.Errorf("%w: the budget limit must not be negative", ErrInvalidInput)
)

// IsKnown reports whether err already carries one of the error kinds.
func IsKnown(err error) bool {
	return errors.Is(err, ErrGeneral) ||
		errors.Is(err, ErrResourceNotFound) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrConstraintViolation)
}
