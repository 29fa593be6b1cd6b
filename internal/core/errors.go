package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds on account")
	ErrInvalidAmount     = errors.New("amount must be greater than zero")

	// ErrVersionConflict is returned by AccountStore.Commit when another
	// writer advanced the account's version first. It never crosses the
	// service boundary: the balance loop absorbs it by reloading.
	ErrVersionConflict = errors.New("account version conflict")

	// ErrContention is surfaced when a bounded retry budget is exhausted
	// without the commit ever landing.
	ErrContention = errors.New("account contention not resolved")
)

type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for fields: %s", strings.Join(e.Fields, ", "))
}
