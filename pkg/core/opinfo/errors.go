// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package opinfo

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errors returned by the Builder and the Registry. Use errors.Is to test for them: a failed
// Builder.Finalize matches both ErrValidation and the specific violation.
var (
	// ErrValidation is matched by every error returned by Builder.Finalize.
	ErrValidation = errors.New("invalid operator descriptor")

	ErrEmptyName          = errors.New("empty operator name")
	ErrInvalidBackend     = errors.New("invalid backend")
	ErrInvalidFusionClass = errors.New("invalid fusion class")
	ErrEmptyLabel         = errors.New("empty slot label")
	ErrDuplicateSlot      = errors.New("duplicate slot")
	ErrOutOfOrder         = errors.New("slot index out of order")
	ErrMissingSlot        = errors.New("missing slot")
	ErrArityMismatch      = errors.New("signature arity mismatch")
	ErrInvalidTensorType  = errors.New("invalid tensor type")
	ErrMissingSignature   = errors.New("no signatures declared")

	ErrDuplicateRegistration = errors.New("operator already registered")
	ErrNotFound              = errors.New("operator not found")
	ErrRegistryClosed        = errors.New("operator registry is sealed")
)

// ValidationError is returned by Builder.Finalize when the descriptor being built violates one of
// its invariants. Err holds the specific violation (ErrArityMismatch, ErrDuplicateSlot, ...).
type ValidationError struct {
	Name    string
	Backend Backend
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q for backend %s: %v", ErrValidation, e.Name, e.Backend, e.Err)
}

// Unwrap allows errors.Is to match both ErrValidation and the specific violation.
func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Err}
}
