package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrValidation marks bad or missing input. Never retried.
	ErrValidation = errors.New("validation failed")

	// ErrBackendUnavailable marks a backend that is not configured.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrBackend marks a transport failure, non-success response or malformed payload.
	ErrBackend = errors.New("backend error")

	// ErrStorage marks an unreachable or failing persistence layer.
	ErrStorage = errors.New("storage error")

	// ErrUsageNotRecorded marks a computed answer whose usage could not be persisted.
	ErrUsageNotRecorded = fmt.Errorf("usage not recorded: %w", ErrStorage)

	// ErrReferenceUnavailable marks a missing or unconfigured reference source.
	ErrReferenceUnavailable = errors.New("reference unavailable")

	// ErrNotFound marks a reference page that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnpriced marks a paid model with no entry in the pricing table.
	ErrUnpriced = errors.New("model has no pricing")
)

// DispatchError reports a request that failed on the selected backend and on the fallback.
type DispatchError struct {
	Selected BackendID
	Primary  error
	Fallback error
}

func (e *DispatchError) Error() string {
	if e.Primary == nil {
		return fmt.Sprintf("dispatch failed: backend=%s: %v", e.Selected, e.Fallback)
	}
	return fmt.Sprintf("dispatch failed: backend=%s: %v; fallback=%s: %v",
		e.Selected, e.Primary, FreeBackend, e.Fallback)
}

// Unwrap exposes both causes to errors.Is and errors.As.
func (e *DispatchError) Unwrap() []error {
	errs := make([]error, 0, 2) //nolint:mnd // primary and fallback
	if e.Primary != nil {
		errs = append(errs, e.Primary)
	}
	if e.Fallback != nil {
		errs = append(errs, e.Fallback)
	}
	return errs
}

// IsClientError reports whether err should be surfaced as a 4xx response.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrNotFound)
}
