package domain

import "fmt"

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// CapacityExceededErr is returned when a payload does not fit in a cover image.
type CapacityExceededErr struct {
	domainErr
	Required int
	Capacity int
}

// NewCapacityExceededErr creates a new CapacityExceededErr for a payload of required bits
// and an image able to hold capacity bits.
func NewCapacityExceededErr(required, capacity int) *CapacityExceededErr {
	return &CapacityExceededErr{
		domainErr: domainErr{
			message: fmt.Sprintf("payload too long for image capacity: %d bits > %d bits", required, capacity),
		},
		Required: required,
		Capacity: capacity,
	}
}

// CapabilityUnavailableErr reports that the perceptual transform is absent or failed.
// Callers of the orchestrator never observe it.
type CapabilityUnavailableErr struct {
	domainErr
	cause error
}

// NewCapabilityUnavailableErr creates a new CapabilityUnavailableErr. cause may be nil.
func NewCapabilityUnavailableErr(message string, cause error) *CapabilityUnavailableErr {
	if cause != nil {
		message = fmt.Sprintf("%s: %v", message, cause)
	}
	return &CapabilityUnavailableErr{
		domainErr: domainErr{message: message},
		cause:     cause,
	}
}

// Unwrap returns the underlying cause.
func (e *CapabilityUnavailableErr) Unwrap() error {
	return e.cause
}
