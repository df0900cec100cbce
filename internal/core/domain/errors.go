package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for controller-level rejections.
var (
	// ErrBusy indicates a clip submission is already in flight.
	// A new submission is rejected, not queued.
	ErrBusy = errors.New("a clip job is already in flight")

	// ErrAborted indicates the caller declined the confirmation step.
	ErrAborted = errors.New("aborted by caller")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")
)

// ValidationError is a client-detected input problem.
// It never reaches the network.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// NetworkError indicates the transport failed and no response was
// received. The underlying cause is wrapped.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError indicates the server explicitly rejected the request with a
// structured reason.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("server returned %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("server returned %d", e.Status)
}

// DecodeError indicates the response body could not be parsed.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsValidation checks if the error is a client-side validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNetwork checks if the error is a transport failure.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// IsDecode checks if the error is a malformed response body.
func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// IsNotFound checks if the error indicates a missing entity.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == 404
	}
	return errors.Is(err, ErrNotFound)
}

// UserMessage extracts the most useful display message from an error,
// preferring the server's structured detail when present.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return err.Error()
}
