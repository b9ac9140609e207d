package services

import (
	"errors"
	"fmt"
)

var (
	ErrClientNotConfigured = errors.New("completion client is not configured")
	ErrEmptyCompletion     = errors.New("response contained no candidates")
	ErrNoCompletionText    = errors.New("response candidate contained no text")
	ErrStorageDisabled     = errors.New("object storage is not configured")
)

// ExtractionError means an uploaded document could not be parsed.
type ExtractionError struct {
	FileName string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %q: %v", e.FileName, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// ConfigurationError means a credential or setting is missing or was rejected.
type ConfigurationError struct {
	Setting string
	Err     error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error (%s): %v", e.Setting, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// UpstreamError is a failure reported by, or on the way to, the completion service.
type UpstreamError struct {
	StatusCode  int
	RateLimited bool
	Err         error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("completion service error (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("completion service error: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
