package usecase

import "errors"

var (
	ErrInvalidClient  = errors.New("client_name is required")
	ErrInvalidPulse   = errors.New("pulse must be one of Traffic, Conversion, Profit, VIP, Retention, Reputation")
	ErrInvalidStatus  = errors.New("status must be one of pool, approved, active, done")
	ErrInvalidContent = errors.New("content is required and must be at most 500 characters")
	ErrInvalidTaskID  = errors.New("task id must be a positive integer")
	ErrEmptyPatch     = errors.New("status or content is required")

	// ErrNarratorUnavailable means no model is configured.
	ErrNarratorUnavailable = errors.New("narrative model is not configured")
	// ErrNarratorFailed wraps a failed or unusable model answer.
	ErrNarratorFailed = errors.New("narrative model failed")
)
