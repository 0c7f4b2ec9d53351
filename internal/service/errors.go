package service

import "errors"

// Sentinel errors surfaced to handlers. Validation and authorization
// failures are rejected before any store call; write failures wrap the
// underlying store error and are retryable by re-invoking the action.
var (
	ErrValidation   = errors.New("validation failed")
	ErrWrite        = errors.New("write failed")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("administrator identity required")
	ErrReplyDepth   = errors.New("maximum reply depth reached")
	ErrSlugTaken    = errors.New("slug already in use")
)
