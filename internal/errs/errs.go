// Package errs defines sentinel errors shared across layers.
package errs

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrWorkspaceNotFound   = errors.New("workspace not found")
	ErrCaseFileNotFound    = errors.New("case file not found")
	ErrInvalidIncidentDate = errors.New("invalid incident date")
)
