package repository

import "errors"

var (
	// ErrNotConfigured is returned when the tracker credentials or base
	// URL are missing.
	ErrNotConfigured = errors.New("tracker is not configured")

	// ErrIssueNotFound is returned for operations on an unknown issue.
	ErrIssueNotFound = errors.New("issue not found")

	// ErrUpstream wraps unexpected tracker responses.
	ErrUpstream = errors.New("unexpected tracker response")
)
