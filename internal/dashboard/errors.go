package dashboard

import "errors"

var (
	// ErrUnknownDimension is returned for a grouping dimension outside the
	// supported vocabulary.
	ErrUnknownDimension = errors.New("unknown grouping dimension")

	// ErrTaskNotFound is returned when an operation targets a task id
	// absent from the snapshot.
	ErrTaskNotFound = errors.New("task not found")

	// ErrNotConnected is returned for mutations attempted while the
	// dashboard is running on the demo dataset.
	ErrNotConnected = errors.New("not connected to the tracker")

	// ErrEmptyUpdate is returned when an update request carries no changes.
	ErrEmptyUpdate = errors.New("update request is empty")
)
