package repository

import "context"

// IssueRepository abstracts the issue tracker backend.
type IssueRepository interface {
	// SearchIssues returns all matching issues, following pagination to
	// exhaustion. Each issue carries its full changelog.
	SearchIssues(ctx context.Context, opts SearchIssuesOptions) ([]Issue, error)

	// GetTransitions lists the workflow transitions available for an issue.
	GetTransitions(ctx context.Context, issueID string) ([]Transition, error)

	// TransitionIssue moves an issue through the given workflow transition.
	TransitionIssue(ctx context.Context, issueID, transitionID string) error

	// UpdateIssue applies a field/update payload to an issue.
	UpdateIssue(ctx context.Context, issueID string, payload UpdatePayload) error
}
