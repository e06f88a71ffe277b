package repository

// SearchIssuesOptions narrows an issue search.
type SearchIssuesOptions struct {
	// ProjectKey scopes the search to one project. Required.
	ProjectKey string
	// CreatedSince bounds issue creation, as a tracker-relative expression
	// such as "-90d", or empty for no bound.
	CreatedSince string
	// AssigneeEmails restricts to the given assignees when non-empty.
	AssigneeEmails []string
}

// UpdatePayload is the raw edit body sent to the tracker. Fields carries
// direct field sets, Update carries operation lists such as comment adds.
type UpdatePayload struct {
	Fields map[string]any `json:"fields,omitempty"`
	Update map[string]any `json:"update,omitempty"`
}
