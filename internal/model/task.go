package model

import "time"

// Priority vocabulary. Anything else sorts after Low.
const (
	PriorityHighest = "Highest"
	PriorityHigh    = "High"
	PriorityMedium  = "Medium"
	PriorityLow     = "Low"
)

// Defaults applied when the tracker record omits a field.
const (
	UnassignedName = "Unassigned"
	NoValue        = "N/A"
	NoLabel        = "No Label"
)

// Task is the normalized in-memory representation of one tracker issue.
// Tasks are rebuilt wholesale on every data load and never mutated in place.
type Task struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Assignee      string `json:"assignee"`
	AssigneeEmail string `json:"assignee_email,omitempty"`
	Status        string `json:"status"`

	// Calendar dates as YYYY-MM-DD, empty when absent.
	StartDate      string `json:"start_date,omitempty"`
	DueDate        string `json:"due_date,omitempty"`
	EndDate        string `json:"end_date,omitempty"`
	ResolutionDate string `json:"resolution_date,omitempty"`

	StartTimestamp time.Time `json:"start_timestamp"`
	LastUpdated    time.Time `json:"last_updated"`

	Priority    string     `json:"priority"`
	Description string     `json:"description"`
	SlackLink   string     `json:"slack_link,omitempty"`
	FigmaLinks  []TaskLink `json:"figma_links"`

	StoryPoints float64  `json:"story_points"`
	Department  string   `json:"department"`
	BICategory  string   `json:"bi_category"`
	Labels      []string `json:"labels"`

	Comments []Comment `json:"comments"`

	LastUpdateDetail  *UpdateDetail `json:"last_update_detail,omitempty"`
	FullChangeHistory []ChangeSet   `json:"full_change_history"`
}

// TaskLink is an outbound link extracted from the description.
type TaskLink struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}

// Comment is a rendered issue comment.
type Comment struct {
	Author           string    `json:"author"`
	CreatedDisplay   string    `json:"created_display"`
	CreatedTimestamp time.Time `json:"created_timestamp"`
	BodyHTML         string    `json:"body_html"`
}

// UpdateDetailType discriminates the UpdateDetail variants.
type UpdateDetailType string

const (
	UpdateDetailFromTo  UpdateDetailType = "fromTo"
	UpdateDetailTwoLine UpdateDetailType = "twoLine"
	UpdateDetailSimple  UpdateDetailType = "simple"
)

// UpdateDetail describes what the issue's most recent update was,
// when it can be attributed. Nil when the cause is ambiguous.
type UpdateDetail struct {
	Type  UpdateDetailType `json:"type"`
	From  string           `json:"from,omitempty"`
	To    string           `json:"to,omitempty"`
	Line1 string           `json:"line1,omitempty"`
	Line2 string           `json:"line2,omitempty"`
	Text  string           `json:"text,omitempty"`
}

// ChangeSet is one changelog entry, excluding automation authors.
type ChangeSet struct {
	Author  string        `json:"author"`
	Created time.Time     `json:"created"`
	Changes []FieldChange `json:"changes"`
}

// FieldChange is a single field transition inside a ChangeSet.
type FieldChange struct {
	Field string `json:"field"`
	From  string `json:"from"`
	To    string `json:"to"`
}
