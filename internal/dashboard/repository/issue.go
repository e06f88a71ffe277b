package repository

import (
	"encoding/json"

	"teamboard/pkg/adf"
)

// Issue is one raw tracker record, shaped like the upstream JSON.
type Issue struct {
	Key       string      `json:"key"`
	Fields    IssueFields `json:"fields"`
	Changelog *Changelog  `json:"changelog,omitempty"`
}

// IssueFields is the field payload requested on every search.
type IssueFields struct {
	Summary        string        `json:"summary"`
	Assignee       *User         `json:"assignee"`
	Status         Status        `json:"status"`
	Created        string        `json:"created"`
	Updated        string        `json:"updated"`
	DueDate        string        `json:"duedate"`
	Priority       *Named        `json:"priority"`
	Description    *adf.Document `json:"description"`
	Comment        *CommentPage  `json:"comment"`
	StoryPoints    float64       `json:"customfield_10016"`
	Department     CustomOption  `json:"customfield_10306"`
	BICategory     CustomOption  `json:"customfield_10307"`
	Labels         []string      `json:"labels"`
	ResolutionDate string        `json:"resolutiondate"`
}

// User is a tracker account reference.
type User struct {
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress"`
}

// Status is an issue workflow status.
type Status struct {
	Name string `json:"name"`
}

// Named is a tracker value addressed only by name.
type Named struct {
	Name string `json:"name"`
}

// CustomOption is a select-style custom field. The tracker serializes it
// either as {"value": "..."} or as a bare string depending on field
// configuration, so it carries a custom unmarshaler.
type CustomOption struct {
	Value string
}

func (o *CustomOption) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		o.Value = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		o.Value = s
		return nil
	}
	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	o.Value = obj.Value
	return nil
}

func (o CustomOption) MarshalJSON() ([]byte, error) {
	if o.Value == "" {
		return []byte("null"), nil
	}
	return json.Marshal(struct {
		Value string `json:"value"`
	}{Value: o.Value})
}

// CommentPage is the embedded comment listing on an issue.
type CommentPage struct {
	Comments []IssueComment `json:"comments"`
}

// IssueComment is one raw comment.
type IssueComment struct {
	Author  *User         `json:"author"`
	Created string        `json:"created"`
	Body    *adf.Document `json:"body"`
}

// Changelog is the issue change history.
type Changelog struct {
	Histories []History `json:"histories"`
}

// History is one authored batch of field changes.
type History struct {
	Author  User          `json:"author"`
	Created string        `json:"created"`
	Items   []HistoryItem `json:"items"`
}

// HistoryItem is a single field change inside a history batch.
type HistoryItem struct {
	Field      string `json:"field"`
	FromString string `json:"fromString"`
	ToString   string `json:"toString"`
}

// Transition is one raw workflow transition.
type Transition struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	To   *Status `json:"to,omitempty"`
}
