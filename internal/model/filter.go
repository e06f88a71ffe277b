package model

import "time"

// Filters is the user-selected filter specification.
// Empty slices mean "no filter" for that dimension; Labels is a conjunction.
type Filters struct {
	TaskName     string   `json:"task_name"`
	Assignees    []string `json:"assignees"`
	Statuses     []string `json:"statuses"`
	Departments  []string `json:"departments"`
	Labels       []string `json:"labels"`
	BICategories []string `json:"bi_categories"`
}

// DateRange bounds tasks by start date, inclusive at day granularity.
// Zero values disable the range.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Active reports whether the range should be applied.
func (r DateRange) Active() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}
