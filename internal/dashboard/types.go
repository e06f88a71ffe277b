package dashboard

import (
	"time"

	"teamboard/internal/model"
)

// Dimension selects the grouping axis for views and charts.
type Dimension string

const (
	DimensionAssignee   Dimension = "assignee"
	DimensionDepartment Dimension = "department"
	DimensionCategory   Dimension = "category"
	DimensionStatus     Dimension = "status"
)

// TasksInput carries the filter specification and date range for read operations.
type TasksInput struct {
	Filters model.Filters
	Range   model.DateRange
}

// RefreshOutput reports the result of a snapshot reload.
type RefreshOutput struct {
	Connected   bool      `json:"connected"`
	TaskCount   int       `json:"task_count"`
	LastRefresh time.Time `json:"last_refresh"`
	Message     string    `json:"message,omitempty"`
}

// StatusOutput reports the current connection state.
type StatusOutput struct {
	Connected   bool      `json:"connected"`
	TaskCount   int       `json:"task_count"`
	LastRefresh time.Time `json:"last_refresh"`
	Message     string    `json:"message,omitempty"`
}

// Group is one bucket of a single-key grouping.
type Group struct {
	Key   string       `json:"key"`
	Email string       `json:"email,omitempty"`
	Tasks []model.Task `json:"tasks"`
	Count int          `json:"count"`
}

// CategoryRollup is the leaf level of the hierarchical rollups.
type CategoryRollup struct {
	Name      string       `json:"name"`
	Tasks     []model.Task `json:"tasks"`
	TaskCount int          `json:"task_count"`
}

// LabelRollup groups categories under one label.
type LabelRollup struct {
	Name       string           `json:"name"`
	Categories []CategoryRollup `json:"categories"`
	TaskCount  int              `json:"task_count"`
}

// DepartmentRollup groups labels under one department.
type DepartmentRollup struct {
	Name      string        `json:"name"`
	Labels    []LabelRollup `json:"labels"`
	TaskCount int           `json:"task_count"`
}

// AssigneeRollup groups departments under one assignee.
type AssigneeRollup struct {
	Name        string             `json:"name"`
	Email       string             `json:"email,omitempty"`
	Departments []DepartmentRollup `json:"departments"`
	TaskCount   int                `json:"task_count"`
}

// WorkloadEntry summarizes one assignee's totals.
type WorkloadEntry struct {
	Assignee    string  `json:"assignee"`
	Email       string  `json:"email,omitempty"`
	Total       int     `json:"total"`
	Completed   int     `json:"completed"`
	StoryPoints float64 `json:"story_points"`
}

// SeriesPoint is one day of the workload time series.
type SeriesPoint struct {
	Date        string         `json:"date"`
	DisplayDate string         `json:"display_date"`
	Counts      map[string]int `json:"counts"`
}

// DailyWorkloadOutput is the chart-ready time series.
type DailyWorkloadOutput struct {
	Points     []SeriesPoint     `json:"points"`
	ActiveKeys []string          `json:"active_keys"`
	Colors     map[string]string `json:"colors"`
	Today      string            `json:"today"`
}

// LeaderboardAssignee is one assignee's share of a label.
type LeaderboardAssignee struct {
	Assignee string `json:"assignee"`
	Email    string `json:"email,omitempty"`
	Count    int    `json:"count"`
}

// LeaderboardEntry ranks one label.
type LeaderboardEntry struct {
	Label      string                `json:"label"`
	TotalTasks int                   `json:"total_tasks"`
	Assignees  []LeaderboardAssignee `json:"assignees"`
}

// GanttBounds are the padded chart date bounds, as YYYY-MM-DD.
type GanttBounds struct {
	MinDate string `json:"min_date"`
	MaxDate string `json:"max_date"`
}

// UpdateInput carries the editable fields of a task. Zero values are skipped.
type UpdateInput struct {
	Priority   string `json:"priority"`
	BICategory string `json:"bi_category"`
	Comment    string `json:"comment"`
	StatusID   string `json:"status_id"`
}

// Transition is one available status transition.
type Transition struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ToStatus string `json:"to_status,omitempty"`
}
