package dashboard

import (
	"context"

	"teamboard/internal/model"
)

// UseCase defines the business logic interface for the dashboard domain.
// All read operations compute over the current in-memory snapshot; nothing
// is cached between calls.
type UseCase interface {
	// Refresh reloads all tasks from the tracker and replaces the snapshot
	// wholesale. On configuration or upstream errors it falls back to the
	// demo dataset and reports the failure in the output, not as an error.
	Refresh(ctx context.Context) RefreshOutput

	// Status reports connection state and snapshot metadata.
	Status(ctx context.Context) StatusOutput

	// Tasks applies the filter specification and the deterministic
	// multi-key sort over the snapshot.
	Tasks(ctx context.Context, input TasksInput) ([]model.Task, error)

	// Grouped partitions the filtered tasks by the given dimension.
	Grouped(ctx context.Context, input TasksInput, dim Dimension) ([]Group, error)

	// SourceRollup builds the department→label→category hierarchy.
	SourceRollup(ctx context.Context, input TasksInput) ([]DepartmentRollup, error)

	// AssigneeSourceRollup builds the assignee→department→label→category hierarchy.
	AssigneeSourceRollup(ctx context.Context, input TasksInput) ([]AssigneeRollup, error)

	// DailyWorkload computes the per-day time series for the trailing
	// three-month window, grouped by the given dimension.
	DailyWorkload(ctx context.Context, input TasksInput, dim Dimension) (DailyWorkloadOutput, error)

	// WorkloadByPerson summarizes totals per assignee over the whole snapshot.
	WorkloadByPerson(ctx context.Context) []WorkloadEntry

	// LabelLeaderboard ranks domain labels by task count over the filtered tasks.
	LabelLeaderboard(ctx context.Context, input TasksInput) ([]LeaderboardEntry, error)

	// GanttBounds derives padded chart date bounds from the filtered tasks.
	GanttBounds(ctx context.Context, input TasksInput) (GanttBounds, error)

	// Colors returns the deterministic color assignment for a dimension's
	// current distinct values.
	Colors(ctx context.Context, dim Dimension) (map[string]string, error)

	// UpdateTask applies field edits and/or a comment, then a separate
	// status transition if requested, then reloads the snapshot.
	UpdateTask(ctx context.Context, taskID string, input UpdateInput) error

	// Transitions lists the available status transitions for a task.
	Transitions(ctx context.Context, taskID string) ([]Transition, error)
}
