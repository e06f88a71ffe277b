package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"teamboard/internal/dashboard"
	"teamboard/internal/model"
)

func (uc *implUseCase) Tasks(ctx context.Context, input dashboard.TasksInput) ([]model.Task, error) {
	return uc.filterAndSort(uc.snapshot(), input), nil
}

// filterAndSort applies the filter specification and the deterministic
// multi-key sort. The input slice is never mutated.
func (uc *implUseCase) filterAndSort(tasks []model.Task, input dashboard.TasksInput) []model.Task {
	filtered := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if uc.matches(task, input) {
			filtered = append(filtered, task)
		}
	}
	uc.sortTasks(filtered)
	return filtered
}

func (uc *implUseCase) matches(task model.Task, input dashboard.TasksInput) bool {
	f := input.Filters

	if input.Range.Active() {
		start, err := uc.calendar.ParseDate(task.StartDate)
		if err != nil {
			// A task without a parsable start date is excluded while a
			// range is active.
			return false
		}
		if start.Before(uc.calendar.StartOfDay(input.Range.Start)) ||
			start.After(uc.calendar.EndOfDay(input.Range.End)) {
			return false
		}
	}

	if f.TaskName != "" {
		needle := strings.ToLower(f.TaskName)
		if !strings.Contains(strings.ToLower(task.Title), needle) &&
			!strings.Contains(strings.ToLower(task.ID), needle) {
			return false
		}
	}

	if !memberOf(task.Assignee, f.Assignees) ||
		!memberOf(task.Status, f.Statuses) ||
		!memberOf(task.Department, f.Departments) ||
		!memberOf(task.BICategory, f.BICategories) {
		return false
	}

	// Selected labels are a conjunction: the task must carry all of them.
	for _, label := range f.Labels {
		if !contains(task.Labels, label) {
			return false
		}
	}
	return true
}

// memberOf reports set membership, with an empty set meaning "no filter".
func memberOf(value string, selected []string) bool {
	return len(selected) == 0 || contains(selected, value)
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

// statusBucket maps free-text status into a coarse lifecycle stage:
// 1 active, 2 held, 3 finished, 4 anything unrecognized.
func statusBucket(status string) int {
	upper := strings.ToUpper(status)
	switch {
	case containsAny(upper, "OPEN", "IN PROGRESS", "TO DO", "REOPENED"):
		return 1
	case containsAny(upper, "ON HOLD", "PENDING REVIEW"):
		return 2
	case containsAny(upper, "DONE", "CANCELLED", "CANCELED"):
		return 3
	default:
		return 4
	}
}

func containsAny(s string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}

func priorityRank(priority string) int {
	switch priority {
	case model.PriorityHighest:
		return 1
	case model.PriorityHigh:
		return 2
	case model.PriorityMedium:
		return 3
	case model.PriorityLow:
		return 4
	default:
		return 5
	}
}

func (uc *implUseCase) sortTasks(tasks []model.Task) {
	today := uc.calendar.StartOfDay(time.Now())

	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]

		ba, bb := statusBucket(a.Status), statusBucket(b.Status)
		if ba != bb {
			return ba < bb
		}

		// Finished work reads newest first.
		if ba == 3 {
			return a.LastUpdated.After(b.LastUpdated)
		}

		pa, pb := priorityRank(a.Priority), priorityRank(b.Priority)
		if pa != pb {
			return pa < pb
		}

		da, aOK := uc.dueDate(a)
		db, bOK := uc.dueDate(b)
		if aOK != bOK {
			// A task with a due date sorts before one without.
			return aOK
		}
		if !aOK {
			return false
		}

		aOver, bOver := da.Before(today), db.Before(today)
		if aOver != bOver {
			return aOver
		}
		return da.Before(db)
	})
}

func (uc *implUseCase) dueDate(task model.Task) (time.Time, bool) {
	d, err := uc.calendar.ParseDate(task.DueDate)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
