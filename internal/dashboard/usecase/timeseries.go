package usecase

import (
	"context"
	"sort"
	"time"

	"teamboard/internal/dashboard"
	"teamboard/internal/model"
)

const displayDateLayout = "Jan 2"

func (uc *implUseCase) DailyWorkload(ctx context.Context, input dashboard.TasksInput, dim dashboard.Dimension) (dashboard.DailyWorkloadOutput, error) {
	if dim == dashboard.DimensionStatus {
		return dashboard.DailyWorkloadOutput{}, dashboard.ErrUnknownDimension
	}

	// The chart is gated only by the assignee filter; the other filters
	// do not narrow the series.
	tasks := []model.Task{}
	for _, task := range uc.snapshot() {
		if memberOf(task.Assignee, input.Filters.Assignees) {
			tasks = append(tasks, task)
		}
	}

	today := uc.calendar.StartOfDay(time.Now())
	windowStart := today.AddDate(0, -3, 0)

	type datedTask struct {
		key      string
		start    time.Time
		end      time.Time
		resolved bool
	}
	dated := make([]datedTask, 0, len(tasks))
	seen := map[string]bool{}
	keys := []string{}
	for _, task := range tasks {
		key := groupKey(task, dim)
		if key == "" {
			return dashboard.DailyWorkloadOutput{}, dashboard.ErrUnknownDimension
		}
		start, err := uc.calendar.ParseDate(task.StartDate)
		if err != nil {
			continue
		}
		dt := datedTask{key: key, start: start}
		if statusBucket(task.Status) == 3 {
			// A finished task counts only through its resolution day; one
			// without a parsable resolution date never counts.
			end, err := uc.calendar.ParseDate(task.ResolutionDate)
			if err != nil {
				continue
			}
			dt.end = end
			dt.resolved = true
		}
		dated = append(dated, dt)
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}

	points := []dashboard.SeriesPoint{}
	totals := map[string]int{}
	for day := windowStart; !day.After(today); day = day.AddDate(0, 0, 1) {
		counts := make(map[string]int, len(keys))
		for _, key := range keys {
			counts[key] = 0
		}
		for _, dt := range dated {
			if dt.start.After(day) {
				continue
			}
			// Open tasks count from their start date onward; resolved
			// tasks stop counting after their resolution day.
			if dt.resolved && dt.end.Before(day) {
				continue
			}
			counts[dt.key]++
			totals[dt.key]++
		}
		points = append(points, dashboard.SeriesPoint{
			Date:        uc.calendar.FormatDate(day),
			DisplayDate: day.Format(displayDateLayout),
			Counts:      counts,
		})
	}

	// Series that never register a count are dropped from the chart.
	active := []string{}
	for _, key := range keys {
		if totals[key] > 0 {
			active = append(active, key)
		}
	}
	sort.Strings(active)

	for i := range points {
		trimmed := make(map[string]int, len(active))
		for _, key := range active {
			trimmed[key] = points[i].Counts[key]
		}
		points[i].Counts = trimmed
	}

	return dashboard.DailyWorkloadOutput{
		Points:     points,
		ActiveKeys: active,
		Colors:     assignColors(active),
		Today:      uc.calendar.FormatDate(today),
	}, nil
}
