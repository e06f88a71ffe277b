package usecase

import (
	"context"
	"time"

	"teamboard/internal/dashboard"
)

const (
	ganttPadDays      = 7
	ganttFallbackDays = 14
)

func (uc *implUseCase) GanttBounds(ctx context.Context, input dashboard.TasksInput) (dashboard.GanttBounds, error) {
	tasks := uc.filterAndSort(uc.snapshot(), input)

	var earliest, latest time.Time
	observe := func(s string) {
		d, err := uc.calendar.ParseDate(s)
		if err != nil {
			return
		}
		if earliest.IsZero() || d.Before(earliest) {
			earliest = d
		}
		if latest.IsZero() || d.After(latest) {
			latest = d
		}
	}
	for _, task := range tasks {
		observe(task.StartDate)
		observe(task.EndDate)
		observe(task.DueDate)
	}

	if earliest.IsZero() {
		today := uc.calendar.StartOfDay(time.Now())
		return dashboard.GanttBounds{
			MinDate: uc.calendar.FormatDate(today.AddDate(0, 0, -ganttFallbackDays)),
			MaxDate: uc.calendar.FormatDate(today.AddDate(0, 0, ganttFallbackDays)),
		}, nil
	}
	return dashboard.GanttBounds{
		MinDate: uc.calendar.FormatDate(earliest.AddDate(0, 0, -ganttPadDays)),
		MaxDate: uc.calendar.FormatDate(latest.AddDate(0, 0, ganttPadDays)),
	}, nil
}
