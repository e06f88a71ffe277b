package usecase

import (
	"context"
	"testing"
	"time"

	"teamboard/internal/dashboard"
	"teamboard/internal/model"
)

func TestDailyWorkload_DropsAllZeroSeries(t *testing.T) {
	uc := newTestUseCase(nil, nil)
	old := uc.calendar.FormatDate(time.Now().AddDate(0, -8, 0))

	uc.setSnapshot([]model.Task{
		// Resolved long before the window opens: never counts.
		{ID: "1", Assignee: "Ghost", Status: "[BI] Done", StartDate: old, ResolutionDate: old},
		{ID: "2", Assignee: "Alice", Status: "[BI] To Do", StartDate: uc.calendar.FormatDate(time.Now().AddDate(0, 0, -10))},
	}, true, "")

	out, err := uc.DailyWorkload(context.Background(), dashboard.TasksInput{}, dashboard.DimensionAssignee)
	if err != nil {
		t.Fatalf("DailyWorkload() error = %v", err)
	}
	for _, key := range out.ActiveKeys {
		if key == "Ghost" {
			t.Errorf("all-zero series must be dropped, got keys %v", out.ActiveKeys)
		}
	}
	if len(out.ActiveKeys) != 1 || out.ActiveKeys[0] != "Alice" {
		t.Errorf("ActiveKeys = %v, want [Alice]", out.ActiveKeys)
	}
}

func TestDailyWorkload_OpenCountsFromStartOnward(t *testing.T) {
	uc := newTestUseCase(nil, nil)
	start := time.Now().AddDate(0, 0, -10)
	uc.setSnapshot([]model.Task{
		{ID: "1", Assignee: "Alice", StartDate: uc.calendar.FormatDate(start)},
	}, true, "")

	out, err := uc.DailyWorkload(context.Background(), dashboard.TasksInput{}, dashboard.DimensionAssignee)
	if err != nil {
		t.Fatalf("DailyWorkload() error = %v", err)
	}

	startDay := uc.calendar.FormatDate(start)
	for _, p := range out.Points {
		count := p.Counts["Alice"]
		switch {
		case p.Date < startDay && count != 0:
			t.Fatalf("day %s before start has count %d", p.Date, count)
		case p.Date >= startDay && count != 1:
			t.Fatalf("day %s on/after start has count %d, want 1", p.Date, count)
		}
	}
	if out.Today != uc.calendar.FormatDate(time.Now()) {
		t.Errorf("Today = %q", out.Today)
	}
}

func TestDailyWorkload_ResolvedStopsCounting(t *testing.T) {
	uc := newTestUseCase(nil, nil)
	start := time.Now().AddDate(0, 0, -20)
	resolved := time.Now().AddDate(0, 0, -5)
	uc.setSnapshot([]model.Task{
		{
			ID: "1", Assignee: "Alice", Status: "[BI] Done",
			StartDate:      uc.calendar.FormatDate(start),
			ResolutionDate: uc.calendar.FormatDate(resolved),
		},
	}, true, "")

	out, err := uc.DailyWorkload(context.Background(), dashboard.TasksInput{}, dashboard.DimensionAssignee)
	if err != nil {
		t.Fatalf("DailyWorkload() error = %v", err)
	}

	resolvedDay := uc.calendar.FormatDate(resolved)
	for _, p := range out.Points {
		count := p.Counts["Alice"]
		if p.Date > resolvedDay && count != 0 {
			t.Fatalf("day %s after resolution has count %d", p.Date, count)
		}
		if p.Date == resolvedDay && count != 1 {
			t.Fatalf("resolution day itself must still count, got %d", count)
		}
	}
}

func TestDailyWorkload_DoneWithoutResolutionNeverCounts(t *testing.T) {
	uc := newTestUseCase(nil, nil)
	start := uc.calendar.FormatDate(time.Now().AddDate(0, 0, -10))
	uc.setSnapshot([]model.Task{
		// Finished by status but with no resolution date: excluded on every
		// day rather than counting as open forever.
		{ID: "1", Assignee: "Alice", Status: "[BI] Done", StartDate: start},
		{ID: "2", Assignee: "Bob", Status: "[BI] In Progress", StartDate: start},
	}, true, "")

	out, err := uc.DailyWorkload(context.Background(), dashboard.TasksInput{}, dashboard.DimensionAssignee)
	if err != nil {
		t.Fatalf("DailyWorkload() error = %v", err)
	}
	if len(out.ActiveKeys) != 1 || out.ActiveKeys[0] != "Bob" {
		t.Errorf("ActiveKeys = %v, want [Bob]", out.ActiveKeys)
	}
	for _, p := range out.Points {
		if p.Counts["Alice"] != 0 {
			t.Fatalf("day %s counts the dateless resolved task", p.Date)
		}
	}
}

func TestDailyWorkload_AssigneeFilterGate(t *testing.T) {
	uc := newTestUseCase(nil, nil)
	start := uc.calendar.FormatDate(time.Now().AddDate(0, 0, -3))
	uc.setSnapshot([]model.Task{
		{ID: "1", Assignee: "Alice", StartDate: start},
		{ID: "2", Assignee: "Bob", StartDate: start},
	}, true, "")

	out, err := uc.DailyWorkload(context.Background(), dashboard.TasksInput{
		Filters: model.Filters{Assignees: []string{"Bob"}},
	}, dashboard.DimensionAssignee)
	if err != nil {
		t.Fatalf("DailyWorkload() error = %v", err)
	}
	if len(out.ActiveKeys) != 1 || out.ActiveKeys[0] != "Bob" {
		t.Errorf("ActiveKeys = %v, want [Bob]", out.ActiveKeys)
	}
}

func TestDailyWorkload_StatusDimensionRejected(t *testing.T) {
	uc := newTestUseCase(nil, nil)
	if _, err := uc.DailyWorkload(context.Background(), dashboard.TasksInput{}, dashboard.DimensionStatus); err != dashboard.ErrUnknownDimension {
		t.Errorf("error = %v, want ErrUnknownDimension", err)
	}
}
