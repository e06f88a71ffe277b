package usecase

import (
	"context"
	"testing"
	"time"

	"teamboard/internal/dashboard"
	"teamboard/internal/model"
)

func TestStatusBucket(t *testing.T) {
	cases := map[string]int{
		"[BI] TO DO":        1,
		"[BI] In Progress":  1,
		"Open":              1,
		"Reopened":          1,
		"[BI] ON HOLD":      2,
		"Pending Review":    2,
		"[BI] DONE":         3,
		"Cancelled":         3,
		"[BI] WEIRD STATUS": 4,
		"":                  4,
	}
	for status, want := range cases {
		if got := statusBucket(status); got != want {
			t.Errorf("statusBucket(%q) = %d, want %d", status, got, want)
		}
	}
}

func TestPriorityRank(t *testing.T) {
	order := []string{model.PriorityHighest, model.PriorityHigh, model.PriorityMedium, model.PriorityLow, "Whatever"}
	for i := 1; i < len(order); i++ {
		if priorityRank(order[i-1]) >= priorityRank(order[i]) {
			t.Errorf("priorityRank(%q) should be less than priorityRank(%q)", order[i-1], order[i])
		}
	}
}

func TestSortTasks_BucketsBeforeEverything(t *testing.T) {
	uc := newTestUseCase(nil, nil)
	tasks := []model.Task{
		{ID: "A", Status: "[BI] WEIRD STATUS"},
		{ID: "B", Status: "[BI] DONE"},
		{ID: "C", Status: "[BI] ON HOLD"},
		{ID: "D", Status: "[BI] TO DO"},
	}
	uc.sortTasks(tasks)

	want := []string{"D", "C", "B", "A"}
	for i, id := range want {
		if tasks[i].ID != id {
			t.Fatalf("position %d = %s, want %s (full order %v)", i, tasks[i].ID, id, taskIDs(tasks))
		}
	}
}

func TestSortTasks_DoneOrdersByRecency(t *testing.T) {
	uc := newTestUseCase(nil, nil)
	older := model.Task{ID: "older", Status: "[BI] DONE", LastUpdated: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)}
	newer := model.Task{ID: "newer", Status: "[BI] DONE", LastUpdated: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)}

	tasks := []model.Task{older, newer}
	uc.sortTasks(tasks)
	if tasks[0].ID != "newer" {
		t.Errorf("most recently updated done task should sort first, got %v", taskIDs(tasks))
	}
}

func TestSortTasks_DueDatePresenceWins(t *testing.T) {
	uc := newTestUseCase(nil, nil)
	noDue := model.Task{ID: "A", Status: "To Do", Priority: model.PriorityMedium}
	withDue := model.Task{ID: "B", Status: "To Do", Priority: model.PriorityMedium, DueDate: "2024-05-01"}

	tasks := []model.Task{noDue, withDue}
	uc.sortTasks(tasks)
	if tasks[0].ID != "B" {
		t.Errorf("task with due date should sort before one without, got %v", taskIDs(tasks))
	}
}

func TestSortTasks_OverdueFirstThenAscending(t *testing.T) {
	uc := newTestUseCase(nil, nil)
	future := uc.calendar.FormatDate(time.Now().AddDate(0, 0, 5))
	nearer := uc.calendar.FormatDate(time.Now().AddDate(0, 0, 2))
	overdue := uc.calendar.FormatDate(time.Now().AddDate(0, 0, -2))

	tasks := []model.Task{
		{ID: "future", Status: "To Do", Priority: model.PriorityMedium, DueDate: future},
		{ID: "nearer", Status: "To Do", Priority: model.PriorityMedium, DueDate: nearer},
		{ID: "overdue", Status: "To Do", Priority: model.PriorityMedium, DueDate: overdue},
	}
	uc.sortTasks(tasks)

	want := []string{"overdue", "nearer", "future"}
	for i, id := range want {
		if tasks[i].ID != id {
			t.Fatalf("order = %v, want %v", taskIDs(tasks), want)
		}
	}
}

func TestSortTasks_Stability(t *testing.T) {
	uc := newTestUseCase(nil, nil)
	tasks := []model.Task{
		{ID: "first", Status: "To Do", Priority: model.PriorityHigh},
		{ID: "second", Status: "To Do", Priority: model.PriorityHigh},
	}
	uc.sortTasks(tasks)
	if tasks[0].ID != "first" || tasks[1].ID != "second" {
		t.Errorf("equal-key tasks must keep input order, got %v", taskIDs(tasks))
	}
}

func TestFilter_TextMatchesTitleOrID(t *testing.T) {
	uc := newTestUseCase(nil, nil)
	uc.setSnapshot([]model.Task{
		{ID: "TB-1", Title: "Revenue report"},
		{ID: "TB-2", Title: "Dashboard refresh"},
	}, true, "")

	got, err := uc.Tasks(context.Background(), dashboard.TasksInput{
		Filters: model.Filters{TaskName: "revenue"},
	})
	if err != nil {
		t.Fatalf("Tasks() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "TB-1" {
		t.Errorf("title match failed: %v", taskIDs(got))
	}

	got, _ = uc.Tasks(context.Background(), dashboard.TasksInput{
		Filters: model.Filters{TaskName: "tb-2"},
	})
	if len(got) != 1 || got[0].ID != "TB-2" {
		t.Errorf("id match failed: %v", taskIDs(got))
	}
}

func TestFilter_LabelConjunction(t *testing.T) {
	uc := newTestUseCase(nil, nil)
	uc.setSnapshot([]model.Task{
		{ID: "both", Labels: []string{"a@lmwn.com", "b@lmwn.com"}},
		{ID: "one", Labels: []string{"a@lmwn.com"}},
	}, true, "")

	got, err := uc.Tasks(context.Background(), dashboard.TasksInput{
		Filters: model.Filters{Labels: []string{"a@lmwn.com", "b@lmwn.com"}},
	})
	if err != nil {
		t.Fatalf("Tasks() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "both" {
		t.Errorf("label conjunction failed: %v", taskIDs(got))
	}
}

func TestFilter_DateRangeExcludesUnparsableStart(t *testing.T) {
	uc := newTestUseCase(nil, nil)
	uc.setSnapshot([]model.Task{
		{ID: "dated", StartDate: "2024-03-10"},
		{ID: "undated"},
	}, true, "")

	got, err := uc.Tasks(context.Background(), dashboard.TasksInput{
		Range: model.DateRange{
			Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		},
	})
	if err != nil {
		t.Fatalf("Tasks() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "dated" {
		t.Errorf("date range filter failed: %v", taskIDs(got))
	}
}

func TestFilter_RangeIsInclusiveAtDayGranularity(t *testing.T) {
	uc := newTestUseCase(nil, nil)
	uc.setSnapshot([]model.Task{
		{ID: "onStart", StartDate: "2024-03-01"},
		{ID: "onEnd", StartDate: "2024-03-31"},
		{ID: "before", StartDate: "2024-02-29"},
	}, true, "")

	got, _ := uc.Tasks(context.Background(), dashboard.TasksInput{
		Range: model.DateRange{
			Start: time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC),
			End:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		},
	})
	if len(got) != 2 {
		t.Errorf("inclusive bounds failed: %v", taskIDs(got))
	}
}

func TestFilter_CategoricalEmptyMeansAll(t *testing.T) {
	uc := newTestUseCase(nil, nil)
	uc.setSnapshot([]model.Task{
		{ID: "a", Assignee: "Alice", Status: "To Do"},
		{ID: "b", Assignee: "Bob", Status: "Done"},
	}, true, "")

	got, _ := uc.Tasks(context.Background(), dashboard.TasksInput{})
	if len(got) != 2 {
		t.Fatalf("empty filters must match all, got %v", taskIDs(got))
	}

	got, _ = uc.Tasks(context.Background(), dashboard.TasksInput{
		Filters: model.Filters{Assignees: []string{"Alice"}},
	})
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("assignee filter failed: %v", taskIDs(got))
	}
}

func taskIDs(tasks []model.Task) []string {
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids
}
