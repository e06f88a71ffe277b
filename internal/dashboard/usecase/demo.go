package usecase

import (
	"context"
	"time"

	"teamboard/internal/dashboard"
	"teamboard/internal/model"
)

// Demo mode. Everything in this file backs the disconnected fallback: a
// fabricated dataset plus a simplified, local-only status cycle. None of it
// touches the tracker and none of its shortcuts apply to the real update
// path in update.go.

var demoStatusCycle = []string{"[BI] To Do", "[BI] In Progress", "[BI] Done"}

func (uc *implUseCase) demoTasks() []model.Task {
	now := time.Now()
	day := func(offset int) string {
		return uc.calendar.FormatDate(now.AddDate(0, 0, offset))
	}
	label := func(user string) string {
		return user + uc.cfg.LabelSuffix
	}

	return []model.Task{
		{
			ID: "DEMO-1", Title: "Monthly revenue report", Assignee: "Alice Chan",
			AssigneeEmail: "alice@example.com", Status: "[BI] In Progress",
			StartDate: day(-10), DueDate: day(2), StartTimestamp: now.AddDate(0, 0, -10),
			LastUpdated: now.Add(-2 * time.Hour), Priority: model.PriorityHigh,
			Description: "<p>Compile the monthly revenue figures.</p>",
			StoryPoints: 5, Department: "Finance", BICategory: "Report",
			Labels: []string{label("alice")}, FigmaLinks: []model.TaskLink{},
		},
		{
			ID: "DEMO-2", Title: "Campaign dashboard refresh", Assignee: "Bob Lee",
			AssigneeEmail: "bob@example.com", Status: "[BI] To Do",
			StartDate: day(-5), DueDate: day(-1), StartTimestamp: now.AddDate(0, 0, -5),
			LastUpdated: now.Add(-26 * time.Hour), Priority: model.PriorityHighest,
			Description: "<p>Refresh the ad campaign dashboard.</p>",
			StoryPoints: 3, Department: "Marketing", BICategory: "Dashboard",
			Labels: []string{label("bob")}, FigmaLinks: []model.TaskLink{},
		},
		{
			ID: "DEMO-3", Title: "Churn analysis deep dive", Assignee: "Alice Chan",
			AssigneeEmail: "alice@example.com", Status: "[BI] On Hold",
			StartDate: day(-20), StartTimestamp: now.AddDate(0, 0, -20),
			LastUpdated: now.AddDate(0, 0, -3), Priority: model.PriorityMedium,
			Description: "<p>Dig into last quarter's churn numbers.</p>",
			StoryPoints: 8, Department: "Operations", BICategory: "Ad-hoc",
			Labels: []string{label("alice")}, FigmaLinks: []model.TaskLink{},
		},
		{
			ID: "DEMO-4", Title: "Data source migration", Assignee: model.UnassignedName,
			Status: "[BI] To Do", StartDate: day(-2), DueDate: day(7),
			StartTimestamp: now.AddDate(0, 0, -2), LastUpdated: now.Add(-30 * time.Minute),
			Priority: model.PriorityLow, Description: "<p>Move the feeds to the new warehouse.</p>",
			Department: model.NoValue, BICategory: model.NoValue,
			Labels: []string{}, FigmaLinks: []model.TaskLink{},
		},
		{
			ID: "DEMO-5", Title: "Quarterly OKR review deck", Assignee: "Bob Lee",
			AssigneeEmail: "bob@example.com", Status: "[BI] Done",
			StartDate: day(-30), DueDate: day(-7), EndDate: day(-6), ResolutionDate: day(-6),
			StartTimestamp: now.AddDate(0, 0, -30), LastUpdated: now.AddDate(0, 0, -6),
			Priority: model.PriorityMedium, Description: "<p>Prepare the OKR review slides.</p>",
			StoryPoints: 2, Department: "Marketing", BICategory: "Report",
			Labels: []string{label("bob")}, FigmaLinks: []model.TaskLink{},
		},
	}
}

// applyDemoUpdate mutates one demo task in place, cycling its status
// locally instead of calling the tracker.
func (uc *implUseCase) applyDemoUpdate(ctx context.Context, taskID string, input dashboard.UpdateInput) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	idx := -1
	for i := range uc.tasks {
		if uc.tasks[i].ID == taskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return dashboard.ErrTaskNotFound
	}

	tasks := make([]model.Task, len(uc.tasks))
	copy(tasks, uc.tasks)
	task := &tasks[idx]

	if input.Priority != "" {
		task.Priority = input.Priority
	}
	if input.BICategory != "" {
		task.BICategory = input.BICategory
	}
	if input.Comment != "" {
		now := time.Now()
		task.Comments = append(task.Comments, model.Comment{
			Author:           "You",
			CreatedDisplay:   now.In(uc.calendar.Location()).Format(commentDisplayLayout),
			CreatedTimestamp: now,
			BodyHTML:         "<p>" + input.Comment + "</p>",
		})
		task.LastUpdateDetail = &model.UpdateDetail{
			Type: model.UpdateDetailTwoLine, Line1: "add", Line2: "Comment",
		}
	}
	if input.StatusID != "" {
		next := demoNextStatus(task.Status)
		if isClosingStatus(next) {
			task.LastUpdateDetail = &model.UpdateDetail{Type: model.UpdateDetailSimple, Text: "Close Task"}
		} else {
			task.LastUpdateDetail = &model.UpdateDetail{
				Type: model.UpdateDetailFromTo, From: task.Status, To: next,
			}
		}
		task.Status = next
	}
	task.LastUpdated = time.Now()

	uc.tasks = tasks
	uc.lastRefresh = time.Now()
	uc.l.Debugf(ctx, "demo update applied to %s", taskID)
	return nil
}

func (uc *implUseCase) demoTransitions(taskID string) ([]dashboard.Transition, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	for _, task := range uc.tasks {
		if task.ID == taskID {
			next := demoNextStatus(task.Status)
			return []dashboard.Transition{
				{ID: "demo-next", Name: "Move to " + next, ToStatus: next},
			}, nil
		}
	}
	return nil, dashboard.ErrTaskNotFound
}

func demoNextStatus(current string) string {
	for i, status := range demoStatusCycle {
		if status == current {
			return demoStatusCycle[(i+1)%len(demoStatusCycle)]
		}
	}
	return demoStatusCycle[0]
}
