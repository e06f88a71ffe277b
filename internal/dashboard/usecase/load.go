package usecase

import (
	"context"

	"teamboard/internal/dashboard"
	"teamboard/internal/dashboard/repository"
	"teamboard/internal/model"
)

func (uc *implUseCase) Refresh(ctx context.Context) dashboard.RefreshOutput {
	uc.reload(ctx)
	return dashboard.RefreshOutput(uc.Status(ctx))
}

func (uc *implUseCase) Status(ctx context.Context) dashboard.StatusOutput {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return dashboard.StatusOutput{
		Connected:   uc.connected,
		TaskCount:   len(uc.tasks),
		LastRefresh: uc.lastRefresh,
		Message:     uc.message,
	}
}

// reload fetches the issue list and replaces the snapshot wholesale.
// Configuration and upstream errors degrade to the demo dataset instead of
// failing; overlapping reloads are last-write-wins.
func (uc *implUseCase) reload(ctx context.Context) {
	if uc.repo == nil {
		uc.fallback(ctx, "tracker credentials are not configured")
		return
	}

	st, err := uc.store.Get(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "read settings: %v", err)
		uc.fallback(ctx, "settings could not be read: "+err.Error())
		return
	}
	if st.ProjectKey == "" {
		uc.fallback(ctx, "project key is not configured")
		return
	}

	issues, err := uc.repo.SearchIssues(ctx, repository.SearchIssuesOptions{
		ProjectKey:     st.ProjectKey,
		CreatedSince:   uc.cfg.CreatedSince,
		AssigneeEmails: st.AssigneeEmails,
	})
	if err != nil {
		uc.l.Errorf(ctx, "fetch issues: %v", err)
		uc.fallback(ctx, "could not reach the tracker: "+err.Error())
		return
	}

	tasks := uc.buildTasks(issues)
	uc.setSnapshot(tasks, true, "")
	uc.l.Infof(ctx, "snapshot refreshed with %d tasks", len(tasks))
}

func (uc *implUseCase) buildTasks(issues []repository.Issue) []model.Task {
	tasks := make([]model.Task, 0, len(issues))
	for _, issue := range issues {
		tasks = append(tasks, uc.normalizeIssue(issue))
	}
	return tasks
}

// fallback swaps in the demo dataset so the dashboard stays usable.
func (uc *implUseCase) fallback(ctx context.Context, message string) {
	uc.l.Warnf(ctx, "falling back to demo data: %s", message)
	uc.setSnapshot(uc.demoTasks(), false, message)
}
