package usecase

import (
	"strings"

	"teamboard/internal/dashboard/repository"
	"teamboard/internal/model"
)

const commentDisplayLayout = "Jan 2, 2006 15:04"

// normalizeIssue flattens one raw tracker record into a Task. It never
// fails: absent optional fields resolve to their documented defaults.
func (uc *implUseCase) normalizeIssue(issue repository.Issue) model.Task {
	f := issue.Fields

	task := model.Task{
		ID:          issue.Key,
		Title:       f.Summary,
		Assignee:    model.UnassignedName,
		Status:      f.Status.Name,
		DueDate:     f.DueDate,
		Priority:    model.PriorityMedium,
		StoryPoints: f.StoryPoints,
		Department:  model.NoValue,
		BICategory:  model.NoValue,
		Labels:      uc.filterLabels(f.Labels),
		FigmaLinks:  []model.TaskLink{},
	}

	if f.Assignee != nil && f.Assignee.DisplayName != "" {
		task.Assignee = f.Assignee.DisplayName
		task.AssigneeEmail = f.Assignee.EmailAddress
	}
	if task.Status == "" {
		task.Status = model.NoValue
	}
	if f.Priority != nil && f.Priority.Name != "" {
		task.Priority = f.Priority.Name
	}
	if f.Department.Value != "" {
		task.Department = f.Department.Value
	}
	if f.BICategory.Value != "" {
		task.BICategory = f.BICategory.Value
	}

	if ts, err := uc.calendar.ParseTimestamp(f.Created); err == nil {
		task.StartTimestamp = ts
		task.StartDate = uc.calendar.FormatDate(ts)
	}
	if ts, err := uc.calendar.ParseTimestamp(f.Updated); err == nil {
		task.LastUpdated = ts
	}
	if ts, err := uc.calendar.ParseTimestamp(f.ResolutionDate); err == nil {
		task.ResolutionDate = uc.calendar.FormatDate(ts)
	}
	// Unresolved tasks borrow their due date as the end date so a planned
	// bar still has a right edge.
	task.EndDate = task.ResolutionDate
	if task.EndDate == "" {
		task.EndDate = task.DueDate
	}

	rendered := uc.renderer.Render(f.Description)
	task.Description = rendered.HTML
	task.SlackLink = rendered.ChatLink
	for _, link := range rendered.DesignLinks {
		task.FigmaLinks = append(task.FigmaLinks, model.TaskLink{Href: link.Href, Label: link.Label})
	}

	task.Comments = uc.normalizeComments(f.Comment)
	task.LastUpdateDetail, task.FullChangeHistory = uc.summarizeActivity(issue, task.LastUpdated)
	return task
}

// filterLabels keeps only labels matching the domain-email suffix rule.
func (uc *implUseCase) filterLabels(labels []string) []string {
	kept := []string{}
	for _, label := range labels {
		if strings.HasSuffix(label, uc.cfg.LabelSuffix) {
			kept = append(kept, label)
		}
	}
	return kept
}

func (uc *implUseCase) normalizeComments(page *repository.CommentPage) []model.Comment {
	if page == nil {
		return []model.Comment{}
	}
	comments := make([]model.Comment, 0, len(page.Comments))
	for _, raw := range page.Comments {
		c := model.Comment{Author: model.UnassignedName}
		if raw.Author != nil && raw.Author.DisplayName != "" {
			c.Author = raw.Author.DisplayName
		}
		if ts, err := uc.calendar.ParseTimestamp(raw.Created); err == nil {
			c.CreatedTimestamp = ts
			c.CreatedDisplay = ts.In(uc.calendar.Location()).Format(commentDisplayLayout)
		}
		c.BodyHTML = uc.renderer.Render(raw.Body).HTML
		comments = append(comments, c)
	}
	return comments
}
