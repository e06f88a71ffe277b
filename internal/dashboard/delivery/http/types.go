package http

import (
	"github.com/gin-gonic/gin"

	"teamboard/internal/dashboard"
	"teamboard/internal/model"
)

// updateTaskReq is the PUT /tasks/:id body. All fields are optional;
// at least one must be set.
type updateTaskReq struct {
	Priority   string `json:"priority"`
	BICategory string `json:"bi_category"`
	Comment    string `json:"comment"`
	StatusID   string `json:"status_id"`
}

// postTransitionReq is the POST /tasks/:id/transitions body.
type postTransitionReq struct {
	TransitionID string `json:"transition_id" binding:"required"`
}

// settingsReq is the PUT /settings body.
type settingsReq struct {
	ProjectKey     string   `json:"project_key"`
	AssigneeEmails []string `json:"assignee_emails"`
}

// parseTasksInput reads the shared filter query parameters. Multi-value
// filters accept repeated parameters; dates are YYYY-MM-DD.
func (h *Handler) parseTasksInput(c *gin.Context) dashboard.TasksInput {
	input := dashboard.TasksInput{
		Filters: model.Filters{
			TaskName:     c.Query("task_name"),
			Assignees:    c.QueryArray("assignee"),
			Statuses:     c.QueryArray("status"),
			Departments:  c.QueryArray("department"),
			Labels:       c.QueryArray("label"),
			BICategories: c.QueryArray("bi_category"),
		},
	}
	if start, err := h.calendar.ParseDate(c.Query("start")); err == nil {
		if end, err := h.calendar.ParseDate(c.Query("end")); err == nil {
			input.Range = model.DateRange{Start: start, End: end}
		}
	}
	return input
}
