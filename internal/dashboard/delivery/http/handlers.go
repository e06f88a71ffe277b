package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"teamboard/internal/dashboard"
	"teamboard/internal/dashboard/repository"
	"teamboard/internal/settings"
	"teamboard/pkg/response"
)

// GetTasks godoc
// @Summary List tasks
// @Description Returns the filtered, sorted task list from the current snapshot
// @Tags dashboard
// @Produce json
// @Param task_name query string false "Substring match on title or id"
// @Param assignee query []string false "Assignee filter" collectionFormat(multi)
// @Param status query []string false "Status filter" collectionFormat(multi)
// @Param department query []string false "Department filter" collectionFormat(multi)
// @Param label query []string false "Label filter (conjunction)" collectionFormat(multi)
// @Param bi_category query []string false "Category filter" collectionFormat(multi)
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.Resp
// @Router /api/v1/dashboard/tasks [get]
func (h *Handler) GetTasks(c *gin.Context) {
	tasks, err := h.uc.Tasks(c.Request.Context(), h.parseTasksInput(c))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.OK(c, tasks)
}

// GetView godoc
// @Summary Grouped view
// @Description Returns tasks grouped by a dimension, or a hierarchical rollup
// @Tags dashboard
// @Produce json
// @Param dimension path string true "assignee | department | category | status | sources | assignee-sources"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /api/v1/dashboard/views/{dimension} [get]
func (h *Handler) GetView(c *gin.Context) {
	ctx := c.Request.Context()
	input := h.parseTasksInput(c)

	var (
		data any
		err  error
	)
	switch dim := c.Param("dimension"); dim {
	case "sources":
		data, err = h.uc.SourceRollup(ctx, input)
	case "assignee-sources":
		data, err = h.uc.AssigneeSourceRollup(ctx, input)
	default:
		data, err = h.uc.Grouped(ctx, input, dashboard.Dimension(dim))
	}
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.OK(c, data)
}

// GetDailyWorkload godoc
// @Summary Daily workload time series
// @Description Per-day task counts over the trailing three months, grouped by the view dimension
// @Tags dashboard
// @Produce json
// @Param view query string false "assignee | department | category" default(assignee)
// @Param assignee query []string false "Assignee gate" collectionFormat(multi)
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /api/v1/dashboard/workload/daily [get]
func (h *Handler) GetDailyWorkload(c *gin.Context) {
	dim := dashboard.Dimension(c.DefaultQuery("view", string(dashboard.DimensionAssignee)))
	out, err := h.uc.DailyWorkload(c.Request.Context(), h.parseTasksInput(c), dim)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.OK(c, out)
}

// GetPeopleWorkload godoc
// @Summary Per-person workload summary
// @Tags dashboard
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/dashboard/workload/people [get]
func (h *Handler) GetPeopleWorkload(c *gin.Context) {
	response.OK(c, h.uc.WorkloadByPerson(c.Request.Context()))
}

// GetLeaderboard godoc
// @Summary Label leaderboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/dashboard/leaderboard [get]
func (h *Handler) GetLeaderboard(c *gin.Context) {
	entries, err := h.uc.LabelLeaderboard(c.Request.Context(), h.parseTasksInput(c))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.OK(c, entries)
}

// GetGantt godoc
// @Summary Gantt chart date bounds
// @Tags dashboard
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/dashboard/gantt [get]
func (h *Handler) GetGantt(c *gin.Context) {
	bounds, err := h.uc.GanttBounds(c.Request.Context(), h.parseTasksInput(c))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.OK(c, bounds)
}

// GetColors godoc
// @Summary Color assignment for a dimension
// @Tags dashboard
// @Produce json
// @Param dimension path string true "assignee | department | category | status"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /api/v1/dashboard/colors/{dimension} [get]
func (h *Handler) GetColors(c *gin.Context) {
	colors, err := h.uc.Colors(c.Request.Context(), dashboard.Dimension(c.Param("dimension")))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.OK(c, colors)
}

// GetStatus godoc
// @Summary Connection status
// @Tags dashboard
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/dashboard/status [get]
func (h *Handler) GetStatus(c *gin.Context) {
	response.OK(c, h.uc.Status(c.Request.Context()))
}

// Refresh godoc
// @Summary Reload the snapshot from the tracker
// @Tags dashboard
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/dashboard/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	response.OK(c, h.uc.Refresh(c.Request.Context()))
}

// UpdateTask godoc
// @Summary Edit a task
// @Description Applies priority/category/comment edits and an optional status transition
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path string true "Task id"
// @Param body body updateTaskReq true "Edits"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/dashboard/tasks/{id} [put]
func (h *Handler) UpdateTask(c *gin.Context) {
	var req updateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	err := h.uc.UpdateTask(c.Request.Context(), c.Param("id"), dashboard.UpdateInput{
		Priority:   req.Priority,
		BICategory: req.BICategory,
		Comment:    req.Comment,
		StatusID:   req.StatusID,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.OK(c, nil)
}

// GetTransitions godoc
// @Summary List available status transitions
// @Tags dashboard
// @Produce json
// @Param id path string true "Task id"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/dashboard/tasks/{id}/transitions [get]
func (h *Handler) GetTransitions(c *gin.Context) {
	transitions, err := h.uc.Transitions(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.OK(c, transitions)
}

// PostTransition godoc
// @Summary Apply a status transition
// @Tags dashboard
// @Accept json
// @Produce json
// @Param id path string true "Task id"
// @Param body body postTransitionReq true "Transition"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /api/v1/dashboard/tasks/{id}/transitions [post]
func (h *Handler) PostTransition(c *gin.Context) {
	var req postTransitionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	err := h.uc.UpdateTask(c.Request.Context(), c.Param("id"), dashboard.UpdateInput{
		StatusID: req.TransitionID,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.OK(c, nil)
}

// GetSettings godoc
// @Summary Read dashboard settings
// @Tags settings
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
	s, err := h.store.Get(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.OK(c, s)
}

// PutSettings godoc
// @Summary Replace dashboard settings
// @Description Saves the project key and assignee filter, then reloads the snapshot
// @Tags settings
// @Accept json
// @Produce json
// @Param body body settingsReq true "Settings"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Router /api/v1/settings [put]
func (h *Handler) PutSettings(c *gin.Context) {
	var req settingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	ctx := c.Request.Context()
	err := h.store.Put(ctx, settings.Settings{
		ProjectKey:     req.ProjectKey,
		AssigneeEmails: req.AssigneeEmails,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.OK(c, h.uc.Refresh(ctx))
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, dashboard.ErrTaskNotFound), errors.Is(err, repository.ErrIssueNotFound):
		response.NotFound(c, err)
	case errors.Is(err, dashboard.ErrUnknownDimension), errors.Is(err, dashboard.ErrEmptyUpdate):
		response.Error(c, err, nil)
	case errors.Is(err, repository.ErrUpstream):
		response.BadGateway(c, err)
	default:
		h.l.Errorf(c.Request.Context(), "dashboard handler: %v", err)
		response.InternalError(c, err)
	}
}
