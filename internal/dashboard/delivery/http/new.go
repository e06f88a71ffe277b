package http

import (
	"github.com/gin-gonic/gin"

	"teamboard/internal/dashboard"
	"teamboard/internal/settings"
	"teamboard/pkg/dateutil"
	"teamboard/pkg/log"
)

// Handler serves the dashboard and settings API.
type Handler struct {
	l        log.Logger
	uc       dashboard.UseCase
	store    settings.Store
	calendar *dateutil.Calendar
}

// New creates the dashboard HTTP handler.
func New(l log.Logger, uc dashboard.UseCase, store settings.Store, calendar *dateutil.Calendar) *Handler {
	return &Handler{l: l, uc: uc, store: store, calendar: calendar}
}

// MapRoutes registers the dashboard and settings routes on the given group.
func (h *Handler) MapRoutes(r *gin.RouterGroup) {
	d := r.Group("/dashboard")
	d.GET("/tasks", h.GetTasks)
	d.PUT("/tasks/:id", h.UpdateTask)
	d.GET("/tasks/:id/transitions", h.GetTransitions)
	d.POST("/tasks/:id/transitions", h.PostTransition)
	d.GET("/views/:dimension", h.GetView)
	d.GET("/workload/daily", h.GetDailyWorkload)
	d.GET("/workload/people", h.GetPeopleWorkload)
	d.GET("/leaderboard", h.GetLeaderboard)
	d.GET("/gantt", h.GetGantt)
	d.GET("/colors/:dimension", h.GetColors)
	d.GET("/status", h.GetStatus)
	d.POST("/refresh", h.Refresh)

	s := r.Group("/settings")
	s.GET("", h.GetSettings)
	s.PUT("", h.PutSettings)
}
