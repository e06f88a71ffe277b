package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	dashboardHTTP "teamboard/internal/dashboard/delivery/http"
	"teamboard/internal/middleware"
	"teamboard/internal/proxy"
	"teamboard/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	middleware       middleware.Middleware
	dashboardHandler *dashboardHTTP.Handler
	trackerProxy     *proxy.Proxy
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware       middleware.Middleware
	DashboardHandler *dashboardHTTP.Handler
	TrackerProxy     *proxy.Proxy
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		middleware:       cfg.Middleware,
		dashboardHandler: cfg.DashboardHandler,
		trackerProxy:     cfg.TrackerProxy,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.dashboardHandler == nil {
		return errors.New("dashboard handler is required")
	}
	return nil
}
