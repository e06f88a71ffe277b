package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/time/rate"

	"teamboard/config"
	dashboardHTTP "teamboard/internal/dashboard/delivery/http"
	"teamboard/internal/dashboard/repository"
	jiraRepo "teamboard/internal/dashboard/repository/jira"
	"teamboard/internal/dashboard/usecase"
	"teamboard/internal/httpserver"
	"teamboard/internal/middleware"
	"teamboard/internal/proxy"
	"teamboard/internal/settings"
	"teamboard/pkg/adf"
	"teamboard/pkg/dateutil"
	"teamboard/pkg/log"

	_ "teamboard/docs" // Swagger docs
)

// @title       Teamboard API
// @description Team dashboard over an external issue tracker: normalized tasks, derived views, and a same-origin tracker proxy.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Teamboard...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Calendar
	calendar, err := dateutil.NewCalendar(cfg.Refresh.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Refresh.Timezone, err)
		calendar, _ = dateutil.NewCalendar("UTC")
	}

	// 4. Tracker repository (optional: without credentials the dashboard
	// serves demo data)
	var repo repository.IssueRepository
	if cfg.Tracker.BaseURL != "" {
		repo, err = jiraRepo.New(logger, jiraRepo.Config{
			BaseURL:     cfg.Tracker.BaseURL,
			Email:       cfg.Tracker.Email,
			APIToken:    cfg.Tracker.APIToken,
			BearerToken: cfg.Tracker.BearerToken,
			Timeout:     cfg.Tracker.Timeout,
		})
		if err != nil {
			logger.Warnf(ctx, "Tracker not available, running in demo mode: %v", err)
			repo = nil
		} else {
			logger.Infof(ctx, "Tracker client initialized for %s", cfg.Tracker.BaseURL)
		}
	} else {
		logger.Warn(ctx, "tracker.base_url not set, running in demo mode")
	}

	// 5. Settings store
	store := settings.NewFileStore(logger, cfg.Settings.FilePath)

	// 6. Dashboard use case
	renderer := adf.NewRenderer(adf.Options{
		ChatHost:   cfg.Tracker.ChatHost,
		DesignHost: cfg.Tracker.DesignHost,
		QueryHost:  cfg.Tracker.QueryHost,
	})
	dashboardUC := usecase.New(logger, repo, store, renderer, calendar, usecase.Config{
		ActivityWindow: cfg.Tracker.ActivityWindow,
		LabelSuffix:    cfg.Tracker.LabelSuffix,
		CreatedSince:   cfg.Tracker.CreatedSince,
		AutomationName: cfg.Tracker.AutomationName,
	})

	// Initial load plus the background refresher.
	dashboardUC.Refresh(ctx)
	refresher := usecase.NewRefresher(logger, dashboardUC, calendar, usecase.RefresherConfig{
		Interval:    cfg.Refresh.Interval,
		WindowStart: cfg.Refresh.WindowStart,
		WindowEnd:   cfg.Refresh.WindowEnd,
	})
	go refresher.Run(ctx)

	// 7. Tracker proxy (optional)
	var trackerProxy *proxy.Proxy
	if cfg.Proxy.Enabled && cfg.Tracker.BaseURL != "" {
		trackerProxy = proxy.New(logger, proxy.Config{
			BaseURL:     cfg.Tracker.BaseURL,
			Email:       cfg.Tracker.Email,
			APIToken:    cfg.Tracker.APIToken,
			BearerToken: cfg.Tracker.BearerToken,
			Timeout:     cfg.Tracker.Timeout,
			RateLimit:   rate.Limit(cfg.Proxy.RatePerSecond),
			RateBurst:   cfg.Proxy.Burst,
			MaxClients:  cfg.Proxy.MaxClients,
			ClientTTL:   cfg.Proxy.ClientTTL,
		})
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       middleware.New(logger, cfg.HTTPServer.AllowedOrigins),
		DashboardHandler: dashboardHTTP.New(logger, dashboardUC, store, calendar),
		TrackerProxy:     trackerProxy,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
