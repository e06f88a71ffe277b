package usecase

import (
	"sync"
	"time"

	"teamboard/internal/dashboard"
	"teamboard/internal/dashboard/repository"
	"teamboard/internal/model"
	"teamboard/internal/settings"
	"teamboard/pkg/adf"
	"teamboard/pkg/dateutil"
	"teamboard/pkg/log"
)

// Config carries the tunables of the pipeline.
type Config struct {
	// ActivityWindow is the correlation tolerance between an issue's
	// last-updated timestamp and its latest comment or changelog entry.
	ActivityWindow time.Duration
	// LabelSuffix keeps only labels carrying this suffix, e.g. "@lmwn.com".
	LabelSuffix string
	// CreatedSince bounds the issue search, as a tracker-relative expression.
	CreatedSince string
	// AutomationName is the changelog author excluded from change history.
	AutomationName string
}

const (
	defaultActivityWindow = 5 * time.Second
	defaultLabelSuffix    = "@lmwn.com"
	defaultCreatedSince   = "-90d"
	defaultAutomation     = "Automation for Jira"
)

type implUseCase struct {
	l        log.Logger
	repo     repository.IssueRepository
	store    settings.Store
	renderer *adf.Renderer
	calendar *dateutil.Calendar
	cfg      Config

	// Snapshot state. Replaced wholesale on every refresh; concurrent
	// refreshes are last-write-wins.
	mu          sync.RWMutex
	tasks       []model.Task
	connected   bool
	lastRefresh time.Time
	message     string
}

// New creates the dashboard use case. A nil repo means the tracker is not
// configured and every load falls back to the demo dataset.
func New(l log.Logger, repo repository.IssueRepository, store settings.Store, renderer *adf.Renderer, calendar *dateutil.Calendar, cfg Config) dashboard.UseCase {
	if cfg.ActivityWindow <= 0 {
		cfg.ActivityWindow = defaultActivityWindow
	}
	if cfg.LabelSuffix == "" {
		cfg.LabelSuffix = defaultLabelSuffix
	}
	if cfg.CreatedSince == "" {
		cfg.CreatedSince = defaultCreatedSince
	}
	if cfg.AutomationName == "" {
		cfg.AutomationName = defaultAutomation
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		store:    store,
		renderer: renderer,
		calendar: calendar,
		cfg:      cfg,
	}
}

func (uc *implUseCase) snapshot() []model.Task {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.tasks
}

func (uc *implUseCase) setSnapshot(tasks []model.Task, connected bool, message string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.tasks = tasks
	uc.connected = connected
	uc.message = message
	uc.lastRefresh = time.Now()
}
