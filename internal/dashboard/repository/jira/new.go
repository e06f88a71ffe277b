package jira

import (
	"context"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"teamboard/internal/dashboard/repository"
	"teamboard/pkg/log"
)

// Config carries the tracker connection settings. Exactly one of
// Email+APIToken (basic auth) or BearerToken must be set.
type Config struct {
	BaseURL     string
	Email       string
	APIToken    string
	BearerToken string
	Timeout     time.Duration
}

type implRepository struct {
	l          log.Logger
	baseURL    string
	email      string
	apiToken   string
	httpClient *http.Client
}

// New creates a tracker-backed issue repository.
func New(l log.Logger, cfg Config) (repository.IssueRepository, error) {
	if cfg.BaseURL == "" {
		return nil, repository.ErrNotConfigured
	}
	if cfg.BearerToken == "" && (cfg.Email == "" || cfg.APIToken == "") {
		return nil, repository.ErrNotConfigured
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := &http.Client{Timeout: timeout}
	if cfg.BearerToken != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.BearerToken})
		client = oauth2.NewClient(context.Background(), src)
		client.Timeout = timeout
	}

	return &implRepository{
		l:          l,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		email:      cfg.Email,
		apiToken:   cfg.APIToken,
		httpClient: client,
	}, nil
}
