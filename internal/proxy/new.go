package proxy

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"teamboard/pkg/log"
)

// Config carries the forwarder settings. Exactly one of Email+APIToken or
// BearerToken authenticates upstream requests.
type Config struct {
	BaseURL     string
	Email       string
	APIToken    string
	BearerToken string
	Timeout     time.Duration

	// Per-client-IP rate limiting.
	RateLimit  rate.Limit
	RateBurst  int
	MaxClients int
	ClientTTL  time.Duration
}

// Proxy forwards dashboard-originated requests to the tracker REST API,
// attaching server-side credentials so they never reach the browser.
type Proxy struct {
	l          log.Logger
	cfg        Config
	httpClient *http.Client
	limiter    *clientLimiter
}

// New creates the tracker proxy.
func New(l log.Logger, cfg Config) *Proxy {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 10
	}
	if cfg.RateBurst <= 0 {
		cfg.RateBurst = 20
	}
	if cfg.MaxClients <= 0 {
		cfg.MaxClients = 1000
	}
	if cfg.ClientTTL <= 0 {
		cfg.ClientTTL = 10 * time.Minute
	}
	return &Proxy{
		l:          l,
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    newClientLimiter(cfg.RateLimit, cfg.RateBurst, cfg.MaxClients, cfg.ClientTTL),
	}
}

// MapRoutes registers the catch-all forwarding route.
func (p *Proxy) MapRoutes(r *gin.RouterGroup) {
	r.Any("/tracker/*path", p.RateLimit(), p.Forward)
}

func (p *Proxy) configured() bool {
	if p.cfg.BaseURL == "" {
		return false
	}
	if p.cfg.BearerToken != "" {
		return true
	}
	return p.cfg.Email != "" && p.cfg.APIToken != ""
}

func (p *Proxy) baseURL() string {
	return strings.TrimRight(p.cfg.BaseURL, "/")
}
