package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Team dashboard specifics
	Tracker  TrackerConfig
	Refresh  RefreshConfig
	Settings SettingsConfig
	Proxy    ProxyConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port           int
	Mode           string
	AllowedOrigins []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// TrackerConfig configures the issue-tracker connection and the
// normalization tunables.
type TrackerConfig struct {
	BaseURL     string
	Email       string
	APIToken    string
	BearerToken string
	Timeout     time.Duration

	LabelSuffix    string
	CreatedSince   string
	ActivityWindow time.Duration
	AutomationName string

	ChatHost   string
	DesignHost string
	QueryHost  string
}

// RefreshConfig controls background polling.
type RefreshConfig struct {
	Interval    time.Duration
	WindowStart int
	WindowEnd   int
	Timezone    string
}

type SettingsConfig struct {
	FilePath string
}

type ProxyConfig struct {
	Enabled       bool
	RatePerSecond float64
	Burst         int
	MaxClients    int
	ClientTTL     time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Split allowed origins since viper might not parse an array from env.
	var origins []string
	if rawOrigins := viper.GetString("http_server.allowed_origins"); rawOrigins != "" {
		for _, o := range strings.Split(rawOrigins, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				origins = append(origins, o)
			}
		}
	}
	cfg.HTTPServer.AllowedOrigins = origins

	// Tracker connection
	cfg.Tracker.BaseURL = viper.GetString("tracker.base_url")
	cfg.Tracker.Email = viper.GetString("tracker.email")
	cfg.Tracker.APIToken = viper.GetString("tracker.api_token")
	cfg.Tracker.BearerToken = viper.GetString("tracker.bearer_token")
	cfg.Tracker.Timeout = viper.GetDuration("tracker.timeout")
	if baseURL := viper.GetString("jira_base_url"); baseURL != "" {
		cfg.Tracker.BaseURL = baseURL
	}
	if email := viper.GetString("jira_email"); email != "" {
		cfg.Tracker.Email = email
	}
	if token := viper.GetString("jira_api_token"); token != "" {
		cfg.Tracker.APIToken = token
	}

	// Pipeline tunables
	cfg.Tracker.LabelSuffix = viper.GetString("tracker.label_suffix")
	cfg.Tracker.CreatedSince = viper.GetString("tracker.created_since")
	cfg.Tracker.ActivityWindow = viper.GetDuration("tracker.activity_window")
	cfg.Tracker.AutomationName = viper.GetString("tracker.automation_name")
	cfg.Tracker.ChatHost = viper.GetString("tracker.chat_host")
	cfg.Tracker.DesignHost = viper.GetString("tracker.design_host")
	cfg.Tracker.QueryHost = viper.GetString("tracker.query_host")

	// Background refresh
	cfg.Refresh.Interval = viper.GetDuration("refresh.interval")
	cfg.Refresh.WindowStart = viper.GetInt("refresh.window_start")
	cfg.Refresh.WindowEnd = viper.GetInt("refresh.window_end")
	cfg.Refresh.Timezone = viper.GetString("refresh.timezone")

	// Settings store
	cfg.Settings.FilePath = viper.GetString("settings.file_path")

	// Proxy
	cfg.Proxy.Enabled = viper.GetBool("proxy.enabled")
	cfg.Proxy.RatePerSecond = viper.GetFloat64("proxy.rate_per_second")
	cfg.Proxy.Burst = viper.GetInt("proxy.burst")
	cfg.Proxy.MaxClients = viper.GetInt("proxy.max_clients")
	cfg.Proxy.ClientTTL = viper.GetDuration("proxy.client_ttl")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("tracker.timeout", "30s")
	viper.SetDefault("tracker.label_suffix", "@lmwn.com")
	viper.SetDefault("tracker.created_since", "-90d")
	viper.SetDefault("tracker.activity_window", "5s")
	viper.SetDefault("tracker.automation_name", "Automation for Jira")

	viper.SetDefault("refresh.interval", "30m")
	viper.SetDefault("refresh.window_start", 8)
	viper.SetDefault("refresh.window_end", 19)

	viper.SetDefault("settings.file_path", "settings.json")

	viper.SetDefault("proxy.enabled", true)
	viper.SetDefault("proxy.rate_per_second", 10)
	viper.SetDefault("proxy.burst", 20)
	viper.SetDefault("proxy.max_clients", 1000)
	viper.SetDefault("proxy.client_ttl", "10m")
}
