package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// External services
	ClickUp  ClickUpConfig
	Docstore DocstoreConfig
	Gemini   GeminiConfig
	Speech   SpeechConfig

	// Planner behavior
	Planner PlannerConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type ClickUpConfig struct {
	APIURL        string
	APIToken      string
	BacklogListID string
}

type DocstoreConfig struct {
	URL             string
	AccessToken     string
	CacheTTLMinutes int
}

type GeminiConfig struct {
	APIKey string
}

type SpeechConfig struct {
	CredentialsPath string
}

type PlannerConfig struct {
	Timezone           string
	WorkloadUnderHours float64
	WorkloadOverHours  float64
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
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
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// ClickUp
	cfg.ClickUp.APIURL = viper.GetString("clickup.api_url")
	cfg.ClickUp.APIToken = viper.GetString("clickup.api_token")
	cfg.ClickUp.BacklogListID = viper.GetString("clickup.backlog_list_id")
	if token := viper.GetString("clickup_api_token"); token != "" {
		cfg.ClickUp.APIToken = token
	}
	if listID := viper.GetString("clickup_backlog_list_id"); listID != "" {
		cfg.ClickUp.BacklogListID = listID
	}

	// Docstore
	cfg.Docstore.URL = viper.GetString("docstore.url")
	cfg.Docstore.AccessToken = viper.GetString("docstore.access_token")
	cfg.Docstore.CacheTTLMinutes = viper.GetInt("docstore.cache_ttl_minutes")
	if url := viper.GetString("docstore_url"); url != "" {
		cfg.Docstore.URL = url
	}
	if token := viper.GetString("docstore_access_token"); token != "" {
		cfg.Docstore.AccessToken = token
	}

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	if key := viper.GetString("gemini_api_key"); key != "" {
		cfg.Gemini.APIKey = key
	}

	// Speech
	cfg.Speech.CredentialsPath = viper.GetString("speech.credentials_path")
	if creds := viper.GetString("google_speech_credentials"); creds != "" {
		cfg.Speech.CredentialsPath = creds
	}

	// Planner
	cfg.Planner.Timezone = viper.GetString("planner.timezone")
	cfg.Planner.WorkloadUnderHours = viper.GetFloat64("planner.workload_under_hours")
	cfg.Planner.WorkloadOverHours = viper.GetFloat64("planner.workload_over_hours")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.ClickUp.APIToken == "" {
		return fmt.Errorf("clickup.api_token is required")
	}
	if cfg.ClickUp.BacklogListID == "" {
		return fmt.Errorf("clickup.backlog_list_id is required")
	}
	if cfg.Docstore.URL == "" {
		return fmt.Errorf("docstore.url is required")
	}
	if cfg.Planner.WorkloadUnderHours > cfg.Planner.WorkloadOverHours {
		return fmt.Errorf("planner.workload_under_hours must not exceed planner.workload_over_hours")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 120)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("clickup.api_url", "https://api.clickup.com")
	viper.SetDefault("docstore.cache_ttl_minutes", 5)
	viper.SetDefault("planner.timezone", "Asia/Ho_Chi_Minh")
	viper.SetDefault("planner.workload_under_hours", 6.5)
	viper.SetDefault("planner.workload_over_hours", 8.0)
}
