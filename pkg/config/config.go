// Package config loads and validates the application configuration from a
// YAML file plus environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from yaml strings like "30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the standard library representation.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	LLM       LLMConfig       `yaml:"llm"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Redis     RedisConfig     `yaml:"redis"`
	Chat      ChatConfig      `yaml:"chat"`
	OpsSlack  OpsSlackConfig  `yaml:"ops_slack"`
	Brain     BrainConfig     `yaml:"brain"`
	Schedule  ScheduleConfig  `yaml:"schedule"`
	Retention RetentionConfig `yaml:"retention"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int      `yaml:"port" validate:"min=1,max=65535"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

// LLMConfig holds LLM provider settings. The API key always comes from the
// environment, never from the file.
type LLMConfig struct {
	APIKeyEnv    string   `yaml:"api_key_env" validate:"required"`
	PrimaryModel string   `yaml:"primary_model" validate:"required"`
	FastModel    string   `yaml:"fast_model" validate:"required"`
	MaxTokens    int      `yaml:"max_tokens" validate:"min=1"`
	Temperature  float64  `yaml:"temperature" validate:"min=0,max=1"`
	Timeout      Duration `yaml:"timeout"`
}

// EmbeddingConfig holds embedding provider settings.
type EmbeddingConfig struct {
	APIKeyEnv string `yaml:"api_key_env" validate:"required"`
	Model     string `yaml:"model" validate:"required"`
	Dimension int    `yaml:"dimension" validate:"min=1"`
}

// RedisConfig holds redis settings (webhook dedup, vector search).
type RedisConfig struct {
	Addr        string `yaml:"addr" validate:"required"`
	PasswordEnv string `yaml:"password_env"`
	DB          int    `yaml:"db" validate:"min=0"`
	VectorIndex string `yaml:"vector_index" validate:"required"`
}

// ChatConfig holds chat-service adapter settings. Per-tenant API tokens live
// in the tenant config table; this is the shared endpoint.
type ChatConfig struct {
	BaseURL        string   `yaml:"base_url" validate:"required,url"`
	Timeout        Duration `yaml:"timeout"`
	SendRatePerMin int      `yaml:"send_rate_per_min" validate:"min=1"`
	BotAccountID   string   `yaml:"bot_account_id" validate:"required"`
}

// OpsSlackConfig holds operator alerting settings. Empty token disables
// alerting (the service is nil-safe).
type OpsSlackConfig struct {
	TokenEnv string `yaml:"token_env"`
	Channel  string `yaml:"channel"`
}

// BrainConfig holds pipeline thresholds and deadlines.
type BrainConfig struct {
	RequestTimeout         Duration `yaml:"request_timeout"`
	HandlerTimeout         Duration `yaml:"handler_timeout"`
	MemoryFetchTimeout     Duration `yaml:"memory_fetch_timeout"`
	MemoryTotalTimeout     Duration `yaml:"memory_total_timeout"`
	SerialWaitTimeout      Duration `yaml:"serial_wait_timeout"`
	ConfirmThreshold       float64  `yaml:"confirm_threshold" validate:"min=0,max=1"`
	StrongKeywordThreshold float64  `yaml:"strong_keyword_threshold" validate:"min=0,max=1"`
	LLMFallbackCap         float64  `yaml:"llm_fallback_cap" validate:"min=0,max=1"`
	StateTimeoutMinutes    int      `yaml:"state_timeout_minutes" validate:"min=1"`
	MaxChainDepth          int      `yaml:"max_chain_depth" validate:"min=1,max=10"`
	RecencyAffinityWindow  Duration `yaml:"recency_affinity_window"`
	SummaryTriggerTurns    int      `yaml:"summary_trigger_turns" validate:"min=2"`
}

// ScheduleConfig holds job worker settings.
type ScheduleConfig struct {
	WorkerCount             int      `yaml:"worker_count" validate:"min=1"`
	PollInterval            Duration `yaml:"poll_interval"`
	JobTimeout              Duration `yaml:"job_timeout"`
	OrphanThreshold         Duration `yaml:"orphan_threshold"`
	GracefulShutdownTimeout Duration `yaml:"graceful_shutdown_timeout"`
}

// RetentionConfig holds cleanup retention settings.
type RetentionConfig struct {
	DecisionLogDays     int      `yaml:"decision_log_days" validate:"min=1"`
	PatternDays         int      `yaml:"pattern_days" validate:"min=1"`
	AnnouncementLogDays int      `yaml:"announcement_log_days" validate:"min=1"`
	CleanupInterval     Duration `yaml:"cleanup_interval"`
}

// Load reads, defaults and validates the configuration file at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	applyDefaults(cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LLMAPIKey resolves the LLM API key from the environment.
func (c *Config) LLMAPIKey() string {
	return os.Getenv(c.LLM.APIKeyEnv)
}

// EmbeddingAPIKey resolves the embedding API key from the environment.
func (c *Config) EmbeddingAPIKey() string {
	return os.Getenv(c.Embedding.APIKeyEnv)
}

// RedisPassword resolves the redis password from the environment.
func (c *Config) RedisPassword() string {
	if c.Redis.PasswordEnv == "" {
		return ""
	}
	return os.Getenv(c.Redis.PasswordEnv)
}

// OpsSlackToken resolves the operator Slack token from the environment.
func (c *Config) OpsSlackToken() string {
	if c.OpsSlack.TokenEnv == "" {
		return ""
	}
	return os.Getenv(c.OpsSlack.TokenEnv)
}
