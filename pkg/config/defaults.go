package config

import "time"

// defaultConfig returns a Config pre-populated with defaults; yaml values
// overwrite them field by field.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: Duration(5 * time.Second),
		},
		LLM: LLMConfig{
			APIKeyEnv:   "ANTHROPIC_API_KEY",
			MaxTokens:   2048,
			Temperature: 0.2,
			Timeout:     Duration(25 * time.Second),
		},
		Embedding: EmbeddingConfig{
			APIKeyEnv: "OPENAI_API_KEY",
			Model:     "text-embedding-3-small",
			Dimension: 1536,
		},
		Redis: RedisConfig{
			Addr:        "localhost:6379",
			VectorIndex: "wisehub-knowledge",
		},
		Chat: ChatConfig{
			Timeout:        Duration(10 * time.Second),
			SendRatePerMin: 60,
		},
		Brain: BrainConfig{
			RequestTimeout:         Duration(45 * time.Second),
			HandlerTimeout:         Duration(30 * time.Second),
			MemoryFetchTimeout:     Duration(2 * time.Second),
			MemoryTotalTimeout:     Duration(3 * time.Second),
			SerialWaitTimeout:      Duration(3 * time.Second),
			ConfirmThreshold:       0.7,
			StrongKeywordThreshold: 0.6,
			LLMFallbackCap:         0.6,
			StateTimeoutMinutes:    30,
			MaxChainDepth:          3,
			RecencyAffinityWindow:  Duration(15 * time.Minute),
			SummaryTriggerTurns:    10,
		},
		Schedule: ScheduleConfig{
			WorkerCount:             2,
			PollInterval:            Duration(5 * time.Second),
			JobTimeout:              Duration(2 * time.Minute),
			OrphanThreshold:         Duration(5 * time.Minute),
			GracefulShutdownTimeout: Duration(30 * time.Second),
		},
		Retention: RetentionConfig{
			DecisionLogDays:     90,
			PatternDays:         180,
			AnnouncementLogDays: 365,
			CleanupInterval:     Duration(1 * time.Hour),
		},
	}
}

// applyDefaults fills zero-valued durations that yaml may have cleared.
func applyDefaults(c *Config) {
	d := defaultConfig()
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = d.Server.ShutdownTimeout
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = d.LLM.Timeout
	}
	if c.Chat.Timeout == 0 {
		c.Chat.Timeout = d.Chat.Timeout
	}
	if c.Brain.RequestTimeout == 0 {
		c.Brain.RequestTimeout = d.Brain.RequestTimeout
	}
	if c.Brain.HandlerTimeout == 0 {
		c.Brain.HandlerTimeout = d.Brain.HandlerTimeout
	}
	if c.Brain.MemoryFetchTimeout == 0 {
		c.Brain.MemoryFetchTimeout = d.Brain.MemoryFetchTimeout
	}
	if c.Brain.MemoryTotalTimeout == 0 {
		c.Brain.MemoryTotalTimeout = d.Brain.MemoryTotalTimeout
	}
	if c.Brain.SerialWaitTimeout == 0 {
		c.Brain.SerialWaitTimeout = d.Brain.SerialWaitTimeout
	}
	if c.Brain.RecencyAffinityWindow == 0 {
		c.Brain.RecencyAffinityWindow = d.Brain.RecencyAffinityWindow
	}
	if c.Schedule.PollInterval == 0 {
		c.Schedule.PollInterval = d.Schedule.PollInterval
	}
	if c.Schedule.JobTimeout == 0 {
		c.Schedule.JobTimeout = d.Schedule.JobTimeout
	}
	if c.Schedule.OrphanThreshold == 0 {
		c.Schedule.OrphanThreshold = d.Schedule.OrphanThreshold
	}
	if c.Schedule.GracefulShutdownTimeout == 0 {
		c.Schedule.GracefulShutdownTimeout = d.Schedule.GracefulShutdownTimeout
	}
	if c.Retention.CleanupInterval == 0 {
		c.Retention.CleanupInterval = d.Retention.CleanupInterval
	}
}
