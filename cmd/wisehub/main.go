// WiseHub server — receives chat webhooks, runs the Brain pipeline, manages
// scheduled announcement workers and exposes the admin API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/wisehub-ai/wisehub/pkg/adminconfig"
	"github.com/wisehub-ai/wisehub/pkg/announce"
	"github.com/wisehub-ai/wisehub/pkg/api"
	"github.com/wisehub-ai/wisehub/pkg/audit"
	"github.com/wisehub-ai/wisehub/pkg/brain"
	"github.com/wisehub-ai/wisehub/pkg/capability"
	"github.com/wisehub-ai/wisehub/pkg/chatwork"
	"github.com/wisehub-ai/wisehub/pkg/cleanup"
	"github.com/wisehub-ai/wisehub/pkg/config"
	"github.com/wisehub-ai/wisehub/pkg/database"
	"github.com/wisehub-ai/wisehub/pkg/embed"
	"github.com/wisehub-ai/wisehub/pkg/flags"
	"github.com/wisehub-ai/wisehub/pkg/handlers"
	"github.com/wisehub-ai/wisehub/pkg/identity"
	"github.com/wisehub-ai/wisehub/pkg/llm"
	"github.com/wisehub-ai/wisehub/pkg/memory"
	"github.com/wisehub-ai/wisehub/pkg/opsalert"
	"github.com/wisehub-ai/wisehub/pkg/schedule"
	"github.com/wisehub-ai/wisehub/pkg/scrub"
	"github.com/wisehub-ai/wisehub/pkg/state"
	"github.com/wisehub-ai/wisehub/pkg/tracker"
	"github.com/wisehub-ai/wisehub/pkg/vector"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configPath := flag.String("config",
		getEnv("CONFIG_PATH", "./deploy/config/wisehub.yaml"),
		"Path to configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	podID := resolvePodID()
	slog.Info("Starting WiseHub", "pod_id", podID, "config", *configPath)

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Database (migrations run inside NewClient).
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Redis (webhook dedup, vector search).
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: os.Getenv(cfg.Redis.PasswordEnv),
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		slog.Error("Failed to connect to redis", "addr", cfg.Redis.Addr, "error", err)
		os.Exit(1)
	}
	defer func() { _ = rdb.Close() }()
	slog.Info("Connected to redis", "addr", cfg.Redis.Addr)

	// LLM and embedding clients.
	llmClient, err := llm.NewAnthropicClient(os.Getenv(cfg.LLM.APIKeyEnv), llm.Config{
		PrimaryModel: cfg.LLM.PrimaryModel,
		FastModel:    cfg.LLM.FastModel,
		MaxTokens:    cfg.LLM.MaxTokens,
		Temperature:  cfg.LLM.Temperature,
		Timeout:      cfg.LLM.Timeout.Std(),
	})
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}
	embedder, err := embed.NewOpenAIClient(os.Getenv(cfg.Embedding.APIKeyEnv), cfg.Embedding.Model)
	if err != nil {
		slog.Error("Failed to initialize embedding client", "error", err)
		os.Exit(1)
	}
	vectors := vector.NewRedisStore(rdb, cfg.Redis.VectorIndex)

	// Chat adapter and operator alerting.
	chat := chatwork.NewClient(cfg.Chat.BaseURL, cfg.Chat.Timeout.Std(), cfg.Chat.SendRatePerMin)
	alerts := opsalert.NewService(os.Getenv(cfg.OpsSlack.TokenEnv), cfg.OpsSlack.Channel)

	// Domain services.
	scrubber, err := scrub.New()
	if err != nil {
		slog.Error("Failed to build scrubber", "error", err)
		os.Exit(1)
	}
	auditSvc := audit.NewService(dbClient.Client, scrubber)
	adminCfg := adminconfig.NewService(dbClient.Client)
	flagsSvc := flags.NewService(dbClient.Client)
	identitySvc := identity.NewService(dbClient.Client)
	states := state.NewService(dbClient.Client, time.Duration(cfg.Brain.StateTimeoutMinutes)*time.Minute, alerts)
	loader := memory.NewLoader(dbClient.Client, embedder, vectors,
		cfg.Brain.MemoryFetchTimeout.Std(), cfg.Brain.MemoryTotalTimeout.Std())

	jobs := schedule.NewStore(dbClient.Client)
	announceSvc := announce.NewService(dbClient.Client, chat, llmClient, jobs, adminCfg, alerts)

	// Capability registry: descriptors plus handler bindings, then validate.
	registry := capability.NewRegistry()
	for _, d := range capability.Builtin() {
		if err := registry.Register(d); err != nil {
			slog.Error("Failed to register capability", "key", d.Key, "error", err)
			os.Exit(1)
		}
	}
	handlerSet, err := handlers.NewSet(handlers.Deps{
		Client:   dbClient.Client,
		Chat:     chat,
		AdminCfg: adminCfg,
		LLM:      llmClient,
		Announce: announceSvc,
		Alerts:   alerts,
		Flags:    flagsSvc,
	})
	if err != nil {
		slog.Error("Failed to build handlers", "error", err)
		os.Exit(1)
	}
	if err := handlerSet.Register(registry); err != nil {
		slog.Error("Failed to bind handlers", "error", err)
		os.Exit(1)
	}
	if err := registry.Validate(); err != nil {
		slog.Error("Capability registry validation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Capability registry validated", "capabilities", len(capability.Builtin()))

	trk := tracker.New()

	br := brain.New(brain.Deps{
		Config:       cfg.Brain,
		Registry:     registry,
		Client:       dbClient.Client,
		Memory:       loader,
		States:       states,
		LLM:          llmClient,
		Chat:         chat,
		AdminCfg:     adminCfg,
		Identity:     identitySvc,
		Audit:        auditSvc,
		Announce:     announceSvc,
		Handlers:     handlerSet,
		Alerts:       alerts,
		Tracker:      trk,
		Redis:        rdb,
		BotAccountID: cfg.Chat.BotAccountID,
	})

	// Worker pool for scheduled announcement executions.
	pool := schedule.NewWorkerPool(podID, dbClient.Client, schedule.Config{
		WorkerCount:     cfg.Schedule.WorkerCount,
		PollInterval:    cfg.Schedule.PollInterval.Std(),
		JobTimeout:      cfg.Schedule.JobTimeout.Std(),
		OrphanThreshold: cfg.Schedule.OrphanThreshold.Std(),
	})
	pool.RegisterHandler(announce.JobKindExecute, func(ctx context.Context, tenantID string, payload map[string]any) error {
		id, _ := payload["announcement_id"].(string)
		if id == "" {
			return fmt.Errorf("job payload has no announcement_id")
		}
		return announceSvc.Execute(ctx, tenantID, id)
	})
	pool.Start(ctx)

	retention := cleanup.NewRunner(dbClient.Client, states, cfg.Retention)
	retention.Start(ctx)

	// HTTP server (non-blocking).
	httpServer := api.NewServer(cfg, dbClient, dbClient.Client, br, adminCfg, flagsSvc,
		announceSvc, trk, os.Getenv("ADMIN_API_TOKEN"))
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("WiseHub started successfully", "pod_id", podID, "workers", cfg.Schedule.WorkerCount)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Stop accepting requests first, then drain workers and background tasks.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout.Std())
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-time.After(cfg.Schedule.GracefulShutdownTimeout.Std()):
		slog.Warn("Shutdown timeout exceeded, claimed jobs will be orphan-recovered")
	}

	retention.Stop()

	if !trk.Shutdown(cfg.Schedule.GracefulShutdownTimeout.Std()) {
		slog.Warn("Background tasks still running at shutdown", "active", trk.Active())
	}

	slog.Info("Shutdown complete")
}
