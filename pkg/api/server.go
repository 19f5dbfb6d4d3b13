// Package api exposes the HTTP surface: the tenant webhook endpoint, health,
// and a small read-only admin API for operators.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/wisehub-ai/wisehub/ent"
	"github.com/wisehub-ai/wisehub/pkg/adminconfig"
	"github.com/wisehub-ai/wisehub/pkg/announce"
	"github.com/wisehub-ai/wisehub/pkg/brain"
	"github.com/wisehub-ai/wisehub/pkg/config"
	"github.com/wisehub-ai/wisehub/pkg/database"
	"github.com/wisehub-ai/wisehub/pkg/flags"
	"github.com/wisehub-ai/wisehub/pkg/tracker"
)

// Server is the HTTP server wrapping the router and its handlers.
type Server struct {
	cfg      *config.Config
	dbClient *database.Client
	client   *ent.Client
	brain    *brain.Brain
	adminCfg *adminconfig.Service
	flags    *flags.Service
	announce *announce.Service
	tracker  *tracker.Tracker

	adminToken string
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates the HTTP server and mounts all routes. adminToken guards
// the admin API; empty disables those routes entirely.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	client *ent.Client,
	br *brain.Brain,
	adminCfg *adminconfig.Service,
	flagsSvc *flags.Service,
	announceSvc *announce.Service,
	trk *tracker.Tracker,
	adminToken string,
) *Server {
	s := &Server{
		cfg:        cfg,
		dbClient:   dbClient,
		client:     client,
		brain:      br,
		adminCfg:   adminCfg,
		flags:      flagsSvc,
		announce:   announceSvc,
		tracker:    trk,
		adminToken: adminToken,
		logger:     slog.Default().With("component", "api"),
	}

	e := echo.New()
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)
	e.POST("/webhook/:tenant_id", s.webhookHandler)

	if adminToken != "" {
		admin := e.Group("/api/v1", s.adminAuth())
		admin.GET("/tenants/:tenant_id/decisions", s.listDecisionsHandler)
		admin.GET("/tenants/:tenant_id/announcements", s.listAnnouncementsHandler)
		admin.POST("/tenants/:tenant_id/announcements/:id/cancel", s.cancelAnnouncementHandler)
		admin.POST("/tenants/:tenant_id/cache/invalidate", s.invalidateCacheHandler)
	}

	s.httpServer = &http.Server{
		Handler:           requestLogger(e),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Start listens on addr and blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.httpServer.Addr = addr
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
