// Package devserver is an in-memory stand-in for the remote file-tracking
// service, implementing its REST contract for local development and
// integration tests. It is a harness: the production service lives
// elsewhere.
package devserver

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/Aayush01055/File-tracking-system/internal/core/domain"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Each router carries its own metrics registry so several instances can
// coexist in one process (the integration tests build one per test).
func NewRouter(store *Store, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	registry := prometheus.NewRegistry()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "ftms_devserver",
		Registerer: registry,
	}))

	h := NewHandler(store)
	requireUser := RequireUser(store)
	adminOnly := RBAC(domain.RoleAdmin)

	// --- Auth ---
	e.POST("/api/auth/login", h.Login)
	e.POST("/api/auth/register", h.RegisterUser, requireUser, adminOnly)

	// --- Files ---
	e.GET("/api/files/search", h.SearchFiles, requireUser)
	e.GET("/api/files/:id", h.GetFile, requireUser)
	e.POST("/api/files/register", h.CreateFile, requireUser)
	e.PATCH("/api/files/:id", h.UpdateFile, requireUser)

	// --- Users & audit ---
	e.GET("/api/users", h.ListUsers, requireUser)
	e.GET("/api/audit/:fileId", h.AuditTrail, requireUser)

	// --- Operational endpoints ---
	e.GET("/health", h.Liveness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: registry}))

	return e
}
