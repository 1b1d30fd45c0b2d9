package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"collections-backend/internal/auth"
	"collections-backend/internal/cache"
	"collections-backend/internal/config"
	"collections-backend/internal/database"
	"collections-backend/internal/db"
	"collections-backend/internal/handlers"
	"collections-backend/internal/health"
	h "collections-backend/internal/http"
	"collections-backend/internal/middleware"
	"collections-backend/internal/portal"
	"collections-backend/internal/repositories"
	"collections-backend/internal/services"
	"collections-backend/internal/session"
	"collections-backend/migrations"
)

func main() {
	cfg := config.Load()

	pool := db.Connect(cfg)
	defer pool.Close()

	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable, falling back to in-process sessions: %v", err)
	}

	migrator := database.NewMigratorWithFS(pool, migrations.FS, ".")
	if err := migrator.RunMigrations(context.Background()); err != nil {
		log.Fatalf("[Migrations] Failed to run migrations: %v", err)
	}

	jwtManager := auth.NewJWTManager(cfg)

	// Durable sessions live in Redis so they survive restarts; scoped
	// sessions are always in-process and die with the server.
	sessionTTL := time.Duration(cfg.JWT.ExpirationHours) * time.Hour
	var durable session.Slot
	if client := cache.GetClient(); client != nil {
		durable = session.NewRedisSlot(client, "session:")
	} else {
		durable = session.NewMemorySlot()
	}
	sessions := session.NewStore(durable, session.NewMemorySlot(), sessionTTL)

	portalClient := portal.NewClient(
		cfg.Portal.BaseURL,
		cfg.Portal.AuthHeader,
		time.Duration(cfg.Portal.TimeoutSec)*time.Second,
	)

	// Repositories
	adminRepo := repositories.NewAdminRepository(pool)

	// Services
	authService := services.NewAuthService(adminRepo)
	dashboardService := services.NewDashboardService(portalClient)
	customerService := services.NewCustomerService(portalClient)
	actionService := services.NewActionService(portalClient)
	reportService := services.NewReportService(dashboardService)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, sessions, jwtManager)
	accountHandler := handlers.NewAccountHandler(authService, sessions)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	customerHandler := handlers.NewCustomerHandler(customerService, actionService, dashboardService)
	reportHandler := handlers.NewReportHandler(reportService)
	monitoringHandler := handlers.NewMonitoringHandler()
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessions)

	router := h.NewRouter(
		authHandler,
		accountHandler,
		dashboardHandler,
		customerHandler,
		reportHandler,
		monitoringHandler,
		healthHandler,
		authMiddleware,
	)

	corsMiddleware := middleware.NewCORS(cfg)
	var handler http.Handler = router
	handler = middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(handler)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("[Server] Listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("[Server] Failed to start: %v", err)
	}
}
