package http

import (
	"collections-backend/internal/handlers"
	"collections-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	accountHandler *handlers.AccountHandler,
	dashboardHandler *handlers.DashboardHandler,
	customerHandler *handlers.CustomerHandler,
	reportHandler *handlers.ReportHandler,
	monitoringHandler *handlers.MonitoringHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/health", healthHandler.Check).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Protected API routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("/logout", authHandler.Logout).Methods("POST")
	api.HandleFunc("/session", authHandler.Session).Methods("GET")
	api.HandleFunc("/account", accountHandler.Update).Methods("PUT")

	api.HandleFunc("/dashboard", dashboardHandler.List).Methods("GET")

	api.HandleFunc("/customers/{id}/notes", customerHandler.Notes).Methods("GET")
	api.HandleFunc("/customers/{id}/inactive-since", customerHandler.InactiveSince).Methods("GET")
	api.HandleFunc("/customers/{id}/comments", customerHandler.PostComment).Methods("POST")
	api.HandleFunc("/customers/{id}/promises", customerHandler.RecordPromise).Methods("POST")
	api.HandleFunc("/customers/{id}/collections", customerHandler.ScheduleCollection).Methods("POST")

	api.HandleFunc("/reports/blocked-customers.pdf", reportHandler.BlockedCustomersPDF).Methods("GET")
	api.HandleFunc("/reports/blocked-customers.csv", reportHandler.BlockedCustomersCSV).Methods("GET")

	api.HandleFunc("/monitoring/system", monitoringHandler.SystemStats).Methods("GET")

	return r
}
