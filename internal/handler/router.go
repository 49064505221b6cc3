package handler

import (
	"net/http"

	"doc-intake-server/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	logger := container.GetLogger()
	router.Use(RequestIDMiddleware)
	router.Use(LoggingMiddleware(logger))
	router.Use(RecoveryMiddleware(logger))

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"doc-intake-server"}`))
	}).Methods("GET")

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()

	uploadHandler := NewUploadHandler(
		container.UploadService,
		container.GetConfig().GetMaxUploadSize(),
		logger,
	)
	waitlistHandler := NewWaitlistHandler(container.WaitlistService, logger)
	diagnosticsHandler := NewDiagnosticsHandler(container.DiagnosticsService, logger)

	api.HandleFunc("/upload", uploadHandler.UploadDocument).Methods("POST")
	api.HandleFunc("/upload", uploadHandler.ListDocuments).Methods("GET")
	api.HandleFunc("/waitlist", waitlistHandler.Signup).Methods("POST")
	api.HandleFunc("/diagnostics", diagnosticsHandler.Check).Methods("GET")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: []string{
			"http://localhost:3000", // Next.js dev server
			"http://localhost:5173", // Vite dev server
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Request-ID",
		},
		ExposedHeaders: []string{
			"X-Request-ID",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
