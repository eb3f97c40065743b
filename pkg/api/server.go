package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the chi router with all routes configured
func NewRouter(server *Server, metrics *Metrics, apiKey string) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API key authentication middleware for protected routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(metrics.InstrumentAuthMiddleware(apiKeyMiddleware(apiKey)))

		// Health check
		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		// Integer codecs
		r.Post("/encode/varint", metrics.InstrumentHandler("POST", "/api/v1/encode/varint", server.handleEncodeVarint))
		r.Post("/decode/varint", metrics.InstrumentHandler("POST", "/api/v1/decode/varint", server.handleDecodeVarint))
		r.Post("/encode/compactsize", metrics.InstrumentHandler("POST", "/api/v1/encode/compactsize", server.handleEncodeCompactSize))
		r.Post("/decode/compactsize", metrics.InstrumentHandler("POST", "/api/v1/decode/compactsize", server.handleDecodeCompactSize))

		// Record inspection
		r.Post("/inspect/tx", metrics.InstrumentHandler("POST", "/api/v1/inspect/tx", server.handleInspectTx))
		r.Post("/inspect/header", metrics.InstrumentHandler("POST", "/api/v1/inspect/header", server.handleInspectHeader))

		// Buffer surgery
		r.Post("/patch", metrics.InstrumentHandler("POST", "/api/v1/patch", server.handlePatch))

		// Stored records
		r.Post("/records", metrics.InstrumentHandler("POST", "/api/v1/records", server.handleStoreRecord))
		r.Get("/records/{id}", metrics.InstrumentHandler("GET", "/api/v1/records/{id}", server.handleGetRecord))
		r.Delete("/records/{id}", metrics.InstrumentHandler("DELETE", "/api/v1/records/{id}", server.handleDeleteRecord))
	})

	return r
}

// StartServer starts the HTTP server with all routes configured
func StartServer(store IRecordStore, config ServerConfig) error {
	metrics := NewMetrics()
	server := NewServer(store, config, metrics)
	r := NewRouter(server, metrics, config.APIKey)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	fmt.Printf("Starting seidr REST API server on %s\n", addr)
	fmt.Printf("Metrics available at: http://%s/metrics\n", addr)
	return http.ListenAndServe(addr, r)
}
