// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/danielhkuo/flight-sentiment/handlers"
	"github.com/danielhkuo/flight-sentiment/middleware"
	"github.com/danielhkuo/flight-sentiment/sentiment"
	"github.com/danielhkuo/flight-sentiment/web"
)

// NewRouter builds the route table and wraps it with request ids,
// panic recovery and CORS
func NewRouter(db *gorm.DB, analyzer *sentiment.Analyzer) (http.Handler, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	mux := http.NewServeMux()

	// Initialize handlers
	reviewHandler := handlers.NewReviewHandler(db, analyzer)
	metricsHandler := handlers.NewMetricsHandler(analyzer)
	pageHandler := handlers.NewPageHandler(db, tmpl)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Page and assets
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.Home))
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(web.Static())))

	// Reviews
	mux.HandleFunc("POST /analyze", middleware.WithLogging(reviewHandler.Analyze))
	mux.HandleFunc("GET /reviews", middleware.WithLogging(reviewHandler.ListReviews))
	mux.HandleFunc("GET /reviews/{id}", middleware.WithLogging(reviewHandler.GetReview))
	mux.HandleFunc("GET /download", middleware.WithLogging(reviewHandler.Download))

	// Classifier evaluation
	mux.HandleFunc("GET /metrics", middleware.WithLogging(metricsHandler.GetMetrics))

	return middleware.RequestID(middleware.WithRecovery(middleware.CORS(mux))), nil
}
