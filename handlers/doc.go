// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the review sentiment API.

# Handler Types

Each handler is a struct with its dependencies injected:

  - ReviewHandler: analyze, list, fetch and export reviews (gorm + analyzer)
  - MetricsHandler: classifier evaluation on the fixed sample
  - PageHandler: the HTML front page

	reviewHandler := handlers.NewReviewHandler(db, analyzer)

# Review Flow

	POST /analyze       → Analyze (scores text, stores a row, returns reviewId)
	GET  /reviews       → ListReviews (optionally ?sentiment=)
	GET  /reviews/{id}  → GetReview
	GET  /download      → Download (CSV attachment)

Reviews are append-only; no handler updates or deletes rows.

# Metrics

	GET /metrics → GetMetrics

Runs the classifier over evaluation.Samples and returns accuracy and
macro-averaged precision, recall and F1.

# Errors

Validation failures return 400. Storage, rendering and evaluation
failures are logged and return 500 with the error string as message.
*/
package handlers
