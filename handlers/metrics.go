// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/flight-sentiment/evaluation"
	"github.com/danielhkuo/flight-sentiment/middleware"
)

type MetricsHandler struct {
	classifier evaluation.Classifier
	samples    []evaluation.Sample
}

func NewMetricsHandler(classifier evaluation.Classifier) *MetricsHandler {
	return &MetricsHandler{classifier: classifier, samples: evaluation.Samples()}
}

// GetMetrics handles GET /metrics
// Scores the live classifier against the fixed labeled sample
func (h *MetricsHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	report, err := evaluation.Evaluate(h.classifier, h.samples)
	if err != nil {
		middleware.ServerError(w, r, "failed to evaluate classifier", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, report)
}
