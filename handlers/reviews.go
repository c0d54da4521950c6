// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/csv"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/danielhkuo/flight-sentiment/ident"
	"github.com/danielhkuo/flight-sentiment/middleware"
	"github.com/danielhkuo/flight-sentiment/models"
	"github.com/danielhkuo/flight-sentiment/sentiment"
)

// TextAnalyzer scores review text
type TextAnalyzer interface {
	Analyze(text string) sentiment.Result
}

type ReviewHandler struct {
	db       *gorm.DB
	analyzer TextAnalyzer
}

func NewReviewHandler(db *gorm.DB, analyzer TextAnalyzer) *ReviewHandler {
	return &ReviewHandler{db: db, analyzer: analyzer}
}

// Analyze handles POST /analyze
func (h *ReviewHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	req.Text = strings.TrimSpace(req.Text)
	req.AircraftType = strings.TrimSpace(req.AircraftType)
	req.Route = strings.TrimSpace(req.Route)

	// Validate input
	if msg := validateAnalyzeRequest(req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	result := h.analyzer.Analyze(req.Text)

	now := time.Now().UTC()
	review := models.Review{
		Ref:          ident.ReviewRef(req.Text, now),
		Text:         req.Text,
		AircraftType: req.AircraftType,
		Route:        req.Route,
		Sentiment:    result.Label,
		Score:        result.Compound,
		CreatedAt:    now,
	}

	if err := h.db.WithContext(r.Context()).Create(&review).Error; err != nil {
		middleware.ServerError(w, r, "failed to insert review", err)
		return
	}

	slog.Info("review analyzed",
		"review_id", review.ID,
		"ref", review.Ref,
		"sentiment", review.Sentiment,
		"score", review.Score,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.AnalyzeResponse{
		ReviewID:     review.ID,
		Ref:          review.Ref,
		Sentiment:    review.Sentiment,
		Score:        review.Score,
		Text:         review.Text,
		AircraftType: review.AircraftType,
		Route:        review.Route,
		CreatedAt:    review.CreatedAt,
	})
}

func validateAnalyzeRequest(req models.AnalyzeRequest) string {
	switch {
	case req.Text == "":
		return "text is required"
	case req.AircraftType == "":
		return "aircraftType is required"
	case req.Route == "":
		return "route is required"
	case utf8.RuneCountInString(req.Text) > models.MaxTextLength:
		return "text must be at most " + strconv.Itoa(models.MaxTextLength) + " characters"
	case utf8.RuneCountInString(req.AircraftType) > models.MaxAircraftTypeLength:
		return "aircraftType must be at most " + strconv.Itoa(models.MaxAircraftTypeLength) + " characters"
	case utf8.RuneCountInString(req.Route) > models.MaxRouteLength:
		return "route must be at most " + strconv.Itoa(models.MaxRouteLength) + " characters"
	}
	return ""
}

// ListReviews handles GET /reviews
// Optional ?sentiment= narrows the list to one label
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("sentiment")
	if filter != "" && !models.IsValidSentiment(filter) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "sentiment must be one of: positive, negative, neutral")
		return
	}

	reviews, err := h.loadReviews(r, filter)
	if err != nil {
		middleware.ServerError(w, r, "failed to query reviews", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, reviews)
}

// GetReview handles GET /reviews/{id}
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	// database/sql rejects uint64 values above MaxInt64
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 63)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}

	var review models.Review
	err = h.db.WithContext(r.Context()).First(&review, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Review not found")
		return
	}
	if err != nil {
		middleware.ServerError(w, r, "failed to query review", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, review)
}

// csvHeader is the column order of GET /download
var csvHeader = []string{"id", "ref", "text", "aircraft_type", "route", "sentiment", "score", "created_at"}

// Download handles GET /download
// Writes every stored review as a CSV attachment
func (h *ReviewHandler) Download(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.loadReviews(r, "")
	if err != nil {
		middleware.ServerError(w, r, "failed to query reviews", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="reviews.csv"`)
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	cw.Write(csvHeader)
	for _, rv := range reviews {
		cw.Write([]string{
			strconv.FormatUint(uint64(rv.ID), 10),
			rv.Ref,
			rv.Text,
			rv.AircraftType,
			rv.Route,
			rv.Sentiment,
			strconv.FormatFloat(rv.Score, 'f', 4, 64),
			rv.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	cw.Flush()

	// Headers are already sent, so a write failure can only be logged
	if err := cw.Error(); err != nil {
		slog.Error("failed to write CSV export", "error", err)
		return
	}

	slog.Info("reviews exported", "rows", len(reviews))
}

func (h *ReviewHandler) loadReviews(r *http.Request, sentimentFilter string) ([]models.Review, error) {
	q := h.db.WithContext(r.Context()).Order("id ASC")
	if sentimentFilter != "" {
		q = q.Where("sentiment = ?", sentimentFilter)
	}

	reviews := []models.Review{}
	if err := q.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
