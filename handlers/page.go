// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"

	"gorm.io/gorm"

	"github.com/danielhkuo/flight-sentiment/middleware"
	"github.com/danielhkuo/flight-sentiment/models"
)

type PageHandler struct {
	db   *gorm.DB
	tmpl *template.Template
}

func NewPageHandler(db *gorm.DB, tmpl *template.Template) *PageHandler {
	return &PageHandler{db: db, tmpl: tmpl}
}

type homePage struct {
	Reviews       []models.Review
	MaxTextLength int
}

// Home handles GET /
// Renders the review form and every stored review
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	var reviews []models.Review
	if err := h.db.WithContext(r.Context()).Order("id ASC").Find(&reviews).Error; err != nil {
		middleware.ServerError(w, r, "failed to query reviews", err)
		return
	}

	// Render fully before writing so template errors still produce a 500
	var buf bytes.Buffer
	err := h.tmpl.ExecuteTemplate(&buf, "index.html", homePage{
		Reviews:       reviews,
		MaxTextLength: models.MaxTextLength,
	})
	if err != nil {
		middleware.ServerError(w, r, "failed to render page", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write page", "error", err)
	}
}
