// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/danielhkuo/flight-sentiment/cliparse"
	"github.com/danielhkuo/flight-sentiment/db"
	"github.com/danielhkuo/flight-sentiment/ident"
	"github.com/danielhkuo/flight-sentiment/models"
)

// SetupTestDB creates a fresh SQLite database with the full schema.
// The file lives in t.TempDir() and is closed when the test ends.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := GetTestConfig()
	cfg.DatabaseURL = filepath.Join(t.TempDir(), "reviews_test.db")

	conn, err := db.Open(cfg, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close(conn) })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8080,
		DatabaseType: "sqlite",
		DatabaseURL:  "reviews_test.db",
		Threshold:    cliparse.DefaultThreshold,
		Preprocess:   true,
	}
}

// CreateTestReview inserts a review row directly and returns it
func CreateTestReview(t *testing.T, conn *gorm.DB, text, aircraftType, route, sentiment string) models.Review {
	t.Helper()

	now := time.Now().UTC()
	review := models.Review{
		Ref:          ident.ReviewRef(text, now),
		Text:         text,
		AircraftType: aircraftType,
		Route:        route,
		Sentiment:    sentiment,
		CreatedAt:    now,
	}
	if err := conn.Create(&review).Error; err != nil {
		t.Fatalf("Failed to create test review: %v", err)
	}

	return review
}

// CountReviews returns the number of stored reviews
func CountReviews(t *testing.T, conn *gorm.DB) int64 {
	t.Helper()

	var n int64
	if err := conn.Model(&models.Review{}).Count(&n).Error; err != nil {
		t.Fatalf("Failed to count reviews: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var raw []byte
		if s, ok := body.(string); ok {
			raw = []byte(s)
		} else {
			raw, _ = json.Marshal(body)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
