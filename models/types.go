package models

import "time"

// Sentiment label constants
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Field limits enforced on /analyze
const (
	MaxTextLength         = 1000
	MaxAircraftTypeLength = 100
	MaxRouteLength        = 100
)

// Labels lists every sentiment label in reporting order.
var Labels = []string{SentimentPositive, SentimentNegative, SentimentNeutral}

// IsValidSentiment reports whether s is one of the known labels.
func IsValidSentiment(s string) bool {
	switch s {
	case SentimentPositive, SentimentNegative, SentimentNeutral:
		return true
	}
	return false
}

// Domain types

type Review struct {
	ID           uint      `json:"reviewId" gorm:"primaryKey;autoIncrement"`
	Ref          string    `json:"ref" gorm:"size:8;index"`
	Text         string    `json:"text" gorm:"size:1000;not null"`
	AircraftType string    `json:"aircraftType" gorm:"size:100;not null"`
	Route        string    `json:"route" gorm:"size:100;not null"`
	Sentiment    string    `json:"sentiment" gorm:"size:8;not null;index"`
	Score        float64   `json:"score"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (Review) TableName() string {
	return "reviews"
}

// Request types

type AnalyzeRequest struct {
	Text         string `json:"text"`
	AircraftType string `json:"aircraftType"`
	Route        string `json:"route"`
}

// Response types

type AnalyzeResponse struct {
	ReviewID     uint      `json:"reviewId"`
	Ref          string    `json:"ref"`
	Sentiment    string    `json:"sentiment"`
	Score        float64   `json:"score"`
	Text         string    `json:"text"`
	AircraftType string    `json:"aircraftType"`
	Route        string    `json:"route"`
	CreatedAt    time.Time `json:"createdAt"`
}

// LabelMetrics holds one-vs-rest scores for a single label
type LabelMetrics struct {
	Label     string  `json:"label"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Support   int     `json:"support"`
}

type MetricsResponse struct {
	Accuracy  float64        `json:"accuracy"`
	Precision float64        `json:"precision"`
	Recall    float64        `json:"recall"`
	F1        float64        `json:"f1"`
	Samples   int            `json:"samples"`
	Labels    []LabelMetrics `json:"labels"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
