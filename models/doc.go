// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Review: one analyzed airline review, stored in the reviews table

Review is a gorm model. Its JSON form uses the camelCase keys the web page
expects (reviewId, aircraftType).

# Request Types

  - AnalyzeRequest: text, aircraftType, route

# Response Types

  - AnalyzeResponse: reviewId, ref, sentiment, score, text, aircraftType, route, createdAt
  - MetricsResponse: accuracy, precision, recall, f1, samples, labels
  - ErrorResponse: error, message

# Constants

Sentiment labels:

	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"

Field limits:

	MaxTextLength         = 1000
	MaxAircraftTypeLength = 100
	MaxRouteLength        = 100
*/
package models
