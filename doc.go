// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Flight Sentiment server.

Flight Sentiment accepts airline reviews, labels each one positive,
negative, or neutral with a lexicon-based polarity score, stores it, and
serves the stored reviews as JSON, CSV, or an HTML page.

# Starting the Server

With no configuration the server listens on :8080 and stores reviews in
a local SQLite file:

	go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

A .env file in the working directory is loaded before flags are parsed.

# Configuration

  - PORT (-p): Server port (default: 8080)
  - DATABASE_TYPE (-t): sqlite, postgres, or mysql (default: sqlite)
  - DATABASE_URL (-d): DSN, or file path for SQLite (default: reviews.db)
  - SENTIMENT_THRESHOLD (-threshold): polarity cutoff in [0, 1) (default: 0.1)
  - SENTIMENT_PREPROCESS (-preprocess): strip stop words before scoring (default: true)
  - LOG_LEVEL (-log-level): debug, info, warn, error (default: info)

Flags take precedence over environment variables.

# Architecture

  - handlers: HTTP request handlers (analyze, reviews, download, metrics, page)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Request ids, recovery, CORS, logging, JSON helpers
  - models: Domain, request, and response types
  - sentiment: Text preprocessing and polarity classification
  - evaluation: Accuracy, precision, recall, and F1 over a labeled set
  - ident: Short content-derived review references
  - web: Embedded HTML template and static assets
  - db: Connection and schema migration
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
