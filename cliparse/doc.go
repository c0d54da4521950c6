// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - DatabaseType: sqlite, postgres, or mysql (default: sqlite)
  - DatabaseURL: DSN, or SQLite file path (default: reviews.db for sqlite)
  - Threshold: Polarity cutoff for positive/negative labels (default: 0.1)
  - Preprocess: Strip stop words before scoring (default: true)
  - LogLevel: slog level (default: info)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-threshold    Polarity threshold
	-preprocess   Stop-word removal (true/false)
	-log-level    Log level

# Environment Variables

Flags fall back to environment variables:

	PORT                 → -p
	DATABASE_URL         → -d
	DATABASE_TYPE        → -t
	SENTIMENT_THRESHOLD  → -threshold
	SENTIMENT_PREPROCESS → -preprocess
	LOG_LEVEL            → -log-level

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error when:

  - the port is not a number in 0..65535
  - the database type is unknown
  - postgres or mysql is selected without a database URL
  - the threshold is not a number in [0, 1)
  - preprocess is not a boolean
  - the log level is not one slog understands
*/
package cliparse
