package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

const (
	DefaultPort      = 8080
	DefaultSQLiteURL = "reviews.db"
	DefaultThreshold = 0.1
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	Threshold    float64
	Preprocess   bool
	LogLevel     slog.Level
}

// ParseFlags validates flags and fills unset values from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var threshold, preprocess, logLevel string

	fs := flag.NewFlagSet("flight-sentiment", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or SQLite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite, postgres or mysql)")

	// Classifier config
	fs.StringVar(&threshold, "threshold", "", "Polarity threshold for positive/negative labels")
	fs.StringVar(&preprocess, "preprocess", "", "Strip stop words before scoring (true/false)")

	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	cfg.DatabaseType = strings.ToLower(cfg.DatabaseType)
	switch cfg.DatabaseType {
	case "sqlite", "postgres", "mysql":
	default:
		return Config{}, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType != "sqlite" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = DefaultSQLiteURL
	}

	if threshold == "" {
		threshold = os.Getenv("SENTIMENT_THRESHOLD")
	}
	cfg.Threshold = DefaultThreshold
	if threshold != "" {
		v, err := strconv.ParseFloat(threshold, 64)
		if err != nil {
			return Config{}, errors.New("invalid sentiment threshold")
		}
		cfg.Threshold = v
	}
	if cfg.Threshold < 0 || cfg.Threshold >= 1 {
		return Config{}, fmt.Errorf("sentiment threshold %v must be in [0, 1)", cfg.Threshold)
	}

	if preprocess == "" {
		preprocess = os.Getenv("SENTIMENT_PREPROCESS")
	}
	cfg.Preprocess = true
	if preprocess != "" {
		v, err := strconv.ParseBool(preprocess)
		if err != nil {
			return Config{}, errors.New("invalid preprocess flag")
		}
		cfg.Preprocess = v
	}

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	if logLevel != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return Config{}, fmt.Errorf("invalid log level %q", logLevel)
		}
	}

	return cfg, nil
}
