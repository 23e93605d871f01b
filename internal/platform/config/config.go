package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Server captures process level configuration.
type Server struct {
	Addr             string
	RestrictionsFile string
	IndexCapacity    int
	LogLevel         string
	ShutdownTimeout  time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	cfg := Server{
		Addr:             os.Getenv("TCF_ADDR"),
		RestrictionsFile: os.Getenv("TCF_RESTRICTIONS_FILE"),
		LogLevel:         os.Getenv("TCF_LOG_LEVEL"),
		ShutdownTimeout:  10 * time.Second,
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	if v := os.Getenv("TCF_INDEX_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Server{}, fmt.Errorf("TCF_INDEX_CAPACITY must be a non-negative integer: %q", v)
		}
		cfg.IndexCapacity = n
	}

	if v := os.Getenv("TCF_SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Server{}, fmt.Errorf("TCF_SHUTDOWN_TIMEOUT must be a positive duration: %q", v)
		}
		cfg.ShutdownTimeout = d
	}

	return cfg, nil
}
