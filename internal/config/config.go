package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds CLI settings read from the environment.
type Config struct {
	LogLevel    string
	LogFormat   string
	PresetsPath string  // optional preset override file
	SchemeFile  string  // scheme file name inside a project directory
	MinPressure float64 // minimum residual network pressure, m
}

// Load reads an optional .env file (or the given files) and then the
// process environment. Variables already set in the environment win.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	minPressure, err := getEnvFloat("WATERSIZER_MIN_PRESSURE", 10)
	if err != nil {
		return nil, err
	}
	if minPressure < 0 {
		return nil, fmt.Errorf("WATERSIZER_MIN_PRESSURE must be >= 0, got %g", minPressure)
	}

	return &Config{
		LogLevel:    getEnv("WATERSIZER_LOG_LEVEL", "warn"),
		LogFormat:   getEnv("WATERSIZER_LOG_FORMAT", "text"),
		PresetsPath: os.Getenv("WATERSIZER_PRESETS"),
		SchemeFile:  getEnv("WATERSIZER_SCHEME_FILE", "scheme.yaml"),
		MinPressure: minPressure,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return f, nil
}
