// Package config loads runtime settings from a .env file and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/df07/go-whitted-raytracer/pkg/export"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config holds settings shared by the CLI and the web server
type Config struct {
	OutputDir      string
	RecursionLimit int
	Port           int

	S3AccessKey   string
	S3SecretKey   string
	S3Endpoint    string
	S3Region      string
	S3Bucket      string
	UploadTimeout time.Duration
}

// Load reads <rootDir>/.env if it exists, then the environment. Variables
// already set in the environment win over the file.
func Load(rootDir string) (Config, error) {
	if err := godotenv.Load(filepath.Join(rootDir, ".env")); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("reading .env: %w", err)
	}

	cfg := Config{
		OutputDir:   getEnv("RAYTRACER_OUTPUT_DIR", "output"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
	}

	var err error
	if cfg.RecursionLimit, err = getEnvInt("RAYTRACER_RECURSION_LIMIT", scene.DefaultRecursionLimit); err != nil {
		return Config{}, err
	}
	if cfg.RecursionLimit < 0 {
		return Config{}, fmt.Errorf("RAYTRACER_RECURSION_LIMIT must not be negative, got %d", cfg.RecursionLimit)
	}
	if cfg.Port, err = getEnvInt("RAYTRACER_PORT", 8080); err != nil {
		return Config{}, err
	}
	if cfg.UploadTimeout, err = getEnvDuration("UPLOAD_TIMEOUT", export.DefaultUploadTimeout); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// UploadEnabled reports whether enough S3 settings are present to upload
func (c Config) UploadEnabled() bool {
	return c.S3Bucket != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

// S3 returns the uploader settings
func (c Config) S3() export.S3Config {
	return export.S3Config{
		AccessKey: c.S3AccessKey,
		SecretKey: c.S3SecretKey,
		Endpoint:  c.S3Endpoint,
		Region:    c.S3Region,
		Bucket:    c.S3Bucket,
		Timeout:   c.UploadTimeout,
	}
}

// Helper to get environment variables with a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}

// getEnvDuration accepts Go durations ("30s") or a bare number of seconds
func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return d, nil
}
