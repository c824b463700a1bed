package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"bizclean/pkg/logger"
)

type Config struct {
	Port string

	UploadDir  string
	CleanedDir string

	MaxUploadSize int

	CORSAllowedOrigins []string

	RequestTimeout time.Duration

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	Log *logger.Logger
}

func Load(serviceName string) *Config {
	cfg := &Config{
		Port: getEnvStr(EnvPort, DefaultPort),

		UploadDir:  getEnvStr(EnvUploadDir, DefaultUploadDir),
		CleanedDir: getEnvStr(EnvCleanedDir, DefaultCleanedDir),

		MaxUploadSize: getEnvNum(EnvMaxUploadSize, DefaultMaxUploadSize),

		CORSAllowedOrigins: getEnvList(EnvCORSAllowedOrigins, DefaultCORSAllowedOrigins),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.FormatJSON,
			AddSource: true,
			Service:   serviceName,
		}),
	}

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.UploadDir == "" {
		errs = append(errs, "UploadDir must not be empty")
	}
	if cfg.CleanedDir == "" {
		errs = append(errs, "CleanedDir must not be empty")
	}

	if cfg.MaxUploadSize < 1 {
		errs = append(errs, fmt.Sprintf("MaxUploadSize must be positive, got: %d", cfg.MaxUploadSize))
	}

	if len(cfg.CORSAllowedOrigins) == 0 {
		errs = append(errs, "CORSAllowedOrigins must not be empty")
	}

	if cfg.RequestTimeout < time.Second {
		errs = append(errs, fmt.Sprintf("RequestTimeout must be at least 1s, got: %s", cfg.RequestTimeout))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}

func (cfg *Config) LogConfiguration() {
	cfg.Log.Info("Configuration loaded",
		"port", cfg.Port,
		"upload_dir", cfg.UploadDir,
		"cleaned_dir", cfg.CleanedDir,
		"max_upload_size", cfg.MaxUploadSize,
		"cors_allowed_origins", cfg.CORSAllowedOrigins,
		"request_timeout", cfg.RequestTimeout,
	)
}

func getEnvStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key, fallback string) []string {
	raw := getEnvStr(key, fallback)

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
