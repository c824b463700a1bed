package config

import "time"

const (
	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultUploadDir  = "uploads"
	DefaultCleanedDir = "cleaned"

	DefaultMaxUploadSize = 10 * 1024 * 1024 // 10MB

	DefaultCORSAllowedOrigins = "*"

	DefaultRequestTimeout = 30 * time.Second

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 30 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second
)
