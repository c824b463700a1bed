package config

const (
	EnvPort     = "PORT"
	EnvLogLevel = "LOG_LEVEL"

	EnvUploadDir  = "UPLOAD_DIR"
	EnvCleanedDir = "CLEANED_DIR"

	EnvMaxUploadSize = "MAX_UPLOAD_SIZE"

	EnvCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"

	EnvRequestTimeout = "REQUEST_TIMEOUT"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)
