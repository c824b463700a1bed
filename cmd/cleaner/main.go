package main

import (
	"github.com/joho/godotenv"

	"bizclean/internal/cleaner/handler"
	"bizclean/internal/cleaner/service"
	"bizclean/internal/cleaner/storage"
	"bizclean/internal/cleaner/validator"
	"bizclean/pkg/app"
	"bizclean/pkg/config"
	"bizclean/pkg/normalizer"
)

const ServiceName = "cleaner"

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting cleaner service")

	store, err := storage.New(cfg.UploadDir, cfg.CleanedDir, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Could not prepare storage directories", "error", err)
	}

	cleanerService := initServices(cfg)

	serverApp := app.NewApplication(cfg)
	serverApp.SetApp(
		handler.NewHealthHandler(store, cfg.Log),
		handler.NewCleanerHandler(cleanerService, store, cfg.Log),
	)
	serverApp.Run()
}

func initServices(cfg *config.Config) service.CleanerService {
	recordValidator := validator.NewRecordValidator()
	transformer := normalizer.NewTransformer()

	cleanerService := service.NewCleanerService(transformer, recordValidator, cfg)

	cfg.Log.Info("Cleaner service initialized")
	return cleanerService
}
