package service

import (
	"context"
	"errors"
	"net/http"

	cleanererrors "bizclean/internal/cleaner/errors"
	"bizclean/internal/cleaner/spreadsheet"
	"bizclean/internal/cleaner/validator"
	"bizclean/pkg/config"
	apperrors "bizclean/pkg/errors"
	"bizclean/pkg/model"
	"bizclean/pkg/normalizer"
)

type CleanerService interface {
	CleanRecord(ctx context.Context, rec *model.RawRecord) (*model.CleanedRecord, error)
	CleanWorkbook(ctx context.Context, inputPath, outputPath string) (int, error)
}

type cleanerService struct {
	transformer *normalizer.Transformer
	validator   *validator.RecordValidator
	cfg         *config.Config
}

func NewCleanerService(
	transformer *normalizer.Transformer,
	validator *validator.RecordValidator,
	cfg *config.Config,
) CleanerService {
	return &cleanerService{
		transformer: transformer,
		validator:   validator,
		cfg:         cfg,
	}
}

func (s *cleanerService) CleanRecord(ctx context.Context, rec *model.RawRecord) (*model.CleanedRecord, error) {
	if err := s.validator.Validate(rec); err != nil {
		s.cfg.Log.Warn("Record validation failed",
			"company_name_len", len(rec.CompanyName),
			"error", err,
		)
		return nil, apperrors.Validation("Record validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	cleaned := s.transformer.Transform(*rec)

	s.cfg.Log.Info("Record cleaned",
		"emails_found", len(cleaned.Emails),
		"address_parsed", cleaned.Street != nil,
	)
	return &cleaned, nil
}

// CleanWorkbook reads the source workbook, transforms every row and writes
// the cleaned workbook. Per-row failures degrade that row only; errors
// returned here are container-level (unreadable file, no sheet, write
// failure). Returns the number of rows processed.
func (s *cleanerService) CleanWorkbook(ctx context.Context, inputPath, outputPath string) (int, error) {
	records, err := spreadsheet.ReadRecords(inputPath)
	if err != nil {
		if errors.Is(err, cleanererrors.ErrNoSheet) {
			return 0, apperrors.InvalidInput("Workbook contains no sheets")
		}
		s.cfg.Log.Warn("Could not read workbook", "error", err)
		return 0, apperrors.Wrap(err, apperrors.CodeInvalidInput,
			"Could not read workbook", http.StatusBadRequest)
	}

	results := s.transformer.TransformRows(records)

	failed := 0
	for _, res := range results {
		if res.Failed {
			failed++
		}
	}

	if err := spreadsheet.WriteResults(outputPath, results); err != nil {
		return 0, apperrors.Internal("Could not write cleaned workbook", err)
	}

	s.cfg.Log.Info("Workbook cleaned",
		"rows", len(results),
		"failed_rows", failed,
	)
	return len(results), nil
}
