package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"bizclean/internal/cleaner/service"
	"bizclean/internal/cleaner/storage"
	httputil "bizclean/pkg/http"
	"bizclean/pkg/logger"
	"bizclean/pkg/model"
)

type CleanerHandler struct {
	service service.CleanerService
	store   *storage.Store
	log     *logger.Logger
}

func NewCleanerHandler(service service.CleanerService, store *storage.Store, log *logger.Logger) *CleanerHandler {
	return &CleanerHandler{
		service: service,
		store:   store,
		log:     log,
	}
}

func (h *CleanerHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/clean", h.Clean)
	router.POST("/api/v1/clean/upload", h.Upload)
}

// Clean normalizes a single record supplied as a JSON body and returns the
// cleaned record with the four address fields individually nullable.
func (h *CleanerHandler) Clean(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var rec model.RawRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		status := http.StatusBadRequest
		message := "Invalid request body"

		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			status = http.StatusRequestEntityTooLarge
			message = "Request body too large"
		}

		if writeErr := httputil.WriteJSON(w, status, httputil.ErrorResponse{
			Error: message,
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Clean", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	cleaned, err := h.service.CleanRecord(r.Context(), &rec)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Clean", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, cleaned); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Clean", "operation", "WriteJSON", "error", err)
	}
}
