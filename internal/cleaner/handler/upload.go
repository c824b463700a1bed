package handler

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/julienschmidt/httprouter"

	apperrors "bizclean/pkg/errors"
	httputil "bizclean/pkg/http"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Upload accepts an .xlsx workbook in the multipart field "file", cleans it
// row by row and streams the rebuilt workbook back as a download. The format
// check runs before any row processing; both the stored upload and the
// cleaned output are removed once the response is sent.
func (h *CleanerHandler) Upload(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	file, header, err := r.FormFile("file")
	if err != nil {
		status := http.StatusBadRequest
		message := "Multipart form must include a \"file\" field"

		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			status = http.StatusRequestEntityTooLarge
			message = "Uploaded file too large"
		}

		if writeErr := httputil.WriteJSON(w, status, httputil.ErrorResponse{
			Error: message,
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Upload", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}
	defer file.Close()

	filename := filepath.Base(header.Filename)
	if !strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		h.log.Warn("Unsupported upload format", "filename", filename)
		if writeErr := httputil.WriteError(w, apperrors.UnsupportedFormat("Only .xlsx files are supported")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Upload", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	inputPath, err := h.store.SaveUpload(filename, file)
	if err != nil {
		h.log.Error("Could not store uploaded workbook", "filename", filename, "error", err)
		if writeErr := httputil.WriteJSON(w, http.StatusInternalServerError, httputil.ErrorResponse{
			Error: "Could not store uploaded file",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Upload", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}
	defer h.store.Remove(inputPath)

	outputPath := h.store.CleanedPath(filename)
	defer h.store.Remove(outputPath)

	rows, err := h.service.CleanWorkbook(r.Context(), inputPath, outputPath)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Upload", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	h.log.Info("Workbook upload cleaned", "filename", filename, "rows", rows)

	downloadName := "cleaned_" + filename
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	http.ServeFile(w, r, outputPath)
}
