package handlers

import (
	"log/slog"
	"net/http"

	"fruitscan-backend/internal/dto"
	"fruitscan-backend/internal/media"
	"fruitscan-backend/internal/utils"
)

// maxUploadSize bounds the buffered part of a multipart upload.
const maxUploadSize = 32 << 20 // 32 MiB

// ScanHandler handles image upload, capture, and history requests
type ScanHandler struct {
	media *media.Service
	log   *slog.Logger
}

// NewScanHandler creates a new ScanHandler instance
func NewScanHandler(media *media.Service, log *slog.Logger) *ScanHandler {
	return &ScanHandler{media: media, log: log}
}

// Upload ingests an uploaded image and acknowledges success
// @Summary Upload and scan an image
// @Description Store the image, run the scan, and record the result
// @Tags scan
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} dto.UploadResponse "Image processed"
// @Failure 400 {object} dto.ErrorResponse "Missing image"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /upload [post]
func (h *ScanHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.ingest(w, r); !ok {
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.UploadResponse{
		Message: "Image uploaded and processed successfully",
	})
}

// Capture ingests a camera capture and returns the scan result
// @Summary Capture and scan an image
// @Description Store the image, run the scan, and return the result
// @Tags scan
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} dto.CaptureResponse "Scan result"
// @Failure 400 {object} dto.ErrorResponse "Missing image"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /capture [post]
func (h *ScanHandler) Capture(w http.ResponseWriter, r *http.Request) {
	result, ok := h.ingest(w, r)
	if !ok {
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.CaptureResponse{ScanResult: result})
}

// ingest runs the shared pipeline for both entry points; upload and capture
// differ only in response shape.
func (h *ScanHandler) ingest(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Image file is required")
		return nil, false
	}
	defer file.Close()

	result, err := h.media.Ingest(r.Context(), file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		h.log.Error("image ingest failed", "filename", header.Filename, "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to upload and process image")
		return nil, false
	}
	return result, true
}

// History lists past scans
// @Summary List scan history
// @Description List all history entries, oldest first, with display timestamps
// @Tags scan
// @Produce json
// @Success 200 {array} models.HistoryEntry "History entries"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /history [get]
func (h *ScanHandler) History(w http.ResponseWriter, r *http.Request) {
	entries, err := h.media.ListHistory(r.Context())
	if err != nil {
		writeServiceError(w, h.log, "history listing failed", "Failed to get history", err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, entries)
}
