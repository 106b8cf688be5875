package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/akomarov/bookshelf/internal/middlewares"
	"github.com/akomarov/bookshelf/internal/models"
)

// PdfUpdater defines the interface that the pdf service must implement.
type PdfUpdater interface {
	UpdateFilename(ctx context.Context, actorID, pdfID uuid.UUID, filename string) (*models.BookPdfDB, error)
}

// PdfUpdateRequest represents the JSON body for PDF metadata updates
// swagger:model PdfUpdateRequest
type PdfUpdateRequest struct {
	// New reported filename
	// required: true
	// example: atlas-2nd-edition.pdf
	Filename string `json:"filename"`
}

// NewPdfUpdateHandler renames an upload. Only the uploader may do so.
// @Summary Update PDF metadata
// @Tags book-pdfs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "PDF id"
// @Param pdfUpdateRequest body handlers.PdfUpdateRequest true "Metadata update request"
// @Success 200 {object} models.BookPdfDB "Updated metadata"
// @Failure 400 {object} handlers.ErrorResponse "Empty filename"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not the uploader"
// @Failure 404 {object} handlers.ErrorResponse "PDF not found"
// @Router /book-pdfs/{id} [put]
func NewPdfUpdateHandler(svc PdfUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req PdfUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		pdf, err := svc.UpdateFilename(r.Context(), user.UserID, id, req.Filename)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, pdf)
	}
}
