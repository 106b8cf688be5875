package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/akomarov/bookshelf/internal/middlewares"
)

// PdfDeleter defines the interface that the pdf service must implement.
type PdfDeleter interface {
	Delete(ctx context.Context, actorID, pdfID uuid.UUID) error
}

// PdfDeleteResponse confirms PDF removal
// swagger:model PdfDeleteResponse
type PdfDeleteResponse struct {
	// Success message
	// example: PDF deleted
	Message string `json:"message"`
}

// NewPdfDeleteHandler removes an upload. Only the uploader may do so.
// @Summary Delete a PDF
// @Tags book-pdfs
// @Produce json
// @Security BearerAuth
// @Param id path string true "PDF id"
// @Success 200 {object} handlers.PdfDeleteResponse "PDF deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not the uploader"
// @Failure 404 {object} handlers.ErrorResponse "PDF not found"
// @Router /book-pdfs/{id} [delete]
func NewPdfDeleteHandler(svc PdfDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), user.UserID, id); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, PdfDeleteResponse{Message: "PDF deleted"})
	}
}
