package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/akomarov/bookshelf/internal/models"
)

// PdfGetter defines the interface that the pdf service must implement.
type PdfGetter interface {
	GetByID(ctx context.Context, pdfID uuid.UUID) (*models.BookPdfDB, error)
}

// PdfResponse is the metadata record plus its download link
// swagger:model PdfResponse
type PdfResponse struct {
	models.BookPdfDB

	// Relative download URL
	// example: /book-pdfs/7b7bd357-3f5f-4f3c-a359-7fd13d5e9d55/download
	DownloadURL string `json:"download_url"`
}

// NewPdfGetHandler returns PDF metadata with a download URL. Reading is
// public; the download itself requires authentication.
// @Summary Get PDF metadata
// @Tags book-pdfs
// @Produce json
// @Param id path string true "PDF id"
// @Success 200 {object} handlers.PdfResponse "Metadata and download URL"
// @Failure 404 {object} handlers.ErrorResponse "PDF not found"
// @Router /book-pdfs/{id} [get]
func NewPdfGetHandler(svc PdfGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		pdf, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, PdfResponse{
			BookPdfDB:   *pdf,
			DownloadURL: fmt.Sprintf("/book-pdfs/%s/download", pdf.PdfID),
		})
	}
}
