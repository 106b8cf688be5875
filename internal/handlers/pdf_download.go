package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/akomarov/bookshelf/internal/logger"
	"github.com/akomarov/bookshelf/internal/models"
)

// PdfDownloader defines the interface that the pdf service must implement.
type PdfDownloader interface {
	Download(ctx context.Context, pdfID uuid.UUID) (*models.BookPdfDB, io.ReadCloser, error)
}

// NewPdfDownloadHandler streams the stored file with the original filename.
// @Summary Download a PDF
// @Tags book-pdfs
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "PDF id"
// @Success 200 {file} binary "PDF content"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 404 {object} handlers.ErrorResponse "PDF not found"
// @Router /book-pdfs/{id}/download [get]
func NewPdfDownloadHandler(svc PdfDownloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		pdf, f, err := svc.Download(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		defer f.Close()

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdf.Filename))

		if _, err := io.Copy(w, f); err != nil {
			logger.Log.Errorw("pdf stream interrupted", "pdf_id", id, "err", err)
		}
	}
}
