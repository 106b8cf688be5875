package handlers

import (
	"context"
	"net/http"

	"github.com/akomarov/bookshelf/internal/models"
)

// PdfLister defines the interface that the pdf service must implement.
type PdfLister interface {
	List(ctx context.Context) ([]models.BookPdfDB, error)
}

// NewPdfListHandler returns all PDF metadata records. Listing is public.
// @Summary List uploaded PDFs
// @Tags book-pdfs
// @Produce json
// @Success 200 {array} models.BookPdfDB "PDF metadata list"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /book-pdfs [get]
func NewPdfListHandler(svc PdfLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pdfs, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, pdfs)
	}
}
