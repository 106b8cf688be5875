package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/akomarov/bookshelf/internal/middlewares"
	"github.com/akomarov/bookshelf/internal/models"
)

// maxUploadBytes caps the in-memory portion of multipart parsing.
const maxUploadBytes = 32 << 20

// PdfUploader defines the interface that the pdf service must implement.
type PdfUploader interface {
	Upload(ctx context.Context, actorID uuid.UUID, bookID *uuid.UUID, filename, contentType string, file io.Reader) (*models.BookPdfDB, error)
}

// NewPdfUploadHandler accepts a multipart PDF upload.
// @Summary Upload a PDF
// @Description Accepts a multipart form with a required "file" part (PDF only) and an optional "book_id" that must reference an existing book. The uploader is stamped from the authenticated user.
// @Tags book-pdfs
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "PDF file"
// @Param book_id formData string false "Associated book id"
// @Success 201 {object} models.BookPdfDB "Upload metadata"
// @Failure 400 {object} handlers.ErrorResponse "Missing file, wrong content type or unknown book_id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Router /book-pdfs [post]
func NewPdfUploadHandler(svc PdfUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			writeError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "No PDF file uploaded")
			return
		}
		defer file.Close()

		var bookID *uuid.UUID
		if raw := r.FormValue("book_id"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid book_id")
				return
			}
			bookID = &id
		}

		pdf, err := svc.Upload(r.Context(), user.UserID, bookID, header.Filename, header.Header.Get("Content-Type"), file)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, pdf)
	}
}
