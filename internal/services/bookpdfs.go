package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/akomarov/bookshelf/internal/logger"
	"github.com/akomarov/bookshelf/internal/models"
)

// pdfContentType is the only accepted media type for uploads.
const pdfContentType = "application/pdf"

// pdfMagic is the signature every PDF file starts with.
var pdfMagic = []byte("%PDF-")

// BookPdfReader defines read-only operations for PDF metadata.
type BookPdfReader interface {
	List(ctx context.Context) ([]models.BookPdfDB, error)
	GetByID(ctx context.Context, pdfID uuid.UUID) (*models.BookPdfDB, error)
}

// BookPdfWriter defines write operations for PDF metadata.
type BookPdfWriter interface {
	Create(ctx context.Context, bookID *uuid.UUID, filename, filepath string, uploadedBy uuid.UUID) (*models.BookPdfDB, error)
	UpdateFilename(ctx context.Context, pdfID uuid.UUID, filename string) (*models.BookPdfDB, error)
	Delete(ctx context.Context, pdfID uuid.UUID) error
}

// BookGetter checks that a referenced book exists.
type BookGetter interface {
	GetByID(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error)
}

// FileStore persists and serves file blobs under opaque paths.
type FileStore interface {
	Save(r io.Reader) (string, error)
	Open(path string) (io.ReadCloser, error)
	Remove(path string) error
}

// BookPdfService exposes upload, download and uploader-gated metadata
// operations and publishes change events.
type BookPdfService struct {
	reader      BookPdfReader
	writer      BookPdfWriter
	books       BookGetter
	files       FileStore
	kafkaWriter KafkaWriter
}

// NewBookPdfService creates a new BookPdfService.
func NewBookPdfService(reader BookPdfReader, writer BookPdfWriter, books BookGetter, files FileStore, kafkaWriter KafkaWriter) *BookPdfService {
	return &BookPdfService{
		reader:      reader,
		writer:      writer,
		books:       books,
		files:       files,
		kafkaWriter: kafkaWriter,
	}
}

// List returns all PDF metadata records. Listing is public.
func (svc *BookPdfService) List(ctx context.Context) ([]models.BookPdfDB, error) {
	return svc.reader.List(ctx)
}

func (svc *BookPdfService) GetByID(ctx context.Context, pdfID uuid.UUID) (*models.BookPdfDB, error) {
	pdf, err := svc.reader.GetByID(ctx, pdfID)
	if err != nil {
		logger.Log.Errorw("failed to get pdf", "pdf_id", pdfID, "err", err)
		return nil, err
	}
	if pdf == nil {
		return nil, ErrNotFound
	}
	return pdf, nil
}

// Upload validates and persists a PDF. Validation runs before any file or
// metadata write: wrong content type is ErrValidation, an unknown book_id
// is ErrInvalidReference. The uploader is stamped from the actor, and the
// storage path is server-assigned. If the metadata insert fails after the
// file write, the blob is removed best-effort.
func (svc *BookPdfService) Upload(ctx context.Context, actorID uuid.UUID, bookID *uuid.UUID, filename, contentType string, file io.Reader) (*models.BookPdfDB, error) {
	if contentType != pdfContentType {
		return nil, fmt.Errorf("%w: content type %q is not %s", ErrValidation, contentType, pdfContentType)
	}
	if strings.TrimSpace(filename) == "" {
		return nil, fmt.Errorf("%w: filename is required", ErrValidation)
	}

	head := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(file, head); err != nil || !bytes.Equal(head, pdfMagic) {
		return nil, fmt.Errorf("%w: file content is not a PDF", ErrValidation)
	}
	content := io.MultiReader(bytes.NewReader(head), file)

	if bookID != nil {
		book, err := svc.books.GetByID(ctx, *bookID)
		if err != nil {
			logger.Log.Errorw("failed to check referenced book", "book_id", bookID, "err", err)
			return nil, err
		}
		if book == nil {
			return nil, fmt.Errorf("%w: book %s", ErrInvalidReference, bookID)
		}
	}

	path, err := svc.files.Save(content)
	if err != nil {
		logger.Log.Errorw("failed to store pdf file", "filename", filename, "err", err)
		return nil, err
	}

	pdf, err := svc.writer.Create(ctx, bookID, filename, path, actorID)
	if err != nil {
		logger.Log.Errorw("failed to save pdf metadata", "filename", filename, "err", err)
		if rmErr := svc.files.Remove(path); rmErr != nil {
			logger.Log.Errorw("failed to clean up orphaned file", "path", path, "err", rmErr)
		}
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, "book_pdf", "created", pdf.PdfID, actorID)
	return pdf, nil
}

// Download returns the metadata record and a reader over the stored file.
// The caller closes the reader.
func (svc *BookPdfService) Download(ctx context.Context, pdfID uuid.UUID) (*models.BookPdfDB, io.ReadCloser, error) {
	pdf, err := svc.GetByID(ctx, pdfID)
	if err != nil {
		return nil, nil, err
	}

	f, err := svc.files.Open(pdf.Filepath)
	if err != nil {
		logger.Log.Errorw("failed to open stored pdf", "pdf_id", pdfID, "path", pdf.Filepath, "err", err)
		return nil, nil, err
	}

	return pdf, f, nil
}

// UpdateFilename changes the reported filename. Only the uploader may do
// so; lookup runs before the ownership comparison.
func (svc *BookPdfService) UpdateFilename(ctx context.Context, actorID, pdfID uuid.UUID, filename string) (*models.BookPdfDB, error) {
	pdf, err := svc.reader.GetByID(ctx, pdfID)
	if err != nil {
		logger.Log.Errorw("failed to load pdf for update", "pdf_id", pdfID, "err", err)
		return nil, err
	}
	if pdf == nil {
		return nil, ErrNotFound
	}
	if pdf.UploadedBy != actorID {
		logger.Log.Errorw("pdf update rejected", "pdf_id", pdfID, "uploader", pdf.UploadedBy, "actor_id", actorID)
		return nil, ErrForbidden
	}
	if strings.TrimSpace(filename) == "" {
		return nil, fmt.Errorf("%w: filename must not be empty", ErrValidation)
	}

	updated, err := svc.writer.UpdateFilename(ctx, pdfID, filename)
	if err != nil {
		logger.Log.Errorw("failed to update pdf", "pdf_id", pdfID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	publishEvent(ctx, svc.kafkaWriter, "book_pdf", "updated", pdfID, actorID)
	return updated, nil
}

// Delete removes the metadata record after the uploader check; blob
// removal is best-effort.
func (svc *BookPdfService) Delete(ctx context.Context, actorID, pdfID uuid.UUID) error {
	pdf, err := svc.reader.GetByID(ctx, pdfID)
	if err != nil {
		logger.Log.Errorw("failed to load pdf for delete", "pdf_id", pdfID, "err", err)
		return err
	}
	if pdf == nil {
		return ErrNotFound
	}
	if pdf.UploadedBy != actorID {
		logger.Log.Errorw("pdf delete rejected", "pdf_id", pdfID, "uploader", pdf.UploadedBy, "actor_id", actorID)
		return ErrForbidden
	}

	if err := svc.writer.Delete(ctx, pdfID); err != nil {
		logger.Log.Errorw("failed to delete pdf metadata", "pdf_id", pdfID, "err", err)
		return err
	}

	if err := svc.files.Remove(pdf.Filepath); err != nil {
		logger.Log.Errorw("failed to remove stored pdf file", "path", pdf.Filepath, "err", err)
	}

	publishEvent(ctx, svc.kafkaWriter, "book_pdf", "deleted", pdfID, actorID)
	return nil
}
