package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/akomarov/bookshelf/internal/logger"
	"github.com/akomarov/bookshelf/internal/models"
)

type BookPdfReadRepository struct {
	db *sqlx.DB
}

func NewBookPdfReadRepository(db *sqlx.DB) *BookPdfReadRepository {
	return &BookPdfReadRepository{db: db}
}

func (r *BookPdfReadRepository) List(ctx context.Context) ([]models.BookPdfDB, error) {
	const query = `
		SELECT pdf_id, book_id, filename, filepath, uploaded_by, created_at
		FROM book_pdfs
		ORDER BY created_at
	`

	pdfs := []models.BookPdfDB{}
	err := r.db.SelectContext(ctx, &pdfs, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(pdfs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return pdfs, nil
}

func (r *BookPdfReadRepository) GetByID(ctx context.Context, pdfID uuid.UUID) (*models.BookPdfDB, error) {
	const query = `
		SELECT pdf_id, book_id, filename, filepath, uploaded_by, created_at
		FROM book_pdfs
		WHERE pdf_id = $1
	`

	var pdf models.BookPdfDB
	err := r.db.GetContext(ctx, &pdf, query, pdfID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{pdfID},
		"result", pdf,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &pdf, nil
}

type BookPdfWriteRepository struct {
	db *sqlx.DB
}

func NewBookPdfWriteRepository(db *sqlx.DB) *BookPdfWriteRepository {
	return &BookPdfWriteRepository{db: db}
}

func (r *BookPdfWriteRepository) Create(ctx context.Context, bookID *uuid.UUID, filename, filepath string, uploadedBy uuid.UUID) (*models.BookPdfDB, error) {
	const query = `
		INSERT INTO book_pdfs (book_id, filename, filepath, uploaded_by, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING pdf_id, book_id, filename, filepath, uploaded_by, created_at
	`
	args := []any{bookID, filename, filepath, uploadedBy}

	var pdf models.BookPdfDB
	err := r.db.GetContext(ctx, &pdf, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", pdf,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &pdf, nil
}

// UpdateFilename is the only metadata mutation: book association, storage
// path and uploader are immutable after upload.
func (r *BookPdfWriteRepository) UpdateFilename(ctx context.Context, pdfID uuid.UUID, filename string) (*models.BookPdfDB, error) {
	const query = `
		UPDATE book_pdfs
		SET filename = $2
		WHERE pdf_id = $1
		RETURNING pdf_id, book_id, filename, filepath, uploaded_by, created_at
	`
	args := []any{pdfID, filename}

	var pdf models.BookPdfDB
	err := r.db.GetContext(ctx, &pdf, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", pdf,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &pdf, nil
}

func (r *BookPdfWriteRepository) Delete(ctx context.Context, pdfID uuid.UUID) error {
	const query = `DELETE FROM book_pdfs WHERE pdf_id = $1`

	res, err := r.db.ExecContext(ctx, query, pdfID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{pdfID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
