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

type BookReadRepository struct {
	db *sqlx.DB
}

func NewBookReadRepository(db *sqlx.DB) *BookReadRepository {
	return &BookReadRepository{db: db}
}

func (r *BookReadRepository) List(ctx context.Context) ([]models.BookDB, error) {
	const query = `
		SELECT book_id, title, author, description, created_by, created_at, updated_at
		FROM books
		ORDER BY created_at
	`

	books := []models.BookDB{}
	err := r.db.SelectContext(ctx, &books, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(books),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return books, nil
}

func (r *BookReadRepository) GetByID(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error) {
	const query = `
		SELECT book_id, title, author, description, created_by, created_at, updated_at
		FROM books
		WHERE book_id = $1
	`

	var book models.BookDB
	err := r.db.GetContext(ctx, &book, query, bookID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{bookID},
		"result", book,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &book, nil
}

type BookWriteRepository struct {
	db *sqlx.DB
}

func NewBookWriteRepository(db *sqlx.DB) *BookWriteRepository {
	return &BookWriteRepository{db: db}
}

func (r *BookWriteRepository) Create(ctx context.Context, title, author string, description *string, createdBy uuid.UUID) (*models.BookDB, error) {
	const query = `
		INSERT INTO books (title, author, description, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING book_id, title, author, description, created_by, created_at, updated_at
	`
	args := []any{title, author, description, createdBy}

	var book models.BookDB
	err := r.db.GetContext(ctx, &book, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", book,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &book, nil
}

// Update applies the allowlisted mutable fields only; created_by and
// timestamps are never taken from the caller.
func (r *BookWriteRepository) Update(ctx context.Context, bookID uuid.UUID, title, author, description *string) (*models.BookDB, error) {
	const query = `
		UPDATE books
		SET title = COALESCE($2, title),
		    author = COALESCE($3, author),
		    description = COALESCE($4, description),
		    updated_at = NOW()
		WHERE book_id = $1
		RETURNING book_id, title, author, description, created_by, created_at, updated_at
	`
	args := []any{bookID, title, author, description}

	var book models.BookDB
	err := r.db.GetContext(ctx, &book, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", book,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &book, nil
}

func (r *BookWriteRepository) Delete(ctx context.Context, bookID uuid.UUID) error {
	const query = `DELETE FROM books WHERE book_id = $1`

	res, err := r.db.ExecContext(ctx, query, bookID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{bookID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
