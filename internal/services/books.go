package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/akomarov/bookshelf/internal/logger"
	"github.com/akomarov/bookshelf/internal/models"
)

// BookReader defines read-only operations for books.
type BookReader interface {
	List(ctx context.Context) ([]models.BookDB, error)
	GetByID(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error)
}

// BookWriter defines write operations for books.
type BookWriter interface {
	Create(ctx context.Context, title, author string, description *string, createdBy uuid.UUID) (*models.BookDB, error)
	Update(ctx context.Context, bookID uuid.UUID, title, author, description *string) (*models.BookDB, error)
	Delete(ctx context.Context, bookID uuid.UUID) error
}

// BookService exposes ownership-gated catalog operations and publishes
// change events.
type BookService struct {
	reader      BookReader
	writer      BookWriter
	kafkaWriter KafkaWriter
}

// NewBookService creates a new BookService.
func NewBookService(reader BookReader, writer BookWriter, kafkaWriter KafkaWriter) *BookService {
	return &BookService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// List returns all books. Listing is public.
func (svc *BookService) List(ctx context.Context) ([]models.BookDB, error) {
	return svc.reader.List(ctx)
}

func (svc *BookService) GetByID(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error) {
	book, err := svc.reader.GetByID(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to get book", "book_id", bookID, "err", err)
		return nil, err
	}
	if book == nil {
		return nil, ErrNotFound
	}
	return book, nil
}

// Create adds a book owned by the authenticated actor. The owner is always
// stamped from actorID, never from client input.
func (svc *BookService) Create(ctx context.Context, actorID uuid.UUID, title, author string, description *string) (*models.BookDB, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(author) == "" {
		return nil, fmt.Errorf("%w: author is required", ErrValidation)
	}

	book, err := svc.writer.Create(ctx, title, author, description, actorID)
	if err != nil {
		logger.Log.Errorw("failed to create book", "actor_id", actorID, "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, "book", "created", book.BookID, actorID)
	return book, nil
}

// Update applies the allowlisted mutable fields after the ownership check.
// Lookup runs first: a missing book is ErrNotFound, never ErrForbidden.
func (svc *BookService) Update(ctx context.Context, actorID, bookID uuid.UUID, title, author, description *string) (*models.BookDB, error) {
	book, err := svc.reader.GetByID(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to load book for update", "book_id", bookID, "err", err)
		return nil, err
	}
	if book == nil {
		return nil, ErrNotFound
	}
	if book.CreatedBy != actorID {
		logger.Log.Errorw("book update rejected", "book_id", bookID, "owner", book.CreatedBy, "actor_id", actorID)
		return nil, ErrForbidden
	}

	if title != nil && strings.TrimSpace(*title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	if author != nil && strings.TrimSpace(*author) == "" {
		return nil, fmt.Errorf("%w: author must not be empty", ErrValidation)
	}

	updated, err := svc.writer.Update(ctx, bookID, title, author, description)
	if err != nil {
		logger.Log.Errorw("failed to update book", "book_id", bookID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}

	publishEvent(ctx, svc.kafkaWriter, "book", "updated", bookID, actorID)
	return updated, nil
}

// Delete removes a book after the ownership check. Attached PDFs keep
// their rows with a nulled book reference.
func (svc *BookService) Delete(ctx context.Context, actorID, bookID uuid.UUID) error {
	book, err := svc.reader.GetByID(ctx, bookID)
	if err != nil {
		logger.Log.Errorw("failed to load book for delete", "book_id", bookID, "err", err)
		return err
	}
	if book == nil {
		return ErrNotFound
	}
	if book.CreatedBy != actorID {
		logger.Log.Errorw("book delete rejected", "book_id", bookID, "owner", book.CreatedBy, "actor_id", actorID)
		return ErrForbidden
	}

	if err := svc.writer.Delete(ctx, bookID); err != nil {
		logger.Log.Errorw("failed to delete book", "book_id", bookID, "err", err)
		return err
	}

	publishEvent(ctx, svc.kafkaWriter, "book", "deleted", bookID, actorID)
	return nil
}
