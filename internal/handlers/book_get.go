package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/akomarov/bookshelf/internal/models"
)

// BookGetter defines the interface that the book service must implement.
type BookGetter interface {
	GetByID(ctx context.Context, bookID uuid.UUID) (*models.BookDB, error)
}

// NewBookGetHandler returns a single catalog entry. Reading is public.
// @Summary Get a book
// @Tags books
// @Produce json
// @Param id path string true "Book id"
// @Success 200 {object} models.BookDB "Book"
// @Failure 404 {object} handlers.ErrorResponse "Book not found"
// @Router /books/{id} [get]
func NewBookGetHandler(svc BookGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		book, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, book)
	}
}
