package handlers

import (
	"context"
	"net/http"

	"github.com/akomarov/bookshelf/internal/models"
)

// BookLister defines the interface that the book service must implement.
type BookLister interface {
	List(ctx context.Context) ([]models.BookDB, error)
}

// NewBookListHandler returns all catalog entries. Listing is public.
// @Summary List books
// @Description Returns all books in the catalog, including other users' entries.
// @Tags books
// @Produce json
// @Success 200 {array} models.BookDB "Book list"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /books [get]
func NewBookListHandler(svc BookLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		books, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, books)
	}
}
