package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/akomarov/bookshelf/internal/middlewares"
)

// BookDeleter defines the interface that the book service must implement.
type BookDeleter interface {
	Delete(ctx context.Context, actorID, bookID uuid.UUID) error
}

// BookDeleteResponse confirms book removal
// swagger:model BookDeleteResponse
type BookDeleteResponse struct {
	// Success message
	// example: Book deleted
	Message string `json:"message"`
}

// NewBookDeleteHandler deletes a book owned by the caller.
// @Summary Delete a book
// @Description Removes the catalog entry immediately. Attached PDFs keep their rows with a nulled book reference.
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param id path string true "Book id"
// @Success 200 {object} handlers.BookDeleteResponse "Book deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Book not found"
// @Router /books/{id} [delete]
func NewBookDeleteHandler(svc BookDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), user.UserID, id); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, BookDeleteResponse{Message: "Book deleted"})
	}
}
