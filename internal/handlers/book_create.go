package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/akomarov/bookshelf/internal/middlewares"
	"github.com/akomarov/bookshelf/internal/models"
)

// BookCreator defines the interface that the book service must implement.
type BookCreator interface {
	Create(ctx context.Context, actorID uuid.UUID, title, author string, description *string) (*models.BookDB, error)
}

// BookCreateRequest represents the JSON body for book creation
// swagger:model BookCreateRequest
type BookCreateRequest struct {
	// Title
	// required: true
	// example: Atlas
	Title string `json:"title"`

	// Author
	// required: true
	// example: Smith
	Author string `json:"author"`

	// Description
	// example: A collection of maps
	Description *string `json:"description,omitempty"`
}

// NewBookCreateHandler creates a book owned by the caller.
// @Summary Create a book
// @Description Creates a catalog entry. The owner is stamped from the authenticated user, never from the payload.
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookCreateRequest body handlers.BookCreateRequest true "Book creation request"
// @Success 201 {object} models.BookDB "Created book"
// @Failure 400 {object} handlers.ErrorResponse "Missing title or author"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Router /books [post]
func NewBookCreateHandler(svc BookCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())

		var req BookCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		book, err := svc.Create(r.Context(), user.UserID, req.Title, req.Author, req.Description)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, book)
	}
}
