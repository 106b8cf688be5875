package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/akomarov/bookshelf/internal/middlewares"
	"github.com/akomarov/bookshelf/internal/models"
)

// BookUpdater defines the interface that the book service must implement.
type BookUpdater interface {
	Update(ctx context.Context, actorID, bookID uuid.UUID, title, author, description *string) (*models.BookDB, error)
}

// BookUpdateRequest represents the JSON body for book updates.
// Absent fields are left unchanged.
// swagger:model BookUpdateRequest
type BookUpdateRequest struct {
	// Title
	// example: Atlas, Second Edition
	Title *string `json:"title,omitempty"`

	// Author
	// example: Smith
	Author *string `json:"author,omitempty"`

	// Description
	// example: Revised and expanded
	Description *string `json:"description,omitempty"`
}

// NewBookUpdateHandler updates a book owned by the caller.
// @Summary Update a book
// @Description Applies the allowlisted mutable fields. Only the owner may update; a missing book is 404 before any ownership check.
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Book id"
// @Param bookUpdateRequest body handlers.BookUpdateRequest true "Book update request"
// @Success 200 {object} models.BookDB "Updated book"
// @Failure 400 {object} handlers.ErrorResponse "Empty title or author"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 403 {object} handlers.ErrorResponse "Caller is not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Book not found"
// @Router /books/{id} [put]
func NewBookUpdateHandler(svc BookUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.GetUserFromContext(r.Context())

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req BookUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		book, err := svc.Update(r.Context(), user.UserID, id, req.Title, req.Author, req.Description)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, book)
	}
}
