package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/akomarov/bookshelf/internal/middlewares"
	"github.com/akomarov/bookshelf/internal/models"
)

// UserUpdater defines the interface that the user service must implement.
type UserUpdater interface {
	Update(ctx context.Context, actorID, userID uuid.UUID, displayName, firstName, lastName *string) (*models.UserDB, error)
}

// UserUpdateRequest represents the JSON body for profile updates.
// Email and external id are immutable and not accepted here.
// swagger:model UserUpdateRequest
type UserUpdateRequest struct {
	// Display name
	// example: Johnny
	DisplayName *string `json:"display_name,omitempty"`

	// Given name
	// example: John
	FirstName *string `json:"first_name,omitempty"`

	// Family name
	// example: Doe
	LastName *string `json:"last_name,omitempty"`
}

// NewUserUpdateHandler updates the caller's own profile fields.
// @Summary Update a user profile
// @Description Applies the allowlisted profile fields. Users may only update their own profile.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Param userUpdateRequest body handlers.UserUpdateRequest true "Profile update request"
// @Success 200 {object} models.UserDB "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Failure 403 {object} handlers.ErrorResponse "Not the caller's profile"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [put]
func NewUserUpdateHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := middlewares.GetUserFromContext(r.Context())

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req UserUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := svc.Update(r.Context(), actor.UserID, id, req.DisplayName, req.FirstName, req.LastName)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
