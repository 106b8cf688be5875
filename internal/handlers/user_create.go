package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akomarov/bookshelf/internal/models"
)

// UserCreator defines the interface that the user service must implement.
type UserCreator interface {
	Create(ctx context.Context, googleID, displayName, email, firstName, lastName *string) (*models.UserDB, error)
}

// UserCreateRequest represents the JSON body for administrative user creation
// swagger:model UserCreateRequest
type UserCreateRequest struct {
	// External identity id, optional for non-federated users
	// example: 103547991597142817347
	GoogleID *string `json:"google_id,omitempty"`

	// Display name
	// example: John Doe
	DisplayName *string `json:"display_name,omitempty"`

	// Email, unique when present
	// example: john@example.com
	Email *string `json:"email,omitempty"`

	// Given name
	// example: John
	FirstName *string `json:"first_name,omitempty"`

	// Family name
	// example: Doe
	LastName *string `json:"last_name,omitempty"`
}

// NewUserCreateHandler creates a user record directly, bypassing federated
// login.
// @Summary Create a user
// @Description Administrative creation of a user record. Duplicate email or external id is rejected.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userCreateRequest body handlers.UserCreateRequest true "User creation request"
// @Success 201 {object} models.UserDB "Created user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid body or duplicate email"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Router /users [post]
func NewUserCreateHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		user, err := svc.Create(r.Context(), req.GoogleID, req.DisplayName, req.Email, req.FirstName, req.LastName)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}
