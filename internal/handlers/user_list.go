package handlers

import (
	"context"
	"net/http"

	"github.com/akomarov/bookshelf/internal/models"
)

// UserLister defines the interface that the user service must implement.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// NewUserListHandler returns all users. Requires authentication.
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UserDB "User list"
// @Failure 401 {object} handlers.ErrorResponse "Unauthenticated"
// @Router /users [get]
func NewUserListHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}
