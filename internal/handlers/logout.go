package handlers

import (
	"context"
	"net/http"

	"github.com/akomarov/bookshelf/internal/middlewares"
)

// Logouter defines the interface that the auth service must implement.
type Logouter interface {
	Logout(ctx context.Context, token string) error
}

// LogoutResponse confirms session revocation
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// example: Logged out
	Message string `json:"message"`
}

// NewLogoutHandler revokes the caller's session.
// @Summary Log out
// @Description Revokes the server-side session for the presented token.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} handlers.LogoutResponse "Session revoked"
// @Failure 401 {object} handlers.ErrorResponse "No valid session"
// @Router /logout [post]
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := middlewares.TokenFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if err := svc.Logout(r.Context(), token); err != nil {
			writeServiceError(w, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})

		writeJSON(w, http.StatusOK, LogoutResponse{Message: "Logged out"})
	}
}
