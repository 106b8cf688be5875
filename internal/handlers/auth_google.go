package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/akomarov/bookshelf/internal/logger"
	"github.com/akomarov/bookshelf/internal/models"
)

// GoogleProvider defines the identity provider operations the auth
// handlers consume.
type GoogleProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (string, error)
	VerifyIDToken(ctx context.Context, raw string) (*models.Profile, error)
}

// Loginer defines the interface that the auth service must implement.
type Loginer interface {
	Login(ctx context.Context, profile models.Profile) (string, *models.UserDB, error)
}

// stateCookie carries the anti-forgery state between the redirect and the
// provider callback.
const stateCookie = "oauth_state"

// sessionCookie mirrors the middleware cookie name so browser clients get
// the token without handling the JSON body.
const sessionCookie = "session"

// LoginResponse is returned after a successful federated login
// swagger:model LoginResponse
type LoginResponse struct {
	// Opaque session token
	// example: 7b7bd357-3f5f-4f3c-a359-7fd13d5e9d55
	Token string `json:"token"`

	// Authenticated user
	User *models.UserDB `json:"user"`
}

// NewGoogleLoginHandler redirects the client to the provider consent page.
// @Summary Start federated login
// @Description Redirects to the Google OAuth consent page with an anti-forgery state cookie.
// @Tags auth
// @Success 307 "Redirect to identity provider"
// @Router /auth/google/login [get]
func NewGoogleLoginHandler(provider GoogleProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := uuid.NewString()

		http.SetCookie(w, &http.Cookie{
			Name:     stateCookie,
			Value:    state,
			Path:     "/",
			MaxAge:   int((10 * time.Minute).Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		http.Redirect(w, r, provider.AuthCodeURL(state), http.StatusTemporaryRedirect)
	}
}

// NewGoogleCallbackHandler completes the federated login.
// @Summary Federated login callback
// @Description Exchanges the authorization code, verifies the ID token, finds or creates the local user and establishes a session.
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "Anti-forgery state"
// @Success 200 {object} handlers.LoginResponse "Session established"
// @Failure 400 {object} handlers.ErrorResponse "Missing code or state mismatch"
// @Failure 401 {object} handlers.ErrorResponse "Assertion rejected by provider"
// @Router /auth/google/callback [get]
func NewGoogleCallbackHandler(provider GoogleProvider, svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		state := r.URL.Query().Get("state")
		cookie, err := r.Cookie(stateCookie)
		if err != nil || state == "" || cookie.Value != state {
			writeError(w, http.StatusBadRequest, "state mismatch")
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			writeError(w, http.StatusBadRequest, "missing authorization code")
			return
		}

		rawToken, err := provider.Exchange(ctx, code)
		if err != nil {
			logger.Log.Errorw("code exchange failed", "err", err)
			writeError(w, http.StatusUnauthorized, "authentication failed")
			return
		}

		profile, err := provider.VerifyIDToken(ctx, rawToken)
		if err != nil {
			logger.Log.Errorw("id token verification failed", "err", err)
			writeError(w, http.StatusUnauthorized, "authentication failed")
			return
		}

		token, user, err := svc.Login(ctx, *profile)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		writeJSON(w, http.StatusOK, LoginResponse{
			Token: token,
			User:  user,
		})
	}
}
