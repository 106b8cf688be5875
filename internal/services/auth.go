package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/akomarov/bookshelf/internal/logger"
	"github.com/akomarov/bookshelf/internal/models"
)

// UserFinderCreator looks up a user by external identity id, creating one
// if absent. The operation must be atomic per external id: a concurrent
// first-login surfaces as "use the existing row", never as a duplicate.
type UserFinderCreator interface {
	FindOrCreateByGoogleID(ctx context.Context, profile models.Profile) (*models.UserDB, error)
}

// SessionEstablisher creates and revokes server-side sessions.
type SessionEstablisher interface {
	Establish(ctx context.Context, userID uuid.UUID) (string, error)
	Revoke(ctx context.Context, token string) error
}

// AuthService handles federated login and session lifecycle.
type AuthService struct {
	users    UserFinderCreator
	sessions SessionEstablisher
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserFinderCreator, sessions SessionEstablisher) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
	}
}

// Authenticate resolves a federated profile to a local user record,
// creating one on first login. Idempotent: repeated calls with the same
// external id return the same user.
func (svc *AuthService) Authenticate(ctx context.Context, profile models.Profile) (*models.UserDB, error) {
	user, err := svc.users.FindOrCreateByGoogleID(ctx, profile)
	if err != nil {
		logger.Log.Errorw("failed to find or create user", "external_id", profile.ExternalID, "err", err)
		return nil, err
	}
	return user, nil
}

// Login authenticates the profile and establishes a session, returning the
// opaque token the client holds.
func (svc *AuthService) Login(ctx context.Context, profile models.Profile) (string, *models.UserDB, error) {
	user, err := svc.Authenticate(ctx, profile)
	if err != nil {
		return "", nil, err
	}

	token, err := svc.sessions.Establish(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to establish session", "user_id", user.UserID, "err", err)
		return "", nil, err
	}

	return token, user, nil
}

// Logout revokes the session for the given token.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	return svc.sessions.Revoke(ctx, token)
}
