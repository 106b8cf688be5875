package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/akomarov/bookshelf/internal/logger"
	"github.com/akomarov/bookshelf/internal/models"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	List(ctx context.Context) ([]models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, googleID, displayName, email, firstName, lastName *string) (*models.UserDB, error)
	Update(ctx context.Context, userID uuid.UUID, displayName, firstName, lastName *string) (*models.UserDB, error)
}

// UserService exposes the user resource operations.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	return svc.reader.List(ctx)
}

func (svc *UserService) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// Create adds a user record directly, bypassing federated login. Used by
// the administrative endpoint; duplicate email or external id surfaces as
// ErrConflict.
func (svc *UserService) Create(ctx context.Context, googleID, displayName, email, firstName, lastName *string) (*models.UserDB, error) {
	user, err := svc.writer.Create(ctx, googleID, displayName, email, firstName, lastName)
	if err != nil {
		if isUniqueViolation(err) {
			logger.Log.Errorw("duplicate user", "email", email, "err", err)
			return nil, ErrConflict
		}
		logger.Log.Errorw("failed to create user", "err", err)
		return nil, err
	}
	return user, nil
}

// Update applies the allowlisted profile fields. Only the user themselves
// may update their profile; lookup runs before the ownership comparison.
func (svc *UserService) Update(ctx context.Context, actorID, userID uuid.UUID, displayName, firstName, lastName *string) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load user for update", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	if user.UserID != actorID {
		logger.Log.Errorw("profile update rejected", "user_id", userID, "actor_id", actorID)
		return nil, ErrForbidden
	}

	updated, err := svc.writer.Update(ctx, userID, displayName, firstName, lastName)
	if err != nil {
		logger.Log.Errorw("failed to update user", "user_id", userID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}
