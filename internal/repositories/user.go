package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/akomarov/bookshelf/internal/logger"
	"github.com/akomarov/bookshelf/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	const query = `
		SELECT user_id, google_id, display_name, email, first_name, last_name, created_at, updated_at
		FROM users
		ORDER BY created_at
	`

	users := []models.UserDB{}
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT user_id, google_id, display_name, email, first_name, last_name, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", user,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// FindOrCreateByGoogleID looks up a user by external identity id, creating
// one from the profile if absent. The ON CONFLICT clause makes concurrent
// first-logins for the same id converge on a single row.
func (r *UserWriteRepository) FindOrCreateByGoogleID(ctx context.Context, profile models.Profile) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (google_id, display_name, email, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (google_id) DO UPDATE
		SET updated_at = NOW()
		RETURNING user_id, google_id, display_name, email, first_name, last_name, created_at, updated_at
	`
	args := []any{profile.ExternalID, profile.DisplayName, profile.Email, profile.FirstName, profile.LastName}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", user,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserWriteRepository) Create(ctx context.Context, googleID, displayName, email, firstName, lastName *string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (google_id, display_name, email, first_name, last_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING user_id, google_id, display_name, email, first_name, last_name, created_at, updated_at
	`
	args := []any{googleID, displayName, email, firstName, lastName}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", user,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Update applies the allowlisted profile fields only. Email and google_id
// are immutable after creation.
func (r *UserWriteRepository) Update(ctx context.Context, userID uuid.UUID, displayName, firstName, lastName *string) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET display_name = COALESCE($2, display_name),
		    first_name = COALESCE($3, first_name),
		    last_name = COALESCE($4, last_name),
		    updated_at = NOW()
		WHERE user_id = $1
		RETURNING user_id, google_id, display_name, email, first_name, last_name, created_at, updated_at
	`
	args := []any{userID, displayName, firstName, lastName}

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", user,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
