package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
// GoogleID is nil for users created through the administrative endpoint
// rather than federated login; Email is unique when present.
type UserDB struct {
	UserID      uuid.UUID `json:"id" db:"user_id"`                            // Primary key
	GoogleID    *string   `json:"google_id,omitempty" db:"google_id"`         // External federated identity id, unique, immutable
	DisplayName *string   `json:"display_name,omitempty" db:"display_name"`   // Display name shown in listings
	Email       *string   `json:"email,omitempty" db:"email"`                 // Unique email, immutable after creation
	FirstName   *string   `json:"first_name,omitempty" db:"first_name"`       // Given name
	LastName    *string   `json:"last_name,omitempty" db:"last_name"`         // Family name
	CreatedAt   time.Time `json:"created_at" db:"created_at"`                 // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`                 // Last update timestamp
}
