package models

import (
	"time"

	"github.com/google/uuid"
)

// BookDB represents a catalog entry in the database.
// CreatedBy is stamped from the authenticated actor at creation time and
// is never reassigned.
type BookDB struct {
	BookID      uuid.UUID `json:"id" db:"book_id"`                          // Primary key
	Title       string    `json:"title" db:"title"`                         // Book title, required
	Author      string    `json:"author" db:"author"`                       // Book author, required
	Description *string   `json:"description,omitempty" db:"description"`   // Optional free-form description
	CreatedBy   uuid.UUID `json:"created_by" db:"created_by"`               // Owner user id
	CreatedAt   time.Time `json:"created_at" db:"created_at"`               // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`               // Last update timestamp
}
