package models

import (
	"time"

	"github.com/google/uuid"
)

// BookPdfDB represents an uploaded PDF attachment record.
// Filepath is server-assigned and opaque to clients; Filename keeps the
// original user-supplied name for downloads. BookID is optional — uploads
// may be unassociated.
type BookPdfDB struct {
	PdfID      uuid.UUID  `json:"id" db:"pdf_id"`                   // Primary key
	BookID     *uuid.UUID `json:"book_id,omitempty" db:"book_id"`   // Optional associated book
	Filename   string     `json:"filename" db:"filename"`           // Original user-supplied filename
	Filepath   string     `json:"-" db:"filepath"`                  // Server-assigned storage path, never exposed
	UploadedBy uuid.UUID  `json:"uploaded_by" db:"uploaded_by"`     // Uploader user id, immutable
	CreatedAt  time.Time  `json:"uploaded_at" db:"created_at"`      // Upload timestamp
}
