package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is an uploaded text held in memory. Documents are immutable once
// stored; there is no update path.
type Document struct {
	Id         uuid.UUID
	Filename   string
	Text       string
	Size       int // characters of the decoded text, not raw bytes
	UploadedAt time.Time
}
