package contract

import (
	"plagiarism-detection-be/internal/entity"

	"github.com/google/uuid"
)

type IDocumentRepository interface {
	Save(doc *entity.Document)
	FindByID(id uuid.UUID) (*entity.Document, bool)
	// FindAll returns documents in insertion order.
	FindAll() []*entity.Document
	// Delete reports whether the document existed.
	Delete(id uuid.UUID) bool
	Count() int
}
