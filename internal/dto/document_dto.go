package dto

import (
	"time"

	"github.com/google/uuid"
)

type UploadDocumentResponse struct {
	DocumentId uuid.UUID `json:"document_id"`
	Filename   string    `json:"filename"`
	Size       int       `json:"size"`
	Message    string    `json:"message"`
}

type DocumentListItem struct {
	DocumentId uuid.UUID `json:"document_id"`
	Filename   string    `json:"filename"`
	Size       int       `json:"size"`
	UploadTime time.Time `json:"upload_time"`
}

type ListDocumentsResponse struct {
	Documents  []DocumentListItem `json:"documents"`
	TotalCount int                `json:"total_count"`
}

type DeleteDocumentResponse struct {
	Message string `json:"message"`
}

// PublishEmbedDocumentMessage is the payload of the embed-on-upload event.
type PublishEmbedDocumentMessage struct {
	DocumentId uuid.UUID `json:"document_id"`
}
