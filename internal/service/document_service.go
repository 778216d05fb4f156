package service

import (
	"context"
	"encoding/json"
	"time"
	"unicode/utf8"

	"plagiarism-detection-be/internal/dto"
	"plagiarism-detection-be/internal/entity"
	"plagiarism-detection-be/internal/pkg/logger"
	"plagiarism-detection-be/internal/pkg/serverutils"
	"plagiarism-detection-be/internal/repository/contract"
	"plagiarism-detection-be/internal/repository/memory"

	"github.com/google/uuid"
)

type IDocumentService interface {
	Upload(ctx context.Context, filename string, content []byte) (*dto.UploadDocumentResponse, error)
	List(ctx context.Context) (*dto.ListDocumentsResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.DeleteDocumentResponse, error)
}

type documentService struct {
	documentRepo     contract.IDocumentRepository
	embeddingCache   *memory.EmbeddingCache
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewDocumentService(
	documentRepo contract.IDocumentRepository,
	embeddingCache *memory.EmbeddingCache,
	publisherService IPublisherService,
	sysLogger logger.ILogger,
) IDocumentService {
	return &documentService{
		documentRepo:     documentRepo,
		embeddingCache:   embeddingCache,
		publisherService: publisherService,
		logger:           sysLogger,
	}
}

func (s *documentService) Upload(ctx context.Context, filename string, content []byte) (*dto.UploadDocumentResponse, error) {
	if !utf8.Valid(content) {
		return nil, serverutils.NewValidationError("Uploaded file must be UTF-8 encoded text")
	}

	text := string(content)
	doc := entity.Document{
		Id:         uuid.New(),
		Filename:   filename,
		Text:       text,
		Size:       utf8.RuneCountInString(text),
		UploadedAt: time.Now(),
	}
	s.documentRepo.Save(&doc)

	s.logger.Info("documents", "document uploaded", map[string]interface{}{
		"document_id": doc.Id,
		"filename":    doc.Filename,
		"size":        doc.Size,
	})

	// Warm the embedding cache in the background. Failure here is not fatal:
	// a batch check re-embeds on cache miss.
	msgPayload := dto.PublishEmbedDocumentMessage{DocumentId: doc.Id}
	msgJson, err := json.Marshal(msgPayload)
	if err == nil {
		err = s.publisherService.Publish(ctx, msgJson)
	}
	if err != nil {
		s.logger.Warn("documents", "failed to publish embed event", map[string]interface{}{
			"document_id": doc.Id,
			"error":       err.Error(),
		})
	}

	return &dto.UploadDocumentResponse{
		DocumentId: doc.Id,
		Filename:   doc.Filename,
		Size:       doc.Size,
		Message:    "Document uploaded successfully",
	}, nil
}

func (s *documentService) List(ctx context.Context) (*dto.ListDocumentsResponse, error) {
	docs := s.documentRepo.FindAll()

	items := make([]dto.DocumentListItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, dto.DocumentListItem{
			DocumentId: doc.Id,
			Filename:   doc.Filename,
			Size:       doc.Size,
			UploadTime: doc.UploadedAt,
		})
	}

	return &dto.ListDocumentsResponse{
		Documents:  items,
		TotalCount: len(items),
	}, nil
}

func (s *documentService) Delete(ctx context.Context, id uuid.UUID) (*dto.DeleteDocumentResponse, error) {
	if removed := s.documentRepo.Delete(id); !removed {
		return nil, serverutils.NewNotFoundError("Document not found")
	}
	s.embeddingCache.Delete(id)

	s.logger.Info("documents", "document deleted", map[string]interface{}{
		"document_id": id,
	})

	return &dto.DeleteDocumentResponse{
		Message: "Document deleted successfully",
	}, nil
}
