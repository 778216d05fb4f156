package service

import (
	"context"
	"sort"

	"plagiarism-detection-be/internal/dto"
	"plagiarism-detection-be/internal/pkg/logger"
	"plagiarism-detection-be/internal/pkg/serverutils"
	"plagiarism-detection-be/internal/repository/contract"
	"plagiarism-detection-be/internal/repository/memory"
	"plagiarism-detection-be/pkg/embedding"

	"github.com/google/uuid"
)

const (
	plagiarismDetectedMessage = "High semantic similarity detected - potential plagiarism"
	originalContentMessage    = "Low semantic similarity - likely original content"

	embedTaskType = "SEMANTIC_SIMILARITY"
)

type ISimilarityService interface {
	Compare(ctx context.Context, req *dto.CompareRequest) (*dto.CompareResponse, error)
	CheckAgainstAll(ctx context.Context, documentId uuid.UUID) (*dto.BatchCheckResponse, error)
}

type similarityService struct {
	documentRepo      contract.IDocumentRepository
	embeddingProvider embedding.EmbeddingProvider
	embeddingCache    *memory.EmbeddingCache
	threshold         float64
	logger            logger.ILogger
}

func NewSimilarityService(
	documentRepo contract.IDocumentRepository,
	embeddingProvider embedding.EmbeddingProvider,
	embeddingCache *memory.EmbeddingCache,
	threshold float64,
	sysLogger logger.ILogger,
) ISimilarityService {
	return &similarityService{
		documentRepo:      documentRepo,
		embeddingProvider: embeddingProvider,
		embeddingCache:    embeddingCache,
		threshold:         threshold,
		logger:            sysLogger,
	}
}

func (s *similarityService) Compare(ctx context.Context, req *dto.CompareRequest) (*dto.CompareResponse, error) {
	// Both texts go out in a single provider call
	responses, err := s.embeddingProvider.GenerateBatch([]string{req.Text1, req.Text2}, embedTaskType)
	if err != nil {
		s.logger.Error("similarity", "embedding generation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, serverutils.NewProcessingError("Error processing texts")
	}

	score := embedding.CosineSimilarity(
		responses[0].Embedding.Values,
		responses[1].Embedding.Values,
	)
	isPlagiarized := score > s.threshold

	message := originalContentMessage
	if isPlagiarized {
		message = plagiarismDetectedMessage
	}

	return &dto.CompareResponse{
		SimilarityScore: score,
		IsPlagiarized:   isPlagiarized,
		Threshold:       s.threshold,
		Message:         message,
	}, nil
}

func (s *similarityService) CheckAgainstAll(ctx context.Context, documentId uuid.UUID) (*dto.BatchCheckResponse, error) {
	target, found := s.documentRepo.FindByID(documentId)
	if !found {
		return nil, serverutils.NewNotFoundError("Document not found")
	}

	s.logger.Info("similarity", "checking document against corpus", map[string]interface{}{
		"document_id": documentId,
		"filename":    target.Filename,
	})

	targetVector, err := s.embeddingFor(target.Id, target.Text)
	if err != nil {
		s.logger.Error("similarity", "target embedding failed", map[string]interface{}{
			"document_id": documentId,
			"error":       err.Error(),
		})
		return nil, serverutils.NewProcessingError("Error processing texts")
	}

	results := []dto.BatchCheckResult{}
	for _, doc := range s.documentRepo.FindAll() {
		if doc.Id == documentId {
			continue // never compare a document against itself
		}

		vector, err := s.embeddingFor(doc.Id, doc.Text)
		if err != nil {
			s.logger.Error("similarity", "corpus embedding failed", map[string]interface{}{
				"document_id": doc.Id,
				"error":       err.Error(),
			})
			return nil, serverutils.NewProcessingError("Error processing texts")
		}

		score := embedding.CosineSimilarity(targetVector, vector)
		results = append(results, dto.BatchCheckResult{
			DocumentId:      doc.Id,
			Filename:        doc.Filename,
			SimilarityScore: score,
			IsPlagiarized:   score > s.threshold,
		})
	}

	// Descending by score, stable so ties keep insertion order
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SimilarityScore > results[j].SimilarityScore
	})

	plagiarismCount := 0
	totalScore := 0.0
	for _, result := range results {
		if result.IsPlagiarized {
			plagiarismCount++
		}
		totalScore += result.SimilarityScore
	}

	averageSimilarity := 0.0
	if len(results) > 0 {
		averageSimilarity = totalScore / float64(len(results))
	}

	return &dto.BatchCheckResponse{
		Results:           results,
		AverageSimilarity: averageSimilarity,
		PlagiarismCount:   plagiarismCount,
	}, nil
}

// embeddingFor serves a document embedding from the cache, falling back to
// the provider and caching the result.
func (s *similarityService) embeddingFor(id uuid.UUID, text string) ([]float32, error) {
	if values, found := s.embeddingCache.Get(id); found {
		return values, nil
	}

	res, err := s.embeddingProvider.Generate(text, embedTaskType)
	if err != nil {
		return nil, err
	}

	s.embeddingCache.Set(id, res.Embedding.Values)
	return res.Embedding.Values, nil
}
