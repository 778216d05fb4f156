package dto

import "github.com/google/uuid"

// Empty texts are allowed; the embedding provider decides what an empty
// string embeds to.
type CompareRequest struct {
	Text1 string `json:"text1"`
	Text2 string `json:"text2"`
}

type CompareResponse struct {
	SimilarityScore float64 `json:"similarity_score"`
	IsPlagiarized   bool    `json:"is_plagiarized"`
	Threshold       float64 `json:"threshold"`
	Message         string  `json:"message"`
}

type BatchCheckResult struct {
	DocumentId      uuid.UUID `json:"document_id"`
	Filename        string    `json:"filename"`
	SimilarityScore float64   `json:"similarity_score"`
	IsPlagiarized   bool      `json:"is_plagiarized"`
}

type BatchCheckResponse struct {
	Results           []BatchCheckResult `json:"results"`
	AverageSimilarity float64            `json:"average_similarity"`
	PlagiarismCount   int                `json:"plagiarism_count"`
}
