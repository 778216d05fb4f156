package embedding

// EmbeddingProvider defines the interface for generating text embeddings
type EmbeddingProvider interface {
	Generate(text string, taskType string) (*EmbeddingResponse, error)
	// GenerateBatch embeds several texts in a single upstream call where the
	// backend supports it. Results are returned in input order.
	GenerateBatch(texts []string, taskType string) ([]*EmbeddingResponse, error)
}
