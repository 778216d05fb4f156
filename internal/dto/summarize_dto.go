package dto

type SummarizeRequest struct {
	Text      string `json:"text"`
	MaxLength int    `json:"max_length"`
	MinLength int    `json:"min_length"`
}

type SummarizeResponse struct {
	OriginalLength   int     `json:"original_length"`
	Summary          string  `json:"summary"`
	SummaryLength    int     `json:"summary_length"`
	CompressionRatio float64 `json:"compression_ratio"`
	Method           string  `json:"method"`
}
