package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"plagiarism-detection-be/internal/dto"
	"plagiarism-detection-be/internal/pkg/logger"
	"plagiarism-detection-be/internal/pkg/serverutils"
	"plagiarism-detection-be/pkg/summarizer"
)

type ISummarizeService interface {
	Summarize(ctx context.Context, req *dto.SummarizeRequest) (*dto.SummarizeResponse, error)
}

type summarizeService struct {
	defaultOpts summarizer.Options
	logger      logger.ILogger
}

func NewSummarizeService(defaultOpts summarizer.Options, sysLogger logger.ILogger) ISummarizeService {
	return &summarizeService{
		defaultOpts: defaultOpts,
		logger:      sysLogger,
	}
}

func (s *summarizeService) Summarize(ctx context.Context, req *dto.SummarizeRequest) (*dto.SummarizeResponse, error) {
	trimmed := strings.TrimSpace(req.Text)
	if utf8.RuneCountInString(trimmed) < 20 {
		return nil, serverutils.NewValidationError("Text is too short for summarization (minimum 20 characters)")
	}

	opts := s.defaultOpts
	if req.MaxLength > 0 {
		opts.MaxLength = req.MaxLength
	}
	if req.MinLength > 0 {
		opts.MinLength = req.MinLength
	}

	result := summarizer.Summarize(req.Text, opts)

	summary := result.Summary
	if strings.TrimSpace(summary) == "" {
		summary = "Unable to generate summary. The text may be too short or complex."
	}

	originalLength := utf8.RuneCountInString(req.Text)
	summaryLength := utf8.RuneCountInString(summary)

	compressionRatio := 0.0
	if originalLength > 0 {
		compressionRatio = float64(summaryLength) / float64(originalLength)
	}

	s.logger.Info("summarize", "summarization complete", map[string]interface{}{
		"original_length":   originalLength,
		"summary_length":    summaryLength,
		"compression_ratio": compressionRatio,
		"method":            result.Method,
	})

	return &dto.SummarizeResponse{
		OriginalLength:   originalLength,
		Summary:          summary,
		SummaryLength:    summaryLength,
		CompressionRatio: compressionRatio,
		Method:           result.Method,
	}, nil
}
