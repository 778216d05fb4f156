package service

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"plagiarism-detection-be/internal/dto"
	"plagiarism-detection-be/internal/pkg/serverutils"
	"plagiarism-detection-be/pkg/summarizer"

	"github.com/stretchr/testify/assert"
)

func newSummarizeService() ISummarizeService {
	return NewSummarizeService(summarizer.DefaultOptions(), nopLogger{})
}

func TestSummarizeRejectsShortText(t *testing.T) {
	svc := newSummarizeService()

	// 19 runes after trimming
	_, err := svc.Summarize(context.Background(), &dto.SummarizeRequest{
		Text: "  nineteen runes abcd  ",
	})

	var appErr *serverutils.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "Text is too short for summarization (minimum 20 characters)", appErr.Message)
}

func TestSummarizeAcceptsTwentyRunes(t *testing.T) {
	svc := newSummarizeService()

	res, err := svc.Summarize(context.Background(), &dto.SummarizeRequest{
		Text: "exactly twenty runes",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, res.Summary)
}

func TestSummarizeShortTextVerbatim(t *testing.T) {
	svc := newSummarizeService()
	text := "The quick brown fox jumps over the lazy dog near the river."

	res, err := svc.Summarize(context.Background(), &dto.SummarizeRequest{Text: text})

	assert.NoError(t, err)
	// Under 30 words the text is returned as-is
	assert.Equal(t, text, res.Summary)
	assert.Equal(t, summarizer.MethodExtractive, res.Method)
	assert.Equal(t, utf8.RuneCountInString(text), res.OriginalLength)
	assert.Equal(t, utf8.RuneCountInString(text), res.SummaryLength)
	assert.InDelta(t, 1.0, res.CompressionRatio, 1e-9)
}

func TestSummarizeCompressionRatio(t *testing.T) {
	svc := newSummarizeService()
	sentences := []string{
		"The research team published a detailed study on renewable energy adoption across several European markets.",
		"Wind power installations grew faster than any other energy source during the observation period.",
		"Solar capacity also expanded although supply chain constraints slowed several large projects.",
		"Government subsidies played a measurable role in accelerating residential installations.",
		"Battery storage deployments remained the main bottleneck for grid integration.",
		"The authors recommend coordinated investment in transmission infrastructure.",
	}
	text := strings.Join(sentences, " ")

	res, err := svc.Summarize(context.Background(), &dto.SummarizeRequest{Text: text})

	assert.NoError(t, err)
	assert.Equal(t, utf8.RuneCountInString(text), res.OriginalLength)
	assert.Equal(t, utf8.RuneCountInString(res.Summary), res.SummaryLength)
	expectedRatio := float64(res.SummaryLength) / float64(res.OriginalLength)
	assert.InDelta(t, expectedRatio, res.CompressionRatio, 1e-9)
	assert.LessOrEqual(t, res.CompressionRatio, 1.0)
}

func TestSummarizeMethodIsReported(t *testing.T) {
	svc := newSummarizeService()

	res, err := svc.Summarize(context.Background(), &dto.SummarizeRequest{
		Text: strings.Repeat("many different words keep the summarizer busy today. ", 4),
	})

	assert.NoError(t, err)
	assert.Contains(t, []string{summarizer.MethodExtractive, summarizer.MethodFallback}, res.Method)
}

func TestSummarizeHonorsRequestLengths(t *testing.T) {
	svc := newSummarizeService()
	text := "One short sentence that still clears the minimum length for processing."

	res, err := svc.Summarize(context.Background(), &dto.SummarizeRequest{
		Text:      text,
		MaxLength: 40,
	})

	assert.NoError(t, err)
	// Verbatim path truncates to the requested maximum
	assert.Equal(t, 40, utf8.RuneCountInString(res.Summary))
	assert.Equal(t, string([]rune(text)[:40]), res.Summary)
}
