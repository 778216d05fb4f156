package summarizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeEmptyInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty string", text: ""},
		{name: "whitespace only", text: "   \n\t  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Summarize(tt.text, DefaultOptions())
			assert.Equal(t, EmptyTextSummary, result.Summary)
			assert.Equal(t, MethodExtractive, result.Method)
		})
	}
}

func TestSummarizeShortTextVerbatim(t *testing.T) {
	text := "Go is expressive, concise, clean, and efficient."

	result := Summarize(text, DefaultOptions())

	assert.Equal(t, text, result.Summary)
	assert.Equal(t, MethodExtractive, result.Method)
}

func TestSummarizeShortTextTruncatedToMaxLength(t *testing.T) {
	// 10 long words: under the 30-word scoring gate but over maxLength chars
	text := strings.TrimSpace(strings.Repeat("abcdefghijklmnopqrs ", 10))

	result := Summarize(text, DefaultOptions())

	assert.Equal(t, 150, len([]rune(result.Summary)))
	assert.Equal(t, text[:150], result.Summary)
	assert.Equal(t, MethodExtractive, result.Method)
}

func TestSummarizeSingleSentenceReturnsFirst200Chars(t *testing.T) {
	// No sentence terminators at all, but enough words to enter the scorer
	text := strings.TrimSpace(strings.Repeat("lorem ipsum dolor amet verba ", 8))
	opts := DefaultOptions()
	opts.MaxLength = 1000 // keep the word cap out of the way

	result := Summarize(text, opts)

	assert.True(t, strings.HasSuffix(result.Summary, "..."))
	assert.Equal(t, 203, len([]rune(result.Summary)))
	assert.Equal(t, text[:200], result.Summary[:200])
	assert.Equal(t, MethodExtractive, result.Method)
}

func TestSummarizeExtractiveSelection(t *testing.T) {
	// Sentences 1, 2 and 4 share high-frequency vocabulary; 3 and 5 are noise.
	text := "The solar telescope array captures detailed observations every night. " +
		"Astronomers review telescope observations to catalog distant galaxies carefully. " +
		"The campus cafeteria served lukewarm soup on Tuesday afternoon. " +
		"Galaxy catalogs grow as telescope observations accumulate over many seasons. " +
		"Budget meetings about parking permits ran long without any resolution."

	result := Summarize(text, DefaultOptions())

	want := "The solar telescope array captures detailed observations every night " +
		"Astronomers review telescope observations to catalog distant galaxies carefully " +
		"Galaxy catalogs grow as telescope observations accumulate over many seasons"
	assert.Equal(t, want, result.Summary)
	assert.Equal(t, MethodExtractive, result.Method)
}

func TestSummarizeFallbackStrategyPrefersKeywordSentences(t *testing.T) {
	text := "Quarterly revenue numbers improved modestly across most business units. " +
		"Marketing spend rose sharply across digital and print channels. " +
		"Hiring slowed. " +
		"The important conclusion is that operating margins recovered. " +
		"Operations teams automated several recurring reporting pipelines."

	// A raised min length makes the 3-sentence frequency summary too short,
	// forcing the length+keyword strategy with 4 sentences.
	opts := DefaultOptions()
	opts.MaxLength = 500
	opts.MinLength = 90

	result := Summarize(text, opts)

	assert.Contains(t, result.Summary, "important conclusion")
	assert.NotContains(t, result.Summary, "Hiring slowed")
	assert.Equal(t, MethodExtractive, result.Method)
}

func TestSummarizeWordCap(t *testing.T) {
	// Six 16-word sentences: the top 3 exceed maxLength/5 = 30 words
	sentence := "Alpha beta gamma delta epsilon zeta eta theta iota kappa lambda mu nu xi omicron pi. "
	text := strings.TrimSpace(strings.Repeat(sentence, 6))

	result := Summarize(text, DefaultOptions())

	assert.Equal(t, 30, len(strings.Fields(result.Summary)))
}

func TestSummarizeAppendsEllipsisOnHeavyCompression(t *testing.T) {
	sentence := "Reliable pipelines deliver nightly data snapshots without manual effort. "
	text := strings.TrimSpace(strings.Repeat(sentence, 12))

	result := Summarize(text, DefaultOptions())

	assert.True(t, strings.HasSuffix(result.Summary, "..."))
	assert.Less(t, len(result.Summary), len(text))
	assert.Equal(t, MethodExtractive, result.Method)
}

func TestSplitSentencesDropsShortFragments(t *testing.T) {
	sentences := splitSentences("A tiny bit. This sentence is long enough to keep! Ok? Another keeper sentence here.")

	assert.Equal(t, []string{
		"This sentence is long enough to keep",
		"Another keeper sentence here",
	}, sentences)
}

func TestScorableWordsFiltersStopWordsAndShortTokens(t *testing.T) {
	words := scorableWords("The quick brown fox is on a hill")

	assert.Equal(t, []string{"quick", "brown", "fox", "hill"}, words)
}
