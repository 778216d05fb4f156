package summarizer

import (
	"regexp"
	"sort"
	"strings"
)

// Method tags reported alongside a summary.
const (
	MethodExtractive = "extractive"
	MethodFallback   = "fallback"
)

// EmptyTextSummary is returned when there is nothing to summarize.
const EmptyTextSummary = "No text provided for summarization."

// Options holds the tunable constants of the summarization pipeline. The
// divisor fields keep the reference ratios (minLength/3 fallback trigger,
// maxLength/5 word cap) adjustable instead of hard-coded.
type Options struct {
	MaxLength         int
	MinLength         int
	PrimarySentences  int
	FallbackSentences int
	MinLengthDivisor  int
	MaxLengthDivisor  int
}

func DefaultOptions() Options {
	return Options{
		MaxLength:         150,
		MinLength:         30,
		PrimarySentences:  3,
		FallbackSentences: 4,
		MinLengthDivisor:  3,
		MaxLengthDivisor:  5,
	}
}

// Result is a produced summary plus the strategy tag that produced it.
type Result struct {
	Summary string
	Method  string
}

var (
	sentenceSplitPattern = regexp.MustCompile(`[.!?]+`)
	wordPattern          = regexp.MustCompile(`\w+`)

	stopWords = map[string]struct{}{
		"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
		"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
		"with": {}, "by": {}, "is": {}, "was": {}, "are": {}, "were": {},
		"be": {}, "been": {}, "being": {}, "have": {}, "has": {}, "had": {},
		"do": {}, "does": {}, "did": {},
	}

	// Sentences mentioning these tend to carry the point of the text.
	importantWords = []string{
		"important", "key", "main", "primary", "significant",
		"conclusion", "result", "find", "show", "demonstrate",
		"summary", "purpose", "goal", "objective", "method",
		"finding", "recommendation",
	}
)

// Summarize runs the extractive summarization pipeline. Any panic inside the
// scoring pipeline degrades to a truncation-based summary instead of an error.
func Summarize(text string, opts Options) (result Result) {
	text = strings.TrimSpace(text)

	defer func() {
		if r := recover(); r != nil {
			result = Result{
				Summary: firstChars(text, 200),
				Method:  MethodFallback,
			}
		}
	}()

	if text == "" {
		return Result{Summary: EmptyTextSummary, Method: MethodExtractive}
	}

	// Very short texts are returned verbatim, only bounded by maxLength.
	if len(strings.Fields(text)) < 30 {
		return Result{Summary: truncateRunes(text, opts.MaxLength), Method: MethodExtractive}
	}

	summary := frequencySummary(text, opts.PrimarySentences)

	// Fall back to the length+keyword strategy when frequency scoring
	// produced too little material.
	if float64(len(strings.Fields(summary))) < float64(opts.MinLength)/float64(opts.MinLengthDivisor) {
		summary = lengthKeywordSummary(text, opts.FallbackSentences)
	}

	// Cap the summary word count.
	words := strings.Fields(summary)
	maxWords := opts.MaxLength / opts.MaxLengthDivisor
	if len(words) > maxWords {
		summary = strings.Join(words[:maxWords], " ")
	}

	// Signal heavy truncation with an ellipsis.
	if float64(len([]rune(summary))) < float64(len([]rune(text)))*0.3 {
		summary = strings.TrimSpace(summary)
		if !strings.HasSuffix(summary, "...") {
			summary += "..."
		}
	}

	return Result{Summary: summary, Method: MethodExtractive}
}

// frequencySummary scores sentences by the corpus-wide frequency of their
// words, normalized by sentence word count, and keeps the top maxSentences in
// original order.
func frequencySummary(text string, maxSentences int) string {
	sentences := splitSentences(text)
	if len(sentences) <= 1 {
		return firstChars(text, 200)
	}

	freq := map[string]int{}
	for _, sentence := range sentences {
		for _, word := range scorableWords(sentence) {
			freq[word]++
		}
	}

	scores := make([]float64, len(sentences))
	for i, sentence := range sentences {
		words := scorableWords(sentence)
		if len(words) == 0 {
			continue
		}
		sum := 0
		for _, word := range words {
			sum += freq[word]
		}
		scores[i] = float64(sum) / float64(len(words))
	}

	return joinTopSentences(sentences, scores, maxSentences)
}

// lengthKeywordSummary scores sentences by capped length plus a flat bonus per
// importance keyword present.
func lengthKeywordSummary(text string, maxSentences int) string {
	sentences := splitSentences(text)
	if len(sentences) <= 1 {
		return firstChars(text, 200)
	}

	scores := make([]float64, len(sentences))
	for i, sentence := range sentences {
		wordCount := len(strings.Fields(sentence))
		if wordCount > 30 {
			wordCount = 30
		}
		score := float64(wordCount) * 0.5

		lower := strings.ToLower(sentence)
		for _, word := range importantWords {
			if strings.Contains(lower, word) {
				score += 10
			}
		}
		scores[i] = score
	}

	return joinTopSentences(sentences, scores, maxSentences)
}

// splitSentences breaks text on sentence terminators and drops fragments of
// 10 characters or fewer.
func splitSentences(text string) []string {
	var sentences []string
	for _, part := range sentenceSplitPattern.Split(text, -1) {
		part = strings.TrimSpace(part)
		if len([]rune(part)) > 10 {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

// scorableWords lowercases and tokenizes a sentence, dropping stop words and
// tokens of 2 characters or fewer.
func scorableWords(sentence string) []string {
	var words []string
	for _, word := range wordPattern.FindAllString(strings.ToLower(sentence), -1) {
		if len(word) <= 2 {
			continue
		}
		if _, ok := stopWords[word]; ok {
			continue
		}
		words = append(words, word)
	}
	return words
}

// joinTopSentences keeps the maxSentences highest-scoring sentences, restores
// their original order, and joins them with single spaces. Ties resolve in
// original order (stable sort).
func joinTopSentences(sentences []string, scores []float64, maxSentences int) string {
	indices := make([]int, len(sentences))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return scores[indices[a]] > scores[indices[b]]
	})

	if maxSentences > len(indices) {
		maxSentences = len(indices)
	}
	top := append([]int(nil), indices[:maxSentences]...)
	sort.Ints(top)

	selected := make([]string, len(top))
	for i, idx := range top {
		selected[i] = sentences[idx]
	}
	return strings.Join(selected, " ")
}

// firstChars truncates to limit characters, appending an ellipsis when
// anything was cut off.
func firstChars(text string, limit int) string {
	runes := []rune(text)
	if len(runes) > limit {
		return string(runes[:limit]) + "..."
	}
	return text
}

func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return text
}
