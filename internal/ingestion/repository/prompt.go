package repository

import (
	"strings"
	"unicode"

	"golang-stock-pulse/internal/entity"
)

// sentimentInstruction pins the classifier reply to a single word.
const sentimentInstruction = "Reply with exactly ONE word: Positive, Neutral, or Negative."

// normalizeSentimentLabel reduces raw model output to one of the three
// sentiment labels. The first whitespace token is stripped of surrounding
// punctuation and title-cased; "Good" is read as Positive and anything else
// outside the label set degrades to Neutral.
func normalizeSentimentLabel(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return entity.SentimentNeutral
	}

	label := strings.ToLower(strings.Trim(fields[0], ",. "))
	if label == "" {
		return entity.SentimentNeutral
	}

	runes := []rune(label)
	runes[0] = unicode.ToUpper(runes[0])
	label = string(runes)

	if label == "Good" {
		return entity.SentimentPositive
	}

	switch label {
	case entity.SentimentPositive, entity.SentimentNeutral, entity.SentimentNegative:
		return label
	}
	return entity.SentimentNeutral
}
