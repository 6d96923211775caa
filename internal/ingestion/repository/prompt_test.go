package repository

import (
	"testing"

	"golang-stock-pulse/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSentimentLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "exact label passes through",
			raw:  "Positive",
			want: entity.SentimentPositive,
		},
		{
			name: "lowercase is title-cased",
			raw:  "negative",
			want: entity.SentimentNegative,
		},
		{
			name: "uppercase is normalized",
			raw:  "NEUTRAL",
			want: entity.SentimentNeutral,
		},
		{
			name: "trailing period is stripped",
			raw:  "negative.",
			want: entity.SentimentNegative,
		},
		{
			name: "only the first word counts",
			raw:  "Positive, the outlook is strong",
			want: entity.SentimentPositive,
		},
		{
			name: "surrounding whitespace is ignored",
			raw:  "  positive  ",
			want: entity.SentimentPositive,
		},
		{
			name: "good reads as positive",
			raw:  "good",
			want: entity.SentimentPositive,
		},
		{
			name: "good with punctuation reads as positive",
			raw:  "Good.",
			want: entity.SentimentPositive,
		},
		{
			name: "unknown word degrades to neutral",
			raw:  "bullish",
			want: entity.SentimentNeutral,
		},
		{
			name: "empty reply degrades to neutral",
			raw:  "",
			want: entity.SentimentNeutral,
		},
		{
			name: "whitespace-only reply degrades to neutral",
			raw:  "   ",
			want: entity.SentimentNeutral,
		},
		{
			name: "punctuation-only reply degrades to neutral",
			raw:  ",.",
			want: entity.SentimentNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, normalizeSentimentLabel(tt.raw))
		})
	}
}
