package dto

// NewsItem is one article entry returned by a news provider.
type NewsItem struct {
	Category string `json:"category"`
	Datetime int64  `json:"datetime"`
	Headline string `json:"headline"`
	ID       int64  `json:"id"`
	Image    string `json:"image"`
	Related  string `json:"related"`
	Source   string `json:"source"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
}

// NewsImportResult reports the outcome for one ticker of a news run.
// Skipped counts items without a URL; Errors counts malformed items plus
// whole-ticker failures.
type NewsImportResult struct {
	Ticker   string `json:"ticker"`
	Inserted int    `json:"inserted"`
	Skipped  int    `json:"skipped"`
	Errors   int    `json:"errors"`
	Failure  string `json:"failure,omitempty"`
}
