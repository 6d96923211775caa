package dto

// SentimentResult is the outcome of classifying a single headline.
type SentimentResult struct {
	Label string `json:"label"`
	Model string `json:"model"`
}

// ChatCompletionRequest is the request payload for OpenAI-compatible chat
// completion endpoints.
type ChatCompletionRequest struct {
	Model               string        `json:"model"`
	Messages            []ChatMessage `json:"messages"`
	Stream              bool          `json:"stream"`
	Temperature         float64       `json:"temperature"`
	TopP                float64       `json:"top_p"`
	MaxCompletionTokens int           `json:"max_completion_tokens"`
}

// ChatMessage is a single chat turn in a completion request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionResponse mirrors the subset of the completion response the
// classifier consumes. Gateways differ in where the reply text lands, so
// every known location is mapped.
type ChatCompletionResponse struct {
	Choices    []ChatChoice `json:"choices"`
	OutputText string       `json:"output_text"`
}

// ChatChoice is one completion candidate.
type ChatChoice struct {
	Message ChatChoiceMessage `json:"message"`
	Text    string            `json:"text"`
}

// ChatChoiceMessage carries the reply content of a chat choice.
type ChatChoiceMessage struct {
	Content   string `json:"content"`
	Reasoning string `json:"reasoning"`
}
