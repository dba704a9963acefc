package openai

// Minimal chat-completions API shapes.
// https://platform.openai.com/docs/api-reference/chat

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// responseFormat set to {"type": "json_object"} enables JSON mode, which
// ensures the message the model generates is valid JSON.
type responseFormat struct {
	Type string `json:"type"`
}

type chatCompletionRequest struct {
	Model          string                  `json:"model"`
	Messages       []chatCompletionMessage `json:"messages"`
	MaxTokens      *int                    `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat         `json:"response_format,omitempty"`
}

type chatCompletionChoice struct {
	Message chatCompletionMessage `json:"message"`
}

type chatCompletionResponse struct {
	Choices []chatCompletionChoice `json:"choices"`
}
