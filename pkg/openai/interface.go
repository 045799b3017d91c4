package openai

import "context"

// IOpenAI is a chat-completions client. Any OpenAI-compatible endpoint (OpenAI, DeepSeek) works.
type IOpenAI interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model used when a request does not name one
	Model() string
}
