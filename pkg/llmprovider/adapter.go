package llmprovider

import (
	"context"

	"bbip/pkg/gemini"
	"bbip/pkg/openai"
)

// OpenAIAdapter adapts any OpenAI-compatible chat client to the Provider interface.
// name distinguishes deployments sharing the wire format (openai, deepseek).
type OpenAIAdapter struct {
	name   string
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new OpenAI-compatible adapter
func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider.GenerateContent
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, a.toOpenAIRequest(req))
	if err != nil {
		return nil, err
	}
	return a.fromOpenAIResponse(resp), nil
}

// Name implements Provider.Name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model implements Provider.Model
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

func (a *OpenAIAdapter) toOpenAIRequest(req *Request) *openai.Request {
	messages := make([]openai.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		messages = append(messages, openai.Message{
			Role:    "system",
			Content: joinParts(req.SystemInstruction.Parts),
		})
	}
	for _, msg := range req.Messages {
		messages = append(messages, openai.Message{
			Role:    msg.Role,
			Content: joinParts(msg.Parts),
		})
	}

	temperature := req.Temperature
	return &openai.Request{
		Messages:    messages,
		Temperature: &temperature,
		MaxTokens:   req.MaxTokens,
	}
}

func (a *OpenAIAdapter) fromOpenAIResponse(resp *openai.Response) *Response {
	out := &Response{
		ProviderName: a.name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if out.ModelName == "" {
		out.ModelName = a.client.Model()
	}
	if len(resp.Choices) > 0 {
		msg := resp.Choices[0].Message
		out.Content = NewTextMessage("assistant", msg.Content)
	}
	return out
}

// GeminiAdapter adapts Gemini client to Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider.GenerateContent
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, a.toGeminiRequest(req))
	if err != nil {
		return nil, err
	}
	return a.fromGeminiResponse(resp), nil
}

// Name implements Provider.Name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model implements Provider.Model
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

func (a *GeminiAdapter) toGeminiRequest(req *Request) *gemini.GenerateRequest {
	out := &gemini.GenerateRequest{
		Contents: make([]gemini.Content, 0, len(req.Messages)),
	}
	if req.SystemInstruction != nil {
		out.SystemInstruction = &gemini.Content{Parts: toGeminiParts(req.SystemInstruction.Parts)}
	}
	for _, msg := range req.Messages {
		out.Contents = append(out.Contents, gemini.Content{
			Role:  geminiRole(msg.Role),
			Parts: toGeminiParts(msg.Parts),
		})
	}

	temperature := req.Temperature
	out.GenerationConfig = &gemini.GenerationConfig{
		Temperature:     &temperature,
		MaxOutputTokens: req.MaxTokens,
	}
	return out
}

func (a *GeminiAdapter) fromGeminiResponse(resp *gemini.GenerateResponse) *Response {
	out := &Response{
		Content:      NewTextMessage("assistant", resp.Text()),
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.UsageMetadata != nil {
		out.Usage.InputTokens = resp.UsageMetadata.PromptTokenCount
		out.Usage.OutputTokens = resp.UsageMetadata.CandidatesTokenCount
		out.Usage.TotalTokens = resp.UsageMetadata.TotalTokenCount
	}
	return out
}

// geminiRole maps the normalized role onto Gemini's user/model pair.
func geminiRole(role string) string {
	if role == "assistant" || role == "model" {
		return "model"
	}
	return "user"
}

func toGeminiParts(parts []Part) []gemini.Part {
	out := make([]gemini.Part, len(parts))
	for i, p := range parts {
		out[i] = gemini.Part{Text: p.Text}
	}
	return out
}

func joinParts(parts []Part) string {
	return (&Response{Content: Message{Parts: parts}}).Text()
}
