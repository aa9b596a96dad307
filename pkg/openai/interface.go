package openai

import "context"

// IOpenAI is a chat-completions client. Implementations are safe for concurrent use.
type IOpenAI interface {
	// GenerateContent sends a chat-completions request.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the configured model.
	Model() string
}

// New creates a chat-completions client.
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &clientImpl{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}, nil
}
