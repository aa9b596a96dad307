package gemini

import "context"

// IGemini generates text with the Gemini generateContent endpoint.
type IGemini interface {
	// GenerateContent returns an *APIError when the API answers with a non-200 status.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

var _ IGemini = (*geminiImpl)(nil)

// New validates cfg, fills its defaults and returns a client.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
