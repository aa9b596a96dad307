package openai

import "time"

const (
	// DefaultBaseURL is the OpenAI API endpoint. Any chat-completions compatible
	// endpoint (DeepSeek, a local gateway) can be configured instead.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is used when the config leaves the model empty.
	DefaultModel = "gpt-4o-mini"

	// DefaultTimeout is the HTTP client timeout.
	DefaultTimeout = 60 * time.Second

	// DeepSeekBaseURL is the DeepSeek endpoint, used for the "deepseek" provider name.
	DeepSeekBaseURL = "https://api.deepseek.com/v1"

	// DeepSeekModel is the default DeepSeek model.
	DeepSeekModel = "deepseek-chat"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const completionsPath = "/chat/completions"
