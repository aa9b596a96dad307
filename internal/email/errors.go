package email

import "errors"

var (
	ErrEmptyContent   = errors.New("email content is required")
	ErrEmptyGmailID   = errors.New("gmail_id is required")
	ErrLLMUnavailable = errors.New("language model is not configured")
	ErrReplyFailed    = errors.New("failed to generate reply")
)
