package email

import "email-task-assistant/internal/model"

type ProcessInput struct {
	GmailID  string
	ThreadID string
	Subject  string
	Sender   string
	Content  string
	// SkipSummary is set by the legacy extract endpoint, which never summarized.
	SkipSummary bool
}

type ProcessOutput struct {
	Email          model.Email
	Tasks          []model.Task
	SuggestedReply string
	Summary        string
}

type ReplyInput struct {
	Content string
	Context string
}

type ReplyOutput struct {
	SuggestedReply string
	Tone           string
	KeyPoints      []string
}
