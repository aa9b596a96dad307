package http

import (
	"email-task-assistant/internal/email"
	"email-task-assistant/internal/model"
	"email-task-assistant/pkg/response"
)

// --- Request DTOs ---

type processReq struct {
	GmailID  string `json:"gmail_id"  binding:"required,max=255"`
	ThreadID string `json:"thread_id" binding:"max=255"`
	Subject  string `json:"subject"   binding:"max=1000"`
	Sender   string `json:"sender"    binding:"max=500"`
	Content  string `json:"content"   binding:"required"`
}

func (r processReq) toInput() email.ProcessInput {
	return email.ProcessInput{
		GmailID:  r.GmailID,
		ThreadID: r.ThreadID,
		Subject:  r.Subject,
		Sender:   r.Sender,
		Content:  r.Content,
	}
}

// extractReq is the body of the extension's original endpoint.
type extractReq struct {
	GmailID   string `json:"gmail_id"   binding:"required,max=255"`
	Content   string `json:"content"    binding:"required"`
	UserEmail string `json:"user_email" binding:"required,email"`
	Subject   string `json:"subject"`
	Sender    string `json:"sender"`
}

func (r extractReq) toInput() email.ProcessInput {
	return email.ProcessInput{
		GmailID:     r.GmailID,
		Subject:     r.Subject,
		Sender:      r.Sender,
		Content:     r.Content,
		SkipSummary: true,
	}
}

type replyReq struct {
	Content string `json:"content" binding:"required"`
	Context string `json:"context" binding:"max=5000"`
}

func (r replyReq) toInput() email.ReplyInput {
	return email.ReplyInput{Content: r.Content, Context: r.Context}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Priority    string             `json:"priority"`
	Status      string             `json:"status"`
	DueDate     *response.DateTime `json:"due_date"`
	EmailID     *string            `json:"email_id,omitempty"`
	CreatedAt   response.DateTime  `json:"created_at"`
}

func newTaskResps(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = taskResp{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Priority:    string(t.Priority),
			Status:      string(t.Status),
			DueDate:     response.NullableDateTime(t.DueDate),
			EmailID:     t.EmailID,
			CreatedAt:   response.DateTime(t.CreatedAt),
		}
	}
	return out
}

type processResp struct {
	EmailID        string     `json:"email_id"`
	Tasks          []taskResp `json:"tasks"`
	SuggestedReply *string    `json:"suggested_reply"`
	Summary        *string    `json:"summary"`
}

func (h *handler) newProcessResp(out email.ProcessOutput) processResp {
	return processResp{
		EmailID:        out.Email.ID,
		Tasks:          newTaskResps(out.Tasks),
		SuggestedReply: nullable(out.SuggestedReply),
		Summary:        nullable(out.Summary),
	}
}

type extractResp struct {
	Message        string     `json:"message"`
	Tasks          []taskResp `json:"tasks"`
	SuggestedReply *string    `json:"suggested_reply"`
}

func (h *handler) newExtractResp(out email.ProcessOutput) extractResp {
	return extractResp{
		Message:        extractMessage(len(out.Tasks)),
		Tasks:          newTaskResps(out.Tasks),
		SuggestedReply: nullable(out.SuggestedReply),
	}
}

type replyResp struct {
	SuggestedReply string   `json:"suggested_reply"`
	Tone           string   `json:"tone"`
	KeyPoints      []string `json:"key_points_addressed"`
}

func (h *handler) newReplyResp(out email.ReplyOutput) replyResp {
	keys := out.KeyPoints
	if keys == nil {
		keys = []string{}
	}
	return replyResp{SuggestedReply: out.SuggestedReply, Tone: out.Tone, KeyPoints: keys}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
