package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"email-task-assistant/internal/email"
	"email-task-assistant/internal/model"
	"email-task-assistant/pkg/llmprovider"
)

type replyJSON struct {
	Reply     string   `json:"reply"`
	Tone      string   `json:"tone"`
	KeyPoints []string `json:"key_points"`
}

// Reply drafts an answer to the email with its tone and the points it addresses.
func (uc *implUseCase) Reply(ctx context.Context, sc model.Scope, input email.ReplyInput) (email.ReplyOutput, error) {
	if strings.TrimSpace(input.Content) == "" {
		return email.ReplyOutput{}, email.ErrEmptyContent
	}
	if uc.llm == nil {
		return email.ReplyOutput{}, email.ErrLLMUnavailable
	}

	req := llmprovider.UserText(replySystemPrompt,
		fmt.Sprintf(replyUserPrompt, prepareContent(input.Content), strings.TrimSpace(input.Context)))
	req.Temperature = replyTemperature
	req.JSON = true

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reply GenerateContent: user=%s: %v", sc.UserID, err)
		return email.ReplyOutput{}, email.ErrReplyFailed
	}

	out := parseReply(resp.Text())
	if out.SuggestedReply == "" {
		uc.l.Errorf(ctx, "uc.Reply: empty reply from %s", resp.ProviderName)
		return email.ReplyOutput{}, email.ErrReplyFailed
	}
	return out, nil
}

// parseReply reads the JSON answer, falling back to plain text split into
// blank-line separated sections with optional "Tone:" and "Key points:" sections.
func parseReply(raw string) email.ReplyOutput {
	var rj replyJSON
	if err := json.Unmarshal([]byte(sanitizeJSON(raw)), &rj); err == nil && strings.TrimSpace(rj.Reply) != "" {
		out := email.ReplyOutput{
			SuggestedReply: strings.TrimSpace(rj.Reply),
			Tone:           strings.TrimSpace(rj.Tone),
			KeyPoints:      make([]string, 0, len(rj.KeyPoints)),
		}
		for _, p := range rj.KeyPoints {
			if p = strings.TrimSpace(p); p != "" {
				out.KeyPoints = append(out.KeyPoints, p)
			}
		}
		if out.Tone == "" {
			out.Tone = defaultTone
		}
		return out
	}

	sections := strings.Split(strings.TrimSpace(raw), "\n\n")
	out := email.ReplyOutput{
		SuggestedReply: strings.TrimSpace(sections[0]),
		Tone:           defaultTone,
		KeyPoints:      []string{},
	}
	for _, section := range sections[1:] {
		head, body, ok := strings.Cut(section, ":")
		if !ok {
			continue
		}
		switch label := strings.ToLower(strings.TrimSpace(head)); {
		case strings.HasSuffix(label, "tone"):
			out.Tone = strings.TrimSpace(body)
		case strings.HasSuffix(label, "key points"):
			for _, line := range strings.Split(body, "\n") {
				if line = strings.Trim(strings.TrimSpace(line), "-* "); line != "" {
					out.KeyPoints = append(out.KeyPoints, line)
				}
			}
		}
	}
	return out
}
