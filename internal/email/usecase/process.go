package usecase

import (
	"context"
	"fmt"
	"strings"

	"email-task-assistant/internal/email"
	repo "email-task-assistant/internal/email/repository"
	"email-task-assistant/internal/model"
	"email-task-assistant/internal/task"
	"email-task-assistant/pkg/llmprovider"
)

// Process stores the email, turns the model's extraction into tasks and
// summarizes the email. Model failures degrade to zero tasks and no summary.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input email.ProcessInput) (email.ProcessOutput, error) {
	if strings.TrimSpace(input.GmailID) == "" {
		return email.ProcessOutput{}, email.ErrEmptyGmailID
	}
	if strings.TrimSpace(input.Content) == "" {
		return email.ProcessOutput{}, email.ErrEmptyContent
	}

	e, err := uc.repo.UpsertEmail(ctx, repo.UpsertEmailOptions{
		UserID:   sc.UserID,
		GmailID:  strings.TrimSpace(input.GmailID),
		ThreadID: input.ThreadID,
		Subject:  input.Subject,
		Sender:   input.Sender,
		Content:  input.Content,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Process UpsertEmail: %v", err)
		return email.ProcessOutput{}, err
	}

	content := prepareContent(input.Content)
	ext := uc.extract(ctx, content)

	created, err := uc.tasks.CreateBulk(ctx, sc, task.CreateBulkInput{
		EmailID: e.ID,
		Tasks:   toCreateInputs(ext.Tasks, uc.now()),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Process CreateBulk: %v", err)
		return email.ProcessOutput{}, err
	}

	var summary string
	if !input.SkipSummary {
		summary = uc.summarize(ctx, content)
	}

	if processed, err := uc.repo.MarkProcessed(ctx, e.ID, summary); err != nil {
		uc.l.Warnf(ctx, "uc.Process MarkProcessed: %v", err)
	} else {
		e = processed
	}

	return email.ProcessOutput{
		Email:          e,
		Tasks:          created.Tasks,
		SuggestedReply: derefString(ext.SuggestedReply),
		Summary:        summary,
	}, nil
}

func (uc *implUseCase) summarize(ctx context.Context, content string) string {
	if uc.llm == nil {
		return ""
	}
	resp, err := uc.llm.GenerateContent(ctx, llmprovider.UserText(summarySystemPrompt, fmt.Sprintf(summaryUserPrompt, content)))
	if err != nil {
		uc.l.Warnf(ctx, "uc.summarize GenerateContent: %v", err)
		return ""
	}
	return strings.TrimSpace(resp.Text())
}
