package usecase

import (
	"context"
	"fmt"
	"strings"

	"email-task-assistant/internal/model"
	"email-task-assistant/internal/task"
	repo "email-task-assistant/internal/task/repository"
	"email-task-assistant/pkg/datemath"
	"email-task-assistant/pkg/gcalendar"
)

// Create validates and stores one task, then tries to put it on the owner's calendar.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return task.CreateOutput{}, task.ErrEmptyTitle
	}

	priority, err := normalizePriority(input.Priority)
	if err != nil {
		return task.CreateOutput{}, err
	}

	if input.ReminderTime != nil && !input.ReminderTime.After(uc.now()) {
		return task.CreateOutput{}, task.ErrReminderInPast
	}

	assignee, err := uc.resolveAssignee(ctx, input.AssigneeEmail)
	if err != nil {
		return task.CreateOutput{}, err
	}

	teamID, err := uc.checkTeam(ctx, input.TeamID, sc.UserID)
	if err != nil {
		return task.CreateOutput{}, err
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:       sc.UserID,
		EmailID:      optional(input.EmailID),
		TeamID:       teamID,
		AssignedTo:   assignee,
		Title:        title,
		Description:  strings.TrimSpace(input.Description),
		Priority:     priority,
		DueDate:      uc.resolveDue(ctx, input.DueDate, input.DueText),
		ReminderTime: input.ReminderTime,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateOutput{}, err
	}

	link := uc.tryCreateCalendarEvent(ctx, sc, &t)
	return task.CreateOutput{Task: t, CalendarLink: link}, nil
}

// CreateBulk creates the tasks extracted from one email. Invalid entries are
// skipped and logged so one bad item does not drop the rest.
func (uc *implUseCase) CreateBulk(ctx context.Context, sc model.Scope, input task.CreateBulkInput) (task.CreateBulkOutput, error) {
	created := make([]model.Task, 0, len(input.Tasks))
	for _, in := range input.Tasks {
		if in.EmailID == "" {
			in.EmailID = input.EmailID
		}
		out, err := uc.Create(ctx, sc, in)
		if err != nil {
			uc.l.Warnf(ctx, "uc.CreateBulk: skipping task %q: %v", in.Title, err)
			continue
		}
		created = append(created, out.Task)
	}

	uc.l.Infof(ctx, "uc.CreateBulk: user=%s email=%s created=%d/%d", sc.UserID, input.EmailID, len(created), len(input.Tasks))
	return task.CreateBulkOutput{Tasks: created, TaskCount: len(created)}, nil
}

// tryCreateCalendarEvent adds an all-day event on the due date to the owner's calendar.
// Returns the event link, or "" when skipped or failed (graceful degradation).
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, sc model.Scope, t *model.Task) string {
	if uc.calendar == nil || t.DueDate == nil {
		return ""
	}

	owner, err := uc.users.Detail(ctx, sc.UserID)
	if err != nil || !owner.HasGoogleToken() {
		return ""
	}

	day := datemath.StartOfDay(*t.DueDate)
	event, err := uc.calendar.CreateEvent(ctx, owner.GoogleToken(), gcalendar.CreateEventRequest{
		CalendarID:  uc.calOpt.CalendarID,
		Summary:     t.Title,
		Description: fmt.Sprintf("%s\n\nPriority: %s", t.Description, t.Priority),
		StartTime:   day,
		EndTime:     datemath.EndOfDay(day),
		Timezone:    uc.calOpt.Timezone,
		AllDay:      true,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Create: calendar event creation failed for %q (non-fatal): %v", t.Title, err)
		return ""
	}

	if err := uc.repo.SetCalendarEventID(ctx, t.ID, event.ID); err != nil {
		uc.l.Warnf(ctx, "uc.Create SetCalendarEventID: %v", err)
		return event.HtmlLink
	}
	t.CalendarEventID = event.ID
	return event.HtmlLink
}
