package usecase

import (
	"context"
	"time"

	"email-task-assistant/internal/model"
	"email-task-assistant/internal/task"
	repo "email-task-assistant/internal/task/repository"
	"email-task-assistant/pkg/datemath"
)

// Upcoming lists open tasks due within the next days (7 when days <= 0), today included.
func (uc *implUseCase) Upcoming(ctx context.Context, sc model.Scope, days int) (task.ListOutput, error) {
	if days <= 0 {
		days = defaultUpcomingDays
	}
	now := uc.now()
	from := datemath.StartOfDay(now)
	to := now.Add(time.Duration(days) * 24 * time.Hour)

	return uc.list(ctx, "Upcoming", repo.ListTasksOptions{
		UserID:   sc.UserID,
		OnlyOpen: true,
		DueFrom:  &from,
		DueTo:    &to,
		Limit:    maxListLimit,
	})
}

// Overdue lists open tasks whose due date has passed.
func (uc *implUseCase) Overdue(ctx context.Context, sc model.Scope) (task.ListOutput, error) {
	now := uc.now()
	return uc.list(ctx, "Overdue", repo.ListTasksOptions{
		UserID:   sc.UserID,
		OnlyOpen: true,
		DueTo:    &now,
		Limit:    maxListLimit,
	})
}

// Analytics summarizes the caller's tasks. Deleted tasks are not counted in Total.
func (uc *implUseCase) Analytics(ctx context.Context, sc model.Scope) (task.AnalyticsOutput, error) {
	stats, err := uc.repo.Stats(ctx, repo.StatsOptions{UserID: sc.UserID, Now: uc.now()})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Analytics Stats: %v", err)
		return task.AnalyticsOutput{}, err
	}

	total := 0
	for status, n := range stats.ByStatus {
		if status != model.TaskStatusDeleted {
			total += n
		}
	}
	completed := stats.ByStatus[model.TaskStatusCompleted]

	var rate float64
	if total > 0 {
		rate = float64(completed) / float64(total)
	}

	return task.AnalyticsOutput{
		Total:          total,
		Completed:      completed,
		CompletionRate: rate,
		Overdue:        stats.Overdue,
		ByStatus:       stats.ByStatus,
		ByPriority:     stats.ByPriority,
	}, nil
}
