package sqldb

import (
	"context"
	"testing"
	"time"

	"email-task-assistant/config"
	"email-task-assistant/config/database"
	repo "email-task-assistant/internal/email/repository"
	"email-task-assistant/internal/migration"
	"email-task-assistant/pkg/log"
)

var testNow = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

func newTestRepo(t *testing.T) *implRepository {
	t.Helper()
	ctx := context.Background()

	db, err := database.ConnectSQLite(ctx, ":memory:")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if _, err := migration.Up(ctx, db, config.DriverSQLite, log.NewNop()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for _, id := range []string{"u1", "u2"} {
		if _, err := db.ExecContext(ctx,
			`INSERT INTO users (id, email, created_at, updated_at) VALUES (?, ?, ?, ?)`,
			id, id+"@example.com", testNow, testNow); err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	r := New(db, log.NewNop()).(*implRepository)
	r.now = func() time.Time { return testNow }
	return r
}

func TestUpsertEmail(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	first, err := r.UpsertEmail(ctx, repo.UpsertEmailOptions{
		UserID:   "u1",
		GmailID:  "g-1",
		ThreadID: "th-1",
		Subject:  "Report",
		Sender:   "boss@example.com",
		Content:  "Please send the report by tomorrow.",
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if first.ID == "" || first.Subject != "Report" || !first.CreatedAt.Equal(testNow) {
		t.Fatalf("first = %+v", first)
	}
	if first.ProcessedAt != nil {
		t.Errorf("new email should not be processed")
	}

	second, err := r.UpsertEmail(ctx, repo.UpsertEmailOptions{
		UserID:  "u1",
		GmailID: "g-1",
		Content: "Updated body",
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("resubmission created a new row: %s -> %s", first.ID, second.ID)
	}
	if second.Content != "Updated body" || second.Subject != "Report" || second.ThreadID != "th-1" {
		t.Errorf("second = %+v", second)
	}

	// same gmail id, different user
	other, err := r.UpsertEmail(ctx, repo.UpsertEmailOptions{UserID: "u2", GmailID: "g-1", Content: "x"})
	if err != nil {
		t.Fatalf("other upsert: %v", err)
	}
	if other.ID == first.ID {
		t.Errorf("emails of different users must not collide")
	}
}

func TestMarkProcessed(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	e, err := r.UpsertEmail(ctx, repo.UpsertEmailOptions{UserID: "u1", GmailID: "g-2", Content: "body"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := r.MarkProcessed(ctx, e.ID, "Short summary.")
	if err != nil {
		t.Fatalf("MarkProcessed: %v", err)
	}
	if got.Summary != "Short summary." {
		t.Errorf("summary = %q", got.Summary)
	}
	if got.ProcessedAt == nil || !got.ProcessedAt.Equal(testNow) {
		t.Errorf("processed_at = %v", got.ProcessedAt)
	}
}

func TestGetOneEmail(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	e, err := r.UpsertEmail(ctx, repo.UpsertEmailOptions{UserID: "u1", GmailID: "g-3", Content: "body"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	tests := []struct {
		name   string
		opt    repo.GetOneEmailOptions
		wantID string
	}{
		{"by id", repo.GetOneEmailOptions{ID: e.ID}, e.ID},
		{"by user and gmail id", repo.GetOneEmailOptions{UserID: "u1", GmailID: "g-3"}, e.ID},
		{"other user", repo.GetOneEmailOptions{UserID: "u2", GmailID: "g-3"}, ""},
		{"no filter", repo.GetOneEmailOptions{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.GetOneEmail(ctx, tt.opt)
			if err != nil {
				t.Fatalf("GetOneEmail: %v", err)
			}
			if got.ID != tt.wantID {
				t.Errorf("id = %q, want %q", got.ID, tt.wantID)
			}
		})
	}
}
