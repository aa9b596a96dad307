package model

import "time"

// Email is a message the extension submitted for processing.
type Email struct {
	ID          string     `db:"id"`
	UserID      string     `db:"user_id"`
	GmailID     string     `db:"gmail_id"`
	ThreadID    string     `db:"thread_id"`
	Subject     string     `db:"subject"`
	Sender      string     `db:"sender"`
	Content     string     `db:"content"`
	Summary     string     `db:"summary"`
	ProcessedAt *time.Time `db:"processed_at"`
	CreatedAt   time.Time  `db:"created_at"`
}
