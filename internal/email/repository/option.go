package repository

type UpsertEmailOptions struct {
	UserID   string
	GmailID  string
	ThreadID string
	Subject  string
	Sender   string
	Content  string
}

type GetOneEmailOptions struct {
	ID      string
	UserID  string
	GmailID string
}
