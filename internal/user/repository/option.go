package repository

import "time"

// GetOneUserOptions filters by ID or Email (AND condition).
type GetOneUserOptions struct {
	ID    string
	Email string
}

// UpsertUserOptions inserts a user keyed by Email or refreshes its tokens.
// An empty RefreshToken or Name keeps the stored value.
type UpsertUserOptions struct {
	Email        string
	Name         string
	AccessToken  string
	RefreshToken string
	TokenExpiry  *time.Time
}
