package repository

import "email-task-assistant/internal/model"

// CreateTeamOptions inserts a team with CreatedBy as its owner member.
type CreateTeamOptions struct {
	Name        string
	Description string
	CreatedBy   string
}

type UpdateTeamOptions struct {
	ID          string
	Name        string
	Description string
}

type AddMemberOptions struct {
	TeamID string
	UserID string
	Role   model.TeamRole
}
