package team

import "email-task-assistant/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	Name        string
	Description string
}

// UpdateInput is a partial update; empty or nil fields keep their value.
type UpdateInput struct {
	ID          string
	Name        string
	Description *string
}

type AddMemberInput struct {
	TeamID string
	Email  string
	Role   model.TeamRole
}

type ListTasksInput struct {
	TeamID string
	Limit  int
	Offset int
}

// --- UseCase Outputs ---

type DetailOutput struct {
	Team    model.Team
	Members []model.TeamMember
}

type ListOutput struct {
	Teams []model.Team
}
