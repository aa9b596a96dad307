package repository

import (
	"context"

	"email-task-assistant/internal/model"
)

//go:generate mockery --name Repository
type Repository interface {
	CreateTeam(ctx context.Context, opt CreateTeamOptions) (model.Team, error)
	GetOneTeam(ctx context.Context, id string) (model.Team, error)
	ListTeams(ctx context.Context, userID string) ([]model.Team, error)
	UpdateTeam(ctx context.Context, opt UpdateTeamOptions) (model.Team, error)
	DeleteTeam(ctx context.Context, id string) error

	// AddMember is a no-op when the user already belongs to the team.
	AddMember(ctx context.Context, opt AddMemberOptions) (model.TeamMember, error)
	// GetMember returns the zero TeamMember when userID is not in the team.
	GetMember(ctx context.Context, teamID, userID string) (model.TeamMember, error)
	ListMembers(ctx context.Context, teamID string) ([]model.TeamMember, error)
}
