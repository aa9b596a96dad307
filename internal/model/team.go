package model

import "time"

// TeamRole is a member's role inside a team.
type TeamRole string

const (
	TeamRoleOwner  TeamRole = "owner"
	TeamRoleAdmin  TeamRole = "admin"
	TeamRoleMember TeamRole = "member"
)

// CanManage reports whether the role may edit the team and its members.
func (r TeamRole) CanManage() bool {
	return r == TeamRoleOwner || r == TeamRoleAdmin
}

type Team struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	CreatedBy   string    `db:"created_by"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type TeamMember struct {
	TeamID   string    `db:"team_id"`
	UserID   string    `db:"user_id"`
	Email    string    `db:"email"`
	Role     TeamRole  `db:"role"`
	JoinedAt time.Time `db:"joined_at"`
}
