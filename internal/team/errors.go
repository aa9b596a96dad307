package team

import "errors"

var (
	ErrTeamNotFound = errors.New("team not found")
	ErrNotMember    = errors.New("user is not a member of the team")
	ErrForbidden    = errors.New("insufficient team role")
	ErrEmptyName    = errors.New("team name is empty")
	ErrInvalidRole  = errors.New("invalid team role")
)
