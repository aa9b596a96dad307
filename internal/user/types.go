package user

import "time"

type UpsertInput struct {
	Email        string
	Name         string
	AccessToken  string
	RefreshToken string
	TokenExpiry  *time.Time
}
