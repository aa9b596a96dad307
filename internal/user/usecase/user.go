package usecase

import (
	"context"
	"strings"

	"email-task-assistant/internal/model"
	"email-task-assistant/internal/user"
	repo "email-task-assistant/internal/user/repository"
)

func (uc *implUseCase) Detail(ctx context.Context, id string) (model.User, error) {
	return uc.getOne(ctx, "Detail", repo.GetOneUserOptions{ID: id})
}

func (uc *implUseCase) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return model.User{}, user.ErrEmptyEmail
	}
	return uc.getOne(ctx, "GetByEmail", repo.GetOneUserOptions{Email: email})
}

func (uc *implUseCase) Upsert(ctx context.Context, input user.UpsertInput) (model.User, error) {
	if strings.TrimSpace(input.Email) == "" {
		return model.User{}, user.ErrEmptyEmail
	}
	u, err := uc.repo.UpsertUser(ctx, repo.UpsertUserOptions{
		Email:        input.Email,
		Name:         input.Name,
		AccessToken:  input.AccessToken,
		RefreshToken: input.RefreshToken,
		TokenExpiry:  input.TokenExpiry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Upsert UpsertUser: %v", err)
		return model.User{}, err
	}
	return u, nil
}

func (uc *implUseCase) getOne(ctx context.Context, method string, opt repo.GetOneUserOptions) (model.User, error) {
	u, err := uc.repo.GetOneUser(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s GetOneUser: %v", method, err)
		return model.User{}, err
	}
	if u.ID == "" {
		return model.User{}, user.ErrUserNotFound
	}
	return u, nil
}
