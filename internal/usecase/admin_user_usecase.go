package usecase

import (
	"context"
	"errors"

	"github.com/danishhshk/FreshBasket/internal/domain/model"
	repo "github.com/danishhshk/FreshBasket/internal/repository"
)

type AdminUserUsecase struct {
	userRepo repo.UserRepository
}

func NewAdminUserUsecase(userRepo repo.UserRepository) *AdminUserUsecase {
	return &AdminUserUsecase{userRepo: userRepo}
}

func (u *AdminUserUsecase) ListUsers(ctx context.Context) ([]model.User, error) {
	return u.userRepo.ListAll(ctx)
}

// ToggleAdmin は is_admin を反転する。自分自身は対象にできない。
func (u *AdminUserUsecase) ToggleAdmin(ctx context.Context, actorUserID int64, targetUserID int64) (model.User, error) {
	if actorUserID == targetUserID {
		return model.User{}, ErrSelfDemotion
	}

	target, err := u.userRepo.FindByID(ctx, targetUserID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.User{}, ErrNotFound
	}
	if err != nil {
		return model.User{}, err
	}

	newValue := !target.IsAdmin
	if err := u.userRepo.UpdateIsAdmin(ctx, targetUserID, newValue); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.User{}, ErrNotFound
		}
		return model.User{}, err
	}

	target.IsAdmin = newValue
	return target, nil
}
