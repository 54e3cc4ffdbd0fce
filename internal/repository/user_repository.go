package repository

import (
	"context"

	"github.com/danishhshk/FreshBasket/internal/domain/model"
)

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成（IDが埋まって返る）
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID int64) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)

	//管理画面用
	ListAll(ctx context.Context) ([]model.User, error)
	UpdateIsAdmin(ctx context.Context, userID int64, isAdmin bool) error
	Count(ctx context.Context) (int64, error)
}
