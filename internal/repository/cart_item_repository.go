package repository

import (
	"context"

	"github.com/danishhshk/FreshBasket/internal/domain/model"
)

// カート明細はセッショントークンで所有される
type CartItemRepository interface {
	ListByToken(ctx context.Context, token string) ([]model.CartItem, error)
	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)
	//無ければ ErrNotFound
	FindByTokenAndProduct(ctx context.Context, token string, productID int64) (model.CartItem, error)
	Create(ctx context.Context, item model.CartItem) (model.CartItem, error)
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error
	//チェックアウト成功時のカートクリア
	DeleteByToken(ctx context.Context, token string) error
}
