package repository

import (
	"context"

	"github.com/danishhshk/FreshBasket/internal/domain/model"
)

type AdminOrderListFilter struct {
	//"all" または空なら全件
	Status string
}

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	//新しい順
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	//管理者用
	ListAdmin(ctx context.Context, f AdminOrderListFilter) ([]model.Order, error)
	ListRecent(ctx context.Context, limit int) ([]model.Order, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error)
	SumTotalAmount(ctx context.Context) (float64, error)
}
