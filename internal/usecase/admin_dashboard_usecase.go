package usecase

import (
	"context"

	"github.com/danishhshk/FreshBasket/internal/domain/model"
	repo "github.com/danishhshk/FreshBasket/internal/repository"
)

// 在庫が10を切ったら「少ない」扱い
const lowStockThreshold = 10

// ダッシュボードに出す直近注文の件数
const recentOrderLimit = 10

type DashboardStats struct {
	TotalUsers    int64 `json:"total_users"`
	TotalProducts int64 `json:"total_products"`
	TotalOrders   int64 `json:"total_orders"`
	PendingOrders int64 `json:"pending_orders"`

	TotalRevenue float64 `json:"total_revenue"`

	RecentOrders     []model.Order   `json:"recent_orders"`
	LowStockProducts []model.Product `json:"low_stock_products"`
}

type AdminDashboardUsecase struct {
	userRepo    repo.UserRepository
	productRepo repo.ProductRepository
	orderRepo   repo.OrderRepository
}

func NewAdminDashboardUsecase(
	userRepo repo.UserRepository,
	productRepo repo.ProductRepository,
	orderRepo repo.OrderRepository,
) *AdminDashboardUsecase {
	return &AdminDashboardUsecase{
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

func (u *AdminDashboardUsecase) GetStats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.TotalUsers, err = u.userRepo.Count(ctx); err != nil {
		return DashboardStats{}, err
	}
	if stats.TotalProducts, err = u.productRepo.Count(ctx); err != nil {
		return DashboardStats{}, err
	}
	if stats.TotalOrders, err = u.orderRepo.Count(ctx); err != nil {
		return DashboardStats{}, err
	}
	if stats.PendingOrders, err = u.orderRepo.CountByStatus(ctx, model.OrderStatusPending); err != nil {
		return DashboardStats{}, err
	}
	if stats.TotalRevenue, err = u.orderRepo.SumTotalAmount(ctx); err != nil {
		return DashboardStats{}, err
	}
	if stats.RecentOrders, err = u.orderRepo.ListRecent(ctx, recentOrderLimit); err != nil {
		return DashboardStats{}, err
	}
	if stats.LowStockProducts, err = u.productRepo.ListLowStock(ctx, lowStockThreshold); err != nil {
		return DashboardStats{}, err
	}

	return stats, nil
}
