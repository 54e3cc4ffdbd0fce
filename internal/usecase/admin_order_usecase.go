package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/danishhshk/FreshBasket/internal/domain/model"
	repo "github.com/danishhshk/FreshBasket/internal/repository"
)

type AdminOrderUsecase struct {
	tx repo.TransactionManager
}

func NewAdminOrderUsecase(tx repo.TransactionManager) *AdminOrderUsecase {
	return &AdminOrderUsecase{tx: tx}
}

// 注文一覧（ステータス絞り込み付き）
func (u *AdminOrderUsecase) ListOrders(ctx context.Context, statusFilter string) ([]OrderOutput, error) {
	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListAdmin(ctx, repo.AdminOrderListFilter{Status: statusFilter})
		if err != nil {
			return err
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return err
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

func (u *AdminOrderUsecase) GetOrder(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, ErrNotFound
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return err
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// UpdateStatus は5値以外を拒否する。
// cancelled への遷移では在庫を戻し、以後の変更は受け付けない
// （在庫を二重に戻さないため）。
func (u *AdminOrderUsecase) UpdateStatus(ctx context.Context, orderID int64, newStatus string) error {
	if orderID <= 0 {
		return ErrNotFound
	}

	status := strings.TrimSpace(newStatus)
	if !model.IsValidOrderStatus(status) {
		return ErrValidation
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		//同じ値なら何もしない
		if string(o.Status) == status {
			return nil
		}
		if o.Status == model.OrderStatusCancelled {
			return ErrValidation
		}

		if model.OrderStatus(status) == model.OrderStatusCancelled {
			items, err := r.OrderItems().ListByOrderID(ctx, orderID)
			if err != nil {
				return err
			}
			for _, it := range items {
				//削除済み商品の明細は戻し先が無い
				if it.ProductID == nil {
					continue
				}
				if err := r.Inventory().IncreaseStock(ctx, *it.ProductID, it.Quantity); err != nil {
					return err
				}
			}
		}

		return r.Orders().UpdateStatus(ctx, orderID, model.OrderStatus(status))
	})
}
