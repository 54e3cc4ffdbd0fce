package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/danishhshk/FreshBasket/internal/domain/model"
	repo "github.com/danishhshk/FreshBasket/internal/repository"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type PlaceOrderInput struct {
	ShippingAddress string
	Notes           string
}

type OrderItemOutput struct {
	ProductID *int64  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
}

type OrderOutput struct {
	ID              int64             `json:"id"`
	UserID          int64             `json:"user_id"`
	Status          string            `json:"status"`
	TotalAmount     float64           `json:"total_amount"`
	ShippingAddress string            `json:"shipping_address"`
	Notes           string            `json:"notes,omitempty"`
	OrderDate       time.Time         `json:"order_date"`
	Items           []OrderItemOutput `json:"items"`
}

// PlaceOrder はカートを注文に変換する。ここだけは本当に原子性が要る：
// 注文・明細作成、在庫減算、カートクリアを1トランザクションで行い、
// 途中で失敗したら全部巻き戻す（カートは呼び出し前のまま残る）。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, token string, in PlaceOrderInput) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, ErrUnauthenticated
	}

	address := strings.TrimSpace(in.ShippingAddress)
	if address == "" {
		return OrderOutput{}, ErrValidation
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cartItems, err := r.CartItems().ListByToken(ctx, token)
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		orderItems := make([]model.OrderItem, 0, len(cartItems))
		var total float64 = 0
		now := time.Now()

		for _, ci := range cartItems {
			p, err := r.Products().FindByID(ctx, ci.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				return ErrNotFound
			}
			if err != nil {
				return err
			}

			//在庫減算（足りないなら false → 全体ロールバック）
			ok, err := r.Inventory().DecreaseStockIfEnough(ctx, ci.ProductID, ci.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return ErrInsufficientStock
			}

			//購入時点の単価を凍結する
			productID := ci.ProductID
			orderItems = append(orderItems, model.OrderItem{
				ProductID:           &productID,
				ProductNameSnapshot: p.Name,
				Quantity:            ci.Quantity,
				Price:               p.Price,
				CreatedAt:           now,
			})

			total += p.Price * float64(ci.Quantity)
		}

		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:          userID,
			OrderDate:       now,
			TotalAmount:     total,
			Status:          model.OrderStatusPending,
			ShippingAddress: address,
			Notes:           in.Notes,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return err
		}

		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return err
		}

		//成功時だけカートを空にする
		if err := r.CartItems().DeleteByToken(ctx, token); err != nil {
			return err
		}

		out = toOrderOutput(model.Order{
			ID:              orderID,
			UserID:          userID,
			OrderDate:       now,
			TotalAmount:     total,
			Status:          model.OrderStatusPending,
			ShippingAddress: address,
			Notes:           in.Notes,
		}, orderItems)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// GetOrder は所有者本人にだけ注文を見せる。
func (u *OrderUsecase) GetOrder(ctx context.Context, orderID int64, requestingUserID int64) (OrderOutput, error) {
	if requestingUserID <= 0 {
		return OrderOutput{}, ErrUnauthenticated
	}
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
		if o.UserID != requestingUserID {
			return ErrForbidden
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

// 自分の注文履歴（新しい順）
func (u *OrderUsecase) ListOrders(ctx context.Context, userID int64) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, ErrUnauthenticated
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUserID(ctx, userID)
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

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Name:      it.ProductNameSnapshot,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}

	return OrderOutput{
		ID:              o.ID,
		UserID:          o.UserID,
		Status:          string(o.Status),
		TotalAmount:     o.TotalAmount,
		ShippingAddress: o.ShippingAddress,
		Notes:           o.Notes,
		OrderDate:       o.OrderDate,
		Items:           outItems,
	}
}
