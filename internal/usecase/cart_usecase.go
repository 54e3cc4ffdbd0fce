package usecase

import (
	"context"
	"errors"

	"github.com/danishhshk/FreshBasket/internal/domain/model"
	repo "github.com/danishhshk/FreshBasket/internal/repository"
)

// CartUsecase はカート操作の業務ロジック。
// 所有キーはログイン状態と無関係なセッショントークン。
type CartUsecase struct {
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
}

func NewCartUsecase(
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
) *CartUsecase {
	return &CartUsecase{
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

type CartItemView struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	ImageURL  string  `json:"image_url"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

type CartView struct {
	Items     []CartItemView `json:"items"`
	Total     float64        `json:"total"`
	ItemCount int64          `json:"item_count"`
}

// AddItem はカートに追加（同一商品は数量加算）。
// 在庫チェックは「既存数量＋今回の数量」の合算に対して行う。
func (u *CartUsecase) AddItem(ctx context.Context, token string, productID int64, quantity int64) error {
	//最低1個
	if quantity < 1 {
		quantity = 1
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	existing, err := u.cartItemRepo.FindByTokenAndProduct(ctx, token, productID)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return err
	}

	var existingQty int64 = 0
	if err == nil {
		existingQty = existing.Quantity
	}

	if existingQty+quantity > p.Stock {
		return ErrInsufficientStock
	}

	if existingQty > 0 {
		return u.cartItemRepo.UpdateQuantity(ctx, existing.ID, existingQty+quantity)
	}

	_, err = u.cartItemRepo.Create(ctx, model.CartItem{
		SessionToken: token,
		ProductID:    productID,
		Quantity:     quantity,
	})
	return err
}

// UpdateItem は数量の上書き（在庫チェック付き）。
func (u *CartUsecase) UpdateItem(ctx context.Context, cartItemID int64, quantity int64) error {
	if quantity < 1 {
		quantity = 1
	}

	item, err := u.cartItemRepo.FindByID(ctx, cartItemID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	p, err := u.productRepo.FindByID(ctx, item.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	//超過なら保存済みの数量は変えない
	if quantity > p.Stock {
		return ErrInsufficientStock
	}

	return u.cartItemRepo.UpdateQuantity(ctx, cartItemID, quantity)
}

func (u *CartUsecase) RemoveItem(ctx context.Context, cartItemID int64) error {
	err := u.cartItemRepo.DeleteByID(ctx, cartItemID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

// GetCart は明細・合計・点数をまとめて返す。
// 単価は商品の現在価格（スナップショットは注文確定時だけ）。
func (u *CartUsecase) GetCart(ctx context.Context, token string) (CartView, error) {
	items, err := u.cartItemRepo.ListByToken(ctx, token)
	if err != nil {
		return CartView{}, err
	}

	views := make([]CartItemView, 0, len(items))
	var total float64 = 0
	var count int64 = 0

	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			continue
		}
		if err != nil {
			return CartView{}, err
		}

		subtotal := p.Price * float64(it.Quantity)
		views = append(views, CartItemView{
			ID:        it.ID,
			ProductID: it.ProductID,
			Name:      p.Name,
			ImageURL:  p.ImageURL,
			Price:     p.Price,
			Quantity:  it.Quantity,
			Subtotal:  subtotal,
		})

		total += subtotal
		count += it.Quantity
	}

	return CartView{Items: views, Total: total, ItemCount: count}, nil
}
