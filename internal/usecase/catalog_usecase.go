package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/danishhshk/FreshBasket/internal/domain/model"
	repo "github.com/danishhshk/FreshBasket/internal/repository"
)

// 関連商品は最大4件
const relatedProductLimit = 4

// トップページの注目商品は6件
const featuredProductLimit = 6

// CatalogUsecase は商品閲覧まわりの業務ロジック。
type CatalogUsecase struct {
	productRepo repo.ProductRepository
}

func NewCatalogUsecase(productRepo repo.ProductRepository) *CatalogUsecase {
	return &CatalogUsecase{productRepo: productRepo}
}

type ListProductsInput struct {
	Category string
	Search   string
}

type ProductListOutput struct {
	Items      []model.Product `json:"items"`
	Categories []string        `json:"categories"`
	Category   string          `json:"selected_category"`
	Search     string          `json:"search_term"`
}

// 公開商品の一覧＋全カテゴリ。
// categoryが空なら"all"扱い。searchは前後の空白を無視。
func (u *CatalogUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = "all"
	}
	search := strings.TrimSpace(in.Search)

	items, err := u.productRepo.ListAvailable(ctx, repo.ProductListQuery{
		Category: category,
		Search:   search,
	})
	if err != nil {
		return ProductListOutput{}, err
	}

	categories, err := u.productRepo.ListCategories(ctx)
	if err != nil {
		return ProductListOutput{}, err
	}

	return ProductListOutput{
		Items:      items,
		Categories: categories,
		Category:   category,
		Search:     search,
	}, nil
}

func (u *CatalogUsecase) GetProduct(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, ErrNotFound
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 同カテゴリの公開商品を最大4件（自分自身は除く）
func (u *CatalogUsecase) GetRelated(ctx context.Context, p model.Product) ([]model.Product, error) {
	related, err := u.productRepo.ListRelated(ctx, p.Category, p.ID, relatedProductLimit)
	if err != nil {
		return []model.Product{}, err
	}
	return related, nil
}

// トップページ用
func (u *CatalogUsecase) GetFeatured(ctx context.Context) ([]model.Product, error) {
	items, err := u.productRepo.ListFeatured(ctx, featuredProductLimit)
	if err != nil {
		return []model.Product{}, err
	}
	return items, nil
}
