package repository

import (
	"context"
	"errors"

	"github.com/danishhshk/FreshBasket/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索（カテゴリ・キーワード）
type ProductListQuery struct {
	//"all" または空なら全カテゴリ
	Category string
	//name / description の部分一致（大文字小文字は無視）
	Search string
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	//公開中（is_available=true）の商品一覧
	ListAvailable(ctx context.Context, q ProductListQuery) ([]model.Product, error)

	//非公開も含めた全カテゴリの重複なし一覧
	ListCategories(ctx context.Context) ([]string, error)

	//トップページ用
	ListFeatured(ctx context.Context, limit int) ([]model.Product, error)

	//同カテゴリの公開商品（自分自身は除く）
	ListRelated(ctx context.Context, category string, excludeID int64, limit int) ([]model.Product, error)

	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error

	//管理画面用
	ListAll(ctx context.Context) ([]model.Product, error)
	ListLowStock(ctx context.Context, threshold int64) ([]model.Product, error)
	Count(ctx context.Context) (int64, error)
}
