package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/danishhshk/FreshBasket/internal/domain/model"
	repo "github.com/danishhshk/FreshBasket/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// 公開商品のみを、カテゴリ・キーワード絞り込み付きで返す。
func (r *ProductGormRepository) ListAvailable(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	var products []model.Product

	tx := r.db.WithContext(ctx).Model(&model.Product{}).Where("is_available = ?", true)

	//"all" は番兵値（全カテゴリ）
	cat := strings.TrimSpace(q.Category)
	if cat != "" && cat != "all" {
		tx = tx.Where("category = ?", cat)
	}

	//name / description の部分一致
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + s + "%"
		tx = tx.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}

	if err := tx.Order("id asc").Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// 非公開も含む全カテゴリ（管理画面と同じ見え方に合わせる）
func (r *ProductGormRepository) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Distinct("category").
		Order("category asc").
		Pluck("category", &categories).Error
	if err != nil {
		return []string{}, err
	}
	return categories, nil
}

func (r *ProductGormRepository) ListFeatured(ctx context.Context, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("is_available = ?", true).
		Order("id asc").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// 同カテゴリの公開商品（自分自身は除く）
func (r *ProductGormRepository) ListRelated(ctx context.Context, category string, excludeID int64, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("category = ? AND is_available = ? AND id <> ?", category, true, excludeID).
		Order("id asc").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"name":         p.Name,
		"description":  p.Description,
		"category":     p.Category,
		"price":        p.Price,
		"stock":        p.Stock,
		"image_url":    p.ImageURL,
		"is_available": p.IsAvailable,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 商品削除。カート明細はDB側のCASCADEで消えるが、
// SQLite等の開発環境も考えて明示的に消しておく。
func (r *ProductGormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p model.Product
		if err := tx.First(&p, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		if err := tx.Where("product_id = ?", id).Delete(&model.CartItem{}).Error; err != nil {
			return err
		}

		//過去注文の明細は残す（参照だけ切る）
		if err := tx.Model(&model.OrderItem{}).
			Where("product_id = ?", id).
			Update("product_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Product{}, id).Error
	})
}

func (r *ProductGormRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := r.db.WithContext(ctx).Order("id asc").Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

func (r *ProductGormRepository) ListLowStock(ctx context.Context, threshold int64) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Where("stock < ?", threshold).
		Order("stock asc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

func (r *ProductGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
