package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/danishhshk/FreshBasket/internal/domain/model"
	repo "github.com/danishhshk/FreshBasket/internal/repository"

	"github.com/google/uuid"
)

// 画像が無いときのプレースホルダ
const placeholderImageURL = "/static/images/placeholder.jpg"

// 受け付ける画像拡張子
var allowedImageExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".webp": {},
}

// アップロードされた画像を保存する約束。
// 保存できたら配信用URLを返す。
type ImageStorage interface {
	Save(filename string, r io.Reader) (string, error)
}

type ProductImageUpload struct {
	Filename string
	Content  io.Reader
}

type AdminProductInput struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Stock       int64
	ImageURL    string
	IsAvailable bool

	//multipartで来たファイル（無ければnil）
	Image *ProductImageUpload
}

// AdminProductUsecase は商品CRUD（管理者専用）。
type AdminProductUsecase struct {
	productRepo repo.ProductRepository
	images      ImageStorage
}

func NewAdminProductUsecase(productRepo repo.ProductRepository, images ImageStorage) *AdminProductUsecase {
	return &AdminProductUsecase{productRepo: productRepo, images: images}
}

func (u *AdminProductUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return u.productRepo.ListAll(ctx)
}

// CreateProduct は商品作成。
// 画像ファイルが不正な拡張子なら保存だけ拒否し（warningで返す）、
// 残りの項目はそのまま書き込む。
func (u *AdminProductUsecase) CreateProduct(ctx context.Context, in AdminProductInput) (model.Product, string, error) {
	if err := validateProductInput(in); err != nil {
		return model.Product{}, "", err
	}

	imageURL := strings.TrimSpace(in.ImageURL)
	warning := ""

	if in.Image != nil {
		url, err := u.saveImage(in.Image)
		switch {
		case errors.Is(err, ErrInvalidFileType):
			warning = ErrInvalidFileType.Error()
		case err != nil:
			return model.Product{}, "", ErrStorage
		default:
			imageURL = url
		}
	}

	if imageURL == "" {
		imageURL = placeholderImageURL
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Category:    strings.TrimSpace(in.Category),
		Price:       in.Price,
		Stock:       in.Stock,
		ImageURL:    imageURL,
		IsAvailable: in.IsAvailable,
	})
	if err != nil {
		return model.Product{}, "", err
	}
	return p, warning, nil
}

// UpdateProduct は商品更新。画像の扱いはCreateと同じで、
// 不正ファイルのときは既存URL（またはテキスト指定のURL）を使い続ける。
func (u *AdminProductUsecase) UpdateProduct(ctx context.Context, productID int64, in AdminProductInput) (string, error) {
	if productID <= 0 {
		return "", ErrNotFound
	}
	if err := validateProductInput(in); err != nil {
		return "", err
	}

	current, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}

	imageURL := current.ImageURL
	if s := strings.TrimSpace(in.ImageURL); s != "" {
		imageURL = s
	}
	warning := ""

	if in.Image != nil {
		url, err := u.saveImage(in.Image)
		switch {
		case errors.Is(err, ErrInvalidFileType):
			warning = ErrInvalidFileType.Error()
		case err != nil:
			return "", ErrStorage
		default:
			imageURL = url
		}
	}

	err = u.productRepo.Update(ctx, model.Product{
		ID:          productID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Category:    strings.TrimSpace(in.Category),
		Price:       in.Price,
		Stock:       in.Stock,
		ImageURL:    imageURL,
		IsAvailable: in.IsAvailable,
	})
	if errors.Is(err, repo.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return warning, nil
}

func (u *AdminProductUsecase) DeleteProduct(ctx context.Context, productID int64) error {
	err := u.productRepo.Delete(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func validateProductInput(in AdminProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrValidation
	}
	if strings.TrimSpace(in.Category) == "" {
		return ErrValidation
	}
	if in.Price < 0 {
		return ErrValidation
	}
	if in.Stock < 0 {
		return ErrValidation
	}
	return nil
}

// 拡張子チェック → 衝突しない名前で保存
func (u *AdminProductUsecase) saveImage(img *ProductImageUpload) (string, error) {
	ext := strings.ToLower(filepath.Ext(img.Filename))
	if _, ok := allowedImageExtensions[ext]; !ok {
		return "", ErrInvalidFileType
	}

	filename := fmt.Sprintf("%s_%s%s",
		time.Now().Format("20060102_150405"),
		uuid.NewString(),
		ext,
	)
	return u.images.Save(filename, img.Content)
}
