package usecase_test

import (
	"context"
	"testing"

	"github.com/danishhshk/FreshBasket/internal/domain/model"
	repo "github.com/danishhshk/FreshBasket/internal/repository"
	"github.com/danishhshk/FreshBasket/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// カテゴリ未指定は"all"、検索語は前後の空白を落として渡す
func TestCatalogListProducts_DefaultsAndTrims(t *testing.T) {
	productRepo := &ProductRepoMock{}
	uc := usecase.NewCatalogUsecase(productRepo)

	productRepo.On("ListAvailable", mock.Anything, repo.ProductListQuery{
		Category: "all",
		Search:   "apple",
	}).Return([]model.Product{{ID: 1, Name: "Red Apples"}}, nil)
	productRepo.On("ListCategories", mock.Anything).
		Return([]string{"fruit", "vegetable"}, nil)

	out, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{
		Category: "",
		Search:   "  apple ",
	})

	assert.NoError(t, err)
	assert.Equal(t, "all", out.Category)
	assert.Equal(t, "apple", out.Search)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, []string{"fruit", "vegetable"}, out.Categories)
}

func TestCatalogListProducts_CategoryPassedThrough(t *testing.T) {
	productRepo := &ProductRepoMock{}
	uc := usecase.NewCatalogUsecase(productRepo)

	productRepo.On("ListAvailable", mock.Anything, repo.ProductListQuery{
		Category: "fruit",
	}).Return([]model.Product{}, nil)
	productRepo.On("ListCategories", mock.Anything).Return([]string{"fruit"}, nil)

	out, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{
		Category: "fruit",
	})

	assert.NoError(t, err)
	assert.Equal(t, "fruit", out.Category)
	productRepo.AssertExpectations(t)
}

func TestCatalogGetProduct_NotFound(t *testing.T) {
	productRepo := &ProductRepoMock{}
	uc := usecase.NewCatalogUsecase(productRepo)

	productRepo.On("FindByID", mock.Anything, int64(99)).
		Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProduct(context.Background(), 99)

	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestCatalogGetProduct_InvalidID(t *testing.T) {
	productRepo := &ProductRepoMock{}
	uc := usecase.NewCatalogUsecase(productRepo)

	_, err := uc.GetProduct(context.Background(), 0)

	assert.ErrorIs(t, err, usecase.ErrNotFound)
	productRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

// 関連商品は同カテゴリ・自分以外・最大4件
func TestCatalogGetRelated(t *testing.T) {
	productRepo := &ProductRepoMock{}
	uc := usecase.NewCatalogUsecase(productRepo)

	p := model.Product{ID: 1, Category: "fruit"}
	productRepo.On("ListRelated", mock.Anything, "fruit", int64(1), 4).
		Return([]model.Product{{ID: 2}, {ID: 5}}, nil)

	related, err := uc.GetRelated(context.Background(), p)

	assert.NoError(t, err)
	assert.Len(t, related, 2)
	productRepo.AssertExpectations(t)
}

func TestCatalogGetFeatured(t *testing.T) {
	productRepo := &ProductRepoMock{}
	uc := usecase.NewCatalogUsecase(productRepo)

	productRepo.On("ListFeatured", mock.Anything, 6).
		Return([]model.Product{{ID: 1}}, nil)

	items, err := uc.GetFeatured(context.Background())

	assert.NoError(t, err)
	assert.Len(t, items, 1)
}
