package handler

import (
	"net/http"
	"strconv"

	"github.com/danishhshk/FreshBasket/internal/domain/model"
	"github.com/danishhshk/FreshBasket/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 商品閲覧（認証不要）
type ProductHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewProductHandler(uc *usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.home)
	e.GET("/products", h.listProducts)
	e.GET("/products/:id", h.productDetail)
}

type productDetailResponse struct {
	Product model.Product   `json:"product"`
	Related []model.Product `json:"related_products"`
}

func (h *ProductHandler) home(c echo.Context) error {
	items, err := h.uc.GetFeatured(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"featured_products": items,
	})
}

func (h *ProductHandler) listProducts(c echo.Context) error {
	out, err := h.uc.ListProducts(c.Request().Context(), usecase.ListProductsInput{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) productDetail(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	p, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return writeError(c, err)
	}

	related, err := h.uc.GetRelated(c.Request().Context(), p)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, productDetailResponse{
		Product: p,
		Related: related,
	})
}
