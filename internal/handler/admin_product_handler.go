package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/danishhshk/FreshBasket/internal/config"
	"github.com/danishhshk/FreshBasket/internal/middleware"
	"github.com/danishhshk/FreshBasket/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminProductHandler struct {
	uc  *usecase.AdminProductUsecase
	cfg config.Config
}

// DI
func NewAdminProductHandler(uc *usecase.AdminProductUsecase, cfg config.Config) *AdminProductHandler {
	return &AdminProductHandler{uc: uc, cfg: cfg}
}

func (h *AdminProductHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/admin/products")
	g.Use(middleware.AuthJWT(h.cfg))
	g.Use(middleware.AdminGuard())

	g.GET("", h.list)
	g.POST("", h.create)
	g.POST("/:id", h.update)
	g.POST("/:id/delete", h.delete)
}

func (h *AdminProductHandler) list(c echo.Context) error {
	items, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *AdminProductHandler) create(c echo.Context) error {
	in, err := h.bindProductInput(c)
	if err != nil {
		return writeError(c, err)
	}

	p, warning, err := h.uc.CreateProduct(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	resp := map[string]interface{}{"product": p}
	if warning != "" {
		resp["warning"] = warning
	}
	return c.JSON(http.StatusCreated, resp)
}

func (h *AdminProductHandler) update(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	in, err := h.bindProductInput(c)
	if err != nil {
		return writeError(c, err)
	}

	warning, err := h.uc.UpdateProduct(c.Request().Context(), productID, in)
	if err != nil {
		return writeError(c, err)
	}

	resp := map[string]interface{}{"message": "updated"}
	if warning != "" {
		resp["warning"] = warning
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *AdminProductHandler) delete(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), productID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
}

// フォーム（multipart含む）から入力を組み立てる。
// price / stock は数値として読めなければ validation error。
func (h *AdminProductHandler) bindProductInput(c echo.Context) (usecase.AdminProductInput, error) {
	name := c.FormValue("name")
	category := c.FormValue("category")
	priceRaw := c.FormValue("price")
	stockRaw := c.FormValue("stock")

	if name == "" || category == "" || priceRaw == "" || stockRaw == "" {
		return usecase.AdminProductInput{}, usecase.ErrValidation
	}

	price, err := strconv.ParseFloat(priceRaw, 64)
	if err != nil {
		return usecase.AdminProductInput{}, usecase.ErrValidation
	}
	stock, err := strconv.ParseInt(stockRaw, 10, 64)
	if err != nil {
		return usecase.AdminProductInput{}, usecase.ErrValidation
	}

	available := c.FormValue("is_available")
	in := usecase.AdminProductInput{
		Name:        name,
		Description: c.FormValue("description"),
		Category:    category,
		Price:       price,
		Stock:       stock,
		ImageURL:    strings.TrimSpace(c.FormValue("image_url")),
		IsAvailable: available == "on" || available == "true",
	}

	//画像ファイルは任意
	if fh, err := c.FormFile("image_file"); err == nil && fh != nil && fh.Filename != "" {
		src, err := fh.Open()
		if err != nil {
			return usecase.AdminProductInput{}, usecase.ErrStorage
		}
		//usecase側で読み終わるまで開きっぱなしにする
		c.Response().After(func() { src.Close() })
		in.Image = &usecase.ProductImageUpload{
			Filename: fh.Filename,
			Content:  src,
		}
	}

	return in, nil
}
