package handler

import (
	"net/http"
	"strconv"

	"github.com/danishhshk/FreshBasket/internal/config"
	"github.com/danishhshk/FreshBasket/internal/middleware"
	"github.com/danishhshk/FreshBasket/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP。所有キーはCookieのカートトークン。
type CartHandler struct {
	uc  *usecase.CartUsecase
	cfg config.Config
}

// DI
func NewCartHandler(uc *usecase.CartUsecase, cfg config.Config) *CartHandler {
	return &CartHandler{uc: uc, cfg: cfg}
}

type QuantityRequest struct {
	Quantity int64 `json:"quantity" form:"quantity"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/cart")
	g.Use(middleware.CartSession(h.cfg.CookieSecure))

	g.GET("", h.getCart)
	g.POST("/add/:productId", h.addItem)
	g.POST("/update/:cartItemId", h.updateItem)
	g.POST("/remove/:cartItemId", h.removeItem)
}

func (h *CartHandler) getCart(c echo.Context) error {
	token, ok := getCartTokenFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	out, err := h.uc.GetCart(c.Request().Context(), token)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) addItem(c echo.Context) error {
	token, ok := getCartTokenFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req QuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.AddItem(c.Request().Context(), token, productID, req.Quantity); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.GetCart(c.Request().Context(), token)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) updateItem(c echo.Context) error {
	token, ok := getCartTokenFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	itemID, err := strconv.ParseInt(c.Param("cartItemId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req QuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.UpdateItem(c.Request().Context(), itemID, req.Quantity); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.GetCart(c.Request().Context(), token)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) removeItem(c echo.Context) error {
	token, ok := getCartTokenFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	itemID, err := strconv.ParseInt(c.Param("cartItemId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.RemoveItem(c.Request().Context(), itemID); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.GetCart(c.Request().Context(), token)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
