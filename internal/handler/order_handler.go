package handler

import (
	"net/http"
	"strconv"

	"github.com/danishhshk/FreshBasket/internal/config"
	"github.com/danishhshk/FreshBasket/internal/middleware"
	"github.com/danishhshk/FreshBasket/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc  *usecase.OrderUsecase
	cfg config.Config
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase, cfg config.Config) *OrderHandler {
	return &OrderHandler{uc: uc, cfg: cfg}
}

type CheckoutRequest struct {
	ShippingAddress string `json:"shipping_address" form:"shipping_address"`
	Notes           string `json:"notes" form:"notes"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	//チェックアウトはログイン＋カートトークンの両方が要る
	checkout := e.Group("/checkout")
	checkout.Use(middleware.AuthJWT(h.cfg))
	checkout.Use(middleware.CartSession(h.cfg.CookieSecure))
	checkout.POST("", h.checkout)

	g := e.Group("/orders")
	g.Use(middleware.AuthJWT(h.cfg))
	g.GET("", h.listOrders)
	g.GET("/:id", h.getOrder)
}

func (h *OrderHandler) checkout(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}
	token, ok := getCartTokenFromContext(c)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), userID, token, usecase.PlaceOrderInput{
		ShippingAddress: req.ShippingAddress,
		Notes:           req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) listOrders(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}

	out, err := h.uc.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) getOrder(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetOrder(c.Request().Context(), orderID, userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
