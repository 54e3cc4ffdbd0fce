package handler

import (
	"net/http"
	"strconv"

	"github.com/danishhshk/FreshBasket/internal/config"
	"github.com/danishhshk/FreshBasket/internal/middleware"
	"github.com/danishhshk/FreshBasket/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminOrderHandler struct {
	uc  *usecase.AdminOrderUsecase
	cfg config.Config
}

// DI
func NewAdminOrderHandler(uc *usecase.AdminOrderUsecase, cfg config.Config) *AdminOrderHandler {
	return &AdminOrderHandler{uc: uc, cfg: cfg}
}

type UpdateStatusRequest struct {
	Status string `json:"status" form:"status"`
}

func (h *AdminOrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/admin/orders")
	g.Use(middleware.AuthJWT(h.cfg))
	g.Use(middleware.AdminGuard())

	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.POST("/:id/status", h.updateStatus)
}

func (h *AdminOrderHandler) list(c echo.Context) error {
	out, err := h.uc.ListOrders(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminOrderHandler) detail(c echo.Context) error {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminOrderHandler) updateStatus(c echo.Context) error {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.UpdateStatus(c.Request().Context(), orderID, req.Status); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "status updated"})
}
