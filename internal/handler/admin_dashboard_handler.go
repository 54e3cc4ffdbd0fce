package handler

import (
	"net/http"

	"github.com/danishhshk/FreshBasket/internal/config"
	"github.com/danishhshk/FreshBasket/internal/middleware"
	"github.com/danishhshk/FreshBasket/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminDashboardHandler struct {
	uc  *usecase.AdminDashboardUsecase
	cfg config.Config
}

// DI
func NewAdminDashboardHandler(uc *usecase.AdminDashboardUsecase, cfg config.Config) *AdminDashboardHandler {
	return &AdminDashboardHandler{uc: uc, cfg: cfg}
}

func (h *AdminDashboardHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/admin/dashboard")
	g.Use(middleware.AuthJWT(h.cfg))
	g.Use(middleware.AdminGuard())

	g.GET("", h.stats)
}

func (h *AdminDashboardHandler) stats(c echo.Context) error {
	stats, err := h.uc.GetStats(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
