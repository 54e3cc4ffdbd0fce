package handler

import (
	"net/http"
	"strconv"

	"github.com/danishhshk/FreshBasket/internal/config"
	"github.com/danishhshk/FreshBasket/internal/middleware"
	"github.com/danishhshk/FreshBasket/internal/usecase"

	"github.com/labstack/echo/v4"
)

type AdminUserHandler struct {
	uc  *usecase.AdminUserUsecase
	cfg config.Config
}

// DI
func NewAdminUserHandler(uc *usecase.AdminUserUsecase, cfg config.Config) *AdminUserHandler {
	return &AdminUserHandler{uc: uc, cfg: cfg}
}

func (h *AdminUserHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/admin/users")
	g.Use(middleware.AuthJWT(h.cfg))
	g.Use(middleware.AdminGuard())

	g.GET("", h.list)
	g.POST("/:id/toggle-admin", h.toggleAdmin)
}

func (h *AdminUserHandler) list(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *AdminUserHandler) toggleAdmin(c echo.Context) error {
	actorID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthenticated"})
	}

	targetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	user, err := h.uc.ToggleAdmin(c.Request().Context(), actorID, targetID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
