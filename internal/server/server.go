package server

import (
	"github.com/danishhshk/FreshBasket/internal/config"
	"github.com/danishhshk/FreshBasket/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Handlers はルーティング登録が必要なハンドラ一式
type Handlers struct {
	Auth           *handler.AuthHandler
	Product        *handler.ProductHandler
	Cart           *handler.CartHandler
	Order          *handler.OrderHandler
	AdminProduct   *handler.AdminProductHandler
	AdminOrder     *handler.AdminOrderHandler
	AdminUser      *handler.AdminUserHandler
	AdminDashboard *handler.AdminDashboardHandler
}

func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	//商品画像の配信
	e.Static(cfg.UploadBaseURL, cfg.UploadDir)

	h.Auth.RegisterRoutes(e)
	h.Product.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e)
	h.Order.RegisterRoutes(e)
	h.AdminProduct.RegisterRoutes(e)
	h.AdminOrder.RegisterRoutes(e)
	h.AdminUser.RegisterRoutes(e)
	h.AdminDashboard.RegisterRoutes(e)

	return e
}

func Start(cfg config.Config, h Handlers) error {
	e := New(cfg, h)
	return e.Start(":" + cfg.Port)
}
