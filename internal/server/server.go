package server

import (
	"store/internal/config"
	"store/internal/handler"
	"store/internal/middleware"
	"store/internal/repository"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// Handlersはルート登録に必要なハンドラ一式
type Handlers struct {
	Auth           *handler.AuthHandler
	Product        *handler.ProductHandler
	Category       *handler.CategoryHandler
	Cart           *handler.CartHandler
	Order          *handler.OrderHandler
	Profile        *handler.ProfileHandler
	AdminProduct   *handler.AdminProductHandler
	AdminCategory  *handler.AdminCategoryHandler
	AdminOrder     *handler.AdminOrderHandler
	AdminUser      *handler.AdminUserHandler
	AdminDashboard *handler.AdminDashboardHandler
	AdminAuditLog  *handler.AdminAuditLogHandler
}

// Newはechoを組み立ててルートを全部登録する
func New(cfg config.Config, logger zerolog.Logger, userRepo repository.UserRepository, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(middleware.RequestLogger(logger))

	if cfg.FEURL != "" {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     []string{cfg.FEURL},
			AllowCredentials: true,
		}))
	}

	RegisterRoutes(e, cfg, userRepo, h)

	return e
}

// Startはサーバーを起動する
func Start(e *echo.Echo, cfg config.Config) error {
	addr := cfg.Port
	if addr == "" {
		addr = "8080"
	}
	if addr[0] != ':' {
		addr = ":" + addr
	}
	return e.Start(addr)
}
