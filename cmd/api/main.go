package main

import (
	"os"
	"time"

	"store/internal/config"
	"store/internal/domain/model"
	"store/internal/handler"
	"store/internal/infra/db"
	infraRepo "store/internal/infra/repository"
	"store/internal/server"
	"store/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	// .envは無くても起動できる（本番は環境変数のみ）
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config load failed")
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect failed")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.Category{},
		&model.Product{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
		&model.AuditLog{},
		&model.InventoryAdjustment{},
	); err != nil {
		logger.Fatal().Err(err).Msg("migrate failed")
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	rtRepo := infraRepo.NewRefreshTokenRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	auditLogRepo := infraRepo.NewAuditLogGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, userRepo, rtRepo, logger)
	productUC := usecase.NewProductUsecase(txManager, productRepo, categoryRepo, logger)
	categoryUC := usecase.NewCategoryUsecase(categoryRepo, productRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, cartItemRepo, productRepo)
	orderUC := usecase.NewOrderUsecase(txManager, userRepo)
	profileUC := usecase.NewProfileUsecase(userRepo)
	adminOrderUC := usecase.NewAdminOrderUsecase(txManager, userRepo)
	adminUserUC := usecase.NewAdminUserUsecase(userRepo, auditLogRepo)
	dashboardUC := usecase.NewDashboardUsecase(orderRepo, userRepo, productRepo)
	auditLogUC := usecase.NewAuditLogUsecase(auditLogRepo)

	//refresh cookie設定
	refreshTTL := 30 * 24 * time.Hour
	cookieSecure := cfg.GoEnv == "prod"

	//Handler生成
	handlers := server.Handlers{
		Auth:           handler.NewAuthHandler(authUC, refreshTTL, cookieSecure),
		Product:        handler.NewProductHandler(productUC),
		Category:       handler.NewCategoryHandler(categoryUC),
		Cart:           handler.NewCartHandler(cartUC),
		Order:          handler.NewOrderHandler(orderUC),
		Profile:        handler.NewProfileHandler(profileUC),
		AdminProduct:   handler.NewAdminProductHandler(productUC),
		AdminCategory:  handler.NewAdminCategoryHandler(categoryUC),
		AdminOrder:     handler.NewAdminOrderHandler(adminOrderUC),
		AdminUser:      handler.NewAdminUserHandler(adminUserUC),
		AdminDashboard: handler.NewAdminDashboardHandler(dashboardUC),
		AdminAuditLog:  handler.NewAdminAuditLogHandler(auditLogUC),
	}

	e := server.New(cfg, logger, userRepo, handlers)

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := server.Start(e, cfg); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
