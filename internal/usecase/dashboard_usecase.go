package usecase

import (
	"context"
	"net/http"

	"store/internal/domain/model"
	repo "store/internal/repository"
)

// 在庫がこの数以下なら「残りわずか」としてカウントする。
const lowStockThreshold = 5

type DashboardUsecase struct {
	orderRepo   repo.OrderRepository
	userRepo    repo.UserRepository
	productRepo repo.ProductRepository
}

// DI
func NewDashboardUsecase(
	orderRepo repo.OrderRepository,
	userRepo repo.UserRepository,
	productRepo repo.ProductRepository,
) *DashboardUsecase {
	return &DashboardUsecase{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

type DashboardStats struct {
	TotalOrders   int64 `json:"total_orders"`
	NewOrders     int64 `json:"new_orders"`
	TotalUsers    int64 `json:"total_users"`
	TotalProducts int64 `json:"total_products"`
	LowStockCount int64 `json:"low_stock_count"`

	RecentOrders []model.Order `json:"recent_orders"`
}

func (u *DashboardUsecase) GetStats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.TotalOrders, err = u.orderRepo.Count(ctx); err != nil {
		return DashboardStats{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if stats.NewOrders, err = u.orderRepo.CountByStatus(ctx, model.OrderStatusNew); err != nil {
		return DashboardStats{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if stats.TotalUsers, err = u.userRepo.Count(ctx); err != nil {
		return DashboardStats{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if stats.TotalProducts, err = u.productRepo.Count(ctx); err != nil {
		return DashboardStats{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if stats.LowStockCount, err = u.productRepo.CountLowStock(ctx, lowStockThreshold); err != nil {
		return DashboardStats{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	recent, _, err := u.orderRepo.ListAdmin(ctx, repo.AdminOrderListFilter{Page: 1, Limit: 5})
	if err != nil {
		return DashboardStats{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	stats.RecentOrders = recent

	return stats, nil
}
