package usecase_test

import (
	"context"
	"testing"

	"store/internal/domain/model"
	repo "store/internal/repository"
	"store/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDashboardUsecase_GetStats(t *testing.T) {
	ctx := context.Background()
	orders := new(OrderRepoMock)
	users := new(UserRepoMock)
	products := new(ProductRepoMock)
	uc := usecase.NewDashboardUsecase(orders, users, products)

	orders.On("Count", mock.Anything).Return(int64(120), nil)
	orders.On("CountByStatus", mock.Anything, model.OrderStatusNew).Return(int64(7), nil)
	users.On("Count", mock.Anything).Return(int64(40), nil)
	products.On("Count", mock.Anything).Return(int64(25), nil)
	products.On("CountLowStock", mock.Anything, int64(5)).Return(int64(3), nil)
	orders.On("ListAdmin", mock.Anything, mock.MatchedBy(func(f repo.AdminOrderListFilter) bool {
		return f.Page == 1 && f.Limit == 5
	})).Return([]model.Order{{ID: 120}}, int64(120), nil)

	stats, err := uc.GetStats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(120), stats.TotalOrders)
	assert.Equal(t, int64(7), stats.NewOrders)
	assert.Equal(t, int64(40), stats.TotalUsers)
	assert.Equal(t, int64(25), stats.TotalProducts)
	assert.Equal(t, int64(3), stats.LowStockCount)
	assert.Len(t, stats.RecentOrders, 1)
}
