package repository

import (
	"context"

	"store/internal/domain/model"
)

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	DeleteByOrderID(ctx context.Context, orderID int64) error
	//商品削除のカスケード用
	DeleteByProductID(ctx context.Context, productID int64) error
}
