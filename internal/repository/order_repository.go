package repository

import (
	"context"
	"time"

	"store/internal/domain/model"
)

type AdminOrderListFilter struct {
	Page   int
	Limit  int
	Status string
	UserID *int64
	From   *time.Time
	To     *time.Time

	//注文ID・注文者のメール/氏名に対する部分一致検索
	Q string
}

// 管理画面で変更できる欄だけをまとめた更新指示。
// nilの欄は触らない。
type OrderAdminFields struct {
	AdminNotes    *string
	AssignedToID  *int64
	ClearAssignee bool
	Priority      *model.OrderPriority
}

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	ListByUserID(ctx context.Context, userID int64, page int, limit int) ([]model.Order, int64, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	UpdateAdminFields(ctx context.Context, orderID int64, f OrderAdminFields) error
	Delete(ctx context.Context, orderID int64) error

	//管理者用の注文一覧
	ListAdmin(ctx context.Context, f AdminOrderListFilter) ([]model.Order, int64, error)

	//ダッシュボード用
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error)
}
