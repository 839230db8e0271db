package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ステータス文字列が既知の値かどうか。
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusProcessing, OrderStatusPaid,
		OrderStatusShipped, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type DeliveryMethod string

const (
	DeliveryMethodPickup   DeliveryMethod = "pickup"
	DeliveryMethodDelivery DeliveryMethod = "delivery"
)

type PaymentMethod string

const (
	PaymentMethodOnline PaymentMethod = "online"
	PaymentMethodCOD    PaymentMethod = "cod"
)

type OrderPriority string

const (
	OrderPriorityLow    OrderPriority = "low"
	OrderPriorityMedium OrderPriority = "medium"
	OrderPriorityHigh   OrderPriority = "high"
)

// 注文。明細と金額は作成時に確定し、以後はステータスと管理用の欄だけが変わる。
type Order struct {
	ID     int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID int64       `gorm:"not null;index" json:"user_id"`
	Status OrderStatus `gorm:"type:varchar(20);not null;index;default:'new'" json:"status"`

	DeliveryMethod DeliveryMethod  `gorm:"type:varchar(20);not null;default:'pickup'" json:"delivery_method"`
	PaymentMethod  PaymentMethod   `gorm:"type:varchar(20);not null;default:'cod'" json:"payment_method"`
	TotalPrice     decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total_price"`

	//注文時点のユーザー住所のスナップショット
	ShippingAddress string `gorm:"type:text" json:"shipping_address"`
	ShippingCity    string `gorm:"type:varchar(100)" json:"shipping_city"`
	ShippingZipCode string `gorm:"type:varchar(10)" json:"shipping_zip_code"`
	CustomerNotes   string `gorm:"type:text" json:"customer_notes"`

	//管理用
	AdminNotes   string        `gorm:"type:text" json:"admin_notes"`
	AssignedToID *int64        `gorm:"index" json:"assigned_to_id"`
	Priority     OrderPriority `gorm:"type:varchar(10);not null;default:'medium'" json:"priority"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
