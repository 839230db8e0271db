package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(200);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	Image       string          `gorm:"type:varchar(255)" json:"image"`

	//在庫。0未満にならないことをInventoryRepositoryが保証する
	Stock int64 `gorm:"not null;default:0" json:"stock"`

	CategoryID int64 `gorm:"not null;index" json:"category_id"`
	IsFeatured bool  `gorm:"not null;default:false" json:"is_featured"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
