package model

import (
	"strings"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
	Role         Role   `gorm:"type:varchar(20);not null;default:'user'" json:"role"`

	FirstName string `gorm:"type:varchar(100)" json:"first_name"`
	LastName  string `gorm:"type:varchar(100)" json:"last_name"`
	Phone     string `gorm:"type:varchar(15)" json:"phone"`

	//配送先スナップショットの元になる住所
	Address    string `gorm:"type:text" json:"address"`
	City       string `gorm:"type:varchar(100)" json:"city"`
	PostalCode string `gorm:"type:varchar(10)" json:"postal_code"`
	Country    string `gorm:"type:varchar(100);default:'Россия'" json:"country"`

	TokenVersion int        `gorm:"not null;default:0" json:"-"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at"`
	CreatedAt    time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// 郵便番号・国・市・番地の順で、空でない項目だけを結合する。
func (u User) FullAddress() string {
	parts := make([]string, 0, 4)
	if u.PostalCode != "" {
		parts = append(parts, u.PostalCode)
	}
	if u.Country != "" {
		parts = append(parts, u.Country)
	}
	if u.City != "" {
		parts = append(parts, "г. "+u.City)
	}
	if u.Address != "" {
		parts = append(parts, u.Address)
	}
	if len(parts) == 0 {
		return "Адрес не указан"
	}
	return strings.Join(parts, ", ")
}
