package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品模型
type Product struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	ProductName string         `json:"product_name" gorm:"size:100;not null"`
	Price       int64          `json:"price" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Product) TableName() string {
	return "products"
}
