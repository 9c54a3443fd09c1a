package models

import (
	"time"

	"gorm.io/gorm"
)

// Service 理发服务项目模型
// 价格以分/卢比整数存储，避免浮点汇总误差
type Service struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	ServiceName string         `json:"service_name" gorm:"size:100;not null"`
	Price       int64          `json:"price" gorm:"not null"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Service) TableName() string {
	return "services"
}
