package models

import (
	"time"

	"gorm.io/gorm"
)

// Menu 菜单模型
// OwnerOnly 为 true 的菜单仅老板可见
type Menu struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:50;not null"`
	Path      string         `json:"path" gorm:"size:100;not null;index"` // 前端路由，如 /reports
	Icon      string         `json:"icon" gorm:"size:50"`
	SortOrder int            `json:"sort_order" gorm:"default:0;index"`
	OwnerOnly bool           `json:"owner_only" gorm:"default:false"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Menu) TableName() string {
	return "menus"
}
