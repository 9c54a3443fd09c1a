package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	// RoleOwner 老板：拥有全部管理功能
	RoleOwner = "owner"
	// RoleCashier 收银员：仅可录入交易、查看自己的交易记录
	RoleCashier = "cashier"
)

// User 账号模型
// 账号由老板在后台创建，不开放自助注册
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Username  string         `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Password  string         `json:"-" gorm:"size:255;not null"`
	Name      string         `json:"name" gorm:"size:100"`                      // 显示名称
	Role      string         `json:"role" gorm:"size:20;default:cashier;index"` // 角色：owner/cashier
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (User) TableName() string {
	return "users"
}

// IsOwner 是否为老板角色
func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}
