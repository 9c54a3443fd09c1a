package models

import (
	"time"
)

// Transaction 交易记录模型
// 交易一经录入不再修改或删除，因此不带软删除字段。
// 服务与商品二选一或都选，但不能都为空（录入时校验）。
type Transaction struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	BarberID        uint      `json:"barber_id" gorm:"index;not null"`
	ServiceID       *uint     `json:"service_id" gorm:"index"`
	ProductID       *uint     `json:"product_id" gorm:"index"`
	TotalPrice      int64     `json:"total_price" gorm:"not null"`
	TransactionDate time.Time `json:"transaction_date" gorm:"index;not null"`
	RecordedBy      uint      `json:"recorded_by" gorm:"index;not null"` // 录入人（收银员只能看自己录入的）
	CreatedAt       time.Time `json:"created_at"`

	Barber  Barber   `json:"barber" gorm:"foreignKey:BarberID"`
	Service *Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// TableName 设置表名
func (Transaction) TableName() string {
	return "transactions"
}
