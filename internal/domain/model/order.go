package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// 5値以外は保存しない
func IsValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// 注文。作成後に変わるのは status / updated_at だけ。
type Order struct {
	ID              int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          int64       `gorm:"not null;index" json:"user_id"`
	OrderDate       time.Time   `gorm:"not null;index" json:"order_date"`
	TotalAmount     float64     `gorm:"not null" json:"total_amount"`
	Status          OrderStatus `gorm:"type:varchar(50);not null;default:'pending'" json:"status"`
	ShippingAddress string      `gorm:"type:text;not null" json:"shipping_address"`
	Notes           string      `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}
