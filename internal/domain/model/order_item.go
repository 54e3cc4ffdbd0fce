package model

import "time"

// 注文明細。単価は購入時点のスナップショット。
// 商品が削除されても明細は残す（product_id が NULL になるだけ）。
type OrderItem struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID             int64     `gorm:"not null;index" json:"order_id"`
	ProductID           *int64    `gorm:"index" json:"product_id"`
	ProductNameSnapshot string    `gorm:"type:varchar(100);not null" json:"product_name"`
	Quantity            int64     `gorm:"not null" json:"quantity"`
	Price               float64   `gorm:"not null" json:"price"`
	CreatedAt           time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
