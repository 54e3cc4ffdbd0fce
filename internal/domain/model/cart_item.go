package model

import "time"

// カート明細。所有者はユーザーではなく匿名のセッショントークン。
// (session_token, product_id) は1行まで。
type CartItem struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionToken string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_cart_token_product" json:"-"`
	ProductID    int64     `gorm:"not null;uniqueIndex:idx_cart_token_product" json:"product_id"`
	Quantity     int64     `gorm:"not null;default:1" json:"quantity"`
	AddedAt      time.Time `gorm:"not null;autoCreateTime" json:"added_at"`
}
