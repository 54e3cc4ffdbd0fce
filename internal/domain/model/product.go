package model

import "time"

// 商品（カテゴリは自由文字列: "fruit" / "vegetable" など）
type Product struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"type:varchar(100);not null;index" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Category    string  `gorm:"type:varchar(50);not null;index" json:"category"`
	Price       float64 `gorm:"not null" json:"price"`
	Stock       int64   `gorm:"not null;default:0" json:"stock"`
	ImageURL    string  `gorm:"type:varchar(255)" json:"image_url"`

	//在庫数とは別の公開フラグ。falseなら在庫があっても一覧に出ない
	IsAvailable bool `gorm:"not null;default:true" json:"is_available"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`

	//商品削除でカート明細も消える
	CartItems []CartItem `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}
