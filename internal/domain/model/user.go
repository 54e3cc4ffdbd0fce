package model

import "time"

type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Email        string `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	FirstName    string `gorm:"type:varchar(100)" json:"first_name"`
	LastName     string `gorm:"type:varchar(100)" json:"last_name"`

	//管理者フラグ（ロールはこの1bitだけ）
	IsAdmin bool `gorm:"not null;default:false" json:"is_admin"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`

	//ユーザー削除で注文も消える
	Orders []Order `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
