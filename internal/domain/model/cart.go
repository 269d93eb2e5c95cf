package model

import "time"

// カートはユーザー1人が持つ買い物かご。注文から参照される側。
// 削除は物理削除（注文側はスナップショットを持つので壊れない）。
type Cart struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"cart_id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
