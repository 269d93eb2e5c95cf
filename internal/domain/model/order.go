package model

import "time"

type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "CREATED"
	OrderStatusOrdered   OrderStatus = "ORDERED"
	OrderStatusInPayment OrderStatus = "IN_PAYMENT"
	OrderStatusCompleted OrderStatus = "COMPLETED"
)

// Next はstatusを1段階だけ進める。進め先が無いstatusは ok=false。
// CREATED → ORDERED → IN_PAYMENT で止まる。
// COMPLETEDへ入る遷移はこのAPIには無い（将来の拡張用に定数だけ置いてある）。
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case OrderStatusCreated:
		return OrderStatusOrdered, true
	case OrderStatusOrdered:
		return OrderStatusInPayment, true
	default:
		return s, false
	}
}

// CartRef は注文作成時点のカートのスナップショット。
// 生きた外部キーではなく値コピー（後からカートが変わっても注文は変わらない）。
type CartRef struct {
	CartID int64 `gorm:"column:cart_id;not null;index" json:"cart_id"`
	UserID int64 `gorm:"column:cart_user_id;not null" json:"user_id"`
}

// IsActive=false は論理削除済み。一覧・取得の対象から外れる。
type Order struct {
	ID        int64       `gorm:"primaryKey;autoIncrement" json:"order_id"`
	OrderDate time.Time   `gorm:"not null" json:"order_date"`
	OrderDesc *string     `gorm:"type:text" json:"order_desc"`
	OrderFee  *float64    `json:"order_fee"`
	IsActive  bool        `gorm:"not null;index" json:"is_active"`
	Status    OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Cart      CartRef     `gorm:"embedded" json:"cart"`
	CreatedAt time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
