package repository

import (
	"context"
	"errors"

	"order-service/internal/domain/model"
	repo "order-service/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// is_active=true の注文だけを一覧
func (r *OrderGormRepository) FindAllActive(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order

	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id asc").
		Find(&orders).Error; err != nil {
		return []model.Order{}, err
	}

	return orders, nil
}

// 論理削除済みは「存在しない」扱いで ErrNotFound
func (r *OrderGormRepository) FindActiveByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order

	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", orderID, true).
		First(&o).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, order model.Order) (model.Order, error) {
	if err := r.db.WithContext(ctx).Create(&order).Error; err != nil {
		return model.Order{}, err
	}
	return order, nil
}

// 可変フィールドをまとめて書き戻す。
// nil（desc/feeのクリア）も反映したいのでmapで渡す。
func (r *OrderGormRepository) Update(ctx context.Context, order model.Order) error {
	res := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"order_date":   order.OrderDate,
			"order_desc":   order.OrderDesc,
			"order_fee":    order.OrderFee,
			"status":       order.Status,
			"is_active":    order.IsActive,
			"cart_id":      order.Cart.CartID,
			"cart_user_id": order.Cart.UserID,
			"updated_at":   order.UpdatedAt,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
