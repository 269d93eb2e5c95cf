package repository

import (
	"context"

	"order-service/internal/domain/model"
)

// 注文の永続化だけを約束。
// 「Active」系は is_active=true のものだけを対象にする（論理削除済みは見えない）。
type OrderRepository interface {
	FindAllActive(ctx context.Context) ([]model.Order, error)
	//無い・論理削除済みは ErrNotFound
	FindActiveByID(ctx context.Context, orderID int64) (model.Order, error)
	Create(ctx context.Context, order model.Order) (model.Order, error)
	//存在しなければ ErrNotFound
	Update(ctx context.Context, order model.Order) error
}
