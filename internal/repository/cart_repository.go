package repository

import (
	"context"
	"errors"

	"order-service/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// カートの永続化（保存・取得・削除）だけを約束。
type CartRepository interface {
	FindByID(ctx context.Context, cartID int64) (model.Cart, error)
	FindAll(ctx context.Context) ([]model.Cart, error)
	Create(ctx context.Context, cart model.Cart) (model.Cart, error)
	//存在しなければ ErrNotFound
	Update(ctx context.Context, cart model.Cart) error
	//存在しなければ ErrNotFound
	Delete(ctx context.Context, cartID int64) error
}
