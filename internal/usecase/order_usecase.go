package usecase

import (
	"context"
	"net/http"
	"time"

	"order-service/internal/domain/model"
	repo "order-service/internal/repository"

	"go.uber.org/zap"
)

// OrderUsecase は注文のライフサイクルを管理する。
// statusの遷移ガードとカート存在チェックの置き場所はここだけ。
// 「読んでガードして書く」一連はTxで包む（同時更新で抜けないように）。
type OrderUsecase struct {
	tx        repo.TransactionManager
	orderRepo repo.OrderRepository
	log       *zap.Logger
}

func NewOrderUsecase(tx repo.TransactionManager, orderRepo repo.OrderRepository, log *zap.Logger) *OrderUsecase {
	return &OrderUsecase{
		tx:        tx,
		orderRepo: orderRepo,
		log:       log,
	}
}

type OrderCartOutput struct {
	CartID int64 `json:"cart_id"`
	UserID int64 `json:"user_id"`
}

type OrderOutput struct {
	OrderID   int64           `json:"order_id"`
	OrderDate time.Time       `json:"order_date"`
	OrderDesc *string         `json:"order_desc"`
	OrderFee  *float64        `json:"order_fee"`
	Status    string          `json:"status"`
	Cart      OrderCartOutput `json:"cart"`
}

type OrderListOutput struct {
	Collection []OrderOutput `json:"collection"`
}

// POST /api/orders・PUT /api/orders/{id} の入力DTO。
// CartID=nil は「カート指定なし」（作成では400、更新では既存を維持）。
type SaveOrderInput struct {
	OrderDate *time.Time
	OrderDesc *string
	OrderFee  *float64
	CartID    *int64
}

func (u *OrderUsecase) ListActiveOrders(ctx context.Context) (OrderListOutput, error) {
	orders, err := u.orderRepo.FindAllActive(ctx)
	if err != nil {
		return OrderListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		outs = append(outs, toOrderOutput(o))
	}
	return OrderListOutput{Collection: outs}, nil
}

// 論理削除済みも「存在しない」として404
func (u *OrderUsecase) GetOrder(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orderRepo.FindActiveByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toOrderOutput(o), nil
}

// CreateOrder は参照先カートの存在を確認してから注文を作る。
// status/is_active/idはクライアント指定を無視して強制する。
func (u *OrderUsecase) CreateOrder(ctx context.Context, in SaveOrderInput) (OrderOutput, error) {
	//ストアに触る前にカート参照の有無をチェック
	if in.CartID == nil {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "cart is required")
	}
	if *in.CartID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid cart_id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		cart, err := r.Carts().FindByID(ctx, *in.CartID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "cart not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		now := time.Now()
		orderDate := now
		if in.OrderDate != nil {
			orderDate = *in.OrderDate
		}

		created, err := r.Orders().Create(ctx, model.Order{
			OrderDate: orderDate,
			OrderDesc: in.OrderDesc,
			OrderFee:  in.OrderFee,
			IsActive:  true,
			Status:    model.OrderStatusCreated,
			//スナップショット（カートのidとuser_idを値でコピー）
			Cart: model.CartRef{
				CartID: cart.ID,
				UserID: cart.UserID,
			},
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(created)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}

	u.log.Info("order created",
		zap.Int64("order_id", out.OrderID),
		zap.Int64("cart_id", out.Cart.CartID),
	)
	return out, nil
}

// AdvanceStatus はstatusを1段階進める。
// CREATED→ORDERED→IN_PAYMENT。IN_PAYMENTからは進めない（400）。
func (u *OrderUsecase) AdvanceStatus(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindActiveByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		next, ok := o.Status.Next()
		if !ok {
			return NewHTTPError(http.StatusBadRequest, "cannot advance order status")
		}

		o.Status = next
		o.UpdatedAt = time.Now()

		if err := r.Orders().Update(ctx, o); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}

	u.log.Info("order status advanced",
		zap.Int64("order_id", out.OrderID),
		zap.String("status", out.Status),
	)
	return out, nil
}

// UpdateOrder は可変フィールド（desc/fee/date）を置き換える。
// cart_idが指定されたときだけ、作成時と同じ手順でカートを引き直す。
// id・status・is_activeはこの経路では絶対に変えない。
func (u *OrderUsecase) UpdateOrder(ctx context.Context, orderID int64, in SaveOrderInput) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.CartID != nil && *in.CartID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid cart_id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindActiveByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		o.OrderDesc = in.OrderDesc
		o.OrderFee = in.OrderFee
		if in.OrderDate != nil {
			o.OrderDate = *in.OrderDate
		}

		//カートの付け替えは存在する別カートに限る
		if in.CartID != nil {
			cart, err := r.Carts().FindByID(ctx, *in.CartID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "cart not found")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			o.Cart = model.CartRef{
				CartID: cart.ID,
				UserID: cart.UserID,
			}
		}

		o.UpdatedAt = time.Now()

		if err := r.Orders().Update(ctx, o); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// DeleteOrder は論理削除。IN_PAYMENTの注文は消させない（支払い中の取り消し事故防止）。
func (u *OrderUsecase) DeleteOrder(ctx context.Context, orderID int64) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindActiveByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if o.Status == model.OrderStatusInPayment {
			return NewHTTPError(http.StatusBadRequest, "cannot delete order in payment")
		}

		o.IsActive = false
		o.UpdatedAt = time.Now()

		if err := r.Orders().Update(ctx, o); err != nil {
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusNotFound, "not found")
			}
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})

	if err != nil {
		return err
	}

	u.log.Info("order soft-deleted",
		zap.Int64("order_id", orderID),
	)
	return nil
}

func toOrderOutput(o model.Order) OrderOutput {
	return OrderOutput{
		OrderID:   o.ID,
		OrderDate: o.OrderDate,
		OrderDesc: o.OrderDesc,
		OrderFee:  o.OrderFee,
		Status:    string(o.Status),
		Cart: OrderCartOutput{
			CartID: o.Cart.CartID,
			UserID: o.Cart.UserID,
		},
	}
}
