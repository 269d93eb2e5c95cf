package usecase

import (
	"context"
	"net/http"

	"order-service/internal/domain/model"
	repo "order-service/internal/repository"

	"go.uber.org/zap"
)

// CartUsecase は /api/carts の業務ロジック。
// user-serviceからのプロフィール取得はベストエフォート：
// 落ちても・遅くても・該当無しでも、カート本体は必ず返す。
type CartUsecase struct {
	cartRepo repo.CartRepository
	userDir  repo.UserDirectory
	log      *zap.Logger
}

func NewCartUsecase(cartRepo repo.CartRepository, userDir repo.UserDirectory, log *zap.Logger) *CartUsecase {
	return &CartUsecase{
		cartRepo: cartRepo,
		userDir:  userDir,
		log:      log,
	}
}

// User はプロフィールが取れたときだけ入る（無くてもエラーではない）
type CartOutput struct {
	CartID int64              `json:"cart_id"`
	UserID int64              `json:"user_id"`
	User   *model.UserProfile `json:"user,omitempty"`
}

type CartListOutput struct {
	Collection []CartOutput `json:"collection"`
}

// POST /api/carts の入力DTO
type SaveCartInput struct {
	UserID int64
}

// PUT /api/carts の入力DTO（本体にcart_idを含む）
type UpdateCartInput struct {
	CartID int64
	UserID int64
}

// ListCarts は全カートを返す。1件ごとにプロフィール取得を試みるが、
// 失敗してもそのカートを落とさず、残りの取得も続ける。
func (u *CartUsecase) ListCarts(ctx context.Context) (CartListOutput, error) {
	carts, err := u.cartRepo.FindAll(ctx)
	if err != nil {
		return CartListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	outs := make([]CartOutput, 0, len(carts))
	for _, c := range carts {
		outs = append(outs, CartOutput{
			CartID: c.ID,
			UserID: c.UserID,
			User:   u.lookupUser(ctx, c.UserID),
		})
	}

	return CartListOutput{Collection: outs}, nil
}

// GetCart は404になるのはカート自体が無いときだけ。
// プロフィール取得の失敗はUser無しで返す。
func (u *CartUsecase) GetCart(ctx context.Context, cartID int64) (CartOutput, error) {
	if cartID <= 0 {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	c, err := u.cartRepo.FindByID(ctx, cartID)
	if err == repo.ErrNotFound {
		return CartOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CartOutput{
		CartID: c.ID,
		UserID: c.UserID,
		User:   u.lookupUser(ctx, c.UserID),
	}, nil
}

func (u *CartUsecase) CreateCart(ctx context.Context, in SaveCartInput) (CartOutput, error) {
	if in.UserID <= 0 {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}

	created, err := u.cartRepo.Create(ctx, model.Cart{UserID: in.UserID})
	if err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CartOutput{
		CartID: created.ID,
		UserID: created.UserID,
		User:   u.lookupUser(ctx, created.UserID),
	}, nil
}

// UpdateCart は本体で指定されたカートを丸ごと置き換える。
func (u *CartUsecase) UpdateCart(ctx context.Context, in UpdateCartInput) (CartOutput, error) {
	if in.CartID <= 0 {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid cart_id")
	}
	if in.UserID <= 0 {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}

	err := u.cartRepo.Update(ctx, model.Cart{ID: in.CartID, UserID: in.UserID})
	if err == repo.ErrNotFound {
		return CartOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CartOutput{
		CartID: in.CartID,
		UserID: in.UserID,
		User:   u.lookupUser(ctx, in.UserID),
	}, nil
}

// UpdateCartByID は既存カートを解決してから（無ければ404）、
// payloadとマージした置き換えを書き込む。IDはパスのものが常に勝つ。
func (u *CartUsecase) UpdateCartByID(ctx context.Context, cartID int64, in SaveCartInput) (CartOutput, error) {
	if cartID <= 0 {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.UserID <= 0 {
		return CartOutput{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}

	existing, err := u.cartRepo.FindByID(ctx, cartID)
	if err == repo.ErrNotFound {
		return CartOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	existing.UserID = in.UserID
	if err := u.cartRepo.Update(ctx, existing); err != nil {
		if err == repo.ErrNotFound {
			return CartOutput{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return CartOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CartOutput{
		CartID: existing.ID,
		UserID: existing.UserID,
		User:   u.lookupUser(ctx, existing.UserID),
	}, nil
}

func (u *CartUsecase) DeleteCart(ctx context.Context, cartID int64) error {
	if cartID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.cartRepo.Delete(ctx, cartID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// lookupUser は失敗を握りつぶしてnilを返す。
// user-serviceが落ちていることを、カートが返らない理由にしない。
func (u *CartUsecase) lookupUser(ctx context.Context, userID int64) *model.UserProfile {
	profile, err := u.userDir.GetUser(ctx, userID)
	if err != nil {
		u.log.Warn("user-service lookup failed",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return nil
	}
	if profile == nil {
		u.log.Warn("user-service has no user",
			zap.Int64("user_id", userID),
		)
		return nil
	}
	return profile
}
