package repository

import (
	"context"

	"order-service/internal/domain/model"
)

// UserDirectory はuser-serviceへの参照。
// (nil, nil) は「該当ユーザー無し」、errorは通信失敗。
// 呼び出し側はどちらも「プロフィール無し」として扱う（カート本体は返す）。
type UserDirectory interface {
	GetUser(ctx context.Context, userID int64) (*model.UserProfile, error)
}
