package repository

import "context"

// トランザクション内で使う約束
type TxRepos interface {
	Orders() OrderRepository
	Carts() CartRepository
}

// UsecaseからTxの開始/commit/rollbackを隠す。
// 注文の「読んでガードして書く」一連はここで1トランザクションにする。
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
