package repository

import (
	"context"

	"store/internal/domain/model"
)

type CartRepository interface {
	//初回アクセス時にカートを作る
	GetOrCreateByUserID(ctx context.Context, userID int64) (model.Cart, error)
	FindByUserID(ctx context.Context, userID int64) (model.Cart, error)
	//明細の全削除（チェックアウト後）
	Clear(ctx context.Context, cartID int64) error
}
