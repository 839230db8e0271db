package repository

import (
	"context"

	"store/internal/domain/model"
)

type AdminUserListFilter struct {
	Page  int
	Limit int
	Role  string
	Q     string
}

// ユーザーの保存・取得を約束
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	// 見つからない場合は (nil, nil)
	FindByID(ctx context.Context, userID int64) (*model.User, error)
	// 見つからない場合は (nil, nil)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	//同じemailを他のユーザーが使っていないか
	EmailTakenByOther(ctx context.Context, email string, userID int64) (bool, error)
	//トークンのバージョンを＋１（強制ログアウト）
	IncrementTokenVersion(ctx context.Context, userID int64) error

	//管理者用の一覧
	ListAdmin(ctx context.Context, f AdminUserListFilter) ([]model.User, int64, error)
	Count(ctx context.Context) (int64, error)
}
