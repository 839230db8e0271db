package repository

import (
	"context"

	"store/internal/domain/model"
)

type CategoryRepository interface {
	List(ctx context.Context, q string) ([]model.Category, error)
	FindByID(ctx context.Context, categoryID int64) (model.Category, error)
	FindBySlug(ctx context.Context, slug string) (model.Category, error)
	Create(ctx context.Context, c model.Category) (model.Category, error)
	Update(ctx context.Context, c model.Category) error
	Delete(ctx context.Context, categoryID int64) error
}
