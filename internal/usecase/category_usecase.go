package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"store/internal/domain/model"
	repo "store/internal/repository"

	"github.com/gosimple/slug"
)

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
	productRepo  repo.ProductRepository
}

// DI
func NewCategoryUsecase(categoryRepo repo.CategoryRepository, productRepo repo.ProductRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo, productRepo: productRepo}
}

func (u *CategoryUsecase) ListCategories(ctx context.Context, q string) ([]model.Category, error) {
	if len(q) > 100 {
		return nil, NewHTTPError(http.StatusBadRequest, "q too long")
	}

	cats, err := u.categoryRepo.List(ctx, strings.TrimSpace(q))
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return cats, nil
}

func (u *CategoryUsecase) GetCategoryBySlug(ctx context.Context, s string) (model.Category, error) {
	if strings.TrimSpace(s) == "" {
		return model.Category{}, NewHTTPError(http.StatusBadRequest, "invalid slug")
	}

	c, err := u.categoryRepo.FindBySlug(ctx, s)
	if err == repo.ErrNotFound {
		return model.Category{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c, nil
}

type AdminCategoryInput struct {
	Name        string
	Slug        string
	Description string
}

func (u *CategoryUsecase) AdminCreateCategory(ctx context.Context, in AdminCategoryInput) (int64, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "name required")
	}

	s, err := u.resolveSlug(ctx, in.Slug, name, 0)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	c, err := u.categoryRepo.Create(ctx, model.Category{
		Name:        name,
		Slug:        s,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c.ID, nil
}

func (u *CategoryUsecase) AdminUpdateCategory(ctx context.Context, categoryID int64, in AdminCategoryInput) error {
	if categoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid category id")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}

	if _, err := u.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	s, err := u.resolveSlug(ctx, in.Slug, name, categoryID)
	if err != nil {
		return err
	}

	err = u.categoryRepo.Update(ctx, model.Category{
		ID:          categoryID,
		Name:        name,
		Slug:        s,
		Description: in.Description,
		UpdatedAt:   time.Now(),
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// AdminDeleteCategory はカテゴリ削除。商品が1件でも残っていれば拒否する。
func (u *CategoryUsecase) AdminDeleteCategory(ctx context.Context, categoryID int64) error {
	if categoryID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid category id")
	}

	count, err := u.productRepo.CountByCategoryID(ctx, categoryID)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if count > 0 {
		return NewHTTPError(http.StatusConflict, "category has products")
	}

	err = u.categoryRepo.Delete(ctx, categoryID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 未指定ならnameから自動生成。重複（別IDが同じslugを使用）なら409。
func (u *CategoryUsecase) resolveSlug(ctx context.Context, raw, name string, selfID int64) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		s = slug.Make(name)
	} else {
		s = slug.Make(s)
	}
	if s == "" {
		return "", NewHTTPError(http.StatusBadRequest, "invalid slug")
	}

	existing, err := u.categoryRepo.FindBySlug(ctx, s)
	if err != nil && err != repo.ErrNotFound {
		return "", NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if err == nil && existing.ID != selfID {
		return "", NewHTTPError(http.StatusConflict, "slug already in use")
	}
	return s, nil
}
