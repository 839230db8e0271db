package usecase_test

import (
	"context"
	"testing"

	"store/internal/domain/model"
	repo "store/internal/repository"
	"store/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func categoryFixture() (*usecase.CategoryUsecase, *CategoryRepoMock, *ProductRepoMock) {
	categoryRepo := new(CategoryRepoMock)
	productRepo := new(ProductRepoMock)
	return usecase.NewCategoryUsecase(categoryRepo, productRepo), categoryRepo, productRepo
}

func TestCategoryUsecase_AdminCreateCategory_SlugFromName(t *testing.T) {
	ctx := context.Background()
	uc, categoryRepo, _ := categoryFixture()

	//slug未指定ならnameから生成する
	categoryRepo.On("FindBySlug", mock.Anything, "japanese-style").Return(model.Category{}, repo.ErrNotFound)
	categoryRepo.On("Create", mock.Anything, mock.MatchedBy(func(c model.Category) bool {
		return c.Name == "Japanese Style" && c.Slug == "japanese-style"
	})).Return(model.Category{ID: 3}, nil)

	id, err := uc.AdminCreateCategory(ctx, usecase.AdminCategoryInput{Name: "Japanese Style"})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), id)

	categoryRepo.AssertExpectations(t)
}

func TestCategoryUsecase_AdminCreateCategory_SlugConflict(t *testing.T) {
	ctx := context.Background()
	uc, categoryRepo, _ := categoryFixture()

	categoryRepo.On("FindBySlug", mock.Anything, "nature").Return(model.Category{ID: 2, Slug: "nature"}, nil)

	_, err := uc.AdminCreateCategory(ctx, usecase.AdminCategoryInput{Name: "Природа", Slug: "nature"})
	assertErrContains(t, err, "slug already in use")

	categoryRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryUsecase_AdminUpdateCategory_KeepingOwnSlugIsFine(t *testing.T) {
	ctx := context.Background()
	uc, categoryRepo, _ := categoryFixture()

	categoryRepo.On("FindByID", mock.Anything, int64(2)).Return(model.Category{ID: 2}, nil)
	//自分自身のslugは衝突扱いにしない
	categoryRepo.On("FindBySlug", mock.Anything, "nature").Return(model.Category{ID: 2, Slug: "nature"}, nil)
	categoryRepo.On("Update", mock.Anything, mock.MatchedBy(func(c model.Category) bool {
		return c.ID == 2 && c.Slug == "nature"
	})).Return(nil)

	err := uc.AdminUpdateCategory(ctx, 2, usecase.AdminCategoryInput{Name: "Nature", Slug: "nature"})
	assert.NoError(t, err)

	categoryRepo.AssertExpectations(t)
}

func TestCategoryUsecase_AdminDeleteCategory_BlockedWhileProductsRemain(t *testing.T) {
	ctx := context.Background()
	uc, categoryRepo, productRepo := categoryFixture()

	productRepo.On("CountByCategoryID", mock.Anything, int64(2)).Return(int64(4), nil)

	err := uc.AdminDeleteCategory(ctx, 2)
	assertErrContains(t, err, "category has products")

	categoryRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCategoryUsecase_AdminDeleteCategory_EmptyCategory(t *testing.T) {
	ctx := context.Background()
	uc, categoryRepo, productRepo := categoryFixture()

	productRepo.On("CountByCategoryID", mock.Anything, int64(2)).Return(int64(0), nil)
	categoryRepo.On("Delete", mock.Anything, int64(2)).Return(nil)

	err := uc.AdminDeleteCategory(ctx, 2)
	assert.NoError(t, err)

	categoryRepo.AssertExpectations(t)
}

func TestCategoryUsecase_GetCategoryBySlug_NotFound(t *testing.T) {
	uc, categoryRepo, _ := categoryFixture()

	categoryRepo.On("FindBySlug", mock.Anything, "ghost").Return(model.Category{}, repo.ErrNotFound)

	_, err := uc.GetCategoryBySlug(context.Background(), "ghost")
	assertErrContains(t, err, "not found")
}
