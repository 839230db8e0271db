package usecase_test

import (
	"context"
	"testing"

	"store/internal/domain/model"
	repo "store/internal/repository"
	"store/internal/usecase"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func productFixture() (*usecase.ProductUsecase, *TxManagerMock, *ProductRepoMock, *CategoryRepoMock) {
	tx := newTxManagerMock()
	productRepo := new(ProductRepoMock)
	categoryRepo := new(CategoryRepoMock)
	uc := usecase.NewProductUsecase(tx, productRepo, categoryRepo, zerolog.Nop())
	return uc, tx, productRepo, categoryRepo
}

func TestProductUsecase_ListProducts_InvalidSort(t *testing.T) {
	uc, _, _, _ := productFixture()

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Page: 1, Limit: 20, Sort: "popular"})
	assertErrContains(t, err, "invalid sort")
}

func TestProductUsecase_ListProducts_MinPriceAboveMaxPrice(t *testing.T) {
	uc, _, _, _ := productFixture()

	lo := decimal.NewFromInt(5000)
	hi := decimal.NewFromInt(1000)
	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{
		Page: 1, Limit: 20, MinPrice: &lo, MaxPrice: &hi,
	})
	assertErrContains(t, err, "min_price must be <= max_price")
}

func TestProductUsecase_ListProducts_TrimsQuery(t *testing.T) {
	ctx := context.Background()
	uc, _, productRepo, _ := productFixture()

	productRepo.On("List", mock.Anything, mock.MatchedBy(func(q repo.ProductListQuery) bool {
		return q.Q == "сакура" && q.Page == 1 && q.Limit == 20
	})).Return([]model.Product{}, int64(0), nil)

	out, err := uc.ListProducts(ctx, usecase.ListProductsInput{Page: 1, Limit: 20, Q: "  сакура  "})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), out.Total)

	productRepo.AssertExpectations(t)
}

func TestProductUsecase_AdminCreateProduct_CategoryNotFound(t *testing.T) {
	ctx := context.Background()
	uc, _, productRepo, categoryRepo := productFixture()

	categoryRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Category{}, repo.ErrNotFound)

	_, err := uc.AdminCreateProduct(ctx, 9, usecase.AdminProductInput{
		Name:       "Сакура",
		Price:      decimal.NewFromInt(1200),
		Stock:      3,
		CategoryID: 99,
	})
	assertErrContains(t, err, "category not found")

	productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductUsecase_AdminCreateProduct_FeaturedOverLimitStillSaves(t *testing.T) {
	ctx := context.Background()
	uc, _, productRepo, categoryRepo := productFixture()

	categoryRepo.On("FindByID", mock.Anything, int64(2)).Return(model.Category{ID: 2}, nil)
	//すでに上限いっぱいでも警告止まり
	productRepo.On("CountFeatured", mock.Anything).Return(int64(8), nil)
	productRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.IsFeatured && p.Name == "Лотос"
	})).Return(model.Product{ID: 7}, nil)

	id, err := uc.AdminCreateProduct(ctx, 9, usecase.AdminProductInput{
		Name:       "Лотос",
		Price:      decimal.NewFromInt(900),
		Stock:      10,
		CategoryID: 2,
		IsFeatured: true,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)

	productRepo.AssertExpectations(t)
}

func TestProductUsecase_AdminDeleteProduct_CascadesLines(t *testing.T) {
	ctx := context.Background()
	uc, tx, _, _ := productFixture()

	tx.Repos.ProductsMock.On("FindByID", mock.Anything, int64(5)).Return(model.Product{ID: 5}, nil)
	tx.Repos.CartItemsMock.On("DeleteByProductID", mock.Anything, int64(5)).Return(nil)
	tx.Repos.OrderItemsMock.On("DeleteByProductID", mock.Anything, int64(5)).Return(nil)
	tx.Repos.ProductsMock.On("Delete", mock.Anything, int64(5)).Return(nil)

	err := uc.AdminDeleteProduct(ctx, 9, 5)
	assert.NoError(t, err)

	tx.Repos.CartItemsMock.AssertExpectations(t)
	tx.Repos.OrderItemsMock.AssertExpectations(t)
	tx.Repos.ProductsMock.AssertExpectations(t)
}

func TestProductUsecase_AdminDeleteProduct_NotFound(t *testing.T) {
	ctx := context.Background()
	uc, tx, _, _ := productFixture()

	tx.Repos.ProductsMock.On("FindByID", mock.Anything, int64(5)).Return(model.Product{}, repo.ErrNotFound)

	err := uc.AdminDeleteProduct(ctx, 9, 5)
	assertErrContains(t, err, "not found")

	tx.Repos.CartItemsMock.AssertNotCalled(t, "DeleteByProductID", mock.Anything, mock.Anything)
}

func TestProductUsecase_AdminSetStock_RecordsDeltaAndAudit(t *testing.T) {
	ctx := context.Background()
	uc, tx, _, _ := productFixture()

	tx.Repos.ProductsMock.On("FindByID", mock.Anything, int64(5)).Return(model.Product{ID: 5, Stock: 3}, nil)
	tx.Repos.InventoryMock.On("SetStock", mock.Anything, int64(5), int64(10)).Return(nil)
	tx.Repos.InventoryMock.On("CreateAdjustment", mock.Anything, mock.MatchedBy(func(a model.InventoryAdjustment) bool {
		return a.ProductID == 5 && a.Delta == 7 && a.Reason == "приход со склада"
	})).Return(nil)
	tx.Repos.AuditLogsMock.On("Create", mock.Anything, mock.MatchedBy(func(l model.AuditLog) bool {
		return l.Action == model.AuditActionUpdateStock &&
			l.BeforeJSON == `{"stock":3}` && l.AfterJSON == `{"stock":10}`
	})).Return(nil)

	err := uc.AdminSetStock(ctx, 9, 5, 10, "приход со склада")
	assert.NoError(t, err)

	tx.Repos.InventoryMock.AssertExpectations(t)
	tx.Repos.AuditLogsMock.AssertExpectations(t)
}

func TestProductUsecase_AdminSetStock_ReasonRequired(t *testing.T) {
	uc, tx, _, _ := productFixture()

	err := uc.AdminSetStock(context.Background(), 9, 5, 10, "   ")
	assertErrContains(t, err, "reason required")

	tx.Repos.InventoryMock.AssertNotCalled(t, "SetStock", mock.Anything, mock.Anything, mock.Anything)
}
