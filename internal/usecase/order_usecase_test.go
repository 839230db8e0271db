package usecase_test

import (
	"context"
	"testing"

	"store/internal/domain/model"
	repo "store/internal/repository"
	"store/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func checkoutFixture() (*usecase.OrderUsecase, *TxManagerMock, *UserRepoMock) {
	tx := newTxManagerMock()
	userRepo := new(UserRepoMock)
	return usecase.NewOrderUsecase(tx, userRepo), tx, userRepo
}

func TestOrderUsecase_Checkout_InvalidDeliveryMethod(t *testing.T) {
	uc, _, _ := checkoutFixture()

	_, err := uc.Checkout(context.Background(), 1, usecase.CheckoutInput{
		DeliveryMethod: "drone",
		PaymentMethod:  "online",
	})
	assertErrContains(t, err, "invalid delivery_method")
}

func TestOrderUsecase_Checkout_EmptyCart(t *testing.T) {
	ctx := context.Background()
	uc, tx, userRepo := checkoutFixture()

	userRepo.On("FindByID", mock.Anything, int64(1)).Return(&model.User{ID: 1}, nil)
	tx.Repos.CartsMock.On("FindByUserID", mock.Anything, int64(1)).Return(model.Cart{ID: 10}, nil)
	tx.Repos.CartItemsMock.On("ListByCartID", mock.Anything, int64(10)).Return([]model.CartItem{}, nil)

	_, err := uc.Checkout(ctx, 1, usecase.CheckoutInput{
		DeliveryMethod: "pickup",
		PaymentMethod:  "online",
	})
	assertErrContains(t, err, "cart empty")

	tx.Repos.OrdersMock.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderUsecase_Checkout_InsufficientStock_NoOrderCreated(t *testing.T) {
	ctx := context.Background()
	uc, tx, userRepo := checkoutFixture()

	userRepo.On("FindByID", mock.Anything, int64(1)).Return(&model.User{ID: 1}, nil)
	tx.Repos.CartsMock.On("FindByUserID", mock.Anything, int64(1)).Return(model.Cart{ID: 10}, nil)
	tx.Repos.CartItemsMock.On("ListByCartID", mock.Anything, int64(10)).Return([]model.CartItem{
		{ID: 100, CartID: 10, ProductID: 5, Quantity: 3},
	}, nil)
	tx.Repos.ProductsMock.On("FindByID", mock.Anything, int64(5)).
		Return(model.Product{ID: 5, Name: "Сакура", Price: decimal.NewFromInt(1200), Stock: 1}, nil)

	//条件付きUPDATEが失敗（在庫不足）
	tx.Repos.InventoryMock.On("DecreaseStockIfEnough", mock.Anything, int64(5), int64(3)).Return(false, nil)

	_, err := uc.Checkout(ctx, 1, usecase.CheckoutInput{
		DeliveryMethod: "pickup",
		PaymentMethod:  "online",
	})
	assertErrContains(t, err, "insufficient stock: Сакура")

	//失敗時に注文もカートクリアもしない
	tx.Repos.OrdersMock.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	tx.Repos.CartsMock.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
}

func TestOrderUsecase_Checkout_DeliveryAddsFlatFee(t *testing.T) {
	ctx := context.Background()
	uc, tx, userRepo := checkoutFixture()

	user := &model.User{ID: 1, PostalCode: "101000", Country: "Россия", City: "Москва", Address: "ул. Ленина 1"}
	userRepo.On("FindByID", mock.Anything, int64(1)).Return(user, nil)

	tx.Repos.CartsMock.On("FindByUserID", mock.Anything, int64(1)).Return(model.Cart{ID: 10}, nil)
	tx.Repos.CartItemsMock.On("ListByCartID", mock.Anything, int64(10)).Return([]model.CartItem{
		{ID: 100, CartID: 10, ProductID: 5, Quantity: 2},
	}, nil)
	tx.Repos.ProductsMock.On("FindByID", mock.Anything, int64(5)).
		Return(model.Product{ID: 5, Name: "Сакура", Price: decimal.NewFromInt(1200), Stock: 10}, nil)
	tx.Repos.InventoryMock.On("DecreaseStockIfEnough", mock.Anything, int64(5), int64(2)).Return(true, nil)

	// 1200*2 + 500
	wantTotal := decimal.NewFromInt(2900)
	tx.Repos.OrdersMock.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.TotalPrice.Equal(wantTotal) &&
			o.Status == model.OrderStatusNew &&
			o.ShippingAddress == user.FullAddress() &&
			o.Priority == model.OrderPriorityMedium
	})).Return(int64(77), nil)
	tx.Repos.OrderItemsMock.On("CreateBulk", mock.Anything, int64(77), mock.Anything).Return(nil)
	tx.Repos.CartsMock.On("Clear", mock.Anything, int64(10)).Return(nil)

	out, err := uc.Checkout(ctx, 1, usecase.CheckoutInput{
		DeliveryMethod: "delivery",
		PaymentMethod:  "cod",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(77), out.ID)
	assert.True(t, out.TotalPrice.Equal(wantTotal))
	assert.Equal(t, "new", out.Status)
	assert.Equal(t, 1, len(out.Items))

	tx.Repos.OrdersMock.AssertExpectations(t)
	tx.Repos.CartsMock.AssertExpectations(t)
}

func TestOrderUsecase_Checkout_PickupHasNoFee(t *testing.T) {
	ctx := context.Background()
	uc, tx, userRepo := checkoutFixture()

	userRepo.On("FindByID", mock.Anything, int64(1)).Return(&model.User{ID: 1}, nil)
	tx.Repos.CartsMock.On("FindByUserID", mock.Anything, int64(1)).Return(model.Cart{ID: 10}, nil)
	tx.Repos.CartItemsMock.On("ListByCartID", mock.Anything, int64(10)).Return([]model.CartItem{
		{ID: 100, CartID: 10, ProductID: 5, Quantity: 2},
	}, nil)
	tx.Repos.ProductsMock.On("FindByID", mock.Anything, int64(5)).
		Return(model.Product{ID: 5, Name: "Сакура", Price: decimal.NewFromInt(1200), Stock: 10}, nil)
	tx.Repos.InventoryMock.On("DecreaseStockIfEnough", mock.Anything, int64(5), int64(2)).Return(true, nil)

	wantTotal := decimal.NewFromInt(2400)
	tx.Repos.OrdersMock.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.TotalPrice.Equal(wantTotal)
	})).Return(int64(78), nil)
	tx.Repos.OrderItemsMock.On("CreateBulk", mock.Anything, int64(78), mock.Anything).Return(nil)
	tx.Repos.CartsMock.On("Clear", mock.Anything, int64(10)).Return(nil)

	out, err := uc.Checkout(ctx, 1, usecase.CheckoutInput{
		DeliveryMethod: "pickup",
		PaymentMethod:  "online",
	})
	assert.NoError(t, err)
	assert.True(t, out.TotalPrice.Equal(wantTotal))
}

func TestOrderUsecase_CancelOrder_OtherUsersOrder_LooksNotFound(t *testing.T) {
	ctx := context.Background()
	uc, tx, _ := checkoutFixture()

	tx.Repos.OrdersMock.On("FindByID", mock.Anything, int64(50)).
		Return(model.Order{ID: 50, UserID: 2, Status: model.OrderStatusNew}, nil)

	err := uc.CancelOrder(ctx, 1, 50)
	assertErrContains(t, err, "not found")
}

func TestOrderUsecase_CancelOrder_OnlyFromNew(t *testing.T) {
	ctx := context.Background()
	uc, tx, _ := checkoutFixture()

	tx.Repos.OrdersMock.On("FindByID", mock.Anything, int64(50)).
		Return(model.Order{ID: 50, UserID: 1, Status: model.OrderStatusShipped}, nil)

	err := uc.CancelOrder(ctx, 1, 50)
	assertErrContains(t, err, "cannot cancel order in current status")

	tx.Repos.InventoryMock.AssertNotCalled(t, "IncreaseStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderUsecase_CancelOrder_RestoresStock(t *testing.T) {
	ctx := context.Background()
	uc, tx, _ := checkoutFixture()

	tx.Repos.OrdersMock.On("FindByID", mock.Anything, int64(50)).
		Return(model.Order{ID: 50, UserID: 1, Status: model.OrderStatusNew}, nil)
	tx.Repos.OrderItemsMock.On("ListByOrderID", mock.Anything, int64(50)).Return([]model.OrderItem{
		{OrderID: 50, ProductID: 5, Quantity: 2},
		{OrderID: 50, ProductID: 6, Quantity: 1},
	}, nil)
	tx.Repos.InventoryMock.On("IncreaseStock", mock.Anything, int64(5), int64(2)).Return(nil)
	tx.Repos.InventoryMock.On("IncreaseStock", mock.Anything, int64(6), int64(1)).Return(nil)
	tx.Repos.OrdersMock.On("UpdateStatus", mock.Anything, int64(50), model.OrderStatusCancelled).Return(nil)

	err := uc.CancelOrder(ctx, 1, 50)
	assert.NoError(t, err)

	tx.Repos.InventoryMock.AssertExpectations(t)
	tx.Repos.OrdersMock.AssertExpectations(t)
}

func TestOrderUsecase_GetMyOrderDetail_OtherUsersOrder(t *testing.T) {
	ctx := context.Background()
	uc, tx, _ := checkoutFixture()

	tx.Repos.OrdersMock.On("FindByID", mock.Anything, int64(50)).
		Return(model.Order{ID: 50, UserID: 2}, nil)

	_, err := uc.GetMyOrderDetail(ctx, 1, 50)
	assertErrContains(t, err, "not found")
}

func TestOrderUsecase_GetMyOrderDetail_NotFound(t *testing.T) {
	ctx := context.Background()
	uc, tx, _ := checkoutFixture()

	tx.Repos.OrdersMock.On("FindByID", mock.Anything, int64(999)).
		Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.GetMyOrderDetail(ctx, 1, 999)
	assertErrContains(t, err, "not found")
}
