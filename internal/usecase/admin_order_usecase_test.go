package usecase_test

import (
	"context"
	"testing"

	"github.com/danishhshk/FreshBasket/internal/domain/model"
	repo "github.com/danishhshk/FreshBasket/internal/repository"
	"github.com/danishhshk/FreshBasket/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminUpdateStatus_OK(t *testing.T) {
	tx, r := newTxManagerStub()
	uc := usecase.NewAdminOrderUsecase(tx)

	r.orders.On("FindByID", mock.Anything, int64(100)).
		Return(model.Order{ID: 100, Status: model.OrderStatusPending}, nil)
	r.orders.On("UpdateStatus", mock.Anything, int64(100), model.OrderStatusShipped).Return(nil)

	err := uc.UpdateStatus(context.Background(), 100, "shipped")

	assert.NoError(t, err)
	r.orders.AssertExpectations(t)
}

// 5値以外は拒否し、注文は読まない
func TestAdminUpdateStatus_InvalidValue(t *testing.T) {
	tx, r := newTxManagerStub()
	uc := usecase.NewAdminOrderUsecase(tx)

	err := uc.UpdateStatus(context.Background(), 100, "teleported")

	assert.ErrorIs(t, err, usecase.ErrValidation)
	r.orders.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	r.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

// cancelledへの遷移は明細分の在庫を戻す
func TestAdminUpdateStatus_CancelRestoresStock(t *testing.T) {
	tx, r := newTxManagerStub()
	uc := usecase.NewAdminOrderUsecase(tx)

	productID1 := int64(1)
	productID2 := int64(2)
	r.orders.On("FindByID", mock.Anything, int64(100)).
		Return(model.Order{ID: 100, Status: model.OrderStatusPending}, nil)
	r.orderItems.On("ListByOrderID", mock.Anything, int64(100)).Return([]model.OrderItem{
		{OrderID: 100, ProductID: &productID1, Quantity: 2},
		{OrderID: 100, ProductID: &productID2, Quantity: 1},
	}, nil)
	r.inventory.On("IncreaseStock", mock.Anything, int64(1), int64(2)).Return(nil)
	r.inventory.On("IncreaseStock", mock.Anything, int64(2), int64(1)).Return(nil)
	r.orders.On("UpdateStatus", mock.Anything, int64(100), model.OrderStatusCancelled).Return(nil)

	err := uc.UpdateStatus(context.Background(), 100, "cancelled")

	assert.NoError(t, err)
	r.inventory.AssertExpectations(t)
}

// 削除済み商品の明細は在庫を戻す先が無いのでスキップ
func TestAdminUpdateStatus_CancelSkipsDeletedProducts(t *testing.T) {
	tx, r := newTxManagerStub()
	uc := usecase.NewAdminOrderUsecase(tx)

	productID := int64(1)
	r.orders.On("FindByID", mock.Anything, int64(100)).
		Return(model.Order{ID: 100, Status: model.OrderStatusProcessing}, nil)
	r.orderItems.On("ListByOrderID", mock.Anything, int64(100)).Return([]model.OrderItem{
		{OrderID: 100, ProductID: &productID, Quantity: 2},
		{OrderID: 100, ProductID: nil, ProductNameSnapshot: "Lettuce", Quantity: 3},
	}, nil)
	r.inventory.On("IncreaseStock", mock.Anything, int64(1), int64(2)).Return(nil)
	r.orders.On("UpdateStatus", mock.Anything, int64(100), model.OrderStatusCancelled).Return(nil)

	err := uc.UpdateStatus(context.Background(), 100, "cancelled")

	assert.NoError(t, err)
	r.inventory.AssertNumberOfCalls(t, "IncreaseStock", 1)
}

// cancelledは終着点。そこからの変更は在庫の二重戻しを防ぐため拒否
func TestAdminUpdateStatus_CancelledIsTerminal(t *testing.T) {
	tx, r := newTxManagerStub()
	uc := usecase.NewAdminOrderUsecase(tx)

	r.orders.On("FindByID", mock.Anything, int64(100)).
		Return(model.Order{ID: 100, Status: model.OrderStatusCancelled}, nil)

	err := uc.UpdateStatus(context.Background(), 100, "pending")

	assert.ErrorIs(t, err, usecase.ErrValidation)
	r.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

// 同じ値への変更は何もしないで成功
func TestAdminUpdateStatus_SameValueNoOp(t *testing.T) {
	tx, r := newTxManagerStub()
	uc := usecase.NewAdminOrderUsecase(tx)

	r.orders.On("FindByID", mock.Anything, int64(100)).
		Return(model.Order{ID: 100, Status: model.OrderStatusShipped}, nil)

	err := uc.UpdateStatus(context.Background(), 100, "shipped")

	assert.NoError(t, err)
	r.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminListOrders_StatusFilterPassedThrough(t *testing.T) {
	tx, r := newTxManagerStub()
	uc := usecase.NewAdminOrderUsecase(tx)

	r.orders.On("ListAdmin", mock.Anything, repo.AdminOrderListFilter{Status: "pending"}).
		Return([]model.Order{{ID: 100, Status: model.OrderStatusPending}}, nil)
	r.orderItems.On("ListByOrderID", mock.Anything, int64(100)).
		Return([]model.OrderItem{}, nil)

	outs, err := uc.ListOrders(context.Background(), "pending")

	assert.NoError(t, err)
	assert.Len(t, outs, 1)
	r.orders.AssertExpectations(t)
}

func TestAdminGetOrder_NotFound(t *testing.T) {
	tx, r := newTxManagerStub()
	uc := usecase.NewAdminOrderUsecase(tx)

	r.orders.On("FindByID", mock.Anything, int64(999)).
		Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.GetOrder(context.Background(), 999)

	assert.ErrorIs(t, err, usecase.ErrNotFound)
}
