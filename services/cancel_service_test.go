package services_test

import (
	"context"
	"testing"

	"comanda/entity"
	"comanda/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelItemIsOptimistic(t *testing.T) {
	store := services.NewTableStore()
	store.ReplaceAll([]entity.Order{activeOrder(1, 5)}) // item 11, PREPARING

	items := &fakeItemAPI{}
	var statusAtCallTime entity.ItemStatus
	items.onCancel = func(itemID uint) {
		// by the time the network call goes out the store is already patched
		_, it, ok := store.ItemByID(itemID)
		require.True(t, ok)
		statusAtCallTime = it.Status
	}

	svc, _ := newOrderService(store, &fakeOrderAPI{}, items, &fakeSyncer{})

	require.NoError(t, svc.CancelItem(context.Background(), 11, "cliente cambió de opinión"))

	assert.Equal(t, entity.StatusCanceled, statusAtCallTime)
	_, it, _ := store.ItemByID(11)
	assert.Equal(t, entity.StatusCanceled, it.Status)
	assert.Equal(t, "cliente cambió de opinión", it.CancelReason)
	assert.Equal(t, []string{"cliente cambió de opinión"}, items.reasons)
}

func TestCancelItemRaisesBusyFlagBeforePatching(t *testing.T) {
	store := services.NewTableStore()
	store.ReplaceAll([]entity.Order{activeOrder(1, 5)})

	sync := &fakeSyncer{}
	var statusAtSave entity.ItemStatus
	sync.onBeginSave = func() {
		// at save time the optimistic patch must not have landed yet,
		// otherwise a poll could slip in between and overwrite it
		_, it, ok := store.ItemByID(11)
		require.True(t, ok)
		statusAtSave = it.Status
	}
	svc, _ := newOrderService(store, &fakeOrderAPI{}, &fakeItemAPI{}, sync)

	require.NoError(t, svc.CancelItem(context.Background(), 11, "se enfrió"))

	assert.Equal(t, entity.StatusPreparing, statusAtSave)
	assert.Equal(t, 1, sync.saves)
	_, it, _ := store.ItemByID(11)
	assert.Equal(t, entity.StatusCanceled, it.Status)
}

func TestCancelItemRejectsTerminalStatus(t *testing.T) {
	store := services.NewTableStore()
	o := activeOrder(1, 5)
	o.Items = append(o.Items, entity.OrderItem{ID: 12, OrderID: 1, Status: entity.StatusPaid})
	store.ReplaceAll([]entity.Order{o})

	items := &fakeItemAPI{}
	svc, _ := newOrderService(store, &fakeOrderAPI{}, items, &fakeSyncer{})

	err := svc.CancelItem(context.Background(), 12, "da igual")
	assert.ErrorIs(t, err, services.ErrItemNotCancelable)
	assert.Empty(t, items.canceled)
}

func TestCancelItemRequiresReason(t *testing.T) {
	store := services.NewTableStore()
	store.ReplaceAll([]entity.Order{activeOrder(1, 5)})
	svc, _ := newOrderService(store, &fakeOrderAPI{}, &fakeItemAPI{}, &fakeSyncer{})

	err := svc.CancelItem(context.Background(), 11, "")
	assert.ErrorIs(t, err, services.ErrReasonRequired)
}

func TestCancelItemFailureReloadsInsteadOfReverting(t *testing.T) {
	store := services.NewTableStore()
	store.ReplaceAll([]entity.Order{activeOrder(1, 5)})

	items := &fakeItemAPI{err: errBoom}
	sync := &fakeSyncer{}
	// the corrective reload restores the server's view
	sync.onTableLoad = func(tableID uint) {
		store.ReplaceOrdersForTable(tableID, []entity.Order{activeOrder(1, tableID)})
	}
	svc, notifier := newOrderService(store, &fakeOrderAPI{}, items, sync)

	err := svc.CancelItem(context.Background(), 11, "cliente cambió de opinión")
	require.ErrorIs(t, err, errBoom)

	// resynchronized to ground truth, not manually reverted
	assert.Equal(t, []uint{5}, sync.tableCalls)
	_, it, _ := store.ItemByID(11)
	assert.Equal(t, entity.StatusPreparing, it.Status)
	assert.Contains(t, notifier.actions, "cancel_item_failed")
}

func TestCancellationWorkflowGatesOnReason(t *testing.T) {
	store := services.NewTableStore()
	store.ReplaceAll([]entity.Order{activeOrder(1, 5)})
	orders := &fakeOrderAPI{}
	svc, _ := newOrderService(store, orders, &fakeItemAPI{}, &fakeSyncer{})

	wf := services.NewCancellationWorkflow(svc)
	assert.False(t, wf.CanConfirm())

	wf.SetTarget(services.CancelOrderKind, 1)
	assert.False(t, wf.CanConfirm())
	assert.ErrorIs(t, wf.Confirm(context.Background()), services.ErrReasonRequired)

	wf.SetReason("   ")
	assert.False(t, wf.CanConfirm())

	wf.SetReason("mesa equivocada")
	require.True(t, wf.CanConfirm())
	require.NoError(t, wf.Confirm(context.Background()))
	assert.Equal(t, []uint{1}, orders.canceled)

	// confirm clears the workflow
	assert.Nil(t, wf.Target())
	assert.False(t, wf.CanConfirm())
}

func TestCancellationWorkflowDispatchesByTag(t *testing.T) {
	store := services.NewTableStore()
	store.ReplaceAll([]entity.Order{activeOrder(1, 5)})
	orders := &fakeOrderAPI{}
	items := &fakeItemAPI{}
	svc, _ := newOrderService(store, orders, items, &fakeSyncer{})

	wf := services.NewCancellationWorkflow(svc)
	wf.SetTarget(services.CancelItemKind, 11)
	wf.SetReason("se enfrió")
	require.NoError(t, wf.Confirm(context.Background()))

	assert.Equal(t, []uint{11}, items.canceled)
	assert.Empty(t, orders.canceled)
}
