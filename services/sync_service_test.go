package services_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"comanda/entity"
	"comanda/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingTableAPI parks GetAll on a channel so a poll can be held mid-flight.
type blockingTableAPI struct {
	entered chan struct{}
	release chan struct{}
	calls   int32
}

func (b *blockingTableAPI) GetAll(ctx context.Context) ([]entity.Table, error) {
	atomic.AddInt32(&b.calls, 1)
	b.entered <- struct{}{}
	<-b.release
	return nil, nil
}

func (b *blockingTableAPI) GetActiveOrders(ctx context.Context, tableID uint) ([]entity.Order, error) {
	return nil, nil
}

func retiredOrder(id, tableID uint) entity.Order {
	o := activeOrder(id, tableID)
	o.Items[0].Status = entity.StatusPaid
	return o
}

func TestLoadInitialDataFiltersToActiveOrders(t *testing.T) {
	store := services.NewTableStore()
	tables := &fakeTableAPI{tables: []entity.Table{{ID: 5, Number: 5, Seats: 4}}}
	orders := &fakeOrderAPI{all: []entity.Order{
		activeOrder(1, 5),
		retiredOrder(2, 6),
	}}
	sync := services.NewSyncService(store, tables, orders, time.Second)

	require.NoError(t, sync.LoadInitialData(context.Background()))

	assert.Len(t, store.Tables(), 1)
	all := store.Orders()
	require.Len(t, all, 1)
	assert.Equal(t, uint(1), all[0].ID)
	assert.Equal(t, entity.TableAvailable, store.TableStatus(6))
}

func TestLoadTableOrdersFetchesMissingDetails(t *testing.T) {
	store := services.NewTableStore()

	// the list endpoint returns shallow orders; details carry the items
	shallow := activeOrder(1, 5)
	detail := shallow.Clone()
	shallow.Items = nil

	tables := &fakeTableAPI{activeOrders: map[uint][]entity.Order{5: {shallow}}}
	orders := &fakeOrderAPI{byID: map[uint]entity.Order{1: detail}}
	sync := services.NewSyncService(store, tables, orders, time.Second)

	require.NoError(t, sync.LoadTableOrders(context.Background(), 5))

	got, ok := store.OrderByID(1)
	require.True(t, ok)
	require.Len(t, got.Items, 1)
	assert.Equal(t, uint(11), got.Items[0].ID)
}

func TestLoadTableOrdersReplacesOnlyThatTable(t *testing.T) {
	store := services.NewTableStore()
	store.ReplaceAll([]entity.Order{activeOrder(1, 5), activeOrder(2, 6)})

	tables := &fakeTableAPI{activeOrders: map[uint][]entity.Order{5: {activeOrder(3, 5)}}}
	orders := &fakeOrderAPI{}
	sync := services.NewSyncService(store, tables, orders, time.Second)

	require.NoError(t, sync.LoadTableOrders(context.Background(), 5))

	got := store.OrdersForTable(5)
	require.Len(t, got, 1)
	assert.Equal(t, uint(3), got[0].ID)
	assert.Equal(t, entity.TableOccupied, store.TableStatus(6))
}

func TestTargetedThenFullLoadDoesNotDuplicate(t *testing.T) {
	store := services.NewTableStore()
	o := activeOrder(1, 5)
	tables := &fakeTableAPI{
		tables:       []entity.Table{{ID: 5}},
		activeOrders: map[uint][]entity.Order{5: {o}},
	}
	orders := &fakeOrderAPI{all: []entity.Order{o}}
	sync := services.NewSyncService(store, tables, orders, time.Second)

	require.NoError(t, sync.LoadTableOrders(context.Background(), 5))
	require.NoError(t, sync.LoadInitialData(context.Background()))

	assert.Len(t, store.OrdersForTable(5), 1)
	assert.Len(t, store.Orders(), 1)
}

func TestTickSkipsWhileSaving(t *testing.T) {
	store := services.NewTableStore()
	tables := &fakeTableAPI{}
	sync := services.NewSyncService(store, tables, &fakeOrderAPI{}, time.Second)

	release := sync.BeginSave()
	sync.Tick(context.Background())
	assert.Equal(t, 0, tables.getAllCalls)

	release()
	sync.Tick(context.Background())
	assert.Equal(t, 1, tables.getAllCalls)
}

func TestTickSkipsOutsideOverview(t *testing.T) {
	store := services.NewTableStore()
	tables := &fakeTableAPI{}
	sync := services.NewSyncService(store, tables, &fakeOrderAPI{}, time.Second)

	sync.SetOverview(false)
	sync.Tick(context.Background())
	assert.Equal(t, 0, tables.getAllCalls)

	sync.SetOverview(true)
	sync.Tick(context.Background())
	assert.Equal(t, 1, tables.getAllCalls)
}

func TestTickDropsWhilePollInFlight(t *testing.T) {
	store := services.NewTableStore()
	tables := &blockingTableAPI{entered: make(chan struct{}), release: make(chan struct{})}
	sync := services.NewSyncService(store, tables, &fakeOrderAPI{}, time.Second)

	done := make(chan struct{})
	go func() {
		sync.Tick(context.Background())
		close(done)
	}()
	<-tables.entered // first poll parked inside GetAll

	// dropped, not queued: the in-flight latch holds
	sync.Tick(context.Background())
	assert.Equal(t, int32(1), atomic.LoadInt32(&tables.calls))

	close(tables.release)
	<-done
	assert.Equal(t, int32(1), atomic.LoadInt32(&tables.calls))
}

func TestTickKeepsPollingAfterUpstreamError(t *testing.T) {
	store := services.NewTableStore()
	tables := &fakeTableAPI{err: errBoom}
	sync := services.NewSyncService(store, tables, &fakeOrderAPI{}, time.Second)

	sync.Tick(context.Background())
	tables.err = nil
	sync.Tick(context.Background())
	assert.Equal(t, 2, tables.getAllCalls)
}
