package services_test

import (
	"context"
	"errors"

	"comanda/entity"
	"comanda/repository"
)

// Fakes for the upstream collaborators. Each records calls so tests can
// assert ordering and payloads.

type fakeTableAPI struct {
	tables       []entity.Table
	activeOrders map[uint][]entity.Order
	getAllCalls  int
	err          error
}

func (f *fakeTableAPI) GetAll(ctx context.Context) ([]entity.Table, error) {
	f.getAllCalls++
	return f.tables, f.err
}

func (f *fakeTableAPI) GetActiveOrders(ctx context.Context, tableID uint) ([]entity.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.activeOrders[tableID], nil
}

type fakeOrderAPI struct {
	all     []entity.Order
	byID    map[uint]entity.Order
	created []repository.CreateOrderPayload
	added   []repository.NewItemPayload
	status  []entity.ItemStatus

	createErr  error
	addErr     error
	addErrAt   int // fail the n-th AddItem (1-based), 0 = never
	statusErr  error
	cancelErr  error
	canceled   []uint
	resetCalls int
	resetErr   error
}

func (f *fakeOrderAPI) GetAll(ctx context.Context) ([]entity.Order, error) { return f.all, nil }

func (f *fakeOrderAPI) GetByID(ctx context.Context, id uint) (*entity.Order, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

func (f *fakeOrderAPI) Create(ctx context.Context, p *repository.CreateOrderPayload) (*entity.Order, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, *p)
	return &entity.Order{ID: 100, TableID: p.TableID, CustomerName: p.CustomerName, PartySize: p.PartySize}, nil
}

func (f *fakeOrderAPI) AddItem(ctx context.Context, orderID uint, item *repository.NewItemPayload) error {
	if f.addErrAt > 0 && len(f.added)+1 == f.addErrAt {
		return f.addErr
	}
	if f.addErrAt == 0 && f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, *item)
	return nil
}

func (f *fakeOrderAPI) UpdateStatus(ctx context.Context, orderID uint, status entity.ItemStatus) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	f.status = append(f.status, status)
	return nil
}

func (f *fakeOrderAPI) Cancel(ctx context.Context, orderID uint, reason string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.canceled = append(f.canceled, orderID)
	return nil
}

func (f *fakeOrderAPI) ResetAll(ctx context.Context) error {
	f.resetCalls++
	return f.resetErr
}

type fakeItemAPI struct {
	canceled []uint
	reasons  []string
	err      error
	onCancel func(itemID uint) // observe store state at call time
}

func (f *fakeItemAPI) Cancel(ctx context.Context, itemID uint, reason string) error {
	if f.onCancel != nil {
		f.onCancel(itemID)
	}
	if f.err != nil {
		return f.err
	}
	f.canceled = append(f.canceled, itemID)
	f.reasons = append(f.reasons, reason)
	return nil
}

type fakeCatalogAPI struct {
	recipes    []entity.Recipe
	groups     []entity.RecipeGroup
	containers []entity.Container
}

func (f *fakeCatalogAPI) GetRecipes(ctx context.Context) ([]entity.Recipe, error) {
	return f.recipes, nil
}

func (f *fakeCatalogAPI) GetGroups(ctx context.Context) ([]entity.RecipeGroup, error) {
	return f.groups, nil
}

func (f *fakeCatalogAPI) GetContainers(ctx context.Context) ([]entity.Container, error) {
	return f.containers, nil
}

type fakePaymentAPI struct {
	submitted []repository.SubmitPaymentPayload
	err       error
}

func (f *fakePaymentAPI) Submit(ctx context.Context, orderID uint, p *repository.SubmitPaymentPayload) (*entity.PaymentResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.submitted = append(f.submitted, *p)
	return &entity.PaymentResult{ID: 1, OrderID: orderID, Method: p.Method, Description: p.Description}, nil
}

// fakeSyncer records reloads and optionally applies a callback so tests can
// simulate the server snapshot landing in the store.
type fakeSyncer struct {
	initialCalls int
	tableCalls   []uint
	saves        int
	onTableLoad  func(tableID uint)
	onBeginSave  func()
}

func (f *fakeSyncer) LoadInitialData(ctx context.Context) error {
	f.initialCalls++
	return nil
}

func (f *fakeSyncer) LoadTableOrders(ctx context.Context, tableID uint) error {
	f.tableCalls = append(f.tableCalls, tableID)
	if f.onTableLoad != nil {
		f.onTableLoad(tableID)
	}
	return nil
}

func (f *fakeSyncer) BeginSave() func() {
	f.saves++
	if f.onBeginSave != nil {
		f.onBeginSave()
	}
	return func() {}
}

type recordNotifier struct {
	actions []string
}

func (n *recordNotifier) Notify(level, action, message string) {
	n.actions = append(n.actions, action)
}

var errBoom = errors.New("boom")
