package services

import (
	"context"

	"comanda/entity"
	"comanda/repository"
)

// Consumer-side views of the upstream server. repository implements all of
// them; tests substitute fakes.

type TableAPI interface {
	GetAll(ctx context.Context) ([]entity.Table, error)
	GetActiveOrders(ctx context.Context, tableID uint) ([]entity.Order, error)
}

type OrderAPI interface {
	GetAll(ctx context.Context) ([]entity.Order, error)
	GetByID(ctx context.Context, id uint) (*entity.Order, error)
	Create(ctx context.Context, p *repository.CreateOrderPayload) (*entity.Order, error)
	AddItem(ctx context.Context, orderID uint, item *repository.NewItemPayload) error
	UpdateStatus(ctx context.Context, orderID uint, status entity.ItemStatus) error
	Cancel(ctx context.Context, orderID uint, reason string) error
	ResetAll(ctx context.Context) error
}

type OrderItemAPI interface {
	Cancel(ctx context.Context, itemID uint, reason string) error
}

type CatalogAPI interface {
	GetRecipes(ctx context.Context) ([]entity.Recipe, error)
	GetGroups(ctx context.Context) ([]entity.RecipeGroup, error)
	GetContainers(ctx context.Context) ([]entity.Container, error)
}

type PaymentAPI interface {
	Submit(ctx context.Context, orderID uint, p *repository.SubmitPaymentPayload) (*entity.PaymentResult, error)
}

// Syncer is what the mutation services need from the reconciliation side:
// corrective reloads and the advisory busy flag around saves.
type Syncer interface {
	LoadInitialData(ctx context.Context) error
	LoadTableOrders(ctx context.Context, tableID uint) error
	BeginSave() (release func())
}

// Notifier surfaces network/conflict errors and refresh hints to the UI.
type Notifier interface {
	Notify(level, action, message string)
}

// NopNotifier discards everything.
type NopNotifier struct{}

func (NopNotifier) Notify(level, action, message string) {}
