package services

import (
	"context"

	"comanda/entity"
	"comanda/repository"
)

// OrderService orchestrates submit/append/close/cancel against the store and
// the server.
type OrderService struct {
	Store    *TableStore
	Orders   OrderAPI
	Items    OrderItemAPI
	Sync     Syncer
	Notifier Notifier
}

func NewOrderService(store *TableStore, orders OrderAPI, items OrderItemAPI, sync Syncer, notifier Notifier) *OrderService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &OrderService{Store: store, Orders: orders, Items: items, Sync: sync, Notifier: notifier}
}

type SubmitIn struct {
	TableID      *uint  `json:"tableId"`
	Delivery     bool   `json:"delivery"`
	Waiter       string `json:"waiter"`
	CustomerName string `json:"customerName"`
	PartySize    int    `json:"partySize"`
}

type SubmitOut struct {
	OrderID  uint `json:"orderId"`
	Created  bool `json:"created"`  // false when lines were appended
	Appended int  `json:"appended"` // lines appended to an existing order
}

// SubmitCart turns a non-empty cart into a new order, or appends its lines to
// the table's existing active order. Appends go out strictly one at a time,
// each awaited before the next, so the server sees them in cart order. A
// mid-sequence failure leaves the earlier appends committed and reports the
// failing line; the follow-up reload brings the cache back to ground truth.
func (s *OrderService) SubmitCart(ctx context.Context, cart entity.Cart, in *SubmitIn) (*SubmitOut, error) {
	if len(cart.Lines) == 0 {
		return nil, ErrEmptyCart
	}
	if in.TableID == nil && !in.Delivery {
		return nil, ErrNoTarget
	}

	release := s.Sync.BeginSave()
	defer release()

	if in.TableID != nil {
		if active, ok := s.Store.ActiveOrderForTable(*in.TableID); ok {
			return s.appendLines(ctx, active, cart)
		}
	}

	payload := &repository.CreateOrderPayload{
		TableID:      in.TableID,
		Delivery:     in.Delivery,
		Waiter:       in.Waiter,
		CustomerName: in.CustomerName,
		PartySize:    in.PartySize,
		Items:        make([]repository.NewItemPayload, 0, len(cart.Lines)),
	}
	for _, l := range cart.Lines {
		payload.Items = append(payload.Items, lineToPayload(l))
	}

	order, err := s.Orders.Create(ctx, payload)
	if err != nil {
		return nil, err
	}

	s.reloadAfterSave(ctx, in.TableID)
	return &SubmitOut{OrderID: order.ID, Created: true}, nil
}

func (s *OrderService) appendLines(ctx context.Context, order entity.Order, cart entity.Cart) (*SubmitOut, error) {
	for i, l := range cart.Lines {
		item := lineToPayload(l)
		if err := s.Orders.AddItem(ctx, order.ID, &item); err != nil {
			// lines [0,i) are committed; deliberately no rollback
			s.reloadAfterSave(ctx, order.TableID)
			return nil, &AppendError{OrderID: order.ID, FailedIndex: i, Appended: i, Err: err}
		}
	}
	s.reloadAfterSave(ctx, order.TableID)
	return &SubmitOut{OrderID: order.ID, Appended: len(cart.Lines)}, nil
}

func lineToPayload(l entity.CartLine) repository.NewItemPayload {
	return repository.NewItemPayload{
		RecipeID:    l.RecipeID,
		Qty:         l.Qty,
		Note:        l.Note,
		Takeaway:    l.Takeaway,
		ContainerID: l.ContainerID,
		UnitPrice:   l.UnitPrice,
	}
}

// ResetAll wipes orders, payments and counters server-side, then rebuilds the
// cache from scratch. Errors surface directly, no retry.
func (s *OrderService) ResetAll(ctx context.Context) error {
	if err := s.Orders.ResetAll(ctx); err != nil {
		return err
	}
	s.Store.Reset()
	return s.Sync.LoadInitialData(ctx)
}

// reloadAfterSave refreshes the affected table, falling back to a full
// snapshot for delivery orders. Reload failures are surfaced as
// notifications, not returned: the save itself already succeeded.
func (s *OrderService) reloadAfterSave(ctx context.Context, tableID *uint) {
	var err error
	if tableID != nil {
		err = s.Sync.LoadTableOrders(ctx, *tableID)
	} else {
		err = s.Sync.LoadInitialData(ctx)
	}
	if err != nil {
		s.Notifier.Notify("error", "reload_failed", err.Error())
	}
}
