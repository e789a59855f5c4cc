package services

import (
	"context"
	"sort"

	"comanda/entity"
	"comanda/repository"
)

// PaymentService charges a selection of served items. Payment is never
// optimistic: items are only marked PAID once the server confirms, and a
// failed attempt leaves the selection and every item status untouched.
type PaymentService struct {
	Store    *TableStore
	Payments PaymentAPI
	Sync     Syncer
	Notifier Notifier
}

func NewPaymentService(store *TableStore, payments PaymentAPI, sync Syncer, notifier Notifier) *PaymentService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &PaymentService{Store: store, Payments: payments, Sync: sync, Notifier: notifier}
}

// PaymentSession holds the paid-eligible items of one order and the current
// selection over them.
type PaymentSession struct {
	OrderID  uint
	TableID  *uint
	eligible []entity.OrderItem
	selected map[uint]bool
}

// StartSession builds a session over the order's SERVED items. PAID and
// CANCELED items never enter the eligible set.
func (s *PaymentService) StartSession(orderID uint) (*PaymentSession, error) {
	order, ok := s.Store.OrderByID(orderID)
	if !ok {
		return nil, ErrOrderNotFound
	}

	sess := &PaymentSession{OrderID: orderID, TableID: order.TableID, selected: make(map[uint]bool)}
	for _, it := range order.Items {
		if it.Status == entity.StatusServed {
			sess.eligible = append(sess.eligible, it)
		}
	}
	return sess, nil
}

func (p *PaymentSession) Eligible() []entity.OrderItem {
	return append([]entity.OrderItem(nil), p.eligible...)
}

func (p *PaymentSession) Select(itemID uint) error {
	for _, it := range p.eligible {
		if it.ID == itemID {
			p.selected[itemID] = true
			return nil
		}
	}
	return ErrItemNotEligible
}

func (p *PaymentSession) Deselect(itemID uint) { delete(p.selected, itemID) }

func (p *PaymentSession) SelectAll() {
	for _, it := range p.eligible {
		p.selected[it.ID] = true
	}
}

func (p *PaymentSession) DeselectAll() { p.selected = make(map[uint]bool) }

func (p *PaymentSession) Selected() []uint {
	ids := make([]uint, 0, len(p.selected))
	for id := range p.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ComputeTotal sums item totals (base + container) over the selection.
func (p *PaymentSession) ComputeTotal() int64 {
	var sum int64
	for _, it := range p.eligible {
		if p.selected[it.ID] {
			sum += it.Total
		}
	}
	return sum
}

// Process submits the payment. Requires a non-empty selection; on failure the
// session is left unchanged for a retry or a different method.
func (s *PaymentService) Process(ctx context.Context, sess *PaymentSession, method entity.PaymentMethod, description string) (*entity.PaymentResult, error) {
	ids := sess.Selected()
	if len(ids) == 0 {
		return nil, ErrEmptySelection
	}

	release := s.Sync.BeginSave()
	defer release()

	result, err := s.Payments.Submit(ctx, sess.OrderID, &repository.SubmitPaymentPayload{
		ItemIDs:     ids,
		Method:      method,
		Description: description,
	})
	if err != nil {
		s.Notifier.Notify("error", "payment_failed", err.Error())
		return nil, err
	}

	// server confirmed; reload so the PAID statuses land in the cache
	var rerr error
	if sess.TableID != nil {
		rerr = s.Sync.LoadTableOrders(ctx, *sess.TableID)
	} else {
		rerr = s.Sync.LoadInitialData(ctx)
	}
	if rerr != nil {
		s.Notifier.Notify("error", "reload_failed", rerr.Error())
	}
	return result, nil
}
