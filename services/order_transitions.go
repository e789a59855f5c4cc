package services

import (
	"context"
	"strings"

	"comanda/entity"
)

// ----- Close -----

// CloseOrder bulk-transitions every PREPARING item to SERVED in one status
// call. With zero PREPARING items the close is rejected as a no-op.
func (s *OrderService) CloseOrder(ctx context.Context, orderID uint) error {
	order, ok := s.Store.OrderByID(orderID)
	if !ok {
		return ErrOrderNotFound
	}

	preparing := 0
	for _, it := range order.Items {
		if it.Status == entity.StatusPreparing {
			preparing++
		}
	}
	if preparing == 0 {
		return ErrNoPreparingItems
	}

	release := s.Sync.BeginSave()
	defer release()

	if err := s.Orders.UpdateStatus(ctx, orderID, entity.StatusServed); err != nil {
		s.Notifier.Notify("error", "close_failed", err.Error())
		return err
	}

	s.reloadAfterSave(ctx, order.TableID)
	return nil
}

// ----- Cancel (order) -----

// CancelOrder cancels the whole order, reason required. Not optimistic: the
// server is asked first and the store is only refreshed on success.
func (s *OrderService) CancelOrder(ctx context.Context, orderID uint, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}
	order, ok := s.Store.OrderByID(orderID)
	if !ok {
		return ErrOrderNotFound
	}

	release := s.Sync.BeginSave()
	defer release()

	if err := s.Orders.Cancel(ctx, orderID, reason); err != nil {
		s.Notifier.Notify("error", "cancel_order_failed", err.Error())
		return err
	}

	s.reloadAfterSave(ctx, order.TableID)
	return nil
}

// ----- Cancel (item) -----

// CancelItem cancels a single item optimistically: the store is patched to
// CANCELED with the reason before the network call goes out. On failure there
// is no manual revert; the affected table is reloaded to ground truth.
func (s *OrderService) CancelItem(ctx context.Context, itemID uint, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}
	order, item, ok := s.Store.ItemByID(itemID)
	if !ok {
		return ErrItemNotFound
	}
	if !item.Status.Cancelable() {
		return ErrItemNotCancelable
	}

	// busy flag first: a poll landing between patch and save would overwrite
	// the optimistic cancel with the pre-cancel server snapshot
	release := s.Sync.BeginSave()
	defer release()

	// optimistic patch, whole-order replacement
	patched := order.Clone()
	for i := range patched.Items {
		if patched.Items[i].ID == itemID {
			patched.Items[i].Status = entity.StatusCanceled
			patched.Items[i].CancelReason = reason
		}
	}
	s.Store.ReplaceOrder(patched)

	if err := s.Items.Cancel(ctx, itemID, reason); err != nil {
		s.Notifier.Notify("error", "cancel_item_failed", err.Error())
		if order.TableID != nil {
			if rerr := s.Sync.LoadTableOrders(ctx, *order.TableID); rerr != nil {
				s.Notifier.Notify("error", "reload_failed", rerr.Error())
			}
		} else if rerr := s.Sync.LoadInitialData(ctx); rerr != nil {
			s.Notifier.Notify("error", "reload_failed", rerr.Error())
		}
		return err
	}
	return nil
}
