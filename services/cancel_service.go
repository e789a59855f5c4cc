package services

import (
	"context"
	"strings"
)

type CancelKind string

const (
	CancelOrderKind CancelKind = "order"
	CancelItemKind  CancelKind = "item"
)

type CancelTarget struct {
	Kind CancelKind `json:"kind"`
	ID   uint       `json:"id"`
}

// CancellationWorkflow is the reason-gated front end to the two cancel
// operations: confirm stays disabled until a target is set and the reason is
// non-empty, then the matching controller method is dispatched by tag.
type CancellationWorkflow struct {
	svc    *OrderService
	target *CancelTarget
	reason string
}

func NewCancellationWorkflow(svc *OrderService) *CancellationWorkflow {
	return &CancellationWorkflow{svc: svc}
}

func (w *CancellationWorkflow) SetTarget(kind CancelKind, id uint) {
	w.target = &CancelTarget{Kind: kind, ID: id}
}

func (w *CancellationWorkflow) SetReason(reason string) { w.reason = reason }

func (w *CancellationWorkflow) Target() *CancelTarget { return w.target }

func (w *CancellationWorkflow) CanConfirm() bool {
	return w.target != nil && strings.TrimSpace(w.reason) != ""
}

// Confirm dispatches the cancellation and clears the workflow on success.
func (w *CancellationWorkflow) Confirm(ctx context.Context) error {
	if w.target == nil || strings.TrimSpace(w.reason) == "" {
		return ErrReasonRequired
	}

	var err error
	switch w.target.Kind {
	case CancelItemKind:
		err = w.svc.CancelItem(ctx, w.target.ID, w.reason)
	default:
		err = w.svc.CancelOrder(ctx, w.target.ID, w.reason)
	}
	if err != nil {
		return err
	}

	w.target = nil
	w.reason = ""
	return nil
}
