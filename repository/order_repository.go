package repository

import (
	"context"
	"fmt"

	"comanda/entity"
)

type OrderRepository struct{ C *Client }

func NewOrderRepository(c *Client) *OrderRepository { return &OrderRepository{C: c} }

type CreateOrderPayload struct {
	TableID      *uint            `json:"tableId,omitempty"`
	Delivery     bool             `json:"delivery"`
	Waiter       string           `json:"waiter"`
	CustomerName string           `json:"customerName,omitempty"`
	PartySize    int              `json:"partySize,omitempty"`
	Items        []NewItemPayload `json:"items"`
}

type NewItemPayload struct {
	RecipeID    uint   `json:"recipeId"`
	Qty         int    `json:"qty"`
	Note        string `json:"note"`
	Takeaway    bool   `json:"takeaway"`
	ContainerID *uint  `json:"containerId,omitempty"`
	UnitPrice   int64  `json:"unitPrice"`
}

func (r *OrderRepository) GetAll(ctx context.Context) ([]entity.Order, error) {
	var out []entity.Order
	if err := r.C.get(ctx, "/orders", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id uint) (*entity.Order, error) {
	var out entity.Order
	if err := r.C.get(ctx, fmt.Sprintf("/orders/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *OrderRepository) Create(ctx context.Context, p *CreateOrderPayload) (*entity.Order, error) {
	var out entity.Order
	if err := r.C.post(ctx, "/orders", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *OrderRepository) AddItem(ctx context.Context, orderID uint, item *NewItemPayload) error {
	return r.C.post(ctx, fmt.Sprintf("/orders/%d/items", orderID), item, nil)
}

// UpdateStatus bulk-transitions the order's items server-side (close = all
// PREPARING items to SERVED in one call).
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID uint, status entity.ItemStatus) error {
	body := map[string]any{"status": status}
	return r.C.patch(ctx, fmt.Sprintf("/orders/%d/status", orderID), body, nil)
}

func (r *OrderRepository) Cancel(ctx context.Context, orderID uint, reason string) error {
	body := map[string]any{"reason": reason}
	return r.C.post(ctx, fmt.Sprintf("/orders/%d/cancel", orderID), body, nil)
}

// ResetAll wipes orders, payments and counters. Destructive, admin-gated.
func (r *OrderRepository) ResetAll(ctx context.Context) error {
	return r.C.post(ctx, "/admin/reset", nil, nil)
}
