package repository

import (
	"context"
	"fmt"
)

type OrderItemRepository struct{ C *Client }

func NewOrderItemRepository(c *Client) *OrderItemRepository { return &OrderItemRepository{C: c} }

func (r *OrderItemRepository) Cancel(ctx context.Context, itemID uint, reason string) error {
	body := map[string]any{"reason": reason}
	return r.C.post(ctx, fmt.Sprintf("/order-items/%d/cancel", itemID), body, nil)
}
