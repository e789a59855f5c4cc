package repository

import (
	"context"
	"fmt"

	"comanda/entity"
)

type TableRepository struct{ C *Client }

func NewTableRepository(c *Client) *TableRepository { return &TableRepository{C: c} }

func (r *TableRepository) GetAll(ctx context.Context) ([]entity.Table, error) {
	var out []entity.Table
	if err := r.C.get(ctx, "/tables", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetActiveOrders returns the orders currently open against one table.
func (r *TableRepository) GetActiveOrders(ctx context.Context, tableID uint) ([]entity.Order, error) {
	var out []entity.Order
	if err := r.C.get(ctx, fmt.Sprintf("/tables/%d/orders?active=true", tableID), &out); err != nil {
		return nil, err
	}
	return out, nil
}
