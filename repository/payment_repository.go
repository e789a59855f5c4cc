package repository

import (
	"context"
	"fmt"

	"comanda/entity"
)

type PaymentRepository struct{ C *Client }

func NewPaymentRepository(c *Client) *PaymentRepository { return &PaymentRepository{C: c} }

type SubmitPaymentPayload struct {
	ItemIDs     []uint               `json:"itemIds"`
	Method      entity.PaymentMethod `json:"method"`
	Description string               `json:"description"`
}

func (r *PaymentRepository) Submit(ctx context.Context, orderID uint, p *SubmitPaymentPayload) (*entity.PaymentResult, error) {
	var out entity.PaymentResult
	if err := r.C.post(ctx, fmt.Sprintf("/orders/%d/payments", orderID), p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
