package entity

import "time"

type PaymentMethod string

const (
	PayCash PaymentMethod = "CASH"
	PayCard PaymentMethod = "CARD"
)

type PaymentResult struct {
	ID          uint          `json:"id"`
	OrderID     uint          `json:"orderId"`
	Amount      int64         `json:"amount"` // cents
	Method      PaymentMethod `json:"method"`
	Description string        `json:"description"`
	PaidAt      *time.Time    `json:"paidAt,omitempty"`
}

// Line is the unified accessor over a pending cart line and a committed order
// item, so display code never branches on which shape it holds.
type Line interface {
	LineTotal() int64
	LineStatus() ItemStatus
}

var (
	_ Line = CartLine{}
	_ Line = OrderItem{}
)
