package entity

import "time"

type Order struct {
	ID uint `json:"id"`

	// nil for delivery orders
	TableID *uint `json:"tableId,omitempty"`

	Waiter       string    `json:"waiter"`
	CustomerName string    `json:"customerName"`
	PartySize    int       `json:"partySize"`
	CreatedAt    time.Time `json:"createdAt"`

	Items []OrderItem `json:"items"`
}

// DerivedStatus aggregates the item statuses. Orders carry no status of their
// own; CREATED/PREPARING mark the order active, SERVED makes it eligible for
// closing, PAID and CANCELED retire it.
func (o Order) DerivedStatus() ItemStatus {
	if len(o.Items) == 0 {
		return StatusCreated
	}

	active := 0
	served := 0
	inKitchen := false
	allCreated := true
	for _, it := range o.Items {
		if !it.Active() {
			continue
		}
		active++
		switch it.Status {
		case StatusCreated, StatusPreparing:
			inKitchen = true
			if it.Status != StatusCreated {
				allCreated = false
			}
		case StatusServed:
			served++
			allCreated = false
		default:
			allCreated = false
		}
	}

	switch {
	case active == 0:
		return StatusCanceled
	case inKitchen && allCreated:
		return StatusCreated
	case inKitchen:
		return StatusPreparing
	case served > 0:
		return StatusServed
	default:
		return StatusPaid
	}
}

// IsActive reports whether the order still occupies its table.
func (o Order) IsActive() bool {
	s := o.DerivedStatus()
	return s == StatusCreated || s == StatusPreparing
}

// ItemTotal sums the totals of non-canceled items.
func (o Order) ItemTotal() int64 {
	var sum int64
	for _, it := range o.Items {
		if it.Active() {
			sum += it.Total
		}
	}
	return sum
}

// ActiveItemCount counts non-canceled items.
func (o Order) ActiveItemCount() int {
	n := 0
	for _, it := range o.Items {
		if it.Active() {
			n++
		}
	}
	return n
}

// Clone deep-copies the order so optimistic patches never alias store state.
func (o Order) Clone() Order {
	out := o
	if o.TableID != nil {
		id := *o.TableID
		out.TableID = &id
	}
	out.Items = make([]OrderItem, len(o.Items))
	copy(out.Items, o.Items)
	for i := range out.Items {
		if cid := out.Items[i].ContainerID; cid != nil {
			v := *cid
			out.Items[i].ContainerID = &v
		}
	}
	return out
}
