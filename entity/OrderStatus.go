package entity

// ItemStatus is the per-item lifecycle state as the upstream server speaks it.
type ItemStatus string

const (
	StatusCreated   ItemStatus = "CREATED"
	StatusPreparing ItemStatus = "PREPARING"
	StatusServed    ItemStatus = "SERVED"
	StatusPaid      ItemStatus = "PAID"
	StatusCanceled  ItemStatus = "CANCELED"
)

var itemTransitions = map[ItemStatus][]ItemStatus{
	StatusCreated:   {StatusPreparing, StatusServed, StatusCanceled},
	StatusPreparing: {StatusServed, StatusCanceled},
	StatusServed:    {StatusPaid, StatusCanceled},
	StatusPaid:      {},
	StatusCanceled:  {},
}

// CanTransitionTo reports whether the item state machine allows from -> to.
func (s ItemStatus) CanTransitionTo(to ItemStatus) bool {
	for _, next := range itemTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal statuses have no outgoing transition.
func (s ItemStatus) Terminal() bool {
	return s == StatusPaid || s == StatusCanceled
}

// Cancelable = CREATED, PREPARING or SERVED.
func (s ItemStatus) Cancelable() bool {
	return s.CanTransitionTo(StatusCanceled)
}
