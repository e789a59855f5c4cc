package entity

type OrderItem struct {
	ID        uint       `json:"id"`
	Qty       int        `json:"qty"`
	UnitPrice int64      `json:"unitPrice"` // base + container, in cents
	Total     int64      `json:"total"`
	Note      string     `json:"note"`
	Takeaway  bool       `json:"takeaway"`
	Status    ItemStatus `json:"status"`

	CancelReason string `json:"cancelReason,omitempty"`

	OrderID uint `json:"orderId"`

	RecipeID   uint   `json:"recipeId"`
	RecipeName string `json:"recipeName"`

	// required iff Takeaway
	ContainerID *uint `json:"containerId,omitempty"`
}

// Line implementation (committed side of the Pending/Committed variant).

func (it OrderItem) LineTotal() int64 { return it.Total }

func (it OrderItem) LineStatus() ItemStatus { return it.Status }

// Active = counts toward the order's derived status (not canceled).
func (it OrderItem) Active() bool { return it.Status != StatusCanceled }
