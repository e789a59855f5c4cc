package entity

// CartLine is a not-yet-persisted order line. Lines with the same merge key
// accumulate quantity instead of appending.
type CartLine struct {
	RecipeID   uint   `json:"recipeId"`
	RecipeName string `json:"recipeName"`
	Qty        int    `json:"qty"`
	Note       string `json:"note"`
	Takeaway   bool   `json:"takeaway"`
	UnitPrice  int64  `json:"unitPrice"` // base + container, in cents
	Total      int64  `json:"total"`

	ContainerID *uint `json:"containerId,omitempty"`
}

// MergeKey identifies lines that are the same thing ordered twice.
type MergeKey struct {
	RecipeID uint
	Note     string
	Takeaway bool
}

func (l CartLine) Key() MergeKey {
	return MergeKey{RecipeID: l.RecipeID, Note: l.Note, Takeaway: l.Takeaway}
}

func (l CartLine) LineTotal() int64 { return l.Total }

// Pending lines have no committed status yet; they report CREATED so cart and
// order rows render through the same accessor.
func (l CartLine) LineStatus() ItemStatus { return StatusCreated }

type Cart struct {
	Lines []CartLine `json:"lines"`
}

func (c Cart) Total() int64 {
	var sum int64
	for _, l := range c.Lines {
		sum += l.Total
	}
	return sum
}

func (c Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Qty
	}
	return n
}
