package entity

type RecipeGroup struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Recipe struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"` // cents

	GroupID uint `json:"groupId"`

	// containers this recipe can be taken away in; empty = no takeaway
	ContainerIDs []uint `json:"containerIds"`
}

type Container struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"` // cents, added on top of the recipe price
}

// ContainerFor picks the offering for a takeaway line, ok=false when the
// recipe has no compatible container.
func (r Recipe) ContainerFor(containers []Container) (Container, bool) {
	for _, id := range r.ContainerIDs {
		for _, c := range containers {
			if c.ID == id {
				return c, true
			}
		}
	}
	return Container{}, false
}
