package services

import (
	"context"
	"sync"

	"comanda/entity"
)

// DeliveryCartKey holds the cart for orders without a table.
const DeliveryCartKey uint = 0

// CartService keeps one pending cart per table, the way the upstream keeps
// one cart per user. Nothing here is persisted; a submitted cart becomes an
// order and the cart is cleared.
type CartService struct {
	mu      sync.Mutex
	carts   map[uint]*entity.Cart
	catalog CatalogAPI
}

func NewCartService(catalog CatalogAPI) *CartService {
	return &CartService{carts: make(map[uint]*entity.Cart), catalog: catalog}
}

type AddLineIn struct {
	RecipeID uint   `json:"recipeId" binding:"required"`
	Qty      int    `json:"qty"`
	Note     string `json:"note"`
	Takeaway bool   `json:"takeaway"`
}

func (s *CartService) cart(key uint) *entity.Cart {
	c, ok := s.carts[key]
	if !ok {
		c = &entity.Cart{}
		s.carts[key] = c
	}
	return c
}

// Get returns a copy of the cart for a table.
func (s *CartService) Get(key uint) entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(key)
	return entity.Cart{Lines: append([]entity.CartLine(nil), c.Lines...)}
}

// AddLine resolves the recipe, validates the takeaway container and merges
// the line into the cart. Lines with the same (recipe, note, takeaway) key
// accumulate quantity; the total is always unit price x quantity.
func (s *CartService) AddLine(ctx context.Context, key uint, in *AddLineIn) error {
	if in.Qty <= 0 {
		in.Qty = 1
	}

	recipes, err := s.catalog.GetRecipes(ctx)
	if err != nil {
		return err
	}
	var recipe *entity.Recipe
	for i := range recipes {
		if recipes[i].ID == in.RecipeID {
			recipe = &recipes[i]
			break
		}
	}
	if recipe == nil {
		return ErrRecipeNotFound
	}

	unit := recipe.Price
	var containerID *uint
	if in.Takeaway {
		containers, err := s.catalog.GetContainers(ctx)
		if err != nil {
			return err
		}
		// no silent default: takeaway without a compatible container is rejected
		c, ok := recipe.ContainerFor(containers)
		if !ok {
			return ErrNoContainer
		}
		unit += c.Price
		id := c.ID
		containerID = &id
	}

	line := entity.CartLine{
		RecipeID:    recipe.ID,
		RecipeName:  recipe.Name,
		Qty:         in.Qty,
		Note:        in.Note,
		Takeaway:    in.Takeaway,
		UnitPrice:   unit,
		ContainerID: containerID,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(key)
	for i := range c.Lines {
		if c.Lines[i].Key() == line.Key() {
			c.Lines[i].Qty += in.Qty
			c.Lines[i].Total = c.Lines[i].UnitPrice * int64(c.Lines[i].Qty)
			return nil
		}
	}
	line.Total = line.UnitPrice * int64(line.Qty)
	c.Lines = append(c.Lines, line)
	return nil
}

// SetQty updates one line's quantity and recomputes its total. Quantity never
// drops below 1; use RemoveLine for that.
func (s *CartService) SetQty(key uint, index, qty int) error {
	if qty < 1 {
		return ErrQtyBelowOne
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(key)
	if index < 0 || index >= len(c.Lines) {
		return ErrLineNotFound
	}
	c.Lines[index].Qty = qty
	c.Lines[index].Total = c.Lines[index].UnitPrice * int64(qty)
	return nil
}

func (s *CartService) SetNote(key uint, index int, note string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(key)
	if index < 0 || index >= len(c.Lines) {
		return ErrLineNotFound
	}
	c.Lines[index].Note = note
	return nil
}

// RemoveLine drops a line by position; indexes already gone are a no-op.
func (s *CartService) RemoveLine(key uint, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(key)
	if index < 0 || index >= len(c.Lines) {
		return
	}
	c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
}

func (s *CartService) Clear(key uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, key)
}
