package controllers

import (
	"comanda/pkg/resp"
	"comanda/services"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /tables/:id/cart
func (h *CartController) Get(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	cart := h.Svc.Get(id)
	resp.OK(c, gin.H{"cart": cart, "total": cart.Total(), "itemCount": cart.ItemCount()})
}

// POST /tables/:id/cart/lines
func (h *CartController) AddLine(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req services.AddLineIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.AddLine(c.Request.Context(), id, &req); err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, gin.H{"cart": h.Svc.Get(id)})
}

// PATCH /tables/:id/cart/lines/:idx
func (h *CartController) UpdateLine(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	idx, ok := paramUint(c, "idx")
	if !ok {
		return
	}

	var body struct {
		Qty  *int    `json:"qty"`
		Note *string `json:"note"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if body.Qty != nil {
		if err := h.Svc.SetQty(id, int(idx), *body.Qty); err != nil {
			writeErr(c, err)
			return
		}
	}
	if body.Note != nil {
		if err := h.Svc.SetNote(id, int(idx), *body.Note); err != nil {
			writeErr(c, err)
			return
		}
	}
	resp.OK(c, gin.H{"cart": h.Svc.Get(id)})
}

// DELETE /tables/:id/cart/lines/:idx
func (h *CartController) RemoveLine(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	idx, ok := paramUint(c, "idx")
	if !ok {
		return
	}
	h.Svc.RemoveLine(id, int(idx))
	resp.OK(c, gin.H{"cart": h.Svc.Get(id)})
}

// DELETE /tables/:id/cart
func (h *CartController) Clear(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	h.Svc.Clear(id)
	resp.OK(c, gin.H{"ok": true})
}
