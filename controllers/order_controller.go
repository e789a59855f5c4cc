package controllers

import (
	"errors"

	"comanda/pkg/resp"
	"comanda/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Svc  *services.OrderService
	Cart *services.CartService

	// DefaultWaiter fills in when a submit omits the waiter name.
	DefaultWaiter string
}

func NewOrderController(svc *services.OrderService, cart *services.CartService, defaultWaiter string) *OrderController {
	return &OrderController{Svc: svc, Cart: cart, DefaultWaiter: defaultWaiter}
}

type submitReq struct {
	Waiter       string `json:"waiter"`
	CustomerName string `json:"customerName"`
	PartySize    int    `json:"partySize"`
}

// POST /tables/:id/submit — table 0 is the delivery cart
func (oc *OrderController) Submit(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if req.Waiter == "" {
		req.Waiter = oc.DefaultWaiter
	}
	in := services.SubmitIn{
		Waiter:       req.Waiter,
		CustomerName: req.CustomerName,
		PartySize:    req.PartySize,
	}
	if id == services.DeliveryCartKey {
		in.Delivery = true
	} else {
		tid := id
		in.TableID = &tid
	}

	cart := oc.Cart.Get(id)
	out, err := oc.Svc.SubmitCart(c.Request.Context(), cart, &in)
	if err != nil {
		var ae *services.AppendError
		if errors.As(err, &ae) {
			// partial progress is committed; report what landed
			c.JSON(502, gin.H{"ok": false, "error": ae.Error(), "orderId": ae.OrderID, "appended": ae.Appended})
			return
		}
		writeErr(c, err)
		return
	}

	oc.Cart.Clear(id)
	resp.Created(c, out)
}

// POST /orders/:id/close
func (oc *OrderController) Close(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := oc.Svc.CloseOrder(c.Request.Context(), id); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"closed": id})
}

type cancelReq struct {
	Reason string `json:"reason"`
}

// POST /orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req cancelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	wf := services.NewCancellationWorkflow(oc.Svc)
	wf.SetTarget(services.CancelOrderKind, id)
	wf.SetReason(req.Reason)
	if !wf.CanConfirm() {
		resp.BadRequest(c, services.ErrReasonRequired.Error())
		return
	}
	if err := wf.Confirm(c.Request.Context()); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"canceled": id})
}

// POST /order-items/:id/cancel
func (oc *OrderController) CancelItem(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req cancelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	wf := services.NewCancellationWorkflow(oc.Svc)
	wf.SetTarget(services.CancelItemKind, id)
	wf.SetReason(req.Reason)
	if !wf.CanConfirm() {
		resp.BadRequest(c, services.ErrReasonRequired.Error())
		return
	}
	if err := wf.Confirm(c.Request.Context()); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"canceled": id})
}
