package controllers

import (
	"comanda/entity"
	"comanda/pkg/resp"
	"comanda/services"

	"github.com/gin-gonic/gin"
)

type PaymentController struct{ Svc *services.PaymentService }

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: s}
}

// GET /orders/:id/payment — the paid-eligible items
func (pc *PaymentController) Eligible(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	sess, err := pc.Svc.StartSession(id)
	if err != nil {
		writeErr(c, err)
		return
	}
	sess.SelectAll()
	resp.OK(c, gin.H{"items": sess.Eligible(), "total": sess.ComputeTotal()})
}

type payReq struct {
	ItemIDs     []uint               `json:"itemIds" binding:"required,min=1"`
	Method      entity.PaymentMethod `json:"method" binding:"required"`
	Description string               `json:"description"`
}

// POST /orders/:id/payment
func (pc *PaymentController) Pay(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	var req payReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sess, err := pc.Svc.StartSession(id)
	if err != nil {
		writeErr(c, err)
		return
	}
	for _, itemID := range req.ItemIDs {
		if err := sess.Select(itemID); err != nil {
			writeErr(c, err)
			return
		}
	}

	result, err := pc.Svc.Process(c.Request.Context(), sess, req.Method, req.Description)
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.Created(c, gin.H{"payment": result, "total": result.Amount})
}
