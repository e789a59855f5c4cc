package controllers

import (
	"comanda/pkg/resp"
	"comanda/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct{ Svc *services.OrderService }

func NewAdminController(s *services.OrderService) *AdminController { return &AdminController{Svc: s} }

// POST /admin/reset — destructive: wipes orders, payments and counters
// server-side and rebuilds the cache. Errors surface directly, no retry.
func (ac *AdminController) Reset(c *gin.Context) {
	if err := ac.Svc.ResetAll(c.Request.Context()); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"reset": true})
}
