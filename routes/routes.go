package routes

import (
	"comanda/controllers"
	"comanda/middlewares"
	"comanda/services"
	"comanda/ws"

	"github.com/gin-gonic/gin"
)

type Deps struct {
	Store    *services.TableStore
	Sync     *services.SyncService
	Carts    *services.CartService
	Orders   *services.OrderService
	Payments *services.PaymentService
	Catalog  services.CatalogAPI
	Hub      *ws.NotifyHub

	Waiter string // default waiter name for submits
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Controllers
	tableCtrl := controllers.NewTableController(d.Store, d.Sync)
	cartCtrl := controllers.NewCartController(d.Carts)
	orderCtrl := controllers.NewOrderController(d.Orders, d.Carts, d.Waiter)
	payCtrl := controllers.NewPaymentController(d.Payments)
	catalogCtrl := controllers.NewCatalogController(d.Catalog)
	adminCtrl := controllers.NewAdminController(d.Orders)

	// Floor overview
	r.GET("/tables", tableCtrl.List)
	r.GET("/tables/:id/summary", tableCtrl.Summary)
	r.GET("/tables/:id/orders", tableCtrl.Orders)
	r.POST("/tables/:id/refresh", tableCtrl.Refresh)

	// Cart (table 0 = delivery)
	r.GET("/tables/:id/cart", cartCtrl.Get)
	r.POST("/tables/:id/cart/lines", cartCtrl.AddLine)
	r.PATCH("/tables/:id/cart/lines/:idx", cartCtrl.UpdateLine)
	r.DELETE("/tables/:id/cart/lines/:idx", cartCtrl.RemoveLine)
	r.DELETE("/tables/:id/cart", cartCtrl.Clear)
	r.POST("/tables/:id/submit", orderCtrl.Submit)

	// Order lifecycle
	r.POST("/orders/:id/close", orderCtrl.Close)
	r.POST("/orders/:id/cancel", orderCtrl.Cancel)
	r.POST("/order-items/:id/cancel", orderCtrl.CancelItem)

	// Payment
	r.GET("/orders/:id/payment", payCtrl.Eligible)
	r.POST("/orders/:id/payment", payCtrl.Pay)

	// Catalog (read-only)
	r.GET("/catalog", catalogCtrl.Get)

	// Admin
	r.POST("/admin/reset", adminCtrl.Reset)

	// Notifications
	r.GET("/ws/notifications", d.Hub.HandleWebSocket)
}
