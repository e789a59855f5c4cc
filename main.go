package main

import (
	"context"
	"fmt"
	"log"

	"comanda/configs"
	"comanda/repository"
	"comanda/routes"
	"comanda/services"
	"comanda/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// Upstream clients
	client := repository.NewClient(cfg.UpstreamURL, cfg.HTTPTimeout)
	tableRepo := repository.NewTableRepository(client)
	orderRepo := repository.NewOrderRepository(client)
	itemRepo := repository.NewOrderItemRepository(client)
	catalogRepo := repository.NewCatalogRepository(client)
	paymentRepo := repository.NewPaymentRepository(client)

	// Notifications
	hub := ws.NewNotifyHub()
	go hub.Run()

	// Core
	store := services.NewTableStore()
	syncer := services.NewSyncService(store, tableRepo, orderRepo, cfg.PollInterval)
	carts := services.NewCartService(catalogRepo)
	orders := services.NewOrderService(store, orderRepo, itemRepo, syncer, hub)
	payments := services.NewPaymentService(store, paymentRepo, syncer, hub)

	ctx := context.Background()
	if err := syncer.LoadInitialData(ctx); err != nil {
		log.Printf("initial load failed, starting with an empty cache: %v", err)
	}
	go syncer.Run(ctx)

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, routes.Deps{
		Store:    store,
		Sync:     syncer,
		Carts:    carts,
		Orders:   orders,
		Payments: payments,
		Catalog:  catalogRepo,
		Hub:      hub,
		Waiter:   cfg.Waiter,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("terminal backend running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
