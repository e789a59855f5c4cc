package controllers

import (
	"comanda/entity"
	"comanda/pkg/resp"
	"comanda/services"

	"github.com/gin-gonic/gin"
)

type TableController struct {
	Store *services.TableStore
	Sync  *services.SyncService
}

func NewTableController(store *services.TableStore, sync *services.SyncService) *TableController {
	return &TableController{Store: store, Sync: sync}
}

type tableRow struct {
	entity.Table
	Status  entity.TableStatus     `json:"status"`
	Summary *services.TableSummary `json:"summary,omitempty"`
}

// GET /tables — floor overview, pure read over the store
func (tc *TableController) List(c *gin.Context) {
	tc.Sync.SetOverview(true)

	tables := tc.Store.Tables()
	rows := make([]tableRow, 0, len(tables))
	for _, t := range tables {
		row := tableRow{Table: t, Status: tc.Store.TableStatus(t.ID)}
		if sum, ok := tc.Store.TableSummary(t.ID); ok {
			row.Summary = &sum
		}
		rows = append(rows, row)
	}
	resp.OK(c, gin.H{"tables": rows})
}

// GET /tables/:id/summary
func (tc *TableController) Summary(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	// entering a table detail pauses the overview poll
	tc.Sync.SetOverview(false)

	sum, found := tc.Store.TableSummary(id)
	if !found {
		resp.OK(c, gin.H{"status": entity.TableAvailable})
		return
	}
	resp.OK(c, gin.H{"status": entity.TableOccupied, "summary": sum})
}

// GET /tables/:id/orders — the table's active orders from the cache
func (tc *TableController) Orders(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	resp.OK(c, gin.H{"orders": tc.Store.OrdersForTable(id)})
}

// POST /tables/:id/refresh — targeted reload from the server
func (tc *TableController) Refresh(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := tc.Sync.LoadTableOrders(c.Request.Context(), id); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": tc.Store.OrdersForTable(id)})
}
