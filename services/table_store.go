package services

import (
	"fmt"
	"sync"
	"time"

	"comanda/entity"
)

// TableStore is the canonical in-memory cache of tables and orders — the one
// shared mutable resource. Writes only ever replace whole snapshots, whole
// per-table slices or whole orders; there is no partial field patching from
// outside, which keeps merging server snapshots with optimistic patches a
// plain last-writer-wins per order id.
type TableStore struct {
	mu      sync.RWMutex
	tables  []entity.Table
	orders  []entity.Order
	byTable map[uint][]entity.Order // table id -> active orders only

	nowFn func() time.Time
}

func NewTableStore() *TableStore {
	return &TableStore{
		byTable: make(map[uint][]entity.Order),
		nowFn:   time.Now,
	}
}

// reindex rebuilds the per-table index. Caller holds mu.
func (s *TableStore) reindex() {
	s.byTable = make(map[uint][]entity.Order)
	for _, o := range s.orders {
		if o.TableID == nil || !o.IsActive() {
			continue
		}
		s.byTable[*o.TableID] = append(s.byTable[*o.TableID], o)
	}
}

// ===== Mutation entry points =====

func (s *TableStore) ReplaceTables(tables []entity.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables = append([]entity.Table(nil), tables...)
}

// ReplaceAll swaps in a full order snapshot.
func (s *TableStore) ReplaceAll(orders []entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = cloneOrders(orders)
	s.reindex()
}

// ReplaceOrdersForTable swaps one table's orders and keeps every other
// table's entries untouched. Replacement by id is idempotent: an order
// already present for that table is simply superseded.
func (s *TableStore) ReplaceOrdersForTable(tableID uint, orders []entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]entity.Order, 0, len(s.orders)+len(orders))
	for _, o := range s.orders {
		if o.TableID != nil && *o.TableID == tableID {
			continue
		}
		kept = append(kept, o)
	}
	kept = append(kept, cloneOrders(orders)...)
	s.orders = kept
	s.reindex()
}

// ReplaceOrder is the optimistic-patch write path: one whole order replaced
// by id. Unknown ids are appended.
func (s *TableStore) ReplaceOrder(order entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.orders {
		if s.orders[i].ID == order.ID {
			s.orders[i] = order.Clone()
			replaced = true
			break
		}
	}
	if !replaced {
		s.orders = append(s.orders, order.Clone())
	}
	s.reindex()
}

func (s *TableStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = nil
	s.tables = nil
	s.reindex()
}

// ===== Reads =====

func (s *TableStore) Tables() []entity.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entity.Table(nil), s.tables...)
}

func (s *TableStore) Orders() []entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrders(s.orders)
}

func (s *TableStore) OrdersForTable(tableID uint) []entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrders(s.byTable[tableID])
}

// ActiveOrderForTable returns the single active order of a table. At any
// reconciled snapshot there is at most one.
func (s *TableStore) ActiveOrderForTable(tableID uint) (entity.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	active := s.byTable[tableID]
	if len(active) == 0 {
		return entity.Order{}, false
	}
	return active[0].Clone(), true
}

func (s *TableStore) OrderByID(id uint) (entity.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o.Clone(), true
		}
	}
	return entity.Order{}, false
}

// ItemByID finds an item and the order holding it.
func (s *TableStore) ItemByID(itemID uint) (entity.Order, entity.OrderItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		for _, it := range o.Items {
			if it.ID == itemID {
				return o.Clone(), it, true
			}
		}
	}
	return entity.Order{}, entity.OrderItem{}, false
}

func (s *TableStore) TableStatus(tableID uint) entity.TableStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.byTable[tableID]) > 0 {
		return entity.TableOccupied
	}
	return entity.TableAvailable
}

type TableSummary struct {
	OrderID      uint   `json:"orderId"`
	ItemCount    int    `json:"itemCount"`
	Total        int64  `json:"total"`
	Waiter       string `json:"waiter"`
	CustomerName string `json:"customerName"`
	Elapsed      string `json:"elapsed"`
}

// TableSummary describes the active order of an occupied table.
func (s *TableStore) TableSummary(tableID uint) (TableSummary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	active := s.byTable[tableID]
	if len(active) == 0 {
		return TableSummary{}, false
	}
	o := active[0]
	return TableSummary{
		OrderID:      o.ID,
		ItemCount:    o.ActiveItemCount(),
		Total:        o.ItemTotal(),
		Waiter:       o.Waiter,
		CustomerName: o.CustomerName,
		Elapsed:      formatElapsed(s.nowFn().Sub(o.CreatedAt)),
	}, true
}

// formatElapsed renders minutes, switching to hours+minutes at the hour mark.
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	mins := int(d.Minutes())
	if mins < 60 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dh %02dm", mins/60, mins%60)
}

func cloneOrders(in []entity.Order) []entity.Order {
	out := make([]entity.Order, len(in))
	for i, o := range in {
		out[i] = o.Clone()
	}
	return out
}
