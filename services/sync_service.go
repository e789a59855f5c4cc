package services

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"comanda/entity"

	"golang.org/x/sync/errgroup"
)

// SyncService keeps the TableStore aligned with the server: a full snapshot
// on startup, a periodic snapshot while the terminal sits on the floor
// overview, and targeted per-table reloads after mutations or failures.
type SyncService struct {
	store  *TableStore
	tables TableAPI
	orders OrderAPI

	interval time.Duration

	// advisory flag raised around saves; a tick that starts in the instant
	// before it is raised can still race the save, which is accepted — a
	// stray snapshot cannot corrupt the store, writes are whole replacements
	busy     atomic.Bool
	inFlight atomic.Bool
	overview atomic.Bool
}

func NewSyncService(store *TableStore, tables TableAPI, orders OrderAPI, interval time.Duration) *SyncService {
	s := &SyncService{store: store, tables: tables, orders: orders, interval: interval}
	s.overview.Store(true)
	return s
}

// BeginSave raises the busy flag for the duration of a save operation.
func (s *SyncService) BeginSave() (release func()) {
	s.busy.Store(true)
	return func() { s.busy.Store(false) }
}

// SetOverview tells the scheduler whether the terminal is on the floor
// overview; polling pauses while a specific order is being edited.
func (s *SyncService) SetOverview(on bool) { s.overview.Store(on) }

// Run polls on a fixed interval until ctx is done.
func (s *SyncService) Run(ctx context.Context) {
	t := time.NewTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Tick(ctx)
		}
	}
}

// Tick fires one poll unless one is already running, a save is in progress
// or the terminal is mid-edit. Skipped ticks are dropped, never queued.
func (s *SyncService) Tick(ctx context.Context) {
	if !s.overview.Load() || s.busy.Load() {
		return
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return
	}
	defer s.inFlight.Store(false)

	if err := s.LoadInitialData(ctx); err != nil {
		log.Printf("sync: poll failed: %v", err)
	}
}

// LoadInitialData fetches all tables and all orders, keeps only the active
// ones and replaces the store wholesale.
func (s *SyncService) LoadInitialData(ctx context.Context) error {
	tables, err := s.tables.GetAll(ctx)
	if err != nil {
		return err
	}
	orders, err := s.orders.GetAll(ctx)
	if err != nil {
		return err
	}

	active := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.IsActive() {
			active = append(active, o)
		}
	}

	s.store.ReplaceTables(tables)
	s.store.ReplaceAll(active)
	return nil
}

// LoadTableOrders refreshes one table. Orders that come back without their
// item list get a detail fetch, issued concurrently, before the table slice
// is replaced.
func (s *SyncService) LoadTableOrders(ctx context.Context, tableID uint) error {
	orders, err := s.tables.GetActiveOrders(ctx, tableID)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range orders {
		if len(orders[i].Items) > 0 {
			continue
		}
		i := i
		g.Go(func() error {
			detail, err := s.orders.GetByID(gctx, orders[i].ID)
			if err != nil {
				return err
			}
			orders[i].Items = detail.Items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	s.store.ReplaceOrdersForTable(tableID, orders)
	return nil
}
