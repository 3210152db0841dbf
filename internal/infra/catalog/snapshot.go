package catalog

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	domcatalog "hotel-quote-engine/internal/domain/catalog"
	"hotel-quote-engine/internal/usecase/shared"
)

// SnapshotStore holds the current catalog index. Readers never block on a
// refresh and may see the previous snapshot while one is in flight.
type SnapshotStore struct {
	uow      shared.UnitOfWork
	interval time.Duration

	current atomic.Pointer[domcatalog.Index]

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSnapshotStore(uow shared.UnitOfWork, interval time.Duration) *SnapshotStore {
	return &SnapshotStore{uow: uow, interval: interval}
}

// Index returns false until the first successful load.
func (s *SnapshotStore) Index() (*domcatalog.Index, bool) {
	ix := s.current.Load()
	return ix, ix != nil
}

func (s *SnapshotStore) Refresh(ctx context.Context) error {
	var hotels []domcatalog.HotelSummary
	err := s.uow.WithDB(ctx, func(ctx context.Context, reads shared.Reads) error {
		var err error
		hotels, err = reads.HotelSummaries(ctx)
		return err
	})
	if err != nil {
		return err
	}

	ix := domcatalog.NewIndex(hotels)
	s.current.Store(ix)
	slog.Info("catalog snapshot refreshed", "hotels", ix.Len())
	return nil
}

// Start loads the first snapshot and refreshes it in the background. A failed
// first load is logged; the next tick retries it.
func (s *SnapshotStore) Start(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil {
		slog.Warn("initial catalog load failed", "error", err.Error())
	}
	if s.interval <= 0 {
		return
	}

	runCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				if err := s.Refresh(runCtx); err != nil && runCtx.Err() == nil {
					slog.Warn("catalog refresh failed", "error", err.Error())
				}
			}
		}
	}()
}

func (s *SnapshotStore) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}
