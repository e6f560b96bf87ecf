package order

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"iphones-store/internal/logger"
)

// Snapshot is the last polled order list. Err is set when the most
// recent completed fetch failed; the previous list is kept so the table
// still renders something.
type Snapshot struct {
	Orders    []Order
	Err       error
	FetchedAt time.Time
}

// Poller refreshes the admin order table on a fixed interval. Each tick
// launches its own fetch without cancelling an outstanding one, and
// whichever response lands last overwrites the snapshot, even if an
// older request completes after a newer one.
type Poller struct {
	svc      Service
	interval time.Duration

	mu   sync.Mutex
	snap Snapshot

	stop chan struct{}
	once sync.Once
}

func NewPoller(svc Service, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Poller{
		svc:      svc,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start begins polling. The first fetch fires immediately.
func (p *Poller) Start() {
	go func() {
		p.fetch()

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				go p.fetch()
			case <-p.stop:
				return
			}
		}
	}()
}

func (p *Poller) Stop() {
	p.once.Do(func() { close(p.stop) })
}

// Snapshot returns the last applied poll result.
func (p *Poller) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snap
}

// Refresh fetches once, synchronously. Used right after a status change
// or deletion so the table does not wait a full interval.
func (p *Poller) Refresh(ctx context.Context) {
	orders, err := p.svc.List(ctx)
	p.apply(orders, err)
}

func (p *Poller) fetch() {
	ctx, cancel := context.WithTimeout(context.Background(), p.interval*2)
	defer cancel()

	orders, err := p.svc.List(ctx)
	if err != nil {
		logger.L().Warn("order poll failed", zap.Error(err))
	}
	p.apply(orders, err)
}

func (p *Poller) apply(orders []Order, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil {
		p.snap.Err = err
		p.snap.FetchedAt = time.Now()
		return
	}
	p.snap = Snapshot{Orders: orders, FetchedAt: time.Now()}
}
