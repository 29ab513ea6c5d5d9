package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sucan/ordertrack/internal/domain/model"
)

// TrackingFacade exposes the subset of application functionality required by the sweeper.
type TrackingFacade interface {
	Orders(ctx context.Context) ([]model.Order, error)
}

// ReminderSweeper periodically flags orders that have sat in pending longer
// than the configured age so staff can chase the supplier. It only logs;
// order state is never mutated.
type ReminderSweeper struct {
	facade   TrackingFacade
	interval time.Duration
	maxAge   time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewReminderSweeper constructs the pending-order sweeper.
func NewReminderSweeper(facade TrackingFacade, interval, maxAge time.Duration, logger *slog.Logger) *ReminderSweeper {
	if interval <= 0 {
		interval = time.Hour
	}
	if maxAge <= 0 {
		maxAge = 48 * time.Hour
	}
	return &ReminderSweeper{
		facade:   facade,
		interval: interval,
		maxAge:   maxAge,
		logger:   logger,
	}
}

// Start launches background sweeping.
func (s *ReminderSweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(runCtx)
}

// Stop waits for the sweep loop to finish.
func (s *ReminderSweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *ReminderSweeper) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *ReminderSweeper) sweep(ctx context.Context) {
	orders, err := s.facade.Orders(ctx)
	if err != nil {
		s.logger.Error("reminder sweep failed", slog.String("error", err.Error()))
		return
	}

	now := time.Now()
	for _, order := range Stale(orders, now, s.maxAge) {
		s.logger.Warn("order still pending",
			slog.String("order", order.ID),
			slog.String("branch", order.Branch),
			slog.String("product", order.Product.Code),
			slog.Duration("waiting", now.Sub(order.RequestedAt)),
		)
	}
}

// Stale returns the orders that have been pending longer than maxAge as of now.
func Stale(orders []model.Order, now time.Time, maxAge time.Duration) []model.Order {
	var stale []model.Order
	for _, order := range orders {
		if order.Status != model.OrderStatusPending {
			continue
		}
		if now.Sub(order.RequestedAt) > maxAge {
			stale = append(stale, order)
		}
	}
	return stale
}
