package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/soundclave/sc-broker/internal/adapter"
	"github.com/soundclave/sc-broker/internal/broker"
	"github.com/soundclave/sc-broker/internal/logger"
	"github.com/soundclave/sc-broker/internal/messaging"
	"github.com/soundclave/sc-broker/internal/store"
	"github.com/soundclave/sc-broker/internal/store/schema"
)

const (
	SWEEP_CYCLE_INTERVAL = 1 * time.Minute // Time to sleep between sweep cycles
)

// AttemptReconcilerConfig holds configuration for the attempt reconciler
type AttemptReconcilerConfig struct {
	BatchSize      int           // Attempts to reconcile per cycle
	WorkerPoolSize int           // Concurrent workers
	StaleAfter     time.Duration // Only reconcile attempts in flight longer than this
}

// attemptReconciler implements the Sweeper interface. It finds purchase
// attempts abandoned in flight by a crash, releases their reserved
// inventory back to the pool, and marks them compensated. Refunds are
// never issued automatically; the reconciled event carries the buyer and
// amount for manual review.
type attemptReconciler struct {
	config      *AttemptReconcilerConfig
	store       store.Store
	compensator broker.Compensator
	publisher   messaging.Publisher
	clock       adapter.Clock
	pool        pond.Pool
	running     atomic.Bool
	stopChan    chan struct{}
	stoppedCh   chan struct{}
}

// NewAttemptReconciler creates a new stale purchase attempt reconciler
func NewAttemptReconciler(
	config *AttemptReconcilerConfig,
	st store.Store,
	compensator broker.Compensator,
	publisher messaging.Publisher,
	clock adapter.Clock,
) Sweeper {
	return &attemptReconciler{
		config:      config,
		store:       st,
		compensator: compensator,
		publisher:   publisher,
		clock:       clock,
		stopChan:    make(chan struct{}),
		stoppedCh:   make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *attemptReconciler) Name() string {
	return "attempt-reconciler"
}

// Start begins the sweeper's main loop
func (s *attemptReconciler) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting attempt reconciler",
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
		zap.Duration("stale_after", s.config.StaleAfter),
	)

	// Create worker pool
	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)

	// Continuous loop - stops when context is canceled or stop is requested
	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Attempt reconciler stopping due to context cancellation", zap.Error(ctx.Err()))
			s.cleanup()
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Attempt reconciler stop requested")
			s.cleanup()
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
		}
	}
}

// cleanup stops the worker pool and waits for tasks to complete
func (s *attemptReconciler) cleanup() {
	if s.pool != nil {
		s.pool.StopAndWait()
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *attemptReconciler) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping attempt reconciler")

	// Signal stop to the main loop
	close(s.stopChan)

	// Wait for main loop to exit, but respect context cancellation
	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Attempt reconciler stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Attempt reconciler stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle runs a single sweep cycle
func (s *attemptReconciler) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()
	cutoff := startTime.Add(-s.config.StaleAfter)

	attempts, err := s.store.ListStaleInFlightAttempts(ctx, cutoff, s.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list stale attempts: %w", err)
	}

	if len(attempts) == 0 {
		if !s.sleep(ctx, SWEEP_CYCLE_INTERVAL) {
			return ctx.Err() // Context canceled during sleep
		}
		return nil
	}

	logger.InfoCtx(ctx, "Found stale purchase attempts", zap.Int("count", len(attempts)))

	var reconciledCount, failureCount atomic.Int32

	for _, attempt := range attempts {
		s.pool.Submit(func() {
			if err := s.reconcile(ctx, &attempt); err != nil {
				failureCount.Add(1)
				logger.ErrorCtx(ctx, err, zap.String("attempt_id", attempt.ID))
				return
			}
			reconciledCount.Add(1)
		})
	}

	// Wait for all reconciliations to complete
	s.pool.StopAndWait()

	// Recreate pool for next cycle
	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)

	duration := s.clock.Since(startTime)
	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", duration),
		zap.Int("total_stale", len(attempts)),
		zap.Int32("reconciled", reconciledCount.Load()),
		zap.Int32("failures", failureCount.Load()),
	)

	if !s.sleep(ctx, SWEEP_CYCLE_INTERVAL) {
		return ctx.Err() // Context canceled during sleep
	}

	return nil
}

// sleep sleeps for the given duration but can be interrupted by context cancellation
// Returns true if sleep completed normally, false if interrupted by context
func (s *attemptReconciler) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true // Sleep completed
	case <-ctx.Done():
		return false // Interrupted by context cancellation
	case <-s.stopChan:
		return false // Interrupted by stop signal
	}
}

// reconcile releases one abandoned attempt's inventory and marks it compensated
func (s *attemptReconciler) reconcile(ctx context.Context, attempt *schema.PurchaseAttempt) error {
	logger.InfoCtx(ctx, "Reconciling stale purchase attempt",
		zap.String("attempt_id", attempt.ID),
		zap.Uint64("release_id", attempt.ReleaseID),
		zap.String("buyer", attempt.BuyerAddress),
		zap.Time("started_at", attempt.CreatedAt),
	)

	reservations, err := s.store.GetAttemptReservations(ctx, attempt.ID)
	if err != nil {
		return fmt.Errorf("failed to load reservations for attempt %s: %w", attempt.ID, err)
	}

	recordIDs := make([]uint64, 0, len(reservations))
	for _, reservation := range reservations {
		recordIDs = append(recordIDs, reservation.NFTRecordID)
	}

	if err := s.compensator.ReleaseReservations(ctx, recordIDs); err != nil {
		return fmt.Errorf("failed to release reservations for attempt %s: %w", attempt.ID, err)
	}

	reason := "reconciled by sweeper: attempt abandoned in flight"
	if err := s.store.MarkAttemptCompensated(ctx, attempt.ID, reason, nil); err != nil {
		return fmt.Errorf("failed to mark attempt %s compensated: %w", attempt.ID, err)
	}

	s.publishReconciled(ctx, attempt, reason)

	logger.InfoCtx(ctx, "Stale purchase attempt reconciled",
		zap.String("attempt_id", attempt.ID),
		zap.Int("records_released", len(recordIDs)),
	)
	return nil
}

// publishReconciled emits the reconciled event (fire-and-forget)
func (s *attemptReconciler) publishReconciled(ctx context.Context, attempt *schema.PurchaseAttempt, reason string) {
	if s.publisher == nil {
		return
	}

	event := &messaging.PurchaseReconciledEvent{
		EventID:      ulid.MustNewDefault(s.clock.Now()).String(),
		AttemptID:    attempt.ID,
		ReleaseID:    attempt.ReleaseID,
		BuyerAddress: attempt.BuyerAddress,
		TotalPrice:   attempt.TotalPrice,
		Reason:       reason,
		Timestamp:    s.clock.Now(),
	}
	if err := s.publisher.PublishPurchaseReconciled(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish purchase reconciled event",
			zap.Error(err),
			zap.String("attempt_id", attempt.ID),
		)
	}
}
