package broker

import (
	"context"

	"go.uber.org/zap"

	"github.com/soundclave/sc-broker/internal/domain"
	"github.com/soundclave/sc-broker/internal/ledger"
	"github.com/soundclave/sc-broker/internal/logger"
	"github.com/soundclave/sc-broker/internal/store"
)

// Compensator rolls back a failed purchase attempt: every reservation taken
// so far goes back to the available pool and the buyer is refunded the full
// collected amount. The album purchase is all-or-nothing, so reservations
// for tracks that had already succeeded are released too.
//
//go:generate mockgen -source=compensator.go -destination=../mocks/compensator.go -package=mocks -mock_names=Compensator=MockCompensator
type Compensator interface {
	// Compensate releases the attempt's reservations, refunds the buyer and
	// marks the attempt compensated. Refund failures are logged, never
	// retried, and do not change the already-failed purchase outcome.
	Compensate(ctx context.Context, attemptID, buyer string, amount domain.Drops, recordIDs []uint64, reason string)

	// ReleaseReservations returns reserved records to the available pool
	// without refunding; used by the reconciliation sweeper, which has no
	// payment to undo on its own authority.
	ReleaseReservations(ctx context.Context, recordIDs []uint64) error
}

type compensator struct {
	store  store.Store
	ledger ledger.Client
}

// NewCompensator creates a compensator
func NewCompensator(st store.Store, lc ledger.Client) Compensator {
	return &compensator{store: st, ledger: lc}
}

// Compensate releases the attempt's reservations and refunds the buyer
func (c *compensator) Compensate(ctx context.Context, attemptID, buyer string, amount domain.Drops, recordIDs []uint64, reason string) {
	logger.WarnCtx(ctx, "compensating failed purchase",
		zap.String("attempt_id", attemptID),
		zap.String("buyer", buyer),
		zap.String("reason", reason),
		zap.Int("reservations", len(recordIDs)))

	if err := c.ReleaseReservations(ctx, recordIDs); err != nil {
		logger.ErrorCtx(ctx, domain.ErrCompensationFailed,
			zap.String("attempt_id", attemptID),
			zap.Error(err))
	}

	var refundTxHash *string
	if amount > 0 {
		result, err := c.ledger.SendPayment(ctx, ledger.PaymentParams{
			Destination: buyer,
			Amount:      amount,
			Memo:        "Refund: " + reason,
		})
		if err != nil {
			// Not retried automatically; the attempt row keeps the reason
			// for operator follow-up
			logger.ErrorCtx(ctx, domain.ErrCompensationFailed,
				zap.String("attempt_id", attemptID),
				zap.String("buyer", buyer),
				zap.String("amount_xrp", amount.String()),
				zap.Error(err))
		} else {
			refundTxHash = &result.TxHash
			logger.InfoCtx(ctx, "refunded buyer",
				zap.String("attempt_id", attemptID),
				zap.String("buyer", buyer),
				zap.String("amount_xrp", amount.String()),
				zap.String("tx_hash", result.TxHash))
		}
	}

	if err := c.store.MarkAttemptCompensated(ctx, attemptID, reason, refundTxHash); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("attempt_id", attemptID))
	}
}

// ReleaseReservations returns reserved records to the available pool
func (c *compensator) ReleaseReservations(ctx context.Context, recordIDs []uint64) error {
	var firstErr error
	for _, recordID := range recordIDs {
		if err := c.store.ReleaseRecord(ctx, recordID); err != nil {
			logger.Error(err, zap.Uint64("record_id", recordID))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
