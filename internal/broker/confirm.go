package broker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/soundclave/sc-broker/internal/domain"
	"github.com/soundclave/sc-broker/internal/ledger"
	"github.com/soundclave/sc-broker/internal/logger"
	"github.com/soundclave/sc-broker/internal/messaging"
	"github.com/soundclave/sc-broker/internal/store"
	"github.com/soundclave/sc-broker/internal/store/schema"
)

// RecorderConfig holds the confirmation recorder configuration
type RecorderConfig struct {
	// VerifyAcceptance checks each reported acceptance transaction on the
	// ledger before marking the sale sold, instead of trusting the client
	VerifyAcceptance bool
}

// Recorder durably records sales after the buyer's offer acceptance is
// reported. Each row is its own unit of work: one failing row does not roll
// back rows already processed in the same batch.
//
//go:generate mockgen -source=confirm.go -destination=../mocks/recorder.go -package=mocks -mock_names=Recorder=MockRecorder
type Recorder interface {
	// ConfirmSales pairs pending sales with the buyer's acceptance
	// transaction hashes, in index order, and records each as a sale
	ConfirmSales(ctx context.Context, pendingSales []domain.PendingSale, acceptTxHashes []string) error
}

type recorder struct {
	config    RecorderConfig
	store     store.Store
	ledger    ledger.Client
	publisher messaging.Publisher
}

// NewRecorder creates a sale confirmation recorder. The publisher may be nil
// when event emission is disabled.
func NewRecorder(cfg RecorderConfig, st store.Store, lc ledger.Client, pub messaging.Publisher) Recorder {
	return &recorder{
		config:    cfg,
		store:     st,
		ledger:    lc,
		publisher: pub,
	}
}

// ConfirmSales records the batch, one row at a time
func (r *recorder) ConfirmSales(ctx context.Context, pendingSales []domain.PendingSale, acceptTxHashes []string) error {
	if len(pendingSales) != len(acceptTxHashes) {
		return fmt.Errorf("got %d pending sales but %d acceptance hashes", len(pendingSales), len(acceptTxHashes))
	}

	var rowErrs []error
	failedAttempts := make(map[string]bool)
	releaseIDs := make(map[uint64]bool)
	attemptIDs := make(map[string]bool)

	for i := range pendingSales {
		sale := &pendingSales[i]
		releaseIDs[sale.ReleaseID] = true
		if sale.AttemptID != "" {
			attemptIDs[sale.AttemptID] = true
		}

		if err := r.confirmOne(ctx, sale, acceptTxHashes[i]); err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("sale %d (track %d): %w", i, sale.TrackID, err))
			failedAttempts[sale.AttemptID] = true
		}
	}

	// Album completeness: sold editions equal the minimum sold count
	// across the release's tracks, recomputed after every batch
	for releaseID := range releaseIDs {
		if err := r.store.RecalculateReleaseSold(ctx, releaseID); err != nil {
			rowErrs = append(rowErrs, err)
		}
	}

	for attemptID := range attemptIDs {
		if failedAttempts[attemptID] {
			continue
		}
		if err := r.store.MarkAttemptConfirmed(ctx, attemptID); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("attempt_id", attemptID))
		}
	}

	return errors.Join(rowErrs...)
}

// confirmOne records a single track sale
func (r *recorder) confirmOne(ctx context.Context, sale *domain.PendingSale, acceptTxHash string) error {
	if r.config.VerifyAcceptance {
		ok, err := r.ledger.VerifyTokenTransfer(ctx, acceptTxHash, sale.TokenID, sale.Buyer)
		if err != nil {
			return fmt.Errorf("could not verify acceptance %s: %w", acceptTxHash, err)
		}
		if !ok {
			return fmt.Errorf("tx %s: %w", acceptTxHash, domain.ErrConfirmationMismatch)
		}
	}

	// Edition is recomputed here; values stamped at reservation time may be
	// stale by the time the buyer accepts
	saleCount, err := r.store.CountSalesForTrack(ctx, sale.TrackID)
	if err != nil {
		return err
	}
	edition := int(saleCount) + 1

	finalized, err := r.store.FinalizeRecordSold(ctx, sale.NFTRecordID, sale.Buyer, edition)
	if err != nil {
		return err
	}
	if !finalized {
		// Already sold: the batch was confirmed before. Skip the row so
		// re-confirmation cannot double-count.
		logger.InfoCtx(ctx, "sale already confirmed, skipping",
			zap.Uint64("record_id", sale.NFTRecordID),
			zap.String("tx_hash", acceptTxHash))
		return nil
	}

	raw, _ := json.Marshal(map[string]string{
		"offer_index":    sale.OfferIndex,
		"accept_tx_hash": acceptTxHash,
	})

	row := &schema.Sale{
		ReleaseID:        sale.ReleaseID,
		TrackID:          sale.TrackID,
		BuyerAddress:     sale.Buyer,
		SellerAddress:    sale.Seller,
		TokenID:          sale.TokenID,
		EditionNumber:    edition,
		Price:            sale.Price,
		PlatformFee:      sale.PlatformFee,
		SettlementTxHash: acceptTxHash,
		Raw:              datatypes.JSON(raw),
	}
	if err := r.store.InsertSale(ctx, row); err != nil {
		return err
	}

	if err := r.store.IncrementTrackSold(ctx, sale.TrackID); err != nil {
		return err
	}

	r.publishConfirmed(ctx, row)

	logger.InfoCtx(ctx, "sale confirmed",
		zap.Uint64("track_id", sale.TrackID),
		zap.String("token_id", sale.TokenID),
		zap.Int("edition", edition),
		zap.String("buyer", sale.Buyer))

	return nil
}

// publishConfirmed emits the sale event; delivery problems never fail the
// confirmation itself
func (r *recorder) publishConfirmed(ctx context.Context, sale *schema.Sale) {
	if r.publisher == nil {
		return
	}

	event := &messaging.SaleConfirmedEvent{
		EventID:       ulid.Make().String(),
		SaleID:        sale.ID,
		ReleaseID:     sale.ReleaseID,
		TrackID:       sale.TrackID,
		TokenID:       sale.TokenID,
		BuyerAddress:  sale.BuyerAddress,
		SellerAddress: sale.SellerAddress,
		Price:         sale.Price,
		EditionNumber: sale.EditionNumber,
		TxHash:        sale.SettlementTxHash,
		Timestamp:     time.Now(),
	}
	if err := r.publisher.PublishSaleConfirmed(ctx, event); err != nil {
		logger.WarnCtx(ctx, "failed to publish sale event",
			zap.Uint64("sale_id", sale.ID),
			zap.Error(err))
	}
}
