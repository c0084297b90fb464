package broker

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/soundclave/sc-broker/internal/domain"
	"github.com/soundclave/sc-broker/internal/ledger"
	"github.com/soundclave/sc-broker/internal/logger"
	"github.com/soundclave/sc-broker/internal/registry"
	"github.com/soundclave/sc-broker/internal/store"
	"github.com/soundclave/sc-broker/internal/store/schema"
)

// PurchaseResult is returned to the client after a successful purchase.
// The buyer still has to accept the returned offers on the ledger; the
// pending sales are echoed back on confirmation.
type PurchaseResult struct {
	AttemptID    string               `json:"attempt_id"`
	OfferIndexes []string             `json:"offer_indexes"`
	PendingSales []domain.PendingSale `json:"pending_sales"`
	TrackCount   int                  `json:"track_count"`
}

// PurchaseError is the client-facing outcome of an aborted purchase. By the
// time it is returned, compensation has been attempted and a refund issued
// (or logged as failed, which does not change this response).
type PurchaseError struct {
	// TrackTitle names the track that caused the abort, when one did
	TrackTitle string
	// Err is the underlying failure
	Err error
}

func (e *PurchaseError) Error() string {
	if e.TrackTitle != "" {
		return fmt.Sprintf("purchase aborted at track %q: %v; buyer refunded", e.TrackTitle, e.Err)
	}
	return fmt.Sprintf("purchase aborted: %v; buyer refunded", e.Err)
}

func (e *PurchaseError) Unwrap() error {
	return e.Err
}

// Orchestrator executes a whole-album purchase as one sequential pipeline:
// reserve a token per track, list each for the buyer, pay the artist. Any
// failure compensates everything reserved so far and refunds the buyer.
//
// Each purchase call runs to completion or failure; reservation and offer
// issuance are deliberately sequential so a mid-batch failure has a
// well-defined, already-reserved prefix to roll back.
//
//go:generate mockgen -source=orchestrator.go -destination=../mocks/orchestrator.go -package=mocks -mock_names=Orchestrator=MockOrchestrator
type Orchestrator interface {
	// Purchase buys every track of a release for the buyer. The buyer's
	// payment of price x track count is assumed already collected.
	Purchase(ctx context.Context, releaseID uint64, buyer string) (*PurchaseResult, error)
}

type orchestrator struct {
	store       store.Store
	ledger      ledger.Client
	acquirer    Acquirer
	settler     Settler
	compensator Compensator
	blocklist   registry.Blocklist
}

// NewOrchestrator creates a purchase orchestrator. The blocklist may be nil
// when no blocklist file is configured.
func NewOrchestrator(st store.Store, lc ledger.Client, acq Acquirer, set Settler, comp Compensator, bl registry.Blocklist) Orchestrator {
	return &orchestrator{
		store:       st,
		ledger:      lc,
		acquirer:    acq,
		settler:     set,
		compensator: comp,
		blocklist:   bl,
	}
}

// Purchase buys every track of a release for the buyer
func (o *orchestrator) Purchase(ctx context.Context, releaseID uint64, buyer string) (*PurchaseResult, error) {
	if o.blocklist != nil && o.blocklist.IsBlocked(buyer) {
		return nil, domain.ErrBuyerBlocked
	}

	release, err := o.store.GetRelease(ctx, releaseID)
	if err != nil {
		return nil, err
	}
	if release == nil {
		return nil, domain.ErrReleaseNotFound
	}

	tracks, err := o.store.GetReleaseTracks(ctx, releaseID)
	if err != nil {
		return nil, err
	}
	if len(tracks) == 0 {
		return nil, fmt.Errorf("release %d has no tracks: %w", releaseID, domain.ErrUnavailable)
	}

	// Album price is per-track price x track count; the bundle price field
	// is deliberately not consulted
	total := release.TrackPrice * domain.Drops(len(tracks))
	regime := release.Regime()

	attempt := &schema.PurchaseAttempt{
		ID:           uuid.NewString(),
		ReleaseID:    releaseID,
		BuyerAddress: buyer,
		TotalPrice:   total,
		Status:       schema.PurchaseAttemptStatusInFlight,
	}
	if err := o.store.CreatePurchaseAttempt(ctx, attempt); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "purchase started",
		zap.String("attempt_id", attempt.ID),
		zap.Uint64("release_id", releaseID),
		zap.String("buyer", buyer),
		zap.String("regime", string(regime)),
		zap.Int("tracks", len(tracks)),
		zap.String("total_xrp", total.String()))

	if !release.Purchasable() {
		return nil, o.abort(ctx, attempt, nil, "", domain.ErrUnavailable)
	}

	// Stage 1: reserve one token per track, in track order
	pool := NewTokenPool()
	var reserved []*schema.NFTRecord
	var reservedIDs []uint64
	for i := range tracks {
		track := &tracks[i]
		record, err := o.acquirer.AcquireTrackToken(ctx, release, track, regime, pool)
		if err != nil {
			return nil, o.abort(ctx, attempt, reservedIDs, track.Title, err)
		}
		if err := o.store.AppendReservation(ctx, attempt.ID, record.ID, track.ID); err != nil {
			reservedIDs = append(reservedIDs, record.ID)
			return nil, o.abort(ctx, attempt, reservedIDs, track.Title, err)
		}
		reserved = append(reserved, record)
		reservedIDs = append(reservedIDs, record.ID)
	}

	// Stage 2: list every reserved token for the buyer
	result := &PurchaseResult{
		AttemptID:  attempt.ID,
		TrackCount: len(tracks),
	}
	for i, record := range reserved {
		offerIndex, err := o.settler.ListForBuyer(ctx, record, buyer)
		if err != nil {
			return nil, o.abort(ctx, attempt, reservedIDs, tracks[i].Title, err)
		}
		result.OfferIndexes = append(result.OfferIndexes, offerIndex)
		result.PendingSales = append(result.PendingSales, domain.PendingSale{
			AttemptID:   attempt.ID,
			ReleaseID:   releaseID,
			TrackID:     tracks[i].ID,
			NFTRecordID: record.ID,
			TokenID:     derefString(record.TokenID),
			OfferIndex:  offerIndex,
			Price:       release.TrackPrice,
			PlatformFee: domain.PlatformFee(release.TrackPrice),
			Seller:      o.ledger.PlatformAddress(),
			Buyer:       buyer,
		})
	}

	// Stage 3: pay the artist their share. Offers are already live on the
	// ledger, so a payment failure is logged for follow-up rather than
	// unwinding the listings.
	memo := fmt.Sprintf("Sale of %s (%d tracks)", release.Title, len(tracks))
	if err := o.settler.PayArtist(ctx, release.ArtistAddress, domain.ArtistShare(total), memo); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("attempt_id", attempt.ID),
			zap.String("artist", release.ArtistAddress))
	}

	if err := o.store.MarkAttemptSettled(ctx, attempt.ID); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("attempt_id", attempt.ID))
	}

	logger.InfoCtx(ctx, "purchase settled",
		zap.String("attempt_id", attempt.ID),
		zap.Int("offers", len(result.OfferIndexes)))

	return result, nil
}

// abort compensates the attempt and shapes the client-facing error
func (o *orchestrator) abort(ctx context.Context, attempt *schema.PurchaseAttempt, reservedIDs []uint64, trackTitle string, cause error) error {
	reason := cause.Error()
	if trackTitle != "" {
		reason = fmt.Sprintf("track %q: %v", trackTitle, cause)
	}
	o.compensator.Compensate(ctx, attempt.ID, attempt.BuyerAddress, attempt.TotalPrice, reservedIDs, reason)
	return &PurchaseError{TrackTitle: trackTitle, Err: cause}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
