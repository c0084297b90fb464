package broker

import (
	"context"

	"go.uber.org/zap"

	"github.com/soundclave/sc-broker/internal/ledger"
	"github.com/soundclave/sc-broker/internal/logger"
	"github.com/soundclave/sc-broker/internal/store"
	"github.com/soundclave/sc-broker/internal/store/schema"
)

// Minter mints a fresh track token when no existing inventory applies.
//
//go:generate mockgen -source=minter.go -destination=../mocks/minter.go -package=mocks -mock_names=Minter=MockMinter
type Minter interface {
	// MintTrackToken mints a token for the track and persists it as a
	// pending record owned by the platform
	MintTrackToken(ctx context.Context, release *schema.Release, track *schema.Track) (*schema.NFTRecord, error)
}

type minter struct {
	store  store.Store
	ledger ledger.Client
}

// NewMinter creates an on-demand minter
func NewMinter(st store.Store, lc ledger.Client) Minter {
	return &minter{store: st, ledger: lc}
}

// MintTrackToken mints a token for the track and persists it as a pending record
func (m *minter) MintTrackToken(ctx context.Context, release *schema.Release, track *schema.Track) (*schema.NFTRecord, error) {
	result, err := m.ledger.MintToken(ctx, ledger.MintParams{
		URI:            track.MetadataURI(),
		RoyaltyPercent: release.EffectiveRoyaltyPercent(),
		Taxon:          uint32(release.ID),
	})
	if err != nil {
		return nil, err
	}

	// Edition is sale-ordered, not mint-ordered; the stamp here is
	// informational and recomputed at confirmation
	saleCount, err := m.store.CountSalesForTrack(ctx, track.ID)
	if err != nil {
		return nil, err
	}
	edition := int(saleCount) + 1

	record := &schema.NFTRecord{
		TokenID:       &result.TokenID,
		ReleaseID:     release.ID,
		TrackID:       track.ID,
		EditionNumber: &edition,
		OwnerAddress:  m.ledger.PlatformAddress(),
		Status:        schema.NFTRecordStatusPending,
	}
	if err := m.store.CreatePendingRecord(ctx, record); err != nil {
		return nil, err
	}

	if err := m.store.IncrementMintedCounters(ctx, release.ID, track.ID); err != nil {
		// The token exists and is reserved; a stale counter is tolerable
		logger.WarnCtx(ctx, "failed to bump minted counters",
			zap.Uint64("release_id", release.ID),
			zap.Uint64("track_id", track.ID),
			zap.Error(err))
	}

	logger.InfoCtx(ctx, "minted track token",
		zap.Uint64("track_id", track.ID),
		zap.String("token_id", result.TokenID),
		zap.String("tx_hash", result.TxHash))

	return record, nil
}
