package broker

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/soundclave/sc-broker/internal/domain"
	"github.com/soundclave/sc-broker/internal/ledger"
	"github.com/soundclave/sc-broker/internal/logger"
	"github.com/soundclave/sc-broker/internal/store"
	"github.com/soundclave/sc-broker/internal/store/schema"
)

// TokenPool caches the platform account's on-chain token inventory for the
// duration of one purchase invocation. Matched tokens are removed so two
// tracks of the same purchase can never claim the same network token.
type TokenPool struct {
	fetched bool
	tokens  []ledger.Token
}

// NewTokenPool creates an empty pool; the inventory is fetched lazily on
// the first legacy lookup.
func NewTokenPool() *TokenPool {
	return &TokenPool{}
}

func (p *TokenPool) ensure(ctx context.Context, lc ledger.Client) error {
	if p.fetched {
		return nil
	}
	tokens, err := lc.AccountTokens(ctx, lc.PlatformAddress())
	if err != nil {
		return err
	}
	p.tokens = tokens
	p.fetched = true
	return nil
}

// take removes and returns the first token whose URI matches
func (p *TokenPool) take(uri string) (ledger.Token, bool) {
	for i, token := range p.tokens {
		if token.URI == uri {
			p.tokens = append(p.tokens[:i], p.tokens[i+1:]...)
			return token, true
		}
	}
	return ledger.Token{}, false
}

// Acquirer resolves which ledger token represents a track's next edition,
// reserving it for the in-flight purchase. At most one pending record is
// created per track per call.
//
//go:generate mockgen -source=inventory.go -destination=../mocks/acquirer.go -package=mocks -mock_names=Acquirer=MockAcquirer
type Acquirer interface {
	// AcquireTrackToken reserves a token for one track: reuse of stocked
	// inventory first, then regime-specific fallback (on-chain discovery
	// for legacy releases, a fresh mint for lazy ones)
	AcquireTrackToken(ctx context.Context, release *schema.Release, track *schema.Track, regime domain.MintRegime, pool *TokenPool) (*schema.NFTRecord, error)
}

type acquirer struct {
	store  store.Store
	ledger ledger.Client
	minter Minter
}

// NewAcquirer creates an inventory acquirer
func NewAcquirer(st store.Store, lc ledger.Client, m Minter) Acquirer {
	return &acquirer{store: st, ledger: lc, minter: m}
}

// AcquireTrackToken reserves a token for one track
func (a *acquirer) AcquireTrackToken(ctx context.Context, release *schema.Release, track *schema.Track, regime domain.MintRegime, pool *TokenPool) (*schema.NFTRecord, error) {
	// Reuse stocked inventory regardless of regime
	record, err := a.store.ReserveAvailableRecord(ctx, track.ID)
	if err != nil {
		return nil, err
	}
	if record != nil {
		logger.DebugCtx(ctx, "reserved stocked record",
			zap.Uint64("track_id", track.ID),
			zap.Uint64("record_id", record.ID))
		return record, nil
	}

	switch regime {
	case domain.RegimeLegacy:
		return a.discoverLegacyToken(ctx, release, track, pool)
	case domain.RegimeLazy:
		return a.minter.MintTrackToken(ctx, release, track)
	default:
		return nil, fmt.Errorf("track %q: %w", track.Title, domain.ErrUnavailable)
	}
}

// discoverLegacyToken matches a pre-minted token on the platform account
// against the track's metadata pointer and adopts it as a pending record.
func (a *acquirer) discoverLegacyToken(ctx context.Context, release *schema.Release, track *schema.Track, pool *TokenPool) (*schema.NFTRecord, error) {
	if err := pool.ensure(ctx, a.ledger); err != nil {
		return nil, err
	}

	token, ok := pool.take(track.MetadataURI())
	if !ok {
		return nil, fmt.Errorf("track %q: %w", track.Title, domain.ErrUnavailable)
	}

	saleCount, err := a.store.CountSalesForTrack(ctx, track.ID)
	if err != nil {
		return nil, err
	}
	edition := int(saleCount) + 1

	record := &schema.NFTRecord{
		TokenID:       &token.TokenID,
		ReleaseID:     release.ID,
		TrackID:       track.ID,
		EditionNumber: &edition,
		OwnerAddress:  a.ledger.PlatformAddress(),
		Status:        schema.NFTRecordStatusPending,
	}
	if err := a.store.CreatePendingRecord(ctx, record); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "adopted legacy token",
		zap.Uint64("track_id", track.ID),
		zap.String("token_id", token.TokenID),
		zap.Int("edition", edition))

	return record, nil
}
