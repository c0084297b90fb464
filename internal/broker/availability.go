// Package broker implements the multi-track sale pipeline: availability
// checks, per-track token acquisition, on-demand minting, offer listing,
// settlement, compensation and sale confirmation.
package broker

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/soundclave/sc-broker/internal/domain"
	"github.com/soundclave/sc-broker/internal/ledger"
	"github.com/soundclave/sc-broker/internal/logger"
	"github.com/soundclave/sc-broker/internal/store"
	"github.com/soundclave/sc-broker/internal/store/schema"
)

// Oracle answers whether a release can currently be bought. Read-only.
//
//go:generate mockgen -source=availability.go -destination=../mocks/oracle.go -package=mocks -mock_names=Oracle=MockOracle
type Oracle interface {
	// CheckAvailability reports per-track availability for a release
	CheckAvailability(ctx context.Context, releaseID uint64) (*domain.AvailabilityReport, error)
}

type oracle struct {
	store  store.Store
	ledger ledger.Client
}

// NewOracle creates an availability oracle
func NewOracle(st store.Store, lc ledger.Client) Oracle {
	return &oracle{store: st, ledger: lc}
}

// CheckAvailability reports per-track availability for a release
func (o *oracle) CheckAvailability(ctx context.Context, releaseID uint64) (*domain.AvailabilityReport, error) {
	release, err := o.store.GetRelease(ctx, releaseID)
	if err != nil {
		return nil, err
	}
	if release == nil {
		return nil, domain.ErrReleaseNotFound
	}

	regime := release.Regime()
	report := &domain.AvailabilityReport{
		Regime:      regime,
		ReleaseType: string(release.Type),
	}

	if !release.Purchasable() {
		report.Message = "Release is not listed for sale"
		return report, nil
	}

	tracks, err := o.store.GetReleaseTracks(ctx, releaseID)
	if err != nil {
		return nil, err
	}
	report.TrackCount = len(tracks)
	if len(tracks) == 0 {
		report.Message = "Release has no tracks"
		return report, nil
	}

	// For the legacy regime the platform inventory is fetched once and
	// matched per track. A ledger read failure leaves the pool nil; tracks
	// that can only be confirmed on-chain are then reported unavailable.
	var platformTokens []ledger.Token
	if regime == domain.RegimeLegacy {
		platformTokens, err = o.ledger.AccountTokens(ctx, o.ledger.PlatformAddress())
		if err != nil {
			logger.WarnCtx(ctx, "could not read platform token inventory, treating unconfirmed tracks as unavailable",
				zap.Uint64("release_id", releaseID),
				zap.Error(err))
			platformTokens = nil
		}
	}

	for _, track := range tracks {
		available, err := o.trackAvailable(ctx, release, &track, regime, platformTokens)
		if err != nil {
			return nil, err
		}
		if !available {
			report.UnavailableTracks = append(report.UnavailableTracks, track.Title)
		}
	}

	switch {
	case len(report.UnavailableTracks) == len(tracks):
		report.SoldOut = true
		report.Message = "Album is sold out"
	case len(report.UnavailableTracks) > 0:
		report.Message = fmt.Sprintf("Sold out: %s", strings.Join(report.UnavailableTracks, ", "))
	default:
		report.Available = true
	}

	return report, nil
}

func (o *oracle) trackAvailable(ctx context.Context, release *schema.Release, track *schema.Track, regime domain.MintRegime, platformTokens []ledger.Token) (bool, error) {
	if regime == domain.RegimeLazy {
		return release.TotalEditions-track.SoldCount > 0, nil
	}

	// Legacy: a stocked record in the datastore, or a token discoverable
	// on-chain by the track's metadata pointer
	stocked, err := o.store.HasAvailableRecord(ctx, track.ID)
	if err != nil {
		return false, err
	}
	if stocked {
		return true, nil
	}

	uri := track.MetadataURI()
	for _, token := range platformTokens {
		if token.URI == uri {
			return true, nil
		}
	}
	return false, nil
}
