package store

import (
	"context"
	"time"

	"github.com/soundclave/sc-broker/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetRelease retrieves a release by id (nil when missing)
	GetRelease(ctx context.Context, releaseID uint64) (*schema.Release, error)
	// GetReleaseTracks retrieves a release's tracks ordered by id
	GetReleaseTracks(ctx context.Context, releaseID uint64) ([]schema.Track, error)
	// GetTrack retrieves a track by id (nil when missing)
	GetTrack(ctx context.Context, trackID uint64) (*schema.Track, error)

	// HasAvailableRecord reports whether any available NFT record exists for a track
	HasAvailableRecord(ctx context.Context, trackID uint64) (bool, error)
	// ReserveAvailableRecord atomically flips the lowest-edition available
	// record of a track to pending and returns it (nil when none could be
	// taken). A record observed available but claimed by a concurrent
	// purchase is skipped, never treated as an error.
	ReserveAvailableRecord(ctx context.Context, trackID uint64) (*schema.NFTRecord, error)
	// CreatePendingRecord inserts a record born in pending state (legacy
	// discovery or lazy mint)
	CreatePendingRecord(ctx context.Context, record *schema.NFTRecord) error
	// GetNFTRecord retrieves a record by id (nil when missing)
	GetNFTRecord(ctx context.Context, recordID uint64) (*schema.NFTRecord, error)
	// ReleaseRecord returns a pending record to the available pool
	ReleaseRecord(ctx context.Context, recordID uint64) error
	// FinalizeRecordSold marks a pending record sold with its buyer and
	// sale-ordered edition. Returns false when the record was already sold,
	// so re-confirming a batch is a no-op per row.
	FinalizeRecordSold(ctx context.Context, recordID uint64, owner string, edition int) (bool, error)

	// CountSalesForTrack counts confirmed sales of a track
	CountSalesForTrack(ctx context.Context, trackID uint64) (int64, error)
	// InsertSale appends an immutable sale row
	InsertSale(ctx context.Context, sale *schema.Sale) error
	// IncrementTrackSold bumps a track's sold counter
	IncrementTrackSold(ctx context.Context, trackID uint64) error
	// IncrementMintedCounters bumps the minted counters of a track and its release
	IncrementMintedCounters(ctx context.Context, releaseID, trackID uint64) error
	// RecalculateReleaseSold sets a release's sold editions to the minimum
	// sold count across its tracks
	RecalculateReleaseSold(ctx context.Context, releaseID uint64) error

	// CreatePurchaseAttempt persists a new saga record for a purchase
	CreatePurchaseAttempt(ctx context.Context, attempt *schema.PurchaseAttempt) error
	// AppendReservation records one compensatable reservation step
	AppendReservation(ctx context.Context, attemptID string, nftRecordID, trackID uint64) error
	// MarkAttemptSettled transitions an attempt to settled
	MarkAttemptSettled(ctx context.Context, attemptID string) error
	// MarkAttemptCompensated transitions an attempt to compensated with a
	// reason and the refund transaction hash when one finalized
	MarkAttemptCompensated(ctx context.Context, attemptID string, reason string, refundTxHash *string) error
	// MarkAttemptConfirmed transitions an attempt to confirmed
	MarkAttemptConfirmed(ctx context.Context, attemptID string) error
	// ListStaleInFlightAttempts returns attempts stuck in flight since before the cutoff
	ListStaleInFlightAttempts(ctx context.Context, cutoff time.Time, limit int) ([]schema.PurchaseAttempt, error)
	// GetAttemptReservations returns an attempt's reservation steps in order
	GetAttemptReservations(ctx context.Context, attemptID string) ([]schema.PurchaseReservation, error)

	// ListSalesWithReleases pages through sales with their releases preloaded
	ListSalesWithReleases(ctx context.Context, limit, offset int) ([]schema.Sale, error)
}
