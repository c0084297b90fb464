package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/soundclave/sc-broker/internal/domain"
	"github.com/soundclave/sc-broker/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// rawDB exposes the gorm handle behind a store for seeding rows the Store
// interface has no writers for (releases, tracks, available records).
func rawDB(t *testing.T, s Store) *gorm.DB {
	pg, ok := s.(*pgStore)
	require.True(t, ok, "store is not a pgStore")
	return pg.db
}

// seedRelease creates a lazy-regime live album with sensible defaults
func seedRelease(t *testing.T, s Store, mutate ...func(*schema.Release)) *schema.Release {
	release := &schema.Release{
		Title:         "Night Signals",
		ArtistAddress: "rARTISTxxxxxxxxxxxxxxxxxxxxxxxxxxx",
		ArtistName:    "Vera Lys",
		TrackPrice:    5 * domain.DropsPerXRP,
		TotalEditions: 10,
		MintFeePaid:   true,
		Status:        schema.ReleaseStatusLive,
		Type:          schema.ReleaseTypeAlbum,
	}
	for _, m := range mutate {
		m(release)
	}
	require.NoError(t, rawDB(t, s).Create(release).Error)
	return release
}

// seedTrack creates a track under a release
func seedTrack(t *testing.T, s Store, releaseID uint64, title, cid string) *schema.Track {
	track := &schema.Track{
		ReleaseID:       releaseID,
		Title:           title,
		MetadataCID:     cid,
		DurationSeconds: 212,
	}
	require.NoError(t, rawDB(t, s).Create(track).Error)
	return track
}

// seedAvailableRecord creates an available NFT record for a track
func seedAvailableRecord(t *testing.T, s Store, releaseID, trackID uint64, edition *int, tokenID *string) *schema.NFTRecord {
	record := &schema.NFTRecord{
		TokenID:       tokenID,
		ReleaseID:     releaseID,
		TrackID:       trackID,
		EditionNumber: edition,
		OwnerAddress:  "rPLATFORMxxxxxxxxxxxxxxxxxxxxxxxxx",
		Status:        schema.NFTRecordStatusAvailable,
	}
	require.NoError(t, rawDB(t, s).Create(record).Error)
	return record
}

// seedSale inserts a sale row through the store
func seedSale(t *testing.T, s Store, releaseID, trackID uint64, buyer string, edition int, price domain.Drops) *schema.Sale {
	sale := &schema.Sale{
		ReleaseID:        releaseID,
		TrackID:          trackID,
		BuyerAddress:     buyer,
		SellerAddress:    "rPLATFORMxxxxxxxxxxxxxxxxxxxxxxxxx",
		TokenID:          "00080000TOKEN",
		EditionNumber:    edition,
		Price:            price,
		PlatformFee:      domain.PlatformFee(price),
		SettlementTxHash: "ACCEPT-HASH",
		Raw:              datatypes.JSON([]byte(`{"offer_index":"OFFER-1"}`)),
	}
	require.NoError(t, s.InsertSale(context.Background(), sale))
	return sale
}

func intptr(v int) *int {
	return &v
}

func strptr(v string) *string {
	return &v
}

// =============================================================================
// Test: Releases and Tracks
// =============================================================================

func testReleaseAndTracks(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("returns release by id", func(t *testing.T) {
		seeded := seedRelease(t, s)

		got, err := s.GetRelease(ctx, seeded.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, seeded.Title, got.Title)
		assert.Equal(t, seeded.ArtistAddress, got.ArtistAddress)
		assert.Equal(t, 5*domain.DropsPerXRP, got.TrackPrice)
		assert.True(t, got.MintFeePaid)
	})

	t.Run("missing release is nil without error", func(t *testing.T) {
		got, err := s.GetRelease(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("tracks come back in id order", func(t *testing.T) {
		release := seedRelease(t, s)
		first := seedTrack(t, s, release.ID, "Opener", "bafyopener")
		second := seedTrack(t, s, release.ID, "Closer", "bafycloser")

		tracks, err := s.GetReleaseTracks(ctx, release.ID)
		require.NoError(t, err)
		require.Len(t, tracks, 2)
		assert.Equal(t, first.ID, tracks[0].ID)
		assert.Equal(t, second.ID, tracks[1].ID)
		assert.Equal(t, "Opener", tracks[0].Title)
	})

	t.Run("release without tracks yields empty slice", func(t *testing.T) {
		release := seedRelease(t, s)

		tracks, err := s.GetReleaseTracks(ctx, release.ID)
		require.NoError(t, err)
		assert.Empty(t, tracks)
	})

	t.Run("returns track by id and nil when missing", func(t *testing.T) {
		release := seedRelease(t, s)
		track := seedTrack(t, s, release.ID, "Interlude", "bafyinterlude")

		got, err := s.GetTrack(ctx, track.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Interlude", got.Title)
		assert.Equal(t, "ipfs://bafyinterlude", got.MetadataURI())

		missing, err := s.GetTrack(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})
}

// =============================================================================
// Test: Record Reservation
// =============================================================================

func testRecordReservation(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("reserves the lowest edition first", func(t *testing.T) {
		release := seedRelease(t, s)
		track := seedTrack(t, s, release.ID, "Opener", "bafyopener")
		seedAvailableRecord(t, s, release.ID, track.ID, intptr(3), strptr("TOKEN-3"))
		low := seedAvailableRecord(t, s, release.ID, track.ID, intptr(1), strptr("TOKEN-1"))
		seedAvailableRecord(t, s, release.ID, track.ID, nil, strptr("TOKEN-UNNUMBERED"))

		reserved, err := s.ReserveAvailableRecord(ctx, track.ID)
		require.NoError(t, err)
		require.NotNil(t, reserved)
		assert.Equal(t, low.ID, reserved.ID)
		assert.Equal(t, schema.NFTRecordStatusPending, reserved.Status)

		stored, err := s.GetNFTRecord(ctx, low.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, schema.NFTRecordStatusPending, stored.Status)
	})

	t.Run("records without edition numbers sort last", func(t *testing.T) {
		release := seedRelease(t, s)
		track := seedTrack(t, s, release.ID, "Closer", "bafycloser")
		seedAvailableRecord(t, s, release.ID, track.ID, nil, strptr("TOKEN-UNNUMBERED"))
		numbered := seedAvailableRecord(t, s, release.ID, track.ID, intptr(2), strptr("TOKEN-2"))

		reserved, err := s.ReserveAvailableRecord(ctx, track.ID)
		require.NoError(t, err)
		require.NotNil(t, reserved)
		assert.Equal(t, numbered.ID, reserved.ID)
	})

	t.Run("nothing available yields nil without error", func(t *testing.T) {
		release := seedRelease(t, s)
		track := seedTrack(t, s, release.ID, "Interlude", "bafyinterlude")

		reserved, err := s.ReserveAvailableRecord(ctx, track.ID)
		require.NoError(t, err)
		assert.Nil(t, reserved)
	})

	t.Run("pending records are not reserved twice", func(t *testing.T) {
		release := seedRelease(t, s)
		track := seedTrack(t, s, release.ID, "Twin A", "bafytwina")
		seedAvailableRecord(t, s, release.ID, track.ID, intptr(1), strptr("TOKEN-ONLY"))

		first, err := s.ReserveAvailableRecord(ctx, track.ID)
		require.NoError(t, err)
		require.NotNil(t, first)

		second, err := s.ReserveAvailableRecord(ctx, track.ID)
		require.NoError(t, err)
		assert.Nil(t, second)
	})

	t.Run("availability tracks reservation state", func(t *testing.T) {
		release := seedRelease(t, s)
		track := seedTrack(t, s, release.ID, "Twin B", "bafytwinb")

		has, err := s.HasAvailableRecord(ctx, track.ID)
		require.NoError(t, err)
		assert.False(t, has)

		seedAvailableRecord(t, s, release.ID, track.ID, intptr(1), strptr("TOKEN-ONLY"))

		has, err = s.HasAvailableRecord(ctx, track.ID)
		require.NoError(t, err)
		assert.True(t, has)

		_, err = s.ReserveAvailableRecord(ctx, track.ID)
		require.NoError(t, err)

		has, err = s.HasAvailableRecord(ctx, track.ID)
		require.NoError(t, err)
		assert.False(t, has)
	})
}

// =============================================================================
// Test: Record Lifecycle
// =============================================================================

func testRecordLifecycle(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("pending record is born pending", func(t *testing.T) {
		release := seedRelease(t, s)
		track := seedTrack(t, s, release.ID, "Opener", "bafyopener")

		record := &schema.NFTRecord{
			TokenID:       strptr("FRESH-TOKEN"),
			ReleaseID:     release.ID,
			TrackID:       track.ID,
			EditionNumber: intptr(1),
			OwnerAddress:  "rPLATFORMxxxxxxxxxxxxxxxxxxxxxxxxx",
		}
		require.NoError(t, s.CreatePendingRecord(ctx, record))
		require.NotZero(t, record.ID)

		stored, err := s.GetNFTRecord(ctx, record.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, schema.NFTRecordStatusPending, stored.Status)
		require.NotNil(t, stored.TokenID)
		assert.Equal(t, "FRESH-TOKEN", *stored.TokenID)
	})

	t.Run("release returns a pending record to the pool", func(t *testing.T) {
		release := seedRelease(t, s)
		track := seedTrack(t, s, release.ID, "Closer", "bafycloser")
		seeded := seedAvailableRecord(t, s, release.ID, track.ID, intptr(1), strptr("TOKEN-1"))

		reserved, err := s.ReserveAvailableRecord(ctx, track.ID)
		require.NoError(t, err)
		require.NotNil(t, reserved)

		require.NoError(t, s.ReleaseRecord(ctx, seeded.ID))

		stored, err := s.GetNFTRecord(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, schema.NFTRecordStatusAvailable, stored.Status)
	})

	t.Run("finalize marks a pending record sold exactly once", func(t *testing.T) {
		release := seedRelease(t, s)
		track := seedTrack(t, s, release.ID, "Interlude", "bafyinterlude")
		seeded := seedAvailableRecord(t, s, release.ID, track.ID, intptr(1), strptr("TOKEN-1"))

		_, err := s.ReserveAvailableRecord(ctx, track.ID)
		require.NoError(t, err)

		sold, err := s.FinalizeRecordSold(ctx, seeded.ID, "rBUYERxxxxxxxxxxxxxxxxxxxxxxxxxxxx", 4)
		require.NoError(t, err)
		assert.True(t, sold)

		stored, err := s.GetNFTRecord(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, schema.NFTRecordStatusSold, stored.Status)
		assert.Equal(t, "rBUYERxxxxxxxxxxxxxxxxxxxxxxxxxxxx", stored.OwnerAddress)
		require.NotNil(t, stored.EditionNumber)
		assert.Equal(t, 4, *stored.EditionNumber)

		// Re-confirming the same batch sees zero rows flipped
		again, err := s.FinalizeRecordSold(ctx, seeded.ID, "rBUYERxxxxxxxxxxxxxxxxxxxxxxxxxxxx", 4)
		require.NoError(t, err)
		assert.False(t, again)
	})

	t.Run("releasing a sold record changes nothing", func(t *testing.T) {
		release := seedRelease(t, s)
		track := seedTrack(t, s, release.ID, "Twin A", "bafytwina")
		seeded := seedAvailableRecord(t, s, release.ID, track.ID, intptr(1), strptr("TOKEN-1"))

		_, err := s.ReserveAvailableRecord(ctx, track.ID)
		require.NoError(t, err)
		_, err = s.FinalizeRecordSold(ctx, seeded.ID, "rBUYERxxxxxxxxxxxxxxxxxxxxxxxxxxxx", 1)
		require.NoError(t, err)

		require.NoError(t, s.ReleaseRecord(ctx, seeded.ID))

		stored, err := s.GetNFTRecord(ctx, seeded.ID)
		require.NoError(t, err)
		assert.Equal(t, schema.NFTRecordStatusSold, stored.Status)
	})
}

// =============================================================================
// Test: Sales and Counters
// =============================================================================

func testSalesAndCounters(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("counts sales per track", func(t *testing.T) {
		release := seedRelease(t, s)
		track := seedTrack(t, s, release.ID, "Opener", "bafyopener")
		other := seedTrack(t, s, release.ID, "Closer", "bafycloser")

		seedSale(t, s, release.ID, track.ID, "rBUYERONExxxxxxxxxxxxxxxxxxxxxxxxx", 1, release.TrackPrice)
		seedSale(t, s, release.ID, track.ID, "rBUYERTWOxxxxxxxxxxxxxxxxxxxxxxxxx", 2, release.TrackPrice)

		count, err := s.CountSalesForTrack(ctx, track.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)

		count, err = s.CountSalesForTrack(ctx, other.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 0, count)
	})

	t.Run("sold editions follow the scarcest track", func(t *testing.T) {
		release := seedRelease(t, s)
		opener := seedTrack(t, s, release.ID, "Opener", "bafyopener")
		closer := seedTrack(t, s, release.ID, "Closer", "bafycloser")

		require.NoError(t, s.IncrementTrackSold(ctx, opener.ID))
		require.NoError(t, s.IncrementTrackSold(ctx, opener.ID))
		require.NoError(t, s.IncrementTrackSold(ctx, closer.ID))

		require.NoError(t, s.RecalculateReleaseSold(ctx, release.ID))

		got, err := s.GetRelease(ctx, release.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, got.SoldEditions)

		openerRow, err := s.GetTrack(ctx, opener.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, openerRow.SoldCount)
	})

	t.Run("recalculate on a trackless release yields zero", func(t *testing.T) {
		release := seedRelease(t, s, func(r *schema.Release) { r.SoldEditions = 7 })

		require.NoError(t, s.RecalculateReleaseSold(ctx, release.ID))

		got, err := s.GetRelease(ctx, release.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.SoldEditions)
	})

	t.Run("minted counters bump on track and release", func(t *testing.T) {
		release := seedRelease(t, s)
		track := seedTrack(t, s, release.ID, "Interlude", "bafyinterlude")

		require.NoError(t, s.IncrementMintedCounters(ctx, release.ID, track.ID))
		require.NoError(t, s.IncrementMintedCounters(ctx, release.ID, track.ID))

		gotRelease, err := s.GetRelease(ctx, release.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, gotRelease.MintedEditions)

		gotTrack, err := s.GetTrack(ctx, track.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, gotTrack.MintedCount)
	})

	t.Run("lists sales with releases preloaded and paged", func(t *testing.T) {
		release := seedRelease(t, s)
		track := seedTrack(t, s, release.ID, "Opener", "bafyopener")
		first := seedSale(t, s, release.ID, track.ID, "rBUYERONExxxxxxxxxxxxxxxxxxxxxxxxx", 1, release.TrackPrice)
		second := seedSale(t, s, release.ID, track.ID, "rBUYERTWOxxxxxxxxxxxxxxxxxxxxxxxxx", 2, release.TrackPrice)

		page, err := s.ListSalesWithReleases(ctx, 1, 0)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, first.ID, page[0].ID)
		assert.Equal(t, release.Title, page[0].Release.Title)
		assert.Equal(t, release.ArtistAddress, page[0].Release.ArtistAddress)

		page, err = s.ListSalesWithReleases(ctx, 10, 1)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.Equal(t, second.ID, page[0].ID)
	})
}

// =============================================================================
// Test: Purchase Attempts
// =============================================================================

func testPurchaseAttempts(t *testing.T, s Store) {
	ctx := context.Background()

	newAttempt := func(t *testing.T, releaseID uint64) *schema.PurchaseAttempt {
		attempt := &schema.PurchaseAttempt{
			ID:           uuid.NewString(),
			ReleaseID:    releaseID,
			BuyerAddress: "rBUYERxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
			TotalPrice:   10 * domain.DropsPerXRP,
			Status:       schema.PurchaseAttemptStatusInFlight,
		}
		require.NoError(t, s.CreatePurchaseAttempt(ctx, attempt))
		return attempt
	}

	getAttempt := func(t *testing.T, id string) schema.PurchaseAttempt {
		var attempt schema.PurchaseAttempt
		require.NoError(t, rawDB(t, s).Where("id = ?", id).First(&attempt).Error)
		return attempt
	}

	t.Run("reservations come back in append order", func(t *testing.T) {
		release := seedRelease(t, s)
		opener := seedTrack(t, s, release.ID, "Opener", "bafyopener")
		closer := seedTrack(t, s, release.ID, "Closer", "bafycloser")
		recordA := seedAvailableRecord(t, s, release.ID, opener.ID, intptr(1), strptr("TOKEN-A"))
		recordB := seedAvailableRecord(t, s, release.ID, closer.ID, intptr(1), strptr("TOKEN-B"))
		attempt := newAttempt(t, release.ID)

		require.NoError(t, s.AppendReservation(ctx, attempt.ID, recordA.ID, opener.ID))
		require.NoError(t, s.AppendReservation(ctx, attempt.ID, recordB.ID, closer.ID))

		reservations, err := s.GetAttemptReservations(ctx, attempt.ID)
		require.NoError(t, err)
		require.Len(t, reservations, 2)
		assert.Equal(t, recordA.ID, reservations[0].NFTRecordID)
		assert.Equal(t, opener.ID, reservations[0].TrackID)
		assert.Equal(t, recordB.ID, reservations[1].NFTRecordID)
	})

	t.Run("status transitions persist", func(t *testing.T) {
		release := seedRelease(t, s)

		settled := newAttempt(t, release.ID)
		require.NoError(t, s.MarkAttemptSettled(ctx, settled.ID))
		assert.Equal(t, schema.PurchaseAttemptStatusSettled, getAttempt(t, settled.ID).Status)

		confirmed := newAttempt(t, release.ID)
		require.NoError(t, s.MarkAttemptConfirmed(ctx, confirmed.ID))
		assert.Equal(t, schema.PurchaseAttemptStatusConfirmed, getAttempt(t, confirmed.ID).Status)
	})

	t.Run("compensation records the reason and refund hash", func(t *testing.T) {
		release := seedRelease(t, s)
		attempt := newAttempt(t, release.ID)

		require.NoError(t, s.MarkAttemptCompensated(ctx, attempt.ID, "mint rejected", strptr("REFUND-HASH")))

		stored := getAttempt(t, attempt.ID)
		assert.Equal(t, schema.PurchaseAttemptStatusCompensated, stored.Status)
		require.NotNil(t, stored.FailureReason)
		assert.Equal(t, "mint rejected", *stored.FailureReason)
		require.NotNil(t, stored.RefundTxHash)
		assert.Equal(t, "REFUND-HASH", *stored.RefundTxHash)
	})

	t.Run("compensation without a refund leaves the hash empty", func(t *testing.T) {
		release := seedRelease(t, s)
		attempt := newAttempt(t, release.ID)

		require.NoError(t, s.MarkAttemptCompensated(ctx, attempt.ID, "nothing collected", nil))

		stored := getAttempt(t, attempt.ID)
		assert.Equal(t, schema.PurchaseAttemptStatusCompensated, stored.Status)
		assert.Nil(t, stored.RefundTxHash)
	})

	t.Run("stale listing returns only old in-flight attempts", func(t *testing.T) {
		release := seedRelease(t, s)

		stale := newAttempt(t, release.ID)
		fresh := newAttempt(t, release.ID)
		settled := newAttempt(t, release.ID)
		require.NoError(t, s.MarkAttemptSettled(ctx, settled.ID))

		// Backdate without triggering gorm's automatic timestamp update
		past := time.Now().Add(-30 * time.Minute)
		require.NoError(t, rawDB(t, s).Model(&schema.PurchaseAttempt{}).
			Where("id = ?", stale.ID).
			UpdateColumn("updated_at", past).Error)

		cutoff := time.Now().Add(-10 * time.Minute)
		attempts, err := s.ListStaleInFlightAttempts(ctx, cutoff, 50)
		require.NoError(t, err)
		require.Len(t, attempts, 1)
		assert.Equal(t, stale.ID, attempts[0].ID)
		assert.NotEqual(t, fresh.ID, attempts[0].ID)
	})

	t.Run("stale listing honors the limit oldest first", func(t *testing.T) {
		release := seedRelease(t, s)

		older := newAttempt(t, release.ID)
		newer := newAttempt(t, release.ID)
		require.NoError(t, rawDB(t, s).Model(&schema.PurchaseAttempt{}).
			Where("id = ?", older.ID).
			UpdateColumn("updated_at", time.Now().Add(-60*time.Minute)).Error)
		require.NoError(t, rawDB(t, s).Model(&schema.PurchaseAttempt{}).
			Where("id = ?", newer.ID).
			UpdateColumn("updated_at", time.Now().Add(-30*time.Minute)).Error)

		attempts, err := s.ListStaleInFlightAttempts(ctx, time.Now().Add(-10*time.Minute), 1)
		require.NoError(t, err)
		require.Len(t, attempts, 1)
		assert.Equal(t, older.ID, attempts[0].ID)
	})
}

// =============================================================================
// Suite Runner
// =============================================================================

// RunStoreTests runs the full store suite against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"ReleaseAndTracks", testReleaseAndTracks},
		{"RecordReservation", testRecordReservation},
		{"RecordLifecycle", testRecordLifecycle},
		{"SalesAndCounters", testSalesAndCounters},
		{"PurchaseAttempts", testPurchaseAttempts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
