package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/soundclave/sc-broker/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the broker tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Release{},
		&schema.Track{},
		&schema.NFTRecord{},
		&schema.Sale{},
		&schema.PurchaseAttempt{},
		&schema.PurchaseReservation{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings
// into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// GetRelease retrieves a release by id
func (s *pgStore) GetRelease(ctx context.Context, releaseID uint64) (*schema.Release, error) {
	var release schema.Release
	err := s.db.WithContext(ctx).Where("id = ?", releaseID).First(&release).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get release: %w", err)
	}
	return &release, nil
}

// GetReleaseTracks retrieves a release's tracks ordered by id
func (s *pgStore) GetReleaseTracks(ctx context.Context, releaseID uint64) ([]schema.Track, error) {
	var tracks []schema.Track
	err := s.db.WithContext(ctx).
		Where("release_id = ?", releaseID).
		Order("id ASC").
		Find(&tracks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get tracks for release %d: %w", releaseID, err)
	}
	return tracks, nil
}

// GetTrack retrieves a track by id
func (s *pgStore) GetTrack(ctx context.Context, trackID uint64) (*schema.Track, error) {
	var track schema.Track
	err := s.db.WithContext(ctx).Where("id = ?", trackID).First(&track).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get track: %w", err)
	}
	return &track, nil
}

// HasAvailableRecord reports whether any available NFT record exists for a track
func (s *pgStore) HasAvailableRecord(ctx context.Context, trackID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.NFTRecord{}).
		Where("track_id = ? AND status = ?", trackID, schema.NFTRecordStatusAvailable).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count available records for track %d: %w", trackID, err)
	}
	return count > 0, nil
}

// reserveAttempts bounds the number of CAS retries when concurrent purchases
// race for the same inventory
const reserveAttempts = 5

// ReserveAvailableRecord atomically reserves the lowest-edition available
// record for a track. The status flip is a compare-and-swap: zero rows
// affected means another purchase took the candidate first, so the next
// candidate is tried.
func (s *pgStore) ReserveAvailableRecord(ctx context.Context, trackID uint64) (*schema.NFTRecord, error) {
	for range reserveAttempts {
		var candidate schema.NFTRecord
		err := s.db.WithContext(ctx).
			Where("track_id = ? AND status = ?", trackID, schema.NFTRecordStatusAvailable).
			Order("edition_number ASC NULLS LAST, id ASC").
			First(&candidate).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to find available record for track %d: %w", trackID, err)
		}

		result := s.db.WithContext(ctx).Model(&schema.NFTRecord{}).
			Where("id = ? AND status = ?", candidate.ID, schema.NFTRecordStatusAvailable).
			Updates(map[string]interface{}{
				"status":     schema.NFTRecordStatusPending,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return nil, fmt.Errorf("failed to reserve record %d: %w", candidate.ID, result.Error)
		}
		if result.RowsAffected == 0 {
			// Lost the race for this candidate, try the next one
			continue
		}

		candidate.Status = schema.NFTRecordStatusPending
		return &candidate, nil
	}
	return nil, nil
}

// CreatePendingRecord inserts a record born in pending state
func (s *pgStore) CreatePendingRecord(ctx context.Context, record *schema.NFTRecord) error {
	record.Status = schema.NFTRecordStatusPending
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create pending record: %w", err)
	}
	return nil
}

// GetNFTRecord retrieves a record by id
func (s *pgStore) GetNFTRecord(ctx context.Context, recordID uint64) (*schema.NFTRecord, error) {
	var record schema.NFTRecord
	err := s.db.WithContext(ctx).Where("id = ?", recordID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get nft record: %w", err)
	}
	return &record, nil
}

// ReleaseRecord returns a pending record to the available pool
func (s *pgStore) ReleaseRecord(ctx context.Context, recordID uint64) error {
	result := s.db.WithContext(ctx).Model(&schema.NFTRecord{}).
		Where("id = ? AND status = ?", recordID, schema.NFTRecordStatusPending).
		Updates(map[string]interface{}{
			"status":     schema.NFTRecordStatusAvailable,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to release record %d: %w", recordID, result.Error)
	}
	return nil
}

// FinalizeRecordSold marks a pending record sold. Returns false when the
// record is not pending anymore (already sold), which makes batch
// re-confirmation idempotent.
func (s *pgStore) FinalizeRecordSold(ctx context.Context, recordID uint64, owner string, edition int) (bool, error) {
	result := s.db.WithContext(ctx).Model(&schema.NFTRecord{}).
		Where("id = ? AND status = ?", recordID, schema.NFTRecordStatusPending).
		Updates(map[string]interface{}{
			"status":         schema.NFTRecordStatusSold,
			"owner_address":  owner,
			"edition_number": edition,
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to finalize record %d: %w", recordID, result.Error)
	}
	return result.RowsAffected > 0, nil
}

// CountSalesForTrack counts confirmed sales of a track
func (s *pgStore) CountSalesForTrack(ctx context.Context, trackID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.Sale{}).
		Where("track_id = ?", trackID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count sales for track %d: %w", trackID, err)
	}
	return count, nil
}

// InsertSale appends an immutable sale row
func (s *pgStore) InsertSale(ctx context.Context, sale *schema.Sale) error {
	if err := s.db.WithContext(ctx).Create(sale).Error; err != nil {
		return fmt.Errorf("failed to insert sale: %w", err)
	}
	return nil
}

// IncrementTrackSold bumps a track's sold counter
func (s *pgStore) IncrementTrackSold(ctx context.Context, trackID uint64) error {
	err := s.db.WithContext(ctx).Model(&schema.Track{}).
		Where("id = ?", trackID).
		Updates(map[string]interface{}{
			"sold_count": gorm.Expr("sold_count + 1"),
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to increment sold count for track %d: %w", trackID, err)
	}
	return nil
}

// IncrementMintedCounters bumps the minted counters of a track and its release
func (s *pgStore) IncrementMintedCounters(ctx context.Context, releaseID, trackID uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&schema.Track{}).
			Where("id = ?", trackID).
			Updates(map[string]interface{}{
				"minted_count": gorm.Expr("minted_count + 1"),
				"updated_at":   time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("failed to increment minted count for track %d: %w", trackID, err)
		}
		if err := tx.Model(&schema.Release{}).
			Where("id = ?", releaseID).
			Updates(map[string]interface{}{
				"minted_editions": gorm.Expr("minted_editions + 1"),
				"updated_at":      time.Now(),
			}).Error; err != nil {
			return fmt.Errorf("failed to increment minted editions for release %d: %w", releaseID, err)
		}
		return nil
	})
}

// RecalculateReleaseSold sets a release's sold editions to the minimum sold
// count across its tracks. Album completeness is gated by the scarcest track.
func (s *pgStore) RecalculateReleaseSold(ctx context.Context, releaseID uint64) error {
	err := s.db.WithContext(ctx).Exec(
		`UPDATE releases
		 SET sold_editions = (
		   SELECT COALESCE(MIN(sold_count), 0) FROM tracks WHERE release_id = ?
		 ), updated_at = now()
		 WHERE id = ?`,
		releaseID, releaseID,
	).Error
	if err != nil {
		return fmt.Errorf("failed to recalculate sold editions for release %d: %w", releaseID, err)
	}
	return nil
}

// CreatePurchaseAttempt persists a new saga record
func (s *pgStore) CreatePurchaseAttempt(ctx context.Context, attempt *schema.PurchaseAttempt) error {
	if err := s.db.WithContext(ctx).Create(attempt).Error; err != nil {
		return fmt.Errorf("failed to create purchase attempt: %w", err)
	}
	return nil
}

// AppendReservation records one compensatable reservation step
func (s *pgStore) AppendReservation(ctx context.Context, attemptID string, nftRecordID, trackID uint64) error {
	reservation := schema.PurchaseReservation{
		AttemptID:   attemptID,
		NFTRecordID: nftRecordID,
		TrackID:     trackID,
	}
	if err := s.db.WithContext(ctx).Create(&reservation).Error; err != nil {
		return fmt.Errorf("failed to append reservation for attempt %s: %w", attemptID, err)
	}
	return nil
}

func (s *pgStore) setAttemptStatus(ctx context.Context, attemptID string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	err := s.db.WithContext(ctx).Model(&schema.PurchaseAttempt{}).
		Where("id = ?", attemptID).
		Updates(updates).Error
	if err != nil {
		return fmt.Errorf("failed to update attempt %s: %w", attemptID, err)
	}
	return nil
}

// MarkAttemptSettled transitions an attempt to settled
func (s *pgStore) MarkAttemptSettled(ctx context.Context, attemptID string) error {
	return s.setAttemptStatus(ctx, attemptID, map[string]interface{}{
		"status": schema.PurchaseAttemptStatusSettled,
	})
}

// MarkAttemptCompensated transitions an attempt to compensated
func (s *pgStore) MarkAttemptCompensated(ctx context.Context, attemptID string, reason string, refundTxHash *string) error {
	return s.setAttemptStatus(ctx, attemptID, map[string]interface{}{
		"status":         schema.PurchaseAttemptStatusCompensated,
		"failure_reason": reason,
		"refund_tx_hash": refundTxHash,
	})
}

// MarkAttemptConfirmed transitions an attempt to confirmed
func (s *pgStore) MarkAttemptConfirmed(ctx context.Context, attemptID string) error {
	return s.setAttemptStatus(ctx, attemptID, map[string]interface{}{
		"status": schema.PurchaseAttemptStatusConfirmed,
	})
}

// ListStaleInFlightAttempts returns attempts stuck in flight since before the cutoff
func (s *pgStore) ListStaleInFlightAttempts(ctx context.Context, cutoff time.Time, limit int) ([]schema.PurchaseAttempt, error) {
	var attempts []schema.PurchaseAttempt
	err := s.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", schema.PurchaseAttemptStatusInFlight, cutoff).
		Order("updated_at ASC").
		Limit(limit).
		Find(&attempts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list stale attempts: %w", err)
	}
	return attempts, nil
}

// GetAttemptReservations returns an attempt's reservation steps in order
func (s *pgStore) GetAttemptReservations(ctx context.Context, attemptID string) ([]schema.PurchaseReservation, error) {
	var reservations []schema.PurchaseReservation
	err := s.db.WithContext(ctx).
		Where("attempt_id = ?", attemptID).
		Order("id ASC").
		Find(&reservations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get reservations for attempt %s: %w", attemptID, err)
	}
	return reservations, nil
}

// ListSalesWithReleases pages through sales with their releases preloaded
func (s *pgStore) ListSalesWithReleases(ctx context.Context, limit, offset int) ([]schema.Sale, error) {
	var sales []schema.Sale
	err := s.db.WithContext(ctx).
		Preload("Release").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}
