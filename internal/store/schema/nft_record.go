package schema

import (
	"time"
)

// NFTRecordStatus represents the reservation state of a platform-held token
type NFTRecordStatus string

const (
	// NFTRecordStatusAvailable means the token can be reserved for a purchase
	NFTRecordStatusAvailable NFTRecordStatus = "available"
	// NFTRecordStatusPending means the token is reserved by an in-flight purchase
	NFTRecordStatusPending NFTRecordStatus = "pending"
	// NFTRecordStatusSold means the sale was confirmed and ownership transferred
	NFTRecordStatusSold NFTRecordStatus = "sold"
)

// NFTRecord represents the nft_records table - a ledger-token-to-track binding
// held by the platform pending transfer. Records enter `available` when stocked
// ahead of time, or are created directly in `pending` when a legacy token is
// discovered on-chain or a token is lazily minted mid-purchase.
type NFTRecord struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenID is the ledger-assigned token identifier (nil until minted)
	TokenID *string `gorm:"column:token_id;type:text;index"`
	// ReleaseID references the release this token belongs to
	ReleaseID uint64 `gorm:"column:release_id;not null;index"`
	// TrackID references the track this token represents
	TrackID uint64 `gorm:"column:track_id;not null;index:idx_nft_records_track_status,priority:1"`
	// EditionNumber is informational; the authoritative edition is recomputed
	// from the sale count at confirmation time
	EditionNumber *int `gorm:"column:edition_number"`
	// OwnerAddress is the current owner's ledger address
	OwnerAddress string `gorm:"column:owner_address;not null;type:text"`
	// Status is the reservation state
	Status NFTRecordStatus `gorm:"column:status;not null;type:text;index:idx_nft_records_track_status,priority:2"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Release Release `gorm:"foreignKey:ReleaseID;constraint:OnDelete:CASCADE"`
	Track   Track   `gorm:"foreignKey:TrackID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the NFTRecord model
func (NFTRecord) TableName() string {
	return "nft_records"
}
