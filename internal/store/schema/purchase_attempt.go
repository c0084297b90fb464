package schema

import (
	"time"

	"github.com/soundclave/sc-broker/internal/domain"
)

// PurchaseAttemptStatus represents the saga state of a purchase attempt
type PurchaseAttemptStatus string

const (
	// PurchaseAttemptStatusInFlight means the purchase is executing
	PurchaseAttemptStatusInFlight PurchaseAttemptStatus = "in_flight"
	// PurchaseAttemptStatusSettled means every track was listed and the
	// artist was paid; the batch awaits buyer acceptance
	PurchaseAttemptStatusSettled PurchaseAttemptStatus = "settled"
	// PurchaseAttemptStatusCompensated means reservations were rolled back
	PurchaseAttemptStatusCompensated PurchaseAttemptStatus = "compensated"
	// PurchaseAttemptStatusConfirmed means the buyer accepted and sales
	// were recorded
	PurchaseAttemptStatusConfirmed PurchaseAttemptStatus = "confirmed"
)

// PurchaseAttempt represents the purchase_attempts table - the persisted saga
// record for one album purchase. A crash mid-batch leaves the row `in_flight`;
// the sweeper finds it and releases the reserved inventory.
type PurchaseAttempt struct {
	// ID is the attempt identifier
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// ReleaseID references the purchased release
	ReleaseID uint64 `gorm:"column:release_id;not null;index"`
	// BuyerAddress is the buyer's ledger account address
	BuyerAddress string `gorm:"column:buyer_address;not null;type:text"`
	// TotalPrice is the full collected amount in drops
	TotalPrice domain.Drops `gorm:"column:total_price;not null"`
	// Status is the saga state
	Status PurchaseAttemptStatus `gorm:"column:status;not null;type:text;index"`
	// RefundTxHash is set when a compensation refund finalized
	RefundTxHash *string `gorm:"column:refund_tx_hash;type:text"`
	// FailureReason records why the attempt was compensated
	FailureReason *string `gorm:"column:failure_reason;type:text"`
	// CreatedAt is the timestamp when the attempt started
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when the attempt last changed state
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Reservations []PurchaseReservation `gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the PurchaseAttempt model
func (PurchaseAttempt) TableName() string {
	return "purchase_attempts"
}

// PurchaseReservation represents the purchase_reservations table - one
// compensatable step of a purchase attempt, appended as each track's
// token is reserved.
type PurchaseReservation struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AttemptID references the owning purchase attempt
	AttemptID string `gorm:"column:attempt_id;not null;type:uuid;index"`
	// NFTRecordID references the reserved record
	NFTRecordID uint64 `gorm:"column:nft_record_id;not null"`
	// TrackID references the track the reservation is for
	TrackID uint64 `gorm:"column:track_id;not null"`
	// CreatedAt is the timestamp when the reservation was taken
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the PurchaseReservation model
func (PurchaseReservation) TableName() string {
	return "purchase_reservations"
}
