package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/soundclave/sc-broker/internal/domain"
)

// Sale represents the sales table - an immutable ledger of completed
// transfers. Rows are inserted by the confirmation recorder and never
// mutated or deleted.
type Sale struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ReleaseID references the sold release
	ReleaseID uint64 `gorm:"column:release_id;not null;index"`
	// TrackID references the sold track
	TrackID uint64 `gorm:"column:track_id;not null;index"`
	// BuyerAddress is the buyer's ledger account address
	BuyerAddress string `gorm:"column:buyer_address;not null;type:text;index"`
	// SellerAddress is the ledger account that transferred the token
	SellerAddress string `gorm:"column:seller_address;not null;type:text;index"`
	// TokenID is the transferred token's ledger identifier
	TokenID string `gorm:"column:token_id;not null;type:text"`
	// EditionNumber is the sale-order rank among all sales of the track
	EditionNumber int `gorm:"column:edition_number;not null"`
	// Price is the sale price in drops
	Price domain.Drops `gorm:"column:price;not null"`
	// PlatformFee is the platform's cut in drops
	PlatformFee domain.Drops `gorm:"column:platform_fee;not null"`
	// SettlementTxHash is the buyer's offer-acceptance transaction hash
	SettlementTxHash string `gorm:"column:settlement_tx_hash;not null;type:text"`
	// Raw holds the acceptance metadata as reported, for audit
	Raw datatypes.JSON `gorm:"column:raw;type:jsonb"`
	// CreatedAt is the timestamp when the sale was recorded
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Release Release `gorm:"foreignKey:ReleaseID"`
	Track   Track   `gorm:"foreignKey:TrackID"`
}

// TableName specifies the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}
