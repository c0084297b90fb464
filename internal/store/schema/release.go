package schema

import (
	"time"

	"github.com/soundclave/sc-broker/internal/domain"
)

// ReleaseStatus represents the lifecycle state of a release
type ReleaseStatus string

const (
	// ReleaseStatusDraft indicates a release not yet published
	ReleaseStatusDraft ReleaseStatus = "draft"
	// ReleaseStatusLive indicates a release open for purchase
	ReleaseStatusLive ReleaseStatus = "live"
	// ReleaseStatusRetired indicates a release withdrawn from sale
	ReleaseStatusRetired ReleaseStatus = "retired"
)

// ReleaseType distinguishes albums from singles
type ReleaseType string

const (
	ReleaseTypeAlbum  ReleaseType = "album"
	ReleaseTypeSingle ReleaseType = "single"
)

// Release represents the releases table - an album or single offered for sale
type Release struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Title is the release title
	Title string `gorm:"column:title;not null;type:text"`
	// ArtistAddress is the artist's ledger account address
	ArtistAddress string `gorm:"column:artist_address;not null;type:text;index"`
	// ArtistName is the display name of the artist
	ArtistName string `gorm:"column:artist_name;type:text"`
	// TrackPrice is the per-track price in drops
	TrackPrice domain.Drops `gorm:"column:track_price;not null"`
	// BundlePrice is a whole-album price in drops. The broker sells albums at
	// TrackPrice x track count; this field is recorded at publish time only.
	BundlePrice domain.Drops `gorm:"column:bundle_price"`
	// TotalEditions is the number of copies offered per track
	TotalEditions int `gorm:"column:total_editions;not null"`
	// SoldEditions is the minimum sold count across the release's tracks
	SoldEditions int `gorm:"column:sold_editions;not null;default:0"`
	// MintedEditions counts tokens minted on demand for this release
	MintedEditions int `gorm:"column:minted_editions;not null;default:0"`
	// RoyaltyPercent is the resale royalty percentage (0 means default 5)
	RoyaltyPercent int `gorm:"column:royalty_percent;not null;default:0"`
	// MintFeePaid marks the lazy regime: the platform mints at purchase time
	MintFeePaid bool `gorm:"column:mint_fee_paid;not null;default:false"`
	// IsMinted marks the legacy regime: tokens pre-minted by the artist
	IsMinted bool `gorm:"column:is_minted;not null;default:false"`
	// Status is the release lifecycle state
	Status ReleaseStatus `gorm:"column:status;not null;type:text;default:'draft'"`
	// HasSellOffer marks releases with a recorded ledger sell offer
	HasSellOffer bool `gorm:"column:has_sell_offer;not null;default:false"`
	// Type distinguishes albums from singles
	Type ReleaseType `gorm:"column:type;not null;type:text;default:'album'"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Tracks []Track `gorm:"foreignKey:ReleaseID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Release model
func (Release) TableName() string {
	return "releases"
}

// Regime decides the release's mint regime once; every downstream step
// takes the result instead of re-reading the marker flags.
func (r *Release) Regime() domain.MintRegime {
	if r.MintFeePaid {
		return domain.RegimeLazy
	}
	return domain.RegimeLegacy
}

// Purchasable reports whether the release can currently be bought.
func (r *Release) Purchasable() bool {
	return r.MintFeePaid || r.Status == ReleaseStatusLive || r.IsMinted || r.HasSellOffer
}

// EffectiveRoyaltyPercent returns the royalty percent with the default applied.
func (r *Release) EffectiveRoyaltyPercent() int {
	if r.RoyaltyPercent <= 0 {
		return domain.DefaultRoyaltyPercent
	}
	return r.RoyaltyPercent
}
