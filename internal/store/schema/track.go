package schema

import (
	"time"
)

// Track represents the tracks table - one recording belonging to a release
type Track struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ReleaseID references the release this track belongs to
	ReleaseID uint64 `gorm:"column:release_id;not null;index"`
	// Title is the track title
	Title string `gorm:"column:title;not null;type:text"`
	// MetadataCID is the content-address pointer to the track's token metadata
	MetadataCID string `gorm:"column:metadata_cid;not null;type:text"`
	// SoldCount is the number of confirmed sales for this track
	SoldCount int `gorm:"column:sold_count;not null;default:0"`
	// MintedCount counts tokens minted on demand for this track
	MintedCount int `gorm:"column:minted_count;not null;default:0"`
	// DurationSeconds is the track length
	DurationSeconds int `gorm:"column:duration_seconds"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Release Release `gorm:"foreignKey:ReleaseID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Track model
func (Track) TableName() string {
	return "tracks"
}

// MetadataURI returns the URI stamped into the track's tokens.
func (t *Track) MetadataURI() string {
	return "ipfs://" + t.MetadataCID
}
