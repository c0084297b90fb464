package domain

import (
	"fmt"
	"strconv"
)

// Drops is an XRP amount in drops, the ledger's integer unit.
// 1 XRP = 1,000,000 drops. All fee and royalty arithmetic is done in
// drops so percentages split without rounding surprises.
type Drops int64

const DropsPerXRP Drops = 1_000_000

const (
	// PlatformFeePercent is the platform's cut of each track sale
	PlatformFeePercent = 2
	// DefaultRoyaltyPercent is applied when a release carries no royalty percent
	DefaultRoyaltyPercent = 5
	// TransferFeeBasisPointFactor converts a royalty percent into the
	// ledger's transfer-fee unit (1% = 1000 basis points of 0.001%)
	TransferFeeBasisPointFactor = 1000
)

// XRP returns the amount as a floating point XRP value, for display only.
func (d Drops) XRP() float64 {
	return float64(d) / float64(DropsPerXRP)
}

// String renders the amount as a decimal XRP string (e.g. "14.7").
func (d Drops) String() string {
	return strconv.FormatFloat(d.XRP(), 'f', -1, 64)
}

// DropsString renders the raw drops value as the ledger expects it.
func (d Drops) DropsString() string {
	return strconv.FormatInt(int64(d), 10)
}

// ParseDrops parses a ledger drops string.
func ParseDrops(s string) (Drops, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid drops amount %q: %w", s, err)
	}
	return Drops(v), nil
}

// PlatformFee returns the platform's share of a sale price.
func PlatformFee(price Drops) Drops {
	return price * PlatformFeePercent / 100
}

// ArtistShare returns the seller payout after the platform fee.
func ArtistShare(price Drops) Drops {
	return price - PlatformFee(price)
}

// RoyaltyOwed returns the artist's entitlement on a secondary sale.
func RoyaltyOwed(price Drops, royaltyPercent int) Drops {
	if royaltyPercent <= 0 {
		royaltyPercent = DefaultRoyaltyPercent
	}
	return price * Drops(royaltyPercent) / 100
}
