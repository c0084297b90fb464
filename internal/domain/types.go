package domain

// MintRegime identifies which minting history a release belongs to.
// It is decided once per release and passed explicitly through the
// purchase pipeline instead of re-deriving it from flags at each step.
type MintRegime string

const (
	// RegimeLazy marks releases whose tokens are minted at purchase time
	// by the platform account
	RegimeLazy MintRegime = "lazy"
	// RegimeLegacy marks releases whose tokens were pre-minted by the
	// artist before lazy minting existed
	RegimeLegacy MintRegime = "legacy"
)

// PendingSale describes one track's in-flight sale between the purchase
// call and the buyer's offer acceptance. The API returns these to the
// client, which echoes them back on confirmation.
type PendingSale struct {
	AttemptID   string `json:"attempt_id"`
	ReleaseID   uint64 `json:"release_id"`
	TrackID     uint64 `json:"track_id"`
	NFTRecordID uint64 `json:"nft_record_id"`
	TokenID     string `json:"token_id"`
	OfferIndex  string `json:"offer_index"`
	Price       Drops  `json:"price"`
	PlatformFee Drops  `json:"platform_fee"`
	Seller      string `json:"seller"`
	Buyer       string `json:"buyer"`
}

// AvailabilityReport is the result of an availability check.
type AvailabilityReport struct {
	Available         bool       `json:"available"`
	SoldOut           bool       `json:"sold_out"`
	Regime            MintRegime `json:"regime,omitempty"`
	TrackCount        int        `json:"track_count"`
	ReleaseType       string     `json:"release_type,omitempty"`
	UnavailableTracks []string   `json:"unavailable_tracks,omitempty"`
	Message           string     `json:"message,omitempty"`
}
