package domain

import "errors"

var (
	// ErrReleaseNotFound is returned when a release does not exist
	ErrReleaseNotFound = errors.New("release not found")

	// ErrTrackNotFound is returned when a track does not exist
	ErrTrackNotFound = errors.New("track not found")

	// ErrUnavailable is returned when a release is not currently purchasable
	ErrUnavailable = errors.New("release not available for purchase")

	// ErrSoldOut is returned when every track of a release is sold out
	ErrSoldOut = errors.New("album is sold out")

	// ErrLedgerTransactionFailed is returned when a mint, offer or payment
	// transaction did not finalize successfully
	ErrLedgerTransactionFailed = errors.New("ledger transaction failed")

	// ErrTokenExtractionFailed is returned when a mint finalized but the new
	// token id could not be located in the transaction's ledger delta
	ErrTokenExtractionFailed = errors.New("could not extract token id from mint result")

	// ErrConfigurationError is returned when platform credentials are absent
	ErrConfigurationError = errors.New("platform ledger credentials not configured")

	// ErrCompensationFailed is returned when a rollback or refund itself
	// failed; it is logged and never retried automatically
	ErrCompensationFailed = errors.New("compensation failed")

	// ErrConfirmationMismatch is returned when a reported acceptance
	// transaction does not transfer the expected token to the expected buyer
	ErrConfirmationMismatch = errors.New("acceptance transaction does not match sale")

	// ErrBuyerBlocked is returned when the buyer account is on the
	// operator's blocklist
	ErrBuyerBlocked = errors.New("buyer account is blocked")
)
