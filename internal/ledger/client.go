// Package ledger is the XRP Ledger client adapter. It submits the platform
// account's transactions over the rippled JSON-RPC API, waits for validation,
// and reads account token inventories and offers.
package ledger

import (
	"context"

	"github.com/soundclave/sc-broker/internal/domain"
)

// Token is a ledger-tracked token held by an account
type Token struct {
	// TokenID is the ledger-assigned token identifier
	TokenID string
	// URI is the token's decoded metadata URI (e.g. "ipfs://<cid>")
	URI string
}

// Offer is a transfer offer attached to a token
type Offer struct {
	// Index is the offer's ledger object index
	Index string
	// Owner is the account that created the offer
	Owner string
	// Destination restricts who may accept the offer (empty means anyone)
	Destination string
	// Amount is the offer amount in drops
	Amount domain.Drops
}

// MintParams describes an on-demand token mint
type MintParams struct {
	// URI is the token metadata URI, hex-encoded before submission
	URI string
	// RoyaltyPercent becomes the token's resale transfer fee
	RoyaltyPercent int
	// Taxon groups the release's tokens on the ledger
	Taxon uint32
}

// MintResult is the outcome of a finalized mint transaction
type MintResult struct {
	// TxHash is the mint transaction hash
	TxHash string
	// TokenID is the newly created token's identifier, extracted from the
	// transaction's ledger-state delta
	TokenID string
}

// SellOfferParams describes a transfer offer granting a buyer the right to
// claim a token
type SellOfferParams struct {
	// TokenID is the token being listed
	TokenID string
	// Destination is the buyer's account; only they can accept
	Destination string
	// Amount is the claim price in drops. Zero for custodial sales where
	// payment was already collected off-ledger.
	Amount domain.Drops
}

// OfferResult is the outcome of a finalized offer transaction
type OfferResult struct {
	// TxHash is the offer transaction hash
	TxHash string
	// OfferIndex is the created offer's ledger object index
	OfferIndex string
}

// PaymentParams describes a payment from the platform account
type PaymentParams struct {
	// Destination is the receiving account
	Destination string
	// Amount is the payment in drops
	Amount domain.Drops
	// Memo is a human-readable note carried on the transaction
	Memo string
}

// PaymentResult is the outcome of a finalized payment transaction
type PaymentResult struct {
	// TxHash is the payment transaction hash
	TxHash string
}

// Client defines the ledger operations used by the broker. All submissions
// block until the transaction is validated or the finality timeout elapses;
// a timeout or non-success engine result surfaces as
// domain.ErrLedgerTransactionFailed.
//
//go:generate mockgen -source=client.go -destination=../mocks/ledger_client.go -package=mocks -mock_names=Client=MockLedgerClient
type Client interface {
	// PlatformAddress returns the custodial platform account address
	PlatformAddress() string

	// AccountTokens lists the tokens currently held by an account
	AccountTokens(ctx context.Context, account string) ([]Token, error)

	// TokenSellOffers lists the sell offers attached to a token. A token
	// with no offers yields an empty slice, not an error.
	TokenSellOffers(ctx context.Context, tokenID string) ([]Offer, error)

	// MintToken mints a transferable token and extracts its identifier from
	// the mint's ledger delta. Returns domain.ErrTokenExtractionFailed when
	// the transaction validated but no new identifier could be located.
	MintToken(ctx context.Context, params MintParams) (*MintResult, error)

	// CreateSellOffer lists a token for transfer to a specific buyer
	CreateSellOffer(ctx context.Context, params SellOfferParams) (*OfferResult, error)

	// CancelOffers removes previously created offers. Best effort: an
	// already-gone offer is not an error.
	CancelOffers(ctx context.Context, offerIndexes []string) error

	// SendPayment pays drops from the platform account with a memo
	SendPayment(ctx context.Context, params PaymentParams) (*PaymentResult, error)

	// VerifyTokenTransfer checks that a validated transaction transferred
	// the given token to the given account
	VerifyTokenTransfer(ctx context.Context, txHash, tokenID, to string) (bool, error)
}
