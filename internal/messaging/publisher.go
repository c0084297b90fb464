// Package messaging publishes broker events for downstream consumers: the
// external wallet scanner, notification fan-out and audit tooling.
package messaging

import (
	"context"
	"time"

	"github.com/soundclave/sc-broker/internal/domain"
)

const (
	// SubjectSaleConfirmed carries one event per confirmed track sale
	SubjectSaleConfirmed = "sales.confirmed"
	// SubjectPurchaseReconciled carries one event per purchase attempt the
	// sweeper rolled back
	SubjectPurchaseReconciled = "purchases.reconciled"
)

// SaleConfirmedEvent is emitted after a sale row is durably recorded
type SaleConfirmedEvent struct {
	EventID       string       `json:"event_id"`
	SaleID        uint64       `json:"sale_id"`
	ReleaseID     uint64       `json:"release_id"`
	TrackID       uint64       `json:"track_id"`
	TokenID       string       `json:"token_id"`
	BuyerAddress  string       `json:"buyer_address"`
	SellerAddress string       `json:"seller_address"`
	Price         domain.Drops `json:"price"`
	EditionNumber int          `json:"edition_number"`
	TxHash        string       `json:"tx_hash"`
	Timestamp     time.Time    `json:"timestamp"`
}

// PurchaseReconciledEvent is emitted when the sweeper releases the
// inventory of an abandoned purchase attempt
type PurchaseReconciledEvent struct {
	EventID      string       `json:"event_id"`
	AttemptID    string       `json:"attempt_id"`
	ReleaseID    uint64       `json:"release_id"`
	BuyerAddress string       `json:"buyer_address"`
	TotalPrice   domain.Drops `json:"total_price"`
	Reason       string       `json:"reason"`
	Timestamp    time.Time    `json:"timestamp"`
}

// Publisher defines the interface for publishing broker events
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishSaleConfirmed publishes a confirmed track sale
	PublishSaleConfirmed(ctx context.Context, event *SaleConfirmedEvent) error
	// PublishPurchaseReconciled publishes a swept purchase attempt
	PublishPurchaseReconciled(ctx context.Context, event *PurchaseReconciledEvent) error
	// Close closes the connection
	Close()
}
