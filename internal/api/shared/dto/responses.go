package dto

import (
	apierrors "github.com/soundclave/sc-broker/internal/api/shared/errors"
	"github.com/soundclave/sc-broker/internal/domain"
)

// PurchaseResponse is the successful outcome of a purchase. The buyer must
// still accept each returned offer on the ledger.
type PurchaseResponse struct {
	Success      bool                 `json:"success"`
	AttemptID    string               `json:"attempt_id"`
	OfferIndexes []string             `json:"offer_indexes"`
	PendingSales []domain.PendingSale `json:"pending_sales"`
	TrackCount   int                  `json:"track_count"`
}

// PurchaseFailureResponse is the outcome of an aborted purchase. Refunded is
// true whenever compensation ran, regardless of whether the refund
// transaction itself finalized.
type PurchaseFailureResponse struct {
	*apierrors.APIError
	Refunded bool `json:"refunded"`
}

// ConfirmSalesResponse acknowledges a recorded confirmation batch
type ConfirmSalesResponse struct {
	Success  bool `json:"success"`
	Recorded int  `json:"recorded"`
}
