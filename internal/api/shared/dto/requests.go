package dto

import "github.com/soundclave/sc-broker/internal/domain"

// PurchaseRequest asks the broker to buy every track of a release.
// Payment of track price x track count is collected out of band before
// this call is made.
type PurchaseRequest struct {
	ReleaseID    uint64 `json:"release_id" binding:"required"`
	BuyerAddress string `json:"buyer_address" binding:"required"`
}

// ConfirmSalesRequest reports the buyer's offer acceptances. Pending sales
// are echoed back exactly as the purchase response returned them, paired by
// index with the acceptance transaction hashes.
type ConfirmSalesRequest struct {
	PendingSales   []domain.PendingSale `json:"pending_sales" binding:"required"`
	AcceptTxHashes []string             `json:"accept_tx_hashes" binding:"required"`
}
