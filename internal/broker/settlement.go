package broker

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/soundclave/sc-broker/internal/domain"
	"github.com/soundclave/sc-broker/internal/ledger"
	"github.com/soundclave/sc-broker/internal/logger"
	"github.com/soundclave/sc-broker/internal/store/schema"
)

// Settler lists reserved tokens for transfer to the buyer and pays the artist.
//
//go:generate mockgen -source=settlement.go -destination=../mocks/settler.go -package=mocks -mock_names=Settler=MockSettler
type Settler interface {
	// ListForBuyer cancels any stale platform offers on the record's token
	// (best effort) and creates a sell offer only the buyer can accept.
	// Payment was collected off-ledger, so the offer amount is zero.
	ListForBuyer(ctx context.Context, record *schema.NFTRecord, buyer string) (offerIndex string, err error)

	// PayArtist sends the artist their share of the collected total in a
	// single payment carrying a descriptive memo
	PayArtist(ctx context.Context, artist string, amount domain.Drops, memo string) error
}

type settler struct {
	ledger ledger.Client
}

// NewSettler creates an offer and settlement stage
func NewSettler(lc ledger.Client) Settler {
	return &settler{ledger: lc}
}

// ListForBuyer lists one reserved token for the buyer
func (s *settler) ListForBuyer(ctx context.Context, record *schema.NFTRecord, buyer string) (string, error) {
	if record.TokenID == nil {
		return "", fmt.Errorf("record %d has no token id: %w", record.ID, domain.ErrUnavailable)
	}
	tokenID := *record.TokenID

	// Stale offers from earlier aborted purchases would block the new one.
	// Absence of offers is the normal case, not an error.
	offers, err := s.ledger.TokenSellOffers(ctx, tokenID)
	if err != nil {
		logger.WarnCtx(ctx, "could not read existing offers",
			zap.String("token_id", tokenID),
			zap.Error(err))
	} else if stale := s.platformOfferIndexes(offers); len(stale) > 0 {
		if err := s.ledger.CancelOffers(ctx, stale); err != nil {
			logger.WarnCtx(ctx, "could not cancel stale offers",
				zap.String("token_id", tokenID),
				zap.Strings("offer_indexes", stale),
				zap.Error(err))
		}
	}

	result, err := s.ledger.CreateSellOffer(ctx, ledger.SellOfferParams{
		TokenID:     tokenID,
		Destination: buyer,
		Amount:      0,
	})
	if err != nil {
		return "", err
	}

	logger.InfoCtx(ctx, "listed token for buyer",
		zap.String("token_id", tokenID),
		zap.String("buyer", buyer),
		zap.String("offer_index", result.OfferIndex))

	return result.OfferIndex, nil
}

func (s *settler) platformOfferIndexes(offers []ledger.Offer) []string {
	var indexes []string
	platform := s.ledger.PlatformAddress()
	for _, offer := range offers {
		if offer.Owner == platform {
			indexes = append(indexes, offer.Index)
		}
	}
	return indexes
}

// PayArtist sends the artist their share of the collected total
func (s *settler) PayArtist(ctx context.Context, artist string, amount domain.Drops, memo string) error {
	result, err := s.ledger.SendPayment(ctx, ledger.PaymentParams{
		Destination: artist,
		Amount:      amount,
		Memo:        memo,
	})
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "paid artist",
		zap.String("artist", artist),
		zap.String("amount_xrp", amount.String()),
		zap.String("tx_hash", result.TxHash))

	return nil
}
