package broker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundclave/sc-broker/internal/broker"
	"github.com/soundclave/sc-broker/internal/domain"
	"github.com/soundclave/sc-broker/internal/ledger"
	"github.com/soundclave/sc-broker/internal/mocks"
	"github.com/soundclave/sc-broker/internal/store/schema"
)

func strptr(s string) *string {
	return &s
}

func TestListForBuyer_CreatesZeroAmountOffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lc := mocks.NewMockLedgerClient(ctrl)
	s := broker.NewSettler(lc)

	record := &schema.NFTRecord{ID: 101, TokenID: strptr("TOKEN-A")}

	lc.EXPECT().TokenSellOffers(gomock.Any(), "TOKEN-A").Return(nil, nil)
	lc.EXPECT().PlatformAddress().Return(testPlatformAddress).AnyTimes()
	// Payment was collected off-ledger; the offer itself is free
	lc.EXPECT().CreateSellOffer(gomock.Any(), ledger.SellOfferParams{
		TokenID:     "TOKEN-A",
		Destination: testBuyer,
		Amount:      0,
	}).Return(&ledger.OfferResult{TxHash: "OFFER-HASH", OfferIndex: "OFFER-A"}, nil)

	offerIndex, err := s.ListForBuyer(context.Background(), record, testBuyer)
	require.NoError(t, err)
	assert.Equal(t, "OFFER-A", offerIndex)
}

func TestListForBuyer_CancelsStalePlatformOffers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lc := mocks.NewMockLedgerClient(ctrl)
	s := broker.NewSettler(lc)

	record := &schema.NFTRecord{ID: 101, TokenID: strptr("TOKEN-A")}

	lc.EXPECT().TokenSellOffers(gomock.Any(), "TOKEN-A").Return([]ledger.Offer{
		{Index: "STALE-1", Owner: testPlatformAddress},
		{Index: "OTHER", Owner: "rSOMEONExxxxxxxxxxxxxxxxxxxxxxxxxx"},
		{Index: "STALE-2", Owner: testPlatformAddress},
	}, nil)
	lc.EXPECT().PlatformAddress().Return(testPlatformAddress)
	lc.EXPECT().CancelOffers(gomock.Any(), []string{"STALE-1", "STALE-2"}).Return(nil)
	lc.EXPECT().CreateSellOffer(gomock.Any(), gomock.Any()).
		Return(&ledger.OfferResult{TxHash: "OFFER-HASH", OfferIndex: "OFFER-A"}, nil)

	offerIndex, err := s.ListForBuyer(context.Background(), record, testBuyer)
	require.NoError(t, err)
	assert.Equal(t, "OFFER-A", offerIndex)
}

func TestListForBuyer_StaleOfferCleanupIsBestEffort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lc := mocks.NewMockLedgerClient(ctrl)
	s := broker.NewSettler(lc)

	record := &schema.NFTRecord{ID: 101, TokenID: strptr("TOKEN-A")}

	lc.EXPECT().TokenSellOffers(gomock.Any(), "TOKEN-A").
		Return(nil, errors.New("node unreachable"))
	lc.EXPECT().CreateSellOffer(gomock.Any(), gomock.Any()).
		Return(&ledger.OfferResult{TxHash: "OFFER-HASH", OfferIndex: "OFFER-A"}, nil)

	offerIndex, err := s.ListForBuyer(context.Background(), record, testBuyer)
	require.NoError(t, err)
	assert.Equal(t, "OFFER-A", offerIndex)
}

func TestListForBuyer_RecordWithoutToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lc := mocks.NewMockLedgerClient(ctrl)
	s := broker.NewSettler(lc)

	record := &schema.NFTRecord{ID: 101}

	_, err := s.ListForBuyer(context.Background(), record, testBuyer)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestListForBuyer_OfferCreationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lc := mocks.NewMockLedgerClient(ctrl)
	s := broker.NewSettler(lc)

	record := &schema.NFTRecord{ID: 101, TokenID: strptr("TOKEN-A")}
	boom := errors.New("offer rejected")

	lc.EXPECT().TokenSellOffers(gomock.Any(), "TOKEN-A").Return(nil, nil)
	lc.EXPECT().PlatformAddress().Return(testPlatformAddress).AnyTimes()
	lc.EXPECT().CreateSellOffer(gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := s.ListForBuyer(context.Background(), record, testBuyer)
	assert.ErrorIs(t, err, boom)
}

func TestPayArtist(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lc := mocks.NewMockLedgerClient(ctrl)
	s := broker.NewSettler(lc)

	lc.EXPECT().SendPayment(gomock.Any(), ledger.PaymentParams{
		Destination: "rARTISTxxxxxxxxxxxxxxxxxxxxxxxxxxx",
		Amount:      domain.Drops(9_800_000),
		Memo:        "Sale of Night Signals (2 tracks)",
	}).Return(&ledger.PaymentResult{TxHash: "PAY-HASH"}, nil)

	err := s.PayArtist(context.Background(), "rARTISTxxxxxxxxxxxxxxxxxxxxxxxxxxx",
		9_800_000, "Sale of Night Signals (2 tracks)")
	assert.NoError(t, err)
}

func TestPayArtist_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lc := mocks.NewMockLedgerClient(ctrl)
	s := broker.NewSettler(lc)

	boom := errors.New("payment rejected")
	lc.EXPECT().SendPayment(gomock.Any(), gomock.Any()).Return(nil, boom)

	err := s.PayArtist(context.Background(), "rARTISTxxxxxxxxxxxxxxxxxxxxxxxxxxx", 1, "memo")
	assert.ErrorIs(t, err, boom)
}
