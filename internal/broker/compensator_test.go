package broker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/soundclave/sc-broker/internal/broker"
	"github.com/soundclave/sc-broker/internal/domain"
	"github.com/soundclave/sc-broker/internal/ledger"
	"github.com/soundclave/sc-broker/internal/mocks"
)

func TestCompensate_ReleasesAndRefunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	lc := mocks.NewMockLedgerClient(ctrl)
	c := broker.NewCompensator(st, lc)

	st.EXPECT().ReleaseRecord(gomock.Any(), uint64(101)).Return(nil)
	st.EXPECT().ReleaseRecord(gomock.Any(), uint64(102)).Return(nil)
	lc.EXPECT().SendPayment(gomock.Any(), ledger.PaymentParams{
		Destination: testBuyer,
		Amount:      10 * domain.DropsPerXRP,
		Memo:        "Refund: mint rejected",
	}).Return(&ledger.PaymentResult{TxHash: "REFUND-HASH"}, nil)
	st.EXPECT().MarkAttemptCompensated(gomock.Any(), "a1", "mint rejected", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, refundTxHash *string) error {
			if assert.NotNil(t, refundTxHash) {
				assert.Equal(t, "REFUND-HASH", *refundTxHash)
			}
			return nil
		})

	c.Compensate(context.Background(), "a1", testBuyer, 10*domain.DropsPerXRP,
		[]uint64{101, 102}, "mint rejected")
}

func TestCompensate_ZeroAmountSkipsRefund(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	lc := mocks.NewMockLedgerClient(ctrl)
	c := broker.NewCompensator(st, lc)

	st.EXPECT().MarkAttemptCompensated(gomock.Any(), "a1", "nothing collected", gomock.Nil()).Return(nil)

	c.Compensate(context.Background(), "a1", testBuyer, 0, nil, "nothing collected")
}

func TestCompensate_RefundFailureStillMarksCompensated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	lc := mocks.NewMockLedgerClient(ctrl)
	c := broker.NewCompensator(st, lc)

	st.EXPECT().ReleaseRecord(gomock.Any(), uint64(101)).Return(nil)
	lc.EXPECT().SendPayment(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("payment rejected"))
	// No refund hash when the payment failed; the reason is kept for
	// operator follow-up
	st.EXPECT().MarkAttemptCompensated(gomock.Any(), "a1", "offer rejected", gomock.Nil()).Return(nil)

	c.Compensate(context.Background(), "a1", testBuyer, 5*domain.DropsPerXRP,
		[]uint64{101}, "offer rejected")
}

func TestCompensate_ReleaseFailureDoesNotBlockRefund(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	lc := mocks.NewMockLedgerClient(ctrl)
	c := broker.NewCompensator(st, lc)

	st.EXPECT().ReleaseRecord(gomock.Any(), uint64(101)).Return(errors.New("row locked"))
	lc.EXPECT().SendPayment(gomock.Any(), gomock.Any()).
		Return(&ledger.PaymentResult{TxHash: "REFUND-HASH"}, nil)
	st.EXPECT().MarkAttemptCompensated(gomock.Any(), "a1", "mint rejected", gomock.Any()).Return(nil)

	c.Compensate(context.Background(), "a1", testBuyer, 5*domain.DropsPerXRP,
		[]uint64{101}, "mint rejected")
}

func TestReleaseReservations_ReturnsFirstErrorButReleasesAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	lc := mocks.NewMockLedgerClient(ctrl)
	c := broker.NewCompensator(st, lc)

	first := errors.New("first failure")
	gomock.InOrder(
		st.EXPECT().ReleaseRecord(gomock.Any(), uint64(101)).Return(first),
		st.EXPECT().ReleaseRecord(gomock.Any(), uint64(102)).Return(errors.New("second failure")),
		st.EXPECT().ReleaseRecord(gomock.Any(), uint64(103)).Return(nil),
	)

	err := c.ReleaseReservations(context.Background(), []uint64{101, 102, 103})
	assert.ErrorIs(t, err, first)
}

func TestReleaseReservations_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	lc := mocks.NewMockLedgerClient(ctrl)
	c := broker.NewCompensator(st, lc)

	assert.NoError(t, c.ReleaseReservations(context.Background(), nil))
}
