package royalty_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundclave/sc-broker/internal/domain"
	"github.com/soundclave/sc-broker/internal/logger"
	"github.com/soundclave/sc-broker/internal/mocks"
	"github.com/soundclave/sc-broker/internal/royalty"
	"github.com/soundclave/sc-broker/internal/store/schema"
)

const (
	platformAddress = "rPLATFORMxxxxxxxxxxxxxxxxxxxxxxxxx"
	artistAlpha     = "rALPHAxxxxxxxxxxxxxxxxxxxxxxxxxxxx"
	artistBeta      = "rBETAxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"
	collectorOne    = "rCOLLECTOR1xxxxxxxxxxxxxxxxxxxxxxx"
	collectorTwo    = "rCOLLECTOR2xxxxxxxxxxxxxxxxxxxxxxx"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newAnalyzer(st *mocks.MockStore, pageSize int) royalty.Analyzer {
	return royalty.NewAnalyzer(royalty.Config{
		PlatformAddress: platformAddress,
		PageSize:        pageSize,
		WorkerPoolSize:  2,
	}, st)
}

// saleRow builds a sale joined with its release, the shape the scan reads
func saleRow(id uint64, seller string, price domain.Drops, release schema.Release) schema.Sale {
	return schema.Sale{
		ID:            id,
		ReleaseID:     release.ID,
		TrackID:       id * 10,
		BuyerAddress:  collectorTwo,
		SellerAddress: seller,
		Price:         price,
		Release:       release,
	}
}

var (
	lazyAlpha = schema.Release{
		ID:             1,
		ArtistAddress:  artistAlpha,
		ArtistName:     "Alpha",
		MintFeePaid:    true,
		RoyaltyPercent: 10,
	}
	lazyAlphaDefaultRoyalty = schema.Release{
		ID:            2,
		ArtistAddress: artistAlpha,
		ArtistName:    "Alpha",
		MintFeePaid:   true,
	}
	legacyBeta = schema.Release{
		ID:            3,
		ArtistAddress: artistBeta,
		ArtistName:    "Beta",
		IsMinted:      true,
	}
)

func TestSecondarySales_Classification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	a := newAnalyzer(st, 500)

	sales := []schema.Sale{
		// Primary: platform sold on the artist's behalf
		saleRow(1, platformAddress, 5*domain.DropsPerXRP, lazyAlpha),
		// Primary: the artist sold directly
		saleRow(2, artistBeta, 5*domain.DropsPerXRP, legacyBeta),
		// Secondary on a lazy release with an explicit royalty
		saleRow(3, collectorOne, 10*domain.DropsPerXRP, lazyAlpha),
		// Secondary on a lazy release falling back to the default royalty
		saleRow(4, collectorOne, 10*domain.DropsPerXRP, lazyAlphaDefaultRoyalty),
		// Secondary on a legacy release: the ledger paid the artist already
		saleRow(5, collectorOne, 8*domain.DropsPerXRP, legacyBeta),
	}

	st.EXPECT().ListSalesWithReleases(gomock.Any(), 500, 0).Return(sales, nil)

	secondary, err := a.SecondarySales(context.Background())
	require.NoError(t, err)
	require.Len(t, secondary, 3)

	lazyExplicit := secondary[0]
	assert.Equal(t, uint64(3), lazyExplicit.SaleID)
	assert.Equal(t, domain.RegimeLazy, lazyExplicit.Regime)
	assert.Equal(t, royalty.RecipientPlatformWallet, lazyExplicit.RoyaltyRecipient)
	assert.Equal(t, domain.Drops(1_000_000), lazyExplicit.RoyaltyOwedToArtist)
	assert.Equal(t, artistAlpha, lazyExplicit.ArtistAddress)
	assert.Equal(t, "Alpha", lazyExplicit.ArtistName)
	assert.Equal(t, collectorOne, lazyExplicit.SellerAddress)

	lazyDefault := secondary[1]
	assert.Equal(t, domain.Drops(500_000), lazyDefault.RoyaltyOwedToArtist)

	legacy := secondary[2]
	assert.Equal(t, domain.RegimeLegacy, legacy.Regime)
	assert.Equal(t, artistBeta, legacy.RoyaltyRecipient)
	assert.Zero(t, legacy.RoyaltyOwedToArtist)
}

func TestSecondarySales_Paging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	a := newAnalyzer(st, 2)

	pageOne := []schema.Sale{
		saleRow(1, collectorOne, domain.DropsPerXRP, lazyAlpha),
		saleRow(2, platformAddress, domain.DropsPerXRP, lazyAlpha),
	}
	pageTwo := []schema.Sale{
		saleRow(3, collectorOne, domain.DropsPerXRP, legacyBeta),
	}

	gomock.InOrder(
		st.EXPECT().ListSalesWithReleases(gomock.Any(), 2, 0).Return(pageOne, nil),
		st.EXPECT().ListSalesWithReleases(gomock.Any(), 2, 2).Return(pageTwo, nil),
	)

	secondary, err := a.SecondarySales(context.Background())
	require.NoError(t, err)
	require.Len(t, secondary, 2)
	// Page order is preserved in the merged output
	assert.Equal(t, uint64(1), secondary[0].SaleID)
	assert.Equal(t, uint64(3), secondary[1].SaleID)
}

func TestSecondarySales_FullLastPageStopsOnEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	a := newAnalyzer(st, 2)

	page := []schema.Sale{
		saleRow(1, collectorOne, domain.DropsPerXRP, lazyAlpha),
		saleRow(2, collectorOne, domain.DropsPerXRP, lazyAlpha),
	}

	gomock.InOrder(
		st.EXPECT().ListSalesWithReleases(gomock.Any(), 2, 0).Return(page, nil),
		st.EXPECT().ListSalesWithReleases(gomock.Any(), 2, 2).Return(nil, nil),
	)

	secondary, err := a.SecondarySales(context.Background())
	require.NoError(t, err)
	assert.Len(t, secondary, 2)
}

func TestSecondarySales_ScanError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	a := newAnalyzer(st, 500)

	boom := errors.New("query timeout")
	st.EXPECT().ListSalesWithReleases(gomock.Any(), 500, 0).Return(nil, boom)

	_, err := a.SecondarySales(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestMintAudit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	a := newAnalyzer(st, 500)

	sales := []schema.Sale{
		saleRow(1, platformAddress, 5*domain.DropsPerXRP, lazyAlpha),
		saleRow(2, artistBeta, 5*domain.DropsPerXRP, legacyBeta),
		saleRow(3, collectorOne, 10*domain.DropsPerXRP, lazyAlpha),
		saleRow(4, collectorOne, 8*domain.DropsPerXRP, legacyBeta),
	}
	st.EXPECT().ListSalesWithReleases(gomock.Any(), 500, 0).Return(sales, nil)

	report, err := a.MintAudit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, report.TotalSales)
	assert.Equal(t, 2, report.PrimarySales)
	assert.Equal(t, 2, report.SecondarySales)
	assert.Equal(t, 1, report.LazySales)
	assert.Equal(t, 1, report.LegacySales)
}

func TestRoyaltyLiability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	a := newAnalyzer(st, 500)

	lazyBeta := schema.Release{
		ID:             4,
		ArtistAddress:  artistBeta,
		ArtistName:     "Beta",
		MintFeePaid:    true,
		RoyaltyPercent: 5,
	}

	sales := []schema.Sale{
		saleRow(1, collectorOne, 10*domain.DropsPerXRP, lazyAlpha),
		saleRow(2, collectorTwo, 20*domain.DropsPerXRP, lazyAlpha),
		saleRow(3, collectorOne, 10*domain.DropsPerXRP, lazyBeta),
		// Legacy resales owe nothing and never appear per artist
		saleRow(4, collectorOne, 50*domain.DropsPerXRP, legacyBeta),
	}
	st.EXPECT().ListSalesWithReleases(gomock.Any(), 500, 0).Return(sales, nil)

	report, err := a.RoyaltyLiability(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, report.SecondarySaleCount)
	assert.Equal(t, domain.Drops(3_500_000), report.TotalOwed)
	require.Len(t, report.Artists, 2)

	// Sorted by artist address
	assert.Equal(t, artistAlpha, report.Artists[0].ArtistAddress)
	assert.Equal(t, domain.Drops(3_000_000), report.Artists[0].TotalOwed)
	assert.Equal(t, 2, report.Artists[0].SaleCount)
	assert.Equal(t, artistBeta, report.Artists[1].ArtistAddress)
	assert.Equal(t, domain.Drops(500_000), report.Artists[1].TotalOwed)
	assert.Equal(t, 1, report.Artists[1].SaleCount)
}

func TestSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	a := newAnalyzer(st, 500)

	sales := []schema.Sale{
		saleRow(1, platformAddress, 5*domain.DropsPerXRP, lazyAlpha),
		saleRow(2, collectorOne, 10*domain.DropsPerXRP, lazyAlpha),
		saleRow(3, collectorOne, 8*domain.DropsPerXRP, legacyBeta),
	}
	st.EXPECT().ListSalesWithReleases(gomock.Any(), 500, 0).Return(sales, nil)

	report, err := a.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, report.TotalSales)
	assert.Equal(t, 23*domain.DropsPerXRP, report.TotalVolume)
	assert.Equal(t, 2, report.SecondarySales)
	assert.Equal(t, 1, report.LazySecondarySales)
	assert.Equal(t, 1, report.LegacySecondarySales)
	assert.Equal(t, domain.Drops(1_000_000), report.TotalOwedToArtists)
	// Only the lazy resale leaves an artist owed
	assert.Equal(t, 1, report.ArtistsOwed)
}

func TestSummary_NoSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	a := newAnalyzer(st, 500)

	st.EXPECT().ListSalesWithReleases(gomock.Any(), 500, 0).Return(nil, nil)

	report, err := a.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.TotalSales)
	assert.Zero(t, report.TotalVolume)
	assert.Zero(t, report.ArtistsOwed)
}
