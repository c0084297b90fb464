// Package royalty classifies historical sales and computes resale royalties
// owed to artists. Lazy-minted releases route on-ledger royalties to the
// platform account (the platform is the on-chain issuer), so the artist's
// entitlement accrues as a liability; legacy-minted releases pay the artist
// directly and owe nothing.
package royalty

import (
	"context"
	"fmt"
	"sort"

	"github.com/alitto/pond/v2"

	"github.com/soundclave/sc-broker/internal/domain"
	"github.com/soundclave/sc-broker/internal/store"
	"github.com/soundclave/sc-broker/internal/store/schema"
)

// RecipientPlatformWallet tags royalties routed to the platform account
const RecipientPlatformWallet = "platform_wallet"

// SecondarySale is one resale classified by mint regime
type SecondarySale struct {
	SaleID              uint64            `json:"sale_id"`
	ReleaseID           uint64            `json:"release_id"`
	TrackID             uint64            `json:"track_id"`
	ArtistAddress       string            `json:"artist_address"`
	ArtistName          string            `json:"artist_name,omitempty"`
	SellerAddress       string            `json:"seller_address"`
	BuyerAddress        string            `json:"buyer_address"`
	Price               domain.Drops      `json:"price"`
	Regime              domain.MintRegime `json:"regime"`
	RoyaltyRecipient    string            `json:"royalty_recipient"`
	RoyaltyOwedToArtist domain.Drops      `json:"royalty_owed_to_artist"`
}

// ArtistLiability aggregates what one artist is owed
type ArtistLiability struct {
	ArtistAddress string       `json:"artist_address"`
	ArtistName    string       `json:"artist_name,omitempty"`
	TotalOwed     domain.Drops `json:"total_owed"`
	SaleCount     int          `json:"sale_count"`
}

// LiabilityReport lists unpaid artist entitlements
type LiabilityReport struct {
	Artists            []ArtistLiability `json:"artists"`
	TotalOwed          domain.Drops      `json:"total_owed"`
	SecondarySaleCount int               `json:"secondary_sale_count"`
}

// MintAuditReport counts sales by origin and regime
type MintAuditReport struct {
	TotalSales     int `json:"total_sales"`
	PrimarySales   int `json:"primary_sales"`
	SecondarySales int `json:"secondary_sales"`
	LazySales      int `json:"lazy_sales"`
	LegacySales    int `json:"legacy_sales"`
}

// SummaryReport is the global rollup
type SummaryReport struct {
	TotalSales           int          `json:"total_sales"`
	TotalVolume          domain.Drops `json:"total_volume"`
	SecondarySales       int          `json:"secondary_sales"`
	TotalOwedToArtists   domain.Drops `json:"total_owed_to_artists"`
	ArtistsOwed          int          `json:"artists_owed"`
	LazySecondarySales   int          `json:"lazy_secondary_sales"`
	LegacySecondarySales int          `json:"legacy_secondary_sales"`
}

// Analyzer computes royalty aggregates over persisted sales. Read-only.
//
//go:generate mockgen -source=analyzer.go -destination=../mocks/analyzer.go -package=mocks -mock_names=Analyzer=MockAnalyzer
type Analyzer interface {
	// SecondarySales lists every resale with its classification
	SecondarySales(ctx context.Context) ([]SecondarySale, error)
	// MintAudit counts sales by origin and regime
	MintAudit(ctx context.Context) (*MintAuditReport, error)
	// RoyaltyLiability aggregates what each artist is owed
	RoyaltyLiability(ctx context.Context) (*LiabilityReport, error)
	// Summary returns the global rollup
	Summary(ctx context.Context) (*SummaryReport, error)
}

// Config holds analyzer configuration
type Config struct {
	// PlatformAddress is the custodial platform account
	PlatformAddress string
	// PageSize is the number of sales fetched per datastore page
	PageSize int
	// WorkerPoolSize bounds the concurrent page classification
	WorkerPoolSize int
}

type analyzer struct {
	config Config
	store  store.Store
	pool   pond.Pool
}

// NewAnalyzer creates a royalty liability analyzer
func NewAnalyzer(cfg Config, st store.Store) Analyzer {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 500
	}
	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = 4
	}
	return &analyzer{
		config: cfg,
		store:  st,
		pool:   pond.NewPool(cfg.WorkerPoolSize),
	}
}

// pageStats are the partial aggregates of one page of sales
type pageStats struct {
	secondary   []SecondarySale
	totalSales  int
	totalVolume domain.Drops
}

// scan pages through all sales and classifies each page on the worker pool
func (a *analyzer) scan(ctx context.Context) (*pageStats, error) {
	var pages [][]schema.Sale
	for offset := 0; ; offset += a.config.PageSize {
		page, err := a.store.ListSalesWithReleases(ctx, a.config.PageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sales at offset %d: %w", offset, err)
		}
		if len(page) == 0 {
			break
		}
		pages = append(pages, page)
		if len(page) < a.config.PageSize {
			break
		}
	}

	results := make([]*pageStats, len(pages))
	group := a.pool.NewGroup()
	for i, page := range pages {
		group.Submit(func() {
			results[i] = a.classifyPage(page)
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	// Page order keeps the merged output deterministic
	merged := &pageStats{}
	for _, stats := range results {
		merged.secondary = append(merged.secondary, stats.secondary...)
		merged.totalSales += stats.totalSales
		merged.totalVolume += stats.totalVolume
	}
	return merged, nil
}

func (a *analyzer) classifyPage(page []schema.Sale) *pageStats {
	stats := &pageStats{totalSales: len(page)}
	for i := range page {
		sale := &page[i]
		stats.totalVolume += sale.Price
		if classified := a.classify(sale); classified != nil {
			stats.secondary = append(stats.secondary, *classified)
		}
	}
	return stats
}

// classify returns the resale classification, or nil for a primary sale
func (a *analyzer) classify(sale *schema.Sale) *SecondarySale {
	release := &sale.Release
	if sale.SellerAddress == release.ArtistAddress || sale.SellerAddress == a.config.PlatformAddress {
		return nil
	}

	regime := release.Regime()
	classified := &SecondarySale{
		SaleID:        sale.ID,
		ReleaseID:     sale.ReleaseID,
		TrackID:       sale.TrackID,
		ArtistAddress: release.ArtistAddress,
		ArtistName:    release.ArtistName,
		SellerAddress: sale.SellerAddress,
		BuyerAddress:  sale.BuyerAddress,
		Price:         sale.Price,
		Regime:        regime,
	}

	if regime == domain.RegimeLazy {
		// The platform is the on-chain issuer, so the ledger already routed
		// the royalty there; the artist's share is owed but unpaid
		classified.RoyaltyRecipient = RecipientPlatformWallet
		classified.RoyaltyOwedToArtist = domain.RoyaltyOwed(sale.Price, release.EffectiveRoyaltyPercent())
	} else {
		classified.RoyaltyRecipient = release.ArtistAddress
		classified.RoyaltyOwedToArtist = 0
	}
	return classified
}

// SecondarySales lists every resale with its classification
func (a *analyzer) SecondarySales(ctx context.Context) ([]SecondarySale, error) {
	stats, err := a.scan(ctx)
	if err != nil {
		return nil, err
	}
	return stats.secondary, nil
}

// MintAudit counts sales by origin and regime
func (a *analyzer) MintAudit(ctx context.Context) (*MintAuditReport, error) {
	stats, err := a.scan(ctx)
	if err != nil {
		return nil, err
	}

	report := &MintAuditReport{
		TotalSales:     stats.totalSales,
		SecondarySales: len(stats.secondary),
		PrimarySales:   stats.totalSales - len(stats.secondary),
	}
	for _, sale := range stats.secondary {
		if sale.Regime == domain.RegimeLazy {
			report.LazySales++
		} else {
			report.LegacySales++
		}
	}
	return report, nil
}

// RoyaltyLiability aggregates what each artist is owed
func (a *analyzer) RoyaltyLiability(ctx context.Context) (*LiabilityReport, error) {
	stats, err := a.scan(ctx)
	if err != nil {
		return nil, err
	}

	byArtist := make(map[string]*ArtistLiability)
	report := &LiabilityReport{SecondarySaleCount: len(stats.secondary)}
	for _, sale := range stats.secondary {
		if sale.RoyaltyOwedToArtist == 0 {
			continue
		}
		liability, ok := byArtist[sale.ArtistAddress]
		if !ok {
			liability = &ArtistLiability{
				ArtistAddress: sale.ArtistAddress,
				ArtistName:    sale.ArtistName,
			}
			byArtist[sale.ArtistAddress] = liability
		}
		liability.TotalOwed += sale.RoyaltyOwedToArtist
		liability.SaleCount++
		report.TotalOwed += sale.RoyaltyOwedToArtist
	}

	for _, liability := range byArtist {
		report.Artists = append(report.Artists, *liability)
	}
	sort.Slice(report.Artists, func(i, j int) bool {
		return report.Artists[i].ArtistAddress < report.Artists[j].ArtistAddress
	})
	return report, nil
}

// Summary returns the global rollup
func (a *analyzer) Summary(ctx context.Context) (*SummaryReport, error) {
	stats, err := a.scan(ctx)
	if err != nil {
		return nil, err
	}

	report := &SummaryReport{
		TotalSales:     stats.totalSales,
		TotalVolume:    stats.totalVolume,
		SecondarySales: len(stats.secondary),
	}
	artists := make(map[string]bool)
	for _, sale := range stats.secondary {
		if sale.Regime == domain.RegimeLazy {
			report.LazySecondarySales++
		} else {
			report.LegacySecondarySales++
		}
		if sale.RoyaltyOwedToArtist > 0 {
			report.TotalOwedToArtists += sale.RoyaltyOwedToArtist
			artists[sale.ArtistAddress] = true
		}
	}
	report.ArtistsOwed = len(artists)
	return report, nil
}
