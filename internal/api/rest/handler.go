package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/soundclave/sc-broker/internal/api/shared/dto"
	apierrors "github.com/soundclave/sc-broker/internal/api/shared/errors"
	"github.com/soundclave/sc-broker/internal/broker"
	"github.com/soundclave/sc-broker/internal/domain"
	"github.com/soundclave/sc-broker/internal/royalty"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetAvailability reports whether a release's tracks can all be bought
	// GET /api/v1/releases/:id/availability
	GetAvailability(c *gin.Context)

	// CreatePurchase buys every track of a release for the buyer
	// POST /api/v1/purchases
	CreatePurchase(c *gin.Context)

	// ConfirmPurchase records sales after the buyer accepted the offers
	// POST /api/v1/purchases/confirm
	ConfirmPurchase(c *gin.Context)

	// GetSecondarySales lists classified resales
	// GET /api/v1/royalties/secondary-sales
	GetSecondarySales(c *gin.Context)

	// GetMintAudit counts sales by origin and mint regime
	// GET /api/v1/royalties/mint-audit
	GetMintAudit(c *gin.Context)

	// GetRoyaltyLiability aggregates what each artist is owed
	// GET /api/v1/royalties/liability
	GetRoyaltyLiability(c *gin.Context)

	// GetRoyaltySummary returns the global royalty rollup
	// GET /api/v1/royalties/summary
	GetRoyaltySummary(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	oracle       broker.Oracle
	orchestrator broker.Orchestrator
	recorder     broker.Recorder
	analyzer     royalty.Analyzer
}

// NewHandler creates a new REST API handler
func NewHandler(oracle broker.Oracle, orch broker.Orchestrator, rec broker.Recorder, analyzer royalty.Analyzer) Handler {
	return &handler{
		oracle:       oracle,
		orchestrator: orch,
		recorder:     rec,
		analyzer:     analyzer,
	}
}

// GetAvailability reports whether a release's tracks can all be bought
func (h *handler) GetAvailability(c *gin.Context) {
	releaseID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid release ID", c.Param("id"))
		return
	}

	report, err := h.oracle.CheckAvailability(c.Request.Context(), releaseID)
	if err != nil {
		if errors.Is(err, domain.ErrReleaseNotFound) {
			respondNotFound(c, "Release not found")
			return
		}
		respondInternalError(c, err, "Failed to check availability")
		return
	}

	c.JSON(http.StatusOK, report)
}

// CreatePurchase buys every track of a release for the buyer
func (h *handler) CreatePurchase(c *gin.Context) {
	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.orchestrator.Purchase(c.Request.Context(), req.ReleaseID, req.BuyerAddress)
	if err != nil {
		var purchaseErr *broker.PurchaseError
		switch {
		case errors.Is(err, domain.ErrReleaseNotFound):
			respondNotFound(c, "Release not found")
		case errors.Is(err, domain.ErrBuyerBlocked):
			respondForbidden(c, "Buyer account is not allowed to purchase")
		case errors.Is(err, domain.ErrUnavailable), errors.Is(err, domain.ErrSoldOut):
			respondConflict(c, "Release is not available for purchase", err.Error())
		case errors.As(err, &purchaseErr):
			// Compensation already ran; the buyer was refunded
			c.JSON(http.StatusConflict, dto.PurchaseFailureResponse{
				APIError: apierrors.NewConflictError("Purchase aborted", purchaseErr.Error()),
				Refunded: true,
			})
		default:
			respondInternalError(c, err, "Failed to execute purchase")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.PurchaseResponse{
		Success:      true,
		AttemptID:    result.AttemptID,
		OfferIndexes: result.OfferIndexes,
		PendingSales: result.PendingSales,
		TrackCount:   result.TrackCount,
	})
}

// ConfirmPurchase records sales after the buyer accepted the offers
func (h *handler) ConfirmPurchase(c *gin.Context) {
	var req dto.ConfirmSalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if len(req.PendingSales) != len(req.AcceptTxHashes) {
		respondValidationError(c, "pending_sales and accept_tx_hashes must have the same length")
		return
	}

	err := h.recorder.ConfirmSales(c.Request.Context(), req.PendingSales, req.AcceptTxHashes)
	if err != nil {
		if errors.Is(err, domain.ErrConfirmationMismatch) {
			respondConflict(c, "Acceptance transaction does not match the reported sale", err.Error())
			return
		}
		respondInternalError(c, err, "Failed to record sales")
		return
	}

	c.JSON(http.StatusOK, dto.ConfirmSalesResponse{Success: true, Recorded: len(req.PendingSales)})
}

// GetSecondarySales lists classified resales
func (h *handler) GetSecondarySales(c *gin.Context) {
	sales, err := h.analyzer.SecondarySales(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to analyze secondary sales")
		return
	}
	c.JSON(http.StatusOK, gin.H{"secondary_sales": sales})
}

// GetMintAudit counts sales by origin and mint regime
func (h *handler) GetMintAudit(c *gin.Context) {
	report, err := h.analyzer.MintAudit(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to run mint audit")
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetRoyaltyLiability aggregates what each artist is owed
func (h *handler) GetRoyaltyLiability(c *gin.Context) {
	report, err := h.analyzer.RoyaltyLiability(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to compute royalty liability")
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetRoyaltySummary returns the global royalty rollup
func (h *handler) GetRoyaltySummary(c *gin.Context) {
	summary, err := h.analyzer.Summary(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to compute royalty summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "sc-broker-api",
	})
}
