package ledger

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/soundclave/sc-broker/internal/adapter"
	"github.com/soundclave/sc-broker/internal/domain"
	"github.com/soundclave/sc-broker/internal/logger"
)

const (
	// engineResultSuccess is the engine result of an applied transaction
	engineResultSuccess = "tesSUCCESS"

	// tfTransferable allows a minted token to be traded onward
	tfTransferable = 8
	// tfSellToken marks an offer as a sell offer
	tfSellToken = 1

	// accountTokensPageLimit is the page size for account token listings
	accountTokensPageLimit = 400
)

// Config holds the XRPL client configuration
type Config struct {
	// Endpoint is the rippled JSON-RPC URL
	Endpoint string
	// Account is the custodial platform account address
	Account string
	// Secret is the platform account's signing seed
	Secret string
	// FinalityTimeout bounds how long a submission waits for validation
	FinalityTimeout time.Duration
	// PollInterval is the delay between validation polls
	PollInterval time.Duration
}

type rpcClient struct {
	config     Config
	httpClient adapter.HTTPClient
	clock      adapter.Clock
}

// NewClient creates an XRPL JSON-RPC client for the platform account.
// Returns domain.ErrConfigurationError when credentials are absent.
func NewClient(cfg Config, httpClient adapter.HTTPClient, clock adapter.Clock) (Client, error) {
	if cfg.Endpoint == "" || cfg.Account == "" || cfg.Secret == "" {
		return nil, domain.ErrConfigurationError
	}
	if cfg.FinalityTimeout == 0 {
		cfg.FinalityTimeout = 30 * time.Second
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = time.Second
	}
	return &rpcClient{
		config:     cfg,
		httpClient: httpClient,
		clock:      clock,
	}, nil
}

// PlatformAddress returns the custodial platform account address
func (c *rpcClient) PlatformAddress() string {
	return c.config.Account
}

type rpcRequest struct {
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

type rpcEnvelope struct {
	Result json.RawMessage `json:"result"`
}

type rpcStatus struct {
	Status       string `json:"status"`
	Error        string `json:"error"`
	ErrorMessage string `json:"error_message"`
}

// call performs one JSON-RPC request and unmarshals the result payload
func (c *rpcClient) call(ctx context.Context, method string, params interface{}, out interface{}) error {
	body, err := json.Marshal(rpcRequest{Method: method, Params: []interface{}{params}})
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", method, err)
	}

	respBody, err := c.httpClient.Post(ctx, c.config.Endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%s request failed: %w", method, err)
	}

	var envelope rpcEnvelope
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", method, err)
	}

	var status rpcStatus
	if err := json.Unmarshal(envelope.Result, &status); err != nil {
		return fmt.Errorf("failed to decode %s result status: %w", method, err)
	}
	if status.Status == "error" {
		return &RPCError{Method: method, Code: status.Error, Message: status.ErrorMessage}
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("failed to decode %s result: %w", method, err)
		}
	}
	return nil
}

// RPCError is an error reported by the ledger node itself
type RPCError struct {
	Method  string
	Code    string
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("ledger %s error %s: %s", e.Method, e.Code, e.Message)
}

type submitResult struct {
	EngineResult        string `json:"engine_result"`
	EngineResultMessage string `json:"engine_result_message"`
	TxJSON              struct {
		Hash string `json:"hash"`
	} `json:"tx_json"`
}

type txResult struct {
	Validated       bool    `json:"validated"`
	TransactionType string  `json:"TransactionType"`
	Account         string  `json:"Account"`
	Hash            string  `json:"hash"`
	Meta            *TxMeta `json:"meta"`
}

// submitAndWait signs and submits a transaction on the node, then polls
// until the ledger validates it or the finality timeout elapses.
func (c *rpcClient) submitAndWait(ctx context.Context, txJSON map[string]interface{}) (*txResult, error) {
	params := map[string]interface{}{
		"tx_json": txJSON,
		"secret":  c.config.Secret,
	}

	var submitted submitResult
	if err := c.call(ctx, "submit", params, &submitted); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLedgerTransactionFailed, err)
	}
	if submitted.EngineResult != engineResultSuccess {
		return nil, fmt.Errorf("%w: engine result %s (%s)",
			domain.ErrLedgerTransactionFailed, submitted.EngineResult, submitted.EngineResultMessage)
	}

	hash := submitted.TxJSON.Hash
	deadline := c.clock.Now().Add(c.config.FinalityTimeout)
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrLedgerTransactionFailed, err)
		}

		tx, err := c.getTransaction(ctx, hash)
		if err == nil && tx.Validated {
			if tx.Meta != nil && tx.Meta.TransactionResult != engineResultSuccess {
				return nil, fmt.Errorf("%w: validated with result %s",
					domain.ErrLedgerTransactionFailed, tx.Meta.TransactionResult)
			}
			tx.Hash = hash
			return tx, nil
		}
		if err != nil {
			// The node may not know the transaction yet; keep polling
			logger.Debug("transaction not yet validated", zap.String("hash", hash), zap.Error(err))
		}

		if c.clock.Now().After(deadline) {
			return nil, fmt.Errorf("%w: transaction %s not validated within %s",
				domain.ErrLedgerTransactionFailed, hash, c.config.FinalityTimeout)
		}
		c.clock.Sleep(c.config.PollInterval)
	}
}

func (c *rpcClient) getTransaction(ctx context.Context, hash string) (*txResult, error) {
	var tx txResult
	err := c.call(ctx, "tx", map[string]interface{}{
		"transaction": hash,
		"binary":      false,
	}, &tx)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

type accountTokensResult struct {
	AccountNFTs []struct {
		NFTokenID string `json:"NFTokenID"`
		URI       string `json:"URI"`
	} `json:"account_nfts"`
	Marker json.RawMessage `json:"marker"`
}

// AccountTokens lists the tokens currently held by an account
func (c *rpcClient) AccountTokens(ctx context.Context, account string) ([]Token, error) {
	var tokens []Token
	var marker json.RawMessage

	for {
		params := map[string]interface{}{
			"account": account,
			"limit":   accountTokensPageLimit,
		}
		if marker != nil {
			params["marker"] = marker
		}

		var page accountTokensResult
		if err := c.call(ctx, "account_nfts", params, &page); err != nil {
			return nil, err
		}

		for _, raw := range page.AccountNFTs {
			tokens = append(tokens, Token{
				TokenID: raw.NFTokenID,
				URI:     decodeHexString(raw.URI),
			})
		}

		if len(page.Marker) == 0 {
			return tokens, nil
		}
		marker = page.Marker
	}
}

type sellOffersResult struct {
	Offers []struct {
		Index       string          `json:"nft_offer_index"`
		Owner       string          `json:"owner"`
		Destination string          `json:"destination"`
		Amount      json.RawMessage `json:"amount"`
	} `json:"offers"`
}

// TokenSellOffers lists the sell offers attached to a token
func (c *rpcClient) TokenSellOffers(ctx context.Context, tokenID string) ([]Offer, error) {
	var result sellOffersResult
	err := c.call(ctx, "nft_sell_offers", map[string]interface{}{"nft_id": tokenID}, &result)
	if err != nil {
		// A token without offers is reported as a missing ledger object
		var rpcErr *RPCError
		if errors.As(err, &rpcErr) && rpcErr.Code == "objectNotFound" {
			return nil, nil
		}
		return nil, err
	}

	offers := make([]Offer, 0, len(result.Offers))
	for _, raw := range result.Offers {
		offer := Offer{
			Index:       raw.Index,
			Owner:       raw.Owner,
			Destination: raw.Destination,
		}
		// Issued-currency amounts are JSON objects; the broker only deals in drops
		var drops string
		if err := json.Unmarshal(raw.Amount, &drops); err == nil {
			if amount, err := domain.ParseDrops(drops); err == nil {
				offer.Amount = amount
			}
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

// MintToken mints a transferable token and extracts its identifier
func (c *rpcClient) MintToken(ctx context.Context, params MintParams) (*MintResult, error) {
	royaltyPercent := params.RoyaltyPercent
	if royaltyPercent <= 0 {
		royaltyPercent = domain.DefaultRoyaltyPercent
	}

	tx, err := c.submitAndWait(ctx, map[string]interface{}{
		"TransactionType": "NFTokenMint",
		"Account":         c.config.Account,
		"URI":             encodeHexString(params.URI),
		"TransferFee":     royaltyPercent * domain.TransferFeeBasisPointFactor,
		"NFTokenTaxon":    params.Taxon,
		"Flags":           tfTransferable,
	})
	if err != nil {
		return nil, err
	}

	tokenID, err := MintedTokenID(tx.Meta)
	if err != nil {
		return nil, err
	}

	return &MintResult{TxHash: tx.Hash, TokenID: tokenID}, nil
}

// CreateSellOffer lists a token for transfer to a specific buyer
func (c *rpcClient) CreateSellOffer(ctx context.Context, params SellOfferParams) (*OfferResult, error) {
	tx, err := c.submitAndWait(ctx, map[string]interface{}{
		"TransactionType": "NFTokenCreateOffer",
		"Account":         c.config.Account,
		"NFTokenID":       params.TokenID,
		"Amount":          params.Amount.DropsString(),
		"Destination":     params.Destination,
		"Flags":           tfSellToken,
	})
	if err != nil {
		return nil, err
	}

	offerIndex, ok := CreatedOfferIndex(tx.Meta)
	if !ok {
		return nil, fmt.Errorf("%w: no offer object in transaction %s", domain.ErrLedgerTransactionFailed, tx.Hash)
	}

	return &OfferResult{TxHash: tx.Hash, OfferIndex: offerIndex}, nil
}

// CancelOffers removes previously created offers
func (c *rpcClient) CancelOffers(ctx context.Context, offerIndexes []string) error {
	if len(offerIndexes) == 0 {
		return nil
	}

	_, err := c.submitAndWait(ctx, map[string]interface{}{
		"TransactionType": "NFTokenCancelOffer",
		"Account":         c.config.Account,
		"NFTokenOffers":   offerIndexes,
	})
	return err
}

// SendPayment pays drops from the platform account with a memo
func (c *rpcClient) SendPayment(ctx context.Context, params PaymentParams) (*PaymentResult, error) {
	txJSON := map[string]interface{}{
		"TransactionType": "Payment",
		"Account":         c.config.Account,
		"Destination":     params.Destination,
		"Amount":          params.Amount.DropsString(),
	}
	if params.Memo != "" {
		txJSON["Memos"] = []map[string]interface{}{
			{
				"Memo": map[string]interface{}{
					"MemoData": encodeHexString(params.Memo),
				},
			},
		}
	}

	tx, err := c.submitAndWait(ctx, txJSON)
	if err != nil {
		return nil, err
	}
	return &PaymentResult{TxHash: tx.Hash}, nil
}

// VerifyTokenTransfer checks that a validated transaction transferred the
// given token to the given account
func (c *rpcClient) VerifyTokenTransfer(ctx context.Context, txHash, tokenID, to string) (bool, error) {
	tx, err := c.getTransaction(ctx, txHash)
	if err != nil {
		return false, err
	}
	if !tx.Validated || tx.Meta == nil || tx.Meta.TransactionResult != engineResultSuccess {
		return false, nil
	}
	if tx.TransactionType != "NFTokenAcceptOffer" || !strings.EqualFold(tx.Account, to) {
		return false, nil
	}
	return TokenReceivedBy(tx.Meta, tokenID), nil
}

// encodeHexString hex-encodes a string the way the ledger stores URIs and memos
func encodeHexString(s string) string {
	return strings.ToUpper(hex.EncodeToString([]byte(s)))
}

// decodeHexString decodes a hex field back to text, returning the input
// unchanged when it is not valid hex
func decodeHexString(s string) string {
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return s
	}
	return string(decoded)
}
