package ledger_test

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundclave/sc-broker/internal/domain"
	"github.com/soundclave/sc-broker/internal/ledger"
	"github.com/soundclave/sc-broker/internal/mocks"
)

const (
	testEndpoint = "https://rippled.test:51234"
	testAccount  = "rPLATFORMxxxxxxxxxxxxxxxxxxxxxxxxx"
	testSecret   = "shhSECRETxxxxxxxxxxxxxxxxxxxx"
)

func testConfig() ledger.Config {
	return ledger.Config{
		Endpoint:        testEndpoint,
		Account:         testAccount,
		Secret:          testSecret,
		FinalityTimeout: 30 * time.Second,
		PollInterval:    time.Second,
	}
}

func hexUpper(s string) string {
	return strings.ToUpper(hex.EncodeToString([]byte(s)))
}

// rpcCall is one captured JSON-RPC request
type rpcCall struct {
	Method string
	Params map[string]interface{}
}

// rippledStub feeds canned result payloads to the client in call order and
// records every request it saw
type rippledStub struct {
	t        *testing.T
	results  []string
	requests []rpcCall
}

func (s *rippledStub) post(_ context.Context, _ string, _ string, body io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(body)
	require.NoError(s.t, err)

	var request struct {
		Method string                   `json:"method"`
		Params []map[string]interface{} `json:"params"`
	}
	require.NoError(s.t, json.Unmarshal(raw, &request))
	require.Len(s.t, request.Params, 1)
	s.requests = append(s.requests, rpcCall{Method: request.Method, Params: request.Params[0]})

	require.NotEmpty(s.t, s.results, "unexpected %s call", request.Method)
	result := s.results[0]
	s.results = s.results[1:]
	return []byte(`{"result":` + result + `}`), nil
}

func setupClient(t *testing.T, ctrl *gomock.Controller, results ...string) (ledger.Client, *rippledStub, *mocks.MockClock) {
	stub := &rippledStub{t: t, results: results}
	httpClient := mocks.NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Post(gomock.Any(), testEndpoint, "application/json", gomock.Any()).
		DoAndReturn(stub.post).
		AnyTimes()

	clock := mocks.NewMockClock(ctrl)
	client, err := ledger.NewClient(testConfig(), httpClient, clock)
	require.NoError(t, err)
	return client, stub, clock
}

func TestNewClient_MissingCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	clock := mocks.NewMockClock(ctrl)

	for _, cfg := range []ledger.Config{
		{Account: testAccount, Secret: testSecret},
		{Endpoint: testEndpoint, Secret: testSecret},
		{Endpoint: testEndpoint, Account: testAccount},
	} {
		_, err := ledger.NewClient(cfg, httpClient, clock)
		assert.ErrorIs(t, err, domain.ErrConfigurationError)
	}
}

func TestPlatformAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, _, _ := setupClient(t, ctrl)
	assert.Equal(t, testAccount, client.PlatformAddress())
}

func TestAccountTokens_Paging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, stub, _ := setupClient(t, ctrl,
		`{"status":"success","account_nfts":[{"NFTokenID":"TOKEN-A","URI":"`+hexUpper("ipfs://QmOne")+`"}],"marker":"m1"}`,
		`{"status":"success","account_nfts":[{"NFTokenID":"TOKEN-B","URI":"`+hexUpper("ipfs://QmTwo")+`"}]}`,
	)

	tokens, err := client.AccountTokens(context.Background(), testAccount)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, ledger.Token{TokenID: "TOKEN-A", URI: "ipfs://QmOne"}, tokens[0])
	assert.Equal(t, ledger.Token{TokenID: "TOKEN-B", URI: "ipfs://QmTwo"}, tokens[1])

	require.Len(t, stub.requests, 2)
	assert.Equal(t, "account_nfts", stub.requests[0].Method)
	assert.Equal(t, testAccount, stub.requests[0].Params["account"])
	assert.Nil(t, stub.requests[0].Params["marker"])
	assert.Equal(t, "m1", stub.requests[1].Params["marker"])
}

func TestTokenSellOffers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, stub, _ := setupClient(t, ctrl,
		`{"status":"success","offers":[
			{"nft_offer_index":"OFFER-1","owner":"`+testAccount+`","destination":"rBUYER","amount":"5000000"},
			{"nft_offer_index":"OFFER-2","owner":"rOTHER","amount":{"currency":"USD","value":"5"}}
		]}`,
	)

	offers, err := client.TokenSellOffers(context.Background(), "TOKEN-A")
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, "OFFER-1", offers[0].Index)
	assert.Equal(t, testAccount, offers[0].Owner)
	assert.Equal(t, "rBUYER", offers[0].Destination)
	assert.Equal(t, 5*domain.DropsPerXRP, offers[0].Amount)
	// Issued-currency amounts do not parse as drops and stay zero
	assert.Zero(t, offers[1].Amount)

	require.Len(t, stub.requests, 1)
	assert.Equal(t, "nft_sell_offers", stub.requests[0].Method)
	assert.Equal(t, "TOKEN-A", stub.requests[0].Params["nft_id"])
}

func TestTokenSellOffers_NoOffersObject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, _, _ := setupClient(t, ctrl,
		`{"status":"error","error":"objectNotFound","error_message":"The requested object was not found."}`,
	)

	offers, err := client.TokenSellOffers(context.Background(), "TOKEN-A")
	assert.NoError(t, err)
	assert.Nil(t, offers)
}

func TestTokenSellOffers_RPCError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, _, _ := setupClient(t, ctrl,
		`{"status":"error","error":"invalidParams","error_message":"Invalid parameters."}`,
	)

	_, err := client.TokenSellOffers(context.Background(), "TOKEN-A")
	require.Error(t, err)

	var rpcErr *ledger.RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, "nft_sell_offers", rpcErr.Method)
	assert.Equal(t, "invalidParams", rpcErr.Code)
	assert.Contains(t, rpcErr.Error(), "invalidParams")
}

func mintMetaJSON(tokenID string) string {
	return `{"TransactionResult":"tesSUCCESS","AffectedNodes":[
		{"CreatedNode":{"LedgerEntryType":"NFTokenPage","NewFields":{"NFTokens":[{"NFToken":{"NFTokenID":"` + tokenID + `"}}]}}}
	]}`
}

func TestMintToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, stub, clock := setupClient(t, ctrl,
		`{"status":"success","engine_result":"tesSUCCESS","engine_result_message":"ok","tx_json":{"hash":"MINT-HASH"}}`,
		`{"status":"success","validated":true,"TransactionType":"NFTokenMint","Account":"`+testAccount+`","meta":`+mintMetaJSON("TOKEN-NEW")+`}`,
	)
	clock.EXPECT().Now().Return(time.Now()).AnyTimes()

	result, err := client.MintToken(context.Background(), ledger.MintParams{
		URI:            "ipfs://QmOpener",
		RoyaltyPercent: 7,
		Taxon:          42,
	})
	require.NoError(t, err)
	assert.Equal(t, "MINT-HASH", result.TxHash)
	assert.Equal(t, "TOKEN-NEW", result.TokenID)

	require.Len(t, stub.requests, 2)
	submit := stub.requests[0]
	assert.Equal(t, "submit", submit.Method)
	assert.Equal(t, testSecret, submit.Params["secret"])

	txJSON, ok := submit.Params["tx_json"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "NFTokenMint", txJSON["TransactionType"])
	assert.Equal(t, testAccount, txJSON["Account"])
	assert.Equal(t, hexUpper("ipfs://QmOpener"), txJSON["URI"])
	assert.Equal(t, float64(7000), txJSON["TransferFee"])
	assert.Equal(t, float64(42), txJSON["NFTokenTaxon"])

	assert.Equal(t, "tx", stub.requests[1].Method)
	assert.Equal(t, "MINT-HASH", stub.requests[1].Params["transaction"])
}

func TestMintToken_DefaultRoyalty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, stub, clock := setupClient(t, ctrl,
		`{"status":"success","engine_result":"tesSUCCESS","engine_result_message":"ok","tx_json":{"hash":"MINT-HASH"}}`,
		`{"status":"success","validated":true,"TransactionType":"NFTokenMint","Account":"`+testAccount+`","meta":`+mintMetaJSON("TOKEN-NEW")+`}`,
	)
	clock.EXPECT().Now().Return(time.Now()).AnyTimes()

	_, err := client.MintToken(context.Background(), ledger.MintParams{URI: "ipfs://QmOpener"})
	require.NoError(t, err)

	txJSON := stub.requests[0].Params["tx_json"].(map[string]interface{})
	assert.Equal(t, float64(5000), txJSON["TransferFee"])
}

func TestMintToken_EngineRejection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, _, _ := setupClient(t, ctrl,
		`{"status":"success","engine_result":"tecINSUFFICIENT_RESERVE","engine_result_message":"Insufficient reserve.","tx_json":{"hash":"MINT-HASH"}}`,
	)

	_, err := client.MintToken(context.Background(), ledger.MintParams{URI: "ipfs://QmOpener"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLedgerTransactionFailed)
	assert.Contains(t, err.Error(), "tecINSUFFICIENT_RESERVE")
}

func TestMintToken_ValidationTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, _, clock := setupClient(t, ctrl,
		`{"status":"success","engine_result":"tesSUCCESS","engine_result_message":"ok","tx_json":{"hash":"MINT-HASH"}}`,
		`{"status":"error","error":"txnNotFound","error_message":"Transaction not found."}`,
	)

	start := time.Now()
	gomock.InOrder(
		clock.EXPECT().Now().Return(start),
		clock.EXPECT().Now().Return(start.Add(31*time.Second)),
	)

	_, err := client.MintToken(context.Background(), ledger.MintParams{URI: "ipfs://QmOpener"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLedgerTransactionFailed)
	assert.Contains(t, err.Error(), "not validated within")
}

func TestCreateSellOffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, stub, clock := setupClient(t, ctrl,
		`{"status":"success","engine_result":"tesSUCCESS","engine_result_message":"ok","tx_json":{"hash":"OFFER-HASH"}}`,
		`{"status":"success","validated":true,"TransactionType":"NFTokenCreateOffer","Account":"`+testAccount+`","meta":{"TransactionResult":"tesSUCCESS","AffectedNodes":[
			{"CreatedNode":{"LedgerEntryType":"NFTokenOffer","LedgerIndex":"OFFER-INDEX"}}
		]}}`,
	)
	clock.EXPECT().Now().Return(time.Now()).AnyTimes()

	result, err := client.CreateSellOffer(context.Background(), ledger.SellOfferParams{
		TokenID:     "TOKEN-A",
		Destination: "rBUYER",
		Amount:      0,
	})
	require.NoError(t, err)
	assert.Equal(t, "OFFER-HASH", result.TxHash)
	assert.Equal(t, "OFFER-INDEX", result.OfferIndex)

	txJSON := stub.requests[0].Params["tx_json"].(map[string]interface{})
	assert.Equal(t, "NFTokenCreateOffer", txJSON["TransactionType"])
	assert.Equal(t, "TOKEN-A", txJSON["NFTokenID"])
	assert.Equal(t, "0", txJSON["Amount"])
	assert.Equal(t, "rBUYER", txJSON["Destination"])
}

func TestCancelOffers_EmptyListIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, stub, _ := setupClient(t, ctrl)

	assert.NoError(t, client.CancelOffers(context.Background(), nil))
	assert.Empty(t, stub.requests)
}

func TestSendPayment_MemoEncoded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client, stub, clock := setupClient(t, ctrl,
		`{"status":"success","engine_result":"tesSUCCESS","engine_result_message":"ok","tx_json":{"hash":"PAY-HASH"}}`,
		`{"status":"success","validated":true,"TransactionType":"Payment","Account":"`+testAccount+`","meta":{"TransactionResult":"tesSUCCESS"}}`,
	)
	clock.EXPECT().Now().Return(time.Now()).AnyTimes()

	result, err := client.SendPayment(context.Background(), ledger.PaymentParams{
		Destination: "rBUYER",
		Amount:      5 * domain.DropsPerXRP,
		Memo:        "Refund: mint rejected",
	})
	require.NoError(t, err)
	assert.Equal(t, "PAY-HASH", result.TxHash)

	txJSON := stub.requests[0].Params["tx_json"].(map[string]interface{})
	assert.Equal(t, "Payment", txJSON["TransactionType"])
	assert.Equal(t, "rBUYER", txJSON["Destination"])
	assert.Equal(t, "5000000", txJSON["Amount"])

	memos := txJSON["Memos"].([]interface{})
	require.Len(t, memos, 1)
	memo := memos[0].(map[string]interface{})["Memo"].(map[string]interface{})
	assert.Equal(t, hexUpper("Refund: mint rejected"), memo["MemoData"])
}

func TestVerifyTokenTransfer(t *testing.T) {
	acceptMeta := `{"TransactionResult":"tesSUCCESS","AffectedNodes":[
		{"ModifiedNode":{"LedgerEntryType":"NFTokenPage","PreviousFields":{"NFTokens":[]},"FinalFields":{"NFTokens":[{"NFToken":{"NFTokenID":"TOKEN-A"}}]}}}
	]}`

	testCases := []struct {
		name     string
		response string
		expected bool
	}{
		{
			name: "valid acceptance",
			response: `{"status":"success","validated":true,"TransactionType":"NFTokenAcceptOffer","Account":"rBUYER","meta":` +
				acceptMeta + `}`,
			expected: true,
		},
		{
			name: "not yet validated",
			response: `{"status":"success","validated":false,"TransactionType":"NFTokenAcceptOffer","Account":"rBUYER","meta":` +
				acceptMeta + `}`,
			expected: false,
		},
		{
			name: "wrong transaction type",
			response: `{"status":"success","validated":true,"TransactionType":"Payment","Account":"rBUYER","meta":` +
				acceptMeta + `}`,
			expected: false,
		},
		{
			name: "accepted by a different account",
			response: `{"status":"success","validated":true,"TransactionType":"NFTokenAcceptOffer","Account":"rSOMEONE","meta":` +
				acceptMeta + `}`,
			expected: false,
		},
		{
			name:     "failed transaction",
			response: `{"status":"success","validated":true,"TransactionType":"NFTokenAcceptOffer","Account":"rBUYER","meta":{"TransactionResult":"tecOBJECT_NOT_FOUND"}}`,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client, _, _ := setupClient(t, ctrl, tc.response)

			ok, err := client.VerifyTokenTransfer(context.Background(), "ACCEPT-HASH", "TOKEN-A", "rBUYER")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ok)
		})
	}
}

func TestVerifyTokenTransfer_LookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Post(gomock.Any(), testEndpoint, "application/json", gomock.Any()).
		Return(nil, errors.New("connection refused"))

	clock := mocks.NewMockClock(ctrl)
	client, err := ledger.NewClient(testConfig(), httpClient, clock)
	require.NoError(t, err)

	_, err = client.VerifyTokenTransfer(context.Background(), "ACCEPT-HASH", "TOKEN-A", "rBUYER")
	assert.Error(t, err)
}
