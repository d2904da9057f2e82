package orderbook

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	bCtx "github.com/lootex/goaggregator/base/ctx"
	"github.com/lootex/goaggregator/domain"
	"github.com/stretchr/testify/require"
)

func TestGetOpenseaSignatures(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/v3/orders/opensea/signatures", r.URL.Path)
		req.Equal("POST", r.Method)
		req.Equal("api_key", r.Header.Get(apikeyHeader))

		body, err := ioutil.ReadAll(r.Body)
		req.NoError(err)
		reqs := []SignatureRequest{}
		req.NoError(json.Unmarshal(body, &reqs))
		req.Len(reqs, 1)

		resp := []SignatureResponse{{OrderHash: reqs[0].OrderHash, Signature: "0xdeadbeef"}}
		req.NoError(json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	c := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		BaseUrl:    server.URL,
		Timeout:    5 * time.Second,
		Apikey:     "api_key",
	})

	resp, err := c.GetOpenseaSignatures(bCtx.Background(), []SignatureRequest{
		{
			OrderHash:        "0xabc",
			ChainId:          1,
			ExchangeAddress:  "0x0000000000000068f116a894984e2db1123eb395",
			FulfillerAddress: "0x1111111111111111111111111111111111111111",
		},
	})
	req.NoError(err)
	req.Len(resp, 1)
	req.Equal("0xdeadbeef", resp[0].Signature)
}

func TestGetPlatformFeeInfo(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/v3/fees", r.URL.Path)
		req.Equal("GET", r.Method)
		req.Equal("137", r.URL.Query().Get("chainId"))
		req.Equal("0x2222222222222222222222222222222222222222", r.URL.Query().Get("collection"))

		resp := []PlatformFee{{Percentage: 2.5, Recipient: "0x3333333333333333333333333333333333333333"}}
		req.NoError(json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	c := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		BaseUrl:    server.URL,
		Timeout:    5 * time.Second,
	})

	fees, err := c.GetPlatformFeeInfo(bCtx.Background(), 137, "0x2222222222222222222222222222222222222222")
	req.NoError(err)
	req.Len(fees, 1)
	req.Equal(2.5, fees[0].Percentage)
	req.Equal(domain.Address("0x3333333333333333333333333333333333333333"), fees[0].Recipient)
}

func TestPostOrdersStatusNotOk(t *testing.T) {
	req := require.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/v3/orders/bulk", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	c := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		BaseUrl:    server.URL,
		Timeout:    5 * time.Second,
	})

	err := c.PostOrders(bCtx.Background(), []PostOrderPayload{})
	req.ErrorIs(err, ErrStatusCodeNotOk)
}

func TestSyncEndpoints(t *testing.T) {
	req := require.New(t)
	paths := []string{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/v3/orders/sync-tx-hash" {
			payload := SyncTxHashPayload{}
			req.NoError(json.NewDecoder(r.Body).Decode(&payload))
			req.Equal(domain.TxHash("0xtx"), payload.TxHash)
			req.Len(payload.Hashes, 2)
		}
	}))
	defer server.Close()

	c := NewClient(&ClientCfg{
		HttpClient: http.Client{},
		BaseUrl:    server.URL,
		Timeout:    5 * time.Second,
	})

	ctx := bCtx.Background()
	req.NoError(c.SyncOrder(ctx, "0xabc"))
	req.NoError(c.SyncTxHash(ctx, SyncTxHashPayload{
		TxHash: "0xtx",
		Hashes: []domain.OrderHash{"0x1", "0x2"},
	}))
	req.Equal([]string{"/v3/orders/0xabc/sync", "/v3/orders/sync-tx-hash"}, paths)
}
