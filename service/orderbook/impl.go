package orderbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	bCtx "github.com/lootex/goaggregator/base/ctx"
	"github.com/lootex/goaggregator/base/log"
	"github.com/lootex/goaggregator/domain"
)

const apikeyHeader = "X-API-KEY"

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:  cfg.HttpClient,
		baseUrl: cfg.BaseUrl,
		timeout: cfg.Timeout,
		apikey:  cfg.Apikey,
	}
}

type client struct {
	client  http.Client
	baseUrl string
	timeout time.Duration
	apikey  string
}

func (c *client) GetOpenseaSignatures(ctx bCtx.Ctx, reqs []SignatureRequest) ([]SignatureResponse, error) {
	url := fmt.Sprintf("%s/v3/orders/opensea/signatures", c.baseUrl)
	data, err := c.post(ctx, url, reqs)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.post failed")
		return nil, err
	}
	resp := []SignatureResponse{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return resp, nil
}

func (c *client) GetPlatformFeeInfo(ctx bCtx.Ctx, chainId domain.ChainId, collection domain.Address) ([]PlatformFee, error) {
	url := fmt.Sprintf("%s/v3/fees?chainId=%d&collection=%s", c.baseUrl, chainId, collection.ToLowerStr())
	data, err := c.get(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.get failed")
		return nil, err
	}
	fees := []PlatformFee{}
	if err := json.Unmarshal(data, &fees); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return fees, nil
}

func (c *client) PostOrders(ctx bCtx.Ctx, orders []PostOrderPayload) error {
	url := fmt.Sprintf("%s/v3/orders/bulk", c.baseUrl)
	if _, err := c.post(ctx, url, orders); err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.post failed")
		return err
	}
	return nil
}

func (c *client) SyncOrder(ctx bCtx.Ctx, hash domain.OrderHash) error {
	url := fmt.Sprintf("%s/v3/orders/%s/sync", c.baseUrl, hash)
	if _, err := c.post(ctx, url, nil); err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.post failed")
		return err
	}
	return nil
}

func (c *client) SyncTxHash(ctx bCtx.Ctx, payload SyncTxHashPayload) error {
	url := fmt.Sprintf("%s/v3/orders/sync-tx-hash", c.baseUrl)
	if _, err := c.post(ctx, url, payload); err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.post failed")
		return err
	}
	return nil
}

func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	if c.apikey != "" {
		req.Header.Set(apikeyHeader, c.apikey)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return data, nil
}

func (c *client) post(ctx bCtx.Ctx, url string, body interface{}) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			ctx.WithField("err", err).Error("json.Marshal failed")
			return nil, err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, reader)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apikey != "" {
		req.Header.Set(apikeyHeader, c.apikey)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return data, nil
}
