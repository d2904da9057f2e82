package usecase

import (
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/lootex/goaggregator/base/backoff"
	bCtx "github.com/lootex/goaggregator/base/ctx"
	"github.com/lootex/goaggregator/base/log"
	"github.com/lootex/goaggregator/domain"
	"github.com/lootex/goaggregator/domain/marketplace"
	"github.com/lootex/goaggregator/domain/order"
	"github.com/lootex/goaggregator/service/orderbook"
)

type signatureResult struct {
	index     int
	signature string
}

const signatureFetchAttempts = 3

// fetchOpenseaSignature paces each attempt with the configured delay, the
// upstream signature endpoint rate limits aggressively
func (im *impl) fetchOpenseaSignature(ctx bCtx.Ctx, o *order.Order) (string, error) {
	bo := backoff.NewExponential(im.signaturePacing, 5*time.Second)
	var lastErr error
	for attempt := 0; attempt < signatureFetchAttempts; attempt++ {
		if err := bo.Backoff(ctx); err != nil {
			return "", err
		}
		resps, err := im.orderbook.GetOpenseaSignatures(ctx, []orderbook.SignatureRequest{{
			OrderHash:        o.Hash,
			ChainId:          o.ChainId,
			ExchangeAddress:  o.ExchangeAddress,
			FulfillerAddress: o.Offerer,
		}})
		if err != nil {
			lastErr = err
			continue
		}
		if len(resps) == 0 || resps[0].Signature == "" {
			return "", domain.ErrSignatureNotFound
		}
		return resps[0].Signature, nil
	}
	return "", lastErr
}

// ResolveSignatures back-fills third-party marketplace signatures that are
// only issued at fulfillment time. A failed fetch degrades the order to the
// unsigned partition instead of failing the batch.
func (im *impl) ResolveSignatures(ctx bCtx.Ctx, orders []*order.Order) (*marketplace.SignatureResolution, error) {
	resolved := make([]*order.Order, len(orders))
	pending := []int{}
	for i, o := range orders {
		if o.HasSignature() || !o.IsOpenseaOrder() {
			resolved[i] = o
			continue
		}
		pending = append(pending, i)
	}

	if len(pending) > 0 {
		b := goroutines.NewBatch(im.signatureWorkers, goroutines.WithBatchSize(len(pending)))
		defer b.Close()
		for _, i := range pending {
			idx := i
			b.Queue(func() (interface{}, error) {
				sig, err := im.fetchOpenseaSignature(ctx, orders[idx])
				if err != nil {
					ctx.WithFields(log.Fields{
						"orderHash": orders[idx].Hash,
						"err":       err,
					}).Warn("fetchOpenseaSignature failed")
					return signatureResult{index: idx}, nil
				}
				return signatureResult{index: idx, signature: sig}, nil
			})
		}
		b.QueueComplete()
		for ret := range b.Results() {
			res := ret.Value().(signatureResult)
			if res.signature == "" {
				resolved[res.index] = orders[res.index]
				continue
			}
			resolved[res.index] = orders[res.index].WithSignature(res.signature)
		}
	}

	resolution := &marketplace.SignatureResolution{
		OrdersWithSignature:    []*order.Order{},
		OrdersWithoutSignature: []*order.Order{},
	}
	for _, o := range resolved {
		if o.HasSignature() {
			resolution.OrdersWithSignature = append(resolution.OrdersWithSignature, o)
		} else {
			resolution.OrdersWithoutSignature = append(resolution.OrdersWithoutSignature, o)
		}
	}
	return resolution, nil
}
