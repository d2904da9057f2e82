package usecase

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
	bCtx "github.com/lootex/goaggregator/base/ctx"
	"github.com/lootex/goaggregator/base/log"
	"github.com/lootex/goaggregator/domain"
	"github.com/lootex/goaggregator/domain/marketplace"
	"github.com/lootex/goaggregator/domain/order"
	"github.com/lootex/goaggregator/domain/seaport"
)

// CancelOrders plans one cancel transaction per exchange deployment,
// skipping orders the chain already reports as cancelled
func (im *impl) CancelOrders(ctx bCtx.Ctx, params *marketplace.CancelOrdersParams) (*marketplace.Plan, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	live := []*order.Order{}
	for _, o := range params.Orders {
		status, err := im.getOrderStatus(ctx, params.ChainId, o.ExchangeAddress, o.Hash)
		if err != nil {
			ctx.WithFields(log.Fields{
				"orderHash": o.Hash,
				"err":       err,
			}).Error("getOrderStatus failed")
			return nil, err
		}
		if status.IsCancelled {
			continue
		}
		live = append(live, o)
	}

	groups := map[domain.Address][]*order.Order{}
	exchanges := []domain.Address{}
	for _, o := range live {
		key := o.ExchangeAddress.ToLower()
		if _, ok := groups[key]; !ok {
			exchanges = append(exchanges, key)
		}
		groups[key] = append(groups[key], o)
	}

	step := marketplace.Step{Id: marketplace.StepCancelOrders, Items: []marketplace.Action{}}
	for _, exchange := range exchanges {
		components := []seaport.OrderComponents{}
		hashes := []domain.OrderHash{}
		for _, o := range groups[exchange] {
			components = append(components, o.SeaportOrder.Parameters)
			hashes = append(hashes, o.Hash)
		}
		data, err := seaport.EncodeCancel(components)
		if err != nil {
			return nil, err
		}
		step.Items = append(step.Items, marketplace.Action{
			Type: marketplace.ActionTransaction,
			Transaction: &marketplace.TransactionData{
				To:   exchange,
				Data: hexutil.Encode(data),
			},
			Hashes: hashes,
		})
	}

	return &marketplace.Plan{Steps: []marketplace.Step{step}}, nil
}
