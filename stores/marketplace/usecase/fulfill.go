package usecase

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	bCtx "github.com/lootex/goaggregator/base/ctx"
	"github.com/lootex/goaggregator/base/log"
	"github.com/lootex/goaggregator/domain"
	"github.com/lootex/goaggregator/domain/aggregator"
	"github.com/lootex/goaggregator/domain/marketplace"
	"github.com/lootex/goaggregator/domain/order"
)

// fulfillApprovalItems collects what the fulfiller must let the operator
// move: payment currencies when buying listings, the nft itself when
// accepting offers. Currency items are skipped for offers because payment
// comes out of the offerer's escrow, not the fulfiller's wallet.
func fulfillApprovalItems(orders []*order.Order) ([]approvalItem, error) {
	accepting := orders[0].Category.IsOffer()
	items := []approvalItem{}
	for _, o := range orders {
		for _, c := range o.SeaportOrder.Parameters.Consideration {
			if accepting && c.ItemType.IsCurrency() {
				continue
			}
			if !accepting && !c.ItemType.IsCurrency() {
				continue
			}
			amount := big.NewInt(1)
			if parsed, ok := new(big.Int).SetString(c.StartAmount, 10); ok {
				amount = parsed
			}
			items = append(items, approvalItem{
				itemType:             c.ItemType,
				token:                c.Token,
				identifierOrCriteria: c.IdentifierOrCriteria,
				amount:               amount,
			})
		}
	}
	return items, nil
}

func chunkOrders(orders []*order.Order, size int) [][]*order.Order {
	if size <= 0 || size >= len(orders) {
		return [][]*order.Order{orders}
	}
	chunks := [][]*order.Order{}
	for i := 0; i < len(orders); i += size {
		end := i + size
		if end > len(orders) {
			end = len(orders)
		}
		chunks = append(chunks, orders[i:end])
	}
	return chunks
}

func (im *impl) FulfillOrders(ctx bCtx.Ctx, params *marketplace.FulfillOrdersParams) (*marketplace.Plan, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	aggregatorAddress, err := im.chains.AggregatorAddress(params.ChainId)
	if err != nil {
		ctx.WithField("chainId", params.ChainId).Error("getAggregatorAddress failed")
		return nil, err
	}
	operator := params.Operator
	if operator.IsEmpty() {
		operator = aggregatorAddress
	}

	resolution, err := im.ResolveSignatures(ctx, params.Orders)
	if err != nil {
		return nil, err
	}
	signed := resolution.OrdersWithSignature
	if len(signed) == 0 {
		ctx.WithFields(log.Fields{
			"chainId":  params.ChainId,
			"unsigned": len(resolution.OrdersWithoutSignature),
		}).Error("no fulfillable orders after signature resolution")
		return nil, domain.ErrSignatureNotFound
	}

	steps := []marketplace.Step{}

	items, err := fulfillApprovalItems(signed)
	if err != nil {
		return nil, err
	}
	if err := im.checkBalances(ctx, params.ChainId, params.AccountAddress, items); err != nil {
		return nil, err
	}
	approveActions, err := im.approvalActions(ctx, params.ChainId, params.AccountAddress, operator, items)
	if err != nil {
		return nil, err
	}
	steps = append(steps, marketplace.Step{Id: marketplace.StepApproveTokens, Items: approveActions})

	if signed[0].Category.IsOffer() {
		delegationStep, err := im.aggregatorDelegationStep(ctx, signed, aggregatorAddress)
		if err != nil {
			return nil, err
		}
		if delegationStep != nil {
			steps = append(steps, *delegationStep)
		}
	}

	exchangeStep := marketplace.Step{Id: marketplace.StepExchange}
	for _, chunk := range chunkOrders(signed, params.MaxOrdersPerTx) {
		tx, err := aggregator.BuildFulfillTransaction(chunk, params.AccountAddress, aggregatorAddress)
		if err != nil {
			return nil, err
		}
		hashes := make([]domain.OrderHash, 0, len(chunk))
		for _, o := range chunk {
			hashes = append(hashes, o.Hash)
		}
		exchangeStep.Items = append(exchangeStep.Items, marketplace.Action{
			Type: marketplace.ActionTransaction,
			Transaction: &marketplace.TransactionData{
				To:    tx.To,
				Data:  hexutil.Encode(tx.Data),
				Value: tx.Value.String(),
			},
			Hashes: hashes,
		})
	}
	steps = append(steps, exchangeStep)

	return &marketplace.Plan{Steps: steps}, nil
}

// aggregatorDelegationStep lets the exchange pull nfts the aggregator
// escrows during accept flows. The approval lives on the aggregator
// contract itself, so it is checked with the aggregator as owner.
func (im *impl) aggregatorDelegationStep(ctx bCtx.Ctx, orders []*order.Order, aggregatorAddress domain.Address) (*marketplace.Step, error) {
	nftItem := orders[0].SeaportOrder.Parameters.Consideration[0]
	if nftItem.ItemType.IsCurrency() {
		return nil, nil
	}
	exchange := orders[0].ExchangeAddress

	approved, err := im.isApprovedForAll(ctx, orders[0].ChainId, nftItem.Token, aggregatorAddress, exchange)
	if err != nil {
		return nil, err
	}
	if approved {
		return nil, nil
	}

	data, err := aggregator.EncodeApproveDelegation(nftItem.ItemType, nftItem.Token, exchange)
	if err != nil {
		return nil, err
	}
	return &marketplace.Step{
		Id: marketplace.StepApproveAggregator,
		Items: []marketplace.Action{
			{
				Type: marketplace.ActionTransaction,
				Transaction: &marketplace.TransactionData{
					To:   aggregatorAddress,
					Data: hexutil.Encode(data),
				},
				Token:                nftItem.Token,
				IdentifierOrCriteria: nftItem.IdentifierOrCriteria,
			},
		},
	}, nil
}
