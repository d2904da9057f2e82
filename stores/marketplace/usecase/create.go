package usecase

import (
	"math/big"
	"strconv"

	bCtx "github.com/lootex/goaggregator/base/ctx"
	"github.com/lootex/goaggregator/base/log"
	"github.com/lootex/goaggregator/domain"
	"github.com/lootex/goaggregator/domain/marketplace"
	"github.com/lootex/goaggregator/domain/order"
	"github.com/lootex/goaggregator/domain/seaport"
	"github.com/lootex/goaggregator/domain/token"
	"github.com/lootex/goaggregator/service/orderbook"
)

func kindToItemType(kind marketplace.TokenKind) seaport.ItemType {
	if kind == marketplace.TokenKindErc1155 {
		return seaport.ItemTypeErc1155
	}
	return seaport.ItemTypeErc721
}

func (im *impl) resolveCurrency(chainId domain.ChainId, address domain.Address) (token.Token, error) {
	if address.IsEmpty() {
		return token.Native(chainId)
	}
	if resolved, err := token.Resolve(chainId, address); err == nil {
		return resolved, nil
	}
	return token.Token{ChainId: chainId, Address: address.ToLower(), Decimals: 18}, nil
}

type builtOrder struct {
	components    seaport.OrderComponents
	approvalItems []approvalItem
}

// platformFees asks the orderbook for the marketplace fee schedule when the
// caller supplied none. A failed lookup degrades to a fee-free order.
func (im *impl) platformFees(ctx bCtx.Ctx, chainId domain.ChainId, collection domain.Address) []marketplace.Fee {
	info, err := im.orderbook.GetPlatformFeeInfo(ctx, chainId, collection)
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId":    chainId,
			"collection": collection,
			"err":        err,
		}).Warn("GetPlatformFeeInfo failed")
		return nil
	}
	fees := make([]marketplace.Fee, 0, len(info))
	for _, fee := range info {
		fees = append(fees, marketplace.Fee{Percentage: fee.Percentage, Recipient: fee.Recipient})
	}
	return fees
}

func (im *impl) buildOrderComponents(ctx bCtx.Ctx, params *marketplace.CreateOrdersParams, item marketplace.CreateOrderItem, counter *big.Int) (*builtOrder, error) {
	if params.Category == order.CategoryListing && item.TokenId == "" {
		return nil, domain.ErrMissingTokenId
	}

	currency, err := im.resolveCurrency(params.ChainId, item.Currency)
	if err != nil {
		return nil, err
	}

	quantity := item.Quantity
	if quantity == "" {
		quantity = "1"
	}
	nums, err := domain.ToBigInt([]string{item.UnitPrice, quantity})
	if err != nil {
		return nil, err
	}
	totalRaw := new(big.Int).Mul(nums[0], nums[1])
	totalPrice := token.FromRawAmount(currency, totalRaw)

	fees := item.Fees
	if len(fees) == 0 {
		fees = im.platformFees(ctx, params.ChainId, item.TokenAddress)
	}
	feeItems := marketplace.FormatFeeConsiderations(fees, totalPrice)
	totalFee := big.NewInt(0)
	for _, fee := range feeItems {
		feeAmount, ok := new(big.Int).SetString(fee.StartAmount, 10)
		if !ok {
			return nil, domain.ErrInvalidNumberFormat
		}
		totalFee.Add(totalFee, feeAmount)
	}
	earning := new(big.Int).Sub(totalRaw, totalFee)

	currencyInputToken := domain.EmptyAddress
	if !currency.IsNative() {
		currencyInputToken = currency.Address
	}
	feeInputs := []seaport.CreateInputItem{}
	for _, fee := range feeItems {
		feeInputs = append(feeInputs, seaport.CreateInputItem{
			IsCurrency: true,
			Token:      fee.Token,
			Amount:     fee.StartAmount,
			Recipient:  fee.Recipient,
		})
	}

	built := &builtOrder{}
	offer := []seaport.CreateInputItem{}
	consideration := []seaport.CreateInputItem{}

	if params.Category == order.CategoryListing {
		offer = append(offer, seaport.CreateInputItem{
			ItemType:   kindToItemType(item.TokenKind),
			Token:      item.TokenAddress,
			Identifier: item.TokenId,
			Amount:     quantity,
		})
		consideration = append(consideration, seaport.CreateInputItem{
			IsCurrency: true,
			Token:      currencyInputToken,
			Amount:     earning.String(),
			Recipient:  params.AccountAddress,
		})
		consideration = append(consideration, feeInputs...)

		built.approvalItems = append(built.approvalItems, approvalItem{
			itemType:             kindToItemType(item.TokenKind),
			token:                item.TokenAddress,
			identifierOrCriteria: item.TokenId,
			amount:               nums[1],
		})
	} else {
		withCriteria := item.TokenId == ""
		offer = append(offer, seaport.CreateInputItem{
			IsCurrency: true,
			Token:      currencyInputToken,
			Amount:     totalRaw.String(),
		})
		consideration = append(consideration, seaport.CreateInputItem{
			ItemType:     kindToItemType(item.TokenKind),
			Token:        item.TokenAddress,
			Identifier:   item.TokenId,
			WithCriteria: withCriteria,
			Amount:       quantity,
			Recipient:    params.AccountAddress,
		})
		consideration = append(consideration, feeInputs...)

		if currency.IsNative() {
			ctx.WithField("chainId", params.ChainId).Warn("offer with native currency cannot be escrowed")
		} else {
			built.approvalItems = append(built.approvalItems, approvalItem{
				itemType:             seaport.ItemTypeErc20,
				token:                currency.Address,
				identifierOrCriteria: "0",
				amount:               totalRaw,
			})
		}
	}

	startTime := ""
	if item.StartTime > 0 {
		startTime = strconv.FormatInt(item.StartTime, 10)
	}
	endTime := ""
	if item.EndTime > 0 {
		endTime = strconv.FormatInt(item.EndTime, 10)
	}

	components, err := seaport.FormatOrder(seaport.FormatOrderInput{
		Offerer:           params.AccountAddress,
		Offer:             offer,
		Consideration:     seaport.SortConsiderations(consideration),
		StartTime:         startTime,
		EndTime:           endTime,
		Counter:           counter.String(),
		AllowPartialFills: true,
	})
	if err != nil {
		return nil, err
	}
	built.components = *components
	return built, nil
}

func (im *impl) CreateOrders(ctx bCtx.Ctx, params *marketplace.CreateOrdersParams) (*marketplace.Plan, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}
	exchange, err := im.chains.ExchangeAddress(params.ChainId)
	if err != nil {
		ctx.WithField("chainId", params.ChainId).Error("getExchangeAddress failed")
		return nil, err
	}

	counter, err := im.getCounter(ctx, params.ChainId, exchange, params.AccountAddress)
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId": params.ChainId,
			"account": params.AccountAddress,
			"err":     err,
		}).Error("getCounter failed")
		return nil, err
	}

	allComponents := []seaport.OrderComponents{}
	approvalItems := []approvalItem{}
	for _, item := range params.Orders {
		built, err := im.buildOrderComponents(ctx, params, item, counter)
		if err != nil {
			return nil, err
		}
		allComponents = append(allComponents, built.components)
		approvalItems = append(approvalItems, built.approvalItems...)
	}

	if err := im.checkBalances(ctx, params.ChainId, params.AccountAddress, approvalItems); err != nil {
		return nil, err
	}
	approveActions, err := im.approvalActions(ctx, params.ChainId, params.AccountAddress, exchange, approvalItems)
	if err != nil {
		return nil, err
	}
	approveStep := marketplace.Step{Id: marketplace.StepApproveTokens, Items: approveActions}

	createStep, err := im.buildCreateStep(ctx, params, allComponents, exchange)
	if err != nil {
		return nil, err
	}

	return &marketplace.Plan{Steps: []marketplace.Step{approveStep, *createStep}}, nil
}

func (im *impl) buildCreateStep(ctx bCtx.Ctx, params *marketplace.CreateOrdersParams, allComponents []seaport.OrderComponents, exchange domain.Address) (*marketplace.Step, error) {
	shouldUseBulkOrder := params.EnableBulkOrder && len(allComponents) > 1

	payloads := make([]orderbook.PostOrderPayload, 0, len(allComponents))
	for i := range allComponents {
		hash, err := seaport.GetOrderHash(&allComponents[i])
		if err != nil {
			return nil, err
		}
		payloads = append(payloads, orderbook.PostOrderPayload{
			OrderComponents: allComponents[i],
			Category:        string(params.Category),
			ExchangeAddress: exchange,
			ChainId:         strconv.Itoa(int(params.ChainId)),
			Hash:            hash,
			Signature:       seaport.ZeroHash,
		})
	}

	step := &marketplace.Step{
		Id:                          marketplace.StepCreateOrders,
		NeedEncodeProofAndSignature: shouldUseBulkOrder,
	}

	if shouldUseBulkOrder {
		tree, err := seaport.NewBulkOrderTree(allComponents)
		if err != nil {
			return nil, err
		}
		typedData := tree.SignablePayload(params.ChainId, exchange)
		step.Items = append(step.Items, marketplace.Action{
			Type:      marketplace.ActionSignTypedData,
			TypedData: &typedData,
		})
		for i := range payloads {
			_, proof, err := tree.GetProof(i)
			if err != nil {
				return nil, err
			}
			payloads[i].Proof = proof
		}
	} else {
		for i := range allComponents {
			typedData := seaport.SignableOrderData(params.ChainId, exchange, &allComponents[i])
			step.Items = append(step.Items, marketplace.Action{
				Type:      marketplace.ActionSignTypedData,
				TypedData: &typedData,
			})
		}
	}

	step.Items = append(step.Items, marketplace.Action{
		Type:     marketplace.ActionPost,
		Endpoint: "/v3/orders/bulk",
		Body:     payloads,
	})
	return step, nil
}
