package usecase

import (
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	baseabi "github.com/lootex/goaggregator/base/abi"
	bCtx "github.com/lootex/goaggregator/base/ctx"
	"github.com/lootex/goaggregator/base/log"
	"github.com/lootex/goaggregator/domain"
	"github.com/lootex/goaggregator/domain/marketplace"
	"github.com/lootex/goaggregator/domain/seaport"
)

func (im *impl) call(ctx bCtx.Ctx, chainId domain.ChainId, to domain.Address, data []byte) ([]byte, error) {
	reader, err := im.readerGetter(chainId)
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId": chainId,
			"err":     err,
		}).Error("readerGetter failed")
		return nil, err
	}
	contract := common.HexToAddress(to.ToLowerStr())
	out, err := reader.CallContract(ctx, ethereum.CallMsg{To: &contract, Data: data}, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId": chainId,
			"to":      to,
			"err":     err,
		}).Error("CallContract failed")
		return nil, err
	}
	return out, nil
}

func (im *impl) getErc20Allowance(ctx bCtx.Ctx, chainId domain.ChainId, token, owner, spender domain.Address) (*big.Int, error) {
	data, err := baseabi.PackErc20Allowance(common.HexToAddress(owner.ToLowerStr()), common.HexToAddress(spender.ToLowerStr()))
	if err != nil {
		return nil, err
	}
	out, err := im.call(ctx, chainId, token, data)
	if err != nil {
		return nil, err
	}
	return baseabi.UnpackErc20Allowance(out)
}

func (im *impl) isApprovedForAll(ctx bCtx.Ctx, chainId domain.ChainId, token, owner, operator domain.Address) (bool, error) {
	data, err := baseabi.PackIsApprovedForAll(common.HexToAddress(owner.ToLowerStr()), common.HexToAddress(operator.ToLowerStr()))
	if err != nil {
		return false, err
	}
	out, err := im.call(ctx, chainId, token, data)
	if err != nil {
		return false, err
	}
	return baseabi.UnpackIsApprovedForAll(out)
}

func (im *impl) getNativeBalance(ctx bCtx.Ctx, chainId domain.ChainId, owner domain.Address) (*big.Int, error) {
	reader, err := im.readerGetter(chainId)
	if err != nil {
		return nil, err
	}
	balance, err := reader.BalanceAt(ctx, common.HexToAddress(owner.ToLowerStr()), nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId": chainId,
			"owner":   owner,
			"err":     err,
		}).Error("BalanceAt failed")
		return nil, err
	}
	return balance, nil
}

func (im *impl) getErc20Balance(ctx bCtx.Ctx, chainId domain.ChainId, token, owner domain.Address) (*big.Int, error) {
	data, err := baseabi.PackErc20BalanceOf(common.HexToAddress(owner.ToLowerStr()))
	if err != nil {
		return nil, err
	}
	out, err := im.call(ctx, chainId, token, data)
	if err != nil {
		return nil, err
	}
	return baseabi.UnpackErc20BalanceOf(out)
}

func (im *impl) getErc1155Balance(ctx bCtx.Ctx, chainId domain.ChainId, token, owner domain.Address, id *big.Int) (*big.Int, error) {
	data, err := baseabi.PackErc1155BalanceOf(common.HexToAddress(owner.ToLowerStr()), id)
	if err != nil {
		return nil, err
	}
	out, err := im.call(ctx, chainId, token, data)
	if err != nil {
		return nil, err
	}
	return baseabi.UnpackErc1155BalanceOf(out)
}

func (im *impl) ownsErc721(ctx bCtx.Ctx, chainId domain.ChainId, token, owner domain.Address, id *big.Int) (bool, error) {
	data, err := baseabi.PackOwnerOf(id)
	if err != nil {
		return false, err
	}
	out, err := im.call(ctx, chainId, token, data)
	if err != nil {
		return false, err
	}
	holder, err := baseabi.UnpackOwnerOf(out)
	if err != nil {
		return false, err
	}
	return owner.Equals(domain.Address(holder.Hex())), nil
}

// checkBalances verifies the owner can cover every item before a plan is
// handed out. Criteria items are skipped, the concrete token id is only
// chosen at fulfillment.
func (im *impl) checkBalances(ctx bCtx.Ctx, chainId domain.ChainId, owner domain.Address, items []approvalItem) error {
	for _, item := range mergeApprovalItems(items) {
		if item.itemType.IsCriteria() {
			continue
		}

		var have *big.Int
		var err error
		switch {
		case item.itemType == seaport.ItemTypeNative:
			have, err = im.getNativeBalance(ctx, chainId, owner)
		case item.itemType == seaport.ItemTypeErc20:
			have, err = im.getErc20Balance(ctx, chainId, item.token, owner)
		case item.itemType.IsErc1155():
			var id *big.Int
			if id, err = parseIdentifier(item.identifierOrCriteria); err == nil {
				have, err = im.getErc1155Balance(ctx, chainId, item.token, owner, id)
			}
		default:
			var id *big.Int
			if id, err = parseIdentifier(item.identifierOrCriteria); err == nil {
				var owns bool
				if owns, err = im.ownsErc721(ctx, chainId, item.token, owner, id); err == nil {
					have = big.NewInt(0)
					if owns {
						have = big.NewInt(1)
					}
				}
			}
		}
		if err != nil {
			return err
		}
		if have.Cmp(item.amount) < 0 {
			ctx.WithFields(log.Fields{
				"chainId": chainId,
				"owner":   owner,
				"token":   item.token,
				"need":    item.amount.String(),
				"have":    have.String(),
			}).Error("insufficient balance")
			return domain.ErrInsufficientBalance
		}
	}
	return nil
}

func parseIdentifier(s string) (*big.Int, error) {
	id, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, domain.ErrInvalidNumberFormat
	}
	return id, nil
}

func (im *impl) getCounter(ctx bCtx.Ctx, chainId domain.ChainId, exchange, offerer domain.Address) (*big.Int, error) {
	data, err := seaport.EncodeGetCounter(offerer)
	if err != nil {
		return nil, err
	}
	out, err := im.call(ctx, chainId, exchange, data)
	if err != nil {
		return nil, err
	}
	return seaport.DecodeCounter(out)
}

func (im *impl) getOrderStatus(ctx bCtx.Ctx, chainId domain.ChainId, exchange domain.Address, hash domain.OrderHash) (*seaport.OrderStatus, error) {
	data, err := seaport.EncodeGetOrderStatus(hash)
	if err != nil {
		return nil, err
	}
	out, err := im.call(ctx, chainId, exchange, data)
	if err != nil {
		return nil, err
	}
	return seaport.DecodeOrderStatus(out)
}

// approvalItem is one token the account must let the operator move,
// amounts merged across orders
type approvalItem struct {
	itemType             seaport.ItemType
	token                domain.Address
	identifierOrCriteria string
	amount               *big.Int
}

func mergeApprovalItems(items []approvalItem) []approvalItem {
	merged := []approvalItem{}
	for _, item := range items {
		found := false
		for i := range merged {
			if merged[i].token.Equals(item.token) && merged[i].identifierOrCriteria == item.identifierOrCriteria && merged[i].itemType == item.itemType {
				merged[i].amount = new(big.Int).Add(merged[i].amount, item.amount)
				found = true
				break
			}
		}
		if !found {
			copied := item
			copied.amount = new(big.Int).Set(item.amount)
			merged = append(merged, copied)
		}
	}
	return merged
}

// uniqueContracts keeps one entry per token contract, nft approvals are
// operator wide so one setApprovalForAll covers every id
func uniqueContracts(items []approvalItem) []approvalItem {
	unique := []approvalItem{}
	for _, item := range items {
		found := false
		for i := range unique {
			if unique[i].token.Equals(item.token) {
				found = true
				break
			}
		}
		if !found {
			unique = append(unique, item)
		}
	}
	return unique
}

// approvalActions checks each contract's allowance on chain and emits one
// approve transaction per contract that falls short
func (im *impl) approvalActions(ctx bCtx.Ctx, chainId domain.ChainId, owner, operator domain.Address, items []approvalItem) ([]marketplace.Action, error) {
	actions := []marketplace.Action{}
	for _, item := range uniqueContracts(mergeApprovalItems(items)) {
		if item.itemType == seaport.ItemTypeNative {
			continue
		}

		var approveData []byte
		if item.itemType == seaport.ItemTypeErc20 {
			allowance, err := im.getErc20Allowance(ctx, chainId, item.token, owner, operator)
			if err != nil {
				return nil, err
			}
			if allowance.Cmp(item.amount) >= 0 {
				continue
			}
			if approveData, err = baseabi.PackErc20Approve(common.HexToAddress(operator.ToLowerStr()), baseabi.MaxApprovalAmount); err != nil {
				return nil, err
			}
		} else {
			approved, err := im.isApprovedForAll(ctx, chainId, item.token, owner, operator)
			if err != nil {
				return nil, err
			}
			if approved {
				continue
			}
			if approveData, err = baseabi.PackSetApprovalForAll(common.HexToAddress(operator.ToLowerStr()), true); err != nil {
				return nil, err
			}
		}

		actions = append(actions, marketplace.Action{
			Type: marketplace.ActionTransaction,
			Transaction: &marketplace.TransactionData{
				To:   item.token,
				Data: hexutil.Encode(approveData),
			},
			Token:                item.token,
			IdentifierOrCriteria: item.identifierOrCriteria,
		})
	}
	return actions, nil
}
