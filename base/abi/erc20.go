package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var ERC20ABI abi.ABI

var erc20ABI = `[{"type":"function","name":"allowance","constant":true,"stateMutability":"view","inputs":[{"type":"address","name":"owner"},{"type":"address","name":"spender"}],"outputs":[{"type":"uint256"}]},{"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[{"type":"address","name":"spender"},{"type":"uint256","name":"amount"}],"outputs":[{"type":"bool"}]},{"type":"function","name":"balanceOf","constant":true,"stateMutability":"view","inputs":[{"type":"address","name":"owner"}],"outputs":[{"type":"uint256"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		panic("Failed to parse erc20 abi")
	}
	ERC20ABI = _abi
}

// MaxApprovalAmount is what approve calls grant, the wallet only prompts
// once per token this way
var MaxApprovalAmount = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))

func PackErc20Allowance(owner, spender common.Address) ([]byte, error) {
	return ERC20ABI.Pack("allowance", owner, spender)
}

func UnpackErc20Allowance(data []byte) (*big.Int, error) {
	values, err := ERC20ABI.Unpack("allowance", data)
	if err != nil {
		return nil, err
	}
	return values[0].(*big.Int), nil
}

func PackErc20Approve(spender common.Address, amount *big.Int) ([]byte, error) {
	return ERC20ABI.Pack("approve", spender, amount)
}

func PackErc20BalanceOf(owner common.Address) ([]byte, error) {
	return ERC20ABI.Pack("balanceOf", owner)
}

func UnpackErc20BalanceOf(data []byte) (*big.Int, error) {
	values, err := ERC20ABI.Unpack("balanceOf", data)
	if err != nil {
		return nil, err
	}
	return values[0].(*big.Int), nil
}
