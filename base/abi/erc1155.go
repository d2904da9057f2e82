package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var ERC1155ABI abi.ABI

var erc1155ABI = `[{"type":"function","name":"balanceOf","constant":true,"stateMutability":"view","inputs":[{"type":"address","name":"owner"},{"type":"uint256","name":"id"}],"outputs":[{"type":"uint256"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(erc1155ABI))
	if err != nil {
		panic("Failed to parse erc1155 abi")
	}
	ERC1155ABI = _abi
}

func PackErc1155BalanceOf(owner common.Address, id *big.Int) ([]byte, error) {
	return ERC1155ABI.Pack("balanceOf", owner, id)
}

func UnpackErc1155BalanceOf(data []byte) (*big.Int, error) {
	values, err := ERC1155ABI.Unpack("balanceOf", data)
	if err != nil {
		return nil, err
	}
	return values[0].(*big.Int), nil
}
