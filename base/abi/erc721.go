package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var ERC721ABI abi.ABI

// also covers erc1155 operator approvals, both standards share
// isApprovedForAll/setApprovalForAll
var erc721ABI = `[{"type":"function","name":"isApprovedForAll","constant":true,"stateMutability":"view","inputs":[{"type":"address","name":"owner"},{"type":"address","name":"operator"}],"outputs":[{"type":"bool"}]},{"type":"function","name":"setApprovalForAll","stateMutability":"nonpayable","inputs":[{"type":"address","name":"operator"},{"type":"bool","name":"approved"}],"outputs":[]},{"type":"function","name":"ownerOf","constant":true,"stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"address"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(erc721ABI))
	if err != nil {
		panic("Failed to parse erc721 abi")
	}
	ERC721ABI = _abi
}

func PackIsApprovedForAll(owner, operator common.Address) ([]byte, error) {
	return ERC721ABI.Pack("isApprovedForAll", owner, operator)
}

func UnpackIsApprovedForAll(data []byte) (bool, error) {
	values, err := ERC721ABI.Unpack("isApprovedForAll", data)
	if err != nil {
		return false, err
	}
	return values[0].(bool), nil
}

func PackSetApprovalForAll(operator common.Address, approved bool) ([]byte, error) {
	return ERC721ABI.Pack("setApprovalForAll", operator, approved)
}

func PackOwnerOf(tokenId *big.Int) ([]byte, error) {
	return ERC721ABI.Pack("ownerOf", tokenId)
}

func UnpackOwnerOf(data []byte) (common.Address, error) {
	values, err := ERC721ABI.Unpack("ownerOf", data)
	if err != nil {
		return common.Address{}, err
	}
	return values[0].(common.Address), nil
}
