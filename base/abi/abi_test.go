package abi

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestErc20Packing(t *testing.T) {
	req := require.New(t)
	owner := common.HexToAddress("0x1111111111111111111111111111111111111111")
	spender := common.HexToAddress("0x2222222222222222222222222222222222222222")

	data, err := PackErc20Allowance(owner, spender)
	req.NoError(err)
	// allowance(address,address) selector
	req.Equal([]byte{0xdd, 0x62, 0xed, 0x3e}, data[:4])

	out, err := ERC20ABI.Methods["allowance"].Outputs.Pack(big.NewInt(42))
	req.NoError(err)
	allowance, err := UnpackErc20Allowance(out)
	req.NoError(err)
	req.Equal("42", allowance.String())

	data, err = PackErc20Approve(spender, MaxApprovalAmount)
	req.NoError(err)
	// approve(address,uint256) selector
	req.Equal([]byte{0x09, 0x5e, 0xa7, 0xb3}, data[:4])
}

func TestErc721Packing(t *testing.T) {
	req := require.New(t)
	owner := common.HexToAddress("0x1111111111111111111111111111111111111111")
	operator := common.HexToAddress("0x2222222222222222222222222222222222222222")

	data, err := PackIsApprovedForAll(owner, operator)
	req.NoError(err)
	// isApprovedForAll(address,address) selector
	req.Equal([]byte{0xe9, 0x85, 0xe9, 0xc5}, data[:4])

	out, err := ERC721ABI.Methods["isApprovedForAll"].Outputs.Pack(true)
	req.NoError(err)
	approved, err := UnpackIsApprovedForAll(out)
	req.NoError(err)
	req.True(approved)

	data, err = PackSetApprovalForAll(operator, true)
	req.NoError(err)
	// setApprovalForAll(address,bool) selector
	req.Equal([]byte{0xa2, 0x2c, 0xb4, 0x65}, data[:4])
}

func TestErc1155Packing(t *testing.T) {
	req := require.New(t)
	owner := common.HexToAddress("0x1111111111111111111111111111111111111111")

	data, err := PackErc1155BalanceOf(owner, big.NewInt(7))
	req.NoError(err)
	// balanceOf(address,uint256) selector
	req.Equal([]byte{0x00, 0xfd, 0xd5, 0x8e}, data[:4])

	out, err := ERC1155ABI.Methods["balanceOf"].Outputs.Pack(big.NewInt(3))
	req.NoError(err)
	balance, err := UnpackErc1155BalanceOf(out)
	req.NoError(err)
	req.Equal("3", balance.String())
}
