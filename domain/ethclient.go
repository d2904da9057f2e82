package domain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
)

// EthReader is the read-only subset of go-ethereum/ethclient the
// aggregation core needs. Write access stays with the caller's wallet.
type EthReader interface {
	CallContract(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error)
	BalanceAt(context.Context, common.Address, *big.Int) (*big.Int, error)
}

// EthReaderGetter resolves a reader per chain id. Supplied by the host
// application at startup.
type EthReaderGetter func(ChainId) (EthReader, error)
