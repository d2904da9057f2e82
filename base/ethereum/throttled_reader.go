package ethereum

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// ThrottledReader caps concurrent read calls against one rpc endpoint
type ThrottledReader struct {
	*ethclient.Client
	tokens chan int
}

func NewThrottledReader(client *ethclient.Client, n int) *ThrottledReader {
	tokens := make(chan int, n)
	for i := 0; i < n; i++ {
		tokens <- i + 1
	}
	return &ThrottledReader{
		Client: client,
		tokens: tokens,
	}
}

func (c *ThrottledReader) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	token := c.before(ctx)
	defer c.after(token)
	return c.Client.CallContract(ctx, msg, number)
}

func (c *ThrottledReader) BalanceAt(ctx context.Context, account common.Address, number *big.Int) (*big.Int, error) {
	token := c.before(ctx)
	defer c.after(token)
	return c.Client.BalanceAt(ctx, account, number)
}

func (c *ThrottledReader) before(ctx context.Context) int {
	select {
	case <-ctx.Done():
		return 0
	case token := <-c.tokens:
		return token
	}
}

func (c *ThrottledReader) after(token int) {
	if token != 0 {
		c.tokens <- token
	}
}
