package token

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ErrTransfer is returned when a token move is rejected, either for
// insufficient balance or insufficient allowance.
var ErrTransfer = errors.New("token transfer rejected")

// Token is the fungible-asset boundary the settlement core and vault
// consume. Every call may fail and failures have to surface as ErrTransfer.
type Token interface {
	BalanceOf(account common.Address) *big.Int
	Transfer(from, to common.Address, amount *big.Int) error
	TransferFrom(spender, from, to common.Address, amount *big.Int) error
	Approve(owner, spender common.Address, amount *big.Int)
	Allowance(owner, spender common.Address) *big.Int
}
