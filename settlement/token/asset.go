package token

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// Asset is an in-memory fungible token ledger with ERC-20 transfer
// semantics. Amounts are never mutated in place; balances only change under
// the asset lock so a failed call leaves no partial effect.
type Asset struct {
	address  common.Address
	symbol   string
	decimals uint8

	mu         sync.Mutex
	balances   map[common.Address]*big.Int
	allowances map[common.Address]map[common.Address]*big.Int
}

func NewAsset(address common.Address, symbol string, decimals uint8) *Asset {
	return &Asset{
		address:    address,
		symbol:     symbol,
		decimals:   decimals,
		balances:   make(map[common.Address]*big.Int),
		allowances: make(map[common.Address]map[common.Address]*big.Int),
	}
}

func (a *Asset) Address() common.Address {
	return a.address
}

func (a *Asset) Symbol() string {
	return a.symbol
}

func (a *Asset) Decimals() uint8 {
	return a.decimals
}

// Mint credits an account. Used when seeding domain genesis balances from
// config and in tests.
func (a *Asset) Mint(account common.Address, amount *big.Int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.credit(account, amount)
}

func (a *Asset) BalanceOf(account common.Address) *big.Int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return new(big.Int).Set(a.balance(account))
}

func (a *Asset) Transfer(from, to common.Address, amount *big.Int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.move(from, to, amount)
}

func (a *Asset) TransferFrom(spender, from, to common.Address, amount *big.Int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	allowance := a.allowance(from, spender)
	if allowance.Cmp(amount) < 0 {
		return fmt.Errorf("%w: allowance %s below %s for %s on %s",
			ErrTransfer, allowance, amount, spender.Hex(), a.symbol)
	}

	if err := a.move(from, to, amount); err != nil {
		return err
	}

	a.allowances[from][spender] = new(big.Int).Sub(allowance, amount)
	return nil
}

func (a *Asset) Approve(owner, spender common.Address, amount *big.Int) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.allowances[owner] == nil {
		a.allowances[owner] = make(map[common.Address]*big.Int)
	}
	a.allowances[owner][spender] = new(big.Int).Set(amount)
}

func (a *Asset) Allowance(owner, spender common.Address) *big.Int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return new(big.Int).Set(a.allowance(owner, spender))
}

func (a *Asset) move(from, to common.Address, amount *big.Int) error {
	if amount.Sign() < 0 {
		return fmt.Errorf("%w: negative amount", ErrTransfer)
	}

	balance := a.balance(from)
	if balance.Cmp(amount) < 0 {
		return fmt.Errorf("%w: balance %s below %s for %s on %s",
			ErrTransfer, balance, amount, from.Hex(), a.symbol)
	}

	a.balances[from] = new(big.Int).Sub(balance, amount)
	a.credit(to, amount)
	return nil
}

func (a *Asset) credit(account common.Address, amount *big.Int) {
	a.balances[account] = new(big.Int).Add(a.balance(account), amount)
}

func (a *Asset) balance(account common.Address) *big.Int {
	b, ok := a.balances[account]
	if !ok {
		return big.NewInt(0)
	}
	return b
}

func (a *Asset) allowance(owner, spender common.Address) *big.Int {
	spenders, ok := a.allowances[owner]
	if !ok {
		return big.NewInt(0)
	}
	al, ok := spenders[spender]
	if !ok {
		return big.NewInt(0)
	}
	return al
}
