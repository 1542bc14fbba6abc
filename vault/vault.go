package vault

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/OxMarco/Cross-chain-Vault/settlement/token"
	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
)

// ErrArithmeticUnderflow is returned when an execute step asks for more
// than the matching pending request or the vault's tracked assets hold.
var ErrArithmeticUnderflow = errors.New("amount exceeds pending request")

// Vault pools one asset and manages deposits and withdrawals through a
// two-phase request then execute flow. Shares are tracked internally;
// conversion between asset and share units floors on deposit and ceils on
// withdrawal so rounding never favors the caller.
type Vault struct {
	asset   token.Token
	account common.Address

	mu                 sync.Mutex
	totalAssets        *big.Int
	totalShares        *big.Int
	shares             map[common.Address]*big.Int
	pendingDeposits    map[common.Address]*big.Int
	pendingWithdrawals map[common.Address]*big.Int
}

func NewVault(asset token.Token, account common.Address) *Vault {
	return &Vault{
		asset:              asset,
		account:            account,
		totalAssets:        big.NewInt(0),
		totalShares:        big.NewInt(0),
		shares:             make(map[common.Address]*big.Int),
		pendingDeposits:    make(map[common.Address]*big.Int),
		pendingWithdrawals: make(map[common.Address]*big.Int),
	}
}

func (v *Vault) Account() common.Address {
	return v.account
}

// RequestDeposit escrows assets from the caller into the vault and records
// them as pending for the receiver. The caller has to have approved the
// vault account beforehand.
func (v *Vault) RequestDeposit(caller common.Address, assets *big.Int, receiver common.Address) error {
	if err := v.asset.TransferFrom(v.account, caller, v.account, assets); err != nil {
		return err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.pendingDeposits[receiver] = new(big.Int).Add(v.pending(v.pendingDeposits, receiver), assets)
	log.Debug().Msgf("Deposit of %s requested for %s", assets, receiver.Hex())
	return nil
}

// Deposit executes a pending deposit: decrements the pending amount, grows
// the tracked assets and mints shares at the current exchange rate.
func (v *Vault) Deposit(assets *big.Int, receiver common.Address) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	pending := v.pending(v.pendingDeposits, receiver)
	if assets.Cmp(pending) > 0 {
		return fmt.Errorf("%w: %s pending, %s requested", ErrArithmeticUnderflow, pending, assets)
	}

	minted := v.convertToShares(assets)
	v.pendingDeposits[receiver] = new(big.Int).Sub(pending, assets)
	v.totalAssets = new(big.Int).Add(v.totalAssets, assets)
	v.totalShares = new(big.Int).Add(v.totalShares, minted)
	v.shares[receiver] = new(big.Int).Add(v.share(receiver), minted)

	log.Info().Msgf("Deposited %s for %s, minted %s shares", assets, receiver.Hex(), minted)
	return nil
}

// CancelDeposit refunds the caller's full pending deposit and zeroes the
// record.
func (v *Vault) CancelDeposit(caller common.Address) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	pending := v.pending(v.pendingDeposits, caller)
	if pending.Sign() > 0 {
		if err := v.asset.Transfer(v.account, caller, pending); err != nil {
			return err
		}
	}
	v.pendingDeposits[caller] = big.NewInt(0)
	return nil
}

// RequestWithdrawal earmarks assets for withdrawal. No asset or share moves
// until execution, the request is pure bookkeeping.
func (v *Vault) RequestWithdrawal(caller common.Address, assets *big.Int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.pendingWithdrawals[caller] = new(big.Int).Add(v.pending(v.pendingWithdrawals, caller), assets)
	log.Debug().Msgf("Withdrawal of %s requested by %s", assets, caller.Hex())
}

// Withdraw executes a pending withdrawal: decrements the pending amount,
// burns the owner's shares and transfers assets to the receiver.
func (v *Vault) Withdraw(assets *big.Int, receiver, owner common.Address) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	pending := v.pending(v.pendingWithdrawals, owner)
	if assets.Cmp(pending) > 0 {
		return fmt.Errorf("%w: %s pending, %s requested", ErrArithmeticUnderflow, pending, assets)
	}
	if assets.Cmp(v.totalAssets) > 0 {
		return fmt.Errorf("%w: %s tracked, %s requested", ErrArithmeticUnderflow, v.totalAssets, assets)
	}

	burned := v.convertToSharesUp(assets)
	if burned.Cmp(v.share(owner)) > 0 {
		return fmt.Errorf("%w: %s shares held, %s needed", ErrArithmeticUnderflow, v.share(owner), burned)
	}

	if err := v.asset.Transfer(v.account, receiver, assets); err != nil {
		return err
	}

	v.pendingWithdrawals[owner] = new(big.Int).Sub(pending, assets)
	v.totalAssets = new(big.Int).Sub(v.totalAssets, assets)
	v.totalShares = new(big.Int).Sub(v.totalShares, burned)
	v.shares[owner] = new(big.Int).Sub(v.share(owner), burned)

	log.Info().Msgf("Withdrew %s for %s, burned %s shares of %s", assets, receiver.Hex(), burned, owner.Hex())
	return nil
}

// CancelWithdrawal zeroes the caller's pending withdrawal record. Nothing
// moved at request time so cancellation is bookkeeping only.
func (v *Vault) CancelWithdrawal(caller common.Address) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.pendingWithdrawals[caller] = big.NewInt(0)
}

func (v *Vault) TotalAssets() *big.Int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return new(big.Int).Set(v.totalAssets)
}

func (v *Vault) ShareBalance(owner common.Address) *big.Int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return new(big.Int).Set(v.share(owner))
}

func (v *Vault) PendingDeposit(account common.Address) *big.Int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return new(big.Int).Set(v.pending(v.pendingDeposits, account))
}

func (v *Vault) PendingWithdrawal(account common.Address) *big.Int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return new(big.Int).Set(v.pending(v.pendingWithdrawals, account))
}

// MaxWithdraw caps at the lesser of the tracked total assets and the
// owner's convertible balance, so the vault never promises more liquidity
// than it tracks.
func (v *Vault) MaxWithdraw(owner common.Address) *big.Int {
	v.mu.Lock()
	defer v.mu.Unlock()

	convertible := v.convertToAssets(v.share(owner))
	if convertible.Cmp(v.totalAssets) > 0 {
		return new(big.Int).Set(v.totalAssets)
	}
	return convertible
}

// MaxRedeem caps at the lesser of the owner's share balance and the shares
// backing the tracked total assets.
func (v *Vault) MaxRedeem(owner common.Address) *big.Int {
	v.mu.Lock()
	defer v.mu.Unlock()

	liquid := v.convertToShares(v.totalAssets)
	held := v.share(owner)
	if held.Cmp(liquid) > 0 {
		return new(big.Int).Set(liquid)
	}
	return new(big.Int).Set(held)
}

func (v *Vault) ConvertToShares(assets *big.Int) *big.Int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.convertToShares(assets)
}

func (v *Vault) ConvertToAssets(shares *big.Int) *big.Int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.convertToAssets(shares)
}

func (v *Vault) convertToShares(assets *big.Int) *big.Int {
	if v.totalShares.Sign() == 0 || v.totalAssets.Sign() == 0 {
		return new(big.Int).Set(assets)
	}
	return new(big.Int).Div(new(big.Int).Mul(assets, v.totalShares), v.totalAssets)
}

func (v *Vault) convertToSharesUp(assets *big.Int) *big.Int {
	if v.totalShares.Sign() == 0 || v.totalAssets.Sign() == 0 {
		return new(big.Int).Set(assets)
	}
	num := new(big.Int).Mul(assets, v.totalShares)
	num.Add(num, new(big.Int).Sub(v.totalAssets, big.NewInt(1)))
	return num.Div(num, v.totalAssets)
}

func (v *Vault) convertToAssets(shares *big.Int) *big.Int {
	if v.totalShares.Sign() == 0 {
		return new(big.Int).Set(shares)
	}
	return new(big.Int).Div(new(big.Int).Mul(shares, v.totalAssets), v.totalShares)
}

func (v *Vault) share(owner common.Address) *big.Int {
	s, ok := v.shares[owner]
	if !ok {
		return big.NewInt(0)
	}
	return s
}

func (v *Vault) pending(m map[common.Address]*big.Int, account common.Address) *big.Int {
	p, ok := m[account]
	if !ok {
		return big.NewInt(0)
	}
	return p
}
