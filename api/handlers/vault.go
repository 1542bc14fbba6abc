package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gorilla/mux"

	"github.com/OxMarco/Cross-chain-Vault/settlement/token"
	"github.com/OxMarco/Cross-chain-Vault/vault"
)

// VaultManager is the share vault surface exposed over the API.
type VaultManager interface {
	RequestDeposit(caller common.Address, assets *big.Int, receiver common.Address) error
	Deposit(assets *big.Int, receiver common.Address) error
	CancelDeposit(caller common.Address) error
	RequestWithdrawal(caller common.Address, assets *big.Int)
	Withdraw(assets *big.Int, receiver, owner common.Address) error
	CancelWithdrawal(caller common.Address)
	TotalAssets() *big.Int
	ShareBalance(owner common.Address) *big.Int
	PendingDeposit(account common.Address) *big.Int
	PendingWithdrawal(account common.Address) *big.Int
	MaxWithdraw(owner common.Address) *big.Int
	MaxRedeem(owner common.Address) *big.Int
}

type DepositBody struct {
	Caller   string  `json:"caller"`
	Assets   *BigInt `json:"assets"`
	Receiver string  `json:"receiver"`
}

type WithdrawalBody struct {
	Caller   string  `json:"caller"`
	Assets   *BigInt `json:"assets"`
	Receiver string  `json:"receiver"`
	Owner    string  `json:"owner"`
}

type VaultResponse struct {
	TotalAssets *BigInt `json:"totalAssets"`
}

type AccountResponse struct {
	Shares            *BigInt `json:"shares"`
	PendingDeposit    *BigInt `json:"pendingDeposit"`
	PendingWithdrawal *BigInt `json:"pendingWithdrawal"`
	MaxWithdraw       *BigInt `json:"maxWithdraw"`
	MaxRedeem         *BigInt `json:"maxRedeem"`
}

type VaultHandler struct {
	vault VaultManager
}

func NewVaultHandler(v VaultManager) *VaultHandler {
	return &VaultHandler{
		vault: v,
	}
}

// HandleRequestDeposit escrows caller assets into the vault
func (h *VaultHandler) HandleRequestDeposit(w http.ResponseWriter, r *http.Request) {
	b := &DepositBody{}
	if !decodeBody(w, r, b) {
		return
	}
	if err := b.validate(); err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	err := h.vault.RequestDeposit(common.HexToAddress(b.Caller), b.Assets.Int, common.HexToAddress(b.Receiver))
	if err != nil {
		h.vaultError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// HandleDeposit executes a pending deposit and mints shares
func (h *VaultHandler) HandleDeposit(w http.ResponseWriter, r *http.Request) {
	b := &DepositBody{}
	if !decodeBody(w, r, b) {
		return
	}
	if b.Assets == nil {
		JSONError(w, fmt.Errorf("missing field 'assets'"), http.StatusBadRequest)
		return
	}
	if b.Receiver == "" {
		JSONError(w, fmt.Errorf("missing field 'receiver'"), http.StatusBadRequest)
		return
	}

	err := h.vault.Deposit(b.Assets.Int, common.HexToAddress(b.Receiver))
	if err != nil {
		h.vaultError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleCancelDeposit refunds the account's full pending deposit
func (h *VaultHandler) HandleCancelDeposit(w http.ResponseWriter, r *http.Request) {
	account, err := accountVar(r)
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	err = h.vault.CancelDeposit(account)
	if err != nil {
		h.vaultError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleRequestWithdrawal earmarks assets for withdrawal
func (h *VaultHandler) HandleRequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	b := &WithdrawalBody{}
	if !decodeBody(w, r, b) {
		return
	}
	if b.Caller == "" {
		JSONError(w, fmt.Errorf("missing field 'caller'"), http.StatusBadRequest)
		return
	}
	if b.Assets == nil {
		JSONError(w, fmt.Errorf("missing field 'assets'"), http.StatusBadRequest)
		return
	}

	h.vault.RequestWithdrawal(common.HexToAddress(b.Caller), b.Assets.Int)
	w.WriteHeader(http.StatusCreated)
}

// HandleWithdraw executes a pending withdrawal, burns shares and pays out
func (h *VaultHandler) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	b := &WithdrawalBody{}
	if !decodeBody(w, r, b) {
		return
	}
	if b.Assets == nil {
		JSONError(w, fmt.Errorf("missing field 'assets'"), http.StatusBadRequest)
		return
	}
	if b.Receiver == "" {
		JSONError(w, fmt.Errorf("missing field 'receiver'"), http.StatusBadRequest)
		return
	}
	if b.Owner == "" {
		JSONError(w, fmt.Errorf("missing field 'owner'"), http.StatusBadRequest)
		return
	}

	err := h.vault.Withdraw(b.Assets.Int, common.HexToAddress(b.Receiver), common.HexToAddress(b.Owner))
	if err != nil {
		h.vaultError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleCancelWithdrawal zeroes the account's pending withdrawal
func (h *VaultHandler) HandleCancelWithdrawal(w http.ResponseWriter, r *http.Request) {
	account, err := accountVar(r)
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	h.vault.CancelWithdrawal(account)
	w.WriteHeader(http.StatusOK)
}

// HandleVault returns the vault level state
func (h *VaultHandler) HandleVault(w http.ResponseWriter, r *http.Request) {
	data, _ := json.Marshal(VaultResponse{
		TotalAssets: &BigInt{h.vault.TotalAssets()},
	})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// HandleAccount returns the per account vault position
func (h *VaultHandler) HandleAccount(w http.ResponseWriter, r *http.Request) {
	account, err := accountVar(r)
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	data, _ := json.Marshal(AccountResponse{
		Shares:            &BigInt{h.vault.ShareBalance(account)},
		PendingDeposit:    &BigInt{h.vault.PendingDeposit(account)},
		PendingWithdrawal: &BigInt{h.vault.PendingWithdrawal(account)},
		MaxWithdraw:       &BigInt{h.vault.MaxWithdraw(account)},
		MaxRedeem:         &BigInt{h.vault.MaxRedeem(account)},
	})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *VaultHandler) vaultError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, vault.ErrArithmeticUnderflow):
		JSONError(w, err, http.StatusConflict)
	case errors.Is(err, token.ErrTransfer):
		JSONError(w, err, http.StatusConflict)
	default:
		JSONError(w, err, http.StatusInternalServerError)
	}
}

func (b *DepositBody) validate() error {
	if b.Caller == "" {
		return fmt.Errorf("missing field 'caller'")
	}
	if b.Assets == nil {
		return fmt.Errorf("missing field 'assets'")
	}
	if b.Receiver == "" {
		return fmt.Errorf("missing field 'receiver'")
	}
	return nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	d := json.NewDecoder(r.Body)
	if err := d.Decode(dst); err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return false
	}
	return true
}

func accountVar(r *http.Request) (common.Address, error) {
	vars := mux.Vars(r)
	account, ok := vars["account"]
	if !ok || !common.IsHexAddress(account) {
		return common.Address{}, fmt.Errorf("invalid account %s", account)
	}
	return common.HexToAddress(account), nil
}
