package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gorilla/mux"

	"github.com/OxMarco/Cross-chain-Vault/settlement"
	"github.com/OxMarco/Cross-chain-Vault/settlement/ledger"
	"github.com/OxMarco/Cross-chain-Vault/settlement/order"
	"github.com/OxMarco/Cross-chain-Vault/settlement/signature"
)

// OrderSettler is the settlement surface exposed over the API.
type OrderSettler interface {
	Initiate(ctx context.Context, o order.Order, sig []byte) error
	Fill(ctx context.Context, filler common.Address, o order.Order, fillerData []byte) (*order.ResolvedOrder, error)
	Claim(ctx context.Context, o order.Order) error
	Reclaim(ctx context.Context, o order.Order) error
	StatusOf(orderHash common.Hash) ledger.Status
}

type OrderBody struct {
	DomainId           uint64
	SettlementContract string  `json:"settlementContract"`
	Swapper            string  `json:"swapper"`
	Nonce              *BigInt `json:"nonce"`
	OriginDomain       uint64  `json:"originDomain"`
	InitiateDeadline   uint64  `json:"initiateDeadline"`
	FillDeadline       uint64  `json:"fillDeadline"`
	OrderData          string  `json:"orderData"`

	Signature  string `json:"signature"`
	Filler     string `json:"filler"`
	FillerData string `json:"fillerData"`
}

type OutputResponse struct {
	Token     string  `json:"token"`
	Amount    *BigInt `json:"amount"`
	Recipient string  `json:"recipient"`
}

type FillResponse struct {
	OrderHash     string           `json:"orderHash"`
	FillerOutputs []OutputResponse `json:"fillerOutputs"`
}

type StatusResponse struct {
	OrderHash string `json:"orderHash"`
	Status    string `json:"status"`
}

type OrdersHandler struct {
	settlers map[uint64]OrderSettler
}

func NewOrdersHandler(settlers map[uint64]OrderSettler) *OrdersHandler {
	return &OrdersHandler{
		settlers: settlers,
	}
}

// HandleInitiate escrows an order on its origin domain
func (h *OrdersHandler) HandleInitiate(w http.ResponseWriter, r *http.Request) {
	b, settler, ok := h.decode(w, r)
	if !ok {
		return
	}

	if b.Signature == "" {
		JSONError(w, fmt.Errorf("missing field 'signature'"), http.StatusBadRequest)
		return
	}
	sig, err := hexutil.Decode(b.Signature)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid signature: %s", err), http.StatusBadRequest)
		return
	}

	o, err := b.toOrder()
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	err = settler.Initiate(r.Context(), o, sig)
	if err != nil {
		h.settlementError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// HandleFill executes the filler segments on the destination domain and
// returns the resolved order
func (h *OrdersHandler) HandleFill(w http.ResponseWriter, r *http.Request) {
	b, settler, ok := h.decode(w, r)
	if !ok {
		return
	}

	if b.Filler == "" {
		JSONError(w, fmt.Errorf("missing field 'filler'"), http.StatusBadRequest)
		return
	}
	fillerData, err := hexutil.Decode(b.FillerData)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid fillerData: %s", err), http.StatusBadRequest)
		return
	}

	o, err := b.toOrder()
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	resolved, err := settler.Fill(r.Context(), common.HexToAddress(b.Filler), o, fillerData)
	if err != nil {
		h.settlementError(w, err)
		return
	}

	orderHash, err := order.Hash(o)
	if err != nil {
		JSONError(w, err, http.StatusInternalServerError)
		return
	}

	outputs := make([]OutputResponse, len(resolved.FillerOutputs))
	for i, out := range resolved.FillerOutputs {
		outputs[i] = OutputResponse{
			Token:     out.Token.Hex(),
			Amount:    &BigInt{out.Amount},
			Recipient: out.Recipient.Hex(),
		}
	}

	data, _ := json.Marshal(FillResponse{
		OrderHash:     orderHash.Hex(),
		FillerOutputs: outputs,
	})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// HandleClaim releases the escrow to the filler outputs after confirmation
func (h *OrdersHandler) HandleClaim(w http.ResponseWriter, r *http.Request) {
	b, settler, ok := h.decode(w, r)
	if !ok {
		return
	}

	o, err := b.toOrder()
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	err = settler.Claim(r.Context(), o)
	if err != nil {
		h.settlementError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleReclaim returns an expired unfilled escrow to the swapper
func (h *OrdersHandler) HandleReclaim(w http.ResponseWriter, r *http.Request) {
	b, settler, ok := h.decode(w, r)
	if !ok {
		return
	}

	o, err := b.toOrder()
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	err = settler.Reclaim(r.Context(), o)
	if err != nil {
		h.settlementError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleStatus returns the ledger status for an order hash
func (h *OrdersHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	settler, err := h.settler(vars)
	if err != nil {
		JSONError(w, err, http.StatusNotFound)
		return
	}

	rawHash, ok := vars["orderHash"]
	if !ok {
		JSONError(w, fmt.Errorf("missing 'orderHash'"), http.StatusBadRequest)
		return
	}
	hashBytes, err := hexutil.Decode(rawHash)
	if err != nil || len(hashBytes) != common.HashLength {
		JSONError(w, fmt.Errorf("invalid order hash %s", rawHash), http.StatusBadRequest)
		return
	}

	orderHash := common.BytesToHash(hashBytes)
	data, _ := json.Marshal(StatusResponse{
		OrderHash: orderHash.Hex(),
		Status:    settler.StatusOf(orderHash).String(),
	})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *OrdersHandler) decode(w http.ResponseWriter, r *http.Request) (*OrderBody, OrderSettler, bool) {
	b := &OrderBody{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return nil, nil, false
	}

	settler, err := h.settler(mux.Vars(r))
	if err != nil {
		JSONError(w, err, http.StatusNotFound)
		return nil, nil, false
	}

	err = b.validate()
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return nil, nil, false
	}

	return b, settler, true
}

func (h *OrdersHandler) settler(vars map[string]string) (OrderSettler, error) {
	domainId, ok := new(big.Int).SetString(vars["domainId"], 10)
	if !ok {
		return nil, fmt.Errorf("field 'domainId' invalid")
	}

	settler, ok := h.settlers[domainId.Uint64()]
	if !ok {
		return nil, fmt.Errorf("domain '%d' not supported", domainId.Uint64())
	}
	return settler, nil
}

func (h *OrdersHandler) settlementError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, signature.ErrAuthorization):
		JSONError(w, err, http.StatusUnauthorized)
	case errors.Is(err, order.ErrDecode),
		errors.Is(err, settlement.ErrOrderExpired),
		errors.Is(err, settlement.ErrWrongDomain):
		JSONError(w, err, http.StatusBadRequest)
	case errors.Is(err, ledger.ErrInvalidTransition),
		errors.Is(err, settlement.ErrOrderNotFilled),
		errors.Is(err, settlement.ErrUnderfulfilledOutput),
		errors.Is(err, settlement.ErrSegmentExecution):
		JSONError(w, err, http.StatusConflict)
	default:
		JSONError(w, err, http.StatusInternalServerError)
	}
}

func (b *OrderBody) validate() error {
	if b.SettlementContract == "" {
		return fmt.Errorf("missing field 'settlementContract'")
	}
	if b.Swapper == "" {
		return fmt.Errorf("missing field 'swapper'")
	}
	if b.Nonce == nil {
		return fmt.Errorf("missing field 'nonce'")
	}
	if b.OriginDomain == 0 {
		return fmt.Errorf("missing field 'originDomain'")
	}
	if b.OrderData == "" {
		return fmt.Errorf("missing field 'orderData'")
	}
	return nil
}

func (b *OrderBody) toOrder() (order.Order, error) {
	data, err := hexutil.Decode(b.OrderData)
	if err != nil {
		return order.Order{}, fmt.Errorf("invalid orderData: %s", err)
	}

	return order.Order{
		SettlementContract: common.HexToAddress(b.SettlementContract),
		Swapper:            common.HexToAddress(b.Swapper),
		Nonce:              b.Nonce.Int,
		OriginDomain:       b.OriginDomain,
		InitiateDeadline:   b.InitiateDeadline,
		FillDeadline:       b.FillDeadline,
		Data:               data,
	}, nil
}
