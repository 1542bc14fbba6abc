package order

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ErrDecode is returned when an order data blob or filler data blob cannot
// be decoded into its structured form.
var ErrDecode = errors.New("malformed order data")

// Order is the swapper-authored intent. It is immutable once signed and is
// always passed by value; per-order lifecycle state lives in the escrow
// ledger keyed by the order hash.
type Order struct {
	SettlementContract common.Address
	Swapper            common.Address
	Nonce              *big.Int
	OriginDomain       uint64
	InitiateDeadline   uint64
	FillDeadline       uint64
	Data               []byte
}

// Input is an asset the swapper gives up on the origin domain.
type Input struct {
	Token  common.Address
	Amount *big.Int
}

// Output is an asset delivery expectation. Recipient may live on a
// different domain than the one the output is recorded on.
type Output struct {
	Token     common.Address
	Amount    *big.Int
	Recipient common.Address
}

// ResolvedOrder is the decoded form of an order. It is derived purely from
// the order data blob and never persisted.
type ResolvedOrder struct {
	Order Order

	SwapperInputs  []Input
	SwapperOutputs []Output
	FillerOutputs  []Output
}

// Segment is a filler-supplied call instruction executed during fill.
type Segment struct {
	Target   common.Address
	Value    *big.Int
	CallData []byte
}

// FillerData carries the filler's solution segments and the address the
// confirmation message should be delivered to on the origin domain.
type FillerData struct {
	Segments              []Segment
	ConfirmationRecipient common.Address
}
