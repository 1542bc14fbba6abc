package order

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var (
	inputComponents = []abi.ArgumentMarshaling{
		{Name: "token", Type: "address"},
		{Name: "amount", Type: "uint256"},
	}
	outputComponents = []abi.ArgumentMarshaling{
		{Name: "token", Type: "address"},
		{Name: "amount", Type: "uint256"},
		{Name: "recipient", Type: "address"},
	}
	segmentComponents = []abi.ArgumentMarshaling{
		{Name: "target", Type: "address"},
		{Name: "value", Type: "uint256"},
		{Name: "callData", Type: "bytes"},
	}

	orderDataArgs = abi.Arguments{
		{Name: "swapperInputs", Type: mustNewType("tuple[]", inputComponents)},
		{Name: "swapperOutputs", Type: mustNewType("tuple[]", outputComponents)},
		{Name: "fillerOutputs", Type: mustNewType("tuple[]", outputComponents)},
	}
	fillerDataArgs = abi.Arguments{
		{Name: "segments", Type: mustNewType("tuple[]", segmentComponents)},
		{Name: "confirmationRecipient", Type: mustNewType("address", nil)},
	}
)

func mustNewType(t string, components []abi.ArgumentMarshaling) abi.Type {
	typ, err := abi.NewType(t, "", components)
	if err != nil {
		panic(err)
	}
	return typ
}

// EncodeOrderData packs the resolved sequences into an opaque order data
// blob. Counterpart of DecodeOrderData.
func EncodeOrderData(swapperInputs []Input, swapperOutputs, fillerOutputs []Output) ([]byte, error) {
	return orderDataArgs.Pack(swapperInputs, swapperOutputs, fillerOutputs)
}

// DecodeOrderData unpacks an order data blob into the swapper input and
// output sequences. Malformed blobs fail with ErrDecode.
func DecodeOrderData(blob []byte) ([]Input, []Output, []Output, error) {
	vals, err := orderDataArgs.Unpack(blob)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	swapperInputs := *abi.ConvertType(vals[0], new([]Input)).(*[]Input)
	swapperOutputs := *abi.ConvertType(vals[1], new([]Output)).(*[]Output)
	fillerOutputs := *abi.ConvertType(vals[2], new([]Output)).(*[]Output)
	return swapperInputs, swapperOutputs, fillerOutputs, nil
}

// Resolve decodes the order data blob into its structured form. Resolution
// is a pure function of the order; two resolutions of the same order are
// structurally identical.
func Resolve(o Order) (*ResolvedOrder, error) {
	swapperInputs, swapperOutputs, fillerOutputs, err := DecodeOrderData(o.Data)
	if err != nil {
		return nil, err
	}

	return &ResolvedOrder{
		Order:          o,
		SwapperInputs:  swapperInputs,
		SwapperOutputs: swapperOutputs,
		FillerOutputs:  fillerOutputs,
	}, nil
}

// EncodeFillerData packs the filler's solution segments and confirmation
// recipient into the blob passed to fill.
func EncodeFillerData(d FillerData) ([]byte, error) {
	return fillerDataArgs.Pack(d.Segments, d.ConfirmationRecipient)
}

// DecodeFillerData unpacks a filler data blob. Malformed blobs fail with
// ErrDecode.
func DecodeFillerData(blob []byte) (*FillerData, error) {
	vals, err := fillerDataArgs.Unpack(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	segments := *abi.ConvertType(vals[0], new([]Segment)).(*[]Segment)
	recipient := *abi.ConvertType(vals[1], new(common.Address)).(*common.Address)
	return &FillerData{
		Segments:              segments,
		ConfirmationRecipient: recipient,
	}, nil
}
