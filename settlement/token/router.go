package token

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/OxMarco/Cross-chain-Vault/settlement/order"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

const erc20ABI = `[
	{"name":"transfer","type":"function","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"name":"transferFrom","type":"function","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]}
]`

// CallRouter executes filler solution segments against the domain's asset
// registry. A segment targeting a registered token with transfer or
// transferFrom calldata moves funds with the segment caller as sender; a
// segment with native value moves the domain's native asset. Anything else
// fails the segment.
type CallRouter struct {
	registry *Registry
	native   *Asset
	abi      abi.ABI
}

func NewCallRouter(registry *Registry, native *Asset) *CallRouter {
	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		panic(err)
	}

	return &CallRouter{
		registry: registry,
		native:   native,
		abi:      parsed,
	}
}

func (r *CallRouter) Execute(ctx context.Context, caller common.Address, seg order.Segment) error {
	if seg.Value != nil && seg.Value.Sign() > 0 {
		if r.native == nil {
			return fmt.Errorf("no native asset on this domain")
		}
		if err := r.native.Transfer(caller, seg.Target, seg.Value); err != nil {
			return err
		}
	}

	if len(seg.CallData) == 0 {
		return nil
	}
	if len(seg.CallData) < 4 {
		return fmt.Errorf("calldata too short")
	}

	asset, err := r.registry.Asset(seg.Target)
	if err != nil {
		return err
	}

	method, err := r.abi.MethodById(seg.CallData[:4])
	if err != nil {
		return fmt.Errorf("unsupported call: %v", err)
	}

	params := make(map[string]interface{})
	err = method.Inputs.UnpackIntoMap(params, seg.CallData[4:])
	if err != nil {
		return err
	}

	switch method.Name {
	case "transfer":
		to := params["to"].(common.Address)
		amount := params["amount"].(*big.Int)
		return asset.Transfer(caller, to, amount)
	case "transferFrom":
		from := params["from"].(common.Address)
		to := params["to"].(common.Address)
		amount := params["amount"].(*big.Int)
		return asset.TransferFrom(caller, from, to, amount)
	default:
		return fmt.Errorf("unsupported method %s", method.Name)
	}
}

// TransferCallData packs ERC-20 transfer calldata for a solution segment.
func TransferCallData(to common.Address, amount *big.Int) []byte {
	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		panic(err)
	}

	data, err := parsed.Pack("transfer", to, amount)
	if err != nil {
		panic(err)
	}
	return data
}
