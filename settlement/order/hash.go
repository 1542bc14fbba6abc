package order

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

const (
	DOMAIN_NAME = "CrossChainVault"
	VERSION     = "1.0.0"
)

// Hash calculates the typed data hash identifying an order. The hash binds
// the full order structure to the settlement contract instance and origin
// domain, so the same intent signed for another instance never collides.
func Hash(o Order) (common.Hash, error) {
	msg := apitypes.TypedDataMessage{
		"settlementContract": o.SettlementContract.Hex(),
		"swapper":            o.Swapper.Hex(),
		"nonce":              o.Nonce,
		"originDomain":       new(big.Int).SetUint64(o.OriginDomain),
		"initiateDeadline":   new(big.Int).SetUint64(o.InitiateDeadline),
		"fillDeadline":       new(big.Int).SetUint64(o.FillDeadline),
		"orderData":          o.Data,
	}

	chainId := math.HexOrDecimal256(*new(big.Int).SetUint64(o.OriginDomain))
	typedData := apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": []apitypes.Type{
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			"Order": []apitypes.Type{
				{Name: "settlementContract", Type: "address"},
				{Name: "swapper", Type: "address"},
				{Name: "nonce", Type: "uint256"},
				{Name: "originDomain", Type: "uint256"},
				{Name: "initiateDeadline", Type: "uint256"},
				{Name: "fillDeadline", Type: "uint256"},
				{Name: "orderData", Type: "bytes"},
			},
		},
		PrimaryType: "Order",
		Domain: apitypes.TypedDataDomain{
			Name:              DOMAIN_NAME,
			Version:           VERSION,
			ChainId:           &chainId,
			VerifyingContract: o.SettlementContract.Hex(),
		},
		Message: msg,
	}

	domainSeparator, err := typedData.HashStruct("EIP712Domain", typedData.Domain.Map())
	if err != nil {
		return common.Hash{}, err
	}

	messageHash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return common.Hash{}, err
	}

	rawData := []byte(fmt.Sprintf("\x19\x01%s%s", string(domainSeparator), string(messageHash)))
	return common.BytesToHash(crypto.Keccak256(rawData)), nil
}
