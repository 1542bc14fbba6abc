package signature

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ErrAuthorization is returned when a signature does not bind the claimed
// swapper to the order hash.
var ErrAuthorization = errors.New("signature does not match swapper")

// Verify checks that sig was produced by claimedSigner over orderHash.
// Recovery failure is always an authorization error, never a silently
// accepted sentinel address, and the zero address is rejected outright so a
// failed recovery can never collide with a real signer.
func Verify(orderHash common.Hash, sig []byte, claimedSigner common.Address) error {
	if claimedSigner == (common.Address{}) {
		return fmt.Errorf("%w: zero swapper address", ErrAuthorization)
	}

	recovered, err := Recover(orderHash, sig)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAuthorization, err)
	}

	if recovered != claimedSigner {
		return fmt.Errorf("%w: recovered %s", ErrAuthorization, recovered.Hex())
	}
	return nil
}

// Recover returns the address that signed orderHash. The signature has to
// be 65 bytes in [R || S || V] format, with V either 0/1 or 27/28.
func Recover(orderHash common.Hash, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("invalid signature length %d", len(sig))
	}

	normalized := make([]byte, crypto.SignatureLength)
	copy(normalized, sig)
	if normalized[crypto.RecoveryIDOffset] >= 27 {
		normalized[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(orderHash.Bytes(), normalized)
	if err != nil {
		return common.Address{}, fmt.Errorf("recovery failed: %v", err)
	}

	recovered := crypto.PubkeyToAddress(*pub)
	if recovered == (common.Address{}) {
		return common.Address{}, errors.New("recovered zero address")
	}
	return recovered, nil
}

// Sign produces a [R || S || V] signature over orderHash. Used by swappers
// when authoring orders off-chain and by tests.
func Sign(orderHash common.Hash, key *ecdsa.PrivateKey) ([]byte, error) {
	return crypto.Sign(orderHash.Bytes(), key)
}
