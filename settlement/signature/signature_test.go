package signature_test

import (
	"testing"

	"github.com/OxMarco/Cross-chain-Vault/settlement/signature"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"
)

type SignatureTestSuite struct {
	suite.Suite

	hash common.Hash
}

func TestRunSignatureTestSuite(t *testing.T) {
	suite.Run(t, new(SignatureTestSuite))
}

func (s *SignatureTestSuite) SetupTest() {
	s.hash = common.HexToHash("0x93a9d5e32f5c81cbd17ceb842edc65002e3a79da4efbdc9f1e1f7e97fbcd669b")
}

func (s *SignatureTestSuite) Test_Verify_ValidSignature() {
	key, _ := crypto.GenerateKey()
	signer := crypto.PubkeyToAddress(key.PublicKey)

	sig, err := signature.Sign(s.hash, key)
	s.Nil(err)

	s.Nil(signature.Verify(s.hash, sig, signer))
}

func (s *SignatureTestSuite) Test_Verify_LegacyRecoveryID() {
	key, _ := crypto.GenerateKey()
	signer := crypto.PubkeyToAddress(key.PublicKey)

	sig, err := signature.Sign(s.hash, key)
	s.Nil(err)
	sig[crypto.RecoveryIDOffset] += 27

	s.Nil(signature.Verify(s.hash, sig, signer))
}

func (s *SignatureTestSuite) Test_Verify_WrongSigner() {
	key, _ := crypto.GenerateKey()
	other, _ := crypto.GenerateKey()

	sig, err := signature.Sign(s.hash, key)
	s.Nil(err)

	err = signature.Verify(s.hash, sig, crypto.PubkeyToAddress(other.PublicKey))
	s.ErrorIs(err, signature.ErrAuthorization)
}

func (s *SignatureTestSuite) Test_Verify_MalformedSignature() {
	key, _ := crypto.GenerateKey()
	signer := crypto.PubkeyToAddress(key.PublicKey)

	err := signature.Verify(s.hash, []byte{0x01, 0x02}, signer)
	s.ErrorIs(err, signature.ErrAuthorization)
}

func (s *SignatureTestSuite) Test_Verify_TamperedSignature() {
	key, _ := crypto.GenerateKey()
	signer := crypto.PubkeyToAddress(key.PublicKey)

	sig, err := signature.Sign(s.hash, key)
	s.Nil(err)
	sig[0] ^= 0xff

	err = signature.Verify(s.hash, sig, signer)
	s.ErrorIs(err, signature.ErrAuthorization)
}

func (s *SignatureTestSuite) Test_Verify_ZeroClaimedSigner() {
	key, _ := crypto.GenerateKey()

	sig, err := signature.Sign(s.hash, key)
	s.Nil(err)

	err = signature.Verify(s.hash, sig, common.Address{})
	s.ErrorIs(err, signature.ErrAuthorization)
}
