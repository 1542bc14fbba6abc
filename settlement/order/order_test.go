package order_test

import (
	"math/big"
	"testing"

	"github.com/OxMarco/Cross-chain-Vault/settlement/order"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
)

type CodecTestSuite struct {
	suite.Suite

	order order.Order
}

func TestRunCodecTestSuite(t *testing.T) {
	suite.Run(t, new(CodecTestSuite))
}

func (s *CodecTestSuite) SetupTest() {
	data, err := order.EncodeOrderData(
		[]order.Input{
			{
				Token:  common.HexToAddress("0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5"),
				Amount: big.NewInt(100),
			},
		},
		[]order.Output{
			{
				Token:     common.HexToAddress("0x6FFc5848C46319e7c6d48f56ca2152b213D4535f"),
				Amount:    big.NewInt(50),
				Recipient: common.HexToAddress("0xbe526bA5d1ad94cC59D7A79d99A59F607d31A657"),
			},
		},
		[]order.Output{
			{
				Token:     common.HexToAddress("0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5"),
				Amount:    big.NewInt(100),
				Recipient: common.HexToAddress("0xde526bA5d1ad94cC59D7A79d99A59F607d31A657"),
			},
		},
	)
	s.Nil(err)

	s.order = order.Order{
		SettlementContract: common.HexToAddress("0x1886a1E8057C10F20c7386576a6a0716B20B2734"),
		Swapper:            common.HexToAddress("0xbe526bA5d1ad94cC59D7A79d99A59F607d31A657"),
		Nonce:              big.NewInt(1),
		OriginDomain:       1,
		InitiateDeadline:   1767222000,
		FillDeadline:       1767225600,
		Data:               data,
	}
}

func (s *CodecTestSuite) Test_Resolve_Deterministic() {
	first, err := order.Resolve(s.order)
	s.Nil(err)
	second, err := order.Resolve(s.order)
	s.Nil(err)

	s.Equal(first, second)
	s.Len(first.SwapperInputs, 1)
	s.Equal(big.NewInt(100), first.SwapperInputs[0].Amount)
	s.Len(first.SwapperOutputs, 1)
	s.Equal(big.NewInt(50), first.SwapperOutputs[0].Amount)
	s.Len(first.FillerOutputs, 1)
}

func (s *CodecTestSuite) Test_Resolve_MalformedBlob() {
	o := s.order
	o.Data = []byte{0x01, 0x02, 0x03}

	_, err := order.Resolve(o)
	s.ErrorIs(err, order.ErrDecode)
}

func (s *CodecTestSuite) Test_Resolve_EmptyBlob() {
	o := s.order
	o.Data = nil

	_, err := order.Resolve(o)
	s.ErrorIs(err, order.ErrDecode)
}

func (s *CodecTestSuite) Test_Hash_Stable() {
	first, err := order.Hash(s.order)
	s.Nil(err)
	second, err := order.Hash(s.order)
	s.Nil(err)

	s.Equal(first, second)
}

func (s *CodecTestSuite) Test_Hash_BindsNonce() {
	first, err := order.Hash(s.order)
	s.Nil(err)

	o := s.order
	o.Nonce = big.NewInt(2)
	second, err := order.Hash(o)
	s.Nil(err)

	s.NotEqual(first, second)
}

func (s *CodecTestSuite) Test_Hash_BindsOriginDomain() {
	first, err := order.Hash(s.order)
	s.Nil(err)

	o := s.order
	o.OriginDomain = 2
	second, err := order.Hash(o)
	s.Nil(err)

	s.NotEqual(first, second)
}

func (s *CodecTestSuite) Test_FillerData_RoundTrip() {
	d := order.FillerData{
		Segments: []order.Segment{
			{
				Target:   common.HexToAddress("0x6FFc5848C46319e7c6d48f56ca2152b213D4535f"),
				Value:    big.NewInt(0),
				CallData: []byte{0xde, 0xad, 0xbe, 0xef},
			},
		},
		ConfirmationRecipient: common.HexToAddress("0x1886a1E8057C10F20c7386576a6a0716B20B2734"),
	}

	blob, err := order.EncodeFillerData(d)
	s.Nil(err)

	decoded, err := order.DecodeFillerData(blob)
	s.Nil(err)
	s.Equal(d.ConfirmationRecipient, decoded.ConfirmationRecipient)
	s.Equal(d.Segments, decoded.Segments)
}

func (s *CodecTestSuite) Test_FillerData_Malformed() {
	_, err := order.DecodeFillerData([]byte{0xff})
	s.ErrorIs(err, order.ErrDecode)
}
