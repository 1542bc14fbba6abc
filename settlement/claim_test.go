package settlement_test

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"testing"
	"time"

	"github.com/OxMarco/Cross-chain-Vault/mailbox"
	"github.com/OxMarco/Cross-chain-Vault/settlement"
	"github.com/OxMarco/Cross-chain-Vault/settlement/ledger"
	mock_settlement "github.com/OxMarco/Cross-chain-Vault/settlement/mock"
	"github.com/OxMarco/Cross-chain-Vault/settlement/order"
	"github.com/OxMarco/Cross-chain-Vault/settlement/token"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"
	"github.com/sygmaprotocol/sygma-core/relayer/message"
	"go.uber.org/mock/gomock"
)

type ClaimTestSuite struct {
	suite.Suite

	settler *settlement.Settler
	ledger  *ledger.Ledger
	asset   *token.Asset

	swapperKey *ecdsa.PrivateKey
	swapper    common.Address
	order      order.Order
	orderHash  common.Hash
}

func TestRunClaimTestSuite(t *testing.T) {
	suite.Run(t, new(ClaimTestSuite))
}

func (s *ClaimTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	metrics := mock_settlement.NewMockLifecycleMetrics(ctrl)
	metrics.EXPECT().TrackInitiated(gomock.Any()).AnyTimes()
	metrics.EXPECT().TrackConfirmed(gomock.Any()).AnyTimes()
	metrics.EXPECT().TrackClaimed(gomock.Any()).AnyTimes()

	registry := token.NewRegistry()
	s.asset = token.NewAsset(tokenA, "TKA", 18)
	registry.Register(s.asset)

	s.ledger = ledger.NewLedger(ledger.NewMemKV())
	s.settler = settlement.NewSettler(
		originDomain,
		originContract,
		map[uint64]common.Address{destinationDomain: destinationContract},
		s.ledger,
		registry,
		mock_settlement.NewMockExecutor(ctrl),
		mock_settlement.NewMockDispatcher(ctrl),
		metrics,
	)

	s.swapperKey, _ = crypto.GenerateKey()
	s.swapper = crypto.PubkeyToAddress(s.swapperKey.PublicKey)
	s.asset.Mint(s.swapper, big.NewInt(100))
	s.asset.Approve(s.swapper, originContract, big.NewInt(100))

	s.order = newOrder(s.T(), s.swapper)
	var err error
	s.orderHash, err = order.Hash(s.order)
	s.Nil(err)

	sig := signOrder(s.T(), s.order, s.swapperKey)
	s.Nil(s.settler.Initiate(context.Background(), s.order, sig))
}

func (s *ClaimTestSuite) confirmation(payload []byte) *message.Message {
	e := &mailbox.Envelope{
		ID:           common.HexToHash("0x01"),
		Source:       destinationDomain,
		Destination:  originDomain,
		Sender:       destinationContract,
		Recipient:    originContract,
		Payload:      payload,
		DispatchedAt: time.Now(),
	}
	return &message.Message{
		Source:      e.Source,
		Destination: e.Destination,
		Data:        e,
		Type:        mailbox.ConfirmationMessage,
		Timestamp:   e.DispatchedAt,
	}
}

func (s *ClaimTestSuite) Test_Claim_BeforeConfirmation() {
	err := s.settler.Claim(context.Background(), s.order)
	s.ErrorIs(err, settlement.ErrOrderNotFilled)
	s.Equal(big.NewInt(100), s.asset.BalanceOf(originContract))
}

func (s *ClaimTestSuite) Test_Claim_AfterConfirmation() {
	_, err := s.settler.HandleMessage(s.confirmation(s.orderHash.Bytes()))
	s.Nil(err)
	s.Equal(ledger.Filled, s.ledger.Status(s.orderHash))

	s.Nil(s.settler.Claim(context.Background(), s.order))
	s.Equal(big.NewInt(100), s.asset.BalanceOf(filler))
	s.Equal(big.NewInt(0), s.asset.BalanceOf(originContract))
	s.Equal(ledger.Claimed, s.ledger.Status(s.orderHash))
}

func (s *ClaimTestSuite) Test_Claim_Twice() {
	_, err := s.settler.HandleMessage(s.confirmation(s.orderHash.Bytes()))
	s.Nil(err)

	s.Nil(s.settler.Claim(context.Background(), s.order))
	err = s.settler.Claim(context.Background(), s.order)
	s.ErrorIs(err, settlement.ErrOrderNotFilled)
	s.Equal(big.NewInt(100), s.asset.BalanceOf(filler))
}

func (s *ClaimTestSuite) Test_HandleMessage_Duplicated() {
	m := s.confirmation(s.orderHash.Bytes())
	_, err := s.settler.HandleMessage(m)
	s.Nil(err)
	_, err = s.settler.HandleMessage(m)
	s.Nil(err)

	s.Equal(ledger.Filled, s.ledger.Status(s.orderHash))
}

func (s *ClaimTestSuite) Test_HandleMessage_AfterClaim() {
	_, err := s.settler.HandleMessage(s.confirmation(s.orderHash.Bytes()))
	s.Nil(err)
	s.Nil(s.settler.Claim(context.Background(), s.order))

	// replayed confirmation cannot resurrect a settled order
	_, err = s.settler.HandleMessage(s.confirmation(s.orderHash.Bytes()))
	s.Nil(err)
	s.Equal(ledger.Claimed, s.ledger.Status(s.orderHash))

	err = s.settler.Claim(context.Background(), s.order)
	s.ErrorIs(err, settlement.ErrOrderNotFilled)
}

func (s *ClaimTestSuite) Test_HandleMessage_UnknownSender() {
	m := s.confirmation(s.orderHash.Bytes())
	m.Data.(*mailbox.Envelope).Sender = filler

	_, err := s.settler.HandleMessage(m)
	s.NotNil(err)
	s.Equal(ledger.Initiated, s.ledger.Status(s.orderHash))
}

func (s *ClaimTestSuite) Test_HandleMessage_WrongRecipient() {
	m := s.confirmation(s.orderHash.Bytes())
	m.Data.(*mailbox.Envelope).Recipient = filler

	_, err := s.settler.HandleMessage(m)
	s.NotNil(err)
}

func (s *ClaimTestSuite) Test_HandleMessage_MalformedPayload() {
	_, err := s.settler.HandleMessage(s.confirmation([]byte{0x01, 0x02}))
	s.NotNil(err)
}

func (s *ClaimTestSuite) Test_Reclaim_BeforeDeadline() {
	err := s.settler.Reclaim(context.Background(), s.order)
	s.NotNil(err)
	s.Equal(big.NewInt(100), s.asset.BalanceOf(originContract))
}

func (s *ClaimTestSuite) Test_Reclaim_AfterDeadline() {
	o := s.order
	o.InitiateDeadline = 1
	expiredHash, err := order.Hash(o)
	s.Nil(err)

	// escrow initiated in the past, never filled
	s.Nil(s.ledger.MarkInitiated(expiredHash))
	s.asset.Mint(originContract, big.NewInt(100))

	s.Nil(s.settler.Reclaim(context.Background(), o))
	s.Equal(big.NewInt(100), s.asset.BalanceOf(s.swapper))
	s.Equal(ledger.Reclaimed, s.ledger.Status(expiredHash))

	// a late confirmation for the reclaimed escrow changes nothing
	_, err = s.settler.HandleMessage(s.confirmation(expiredHash.Bytes()))
	s.Nil(err)
	s.Equal(ledger.Reclaimed, s.ledger.Status(expiredHash))
}

func (s *ClaimTestSuite) Test_Reclaim_NeverInitiated() {
	o := s.order
	o.Nonce = big.NewInt(7)
	o.InitiateDeadline = 1

	err := s.settler.Reclaim(context.Background(), o)
	s.ErrorIs(err, ledger.ErrInvalidTransition)
}
