package token_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/OxMarco/Cross-chain-Vault/settlement/order"
	"github.com/OxMarco/Cross-chain-Vault/settlement/token"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
)

var (
	tokenA = common.HexToAddress("0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5")
	alice  = common.HexToAddress("0xbe526bA5d1ad94cC59D7A79d99A59F607d31A657")
	bob    = common.HexToAddress("0xde526bA5d1ad94cC59D7A79d99A59F607d31A657")
	carol  = common.HexToAddress("0x1886a1E8057C10F20c7386576a6a0716B20B2734")
)

type AssetTestSuite struct {
	suite.Suite

	asset *token.Asset
}

func TestRunAssetTestSuite(t *testing.T) {
	suite.Run(t, new(AssetTestSuite))
}

func (s *AssetTestSuite) SetupTest() {
	s.asset = token.NewAsset(tokenA, "TKA", 18)
	s.asset.Mint(alice, big.NewInt(100))
}

func (s *AssetTestSuite) Test_Transfer() {
	s.Nil(s.asset.Transfer(alice, bob, big.NewInt(40)))
	s.Equal(big.NewInt(60), s.asset.BalanceOf(alice))
	s.Equal(big.NewInt(40), s.asset.BalanceOf(bob))
}

func (s *AssetTestSuite) Test_Transfer_InsufficientBalance() {
	err := s.asset.Transfer(alice, bob, big.NewInt(101))
	s.ErrorIs(err, token.ErrTransfer)
	s.Equal(big.NewInt(100), s.asset.BalanceOf(alice))
	s.Equal(big.NewInt(0), s.asset.BalanceOf(bob))
}

func (s *AssetTestSuite) Test_TransferFrom() {
	s.asset.Approve(alice, bob, big.NewInt(50))

	s.Nil(s.asset.TransferFrom(bob, alice, carol, big.NewInt(30)))
	s.Equal(big.NewInt(70), s.asset.BalanceOf(alice))
	s.Equal(big.NewInt(30), s.asset.BalanceOf(carol))
	s.Equal(big.NewInt(20), s.asset.Allowance(alice, bob))
}

func (s *AssetTestSuite) Test_TransferFrom_InsufficientAllowance() {
	s.asset.Approve(alice, bob, big.NewInt(10))

	err := s.asset.TransferFrom(bob, alice, carol, big.NewInt(30))
	s.ErrorIs(err, token.ErrTransfer)
	s.Equal(big.NewInt(100), s.asset.BalanceOf(alice))
}

type CallRouterTestSuite struct {
	suite.Suite

	registry *token.Registry
	asset    *token.Asset
	router   *token.CallRouter
}

func TestRunCallRouterTestSuite(t *testing.T) {
	suite.Run(t, new(CallRouterTestSuite))
}

func (s *CallRouterTestSuite) SetupTest() {
	s.registry = token.NewRegistry()
	s.asset = token.NewAsset(tokenA, "TKA", 18)
	s.asset.Mint(alice, big.NewInt(100))
	s.registry.Register(s.asset)
	s.router = token.NewCallRouter(s.registry, nil)
}

func (s *CallRouterTestSuite) Test_Execute_Transfer() {
	seg := order.Segment{
		Target:   tokenA,
		Value:    big.NewInt(0),
		CallData: token.TransferCallData(bob, big.NewInt(25)),
	}

	s.Nil(s.router.Execute(context.Background(), alice, seg))
	s.Equal(big.NewInt(25), s.asset.BalanceOf(bob))
}

func (s *CallRouterTestSuite) Test_Execute_UnknownTarget() {
	seg := order.Segment{
		Target:   bob,
		Value:    big.NewInt(0),
		CallData: token.TransferCallData(bob, big.NewInt(25)),
	}

	s.NotNil(s.router.Execute(context.Background(), alice, seg))
}

func (s *CallRouterTestSuite) Test_Execute_ShortCalldata() {
	seg := order.Segment{
		Target:   tokenA,
		Value:    big.NewInt(0),
		CallData: []byte{0x01},
	}

	s.NotNil(s.router.Execute(context.Background(), alice, seg))
}

func (s *CallRouterTestSuite) Test_Execute_NoopSegment() {
	seg := order.Segment{
		Target: tokenA,
		Value:  big.NewInt(0),
	}

	s.Nil(s.router.Execute(context.Background(), alice, seg))
}
