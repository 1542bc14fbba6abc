// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package domain_test

import (
	"testing"

	"github.com/OxMarco/Cross-chain-Vault/config"
	"github.com/OxMarco/Cross-chain-Vault/config/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
)

type NewDomainConfigTestSuite struct {
	suite.Suite
}

func TestRunNewDomainConfigTestSuite(t *testing.T) {
	suite.Run(t, new(NewDomainConfigTestSuite))
}

func (s *NewDomainConfigTestSuite) Test_FailedDecode() {
	_, err := domain.NewDomainConfig(map[string]interface{}{
		"id": "invalid",
	})

	s.NotNil(err)
}

func (s *NewDomainConfigTestSuite) Test_FailedGeneralConfigValidation() {
	_, err := domain.NewDomainConfig(map[string]interface{}{})

	s.NotNil(err)
}

func (s *NewDomainConfigTestSuite) Test_MissingContract() {
	_, err := domain.NewDomainConfig(map[string]interface{}{
		"id":   1,
		"name": "evm1",
	})

	s.NotNil(err)
}

func (s *NewDomainConfigTestSuite) Test_InvalidTokenAddress() {
	_, err := domain.NewDomainConfig(map[string]interface{}{
		"id":       1,
		"name":     "evm1",
		"contract": "0x1886a1E8057C10F20c7386576a6a0716B20B2734",
		"tokens": map[string]interface{}{
			"USDC": map[string]interface{}{
				"address": "not-an-address",
			},
		},
	})

	s.NotNil(err)
}

func (s *NewDomainConfigTestSuite) Test_ValidConfig() {
	actualConfig, err := domain.NewDomainConfig(map[string]interface{}{
		"id":       1,
		"name":     "evm1",
		"contract": "0x1886a1E8057C10F20c7386576a6a0716B20B2734",
		"counterparts": map[uint64]string{
			2: "0x6FFc5848C46319e7c6d48f56ca2152b213D4535f",
		},
		"tokens": map[string]interface{}{
			"USDC": map[string]interface{}{
				"address":  "0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5",
				"decimals": 6,
			},
		},
	})

	id := new(uint64)
	*id = 1
	s.Nil(err)
	s.Equal(*actualConfig, domain.DomainConfig{
		GeneralDomainConfig: domain.GeneralDomainConfig{
			Name: "evm1",
			Id:   id,
			Type: "evm",
		},
		Contract: common.HexToAddress("0x1886a1E8057C10F20c7386576a6a0716B20B2734"),
		Counterparts: map[uint64]common.Address{
			2: common.HexToAddress("0x6FFc5848C46319e7c6d48f56ca2152b213D4535f"),
		},
		NativeSymbol: "ETH",
		Tokens: map[string]config.TokenConfig{
			"USDC": {
				Address:  common.HexToAddress("0x5c7BCd6E7De5423a257D81B442095A1a6ced35C5"),
				Decimals: 6,
			},
		},
	})
}
