// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package domain

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"

	"github.com/OxMarco/Cross-chain-Vault/config"
)

type GeneralDomainConfig struct {
	Name string  `mapstructure:"name"`
	Id   *uint64 `mapstructure:"id"`
	Type string  `mapstructure:"type" default:"evm"`
}

func (c *GeneralDomainConfig) Validate() error {
	// viper defaults to 0 for not specified ints
	if c.Id == nil {
		return fmt.Errorf("required field domain.Id empty for domain %v", c.Id)
	}
	if c.Name == "" {
		return fmt.Errorf("required field domain.Name empty for domain %v", *c.Id)
	}
	return nil
}

type DomainConfig struct {
	GeneralDomainConfig GeneralDomainConfig
	Contract            common.Address
	Counterparts        map[uint64]common.Address
	NativeSymbol        string

	Tokens map[string]config.TokenConfig
}

type RawTokenConfig struct {
	Address  string `mapstructure:"address"`
	Decimals uint8  `mapstructure:"decimals" default:"18"`
}

type RawDomainConfig struct {
	GeneralDomainConfig `mapstructure:",squash"`
	Contract            string                    `mapstructure:"contract"`
	Counterparts        map[uint64]string         `mapstructure:"counterparts"`
	NativeSymbol        string                    `mapstructure:"nativeSymbol" default:"ETH"`
	Tokens              map[string]RawTokenConfig `mapstructure:"tokens"`
}

func (c *RawDomainConfig) Validate() error {
	if err := c.GeneralDomainConfig.Validate(); err != nil {
		return err
	}
	if c.Contract == "" {
		return fmt.Errorf("required field domain.Contract empty for domain %v", *c.Id)
	}
	if !common.IsHexAddress(c.Contract) {
		return fmt.Errorf("invalid domain.Contract %s for domain %v", c.Contract, *c.Id)
	}
	for symbol, token := range c.Tokens {
		if !common.IsHexAddress(token.Address) {
			return fmt.Errorf("invalid address %s for token %s", token.Address, symbol)
		}
	}
	for id, counterpart := range c.Counterparts {
		if !common.IsHexAddress(counterpart) {
			return fmt.Errorf("invalid counterpart address %s for domain %d", counterpart, id)
		}
	}
	return nil
}

// NewDomainConfig decodes and validates an instance of a DomainConfig from
// raw domain config
func NewDomainConfig(domainConfig map[string]interface{}) (*DomainConfig, error) {
	var c RawDomainConfig
	err := mapstructure.Decode(domainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	tokens := make(map[string]config.TokenConfig)
	for symbol, token := range c.Tokens {
		tokens[symbol] = config.TokenConfig{
			Address:  common.HexToAddress(token.Address),
			Decimals: token.Decimals,
		}
	}

	counterparts := make(map[uint64]common.Address)
	for id, counterpart := range c.Counterparts {
		counterparts[id] = common.HexToAddress(counterpart)
	}

	return &DomainConfig{
		GeneralDomainConfig: c.GeneralDomainConfig,
		Contract:            common.HexToAddress(c.Contract),
		Counterparts:        counterparts,
		NativeSymbol:        c.NativeSymbol,
		Tokens:              tokens,
	}, nil
}
