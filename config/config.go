// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/json"
	"fmt"

	"github.com/creasty/defaults"
	"github.com/spf13/viper"
)

const ENVPrefix = "CCV"

type Config struct {
	RuntimeConfig RuntimeConfig            `mapstructure:"runtime"`
	VaultConfig   VaultConfig              `mapstructure:"vault"`
	DomainConfigs []map[string]interface{} `mapstructure:"domains"`
}

type RuntimeConfig struct {
	Id                        string `mapstructure:"id"`
	Env                       string `mapstructure:"env"`
	LogLevel                  string `mapstructure:"logLevel" default:"info"`
	ApiAddr                   string `mapstructure:"apiAddr" default:":8080"`
	HealthPort                uint16 `mapstructure:"healthPort" default:"9001"`
	OpenTelemetryCollectorURL string `mapstructure:"openTelemetryCollectorURL"`
}

type VaultConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Domain  uint64 `mapstructure:"domain"`
	Account string `mapstructure:"account"`
	Asset   string `mapstructure:"asset"`
}

func (c *Config) Validate() error {
	if len(c.DomainConfigs) == 0 {
		return fmt.Errorf("required field domains empty")
	}
	if c.VaultConfig.Enabled {
		if c.VaultConfig.Account == "" {
			return fmt.Errorf("required field vault.Account empty")
		}
		if c.VaultConfig.Asset == "" {
			return fmt.Errorf("required field vault.Asset empty")
		}
	}
	return nil
}

// GetConfigFromFile reads the configuration file at path and merges it on
// top of baseConfig.
func GetConfigFromFile(path string, baseConfig *Config) (*Config, error) {
	if baseConfig == nil {
		baseConfig = &Config{}
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := v.Unmarshal(baseConfig); err != nil {
		return nil, err
	}

	if err := defaults.Set(&baseConfig.RuntimeConfig); err != nil {
		return nil, err
	}
	if err := baseConfig.Validate(); err != nil {
		return nil, err
	}
	return baseConfig, nil
}

// GetConfigFromENV loads the configuration from CCV_ prefixed environment
// variables. Domain and vault configuration are passed as JSON blobs in
// CCV_DOMAINS and CCV_VAULT.
func GetConfigFromENV(baseConfig *Config) (*Config, error) {
	if baseConfig == nil {
		baseConfig = &Config{}
	}

	v := viper.New()
	v.SetEnvPrefix(ENVPrefix)
	v.AutomaticEnv()

	if raw := v.GetString("DOMAINS"); raw != "" {
		domains := make([]map[string]interface{}, 0)
		if err := json.Unmarshal([]byte(raw), &domains); err != nil {
			return nil, fmt.Errorf("unable to parse %s_DOMAINS: %w", ENVPrefix, err)
		}
		baseConfig.DomainConfigs = domains
	}
	if raw := v.GetString("VAULT"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &baseConfig.VaultConfig); err != nil {
			return nil, fmt.Errorf("unable to parse %s_VAULT: %w", ENVPrefix, err)
		}
	}

	if id := v.GetString("ID"); id != "" {
		baseConfig.RuntimeConfig.Id = id
	}
	if env := v.GetString("ENV"); env != "" {
		baseConfig.RuntimeConfig.Env = env
	}
	if logLevel := v.GetString("LOG_LEVEL"); logLevel != "" {
		baseConfig.RuntimeConfig.LogLevel = logLevel
	}
	if apiAddr := v.GetString("API_ADDR"); apiAddr != "" {
		baseConfig.RuntimeConfig.ApiAddr = apiAddr
	}
	if healthPort := v.GetUint("HEALTH_PORT"); healthPort != 0 {
		baseConfig.RuntimeConfig.HealthPort = uint16(healthPort)
	}
	if otelURL := v.GetString("OTEL_COLLECTOR_URL"); otelURL != "" {
		baseConfig.RuntimeConfig.OpenTelemetryCollectorURL = otelURL
	}

	if err := defaults.Set(&baseConfig.RuntimeConfig); err != nil {
		return nil, err
	}
	if err := baseConfig.Validate(); err != nil {
		return nil, err
	}
	return baseConfig, nil
}
