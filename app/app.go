// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/sygmaprotocol/sygma-core/observability"
	"github.com/sygmaprotocol/sygma-core/relayer/message"
	"github.com/sygmaprotocol/sygma-core/store/lvldb"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"

	"github.com/OxMarco/Cross-chain-Vault/api"
	"github.com/OxMarco/Cross-chain-Vault/api/handlers"
	"github.com/OxMarco/Cross-chain-Vault/config"
	"github.com/OxMarco/Cross-chain-Vault/config/domain"
	"github.com/OxMarco/Cross-chain-Vault/health"
	"github.com/OxMarco/Cross-chain-Vault/mailbox"
	"github.com/OxMarco/Cross-chain-Vault/metrics"
	"github.com/OxMarco/Cross-chain-Vault/settlement"
	"github.com/OxMarco/Cross-chain-Vault/settlement/ledger"
	"github.com/OxMarco/Cross-chain-Vault/settlement/token"
	"github.com/OxMarco/Cross-chain-Vault/vault"
)

var Version string

func Run() error {
	var err error

	configFlag := viper.GetString(config.ConfigFlagName)

	var configuration *config.Config
	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV(nil)
		panicOnError(err)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag, nil)
		panicOnError(err)
	}

	logLevel, err := zerolog.ParseLevel(configuration.RuntimeConfig.LogLevel)
	panicOnError(err)
	observability.ConfigureLogger(logLevel, os.Stdout)

	log.Info().Msg("Successfully loaded configuration")

	db, err := lvldb.NewLvlDB(viper.GetString(config.BlockstoreFlagName))
	panicOnError(err)

	mp, err := observability.InitMetricProvider(context.Background(), configuration.RuntimeConfig.OpenTelemetryCollectorURL)
	panicOnError(err)
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	orderMetrics, err := metrics.NewOrderMetrics(
		ctx,
		mp.Meter("settlement-metric-provider"),
		metric.WithAttributes(
			attribute.String("env", configuration.RuntimeConfig.Env),
			attribute.String("id", configuration.RuntimeConfig.Id),
			attribute.String("version", Version),
		))
	panicOnError(err)

	mb := mailbox.NewMailbox()
	settlers := make(map[uint64]handlers.OrderSettler)
	registries := make(map[uint64]*token.Registry)
	tokenStore := &config.TokenStore{Tokens: make(map[uint64]map[string]config.TokenConfig)}

	for _, domainConfig := range configuration.DomainConfigs {
		dc, err := domain.NewDomainConfig(domainConfig)
		panicOnError(err)

		domainID := *dc.GeneralDomainConfig.Id
		log.Info().Uint64("domain", domainID).Msgf("Registering settlement domain")

		registry := token.NewRegistry()
		var native *token.Asset
		for symbol, tokenConfig := range dc.Tokens {
			asset := token.NewAsset(tokenConfig.Address, symbol, tokenConfig.Decimals)
			registry.Register(asset)
			if symbol == dc.NativeSymbol {
				native = asset
			}
		}

		settler := settlement.NewSettler(
			domainID,
			dc.Contract,
			dc.Counterparts,
			ledger.NewLedger(ledger.NewPrefixedKV(db, fmt.Sprintf("domain:%d:", domainID))),
			registry,
			token.NewCallRouter(registry, native),
			mb,
			orderMetrics,
		)

		mh := message.NewMessageHandler()
		mh.RegisterMessageHandler(mailbox.ConfirmationMessage, settler)
		mb.Enroll(domainID, dc.Contract, mh)

		settlers[domainID] = settler
		registries[domainID] = registry
		tokenStore.Tokens[domainID] = dc.Tokens
	}

	var vaultHandler *handlers.VaultHandler
	if configuration.VaultConfig.Enabled {
		registry, ok := registries[configuration.VaultConfig.Domain]
		if !ok {
			panic(fmt.Errorf("vault domain '%d' not configured", configuration.VaultConfig.Domain))
		}

		tokenConfig, err := tokenStore.ConfigBySymbol(configuration.VaultConfig.Domain, configuration.VaultConfig.Asset)
		panicOnError(err)
		asset, err := registry.Asset(tokenConfig.Address)
		panicOnError(err)

		v := vault.NewVault(asset, common.HexToAddress(configuration.VaultConfig.Account))
		vaultHandler = handlers.NewVaultHandler(v)
		log.Info().Msgf("Registered vault over %s on domain %d", configuration.VaultConfig.Asset, configuration.VaultConfig.Domain)
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		mb.Start(gCtx)
		return nil
	})
	g.Go(func() error {
		health.StartHealthEndpoint(configuration.RuntimeConfig.HealthPort)
		return nil
	})
	g.Go(func() error {
		api.Serve(gCtx, configuration.RuntimeConfig.ApiAddr, handlers.NewOrdersHandler(settlers), vaultHandler)
		return nil
	})

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	log.Info().Msgf("Started settlement node: %s. Version: v%s", configuration.RuntimeConfig.Id, Version)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)
	cancel()
	return g.Wait()
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
