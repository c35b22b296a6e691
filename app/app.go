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
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/viper"

	"github.com/ChainSafe/gateway-custody/chains"
	"github.com/ChainSafe/gateway-custody/config"
	"github.com/ChainSafe/gateway-custody/events"
	"github.com/ChainSafe/gateway-custody/flags"
	"github.com/ChainSafe/gateway-custody/health"
	"github.com/ChainSafe/gateway-custody/jobs"
	"github.com/ChainSafe/gateway-custody/logger"
	"github.com/ChainSafe/gateway-custody/lvldb"
	"github.com/ChainSafe/gateway-custody/metrics"
	"github.com/ChainSafe/gateway-custody/minter"
	"github.com/ChainSafe/gateway-custody/node"
	"github.com/ChainSafe/gateway-custody/tokens"
	"github.com/ChainSafe/gateway-custody/wallet"
)

func Run() error {
	var err error

	configFlag := viper.GetString(flags.ConfigFlagName)

	configuration := &config.Config{}
	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV(configuration)
		panicOnError(err)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag, configuration)
		panicOnError(err)
	}

	logger.ConfigureLogger(configuration.NodeConfig.LogLevel, os.Stdout)

	log.Info().Msg("Successfully loaded configuration")

	blockstorePath := viper.GetString(flags.BlockstoreFlagName)
	if viper.GetBool(flags.FreshStartFlagName) {
		log.Info().Msgf("Fresh start requested, removing blockstore at %s", blockstorePath)
		panicOnError(os.RemoveAll(blockstorePath))
	}

	// wait until the previous instance releases the blockstore lock
	var db *lvldb.LVLDB
	for {
		db, err = lvldb.NewLvlDB(blockstorePath)
		if err != nil {
			log.Error().Err(err).Msg("Unable to connect to blockstore file, retry in 10 seconds")
			time.Sleep(10 * time.Second)
		} else {
			log.Info().Msg("Successfully connected to blockstore file")
			break
		}
	}
	defer db.Close()

	meter, err := metrics.DefaultMeter(context.Background(), configuration.NodeConfig.OpenTelemetryCollectorURL)
	panicOnError(err)
	gatewayMetrics, err := metrics.NewGatewayMetrics(meter, configuration.NodeConfig.Env, configuration.NodeConfig.Id)
	panicOnError(err)

	sink := events.MultiSink{events.NewLogSink(log.Logger), metrics.NewSink(gatewayMetrics)}
	backend := tokens.NewInMemoryBackend()
	heights, err := chains.NewSlotClock(time.Now(), configuration.NodeConfig.SlotDuration)
	panicOnError(err)

	gatewayNode := node.New(gatewayMetrics)
	for _, ledgerConfig := range configuration.LedgerConfigs {
		switch ledgerConfig["type"] {
		case "wallet":
			{
				walletConfig, err := wallet.NewWalletConfig(ledgerConfig)
				panicOnError(err)

				w, err := wallet.NewWallet(db, backend, heights, sink, walletConfig.Config)
				panicOnError(err)
				for _, token := range walletConfig.Tokens {
					if err := w.AddToken(walletConfig.TokenController, token); err != nil {
						log.Warn().Err(err).Str("token", token.Hex()).Msg("skipping bootstrap token")
					}
				}
				for _, signer := range walletConfig.BurnSigners {
					if err := w.AddBurnSigner(walletConfig.Owner, signer); err != nil {
						log.Warn().Err(err).Str("signer", signer.Hex()).Msg("skipping bootstrap burn signer")
					}
				}

				gatewayNode.AddWallet(w)
			}
		case "minter":
			{
				minterConfig, err := minter.NewMinterConfig(ledgerConfig)
				panicOnError(err)

				m, err := minter.NewMinter(db, backend, heights, sink, minterConfig.Config)
				panicOnError(err)
				for _, token := range minterConfig.Tokens {
					if err := m.AddToken(minterConfig.TokenController, token); err != nil {
						log.Warn().Err(err).Str("token", token.Hex()).Msg("skipping bootstrap token")
					}
				}
				for _, attester := range minterConfig.Attesters {
					if err := m.AddAttester(minterConfig.Owner, attester); err != nil {
						log.Warn().Err(err).Str("attester", attester.Hex()).Msg("skipping bootstrap attester")
					}
				}

				gatewayNode.AddMinter(m)
			}
		default:
			panic(fmt.Errorf("type '%s' not recognized", ledgerConfig["type"]))
		}
	}

	workers := pool.New().WithErrors()
	workers.Go(func() error {
		return health.StartHealthEndpoint(configuration.NodeConfig.HealthPort)
	})
	workers.Go(func() error {
		jobs.StartCustodyReportJob(configuration.NodeConfig.CustodyReportInterval, gatewayNode, backend)
		return nil
	})

	errChn := make(chan error)
	go func() { errChn <- workers.Wait() }()

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	nodeName := viper.GetString("name")
	log.Info().Msgf("Started gateway custody node: %s", nodeName)

	select {
	case err := <-errChn:
		log.Error().Err(err).Msg("failed to listen and serve")
		return err
	case sig := <-sysErr:
		log.Info().Msgf("terminating got ` [%v] signal", sig)
		return nil
	}
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
