// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/spf13/viper"

	"github.com/ChainSafe/gateway-custody/config/node"
)

type Config struct {
	NodeConfig    node.NodeConfig
	LedgerConfigs []map[string]interface{}
}

type RawConfig struct {
	NodeConfig    node.RawNodeConfig       `mapstructure:"node" json:"node"`
	LedgerConfigs []map[string]interface{} `mapstructure:"ledgers" json:"ledgers"`
}

// GetConfigFromENV reads config from Env variables, validates it and parses
// it into config suitable for application
//
// Properties of NodeConfig are expected to be defined as separate Env variables
// where Env variable name reflects properties position in structure. Each Env variable needs to be prefixed with GTW.
//
// For example, if you want to set Config.NodeConfig.HealthPort this would
// translate to Env variable named GTW_NODE_HEALTHPORT.
func GetConfigFromENV(config *Config) (*Config, error) {
	rawConfig, err := loadFromEnv()
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

// GetConfigFromFile reads config from file, validates it and parses
// it into config suitable for application
func GetConfigFromFile(path string, config *Config) (*Config, error) {
	rawConfig := RawConfig{}

	viper.SetConfigFile(path)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return config, err
	}

	err = viper.Unmarshal(&rawConfig)
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

func processRawConfig(rawConfig RawConfig, config *Config) (*Config, error) {
	if err := defaults.Set(&rawConfig); err != nil {
		return config, err
	}

	nodeConfig, err := node.NewNodeConfig(rawConfig.NodeConfig)
	if err != nil {
		return config, err
	}

	ledgerConfigs := make([]map[string]interface{}, 0)
	for i, ledger := range rawConfig.LedgerConfigs {
		if i < len(config.LedgerConfigs) {
			err := mergo.Merge(&ledger, config.LedgerConfigs[i])
			if err != nil {
				return config, err
			}
		}

		if ledger["type"] == "" || ledger["type"] == nil {
			return config, fmt.Errorf("ledger 'type' must be provided for every configured ledger")
		}
		ledgerConfigs = append(ledgerConfigs, ledger)
	}

	config.LedgerConfigs = ledgerConfigs
	config.NodeConfig = nodeConfig
	return config, nil
}
