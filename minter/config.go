// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package minter

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/mitchellh/mapstructure"

	"github.com/ChainSafe/gateway-custody/wire"
)

type RawMinterConfig struct {
	Type            string   `mapstructure:"type"`
	Domain          uint32   `mapstructure:"domain"`
	Identity        string   `mapstructure:"identity"`
	Owner           string   `mapstructure:"owner"`
	Pauser          string   `mapstructure:"pauser"`
	TokenController string   `mapstructure:"tokenController"`
	Tokens          []string `mapstructure:"tokens"`
	Attesters       []string `mapstructure:"attesters"`
}

func (c *RawMinterConfig) Validate() error {
	if c.Identity == "" {
		return fmt.Errorf("required field minter.Identity empty for domain %v", c.Domain)
	}
	if c.Owner == "" {
		return fmt.Errorf("required field minter.Owner empty for domain %v", c.Domain)
	}
	return nil
}

// MinterConfig is the parsed minter ledger configuration. Tokens and
// Attesters are bootstrap lists applied through the admin operations
// after the ledger is constructed.
type MinterConfig struct {
	Config
	Tokens    []wire.Address
	Attesters []wire.Address
}

// NewMinterConfig decodes a raw ledger configuration map into MinterConfig
func NewMinterConfig(ledgerConfig map[string]interface{}) (*MinterConfig, error) {
	var rawConfig RawMinterConfig
	err := mapstructure.Decode(ledgerConfig, &rawConfig)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&rawConfig)
	if err != nil {
		return nil, err
	}

	err = rawConfig.Validate()
	if err != nil {
		return nil, err
	}

	config := &MinterConfig{
		Config: Config{
			Domain: rawConfig.Domain,
		},
	}

	config.Identity, err = wire.HexToAddress(rawConfig.Identity)
	if err != nil {
		return nil, err
	}
	config.Owner, err = wire.HexToAddress(rawConfig.Owner)
	if err != nil {
		return nil, err
	}

	config.Pauser = config.Owner
	if rawConfig.Pauser != "" {
		config.Pauser, err = wire.HexToAddress(rawConfig.Pauser)
		if err != nil {
			return nil, err
		}
	}
	config.TokenController = config.Owner
	if rawConfig.TokenController != "" {
		config.TokenController, err = wire.HexToAddress(rawConfig.TokenController)
		if err != nil {
			return nil, err
		}
	}

	for _, token := range rawConfig.Tokens {
		addr, err := wire.HexToAddress(token)
		if err != nil {
			return nil, err
		}
		config.Tokens = append(config.Tokens, addr)
	}
	for _, attester := range rawConfig.Attesters {
		addr, err := wire.HexToAddress(attester)
		if err != nil {
			return nil, err
		}
		config.Attesters = append(config.Attesters, addr)
	}

	return config, nil
}
