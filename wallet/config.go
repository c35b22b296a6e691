// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package wallet

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/mitchellh/mapstructure"

	"github.com/ChainSafe/gateway-custody/wire"
)

type RawWalletConfig struct {
	Type            string   `mapstructure:"type"`
	Domain          uint32   `mapstructure:"domain"`
	Identity        string   `mapstructure:"identity"`
	Owner           string   `mapstructure:"owner"`
	Pauser          string   `mapstructure:"pauser"`
	Denylister      string   `mapstructure:"denylister"`
	TokenController string   `mapstructure:"tokenController"`
	FeeRecipient    string   `mapstructure:"feeRecipient"`
	WithdrawalDelay uint64   `mapstructure:"withdrawalDelay" default:"100"`
	Tokens          []string `mapstructure:"tokens"`
	BurnSigners     []string `mapstructure:"burnSigners"`
}

func (c *RawWalletConfig) Validate() error {
	if c.Identity == "" {
		return fmt.Errorf("required field wallet.Identity empty for domain %v", c.Domain)
	}
	if c.Owner == "" {
		return fmt.Errorf("required field wallet.Owner empty for domain %v", c.Domain)
	}
	if c.FeeRecipient == "" {
		return fmt.Errorf("required field wallet.FeeRecipient empty for domain %v", c.Domain)
	}
	return nil
}

// WalletConfig is the parsed wallet ledger configuration. Tokens and
// BurnSigners are bootstrap lists applied through the admin operations
// after the ledger is constructed.
type WalletConfig struct {
	Config
	Tokens      []wire.Address
	BurnSigners []wire.Address
}

// NewWalletConfig decodes a raw ledger configuration map into WalletConfig
func NewWalletConfig(ledgerConfig map[string]interface{}) (*WalletConfig, error) {
	var rawConfig RawWalletConfig
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

	config := &WalletConfig{
		Config: Config{
			Domain:          rawConfig.Domain,
			WithdrawalDelay: rawConfig.WithdrawalDelay,
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
	config.FeeRecipient, err = wire.HexToAddress(rawConfig.FeeRecipient)
	if err != nil {
		return nil, err
	}

	// roles fall back to the owner when not configured explicitly
	config.Pauser, err = roleOrOwner(rawConfig.Pauser, config.Owner)
	if err != nil {
		return nil, err
	}
	config.Denylister, err = roleOrOwner(rawConfig.Denylister, config.Owner)
	if err != nil {
		return nil, err
	}
	config.TokenController, err = roleOrOwner(rawConfig.TokenController, config.Owner)
	if err != nil {
		return nil, err
	}

	for _, token := range rawConfig.Tokens {
		addr, err := wire.HexToAddress(token)
		if err != nil {
			return nil, err
		}
		config.Tokens = append(config.Tokens, addr)
	}
	for _, signer := range rawConfig.BurnSigners {
		addr, err := wire.HexToAddress(signer)
		if err != nil {
			return nil, err
		}
		config.BurnSigners = append(config.BurnSigners, addr)
	}

	return config, nil
}

func roleOrOwner(raw string, owner wire.Address) (wire.Address, error) {
	if raw == "" {
		return owner, nil
	}
	return wire.HexToAddress(raw)
}
