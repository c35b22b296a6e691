// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName     = "config"
	BlockstoreFlagName = "blockstore"
	FreshStartFlagName = "fresh-start"
)

// BindFlags attaches the node's persistent flags to cmd and mirrors them
// into viper.
func BindFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(ConfigFlagName, "config.json", "Path to JSON configuration file, or 'env' to read configuration from environment variables")
	_ = viper.BindPFlag(ConfigFlagName, cmd.PersistentFlags().Lookup(ConfigFlagName))

	cmd.PersistentFlags().String(BlockstoreFlagName, "./lvldbdata", "Path to the leveldb data directory")
	_ = viper.BindPFlag(BlockstoreFlagName, cmd.PersistentFlags().Lookup(BlockstoreFlagName))

	cmd.PersistentFlags().Bool(FreshStartFlagName, false, "Discard persisted ledger state and start from the configured defaults")
	_ = viper.BindPFlag(FreshStartFlagName, cmd.PersistentFlags().Lookup(FreshStartFlagName))
}
