// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package jobs

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/gateway-custody/node"
	"github.com/ChainSafe/gateway-custody/tokens"
)

// StartCustodyReportJob periodically logs the custody balance backing every
// supported token on every registered ledger.
func StartCustodyReportJob(interval time.Duration, n *node.Node, backend tokens.Backend) {
	for {
		time.Sleep(interval)
		log.Info().Msg("Starting custody report")
		reportCustody(n, backend)
	}
}

func reportCustody(n *node.Node, backend tokens.Backend) {
	for _, w := range n.Wallets() {
		for _, token := range w.SupportedTokens() {
			custody, err := backend.Custody(token)
			if err != nil {
				log.Err(err).Str("token", token.Hex()).Msg("custody report error")
				continue
			}
			log.Info().
				Uint32("domain", w.Domain()).
				Str("token", token.Hex()).
				Uint64("custody", custody).
				Msg("Wallet token custody")
		}
	}
	for _, m := range n.Minters() {
		for _, token := range m.SupportedTokens() {
			custody, err := backend.Custody(token)
			if err != nil {
				log.Err(err).Str("token", token.Hex()).Msg("custody report error")
				continue
			}
			log.Info().
				Uint32("domain", m.Domain()).
				Str("token", token.Hex()).
				Uint64("custody", custody).
				Msg("Minter token custody")
		}
	}
}
