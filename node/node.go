// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

// Package node routes incoming gateway payloads to the ledger registered
// for their domain and tracks settlement metrics.
package node

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/gateway-custody/metrics"
	"github.com/ChainSafe/gateway-custody/minter"
	"github.com/ChainSafe/gateway-custody/wallet"
	"github.com/ChainSafe/gateway-custody/wire"
)

var (
	ErrUnknownWalletDomain = errors.New("no wallet ledger registered for domain")
	ErrUnknownMinterDomain = errors.New("no minter ledger registered for domain")
)

type Node struct {
	wallets map[uint32]*wallet.Wallet
	minters map[uint32]*minter.Minter
	metrics *metrics.GatewayMetrics
}

func New(gatewayMetrics *metrics.GatewayMetrics) *Node {
	return &Node{
		wallets: make(map[uint32]*wallet.Wallet),
		minters: make(map[uint32]*minter.Minter),
		metrics: gatewayMetrics,
	}
}

func (n *Node) AddWallet(w *wallet.Wallet) {
	n.wallets[w.Domain()] = w
	log.Info().
		Uint32("domain", w.Domain()).
		Str("identity", w.Identity().Hex()).
		Msg("Registered wallet ledger")
}

func (n *Node) AddMinter(m *minter.Minter) {
	n.minters[m.Domain()] = m
	log.Info().
		Uint32("domain", m.Domain()).
		Str("identity", m.Identity().Hex()).
		Msg("Registered minter ledger")
}

func (n *Node) Wallet(domain uint32) (*wallet.Wallet, error) {
	w, ok := n.wallets[domain]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownWalletDomain, "domain %d", domain)
	}
	return w, nil
}

func (n *Node) Minter(domain uint32) (*minter.Minter, error) {
	m, ok := n.minters[domain]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMinterDomain, "domain %d", domain)
	}
	return m, nil
}

func (n *Node) Wallets() []*wallet.Wallet {
	wallets := make([]*wallet.Wallet, 0, len(n.wallets))
	for _, w := range n.wallets {
		wallets = append(wallets, w)
	}
	return wallets
}

func (n *Node) Minters() []*minter.Minter {
	minters := make([]*minter.Minter, 0, len(n.minters))
	for _, m := range n.minters {
		minters = append(minters, m)
	}
	return minters
}

// GatewayBurn submits a signed burn payload to the wallet ledger serving
// the given domain.
func (n *Node) GatewayBurn(domain uint32, burnData []byte, burnSignerSig []byte) (*wallet.BurnResult, error) {
	w, err := n.Wallet(domain)
	if err != nil {
		return nil, err
	}

	result, err := w.GatewayBurn(burnData, burnSignerSig)
	if err != nil {
		if errors.Is(err, wallet.ErrTransferSpecHashAlreadyUsed) {
			n.metrics.TrackReplayRejection()
		}
		return nil, err
	}
	return result, nil
}

// GatewayMint submits a signed attestation set to the minter ledger serving
// the given domain.
func (n *Node) GatewayMint(domain uint32, attestationData []byte, attesterSig []byte, caller wire.Address) error {
	m, err := n.Minter(domain)
	if err != nil {
		return err
	}

	err = m.GatewayMint(attestationData, attesterSig, caller)
	if err != nil {
		if errors.Is(err, minter.ErrTransferSpecHashAlreadyUsed) {
			n.metrics.TrackReplayRejection()
		}
		return err
	}
	return nil
}
