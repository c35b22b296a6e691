// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"github.com/ChainSafe/gateway-custody/events"
)

// Sink counts settlement events. Wired next to the log sink so every
// committed operation is tracked exactly once.
type Sink struct {
	metrics *GatewayMetrics
}

func NewSink(metrics *GatewayMetrics) *Sink {
	return &Sink{metrics: metrics}
}

func (s *Sink) Emit(event events.Event) {
	switch event.(type) {
	case events.Deposited:
		s.metrics.TrackDeposit()
	case events.GatewayBurned:
		s.metrics.TrackBurn()
	case events.AttestationUsed:
		s.metrics.TrackMint()
	}
}
