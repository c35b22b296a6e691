// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	api "go.opentelemetry.io/otel/metric"
)

type GatewayMetrics struct {
	meter api.Meter
	Opts  api.MeasurementOption

	DepositsCount         api.Int64Counter
	BurnsCount            api.Int64Counter
	MintsCount            api.Int64Counter
	ReplayRejectionsCount api.Int64Counter
}

// NewGatewayMetrics creates an instance of metrics
func NewGatewayMetrics(meter api.Meter, env, nodeID string) (*GatewayMetrics, error) {
	opts := api.WithAttributes(attribute.String("env", env), attribute.String("nodeid", nodeID))

	depositsCount, err := meter.Int64Counter(
		"gateway.DepositsCount",
		api.WithDescription("Number of deposits credited to custody"),
	)
	if err != nil {
		return nil, err
	}
	burnsCount, err := meter.Int64Counter(
		"gateway.BurnsCount",
		api.WithDescription("Number of settled gateway burns"),
	)
	if err != nil {
		return nil, err
	}
	mintsCount, err := meter.Int64Counter(
		"gateway.MintsCount",
		api.WithDescription("Number of attestation elements released from custody"),
	)
	if err != nil {
		return nil, err
	}
	replayRejectionsCount, err := meter.Int64Counter(
		"gateway.ReplayRejectionsCount",
		api.WithDescription("Number of payloads rejected because their transfer spec hash was already used"),
	)
	if err != nil {
		return nil, err
	}

	return &GatewayMetrics{
		meter:                 meter,
		Opts:                  opts,
		DepositsCount:         depositsCount,
		BurnsCount:            burnsCount,
		MintsCount:            mintsCount,
		ReplayRejectionsCount: replayRejectionsCount,
	}, nil
}

func (m *GatewayMetrics) TrackDeposit() {
	m.DepositsCount.Add(context.Background(), 1, m.Opts)
}

func (m *GatewayMetrics) TrackBurn() {
	m.BurnsCount.Add(context.Background(), 1, m.Opts)
}

func (m *GatewayMetrics) TrackMint() {
	m.MintsCount.Add(context.Background(), 1, m.Opts)
}

func (m *GatewayMetrics) TrackReplayRejection() {
	m.ReplayRejectionsCount.Add(context.Background(), 1, m.Opts)
}
