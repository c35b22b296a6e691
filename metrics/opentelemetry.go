// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	api "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultMeter returns a meter exporting to the OTLP HTTP collector at
// collectorRawURL, or a noop meter when no collector is configured.
func DefaultMeter(ctx context.Context, collectorRawURL string) (api.Meter, error) {
	if collectorRawURL == "" {
		return noop.NewMeterProvider().Meter("gateway-custody"), nil
	}

	collectorURL, err := url.Parse(collectorRawURL)
	if err != nil {
		return nil, err
	}
	exporter, err := otlpmetrichttp.New(
		ctx,
		otlpmetrichttp.WithEndpoint(collectorURL.Host),
		otlpmetrichttp.WithURLPath(collectorURL.Path),
		otlpmetrichttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(30*time.Second)),
		),
	)
	return provider.Meter("gateway-custody"), nil
}
