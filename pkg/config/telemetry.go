package config

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

type Telemetry struct {
	meterProvider *sdkmetric.MeterProvider
}

func (t *Telemetry) Shutdown(ctx context.Context) error {
	return t.meterProvider.Shutdown(ctx)
}

// SetupTelemetry installs a global meter provider which periodically
// writes the collected metrics to stderr.
func SetupTelemetry(ctx context.Context) (*Telemetry, error) {
	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(attribute.String("service.name", "ghr")),
	)
	if err != nil {
		return nil, err
	}
	exp, err := stdoutmetric.New(stdoutmetric.WithWriter(os.Stderr))
	if err != nil {
		return nil, err
	}
	opts := []sdkmetric.PeriodicReaderOption{}
	if TelemetryInterval > 0 {
		opts = append(opts, sdkmetric.WithInterval(TelemetryInterval))
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp, opts...)),
	)
	otel.SetMeterProvider(mp)
	return &Telemetry{meterProvider: mp}, nil
}
