package calculator

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

type instruments struct {
	ops         metric.Int64Counter
	duration    metric.Float64Histogram
	errors      metric.Int64Counter
	lastResult  metric.Float64Gauge
	signChanges metric.Int64Counter
}

// newInstruments creates the calculator's OTel instruments from the global
// meter provider. Instruments created before observability.InitMetrics
// installs the provider are forwarded to it once it does.
func newInstruments() (*instruments, error) {
	meter := otel.Meter("calculator")

	var (
		m   instruments
		err error
	)

	m.ops, err = meter.Int64Counter("calculator.operations.total",
		metric.WithDescription("Total number of calculator operations performed"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ops counter: %w", err)
	}

	m.duration, err = meter.Float64Histogram("calculator.operation.duration",
		metric.WithDescription("Duration of calculator operations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ops histogram: %w", err)
	}

	m.errors, err = meter.Int64Counter("calculator.errors.total",
		metric.WithDescription("Total number of calculator errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating error counter: %w", err)
	}

	m.lastResult, err = meter.Float64Gauge("calculator.last_result",
		metric.WithDescription("The result of the last calculator operation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating result gauge: %w", err)
	}

	m.signChanges, err = meter.Int64Counter("calculation.sign_changes.total",
		metric.WithDescription("Total number of sign selections on the stored calculation"),
		metric.WithUnit("{change}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sign change counter: %w", err)
	}

	return &m, nil
}
