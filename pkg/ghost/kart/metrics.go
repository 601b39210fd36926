package kart

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/mpapenbr/ghostreplay/log"
)

var meter = otel.Meter("ghr.kart")

type kartMetrics struct {
	ticks  metric.Int64Counter
	hidden metric.Int64Counter
	zipper metric.Int64Counter
	attrs  metric.MeasurementOption
}

func newKartMetrics(id uuid.UUID) *kartMetrics {
	counter := func(name, desc string) metric.Int64Counter {
		c, err := meter.Int64Counter(name,
			metric.WithDescription(desc),
			metric.WithUnit("{count}"))
		if err != nil {
			log.Error("failed to register metric",
				log.String("metric", name),
				log.ErrorField(err))
			return noop.Int64Counter{}
		}
		return c
	}
	return &kartMetrics{
		ticks:  counter("ghr.kart.ticks", "Number of updates"),
		hidden: counter("ghr.kart.hidden", "Number of updates after the replay ended"),
		zipper: counter("ghr.kart.zipper", "Number of triggered zipper effects"),
		attrs:  metric.WithAttributes(attribute.String("ghost", id.String())),
	}
}

func (m *kartMetrics) inc(c metric.Int64Counter) {
	c.Add(context.Background(), 1, m.attrs)
}
