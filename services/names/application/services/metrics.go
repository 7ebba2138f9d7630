package services

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/ghuser/namesort/pkg/logger"
)

type sortMetrics struct {
	runs         metric.Int64Counter
	linesRead    metric.Int64Counter
	namesWritten metric.Int64Counter
}

// newSortMetrics creates the workflow instruments. An instrument that fails
// to register is replaced by a no-op so metrics never fail a run.
func newSortMetrics(m metric.Meter, log logger.Logger) *sortMetrics {
	counter := func(name, desc string) metric.Int64Counter {
		c, err := m.Int64Counter(name, metric.WithDescription(desc))
		if err != nil {
			log.Warn("metric instrument unavailable", "name", name, "error", err)
			c, _ = noop.NewMeterProvider().Meter("").Int64Counter(name)
		}
		return c
	}
	return &sortMetrics{
		runs:         counter("namesort.runs", "Sort runs by outcome."),
		linesRead:    counter("namesort.lines.read", "Lines read from input files."),
		namesWritten: counter("namesort.names.written", "Names written to the output file."),
	}
}
