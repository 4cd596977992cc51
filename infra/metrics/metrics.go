package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the settlement counters exported on /metrics.
type Metrics struct {
	Registry *prometheus.Registry

	Commands      *prometheus.CounterVec
	ApplySeconds  *prometheus.HistogramVec
	Fills         prometheus.Counter
	Cancellations prometheus.Counter
	Resolutions   *prometheus.CounterVec
	FeesCollected prometheus.Counter
	OutboxPending prometheus.Gauge
	Published     *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookie_commands_total",
			Help: "Commands handled, by kind and result.",
		}, []string{"kind", "result"}),
		ApplySeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bookie_apply_seconds",
			Help:    "Time to log and apply one command.",
			Buckets: prometheus.ExponentialBuckets(0.00005, 2, 14),
		}, []string{"kind"}),
		Fills: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bookie_fills_total",
			Help: "Bet fills settled.",
		}),
		Cancellations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bookie_cancellations_total",
			Help: "Bets canceled, including culled remainders.",
		}),
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookie_resolutions_total",
			Help: "Markets resolved, by outcome.",
		}, []string{"resolution"}),
		FeesCollected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bookie_fees_collected_total",
			Help: "Fees swept to the fee account at resolution.",
		}),
		OutboxPending: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bookie_outbox_pending",
			Help: "Events not yet delivered to every sink.",
		}),
		Published: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookie_events_published_total",
			Help: "Event batches handed to a sink, by sink and result.",
		}, []string{"sink", "result"}),
	}

	m.Registry.MustRegister(
		m.Commands, m.ApplySeconds, m.Fills, m.Cancellations,
		m.Resolutions, m.FeesCollected, m.OutboxPending, m.Published,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}
