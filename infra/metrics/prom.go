package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "meetgrid/core/metrics"
)

// PromSink records scheduler events in Prometheus metrics.
type PromSink struct {
	imports      *prometheus.CounterVec
	exports      *prometheus.CounterVec
	participants prometheus.Gauge
	fullMatches  prometheus.Gauge
}

// NewPromSink registers scheduler metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. If the
// collectors are already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	imports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_imports_total",
		Help: "Total number of schedule file imports by status",
	}, []string{"status"})
	exports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_exports_total",
		Help: "Total number of written exports by kind",
	}, []string{"kind"})
	participants := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "overlap_participants",
		Help: "Number of participants in the latest overlap computation",
	})
	fullMatches := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "overlap_full_match_slots",
		Help: "Number of slots where every participant is available",
	})

	imports, err := registerCounterVec(reg, imports)
	if err != nil {
		return nil, err
	}
	exports, err = registerCounterVec(reg, exports)
	if err != nil {
		return nil, err
	}
	participants, err = registerGauge(reg, participants)
	if err != nil {
		return nil, err
	}
	fullMatches, err = registerGauge(reg, fullMatches)
	if err != nil {
		return nil, err
	}

	return &PromSink{
		imports:      imports,
		exports:      exports,
		participants: participants,
		fullMatches:  fullMatches,
	}, nil
}

func registerCounterVec(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec), nil
		}
		return nil, err
	}
	return c, nil
}

func registerGauge(reg prometheus.Registerer, g prometheus.Gauge) (prometheus.Gauge, error) {
	if err := reg.Register(g); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Gauge), nil
		}
		return nil, err
	}
	return g, nil
}

// RecordImports increments the import counter for each file outcome.
func (s *PromSink) RecordImports(res []coremetrics.ImportResult) error {
	for _, r := range res {
		status := "ok"
		if r.Failed {
			status = "failed"
		} else if r.Slots == 0 {
			status = "skipped"
		}
		s.imports.WithLabelValues(status).Inc()
	}
	return nil
}

// RecordAnalysis sets the roster-size and full-match gauges.
func (s *PromSink) RecordAnalysis(participants, fullMatches int) error {
	s.participants.Set(float64(participants))
	s.fullMatches.Set(float64(fullMatches))
	return nil
}

// RecordExport increments the export counter for the given kind.
func (s *PromSink) RecordExport(kind string) error {
	s.exports.WithLabelValues(kind).Inc()
	return nil
}
