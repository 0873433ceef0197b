package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"meetgrid/config"
	corelogger "meetgrid/core/logger"
	coremetrics "meetgrid/core/metrics"
	"meetgrid/core/overlap"
	"meetgrid/core/roster"
	"meetgrid/infra/logger"
	inframetrics "meetgrid/infra/metrics"
	"meetgrid/internal/eventbus"
	"meetgrid/pkg/export"
	"meetgrid/pkg/interchange"
)

// RosterEvent is published whenever the roster changes.
type RosterEvent struct {
	Participants int
	FullMatches  int
}

// Service owns the participant roster and wires imports, overlap analysis
// and metrics together. It is not safe for concurrent use; the CLI drives it
// sequentially.
type Service struct {
	cfg     *config.Config
	log     corelogger.Logger
	sink    coremetrics.Sink
	bus     *eventbus.Bus[RosterEvent]
	roster  *roster.Roster
	session string
	cancel  context.CancelFunc
	done    chan struct{}
}

// New builds a Service from configuration. When the Prometheus endpoint is
// enabled the /metrics server runs until Close.
func New(cfg *config.Config) (*Service, error) {
	log := logger.NewLeveled("app", cfg.Logging.Level)
	var sink coremetrics.Sink = coremetrics.NopSink{}
	ctx, cancel := context.WithCancel(context.Background())
	if cfg.Metrics.PrometheusEnabled {
		ps, err := inframetrics.NewPromSink(nil)
		if err != nil {
			cancel()
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sink = ps
		addr := fmt.Sprintf(":%d", cfg.Metrics.PrometheusPort)
		go func() {
			if err := inframetrics.StartPromServer(ctx, addr); err != nil {
				log.Errorf("prom server: %v", err)
			}
		}()
	}

	s := &Service{
		cfg:     cfg,
		log:     log,
		sink:    sink,
		bus:     eventbus.New[RosterEvent](),
		roster:  roster.New(),
		session: uuid.NewString(),
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	s.log.Debugw("session started", map[string]any{"session_id": s.session})
	go s.recordLoop(s.bus.Subscribe())
	return s, nil
}

// recordLoop forwards roster events to the metrics sink until the bus closes.
func (s *Service) recordLoop(events <-chan RosterEvent) {
	defer close(s.done)
	for ev := range events {
		if err := s.sink.RecordAnalysis(ev.Participants, ev.FullMatches); err != nil {
			s.log.Errorf("record analysis: %v", err)
		}
	}
}

// LoadFiles imports every file and inserts the resulting schedules into the
// roster in file order, so name-collision suffixes stay deterministic. In
// lenient mode a failed file is reported and skipped; in strict mode any
// failure aborts the batch before the roster is touched.
func (s *Service) LoadFiles(paths []string) ([]coremetrics.ImportResult, error) {
	results := interchange.LoadFiles(paths)

	if s.cfg.Interchange.Strict {
		var errs []error
		for _, r := range results {
			if r.Err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", r.Path, r.Err))
			}
		}
		if len(errs) > 0 {
			return nil, errors.Join(errs...)
		}
	}

	imports := make([]coremetrics.ImportResult, 0, len(results))
	for _, r := range results {
		switch {
		case r.Err != nil:
			s.log.Errorf("load %s: %v", r.Path, r.Err)
			imports = append(imports, coremetrics.ImportResult{File: r.Path, Failed: true})
		case r.Skipped():
			s.log.Warnf("load %s: no data rows, skipped", r.Path)
			imports = append(imports, coremetrics.ImportResult{File: r.Path})
		default:
			name := s.roster.Add(r.Participant, r.Schedule)
			if name != r.Participant {
				s.log.Infof("participant %s renamed to %s", r.Participant, name)
			}
			imports = append(imports, coremetrics.ImportResult{
				File:        r.Path,
				Participant: name,
				Slots:       r.Schedule.Len(),
			})
		}
	}
	if err := s.sink.RecordImports(imports); err != nil {
		s.log.Errorf("record imports: %v", err)
	}
	s.publish()
	return imports, nil
}

// Roster exposes the loaded participants.
func (s *Service) Roster() *roster.Roster { return s.roster }

// Tally recomputes the overlap tally from the current roster.
func (s *Service) Tally() overlap.Tally { return overlap.Compute(s.roster) }

// Clear drops every loaded participant.
func (s *Service) Clear() {
	s.roster.Clear()
	s.publish()
}

func (s *Service) publish() {
	tally := s.Tally()
	sum := overlap.Summarize(tally)
	s.bus.Publish(RosterEvent{Participants: sum.Participants, FullMatches: sum.FullMatches})
}

// WriteAnalysis writes the 77-row analysis export to path. With no loaded
// participants nothing is written and ErrEmptyInput is returned so the
// caller can warn instead of producing an all-zero file.
func (s *Service) WriteAnalysis(path string) error {
	if s.roster.Len() == 0 {
		return fmt.Errorf("%w: no schedules loaded", export.ErrEmptyInput)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	delim := s.cfg.Interchange.DelimiterFor(export.DelimiterFor(path))
	if err := export.WriteAnalysis(f, delim, s.Tally()); err != nil {
		return err
	}
	if err := s.sink.RecordExport("analysis"); err != nil {
		s.log.Errorf("record export: %v", err)
	}
	return f.Close()
}

// Close shuts down the event loop and, if running, the metrics server.
func (s *Service) Close() error {
	s.cancel()
	s.bus.Close()
	<-s.done
	return nil
}
