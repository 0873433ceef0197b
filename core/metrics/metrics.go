package metrics

// ImportResult describes the outcome of loading one interchange file.
type ImportResult struct {
	File        string
	Participant string
	Slots       int
	Failed      bool
}

// Sink records interchange and analysis events. Implementations live under
// infra/metrics; core code only depends on this interface.
type Sink interface {
	// RecordImports counts file import outcomes.
	RecordImports(res []ImportResult) error
	// RecordAnalysis records the roster size and full-match count of the
	// latest overlap computation.
	RecordAnalysis(participants, fullMatches int) error
	// RecordExport counts one written export of the given kind
	// ("schedule" or "analysis").
	RecordExport(kind string) error
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) RecordImports([]ImportResult) error { return nil }
func (NopSink) RecordAnalysis(int, int) error      { return nil }
func (NopSink) RecordExport(string) error          { return nil }
