// Package pipeline wires the splitter and the fragment parsers into one
// batch run: raw case texts in, the three output tables out.
package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/openalabama/courtrecords/internal/parse"
	"github.com/openalabama/courtrecords/internal/records"
)

// Config controls a batch run.
type Config struct {
	// Dedupe drops inputs whose text duplicates an earlier input, keeping
	// the first occurrence.
	Dedupe bool
	// MaxRows caps how many inputs are processed; zero means no cap.
	MaxRows int
}

// Tables holds the three outputs of one run. Cases has one row per
// processed input, in input order; Charges and Fees hold whatever rows the
// fragments yielded.
type Tables struct {
	Cases   []records.CaseRecord
	Charges []records.ChargeRecord
	Fees    []records.FeeRecord
}

// Processor runs batches. The zero value is not usable; construct with
// New.
type Processor struct {
	cfg Config
	log *slog.Logger
}

// New returns a Processor. A nil logger falls back to slog.Default.
func New(cfg Config, log *slog.Logger) *Processor {
	if log == nil {
		log = slog.Default()
	}
	return &Processor{cfg: cfg, log: log}
}

// Run processes a batch. Parsing never fails a run: malformed documents
// still produce a case row of defaults, and malformed fragments drop with
// a log line. The error reports context cancellation only.
func (p *Processor) Run(ctx context.Context, raws []records.RawCase) (Tables, error) {
	runID := uuid.NewString()
	log := p.log.With("run_id", runID)

	if p.cfg.Dedupe {
		raws = dedupe(raws)
	}
	if p.cfg.MaxRows > 0 && len(raws) > p.cfg.MaxRows {
		raws = raws[:p.cfg.MaxRows]
	}
	log.Info("starting batch", "inputs", len(raws))

	var t Tables
	t.Cases = make([]records.CaseRecord, 0, len(raws))
	for _, raw := range raws {
		if err := ctx.Err(); err != nil {
			return Tables{}, err
		}
		rec, chFrags, feFrags := parse.Case(raw)
		t.Cases = append(t.Cases, rec)

		charges := parse.Charges(chFrags)
		if dropped := len(chFrags) - len(charges); dropped > 0 {
			log.Warn("dropped unparseable charge rows",
				"case", rec.CaseNumber, "dropped", dropped)
		}
		t.Charges = append(t.Charges, charges...)

		fees := parse.Fees(feFrags)
		if dropped := len(feFrags) - len(fees); dropped > 0 {
			log.Warn("dropped unparseable fee rows",
				"case", rec.CaseNumber, "dropped", dropped)
		}
		t.Fees = append(t.Fees, fees...)
	}

	log.Info("batch complete",
		"cases", len(t.Cases), "charges", len(t.Charges), "fees", len(t.Fees))
	return t, nil
}

func dedupe(raws []records.RawCase) []records.RawCase {
	seen := make(map[string]struct{}, len(raws))
	out := raws[:0:0]
	for _, raw := range raws {
		if _, ok := seen[raw.Text]; ok {
			continue
		}
		seen[raw.Text] = struct{}{}
		out = append(out, raw)
	}
	return out
}
