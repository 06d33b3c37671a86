/*
 * Copyright 2026 Journalstat Project Authors. Licensed under Apache-2.0.
 */

package stat

import (
	"io"

	"github.com/google/uuid"
	"github.com/pdmorrow/journalstat/pkg/logger"
	"github.com/pdmorrow/journalstat/pkg/model"
	"go.uber.org/zap"
)

type (
	// Source yields journal records in sequence. Next returns io.EOF at
	// the end of the stream and any other error on a failed read. Label
	// names the input for the report header.
	Source interface {
		Next() (*model.LogRecord, error)
		Label() string
	}

	// Config is the aggregation surface consumed by NewEngine. Tracker
	// capacities default to 0, which disables the corresponding ranking.
	Config struct {
		TopTalkers    int
		LargeMessages int
		Unit          string
		Pattern       string
	}

	// Engine owns every piece of state accumulated during one pass over a
	// journal source. All structures start empty, are mutated only by the
	// engine during the pass, and are read-only once the source ends.
	// Multiple engines in one process are fully independent.
	Engine struct {
		passId     string
		filter     *EntryFilter
		freq       *FrequencyTable
		emitters   *EmitterCounter
		topTalkers *RankSlots[model.MessageIdentity]
		largest    *RankSlots[string]
		total      uint64
		label      string
	}

	// TopTalker is one row of the ranked frequency artifact.
	TopTalker struct {
		Rank     int
		Count    uint64
		Emitter  string
		Severity string
		Message  string
	}

	// LargeMessage is one row of the ranked size artifact.
	LargeMessage struct {
		Rank    int
		Size    int
		Message string
	}
)

// NewEngine validates the configuration and builds an empty pass. A bad
// pattern is reported here, before any record is read.
func NewEngine(cfg Config) (*Engine, error) {
	filter, err := NewEntryFilter(cfg.Unit, cfg.Pattern)
	if err != nil {
		return nil, err
	}
	return &Engine{
		passId:     uuid.New().String(),
		filter:     filter,
		freq:       NewFrequencyTable(),
		emitters:   NewEmitterCounter(),
		topTalkers: NewRankSlots[model.MessageIdentity](cfg.TopTalkers),
		largest:    NewRankSlots[string](cfg.LargeMessages),
	}, nil
}

// Process folds one record into the pass state. Rejected records contribute
// to nothing, not even the running total.
func (e *Engine) Process(r *model.LogRecord) {
	if !e.filter.Admit(r) {
		return
	}

	id := r.Identity()
	count := e.freq.Inc(id)
	e.emitters.Inc(r.Emitter)
	e.total++

	e.topTalkers.Offer(count, id)
	e.largest.Offer(uint64(len(r.Message)), r.Message)
}

// Run drains the source record by record. io.EOF ends the pass cleanly. Any
// other error ends it early and is returned; the state accumulated so far is
// kept, partial insight is still worth reporting.
func (e *Engine) Run(source Source) error {
	e.label = source.Label()

	for {
		record, err := source.Next()
		if err == io.EOF {
			logger.Debugz("[stat] pass complete",
				zap.String("pass", e.passId),
				zap.Uint64("records", e.total),
				zap.Int("identities", e.freq.Distinct()))
			return nil
		}
		if err != nil {
			logger.Errorz("[stat] journal read error, keeping partial statistics",
				zap.String("pass", e.passId),
				zap.Uint64("records", e.total),
				zap.Error(err))
			return err
		}
		e.Process(record)
	}
}

func (e *Engine) PassId() string {
	return e.passId
}

// Label returns the display name of the last source run through the engine.
func (e *Engine) Label() string {
	return e.label
}

// Total returns the number of admitted records.
func (e *Engine) Total() uint64 {
	return e.total
}

// TopTalkers renders the frequency tracker slots as ranked rows. Ranks are
// slot order, not strict score order. Severity stays the raw code, the report
// layer resolves names.
func (e *Engine) TopTalkers() []TopTalker {
	entries := e.topTalkers.Entries()
	rows := make([]TopTalker, 0, len(entries))
	for i, entry := range entries {
		rows = append(rows, TopTalker{
			Rank:     i + 1,
			Count:    entry.Score,
			Emitter:  entry.Value.Emitter,
			Severity: entry.Value.Severity,
			Message:  entry.Value.Message,
		})
	}
	return rows
}

// LargestMessages renders the size tracker slots as ranked rows.
func (e *Engine) LargestMessages() []LargeMessage {
	entries := e.largest.Entries()
	rows := make([]LargeMessage, 0, len(entries))
	for i, entry := range entries {
		rows = append(rows, LargeMessage{
			Rank:    i + 1,
			Size:    int(entry.Score),
			Message: entry.Value,
		})
	}
	return rows
}

// EmitterCounts exposes per-emitter record totals for share computation.
func (e *Engine) EmitterCounts() map[string]uint64 {
	return e.emitters.Counts()
}
