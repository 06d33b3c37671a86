/*
 * Copyright 2026 Journalstat Project Authors. Licensed under Apache-2.0.
 */

package stat

import (
	"fmt"
	"io"
	"testing"

	"github.com/pdmorrow/journalstat/pkg/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// sliceSource replays records from memory. failAt >= 0 makes Next fail once
// that position is reached, simulating a broken stream.
type sliceSource struct {
	records []*model.LogRecord
	pos     int
	failAt  int
}

func newSliceSource(records ...*model.LogRecord) *sliceSource {
	return &sliceSource{records: records, failAt: -1}
}

func (s *sliceSource) Next() (*model.LogRecord, error) {
	if s.failAt >= 0 && s.pos == s.failAt {
		return nil, errors.New("journal corrupted")
	}
	if s.pos >= len(s.records) {
		return nil, io.EOF
	}
	r := s.records[s.pos]
	s.pos++
	return r, nil
}

func (s *sliceSource) Label() string {
	return "memory"
}

func TestEngineFirstFitRanking(t *testing.T) {
	e, err := NewEngine(Config{TopTalkers: 2})
	assert.NoError(t, err)

	src := newSliceSource(
		record("a", "p", "6", ""),
		record("b", "p", "6", ""),
		record("c", "p", "6", ""),
		record("c", "p", "6", ""),
		record("d", "p", "6", ""),
		record("d", "p", "6", ""),
		record("d", "p", "6", ""),
	)
	assert.NoError(t, e.Run(src))

	// slot history: [(1,a)(1,b)] -> c@2 beats slot0 -> [(2,c)(1,b)]
	// d@1 discarded, d@2 beats slot1, d@3 beats slot0: the final state
	// holds d twice, once with a stale score. That duplication is the
	// documented first-fit behavior.
	talkers := e.TopTalkers()
	assert.Len(t, talkers, 2)
	assert.Equal(t, TopTalker{Rank: 1, Count: 3, Emitter: "p", Severity: "6", Message: "d"}, talkers[0])
	assert.Equal(t, TopTalker{Rank: 2, Count: 2, Emitter: "p", Severity: "6", Message: "d"}, talkers[1])
}

func TestEngineEmitterSumEqualsTotal(t *testing.T) {
	e, err := NewEngine(Config{})
	assert.NoError(t, err)

	src := newSliceSource(
		record("m1", "sshd", "6", ""),
		record("m2", "sshd", "3", ""),
		record("m3", "cron", "6", ""),
		record("", "cron", "6", ""), // malformed, skipped
		record("m4", "kernel", "4", ""),
	)
	assert.NoError(t, e.Run(src))

	var sum uint64
	for _, c := range e.EmitterCounts() {
		sum += c
	}
	assert.Equal(t, uint64(4), e.Total())
	assert.Equal(t, e.Total(), sum)
}

func TestEngineDominantIdentitySurvives(t *testing.T) {
	e, err := NewEngine(Config{TopTalkers: 5})
	assert.NoError(t, err)

	var records []*model.LogRecord
	for i := 0; i < 1000; i++ {
		records = append(records, record(fmt.Sprintf("singleton-%d", i), "p", "6", ""))
	}
	for i := 0; i < 9000; i++ {
		records = append(records, record("repeated", "p", "6", ""))
	}
	assert.NoError(t, e.Run(newSliceSource(records...)))

	assert.Equal(t, uint64(10000), e.Total())
	found := false
	for _, row := range e.TopTalkers() {
		if row.Message == "repeated" && row.Count == 9000 {
			found = true
		}
	}
	assert.True(t, found, "dominant identity must be tracked with its final count")
}

func TestEngineSourceErrorKeepsPartialState(t *testing.T) {
	e, err := NewEngine(Config{TopTalkers: 3, LargeMessages: 3})
	assert.NoError(t, err)

	src := newSliceSource(
		record("m1", "sshd", "6", ""),
		record("m2", "cron", "6", ""),
		record("m3", "sshd", "6", ""),
		record("never-read", "sshd", "6", ""),
	)
	src.failAt = 3

	assert.Error(t, e.Run(src))
	assert.Equal(t, uint64(3), e.Total())
	assert.Equal(t, map[string]uint64{"sshd": 2, "cron": 1}, e.EmitterCounts())
	assert.Len(t, e.TopTalkers(), 3)
}

func TestEngineDisabledTrackers(t *testing.T) {
	e, err := NewEngine(Config{})
	assert.NoError(t, err)

	src := newSliceSource(
		record("m1", "sshd", "6", ""),
		record("m1", "sshd", "6", ""),
	)
	assert.NoError(t, e.Run(src))

	// counting still happens, only the rankings are disabled
	assert.Equal(t, uint64(2), e.Total())
	assert.Empty(t, e.TopTalkers())
	assert.Empty(t, e.LargestMessages())
}

func TestEngineLargestMessages(t *testing.T) {
	e, err := NewEngine(Config{LargeMessages: 2})
	assert.NoError(t, err)

	src := newSliceSource(
		record("short", "p", "6", ""),
		record("a much longer message body", "p", "6", ""),
		record("mid sized one", "p", "6", ""),
	)
	assert.NoError(t, e.Run(src))

	// "short" takes slot 0 and is unseated there by the long message
	// before slot 1 ever fills; the mid sized candidate beats no occupied
	// slot and appends into the still-empty slot 1
	largest := e.LargestMessages()
	assert.Len(t, largest, 2)
	assert.Equal(t, LargeMessage{Rank: 1, Size: 26, Message: "a much longer message body"}, largest[0])
	assert.Equal(t, LargeMessage{Rank: 2, Size: 13, Message: "mid sized one"}, largest[1])
}

func TestEngineDeterminism(t *testing.T) {
	build := func() []*model.LogRecord {
		var records []*model.LogRecord
		for i := 0; i < 50; i++ {
			records = append(records,
				record(fmt.Sprintf("msg-%d", i%7), fmt.Sprintf("proc-%d", i%3), "6", ""))
		}
		return records
	}

	run := func() *Engine {
		e, err := NewEngine(Config{TopTalkers: 4, LargeMessages: 4})
		assert.NoError(t, err)
		assert.NoError(t, e.Run(newSliceSource(build()...)))
		return e
	}

	e1, e2 := run(), run()
	assert.Equal(t, e1.Total(), e2.Total())
	assert.Equal(t, e1.TopTalkers(), e2.TopTalkers())
	assert.Equal(t, e1.LargestMessages(), e2.LargestMessages())
	assert.Equal(t, e1.EmitterCounts(), e2.EmitterCounts())
}

func TestEnginePatternConfigError(t *testing.T) {
	e, err := NewEngine(Config{Pattern: "(bad"})
	assert.Error(t, err)
	assert.Nil(t, e)
}
