/*
 * Copyright 2026 Journalstat Project Authors. Licensed under Apache-2.0.
 */

package stat

import "github.com/pdmorrow/journalstat/pkg/model"

type (
	// FrequencyTable counts occurrences per message identity. It grows with
	// the number of distinct identities seen, that growth is unbounded and
	// accepted: callers needing bounded memory must bound the input.
	FrequencyTable struct {
		counts map[model.MessageIdentity]uint64
	}

	// EmitterCounter counts records per emitter name, independent of
	// message identity.
	EmitterCounter struct {
		counts map[string]uint64
	}
)

func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[model.MessageIdentity]uint64)}
}

// Inc bumps the identity's count, inserting at 1 on first sighting, and
// returns the new count.
func (t *FrequencyTable) Inc(id model.MessageIdentity) uint64 {
	t.counts[id]++
	return t.counts[id]
}

// Count returns the current count for id, 0 if never seen.
func (t *FrequencyTable) Count(id model.MessageIdentity) uint64 {
	return t.counts[id]
}

// Distinct returns the number of distinct identities seen.
func (t *FrequencyTable) Distinct() int {
	return len(t.counts)
}

func NewEmitterCounter() *EmitterCounter {
	return &EmitterCounter{counts: make(map[string]uint64)}
}

func (c *EmitterCounter) Inc(emitter string) {
	c.counts[emitter]++
}

// Counts exposes the per-emitter totals. The map is owned by the counter,
// callers must not mutate it.
func (c *EmitterCounter) Counts() map[string]uint64 {
	return c.counts
}
