/*
 * Copyright 2026 Journalstat Project Authors. Licensed under Apache-2.0.
 */

package stat

type (
	// RankedEntry is one occupied tracker slot.
	RankedEntry[T any] struct {
		Score uint64
		Value T
	}

	// RankSlots keeps an approximate top-K of offered values in a fixed
	// number of slots, populated lazily. Insertion is first-fit: a
	// candidate takes the first empty slot, or replaces the first slot
	// whose stored score it strictly beats, and leaves every other slot
	// untouched. Slots are never re-sorted or shifted, so reported ranks
	// are slot order rather than strict score order, and a value whose
	// score grew may survive in another slot with its outdated score.
	//
	// Capacity 0 disables the tracker entirely: nothing is ever recorded,
	// which readers must treat as "ranking not requested" rather than
	// "nothing qualified".
	RankSlots[T any] struct {
		capacity int
		entries  []RankedEntry[T]
	}
)

// NewRankSlots creates a tracker with the given capacity. Negative
// capacities behave like 0.
func NewRankSlots[T any](capacity int) *RankSlots[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &RankSlots[T]{capacity: capacity}
}

// Offer submits a candidate and reports whether it was retained. At most one
// slot is appended or overwritten per call.
func (s *RankSlots[T]) Offer(score uint64, value T) bool {
	for i := 0; i < s.capacity; i++ {
		if i == len(s.entries) {
			s.entries = append(s.entries, RankedEntry[T]{Score: score, Value: value})
			return true
		}
		if s.entries[i].Score < score {
			s.entries[i] = RankedEntry[T]{Score: score, Value: value}
			return true
		}
	}
	return false
}

// Entries exposes the occupied slots in slot order. The slice is owned by the
// tracker, callers must not mutate it.
func (s *RankSlots[T]) Entries() []RankedEntry[T] {
	return s.entries
}

func (s *RankSlots[T]) Len() int {
	return len(s.entries)
}

func (s *RankSlots[T]) Cap() int {
	return s.capacity
}
