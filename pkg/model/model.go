/*
 * Copyright 2026 Journalstat Project Authors. Licensed under Apache-2.0.
 */

package model

type (
	// LogRecord is one structured entry yielded by a journal source.
	// Severity is the raw text-coded priority ("0".."7") as it appears in
	// the journal, not a resolved name. Fields that were absent on the
	// wire are left empty.
	LogRecord struct {
		Message  string
		Emitter  string
		Severity string
		Unit     string
	}

	// MessageIdentity is the composite key used for frequency counting.
	// Two records are the same identity iff message, emitter and severity
	// are all equal.
	MessageIdentity struct {
		Message  string
		Emitter  string
		Severity string
	}
)

// Identity builds the frequency key for r. The identity holds copies of the
// record fields, the record itself does not need to outlive the pass.
func (r *LogRecord) Identity() MessageIdentity {
	return MessageIdentity{
		Message:  r.Message,
		Emitter:  r.Emitter,
		Severity: r.Severity,
	}
}

// Complete reports whether the record carries every field required to form a
// MessageIdentity.
func (r *LogRecord) Complete() bool {
	return r.Message != "" && r.Emitter != "" && r.Severity != ""
}
