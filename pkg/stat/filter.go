/*
 * Copyright 2026 Journalstat Project Authors. Licensed under Apache-2.0.
 */

package stat

import (
	"regexp"

	"github.com/pdmorrow/journalstat/pkg/model"
	"github.com/pkg/errors"
)

// EntryFilter decides which records take part in a pass. Both filters are
// optional; the zero filter admits every complete record.
type EntryFilter struct {
	unit    string
	pattern *regexp.Regexp
}

// NewEntryFilter compiles the optional pattern once. A pattern that fails to
// compile is a configuration error, it never surfaces mid-stream.
func NewEntryFilter(unit string, pattern string) (*EntryFilter, error) {
	f := &EntryFilter{unit: unit}
	if pattern != "" {
		p, err := regexp.Compile(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid message pattern %q", pattern)
		}
		f.pattern = p
	}
	return f, nil
}

// Admit reports whether the record takes part in the pass.
//
// Records missing message, emitter or severity can never form an identity and
// are always rejected. The unit filter only rejects records that carry a unit
// tag differing from the configured one; a record without a unit tag passes.
// The pattern matches anywhere within the message text.
func (f *EntryFilter) Admit(r *model.LogRecord) bool {
	if !r.Complete() {
		return false
	}
	if f.unit != "" && r.Unit != "" && r.Unit != f.unit {
		return false
	}
	if f.pattern != nil && !f.pattern.MatchString(r.Message) {
		return false
	}
	return true
}
