/*
 * Copyright 2026 Journalstat Project Authors. Licensed under Apache-2.0.
 */

// Package journal reads systemd journal entries from files in the journald
// export format, optionally gzip or zstd compressed. It hides everything
// about the on-disk layout behind the Source interface; the aggregation core
// never sees file boundaries.
package journal

import (
	"os"

	"github.com/pdmorrow/journalstat/pkg/model"
	"github.com/pkg/errors"
)

// Source is a sequential record source. Next returns io.EOF at the clean end
// of the stream, any other error means the stream broke mid-read. Sources
// are not safe for concurrent use, a pass consumes one sequentially.
type Source interface {
	Next() (*model.LogRecord, error)
	Label() string
	Close() error
}

// Open opens a journal export file, or a directory of rotated export files
// read in sorted name order. Open failures are fatal, nothing has been
// processed yet.
func Open(path string) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open journal input %s", path)
	}
	if info.IsDir() {
		return openDir(path)
	}
	return openFile(path)
}
