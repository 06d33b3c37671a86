/*
 * Copyright 2026 Journalstat Project Authors. Licensed under Apache-2.0.
 */

package journal

import (
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pdmorrow/journalstat/pkg/model"
	"github.com/pkg/errors"
)

// fileSource reads one export file, transparently decompressing .gz and .zst
// inputs.
type fileSource struct {
	path    string
	er      *ExportReader
	closers []io.Closer
}

func openFile(path string) (*fileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open journal file %s", path)
	}

	s := &fileSource{path: path, closers: []io.Closer{f}}

	var r io.Reader = f
	switch filepath.Ext(path) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, errors.Wrapf(err, "open gzip journal file %s", path)
		}
		r = gz
		s.closers = append(s.closers, gz)
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, errors.Wrapf(err, "open zstd journal file %s", path)
		}
		rc := zr.IOReadCloser()
		r = rc
		s.closers = append(s.closers, rc)
	}

	s.er = NewExportReader(r)
	return s, nil
}

func (s *fileSource) Next() (*model.LogRecord, error) {
	return s.er.Next()
}

func (s *fileSource) Label() string {
	return s.path
}

func (s *fileSource) Close() error {
	var ret error
	// close in reverse, decompressors before the file
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil && ret == nil {
			ret = err
		}
	}
	return ret
}
