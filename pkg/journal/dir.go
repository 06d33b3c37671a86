/*
 * Copyright 2026 Journalstat Project Authors. Licensed under Apache-2.0.
 */

package journal

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pdmorrow/journalstat/pkg/model"
	"github.com/pkg/errors"
)

// dirSource concatenates the export files of one directory in sorted name
// order. Rotated journals sort by name, so this preserves rotation order.
// No correlation beyond plain concatenation is attempted.
type dirSource struct {
	path    string
	pending []string
	current *fileSource
}

func openDir(path string) (*dirSource, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read journal directory %s", path)
	}

	var files []string
	for _, de := range dirEntries {
		if de.IsDir() || de.Name()[0] == '.' {
			continue
		}
		files = append(files, filepath.Join(path, de.Name()))
	}
	if len(files) == 0 {
		return nil, errors.Errorf("journal directory %s contains no files", path)
	}

	return &dirSource{path: path, pending: files}, nil
}

func (s *dirSource) Next() (*model.LogRecord, error) {
	for {
		if s.current == nil {
			if len(s.pending) == 0 {
				return nil, io.EOF
			}
			f, err := openFile(s.pending[0])
			s.pending = s.pending[1:]
			if err != nil {
				// the directory is already open, this is a mid-stream failure
				return nil, err
			}
			s.current = f
		}

		record, err := s.current.Next()
		if err == io.EOF {
			s.current.Close()
			s.current = nil
			continue
		}
		return record, err
	}
}

func (s *dirSource) Label() string {
	return s.path
}

func (s *dirSource) Close() error {
	if s.current != nil {
		err := s.current.Close()
		s.current = nil
		return err
	}
	return nil
}
