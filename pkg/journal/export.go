/*
 * Copyright 2026 Journalstat Project Authors. Licensed under Apache-2.0.
 */

package journal

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pdmorrow/journalstat/pkg/model"
	"github.com/pdmorrow/journalstat/pkg/text"
	"github.com/pkg/errors"
)

// maxFieldSize bounds a single binary field payload. Journald itself caps
// fields far below this, anything bigger is corruption.
const maxFieldSize = 64 * 1024 * 1024

// ExportReader decodes the journald export format: one FIELD=value line per
// field, binary safe fields as "FIELD\n<le64 length><payload>\n", and a blank
// line terminating each entry.
type ExportReader struct {
	br *bufio.Reader
}

func NewExportReader(r io.Reader) *ExportReader {
	return &ExportReader{br: bufio.NewReader(r)}
}

// Next decodes the next entry. Fields this tool does not consume are skipped.
// Returns io.EOF after the last entry.
func (r *ExportReader) Next() (*model.LogRecord, error) {
	record := &model.LogRecord{}
	seen := false

	for {
		line, err := r.br.ReadBytes('\n')
		if err == io.EOF {
			if len(line) == 0 {
				if seen {
					return record, nil
				}
				return nil, io.EOF
			}
			// last entry lacks a trailing newline, still usable
		} else if err != nil {
			return nil, errors.Wrap(err, "read journal export")
		} else {
			line = line[:len(line)-1]
		}

		if len(line) == 0 {
			if seen {
				return record, nil
			}
			// tolerate extra blank lines between entries
			continue
		}
		seen = true

		if i := bytes.IndexByte(line, '='); i >= 0 {
			setField(record, string(line[:i]), line[i+1:])
			continue
		}

		// line without '=' announces a binary field
		value, err := r.readBinaryField(string(line))
		if err != nil {
			return nil, err
		}
		setField(record, string(line), value)
	}
}

func (r *ExportReader) readBinaryField(name string) ([]byte, error) {
	var sizeBuf [8]byte
	if _, err := io.ReadFull(r.br, sizeBuf[:]); err != nil {
		return nil, errors.Wrapf(err, "read size of binary field %s", name)
	}
	size := binary.LittleEndian.Uint64(sizeBuf[:])
	if size > maxFieldSize {
		return nil, errors.Errorf("binary field %s too large: %d bytes", name, size)
	}

	// payload plus the terminating newline
	data := make([]byte, size+1)
	if _, err := io.ReadFull(r.br, data); err != nil {
		return nil, errors.Wrapf(err, "read binary field %s", name)
	}
	if data[size] != '\n' {
		return nil, errors.Errorf("binary field %s not newline terminated", name)
	}
	return data[:size], nil
}

func setField(record *model.LogRecord, name string, value []byte) {
	switch name {
	case "MESSAGE":
		record.Message = text.Decode(value)
	case "_COMM":
		record.Emitter = string(value)
	case "PRIORITY":
		record.Severity = string(value)
	case "_SYSTEMD_UNIT":
		record.Unit = string(value)
	}
}
