/*
 * Copyright 2026 Journalstat Project Authors. Licensed under Apache-2.0.
 */

package report

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// table renders rows as an ASCII box table. Columns size themselves to their
// widest cell.
type table struct {
	headers []string
	rows    [][]string
}

func newTable(headers ...string) *table {
	return &table{headers: headers}
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render(buf *bytes.Buffer) {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := utf8.RuneCountInString(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	writeSeparator := func() {
		for _, w := range widths {
			buf.WriteByte('+')
			buf.WriteString(strings.Repeat("-", w+2))
		}
		buf.WriteString("+\n")
	}
	writeRow := func(cells []string) {
		for i, cell := range cells {
			buf.WriteString("| ")
			buf.WriteString(cell)
			buf.WriteString(strings.Repeat(" ", widths[i]-utf8.RuneCountInString(cell)+1))
		}
		buf.WriteString("|\n")
	}

	writeSeparator()
	writeRow(t.headers)
	writeSeparator()
	for _, row := range t.rows {
		writeRow(row)
	}
	writeSeparator()
}
