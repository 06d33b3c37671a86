/*
 * Copyright 2026 Journalstat Project Authors. Licensed under Apache-2.0.
 */

// Package report formats the artifacts of a finished analysis pass. It
// performs no aggregation of its own beyond emitter percentage computation.
package report

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/pdmorrow/journalstat/pkg/stat"
	"github.com/pkg/errors"
)

// EmitterShare is one row of the per-emitter volume breakdown.
type EmitterShare struct {
	Rank    int
	Emitter string
	Count   uint64
	Percent float64
}

// EmitterShares computes each emitter's share of total volume, sorted
// descending by raw count with emitter name as tie break so output is
// deterministic. Returns nil when total is 0, the section is omitted rather
// than dividing by zero.
func EmitterShares(counts map[string]uint64, total uint64) []EmitterShare {
	if total == 0 {
		return nil
	}

	shares := make([]EmitterShare, 0, len(counts))
	for emitter, count := range counts {
		shares = append(shares, EmitterShare{
			Emitter: emitter,
			Count:   count,
			Percent: float64(count) / float64(total) * 100,
		})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count != shares[j].Count {
			return shares[i].Count > shares[j].Count
		}
		return shares[i].Emitter < shares[j].Emitter
	})
	for i := range shares {
		shares[i].Rank = i + 1
	}
	return shares
}

// Render writes the full statistics report for a finished pass. Sections
// whose tracker was disabled (or which saw no records) are omitted.
func Render(w io.Writer, engine *stat.Engine) error {
	buf := bytes.NewBuffer(nil)
	buf.WriteString(fmt.Sprintf("Journal statistics for %s\n", engine.Label()))

	if talkers := engine.TopTalkers(); len(talkers) > 0 {
		buf.WriteString(fmt.Sprintf("Top %d most frequent messages:\n", len(talkers)))
		t := newTable("Rank", "Frequency", "Process", "Severity", "Message")
		for _, row := range talkers {
			t.addRow(
				strconv.Itoa(row.Rank),
				strconv.FormatUint(row.Count, 10),
				row.Emitter,
				stat.SeverityName(row.Severity),
				row.Message,
			)
		}
		t.render(buf)
	}

	if largest := engine.LargestMessages(); len(largest) > 0 {
		buf.WriteString(fmt.Sprintf("Top %d largest messages:\n", len(largest)))
		t := newTable("Rank", "Size", "Message")
		for _, row := range largest {
			t.addRow(strconv.Itoa(row.Rank), strconv.Itoa(row.Size), row.Message)
		}
		t.render(buf)
	}

	if shares := EmitterShares(engine.EmitterCounts(), engine.Total()); len(shares) > 0 {
		buf.WriteString("Volume per process:\n")
		t := newTable("Rank", "Process", "Count", "Percent")
		for _, row := range shares {
			t.addRow(
				strconv.Itoa(row.Rank),
				row.Emitter,
				strconv.FormatUint(row.Count, 10),
				fmt.Sprintf("%.2f", row.Percent),
			)
		}
		t.render(buf)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, "write report")
	}
	return nil
}
