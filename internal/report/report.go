// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package report renders disk usage as a report with a bar graph for
// each entry showing its share of the total.
package report

import (
	"context"
	"fmt"
	"io"

	"cloudeng.io/cmd/duim/internal"
	"cloudeng.io/cmd/duim/internal/config"
	"cloudeng.io/cmd/duim/internal/exclusions"
	"cloudeng.io/cmd/duim/internal/usage"
)

// Entry is a single line of a report.
type Entry struct {
	Path    string
	Bytes   int64
	Percent float64
	Bar     string
}

// T represents a complete report.
type T struct {
	Target        string
	Total         int64
	HumanReadable bool
	Entries       []Entry
}

// New computes the report for cfg from the sizes in m. Entries are
// ordered by decreasing size, entries matching the configured exclusions
// are dropped, though never the target itself, and at most cfg.TopN
// entries are retained if TopN is greater than zero. ErrOutOfRange is
// returned if any entry is larger than the total.
func New(ctx context.Context, cfg config.T, m *usage.Map) (*T, error) {
	r := &T{
		Target:        cfg.TargetPath,
		Total:         m.Total(cfg.TargetPath),
		HumanReadable: cfg.HumanReadable,
	}
	ex := exclusions.New(cfg.Exclusions)
	for _, rec := range m.Sorted() {
		if rec.Path != cfg.TargetPath && ex.Exclude(rec.Path) {
			internal.Log(ctx, internal.LogProgress, "excluded", "path", rec.Path)
			continue
		}
		if cfg.TopN > 0 && len(r.Entries) >= cfg.TopN {
			break
		}
		percent := Percent(rec.Bytes, r.Total)
		bar, err := PercentToGraph(percent, cfg.BarLength)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", rec.Path, err)
		}
		r.Entries = append(r.Entries, Entry{
			Path:    rec.Path,
			Bytes:   rec.Bytes,
			Percent: percent,
			Bar:     bar,
		})
	}
	return r, nil
}

// Size returns the formatted size for e.
func (r *T) Size(e Entry) string {
	return FormatSize(e.Bytes, r.HumanReadable)
}

// TotalSize returns the formatted total size.
func (r *T) TotalSize() string {
	return FormatSize(r.Total, r.HumanReadable)
}

// Write writes the report in the specified format.
func (r *T) Write(out io.Writer, format string) error {
	switch format {
	case "", "text":
		return r.Text(out)
	case "json":
		return r.JSON(out)
	case "tsv":
		return r.TSV(out)
	case "markdown":
		return r.Markdown(out)
	}
	return fmt.Errorf("unsupported format: %q", format)
}
