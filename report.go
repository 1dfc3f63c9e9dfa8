// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"

	"cloudeng.io/cmd/duim/internal"
	"cloudeng.io/cmd/duim/internal/config"
	"cloudeng.io/cmd/duim/internal/duquery"
	"cloudeng.io/cmd/duim/internal/report"
	"cloudeng.io/cmd/duim/internal/usage"
	"cloudeng.io/errors"
)

// runReport queries the disk usage of cfg.TargetPath and writes the
// report to stdout. Diagnostics from the query that are not suppressed
// are written to stderr. Nothing is written to stdout unless the
// complete report can be generated.
func runReport(ctx context.Context, cfg config.T, q duquery.Querier, stdout, stderr io.Writer) error {
	lines, diagnostics, err := q.Query(ctx, cfg.TargetPath)
	if err != nil {
		return err
	}
	errs := errors.M{}
	errs.Append(duquery.Forward(stderr, diagnostics))

	m := usage.Parse(ctx, lines)
	internal.Log(ctx, internal.LogProgress, "usage", "target", cfg.TargetPath, "entries", m.Len())

	r, err := report.New(ctx, cfg, m)
	if err != nil {
		internal.Log(ctx, internal.LogError, "report", "target", cfg.TargetPath, "error", err)
		return err
	}
	errs.Append(r.Write(stdout, cfg.Format))
	return errs.Err()
}
